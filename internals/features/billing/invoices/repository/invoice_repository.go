package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/billing/invoices/model"
	paymentModel "aptfee_backend/internals/features/finance/payments/model"
	helper "aptfee_backend/internals/helpers"
)

/* ====================== INVOICES ====================== */

// FindPendingByApartment returns (nil, nil) when the apartment has no open invoice.
func FindPendingByApartment(ctx context.Context, db *gorm.DB, apartmentID uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := db.WithContext(ctx).
		Where("apartment_id = ? AND status = ?", apartmentID, constants.InvoiceStatusPending).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func FindInvoiceByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := db.WithContext(ctx).First(&inv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func CreateInvoice(ctx context.Context, db *gorm.DB, inv *model.Invoice) error {
	return db.WithContext(ctx).Create(inv).Error
}

// RecalcTotal re-sums every detail row of the invoice and stores the result.
func RecalcTotal(ctx context.Context, db *gorm.DB, invoiceID uuid.UUID) (decimal.Decimal, error) {
	var totals []decimal.Decimal
	if err := db.WithContext(ctx).
		Model(&model.InvoiceDetail{}).
		Where("invoice_id = ?", invoiceID).
		Pluck("total", &totals).Error; err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	if sum.GreaterThanOrEqual(model.MaxAmount) {
		return decimal.Zero, helper.ErrInvalidKey.WithMessage("Invoice total is too large")
	}
	err := db.WithContext(ctx).
		Model(&model.Invoice{}).
		Where("id = ?", invoiceID).
		Update("total_amount", sum).Error
	return sum, err
}

func MarkPaid(ctx context.Context, db *gorm.DB, invoiceID uuid.UUID) error {
	return db.WithContext(ctx).
		Model(&model.Invoice{}).
		Where("id = ? AND status = ?", invoiceID, constants.InvoiceStatusPending).
		Update("status", constants.InvoiceStatusPaid).Error
}

// InvoiceFilter narrows ListInvoices; zero values mean no filter.
type InvoiceFilter struct {
	ApartmentID *uuid.UUID
	Status      string
}

func ListInvoices(ctx context.Context, db *gorm.DB, f InvoiceFilter, p helper.Paging) ([]model.Invoice, int64, error) {
	var (
		rows  []model.Invoice
		total int64
	)
	q := db.WithContext(ctx).Model(&model.Invoice{})
	if f.ApartmentID != nil {
		q = q.Where("apartment_id = ?", *f.ApartmentID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("due_date DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}

// DeleteInvoice removes the invoice with its details and its unsettled payments.
// An invoice carrying a completed payment is refused.
func DeleteInvoice(ctx context.Context, db *gorm.DB, invoiceID uuid.UUID) error {
	var settled int64
	if err := db.WithContext(ctx).
		Model(&paymentModel.Payment{}).
		Where("invoice_id = ? AND status = ?", invoiceID, constants.PaymentStatusCompleted).
		Count(&settled).Error; err != nil {
		return err
	}
	if settled > 0 {
		return helper.ErrInvoiceNotPending.WithMessage("Invoice has a completed payment")
	}
	if err := db.WithContext(ctx).Where("invoice_id = ?", invoiceID).Delete(&model.InvoiceDetail{}).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).
		Where("invoice_id = ? AND status <> ?", invoiceID, constants.PaymentStatusCompleted).
		Delete(&paymentModel.Payment{}).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&model.Invoice{}, "id = ?", invoiceID).Error
}

/* ====================== DETAILS ====================== */

func FindDetailByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.InvoiceDetail, error) {
	var d model.InvoiceDetail
	err := db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrInvoiceDetailNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func CreateDetail(ctx context.Context, db *gorm.DB, d *model.InvoiceDetail) error {
	return helper.MapStoreError(db.WithContext(ctx).Create(d).Error, nil)
}

func SaveDetail(ctx context.Context, db *gorm.DB, d *model.InvoiceDetail) error {
	return helper.MapStoreError(db.WithContext(ctx).Save(d).Error, nil)
}

func DeleteDetail(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Delete(&model.InvoiceDetail{}, "id = ?", id).Error
}

func ListDetails(ctx context.Context, db *gorm.DB, invoiceID *uuid.UUID, p helper.Paging) ([]model.InvoiceDetail, int64, error) {
	var (
		rows  []model.InvoiceDetail
		total int64
	)
	q := db.WithContext(ctx).Model(&model.InvoiceDetail{})
	if invoiceID != nil {
		q = q.Where("invoice_id = ?", *invoiceID)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at ASC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}

func DetailsOf(ctx context.Context, db *gorm.DB, invoiceID uuid.UUID) ([]model.InvoiceDetail, error) {
	var rows []model.InvoiceDetail
	err := db.WithContext(ctx).Where("invoice_id = ?", invoiceID).Order("created_at ASC").Find(&rows).Error
	return rows, err
}
