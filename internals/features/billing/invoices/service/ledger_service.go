// internals/features/billing/invoices/service/ledger_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/billing/invoices/model"
	"aptfee_backend/internals/features/billing/invoices/repository"
	serviceRepo "aptfee_backend/internals/features/billing/services/repository"
	subscriptionRepo "aptfee_backend/internals/features/billing/subscriptions/repository"
	subscriptionService "aptfee_backend/internals/features/billing/subscriptions/service"
	apartmentRepo "aptfee_backend/internals/features/property/apartments/repository"
	helper "aptfee_backend/internals/helpers"
)

// LedgerService owns invoice line items. Every mutation runs in one transaction that
// also re-sums the invoice total and advances the matching subscription's schedule.
type LedgerService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{DB: db, Now: time.Now}
}

func (s *LedgerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ========================== ADD ==========================

// AddLineItem charges quantity units of a service to the apartment's pending invoice,
// opening one from the subscription when none is pending.
func (s *LedgerService) AddLineItem(ctx context.Context, apartmentID, serviceID uuid.UUID, quantity int) (*model.InvoiceDetail, error) {
	if quantity < 0 {
		return nil, helper.ErrInvalidKey.WithMessage("quantity must be >= 0")
	}
	var detail *model.InvoiceDetail
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := apartmentRepo.LockByID(ctx, tx, apartmentID); err != nil {
			return err
		}
		inv, err := s.findOrOpenInvoice(ctx, tx, apartmentID, serviceID)
		if err != nil {
			return err
		}
		svc, err := serviceRepo.FindByID(ctx, tx, serviceID)
		if err != nil {
			return err
		}

		total, err := lineTotal(svc.UnitPrice, quantity)
		if err != nil {
			return err
		}
		d := &model.InvoiceDetail{
			InvoiceID: inv.ID,
			ServiceID: svc.ID,
			Quantity:  quantity,
			Total:     total,
		}
		if err := repository.CreateDetail(ctx, tx, d); err != nil {
			return fmt.Errorf("create invoice detail: %w", err)
		}
		if err := s.settle(ctx, tx, inv.ID, apartmentID, serviceID); err != nil {
			return err
		}
		detail = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// findOrOpenInvoice runs under the apartment row lock. The partial unique index on
// pending invoices is the backstop: a collision re-reads the winner's invoice.
func (s *LedgerService) findOrOpenInvoice(ctx context.Context, tx *gorm.DB, apartmentID, serviceID uuid.UUID) (*model.Invoice, error) {
	inv, err := repository.FindPendingByApartment(ctx, tx, apartmentID)
	if err != nil || inv != nil {
		return inv, err
	}

	sub, err := subscriptionRepo.FindByApartmentAndService(ctx, tx, apartmentID, serviceID)
	if err != nil {
		return nil, err
	}
	inv = &model.Invoice{
		ApartmentID: sub.ApartmentID,
		Status:      constants.InvoiceStatusPending,
		DueDate:     sub.NextBillingDate.StartOfDay(),
		TotalAmount: decimal.Zero,
		CreatedAt:   s.now(),
	}

	const sp = "open_invoice"
	if err := tx.SavePoint(sp).Error; err != nil {
		return nil, err
	}
	if createErr := repository.CreateInvoice(ctx, tx, inv); createErr != nil {
		if !helper.IsUniqueViolation(createErr) {
			return nil, fmt.Errorf("create invoice: %w", createErr)
		}
		if err := tx.RollbackTo(sp).Error; err != nil {
			return nil, err
		}
		existing, err := repository.FindPendingByApartment(ctx, tx, apartmentID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("create invoice: %w", createErr)
		}
		return existing, nil
	}
	return inv, nil
}

// settle re-sums the invoice and advances the (apartment, service) subscription by one period.
func (s *LedgerService) settle(ctx context.Context, tx *gorm.DB, invoiceID, apartmentID, serviceID uuid.UUID) error {
	if _, err := repository.RecalcTotal(ctx, tx, invoiceID); err != nil {
		return fmt.Errorf("recalc invoice total: %w", err)
	}
	sub, err := subscriptionRepo.FindByApartmentAndService(ctx, tx, apartmentID, serviceID)
	if err != nil {
		return err
	}
	next := subscriptionService.NextBillingDate(sub.NextBillingDate, sub.Frequency)
	if err := subscriptionRepo.UpdateNextBillingDate(ctx, tx, sub.ID, next); err != nil {
		return fmt.Errorf("advance billing date: %w", err)
	}
	return nil
}

func lineTotal(unitPrice decimal.Decimal, quantity int) (decimal.Decimal, error) {
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	if total.GreaterThanOrEqual(model.MaxAmount) {
		return decimal.Zero, helper.ErrInvalidKey.WithMessage("Line total is too large")
	}
	return total, nil
}

// ========================== UPDATE ==========================

// UpdateLineItem changes quantity and optionally the service. The total is priced from
// the service attached after the change.
func (s *LedgerService) UpdateLineItem(ctx context.Context, detailID uuid.UUID, quantity int, newServiceID *uuid.UUID) (*model.InvoiceDetail, error) {
	if quantity < 0 {
		return nil, helper.ErrInvalidKey.WithMessage("quantity must be >= 0")
	}
	var detail *model.InvoiceDetail
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		d, inv, err := s.lockDetail(ctx, tx, detailID)
		if err != nil {
			return err
		}
		if newServiceID != nil {
			d.ServiceID = *newServiceID
		}
		svc, err := serviceRepo.FindByID(ctx, tx, d.ServiceID)
		if err != nil {
			return err
		}
		total, err := lineTotal(svc.UnitPrice, quantity)
		if err != nil {
			return err
		}
		d.Quantity = quantity
		d.Total = total
		if err := repository.SaveDetail(ctx, tx, d); err != nil {
			return fmt.Errorf("save invoice detail: %w", err)
		}
		if err := s.settle(ctx, tx, inv.ID, inv.ApartmentID, d.ServiceID); err != nil {
			return err
		}
		detail = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// ========================== DELETE ==========================

// DeleteLineItem removes a line item. The schedule still advances, as for any other mutation.
func (s *LedgerService) DeleteLineItem(ctx context.Context, detailID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		d, inv, err := s.lockDetail(ctx, tx, detailID)
		if err != nil {
			return err
		}
		if err := repository.DeleteDetail(ctx, tx, d.ID); err != nil {
			return fmt.Errorf("delete invoice detail: %w", err)
		}
		return s.settle(ctx, tx, inv.ID, inv.ApartmentID, d.ServiceID)
	})
}

// lockDetail loads a detail and its invoice under the apartment lock. Only pending
// invoices may change.
func (s *LedgerService) lockDetail(ctx context.Context, tx *gorm.DB, detailID uuid.UUID) (*model.InvoiceDetail, *model.Invoice, error) {
	d, err := repository.FindDetailByID(ctx, tx, detailID)
	if err != nil {
		return nil, nil, err
	}
	inv, err := repository.FindInvoiceByID(ctx, tx, d.InvoiceID)
	if err != nil {
		return nil, nil, err
	}
	if _, err := apartmentRepo.LockByID(ctx, tx, inv.ApartmentID); err != nil {
		return nil, nil, err
	}
	// re-read now that writers on this apartment are serialised
	if inv, err = repository.FindInvoiceByID(ctx, tx, d.InvoiceID); err != nil {
		return nil, nil, err
	}
	if inv.Status != constants.InvoiceStatusPending {
		return nil, nil, helper.ErrInvoiceNotPending
	}
	if d, err = repository.FindDetailByID(ctx, tx, detailID); err != nil {
		return nil, nil, err
	}
	return d, inv, nil
}

// ========================== INVOICES ==========================

// DeleteInvoice drops a pending invoice with its line items.
func (s *LedgerService) DeleteInvoice(ctx context.Context, invoiceID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inv, err := repository.FindInvoiceByID(ctx, tx, invoiceID)
		if err != nil {
			return err
		}
		if _, err := apartmentRepo.LockByID(ctx, tx, inv.ApartmentID); err != nil {
			return err
		}
		if inv.Status != constants.InvoiceStatusPending {
			return helper.ErrInvoiceNotPending
		}
		return repository.DeleteInvoice(ctx, tx, inv.ID)
	})
}

// ========================== READS ==========================

func (s *LedgerService) GetInvoice(ctx context.Context, id uuid.UUID) (*model.Invoice, []model.InvoiceDetail, error) {
	inv, err := repository.FindInvoiceByID(ctx, s.DB, id)
	if err != nil {
		return nil, nil, err
	}
	details, err := repository.DetailsOf(ctx, s.DB, id)
	if err != nil {
		return nil, nil, err
	}
	return inv, details, nil
}

func (s *LedgerService) ListInvoices(ctx context.Context, f repository.InvoiceFilter, p helper.Paging) ([]model.Invoice, int64, error) {
	return repository.ListInvoices(ctx, s.DB, f, p)
}

func (s *LedgerService) ListInvoicesByApartment(ctx context.Context, apartmentID uuid.UUID, p helper.Paging) ([]model.Invoice, int64, error) {
	if _, err := apartmentRepo.FindByID(ctx, s.DB, apartmentID); err != nil {
		return nil, 0, err
	}
	return repository.ListInvoices(ctx, s.DB, repository.InvoiceFilter{ApartmentID: &apartmentID}, p)
}

func (s *LedgerService) GetLineItem(ctx context.Context, id uuid.UUID) (*model.InvoiceDetail, error) {
	return repository.FindDetailByID(ctx, s.DB, id)
}

func (s *LedgerService) ListLineItems(ctx context.Context, p helper.Paging) ([]model.InvoiceDetail, int64, error) {
	return repository.ListDetails(ctx, s.DB, nil, p)
}

func (s *LedgerService) ListLineItemsByInvoice(ctx context.Context, invoiceID uuid.UUID, p helper.Paging) ([]model.InvoiceDetail, int64, error) {
	if _, err := repository.FindInvoiceByID(ctx, s.DB, invoiceID); err != nil {
		return nil, 0, err
	}
	return repository.ListDetails(ctx, s.DB, &invoiceID, p)
}
