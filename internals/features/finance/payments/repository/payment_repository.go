package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/finance/payments/model"
	helper "aptfee_backend/internals/helpers"
)

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Payment, error) {
	var p model.Payment
	err := db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func FindByOrderID(ctx context.Context, db *gorm.DB, orderID string) (*model.Payment, error) {
	var p model.Payment
	err := db.WithContext(ctx).First(&p, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func Create(ctx context.Context, db *gorm.DB, p *model.Payment) error {
	return db.WithContext(ctx).Create(p).Error
}

func Save(ctx context.Context, db *gorm.DB, p *model.Payment) error {
	return db.WithContext(ctx).Save(p).Error
}

// Filter narrows List; zero values mean no filter.
type Filter struct {
	InvoiceID *uuid.UUID
	Status    string
}

func List(ctx context.Context, db *gorm.DB, f Filter, p helper.Paging) ([]model.Payment, int64, error) {
	var (
		rows  []model.Payment
		total int64
	)
	q := db.WithContext(ctx).Model(&model.Payment{})
	if f.InvoiceID != nil {
		q = q.Where("invoice_id = ?", *f.InvoiceID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("payment_date DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}
