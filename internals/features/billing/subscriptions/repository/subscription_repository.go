package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/billing/subscriptions/model"
	helper "aptfee_backend/internals/helpers"
	"aptfee_backend/internals/helpers/dbtime"
)

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Subscription, error) {
	var s model.Subscription
	err := db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByApartmentAndService returns the oldest subscription of the pair when several
// frequencies exist.
func FindByApartmentAndService(ctx context.Context, db *gorm.DB, apartmentID, serviceID uuid.UUID) (*model.Subscription, error) {
	var s model.Subscription
	err := db.WithContext(ctx).
		Where("apartment_id = ? AND service_id = ?", apartmentID, serviceID).
		Order("created_at ASC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func ExistsTriple(ctx context.Context, db *gorm.DB, apartmentID, serviceID uuid.UUID, frequency string, exceptID uuid.UUID) (bool, error) {
	var n int64
	q := db.WithContext(ctx).Model(&model.Subscription{}).
		Where("apartment_id = ? AND service_id = ? AND frequency = ?", apartmentID, serviceID, frequency)
	if exceptID != uuid.Nil {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func UpdateNextBillingDate(ctx context.Context, db *gorm.DB, id uuid.UUID, next dbtime.Date) error {
	return db.WithContext(ctx).Model(&model.Subscription{}).
		Where("id = ?", id).
		Update("next_billing_date", next).Error
}

func Create(ctx context.Context, db *gorm.DB, s *model.Subscription) error {
	return helper.MapStoreError(db.WithContext(ctx).Create(s).Error, helper.ErrSubscriptionExisted)
}

func Save(ctx context.Context, db *gorm.DB, s *model.Subscription) error {
	return helper.MapStoreError(db.WithContext(ctx).Save(s).Error, helper.ErrSubscriptionExisted)
}

func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Delete(&model.Subscription{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.ErrSubscriptionNotFound
	}
	return nil
}

func List(ctx context.Context, db *gorm.DB, apartmentID *uuid.UUID, p helper.Paging) ([]model.Subscription, int64, error) {
	var (
		rows  []model.Subscription
		total int64
	)
	q := db.WithContext(ctx).Model(&model.Subscription{})
	if apartmentID != nil {
		q = q.Where("apartment_id = ?", *apartmentID)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("next_billing_date ASC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}
