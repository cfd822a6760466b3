package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/billing/services/model"
	helper "aptfee_backend/internals/helpers"
)

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Service, error) {
	var s model.Service
	err := db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrServiceNotExisted
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ExistsByName compares normalised keys, so "Water" and " water " collide.
func ExistsByName(ctx context.Context, db *gorm.DB, name string, exceptID uuid.UUID) (bool, error) {
	var n int64
	q := db.WithContext(ctx).Model(&model.Service{}).Where("name_key = ?", helper.NameKey(name))
	if exceptID != uuid.Nil {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func Create(ctx context.Context, db *gorm.DB, s *model.Service) error {
	return helper.MapStoreError(db.WithContext(ctx).Create(s).Error, helper.ErrServiceExisted)
}

func Save(ctx context.Context, db *gorm.DB, s *model.Service) error {
	return helper.MapStoreError(db.WithContext(ctx).Save(s).Error, helper.ErrServiceExisted)
}

func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Delete(&model.Service{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapStoreError(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return helper.ErrServiceNotExisted
	}
	return nil
}

func List(ctx context.Context, db *gorm.DB, p helper.Paging) ([]model.Service, int64, error) {
	var (
		rows  []model.Service
		total int64
	)
	q := db.WithContext(ctx).Model(&model.Service{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name ASC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}
