package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/users/residents/model"
	helper "aptfee_backend/internals/helpers"
)

func FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Resident, error) {
	var r model.Resident
	err := db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrResidentNotExisted
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Resident, error) {
	var r model.Resident
	err := db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrResidentNotExisted
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CountByIDs reports how many of ids exist; callers compare against len(ids).
func CountByIDs(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.Resident{}).Where("id IN ?", ids).Count(&n).Error
	return n, err
}

func Create(ctx context.Context, db *gorm.DB, r *model.Resident) error {
	err := db.WithContext(ctx).Create(r).Error
	return helper.MapStoreError(err, helper.ErrResidentExisted)
}

func Save(ctx context.Context, db *gorm.DB, r *model.Resident) error {
	err := db.WithContext(ctx).Save(r).Error
	return helper.MapStoreError(err, helper.ErrResidentExisted)
}

func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Delete(&model.Resident{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapStoreError(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return helper.ErrResidentNotExisted
	}
	return nil
}

func List(ctx context.Context, db *gorm.DB, p helper.Paging) ([]model.Resident, int64, error) {
	var (
		rows  []model.Resident
		total int64
	)
	q := db.WithContext(ctx).Model(&model.Resident{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}
