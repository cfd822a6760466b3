package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/property/contracts/model"
	helper "aptfee_backend/internals/helpers"
)

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Contract, error) {
	var m model.Contract
	err := db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrContractNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func Create(ctx context.Context, db *gorm.DB, m *model.Contract) error {
	return helper.MapStoreError(db.WithContext(ctx).Create(m).Error, helper.ErrContractExisted)
}

func Save(ctx context.Context, db *gorm.DB, m *model.Contract) error {
	return helper.MapStoreError(db.WithContext(ctx).Save(m).Error, helper.ErrContractExisted)
}

func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Delete(&model.Contract{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.ErrContractNotFound
	}
	return nil
}

func List(ctx context.Context, db *gorm.DB, p helper.Paging) ([]model.Contract, int64, error) {
	var (
		rows  []model.Contract
		total int64
	)
	q := db.WithContext(ctx).Model(&model.Contract{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}
