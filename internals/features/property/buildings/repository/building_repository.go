package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/property/buildings/model"
	helper "aptfee_backend/internals/helpers"
)

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Building, error) {
	var b model.Building
	err := db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrBuildingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func Create(ctx context.Context, db *gorm.DB, b *model.Building) error {
	return helper.MapStoreError(db.WithContext(ctx).Create(b).Error, helper.ErrBuildingNameExisted)
}

func Save(ctx context.Context, db *gorm.DB, b *model.Building) error {
	return helper.MapStoreError(db.WithContext(ctx).Save(b).Error, helper.ErrBuildingNameExisted)
}

func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Delete(&model.Building{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapStoreError(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return helper.ErrBuildingNotFound
	}
	return nil
}

func List(ctx context.Context, db *gorm.DB, p helper.Paging) ([]model.Building, int64, error) {
	var (
		rows  []model.Building
		total int64
	)
	q := db.WithContext(ctx).Model(&model.Building{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name ASC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}
