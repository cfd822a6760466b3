package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aptfee_backend/internals/features/property/apartments/model"
	helper "aptfee_backend/internals/helpers"
)

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Apartment, error) {
	var a model.Apartment
	err := db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrApartmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// LockByID takes a row lock on the apartment for the rest of tx.
// Billing writes for one apartment queue behind it.
func LockByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*model.Apartment, error) {
	var a model.Apartment
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrApartmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func Create(ctx context.Context, db *gorm.DB, a *model.Apartment) error {
	return helper.MapStoreError(db.WithContext(ctx).Create(a).Error, helper.ErrApartmentRoomExists)
}

func Save(ctx context.Context, db *gorm.DB, a *model.Apartment) error {
	return helper.MapStoreError(db.WithContext(ctx).Save(a).Error, helper.ErrApartmentRoomExists)
}

func Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Delete(&model.Apartment{}, "id = ?", id)
	if res.Error != nil {
		return helper.MapStoreError(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return helper.ErrApartmentNotFound
	}
	return nil
}

// Filter narrows List; zero values mean no filter.
type Filter struct {
	BuildingID *uuid.UUID
	ResidentID *uuid.UUID
}

func List(ctx context.Context, db *gorm.DB, f Filter, p helper.Paging) ([]model.Apartment, int64, error) {
	var (
		rows  []model.Apartment
		total int64
	)
	q := db.WithContext(ctx).Model(&model.Apartment{})
	if f.BuildingID != nil {
		q = q.Where("building_id = ?", *f.BuildingID)
	}
	if f.ResidentID != nil {
		q = q.Where("resident_id = ?", *f.ResidentID)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("room_number ASC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}
