package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "aptfee_backend/internals/databases"
	serviceModel "aptfee_backend/internals/features/billing/services/model"
	"aptfee_backend/internals/features/billing/subscriptions/dto"
	apartmentModel "aptfee_backend/internals/features/property/apartments/model"
	buildingModel "aptfee_backend/internals/features/property/buildings/model"
	helper "aptfee_backend/internals/helpers"
	"aptfee_backend/internals/helpers/dbtime"
)

func fixtures(t *testing.T) (*gorm.DB, uuid.UUID, uuid.UUID) {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	b := &buildingModel.Building{Name: "Tower A"}
	require.NoError(t, db.Create(b).Error)
	a := &apartmentModel.Apartment{RoomNumber: "101", BuildingID: b.ID}
	require.NoError(t, db.Create(a).Error)
	s := &serviceModel.Service{Name: "Water", UnitPrice: decimal.RequireFromString("12.50")}
	require.NoError(t, db.Create(s).Error)
	return db, a.ID, s.ID
}

func TestCreateSubscriptionDuplicateTripleConflicts(t *testing.T) {
	db, aptID, svcID := fixtures(t)
	svc := NewSubscriptionService(db)
	ctx := context.Background()

	req := dto.CreateSubscriptionRequest{
		ApartmentID:     aptID,
		ServiceID:       svcID,
		Frequency:       "monthly",
		NextBillingDate: dbtime.NewDate(2024, time.March, 1),
	}
	m, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "active", m.Status)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, helper.ErrSubscriptionExisted)

	// a different cadence for the same pair is allowed
	req.Frequency = "yearly"
	_, err = svc.Create(ctx, req)
	assert.NoError(t, err)
}

func TestCreateSubscriptionRequiresApartmentAndService(t *testing.T) {
	db, aptID, svcID := fixtures(t)
	svc := NewSubscriptionService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateSubscriptionRequest{ApartmentID: uuid.New(), ServiceID: svcID, Frequency: "monthly"})
	assert.ErrorIs(t, err, helper.ErrApartmentNotFound)

	_, err = svc.Create(ctx, dto.CreateSubscriptionRequest{ApartmentID: aptID, ServiceID: uuid.New(), Frequency: "monthly"})
	assert.ErrorIs(t, err, helper.ErrServiceNotExisted)
}

func TestCreateSubscriptionDefaultsBillingDateToToday(t *testing.T) {
	db, aptID, svcID := fixtures(t)
	svc := NewSubscriptionService(db)
	svc.Now = func() time.Time { return time.Date(2024, 5, 17, 15, 0, 0, 0, time.UTC) }

	m, err := svc.Create(context.Background(), dto.CreateSubscriptionRequest{ApartmentID: aptID, ServiceID: svcID, Frequency: "quarterly"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-17", got.NextBillingDate.String())
}

func TestUpdateSubscriptionIntoExistingTripleConflicts(t *testing.T) {
	db, aptID, svcID := fixtures(t)
	svc := NewSubscriptionService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateSubscriptionRequest{ApartmentID: aptID, ServiceID: svcID, Frequency: "monthly"})
	require.NoError(t, err)
	other, err := svc.Create(ctx, dto.CreateSubscriptionRequest{ApartmentID: aptID, ServiceID: svcID, Frequency: "yearly"})
	require.NoError(t, err)

	monthly := "monthly"
	_, err = svc.Update(ctx, other.ID, dto.UpdateSubscriptionRequest{Frequency: &monthly})
	assert.ErrorIs(t, err, helper.ErrSubscriptionExisted)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New()), helper.ErrSubscriptionNotFound)
}
