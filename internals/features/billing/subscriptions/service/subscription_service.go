package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	serviceRepo "aptfee_backend/internals/features/billing/services/repository"
	"aptfee_backend/internals/features/billing/subscriptions/dto"
	"aptfee_backend/internals/features/billing/subscriptions/model"
	"aptfee_backend/internals/features/billing/subscriptions/repository"
	apartmentRepo "aptfee_backend/internals/features/property/apartments/repository"
	helper "aptfee_backend/internals/helpers"
	"aptfee_backend/internals/helpers/dbtime"
)

type SubscriptionService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{DB: db, Now: time.Now}
}

// Create rejects a repeated (apartment, service, frequency). A missing first billing
// date defaults to today.
func (s *SubscriptionService) Create(ctx context.Context, req dto.CreateSubscriptionRequest) (*model.Subscription, error) {
	if _, err := apartmentRepo.FindByID(ctx, s.DB, req.ApartmentID); err != nil {
		return nil, err
	}
	if _, err := serviceRepo.FindByID(ctx, s.DB, req.ServiceID); err != nil {
		return nil, err
	}
	taken, err := repository.ExistsTriple(ctx, s.DB, req.ApartmentID, req.ServiceID, req.Frequency, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, helper.ErrSubscriptionExisted
	}

	next := req.NextBillingDate
	if next.IsZero() {
		next = dbtime.DateOf(s.Now())
	}
	status := req.Status
	if status == "" {
		status = constants.SubscriptionStatusActive
	}
	m := &model.Subscription{
		ApartmentID:     req.ApartmentID,
		ServiceID:       req.ServiceID,
		Frequency:       req.Frequency,
		NextBillingDate: next,
		Status:          status,
	}
	if err := repository.Create(ctx, s.DB, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SubscriptionService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSubscriptionRequest) (*model.Subscription, error) {
	m, err := repository.FindByID(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	req.Apply(m)
	taken, err := repository.ExistsTriple(ctx, s.DB, m.ApartmentID, m.ServiceID, m.Frequency, m.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, helper.ErrSubscriptionExisted
	}
	if err := repository.Save(ctx, s.DB, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SubscriptionService) Get(ctx context.Context, id uuid.UUID) (*model.Subscription, error) {
	return repository.FindByID(ctx, s.DB, id)
}

func (s *SubscriptionService) Delete(ctx context.Context, id uuid.UUID) error {
	return repository.Delete(ctx, s.DB, id)
}

func (s *SubscriptionService) List(ctx context.Context, apartmentID *uuid.UUID, p helper.Paging) ([]model.Subscription, int64, error) {
	return repository.List(ctx, s.DB, apartmentID, p)
}
