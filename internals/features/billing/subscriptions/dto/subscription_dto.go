package dto

import (
	"time"

	"github.com/google/uuid"

	"aptfee_backend/internals/features/billing/subscriptions/model"
	"aptfee_backend/internals/helpers/dbtime"
)

type CreateSubscriptionRequest struct {
	ApartmentID     uuid.UUID   `json:"apartment_id" validate:"required"`
	ServiceID       uuid.UUID   `json:"service_id" validate:"required"`
	Frequency       string      `json:"frequency" validate:"required,oneof=monthly quarterly yearly"`
	NextBillingDate dbtime.Date `json:"next_billing_date"`
	Status          string      `json:"status" validate:"omitempty,oneof=active paused"`
}

type UpdateSubscriptionRequest struct {
	Frequency       *string      `json:"frequency,omitempty" validate:"omitempty,oneof=monthly quarterly yearly"`
	NextBillingDate *dbtime.Date `json:"next_billing_date,omitempty"`
	Status          *string      `json:"status,omitempty" validate:"omitempty,oneof=active paused"`
}

func (r *UpdateSubscriptionRequest) Apply(m *model.Subscription) {
	if r.Frequency != nil {
		m.Frequency = *r.Frequency
	}
	if r.NextBillingDate != nil && !r.NextBillingDate.IsZero() {
		m.NextBillingDate = *r.NextBillingDate
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}

type SubscriptionResponse struct {
	ID              uuid.UUID   `json:"id"`
	ApartmentID     uuid.UUID   `json:"apartment_id"`
	ServiceID       uuid.UUID   `json:"service_id"`
	Frequency       string      `json:"frequency"`
	NextBillingDate dbtime.Date `json:"next_billing_date"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func FromModel(m *model.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:              m.ID,
		ApartmentID:     m.ApartmentID,
		ServiceID:       m.ServiceID,
		Frequency:       m.Frequency,
		NextBillingDate: m.NextBillingDate,
		Status:          m.Status,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func FromModels(rows []model.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
