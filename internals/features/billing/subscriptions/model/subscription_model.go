package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/helpers/dbtime"
)

// Subscription ties an apartment to a service on a billing cadence.
// (apartment_id, service_id, frequency) is unique.
type Subscription struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	ApartmentID     uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:ux_subscriptions_triple;index" json:"apartment_id"`
	ServiceID       uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:ux_subscriptions_triple" json:"service_id"`
	Frequency       string      `gorm:"type:varchar(20);not null;uniqueIndex:ux_subscriptions_triple" json:"frequency"`
	NextBillingDate dbtime.Date `gorm:"type:date;not null" json:"next_billing_date"`
	Status          string      `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt       time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
