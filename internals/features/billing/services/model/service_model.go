package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	helper "aptfee_backend/internals/helpers"
)

// Service is a billable catalogue entry (electricity, water, parking...).
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"size:150;not null" json:"name"`
	NameKey     string          `gorm:"size:150;not null;uniqueIndex:ux_services_name_key" json:"-"`
	Description string          `gorm:"type:text" json:"description"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"unit_price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *Service) BeforeSave(tx *gorm.DB) error {
	s.Name = helper.NormalizeName(s.Name)
	s.NameKey = helper.NameKey(s.Name)
	return nil
}
