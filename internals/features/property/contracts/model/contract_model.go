package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contract is the lease of one resident; a resident has at most one.
type Contract struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ResidentID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:ux_contracts_resident" json:"resident_id"`
	Status       string     `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	DocumentPath string     `gorm:"size:500" json:"document_path,omitempty"`
	DocumentType string     `gorm:"size:100" json:"document_type,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Contract) TableName() string {
	return "contracts"
}

func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
