package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceDetail is one line item; Total is fixed at write time as unit price x quantity.
type InvoiceDetail struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ServiceID uuid.UUID       `gorm:"type:uuid;not null;index" json:"service_id"`
	Quantity  int             `gorm:"not null;default:0" json:"quantity"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InvoiceDetail) TableName() string {
	return "invoice_details"
}

func (d *InvoiceDetail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
