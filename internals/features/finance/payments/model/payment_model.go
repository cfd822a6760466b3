package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment settles an invoice. OrderID is the gateway reference; for Snap checkouts it
// equals the payment id.
type Payment struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Amount           decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status           string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentDate      time.Time       `gorm:"not null" json:"payment_date"`
	OrderID          string          `gorm:"size:64;not null;uniqueIndex:ux_payments_order_id" json:"order_id"`
	GatewayReference *string         `gorm:"size:100" json:"gateway_reference,omitempty"`
	GatewayPayload   datatypes.JSON  `gorm:"type:jsonb" json:"gateway_payload,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.OrderID == "" {
		p.OrderID = p.ID.String()
	}
	return nil
}
