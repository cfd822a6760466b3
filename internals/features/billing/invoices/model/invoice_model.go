package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxAmount is the first value a numeric(12,2) money column cannot hold.
var MaxAmount = decimal.New(1, 10)

// Invoice accumulates charges for one apartment while pending.
// TotalAmount is always the sum of its details' totals.
type Invoice struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ApartmentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"apartment_id"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"total_amount"`
	DueDate     time.Time       `gorm:"not null" json:"due_date"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Invoice) TableName() string {
	return "invoices"
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
