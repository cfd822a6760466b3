package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resident merepresentasikan tabel residents
type Resident struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:ux_residents_email" json:"email"`
	Phone     string    `gorm:"size:30" json:"phone"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'resident'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Resident) TableName() string {
	return "residents"
}

func (r *Resident) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
