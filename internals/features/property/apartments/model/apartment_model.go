package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Apartment belongs to a building and is optionally occupied by a resident.
type Apartment struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	RoomNumber string     `gorm:"size:20;not null;uniqueIndex:ux_apartments_building_room" json:"room_number"`
	Area       float64    `gorm:"not null;default:0" json:"area"`
	BuildingID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:ux_apartments_building_room" json:"building_id"`
	ResidentID *uuid.UUID `gorm:"type:uuid;index" json:"resident_id,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Apartment) TableName() string {
	return "apartments"
}

func (a *Apartment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
