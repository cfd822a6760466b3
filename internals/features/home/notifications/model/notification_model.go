package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID        uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	Message   string                 `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time              `gorm:"autoCreateTime;index" json:"created_at"`
	Residents []NotificationResident `gorm:"foreignKey:NotificationID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// NotificationResident is the delivery row for one recipient.
type NotificationResident struct {
	NotificationID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"notification_id"`
	ResidentID     uuid.UUID  `gorm:"type:uuid;primaryKey;index" json:"resident_id"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}

func (NotificationResident) TableName() string {
	return "notification_residents"
}
