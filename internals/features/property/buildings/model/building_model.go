package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "aptfee_backend/internals/helpers"
)

type Building struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:150;not null" json:"name"`
	NameKey        string    `gorm:"size:150;not null;uniqueIndex:ux_buildings_name_key" json:"-"`
	Address        string    `gorm:"size:255" json:"address"`
	ApartmentCount int       `gorm:"not null;default:0" json:"apartment_count"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Building) TableName() string {
	return "buildings"
}

func (b *Building) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps the uniqueness key in step with the display name.
func (b *Building) BeforeSave(tx *gorm.DB) error {
	b.Name = helper.NormalizeName(b.Name)
	b.NameKey = helper.NameKey(b.Name)
	return nil
}
