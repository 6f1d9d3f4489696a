package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interest is an about-page card. Icon is a string key the frontend resolves
// against its icon registry; the backend stores it opaquely.
type Interest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	ProfileID uuid.UUID `gorm:"type:uuid;index;not null" json:"profile_id"`

	Title       string `gorm:"size:255;not null" json:"title" binding:"required"`
	Description string `gorm:"type:text;not null" json:"description" binding:"required"`
	Icon        string `gorm:"size:64;not null" json:"icon" binding:"required"`
}

func (i *Interest) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
