package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Experience is a work-history entry on the about page.
type Experience struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	ProfileID uuid.UUID `gorm:"type:uuid;index;not null" json:"profile_id"`

	Role        string `gorm:"size:255;not null" json:"role" binding:"required"`
	Company     string `gorm:"size:255;not null" json:"company" binding:"required"`
	Period      string `gorm:"size:128;not null" json:"period" binding:"required"`
	Description string `gorm:"type:text;not null" json:"description" binding:"required"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
