package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is an offered-service card, same shape as Interest.
type Service struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	ProfileID uuid.UUID `gorm:"type:uuid;index;not null" json:"profile_id"`

	Title       string `gorm:"size:255;not null" json:"title" binding:"required"`
	Description string `gorm:"type:text;not null" json:"description" binding:"required"`
	Icon        string `gorm:"size:64;not null" json:"icon" binding:"required"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
