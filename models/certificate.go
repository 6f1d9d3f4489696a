package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate belongs to a Profile. Slug is unique per profile and is derived
// from the title server-side when the request leaves it blank.
type Certificate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	ProfileID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_certificates_profile_slug" json:"profile_id"`

	Slug   string `gorm:"size:255;not null;uniqueIndex:idx_certificates_profile_slug" json:"slug"`
	Title  string `gorm:"size:255;not null" json:"title" binding:"required"`
	Issuer string `gorm:"size:255;not null" json:"issuer" binding:"required"`
	Date   string `gorm:"column:certificate_date;size:64;not null" json:"date"`
	Image  string `gorm:"size:512" json:"image"`

	Description   string `gorm:"type:text" json:"description"`
	CredentialURL string `gorm:"column:credential_url;size:512" json:"credentialUrl"`

	LongDescription string   `gorm:"column:long_description;type:text" json:"longDescription,omitempty"`
	Skills          []string `gorm:"serializer:json" json:"skills"`
	Duration        string   `gorm:"size:64" json:"duration,omitempty"`
	Level           string   `gorm:"size:64" json:"level,omitempty"`
	Modules         []string `gorm:"serializer:json" json:"modules"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
