package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the portfolio owner's record. The site assumes a single owner;
// every other entity hangs off it via profile_id.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Name         string `gorm:"size:255;not null" json:"name"`
	Role         string `gorm:"size:255" json:"role"`
	Tagline      string `gorm:"size:512" json:"tagline"`
	Bio          string `gorm:"type:text" json:"bio"`
	Email        string `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	MobileNumber string `gorm:"size:64" json:"mobile_number,omitempty"`
	Location     string `gorm:"size:255" json:"location,omitempty"`
	Availability string `gorm:"size:255" json:"availability"`

	Github    string `gorm:"size:512" json:"github,omitempty"`
	Linkedin  string `gorm:"size:512" json:"linkedin,omitempty"`
	Instagram string `gorm:"size:512" json:"instagram,omitempty"`
	Twitter   string `gorm:"size:512" json:"twitter,omitempty"`

	Skills    []string `gorm:"serializer:json" json:"skills"`
	AboutText string   `gorm:"type:text" json:"about_text,omitempty"`
	ImageURL  string   `gorm:"size:512" json:"image_url,omitempty"`
	ResumeURL string   `gorm:"size:512" json:"resume_url,omitempty"`

	// Password carries the cleartext only on the wire (create/update); the
	// stored form is always the bcrypt hash and never serializes back out.
	Password       string `gorm:"-" json:"password,omitempty"`
	HashedPassword []byte `gorm:"column:hashed_password" json:"-"`

	Experiences []Experience `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"experiences"`
	Interests   []Interest   `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"interests"`
	Services    []Service    `gorm:"foreignKey:ProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
