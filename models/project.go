package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project statuses accepted on the wire.
const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusPlanned    = "planned"
)

// Project belongs to a Profile. Wire field names follow the frontend contract
// (camelCase for the long-form fields), DB columns stay snake_case.
type Project struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	ProfileID uuid.UUID `gorm:"type:uuid;index;not null" json:"profile_id"`

	Title           string   `gorm:"size:255;not null" json:"title" binding:"required"`
	Description     string   `gorm:"type:text;not null" json:"description" binding:"required"`
	LongDescription string   `gorm:"column:long_description;type:text" json:"longDescription,omitempty"`
	Image           string   `gorm:"size:512" json:"image"`
	Category        string   `gorm:"size:128;index" json:"category"`
	Tags            []string `gorm:"serializer:json" json:"tags"`

	GithubURL string `gorm:"column:github_url;size:512" json:"githubUrl,omitempty"`
	LiveURL   string `gorm:"column:live_url;size:512" json:"liveUrl,omitempty"`

	Status   string `gorm:"size:32;default:completed" json:"status"`
	Date     string `gorm:"column:project_date;size:64" json:"date,omitempty"`
	Duration string `gorm:"size:64" json:"duration,omitempty"`
	Client   string `gorm:"size:255" json:"client,omitempty"`

	Features     []string            `gorm:"serializer:json" json:"features"`
	Technologies map[string][]string `gorm:"serializer:json" json:"technologies"`
	Metrics      map[string]string   `gorm:"serializer:json" json:"metrics"`
	Featured     bool                `gorm:"default:false" json:"featured"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ValidProjectStatus reports whether s is one of the accepted status values.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusInProgress, ProjectStatusPlanned:
		return true
	}
	return false
}
