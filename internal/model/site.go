package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Site represents a site record stored in the database. Config is a JSON
// document validated on write but stored as opaque text.
type Site struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"type:varchar(255);not null"`
	Slug        string     `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string     `json:"description,omitempty" gorm:"type:varchar(2000)"`
	Currency    Currency   `json:"currency" gorm:"type:varchar(10);not null"`
	Language    Language   `json:"language" gorm:"type:varchar(10);not null"`
	Status      SiteStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT'"`
	OwnerID     uuid.UUID  `json:"ownerId" gorm:"type:uuid;index;not null"`
	Config      string     `json:"config" gorm:"type:text"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the system-generated identifier
func (s *Site) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
