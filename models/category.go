package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryName string    `gorm:"size:100;not null;unique" json:"category_name"`
	Slug         string    `gorm:"size:100;uniqueIndex" json:"slug"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Podcasts []Podcast `gorm:"foreignKey:CategoryID" json:"podcasts,omitempty"`
}
