package models

import (
	"time"

	"github.com/google/uuid"
)

type Podcast struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null" json:"category_id"`
	Category    Category  `gorm:"constraint:OnDelete:RESTRICT" json:"category"`
	FrontImage  string    `gorm:"type:text;not null" json:"front_image"`
	AudioFile   string    `gorm:"type:text;not null" json:"audio_file"`
	DurationSec int       `json:"duration_sec"`
	UserID      uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
