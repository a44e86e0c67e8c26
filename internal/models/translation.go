package models

import (
	"time"

	"github.com/google/uuid"
)

// Translation is one UI string for one locale.
type Translation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Locale    string    `gorm:"size:8;not null;uniqueIndex:idx_translations_locale_key" json:"locale"`
	Key       string    `gorm:"size:100;not null;uniqueIndex:idx_translations_locale_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
