package models

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID     uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsDeleted  bool      `gorm:"not null;default:false" json:"is_deleted"`
	IsAccepted bool      `gorm:"not null;default:false" json:"is_accepted"`
	VoteScore  int       `gorm:"not null;default:0" json:"vote_score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Author     User      `gorm:"foreignKey:AuthorID" json:"-"`
}
