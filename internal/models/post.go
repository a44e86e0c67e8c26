package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a question thread. Moderation soft-deletes via IsDeleted; the row
// is never purged.
type Post struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Title       string    `gorm:"size:300;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	IsDeleted   bool      `gorm:"not null;default:false;index" json:"is_deleted"`
	AnswerCount int       `gorm:"not null;default:0" json:"answer_count"`
	VoteScore   int       `gorm:"not null;default:0" json:"vote_score"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Author      User      `gorm:"foreignKey:AuthorID" json:"-"`
}
