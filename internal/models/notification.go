package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifyNewAnswer      NotificationType = "new_answer"
	NotifyNewComment     NotificationType = "new_comment"
	NotifyReportUpdate   NotificationType = "report_update"
	NotifyPostUpvote     NotificationType = "post_upvote"
	NotifyAnswerAccepted NotificationType = "answer_accepted"
	NotifySystemNotice   NotificationType = "system_notice"
)

// Notification is append-only; only IsRead is ever mutated.
type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	ActorID   *uuid.UUID       `gorm:"type:uuid" json:"actor_id,omitempty"`
	Type      NotificationType `gorm:"size:30;not null" json:"type"`
	Message   string           `gorm:"size:1000;not null" json:"message"`
	Link      *string          `gorm:"size:500" json:"link,omitempty"`
	IsRead    bool             `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
