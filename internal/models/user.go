package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserActive UserStatus = "active"
	UserLocked UserStatus = "locked"
)

// User carries the violation ledger fields (ViolationCount, BanReason,
// BanExpiresAt). BanExpiresAt == nil while Status == UserLocked means a
// permanent ban.
type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string     `gorm:"size:100;not null" json:"name"`
	Email          string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password       string     `gorm:"not null" json:"-"`
	AvatarURL      *string    `gorm:"size:500" json:"avatar_url,omitempty"`
	Role           UserRole   `gorm:"size:20;not null;default:'user'" json:"role"`
	Status         UserStatus `gorm:"size:20;not null;default:'active';index" json:"status"`
	ViolationCount int        `gorm:"not null;default:0" json:"violation_count"`
	BanReason      *string    `gorm:"size:500" json:"ban_reason,omitempty"`
	BanExpiresAt   *time.Time `json:"ban_expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
