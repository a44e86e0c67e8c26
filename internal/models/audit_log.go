package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditAction string

const (
	AuditUserLocked   AuditAction = "user_locked"
	AuditUserUnlocked AuditAction = "user_unlocked"
	AuditUserUpdated  AuditAction = "user_updated"
	AuditRoleChanged  AuditAction = "role_changed"
)

// AuditLog records manual admin actions on user accounts.
type AuditLog struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AdminID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"admin_id"`
	AdminEmail      string         `gorm:"size:255;not null" json:"admin_email"`
	TargetUserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"target_user_id"`
	TargetUserEmail string         `gorm:"size:255;not null" json:"target_user_email"`
	Action          AuditAction    `gorm:"size:30;not null;index" json:"action"`
	OldValue        datatypes.JSON `json:"old_value,omitempty"`
	NewValue        datatypes.JSON `json:"new_value,omitempty"`
	IPAddress       string         `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent       string         `gorm:"size:500" json:"user_agent,omitempty"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
}
