package dto

import "github.com/campusforum/backend/internal/models"

type ChangeRoleRequest struct {
	Role models.UserRole `json:"role"`
}

type UserListResponse struct {
	Users []models.User `json:"users"`
	Total int64         `json:"total"`
	Skip  int           `json:"skip"`
	Limit int           `json:"limit"`
}

type AuditLogListResponse struct {
	Logs  []models.AuditLog `json:"logs"`
	Total int64             `json:"total"`
	Skip  int               `json:"skip"`
	Limit int               `json:"limit"`
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	UnreadCount   int64                 `json:"unread_count"`
}
