package services

import (
	"errors"

	"github.com/campusforum/backend/internal/models"
	"github.com/campusforum/backend/internal/principal"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminService is the manual user-management surface of the admin panel.
// Manual lock/unlock changes account status only; it does not touch the
// violation ledger, which is owned by moderation actions.
type AdminService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewAdminService(db *gorm.DB, audit *AuditService) *AdminService {
	return &AdminService{db: db, audit: audit}
}

func (s *AdminService) ListUsers(search string, status *models.UserStatus, skip, limit int) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{})

	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *AdminService) GetUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// LockUser manually locks an account. Admin accounts cannot be locked.
func (s *AdminService) LockUser(admin principal.Principal, userID uuid.UUID, ip, userAgent string) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user.Role == models.RoleAdmin {
		return nil, ErrCannotLockAdmin
	}

	oldStatus := user.Status
	if err := s.db.Model(user).Update("status", models.UserLocked).Error; err != nil {
		return nil, err
	}
	user.Status = models.UserLocked

	s.auditStatusChange(admin, user, models.AuditUserLocked, oldStatus, models.UserLocked, ip, userAgent)
	return user, nil
}

// UnlockUser reactivates an account and clears any ban fields.
func (s *AdminService) UnlockUser(admin principal.Principal, userID uuid.UUID, ip, userAgent string) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	oldStatus := user.Status
	if err := s.db.Model(user).Updates(map[string]interface{}{
		"status":         models.UserActive,
		"ban_reason":     nil,
		"ban_expires_at": nil,
	}).Error; err != nil {
		return nil, err
	}
	user.Status = models.UserActive
	user.BanReason = nil
	user.BanExpiresAt = nil

	s.auditStatusChange(admin, user, models.AuditUserUnlocked, oldStatus, models.UserActive, ip, userAgent)
	return user, nil
}

func (s *AdminService) ChangeRole(admin principal.Principal, userID uuid.UUID, newRole models.UserRole, ip, userAgent string) (*models.User, error) {
	if newRole != models.RoleUser && newRole != models.RoleAdmin {
		return nil, errors.New("invalid role")
	}

	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	oldRole := user.Role
	if err := s.db.Model(user).Update("role", newRole).Error; err != nil {
		return nil, err
	}
	user.Role = newRole

	s.audit.Record(AuditEntry{
		AdminID:         admin.ID,
		AdminEmail:      admin.Email,
		TargetUserID:    user.ID,
		TargetUserEmail: user.Email,
		Action:          models.AuditRoleChanged,
		OldValue:        map[string]interface{}{"role": oldRole},
		NewValue:        map[string]interface{}{"role": newRole},
		IPAddress:       ip,
		UserAgent:       userAgent,
	})
	return user, nil
}

func (s *AdminService) auditStatusChange(admin principal.Principal, user *models.User, action models.AuditAction, oldStatus, newStatus models.UserStatus, ip, userAgent string) {
	s.audit.Record(AuditEntry{
		AdminID:         admin.ID,
		AdminEmail:      admin.Email,
		TargetUserID:    user.ID,
		TargetUserEmail: user.Email,
		Action:          action,
		OldValue:        map[string]interface{}{"status": oldStatus},
		NewValue:        map[string]interface{}{"status": newStatus},
		IPAddress:       ip,
		UserAgent:       userAgent,
	})
}
