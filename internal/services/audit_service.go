package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/campusforum/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditService records manual admin actions on user accounts.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

type AuditEntry struct {
	AdminID         uuid.UUID
	AdminEmail      string
	TargetUserID    uuid.UUID
	TargetUserEmail string
	Action          models.AuditAction
	OldValue        map[string]interface{}
	NewValue        map[string]interface{}
	IPAddress       string
	UserAgent       string
}

func (s *AuditService) Record(entry AuditEntry) (*models.AuditLog, error) {
	log := models.AuditLog{
		ID:              uuid.New(),
		AdminID:         entry.AdminID,
		AdminEmail:      entry.AdminEmail,
		TargetUserID:    entry.TargetUserID,
		TargetUserEmail: entry.TargetUserEmail,
		Action:          entry.Action,
		IPAddress:       entry.IPAddress,
		UserAgent:       entry.UserAgent,
		CreatedAt:       time.Now(),
	}

	if entry.OldValue != nil {
		if b, err := json.Marshal(entry.OldValue); err == nil {
			log.OldValue = datatypes.JSON(b)
		}
	}
	if entry.NewValue != nil {
		if b, err := json.Marshal(entry.NewValue); err == nil {
			log.NewValue = datatypes.JSON(b)
		}
	}

	if err := s.db.Create(&log).Error; err != nil {
		return nil, fmt.Errorf("failed to create audit log: %w", err)
	}
	return &log, nil
}

type AuditFilters struct {
	AdminID      *uuid.UUID
	TargetUserID *uuid.UUID
	Action       *models.AuditAction
	From         *time.Time
	To           *time.Time
}

func (s *AuditService) List(filters AuditFilters, skip, limit int) ([]models.AuditLog, int64, error) {
	query := s.db.Model(&models.AuditLog{})

	if filters.AdminID != nil {
		query = query.Where("admin_id = ?", *filters.AdminID)
	}
	if filters.TargetUserID != nil {
		query = query.Where("target_user_id = ?", *filters.TargetUserID)
	}
	if filters.Action != nil {
		query = query.Where("action = ?", *filters.Action)
	}
	if filters.From != nil {
		query = query.Where("created_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("created_at <= ?", *filters.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
