package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/campusforum/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify creates a notification record. Errors come back only on storage
// failure; moderation callers go through the BestEffort variants instead.
func (s *NotificationService) Notify(userID uuid.UUID, actorID *uuid.UUID, notificationType models.NotificationType, message string, link *string) (*models.Notification, error) {
	notification := models.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		ActorID:   actorID,
		Type:      notificationType,
		Message:   message,
		Link:      link,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&notification).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return &notification, nil
}

// notifyBestEffort swallows storage failures: moderation resolution is the
// durable outcome, notification delivery is not allowed to fail it.
func (s *NotificationService) notifyBestEffort(userID uuid.UUID, notificationType models.NotificationType, message string, link *string) {
	if _, err := s.Notify(userID, nil, notificationType, message, link); err != nil {
		slog.Error("notification dispatch failed", "user_id", userID.String(), "type", string(notificationType), "error", err)
	}
}

// NotifyReportProcessed tells the reporter their report has been handled.
func (s *NotificationService) NotifyReportProcessed(reporterID uuid.UUID, reportID uuid.UUID) {
	link := "/reports/" + reportID.String()
	s.notifyBestEffort(reporterID, models.NotifyReportUpdate,
		"Your report has been reviewed and processed by a moderator.", &link)
}

// NotifyContentDeleted tells a post author their post was removed.
func (s *NotificationService) NotifyContentDeleted(authorID uuid.UUID, postTitle string) {
	s.notifyBestEffort(authorID, models.NotifySystemNotice,
		fmt.Sprintf("Your post %q was removed for violating community guidelines.", postTitle), nil)
}

// NotifyUserBanned tells a user their account has been locked.
func (s *NotificationService) NotifyUserBanned(userID uuid.UUID, durationLabel, reason string) {
	s.notifyBestEffort(userID, models.NotifySystemNotice,
		fmt.Sprintf("Your account has been locked (%s). Reason: %s", durationLabel, reason), nil)
}

func (s *NotificationService) ListForUser(userID uuid.UUID, skip, limit int, unreadOnly bool) ([]models.Notification, int64, error) {
	query := s.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&notifications).Error; err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (s *NotificationService) UnreadCount(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (s *NotificationService) MarkRead(notificationID, userID uuid.UUID) (bool, error) {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	return result.RowsAffected > 0, result.Error
}

func (s *NotificationService) MarkAllRead(userID uuid.UUID) (int64, error) {
	result := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (s *NotificationService) Delete(notificationID, userID uuid.UUID) (bool, error) {
	result := s.db.Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&models.Notification{})
	return result.RowsAffected > 0, result.Error
}
