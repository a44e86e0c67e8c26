package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/campusforum/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BanState is the read-side view of a user's ban.
type BanState struct {
	IsBanned       bool       `json:"is_banned"`
	Reason         *string    `json:"reason,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	ViolationCount int        `json:"violation_count"`
}

// ViolationService owns the per-user violation count and ban fields.
type ViolationService struct {
	db *gorm.DB
}

func NewViolationService(db *gorm.DB) *ViolationService {
	return &ViolationService{db: db}
}

// BanDurationFor returns the ban duration for the violation count after
// increment. nil means permanent. The count alone decides the duration;
// the ban action the admin picked does not.
func BanDurationFor(violationCount int) *time.Duration {
	switch violationCount {
	case 1:
		d := 3 * 24 * time.Hour
		return &d
	case 2:
		d := 7 * 24 * time.Hour
		return &d
	default:
		return nil
	}
}

// BanDurationLabel is the human-readable form used in notifications and
// action results.
func BanDurationLabel(d *time.Duration) string {
	if d == nil {
		return "permanent"
	}
	return fmt.Sprintf("%d days", int(d.Hours()/24))
}

// RecordViolationAndBan atomically increments the user's violation count,
// computes the escalated duration and locks the account. The row lock keeps
// two concurrent bans from reading the same count.
func (s *ViolationService) RecordViolationAndBan(userID uuid.UUID, reason string) (*models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		user.ViolationCount++
		user.Status = models.UserLocked
		user.BanReason = &reason
		if d := BanDurationFor(user.ViolationCount); d != nil {
			expires := time.Now().Add(*d)
			user.BanExpiresAt = &expires
		} else {
			user.BanExpiresAt = nil
		}

		return tx.Model(&user).Updates(map[string]interface{}{
			"violation_count": user.ViolationCount,
			"status":          user.Status,
			"ban_reason":      user.BanReason,
			"ban_expires_at":  user.BanExpiresAt,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckAndLazilyUnban reports the user's ban state. An expired timed ban is
// cleared as a side effect of the read; permanent bans never auto-clear.
func (s *ViolationService) CheckAndLazilyUnban(userID uuid.UUID) (*BanState, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.Status == models.UserLocked && user.BanExpiresAt != nil && user.BanExpiresAt.Before(time.Now()) {
		if err := s.db.Model(&user).Updates(map[string]interface{}{
			"status":         models.UserActive,
			"ban_reason":     nil,
			"ban_expires_at": nil,
		}).Error; err != nil {
			return nil, err
		}
		return &BanState{IsBanned: false, ViolationCount: user.ViolationCount}, nil
	}

	state := &BanState{
		IsBanned:       user.Status == models.UserLocked,
		ViolationCount: user.ViolationCount,
	}
	if state.IsBanned {
		state.Reason = user.BanReason
		state.ExpiresAt = user.BanExpiresAt
	}
	return state, nil
}
