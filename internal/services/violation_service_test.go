package services

import (
	"testing"
	"time"

	"github.com/campusforum/backend/internal/models"
)

func TestBanDurationFor(t *testing.T) {
	if d := BanDurationFor(1); d == nil || *d != 3*24*time.Hour {
		t.Errorf("first violation must be 3 days, got %v", d)
	}
	if d := BanDurationFor(2); d == nil || *d != 7*24*time.Hour {
		t.Errorf("second violation must be 7 days, got %v", d)
	}
	if d := BanDurationFor(3); d != nil {
		t.Errorf("third violation must be permanent, got %v", *d)
	}
	if d := BanDurationFor(10); d != nil {
		t.Errorf("violations beyond three must stay permanent, got %v", *d)
	}
}

func TestRecordViolationAndBan_Escalation(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewViolationService(db)
	user := createTestUser(t, db, "offender")

	banned, err := ledger.RecordViolationAndBan(user.ID, "spam")
	if err != nil {
		t.Fatalf("first ban failed: %v", err)
	}
	if banned.ViolationCount != 1 {
		t.Errorf("expected violation_count 1, got %d", banned.ViolationCount)
	}
	if banned.Status != models.UserLocked {
		t.Errorf("expected locked status, got %s", banned.Status)
	}
	if banned.BanExpiresAt == nil {
		t.Fatal("first ban must have an expiry")
	}
	approxEqual(t, *banned.BanExpiresAt, time.Now().Add(3*24*time.Hour), time.Minute)

	banned, err = ledger.RecordViolationAndBan(user.ID, "spam again")
	if err != nil {
		t.Fatalf("second ban failed: %v", err)
	}
	if banned.ViolationCount != 2 {
		t.Errorf("expected violation_count 2, got %d", banned.ViolationCount)
	}
	if banned.BanExpiresAt == nil {
		t.Fatal("second ban must have an expiry")
	}
	approxEqual(t, *banned.BanExpiresAt, time.Now().Add(7*24*time.Hour), time.Minute)

	banned, err = ledger.RecordViolationAndBan(user.ID, "third strike")
	if err != nil {
		t.Fatalf("third ban failed: %v", err)
	}
	if banned.ViolationCount != 3 {
		t.Errorf("expected violation_count 3, got %d", banned.ViolationCount)
	}
	if banned.BanExpiresAt != nil {
		t.Errorf("third ban must be permanent, got expiry %v", banned.BanExpiresAt)
	}
	if banned.Status != models.UserLocked {
		t.Errorf("expected locked status, got %s", banned.Status)
	}
}

func TestRecordViolationAndBan_UserNotFound(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewViolationService(db)

	user := createTestUser(t, db, "someone")
	db.Delete(&models.User{}, "id = ?", user.ID)

	if _, err := ledger.RecordViolationAndBan(user.ID, "gone"); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCheckAndLazilyUnban_ExpiredBan(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewViolationService(db)
	user := createTestUser(t, db, "expired")

	past := time.Now().Add(-time.Hour)
	reason := "old offense"
	db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"status":          models.UserLocked,
		"violation_count": 1,
		"ban_reason":      reason,
		"ban_expires_at":  past,
	})

	state, err := ledger.CheckAndLazilyUnban(user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.IsBanned {
		t.Error("expired ban must report not banned")
	}
	if state.ViolationCount != 1 {
		t.Errorf("violation count must survive unban, got %d", state.ViolationCount)
	}

	var refreshed models.User
	db.First(&refreshed, "id = ?", user.ID)
	if refreshed.Status != models.UserActive {
		t.Errorf("expected active after lazy unban, got %s", refreshed.Status)
	}
	if refreshed.BanReason != nil || refreshed.BanExpiresAt != nil {
		t.Error("ban fields must clear on lazy unban")
	}

	// Second read is a no-op.
	state, err = ledger.CheckAndLazilyUnban(user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.IsBanned {
		t.Error("second read must still report not banned")
	}
}

func TestCheckAndLazilyUnban_PermanentBan(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewViolationService(db)
	user := createTestUser(t, db, "permabanned")

	reason := "repeat offender"
	db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"status":          models.UserLocked,
		"violation_count": 3,
		"ban_reason":      reason,
	})

	state, err := ledger.CheckAndLazilyUnban(user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.IsBanned {
		t.Error("permanent ban must never auto-clear")
	}
	if state.ExpiresAt != nil {
		t.Errorf("permanent ban has no expiry, got %v", state.ExpiresAt)
	}
	if state.Reason == nil || *state.Reason != reason {
		t.Errorf("expected reason %q, got %v", reason, state.Reason)
	}
}

func TestCheckAndLazilyUnban_ActiveBan(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewViolationService(db)
	user := createTestUser(t, db, "banned")

	if _, err := ledger.RecordViolationAndBan(user.ID, "abuse"); err != nil {
		t.Fatalf("ban failed: %v", err)
	}

	state, err := ledger.CheckAndLazilyUnban(user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.IsBanned {
		t.Error("unexpired ban must report banned")
	}
	if state.ExpiresAt == nil {
		t.Error("timed ban must report its expiry")
	}
}
