package services

import (
	"errors"
	"testing"
	"time"

	"github.com/campusforum/backend/internal/models"
	"github.com/campusforum/backend/internal/principal"
	"github.com/google/uuid"
)

func adminPrincipal(admin *models.User) principal.Principal {
	return principal.Principal{ID: admin.ID, Email: admin.Email, Role: models.RoleAdmin}
}

func TestLockUnlockUser(t *testing.T) {
	db := setupTestDB(t)
	audit := NewAuditService(db)
	svc := NewAdminService(db, audit)

	admin := createTestUser(t, db, "admin")
	target := createTestUser(t, db, "target")

	locked, err := svc.LockUser(adminPrincipal(admin), target.ID, "10.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("lock failed: %v", err)
	}
	if locked.Status != models.UserLocked {
		t.Errorf("expected locked, got %s", locked.Status)
	}

	// Simulate a leftover moderation ban before the manual unlock.
	reason := "old ban"
	expires := time.Now().Add(24 * time.Hour)
	db.Model(&models.User{}).Where("id = ?", target.ID).Updates(map[string]interface{}{
		"ban_reason":     reason,
		"ban_expires_at": expires,
	})

	unlocked, err := svc.UnlockUser(adminPrincipal(admin), target.ID, "10.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("unlock failed: %v", err)
	}
	if unlocked.Status != models.UserActive {
		t.Errorf("expected active, got %s", unlocked.Status)
	}
	var refreshed models.User
	db.First(&refreshed, "id = ?", target.ID)
	if refreshed.BanReason != nil || refreshed.BanExpiresAt != nil {
		t.Error("unlock must clear ban fields")
	}

	logs, total, err := audit.List(AuditFilters{TargetUserID: &target.ID}, 0, 50)
	if err != nil {
		t.Fatalf("audit list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 audit entries, got %d", total)
	}
	for _, log := range logs {
		if log.AdminID != admin.ID {
			t.Errorf("audit entry must record the acting admin, got %s", log.AdminID)
		}
	}
}

func TestLockUser_RefusesAdmins(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db, NewAuditService(db))

	actor := createTestUser(t, db, "actor")
	other := createTestUser(t, db, "other-admin")
	db.Model(&models.User{}).Where("id = ?", other.ID).Update("role", models.RoleAdmin)

	if _, err := svc.LockUser(adminPrincipal(actor), other.ID, "", ""); !errors.Is(err, ErrCannotLockAdmin) {
		t.Errorf("expected ErrCannotLockAdmin, got %v", err)
	}
}

func TestLockUser_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db, NewAuditService(db))

	admin := createTestUser(t, db, "admin")

	if _, err := svc.LockUser(adminPrincipal(admin), uuid.New(), "", ""); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestChangeRole(t *testing.T) {
	db := setupTestDB(t)
	audit := NewAuditService(db)
	svc := NewAdminService(db, audit)

	admin := createTestUser(t, db, "admin")
	target := createTestUser(t, db, "target")

	promoted, err := svc.ChangeRole(adminPrincipal(admin), target.ID, models.RoleAdmin, "", "")
	if err != nil {
		t.Fatalf("change role failed: %v", err)
	}
	if promoted.Role != models.RoleAdmin {
		t.Errorf("expected admin role, got %s", promoted.Role)
	}

	if _, err := svc.ChangeRole(adminPrincipal(admin), target.ID, models.UserRole("superuser"), "", ""); err == nil {
		t.Error("unknown role must be rejected")
	}

	action := models.AuditRoleChanged
	_, total, err := audit.List(AuditFilters{Action: &action}, 0, 50)
	if err != nil {
		t.Fatalf("audit list failed: %v", err)
	}
	if total != 1 {
		t.Errorf("expected 1 role-change audit entry, got %d", total)
	}
}

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAdminService(db, NewAuditService(db))

	createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	db.Model(&models.User{}).Where("id = ?", bob.ID).Update("status", models.UserLocked)

	_, total, err := svc.ListUsers("", nil, 0, 50)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 users, got %d", total)
	}

	users, total, err := svc.ListUsers("ali", nil, 0, 50)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || users[0].Name != "alice" {
		t.Errorf("search must match by name, got total=%d", total)
	}

	locked := models.UserLocked
	users, total, err = svc.ListUsers("", &locked, 0, 50)
	if err != nil {
		t.Fatalf("status filter failed: %v", err)
	}
	if total != 1 || users[0].ID != bob.ID {
		t.Errorf("status filter must return only locked users, got total=%d", total)
	}
}
