package services

import (
	"testing"

	"github.com/campusforum/backend/internal/models"
	"github.com/google/uuid"
)

func TestNotificationLifecycle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	user := createTestUser(t, db, "recipient")

	first, err := svc.Notify(user.ID, nil, models.NotifySystemNotice, "first", nil)
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if _, err := svc.Notify(user.ID, nil, models.NotifyReportUpdate, "second", nil); err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	notifications, total, err := svc.ListForUser(user.ID, 0, 50, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(notifications) != 2 {
		t.Fatalf("expected 2 notifications, got total=%d len=%d", total, len(notifications))
	}

	count, err := svc.UnreadCount(user.ID)
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 unread, got %d", count)
	}

	ok, err := svc.MarkRead(first.ID, user.ID)
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if !ok {
		t.Error("expected mark read to report success")
	}

	count, _ = svc.UnreadCount(user.ID)
	if count != 1 {
		t.Errorf("expected 1 unread after mark read, got %d", count)
	}

	_, total, err = svc.ListForUser(user.ID, 0, 50, true)
	if err != nil {
		t.Fatalf("list unread failed: %v", err)
	}
	if total != 1 {
		t.Errorf("unread-only list must return 1, got %d", total)
	}

	updated, err := svc.MarkAllRead(user.ID)
	if err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}
	if updated != 1 {
		t.Errorf("expected 1 row updated, got %d", updated)
	}

	ok, err = svc.Delete(first.ID, user.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !ok {
		t.Error("expected delete to report success")
	}
	_, total, _ = svc.ListForUser(user.ID, 0, 50, false)
	if total != 1 {
		t.Errorf("expected 1 notification after delete, got %d", total)
	}
}

func TestNotification_OwnershipScoping(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db)
	owner := createTestUser(t, db, "owner")
	intruder := createTestUser(t, db, "intruder")

	notification, err := svc.Notify(owner.ID, nil, models.NotifySystemNotice, "private", nil)
	if err != nil {
		t.Fatalf("notify failed: %v", err)
	}

	ok, err := svc.MarkRead(notification.ID, intruder.ID)
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if ok {
		t.Error("another user must not be able to mark the notification read")
	}

	ok, err = svc.Delete(notification.ID, intruder.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if ok {
		t.Error("another user must not be able to delete the notification")
	}

	ok, err = svc.MarkRead(uuid.New(), owner.ID)
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if ok {
		t.Error("marking a missing notification must report false")
	}
}
