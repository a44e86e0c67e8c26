package services

import (
	"testing"

	"github.com/campusforum/backend/internal/models"
	"github.com/google/uuid"
)

func pendingReport(reportType models.ReportType, reporterID, targetID uuid.UUID) *models.Report {
	return &models.Report{
		ID:         uuid.New(),
		ReporterID: reporterID,
		ReportType: reportType,
		TargetID:   targetID,
		Status:     models.ReportPending,
	}
}

func TestExecute_DeletePost(t *testing.T) {
	db := setupTestDB(t)
	executor := NewActionExecutor(db, NewTargetResolver(db), NewViolationService(db))

	author := createTestUser(t, db, "author")
	reporter := createTestUser(t, db, "reporter")
	post := createTestPost(t, db, author, "Bad Post")

	result, err := executor.Execute(pendingReport(models.ReportPost, reporter.ID, post.ID), models.ActionDeletePost, "policy violation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Message)
	}
	if result.TargetAuthorID == nil || *result.TargetAuthorID != author.ID {
		t.Errorf("expected target author %s, got %v", author.ID, result.TargetAuthorID)
	}
	if result.PostTitle != "Bad Post" {
		t.Errorf("expected post title in result, got %q", result.PostTitle)
	}

	var refreshed models.Post
	db.First(&refreshed, "id = ?", post.ID)
	if !refreshed.IsDeleted {
		t.Error("post must be soft-deleted")
	}
}

func TestExecute_DeletePost_WrongReportType(t *testing.T) {
	db := setupTestDB(t)
	executor := NewActionExecutor(db, NewTargetResolver(db), NewViolationService(db))

	author := createTestUser(t, db, "author")
	reporter := createTestUser(t, db, "reporter")
	post := createTestPost(t, db, author, "Post")
	answer := createTestAnswer(t, db, post, author)

	result, err := executor.Execute(pendingReport(models.ReportAnswer, reporter.ID, answer.ID), models.ActionDeletePost, "reason")
	if err != nil {
		t.Fatalf("mismatched type must not error, got %v", err)
	}
	if result.Success {
		t.Error("DELETE_POST on an answer report must fail")
	}
	if result.Message == "" {
		t.Error("failure must carry a descriptive message")
	}
}

func TestExecute_DeletePost_MissingPost(t *testing.T) {
	db := setupTestDB(t)
	executor := NewActionExecutor(db, NewTargetResolver(db), NewViolationService(db))

	reporter := createTestUser(t, db, "reporter")

	result, err := executor.Execute(pendingReport(models.ReportPost, reporter.ID, uuid.New()), models.ActionDeletePost, "reason")
	if err != nil {
		t.Fatalf("missing post must not error, got %v", err)
	}
	if result.Success {
		t.Error("deleting a missing post must fail")
	}
}

func TestExecute_BanUser_PostReportBansAuthor(t *testing.T) {
	db := setupTestDB(t)
	executor := NewActionExecutor(db, NewTargetResolver(db), NewViolationService(db))

	author := createTestUser(t, db, "author")
	reporter := createTestUser(t, db, "reporter")
	post := createTestPost(t, db, author, "Post")

	result, err := executor.Execute(pendingReport(models.ReportPost, reporter.ID, post.ID), models.ActionBanUser3Days, "spam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Message)
	}
	if result.BannedUserID == nil || *result.BannedUserID != author.ID {
		t.Errorf("expected post author %s banned, got %v", author.ID, result.BannedUserID)
	}
	if result.BanDuration == nil || *result.BanDuration != "3 days" {
		t.Errorf("expected 3 days label, got %v", result.BanDuration)
	}

	var refreshed models.User
	db.First(&refreshed, "id = ?", author.ID)
	if refreshed.Status != models.UserLocked || refreshed.ViolationCount != 1 {
		t.Errorf("expected locked with one violation, got %s/%d", refreshed.Status, refreshed.ViolationCount)
	}
}

// The ledger's escalation wins over the admin-chosen duration label.
func TestExecute_BanUser_EscalationOverridesRequestedDuration(t *testing.T) {
	db := setupTestDB(t)
	executor := NewActionExecutor(db, NewTargetResolver(db), NewViolationService(db))

	offender := createTestUser(t, db, "offender")
	reporter := createTestUser(t, db, "reporter")
	db.Model(&models.User{}).Where("id = ?", offender.ID).Update("violation_count", 2)

	result, err := executor.Execute(pendingReport(models.ReportUser, reporter.ID, offender.ID), models.ActionBanUser3Days, "again")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Message)
	}
	if result.BanDuration == nil || *result.BanDuration != "permanent" {
		t.Errorf("third violation must be permanent regardless of requested action, got %v", result.BanDuration)
	}

	var refreshed models.User
	db.First(&refreshed, "id = ?", offender.ID)
	if refreshed.ViolationCount != 3 || refreshed.BanExpiresAt != nil {
		t.Errorf("expected permanent ban at count 3, got count=%d expiry=%v", refreshed.ViolationCount, refreshed.BanExpiresAt)
	}
}

func TestExecute_BanUser_UnresolvableTarget(t *testing.T) {
	db := setupTestDB(t)
	executor := NewActionExecutor(db, NewTargetResolver(db), NewViolationService(db))

	reporter := createTestUser(t, db, "reporter")

	result, err := executor.Execute(pendingReport(models.ReportPost, reporter.ID, uuid.New()), models.ActionBanUser7Days, "spam")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Error("ban with unresolvable target must fail")
	}
}

func TestExecute_NoAction(t *testing.T) {
	db := setupTestDB(t)
	executor := NewActionExecutor(db, NewTargetResolver(db), NewViolationService(db))

	reporter := createTestUser(t, db, "reporter")

	result, err := executor.Execute(pendingReport(models.ReportUser, reporter.ID, uuid.New()), models.ActionNone, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Error("NO_ACTION must always succeed")
	}
}
