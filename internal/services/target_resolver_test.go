package services

import (
	"testing"

	"github.com/campusforum/backend/internal/models"
	"github.com/google/uuid"
)

func TestTargetResolver_ValidateTarget(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewTargetResolver(db)

	author := createTestUser(t, db, "author")
	post := createTestPost(t, db, author, "Test Post")

	exists, err := resolver.ValidateTarget(models.ReportPost, post.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected existing post to validate")
	}

	exists, err = resolver.ValidateTarget(models.ReportPost, uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected missing post to not validate")
	}

	exists, err = resolver.ValidateTarget(models.ReportUser, author.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected existing user to validate")
	}
}

func TestTargetResolver_ValidateTarget_MalformedID(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewTargetResolver(db)

	exists, err := resolver.ValidateTarget(models.ReportPost, "not-a-uuid")
	if err != nil {
		t.Fatalf("malformed ID must not error, got %v", err)
	}
	if exists {
		t.Error("malformed ID must count as not found")
	}
}

func TestTargetResolver_ValidateTarget_UnknownType(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewTargetResolver(db)

	exists, err := resolver.ValidateTarget(models.ReportType("bogus"), uuid.New().String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("unknown report type must count as not found")
	}
}

func TestTargetResolver_CheckSelfReport(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewTargetResolver(db)

	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	post := createTestPost(t, db, author, "Own Post")
	answer := createTestAnswer(t, db, post, author)

	self, err := resolver.CheckSelfReport(models.ReportPost, post.ID.String(), author.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !self {
		t.Error("reporting own post must be a self-report")
	}

	self, err = resolver.CheckSelfReport(models.ReportPost, post.ID.String(), other.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if self {
		t.Error("reporting someone else's post must not be a self-report")
	}

	self, err = resolver.CheckSelfReport(models.ReportAnswer, answer.ID.String(), author.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !self {
		t.Error("reporting own answer must be a self-report")
	}

	self, err = resolver.CheckSelfReport(models.ReportUser, author.ID.String(), author.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !self {
		t.Error("reporting yourself must be a self-report")
	}
}

func TestTargetResolver_OwnerOf(t *testing.T) {
	db := setupTestDB(t)
	resolver := NewTargetResolver(db)

	author := createTestUser(t, db, "author")
	post := createTestPost(t, db, author, "Post")

	owner, found, err := resolver.OwnerOf(models.ReportPost, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || owner != author.ID {
		t.Errorf("expected owner %s, got %s (found=%v)", author.ID, owner, found)
	}

	_, found, err = resolver.OwnerOf(models.ReportPost, uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("missing post must have no owner")
	}
}
