package services

import (
	"testing"
	"time"

	"github.com/campusforum/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Answer{},
		&models.Comment{},
		&models.Report{},
		&models.Notification{},
		&models.AuditLog{},
		&models.RefreshToken{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    name + "@example.com",
		Password: "hashed",
		Role:     models.RoleUser,
		Status:   models.UserActive,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func createTestPost(t *testing.T, db *gorm.DB, author *models.User, title string) *models.Post {
	t.Helper()

	post := models.Post{
		ID:       uuid.New(),
		AuthorID: author.ID,
		Title:    title,
		Content:  "Some question content for " + title,
	}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("failed to create test post: %v", err)
	}
	return &post
}

func createTestAnswer(t *testing.T, db *gorm.DB, post *models.Post, author *models.User) *models.Answer {
	t.Helper()

	answer := models.Answer{
		ID:       uuid.New(),
		PostID:   post.ID,
		AuthorID: author.ID,
		Content:  "An answer to the question",
	}
	if err := db.Create(&answer).Error; err != nil {
		t.Fatalf("failed to create test answer: %v", err)
	}
	return &answer
}

func newTestReportService(db *gorm.DB) *ReportService {
	resolver := NewTargetResolver(db)
	ledger := NewViolationService(db)
	executor := NewActionExecutor(db, resolver, ledger)
	notifier := NewNotificationService(db)
	return NewReportService(db, resolver, executor, notifier)
}

func approxEqual(t *testing.T, got, want time.Time, tolerance time.Duration) {
	t.Helper()
	diff := got.Sub(want)
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		t.Errorf("expected time near %v, got %v (diff %v)", want, got, diff)
	}
}
