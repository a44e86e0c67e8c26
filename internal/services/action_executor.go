package services

import (
	"errors"
	"fmt"

	"github.com/campusforum/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionExecutor performs the concrete remediation an admin chose. It never
// resolves the report or sends notifications; the caller composes those from
// the returned ActionResult. Unperformable actions come back as
// Success=false with a message, not as an error.
type ActionExecutor struct {
	db       *gorm.DB
	resolver *TargetResolver
	ledger   *ViolationService
}

func NewActionExecutor(db *gorm.DB, resolver *TargetResolver, ledger *ViolationService) *ActionExecutor {
	return &ActionExecutor{db: db, resolver: resolver, ledger: ledger}
}

func (e *ActionExecutor) Execute(report *models.Report, action models.ReportAction, reason string) (*models.ActionResult, error) {
	switch {
	case action == models.ActionDeletePost:
		return e.deletePost(report)
	case action.IsBan():
		return e.banUser(report, reason)
	case action == models.ActionNone:
		return &models.ActionResult{Success: true, Message: "No action taken"}, nil
	default:
		return &models.ActionResult{Success: false, Message: fmt.Sprintf("unknown action %q", action)}, nil
	}
}

func (e *ActionExecutor) deletePost(report *models.Report) (*models.ActionResult, error) {
	if report.ReportType != models.ReportPost {
		return &models.ActionResult{
			Success: false,
			Message: fmt.Sprintf("DELETE_POST does not apply to %s reports", report.ReportType),
		}, nil
	}

	var post models.Post
	if err := e.db.First(&post, "id = ?", report.TargetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.ActionResult{Success: false, Message: "Post not found"}, nil
		}
		return nil, err
	}

	if err := e.db.Model(&post).Update("is_deleted", true).Error; err != nil {
		return nil, err
	}

	return &models.ActionResult{
		Success:        true,
		Message:        "Post deleted successfully",
		TargetAuthorID: &post.AuthorID,
		PostTitle:      post.Title,
	}, nil
}

func (e *ActionExecutor) banUser(report *models.Report, reason string) (*models.ActionResult, error) {
	userToBan, found, err := e.resolver.OwnerOf(report.ReportType, report.TargetID)
	if err != nil {
		return nil, err
	}
	if !found || userToBan == uuid.Nil {
		return &models.ActionResult{Success: false, Message: "User to ban could not be resolved"}, nil
	}

	// The ledger escalates by cumulative violation count; the admin's chosen
	// 3d/7d/permanent label only establishes that this is a ban.
	banned, err := e.ledger.RecordViolationAndBan(userToBan, reason)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return &models.ActionResult{Success: false, Message: "User to ban not found"}, nil
		}
		return nil, err
	}

	label := BanDurationLabel(BanDurationFor(banned.ViolationCount))
	return &models.ActionResult{
		Success:      true,
		Message:      fmt.Sprintf("User banned for %s", label),
		BanDuration:  &label,
		BannedUserID: &banned.ID,
	}, nil
}
