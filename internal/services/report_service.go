package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusforum/backend/internal/dto"
	"github.com/campusforum/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	minReasonDetailLen = 20
	maxEvidenceURLs    = 5
)

// ReportService is the report store plus the resolution state machine.
// Reports are created pending and transition exactly once to resolved or
// dismissed; the resolution payload is written at that same transition.
type ReportService struct {
	db       *gorm.DB
	resolver *TargetResolver
	executor *ActionExecutor
	notifier *NotificationService
}

func NewReportService(db *gorm.DB, resolver *TargetResolver, executor *ActionExecutor, notifier *NotificationService) *ReportService {
	return &ReportService{db: db, resolver: resolver, executor: executor, notifier: notifier}
}

func (s *ReportService) Create(reporterID uuid.UUID, req *dto.CreateReportRequest) (*models.Report, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	exists, err := s.resolver.ValidateTarget(req.ReportType, req.TargetID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate target: %w", err)
	}
	if !exists {
		return nil, ErrTargetNotFound
	}

	selfReport, err := s.resolver.CheckSelfReport(req.ReportType, req.TargetID, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check self-report: %w", err)
	}
	if selfReport {
		return nil, ErrSelfReport
	}

	targetID, _ := uuid.Parse(req.TargetID)
	report := models.Report{
		ID:             uuid.New(),
		ReporterID:     reporterID,
		ReportType:     req.ReportType,
		TargetID:       targetID,
		ReasonCategory: req.ReasonCategory,
		ReasonDetail:   req.ReasonDetail,
		EvidenceURLs:   datatypes.JSONSlice[string](req.EvidenceURLs),
		Status:         models.ReportPending,
		CreatedAt:      time.Now(),
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

func validateCreate(req *dto.CreateReportRequest) error {
	switch req.ReportType {
	case models.ReportUser, models.ReportPost, models.ReportAnswer, models.ReportComment:
	default:
		return fmt.Errorf("invalid report_type %q", req.ReportType)
	}
	if len(strings.TrimSpace(req.ReasonDetail)) < minReasonDetailLen {
		return fmt.Errorf("reason_detail must be at least %d characters", minReasonDetailLen)
	}
	if len(req.EvidenceURLs) > maxEvidenceURLs {
		return fmt.Errorf("at most %d evidence URLs allowed", maxEvidenceURLs)
	}
	// Reason category is required except on user reports.
	if req.ReasonCategory == nil && req.ReportType != models.ReportUser {
		return errors.New("reason_category is required")
	}
	return nil
}

func (s *ReportService) GetByID(reportID uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

// List returns reports most-recent-first with the given filters applied.
func (s *ReportService) List(filters dto.ReportListFilters, skip, limit int) ([]models.Report, int64, error) {
	query := s.db.Model(&models.Report{})

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.ReportType != nil {
		query = query.Where("report_type = ?", *filters.ReportType)
	}
	if filters.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filters.ReporterID)
	}
	if filters.AdminID != nil {
		query = query.Where("resolution_admin_id = ?", *filters.AdminID)
	}
	if filters.TargetUserID != nil {
		query = query.Where("report_type = ? AND target_id = ?", models.ReportUser, *filters.TargetUserID)
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

	var reports []models.Report
	if err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// ListByTarget returns every report filed against one target, used to spot
// repeat-reported content.
func (s *ReportService) ListByTarget(targetID uuid.UUID, reportType models.ReportType) ([]models.Report, error) {
	var reports []models.Report
	err := s.db.Where("target_id = ? AND report_type = ?", targetID, reportType).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}

// transitionTo is the single pending -> terminal transition. The update is a
// compare-and-swap on status, so a report can never be resolved twice: a
// lost race or a repeat call comes back as ErrReportAlreadyResolved.
func (s *ReportService) transitionTo(reportID uuid.UUID, newStatus models.ReportStatus, resolution models.Resolution) (*models.Report, error) {
	result := s.db.Model(&models.Report{}).
		Where("id = ? AND status = ?", reportID, models.ReportPending).
		Updates(map[string]interface{}{
			"status":                  newStatus,
			"resolution_admin_id":     resolution.AdminID,
			"resolution_action_taken": resolution.ActionTaken,
			"resolution_notes":        resolution.Notes,
			"resolution_resolved_at":  resolution.ResolvedAt,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		report, err := s.GetByID(reportID)
		if err != nil {
			return nil, err
		}
		if report.Terminal() {
			return nil, ErrReportAlreadyResolved
		}
		return nil, ErrReportNotFound
	}
	return s.GetByID(reportID)
}

// Resolve is the simple pathway: record the outcome, run no remediation.
func (s *ReportService) Resolve(reportID, adminID uuid.UUID, req *dto.ResolveReportRequest) (*models.Report, error) {
	now := time.Now()
	action := req.ActionTaken
	return s.transitionTo(reportID, models.ReportResolved, models.Resolution{
		AdminID:     &adminID,
		ActionTaken: &action,
		Notes:       req.Notes,
		ResolvedAt:  &now,
	})
}

// Dismiss closes a report with no action taken.
func (s *ReportService) Dismiss(reportID, adminID uuid.UUID, notes *string) (*models.Report, error) {
	now := time.Now()
	action := models.ActionNoAction
	return s.transitionTo(reportID, models.ReportDismissed, models.Resolution{
		AdminID:     &adminID,
		ActionTaken: &action,
		Notes:       notes,
		ResolvedAt:  &now,
	})
}

// Process is the action pathway: run the executor, and only on success write
// the resolution and fan out notifications. Executor failure leaves the
// report pending. Notification failures never roll anything back.
func (s *ReportService) Process(reportID, adminID uuid.UUID, req *dto.ProcessReportRequest) (*models.Report, *models.ActionResult, error) {
	if !req.Action.Valid() {
		return nil, nil, fmt.Errorf("invalid action %q", req.Action)
	}

	report, err := s.GetByID(reportID)
	if err != nil {
		return nil, nil, err
	}
	if report.Terminal() {
		return nil, nil, ErrReportAlreadyResolved
	}

	result, err := s.executor.Execute(report, req.Action, req.Reason)
	if err != nil {
		return nil, nil, err
	}
	if !result.Success {
		return report, result, nil
	}

	now := time.Now()
	actionTaken := req.Action.Resolved()
	updated, err := s.transitionTo(reportID, models.ReportResolved, models.Resolution{
		AdminID:     &adminID,
		ActionTaken: &actionTaken,
		Notes:       &req.Reason,
		ResolvedAt:  &now,
	})
	if err != nil {
		return nil, nil, err
	}

	s.notifier.NotifyReportProcessed(updated.ReporterID, updated.ID)
	if req.Action == models.ActionDeletePost && result.TargetAuthorID != nil {
		s.notifier.NotifyContentDeleted(*result.TargetAuthorID, result.PostTitle)
	}
	if req.Action.IsBan() && result.BannedUserID != nil {
		label := "permanent"
		if result.BanDuration != nil {
			label = *result.BanDuration
		}
		s.notifier.NotifyUserBanned(*result.BannedUserID, label, req.Reason)
	}

	return updated, result, nil
}

// Details assembles the admin view: the report, a reporter summary and a
// type-specific target summary.
func (s *ReportService) Details(reportID uuid.UUID) (*dto.ReportDetailsResponse, error) {
	report, err := s.GetByID(reportID)
	if err != nil {
		return nil, err
	}

	details := &dto.ReportDetailsResponse{Report: *report}

	var reporter models.User
	if err := s.db.First(&reporter, "id = ?", report.ReporterID).Error; err == nil {
		details.Reporter = &dto.ReporterSummary{
			ID:    reporter.ID,
			Name:  reporter.Name,
			Email: reporter.Email,
		}
	}

	switch report.ReportType {
	case models.ReportPost:
		var post models.Post
		if err := s.db.First(&post, "id = ?", report.TargetID).Error; err == nil {
			deleted := post.IsDeleted
			details.Target = &dto.TargetSummary{
				Type:           models.ReportPost,
				ID:             post.ID,
				Title:          post.Title,
				ContentPreview: preview(post.Content),
				AuthorID:       &post.AuthorID,
				AuthorName:     s.userName(post.AuthorID),
				IsDeleted:      &deleted,
			}
		}
	case models.ReportAnswer:
		var answer models.Answer
		if err := s.db.First(&answer, "id = ?", report.TargetID).Error; err == nil {
			details.Target = &dto.TargetSummary{
				Type:           models.ReportAnswer,
				ID:             answer.ID,
				ContentPreview: preview(answer.Content),
				AuthorID:       &answer.AuthorID,
				AuthorName:     s.userName(answer.AuthorID),
			}
		}
	case models.ReportComment:
		var comment models.Comment
		if err := s.db.First(&comment, "id = ?", report.TargetID).Error; err == nil {
			details.Target = &dto.TargetSummary{
				Type:           models.ReportComment,
				ID:             comment.ID,
				ContentPreview: preview(comment.Content),
				AuthorID:       &comment.AuthorID,
				AuthorName:     s.userName(comment.AuthorID),
			}
		}
	case models.ReportUser:
		var user models.User
		if err := s.db.First(&user, "id = ?", report.TargetID).Error; err == nil {
			count := user.ViolationCount
			details.Target = &dto.TargetSummary{
				Type:           models.ReportUser,
				ID:             user.ID,
				Name:           user.Name,
				Email:          user.Email,
				Status:         string(user.Status),
				ViolationCount: &count,
			}
		}
	}

	return details, nil
}

func (s *ReportService) userName(userID uuid.UUID) string {
	var user models.User
	if err := s.db.Select("name").First(&user, "id = ?", userID).Error; err != nil {
		return "Unknown"
	}
	return user.Name
}

func preview(content string) string {
	if len(content) > 200 {
		return content[:200]
	}
	return content
}
