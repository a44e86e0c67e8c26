package dto

import (
	"time"

	"github.com/campusforum/backend/internal/models"
	"github.com/google/uuid"
)

type CreateReportRequest struct {
	ReportType     models.ReportType      `json:"report_type"`
	TargetID       string                 `json:"target_id"`
	ReasonCategory *models.ReasonCategory `json:"reason_category,omitempty"`
	ReasonDetail   string                 `json:"reason_detail"`
	EvidenceURLs   []string               `json:"evidence_urls,omitempty"`
}

type ResolveReportRequest struct {
	ActionTaken models.ActionTaken `json:"action_taken"`
	Notes       *string            `json:"notes,omitempty"`
}

type DismissReportRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type ProcessReportRequest struct {
	Action models.ReportAction `json:"action"`
	Reason string              `json:"reason"`
}

// ReportListFilters is the admin-side filter set for report listing.
// Non-admin callers get ReporterID forced to their own ID by the handler.
type ReportListFilters struct {
	Status       *models.ReportStatus
	ReportType   *models.ReportType
	ReporterID   *uuid.UUID
	AdminID      *uuid.UUID
	TargetUserID *uuid.UUID
	From         *time.Time
	To           *time.Time
}

type ReportListResponse struct {
	Reports []models.Report `json:"reports"`
	Total   int64           `json:"total"`
	Skip    int             `json:"skip"`
	Limit   int             `json:"limit"`
}

type ProcessReportResponse struct {
	Report       *models.Report       `json:"report"`
	ActionResult *models.ActionResult `json:"action_result"`
}

// ReporterSummary is the trimmed reporter view in report details.
type ReporterSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// TargetSummary describes the reported entity; fields are type-dependent.
type TargetSummary struct {
	Type           models.ReportType `json:"type"`
	ID             uuid.UUID         `json:"id"`
	Title          string            `json:"title,omitempty"`
	ContentPreview string            `json:"content_preview,omitempty"`
	AuthorID       *uuid.UUID        `json:"author_id,omitempty"`
	AuthorName     string            `json:"author_name,omitempty"`
	IsDeleted      *bool             `json:"is_deleted,omitempty"`
	Name           string            `json:"name,omitempty"`
	Email          string            `json:"email,omitempty"`
	Status         string            `json:"status,omitempty"`
	ViolationCount *int              `json:"violation_count,omitempty"`
}

type ReportDetailsResponse struct {
	Report   models.Report    `json:"report"`
	Reporter *ReporterSummary `json:"reporter"`
	Target   *TargetSummary   `json:"target"`
}
