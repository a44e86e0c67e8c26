package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ReportType string

const (
	ReportUser    ReportType = "user"
	ReportPost    ReportType = "post"
	ReportAnswer  ReportType = "answer"
	ReportComment ReportType = "comment"
)

type ReasonCategory string

const (
	ReasonSpam          ReasonCategory = "spam"
	ReasonInappropriate ReasonCategory = "inappropriate"
	ReasonHarassment    ReasonCategory = "harassment"
	ReasonOffensive     ReasonCategory = "offensive"
	ReasonMisleading    ReasonCategory = "misleading"
	ReasonOther         ReasonCategory = "other"
)

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

type ActionTaken string

const (
	ActionWarned         ActionTaken = "warned"
	ActionLockedUser     ActionTaken = "locked_user"
	ActionDeletedContent ActionTaken = "deleted_content"
	ActionNoAction       ActionTaken = "no_action"
)

// Resolution is written exactly once, at the pending -> resolved/dismissed
// transition. All fields are nil while the report is pending.
type Resolution struct {
	AdminID     *uuid.UUID   `gorm:"type:uuid;index" json:"admin_id,omitempty"`
	ActionTaken *ActionTaken `gorm:"size:20" json:"action_taken,omitempty"`
	Notes       *string      `gorm:"size:1000" json:"notes,omitempty"`
	ResolvedAt  *time.Time   `json:"resolved_at,omitempty"`
}

// Report is a user complaint against a post, answer, comment or another
// user. TargetID is polymorphic; ReportType says which table it points at.
type Report struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID     uuid.UUID                   `gorm:"type:uuid;not null;index" json:"reporter_id"`
	ReportType     ReportType                  `gorm:"size:20;not null;index" json:"report_type"`
	TargetID       uuid.UUID                   `gorm:"type:uuid;not null;index" json:"target_id"`
	ReasonCategory *ReasonCategory             `gorm:"size:20" json:"reason_category,omitempty"`
	ReasonDetail   string                      `gorm:"size:2000;not null" json:"reason_detail"`
	EvidenceURLs   datatypes.JSONSlice[string] `json:"evidence_urls"`
	Status         ReportStatus                `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Resolution     Resolution                  `gorm:"embedded;embeddedPrefix:resolution_" json:"resolution"`
	CreatedAt      time.Time                   `gorm:"index" json:"created_at"`
	Reporter       User                        `gorm:"foreignKey:ReporterID" json:"-"`
}

// Terminal reports whether the report has left the pending state.
func (r *Report) Terminal() bool {
	return r.Status == ReportResolved || r.Status == ReportDismissed
}
