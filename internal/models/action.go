package models

import "github.com/google/uuid"

// ReportAction is the concrete remediation an admin picks on the process
// pathway. Distinct from ActionTaken, which is the resolution category
// recorded on the report afterwards.
type ReportAction string

const (
	ActionDeletePost       ReportAction = "DELETE_POST"
	ActionBanUser3Days     ReportAction = "BAN_USER_3_DAYS"
	ActionBanUser7Days     ReportAction = "BAN_USER_7_DAYS"
	ActionBanUserPermanent ReportAction = "BAN_USER_PERMANENT"
	ActionNone             ReportAction = "NO_ACTION"
)

func (a ReportAction) Valid() bool {
	switch a {
	case ActionDeletePost, ActionBanUser3Days, ActionBanUser7Days, ActionBanUserPermanent, ActionNone:
		return true
	}
	return false
}

func (a ReportAction) IsBan() bool {
	return a == ActionBanUser3Days || a == ActionBanUser7Days || a == ActionBanUserPermanent
}

// Resolved maps a ReportAction to the ActionTaken category recorded on the
// report resolution.
func (a ReportAction) Resolved() ActionTaken {
	switch a {
	case ActionDeletePost:
		return ActionDeletedContent
	case ActionBanUser3Days, ActionBanUser7Days, ActionBanUserPermanent:
		return ActionLockedUser
	default:
		return ActionNoAction
	}
}

// ActionResult describes what the executor actually did, for the caller to
// compose resolution and notifications from.
type ActionResult struct {
	Success        bool       `json:"success"`
	Message        string     `json:"message"`
	BanDuration    *string    `json:"ban_duration,omitempty"`
	BannedUserID   *uuid.UUID `json:"banned_user_id,omitempty"`
	TargetAuthorID *uuid.UUID `json:"target_author_id,omitempty"`
	PostTitle      string     `json:"post_title,omitempty"`
}
