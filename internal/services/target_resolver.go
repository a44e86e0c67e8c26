package services

import (
	"errors"

	"github.com/campusforum/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// targetOps is the per-type dispatch entry: how to check existence and how
// to find the owning author of a reported target.
type targetOps struct {
	exists func(db *gorm.DB, id uuid.UUID) (bool, error)
	owner  func(db *gorm.DB, id uuid.UUID) (uuid.UUID, bool, error)
}

// TargetResolver resolves a polymorphic (report_type, target_id) pair to an
// existing entity and its owning author. All methods are pure reads.
type TargetResolver struct {
	db  *gorm.DB
	ops map[models.ReportType]targetOps
}

func NewTargetResolver(db *gorm.DB) *TargetResolver {
	return &TargetResolver{
		db: db,
		ops: map[models.ReportType]targetOps{
			models.ReportPost: {
				exists: existsIn[models.Post],
				owner: func(db *gorm.DB, id uuid.UUID) (uuid.UUID, bool, error) {
					var post models.Post
					return ownerFrom(db.Select("author_id").First(&post, "id = ?", id), post.AuthorID)
				},
			},
			models.ReportAnswer: {
				exists: existsIn[models.Answer],
				owner: func(db *gorm.DB, id uuid.UUID) (uuid.UUID, bool, error) {
					var answer models.Answer
					return ownerFrom(db.Select("author_id").First(&answer, "id = ?", id), answer.AuthorID)
				},
			},
			models.ReportComment: {
				exists: existsIn[models.Comment],
				owner: func(db *gorm.DB, id uuid.UUID) (uuid.UUID, bool, error) {
					var comment models.Comment
					return ownerFrom(db.Select("author_id").First(&comment, "id = ?", id), comment.AuthorID)
				},
			},
			models.ReportUser: {
				exists: existsIn[models.User],
				// A user target owns itself.
				owner: func(db *gorm.DB, id uuid.UUID) (uuid.UUID, bool, error) {
					var user models.User
					return ownerFrom(db.Select("id").First(&user, "id = ?", id), id)
				},
			},
		},
	}
}

func existsIn[T any](db *gorm.DB, id uuid.UUID) (bool, error) {
	var count int64
	var model T
	if err := db.Model(&model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func ownerFrom(tx *gorm.DB, authorID uuid.UUID) (uuid.UUID, bool, error) {
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, tx.Error
	}
	return authorID, true, nil
}

// ValidateTarget reports whether the target exists. A malformed target ID or
// unknown report type counts as "does not exist", never an error.
func (r *TargetResolver) ValidateTarget(reportType models.ReportType, rawID string) (bool, error) {
	ops, ok := r.ops[reportType]
	if !ok {
		return false, nil
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return false, nil
	}
	return ops.exists(r.db, id)
}

// OwnerOf returns the owning author of a target: the post/answer/comment
// author, or the user itself for user targets.
func (r *TargetResolver) OwnerOf(reportType models.ReportType, targetID uuid.UUID) (uuid.UUID, bool, error) {
	ops, ok := r.ops[reportType]
	if !ok {
		return uuid.Nil, false, nil
	}
	return ops.owner(r.db, targetID)
}

// CheckSelfReport reports whether the target's owner equals the reporter.
// Missing targets are not self-reports; creation fails on existence first.
func (r *TargetResolver) CheckSelfReport(reportType models.ReportType, rawID string, reporterID uuid.UUID) (bool, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return false, nil
	}
	owner, found, err := r.OwnerOf(reportType, id)
	if err != nil {
		return false, err
	}
	return found && owner == reporterID, nil
}
