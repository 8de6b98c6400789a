// Package store contains the gorm-backed persistence for the application
// lifecycle. It implements the interfaces consumed by the lifecycle engine.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/worknow-dev/worknow/internal/apperrors"
	"github.com/worknow-dev/worknow/internal/lifecycle"
	"github.com/worknow-dev/worknow/internal/models"
)

type CandidacyStore struct {
	db *gorm.DB
}

func NewCandidacyStore(db *gorm.DB) *CandidacyStore {
	return &CandidacyStore{db: db}
}

func (s *CandidacyStore) Create(ctx context.Context, app *models.Application) error {
	if err := s.db.WithContext(ctx).Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Duplicate("already applied to this posting")
		}
		return apperrors.Internal("failed to create application", err)
	}
	return nil
}

func (s *CandidacyStore) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	if err := s.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application not found")
		}
		return nil, apperrors.Internal("failed to load application", err)
	}
	return &app, nil
}

// UpdateStatus is a plain single-row status update. A decided status also
// clears the applicant read-flag so the outcome counts as unread.
func (s *CandidacyStore) UpdateStatus(ctx context.Context, id uint, status lifecycle.Status) (*models.Application, error) {
	updates := map[string]interface{}{"status": string(status)}
	if lifecycle.IsDecided(status) {
		updates["seen_by_applicant"] = false
	}

	result := s.db.WithContext(ctx).Model(&models.Application{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, apperrors.Internal("failed to update application status", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("application not found")
	}
	return s.GetByID(ctx, id)
}

// AcceptExclusive accepts the target candidacy and rejects its siblings in a
// single transaction. The target row is locked first; a concurrent accept on
// the same posting either waits and then fails the reviewable re-check, or is
// aborted by the database, so two Accepted rows can never coexist.
func (s *CandidacyStore) AcceptExclusive(ctx context.Context, id uint) (*models.Application, error) {
	var accepted models.Application

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target models.Application
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&target, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("application not found")
			}
			return apperrors.Internal("failed to lock application", err)
		}

		status, err := lifecycle.ParseStatus(target.Status)
		if err != nil || !lifecycle.IsReviewable(status) {
			return apperrors.Conflict("application is no longer reviewable")
		}

		if err := tx.Model(&models.Application{}).
			Where("posting_kind = ? AND posting_id = ? AND id <> ? AND status <> ?",
				target.PostingKind, target.PostingID, target.ID, string(lifecycle.StatusAccepted)).
			Updates(map[string]interface{}{
				"status":            string(lifecycle.StatusRejected),
				"seen_by_applicant": false,
			}).Error; err != nil {
			return apperrors.Internal("failed to reject sibling applications", err)
		}

		if err := tx.Model(&target).Updates(map[string]interface{}{
			"status":            string(lifecycle.StatusAccepted),
			"seen_by_applicant": false,
		}).Error; err != nil {
			return apperrors.Internal("failed to accept application", err)
		}

		accepted = target
		accepted.Status = string(lifecycle.StatusAccepted)
		accepted.SeenByApplicant = false
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &accepted, nil
}

func (s *CandidacyStore) ListByApplicant(ctx context.Context, userID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list applications", err)
	}
	return apps, nil
}

func (s *CandidacyStore) ListByOwner(ctx context.Context, companyID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list company applications", err)
	}
	return apps, nil
}

func (s *CandidacyStore) CountUnread(ctx context.Context, accountID uint, role lifecycle.Role) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&models.Application{})
	switch role {
	case lifecycle.RoleApplicant:
		query = query.Where("user_id = ? AND status IN ? AND seen_by_applicant = ?",
			accountID, decidedStatuses(), false)
	case lifecycle.RoleOwner:
		query = query.Where("company_id = ? AND status IN ? AND seen_by_owner = ?",
			accountID, reviewableStatuses(), false)
	default:
		return 0, apperrors.Internal("unknown notification role", nil)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, apperrors.Internal("failed to count unread applications", err)
	}
	return count, nil
}

func (s *CandidacyStore) MarkRead(ctx context.Context, accountID uint, role lifecycle.Role, ids []uint) (int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Application{})
	var flag string
	switch role {
	case lifecycle.RoleApplicant:
		flag = "seen_by_applicant"
		query = query.Where("user_id = ?", accountID)
		if len(ids) == 0 {
			query = query.Where("status IN ? AND seen_by_applicant = ?", decidedStatuses(), false)
		}
	case lifecycle.RoleOwner:
		flag = "seen_by_owner"
		query = query.Where("company_id = ?", accountID)
		if len(ids) == 0 {
			query = query.Where("status IN ? AND seen_by_owner = ?", reviewableStatuses(), false)
		}
	default:
		return 0, apperrors.Internal("unknown notification role", nil)
	}
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}

	result := query.Update(flag, true)
	if result.Error != nil {
		return 0, apperrors.Internal("failed to mark applications as read", result.Error)
	}
	return result.RowsAffected, nil
}

func decidedStatuses() []string {
	return []string{string(lifecycle.StatusAccepted), string(lifecycle.StatusRejected)}
}

func reviewableStatuses() []string {
	return []string{string(lifecycle.StatusPending), string(lifecycle.StatusUnderReview)}
}
