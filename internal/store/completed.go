package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/worknow-dev/worknow/internal/apperrors"
	"github.com/worknow-dev/worknow/internal/lifecycle"
	"github.com/worknow-dev/worknow/internal/models"
)

type CompletedWorkStore struct {
	db *gorm.DB
}

func NewCompletedWorkStore(db *gorm.DB) *CompletedWorkStore {
	return &CompletedWorkStore{db: db}
}

// Create inserts the snapshot unless one already exists for the
// (applicant, posting) pair. An existing row makes this a no-op, which keeps
// repeated completion confirmations idempotent.
func (s *CompletedWorkStore) Create(ctx context.Context, cw *models.CompletedProject) error {
	err := s.db.WithContext(ctx).Create(cw).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return apperrors.Internal("failed to create completed project", err)
	}
	return nil
}

// DeleteForPosting removes the snapshot for (applicant, posting). Deleting a
// snapshot that does not exist is a no-op.
func (s *CompletedWorkStore) DeleteForPosting(ctx context.Context, userID uint, kind lifecycle.PostingKind, postingID uint) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND posting_kind = ? AND posting_id = ?", userID, string(kind), postingID).
		Delete(&models.CompletedProject{}).Error
	if err != nil {
		return apperrors.Internal("failed to delete completed project", err)
	}
	return nil
}

func (s *CompletedWorkStore) ListByApplicant(ctx context.Context, userID uint) ([]models.CompletedProject, error) {
	var projects []models.CompletedProject
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, apperrors.Internal("failed to list completed projects", err)
	}
	return projects, nil
}

// DeleteByID removes one snapshot from the applicant's profile. The user id
// is part of the predicate, so an applicant can never delete another user's
// record.
func (s *CompletedWorkStore) DeleteByID(ctx context.Context, userID, id uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CompletedProject{})
	if result.Error != nil {
		return apperrors.Internal("failed to delete completed project", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("completed project not found")
	}
	return nil
}
