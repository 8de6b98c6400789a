package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/worknow-dev/worknow/internal/apperrors"
	"github.com/worknow-dev/worknow/internal/lifecycle"
	"github.com/worknow-dev/worknow/internal/models"
)

// PostingStore resolves job and project postings for the lifecycle engine.
// Read-only.
type PostingStore struct {
	db *gorm.DB
}

func NewPostingStore(db *gorm.DB) *PostingStore {
	return &PostingStore{db: db}
}

func (s *PostingStore) ResolvePosting(ctx context.Context, kind lifecycle.PostingKind, id uint) (*lifecycle.PostingRef, error) {
	switch kind {
	case lifecycle.KindJob:
		var job models.Job
		if err := s.db.WithContext(ctx).Preload("Company").First(&job, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("job not found")
			}
			return nil, apperrors.Internal("failed to load job", err)
		}
		return &lifecycle.PostingRef{
			Kind:         lifecycle.KindJob,
			ID:           job.ID,
			OwnerID:      job.CompanyID,
			Title:        job.Title,
			CompanyName:  job.Company.CompanyName,
			Description:  job.Description,
			Duration:     job.Duration,
			Modality:     job.Modality,
			Remuneration: job.Remuneration,
			Skills:       job.Skills,
		}, nil
	case lifecycle.KindProject:
		var project models.Project
		if err := s.db.WithContext(ctx).Preload("Company").First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("project not found")
			}
			return nil, apperrors.Internal("failed to load project", err)
		}
		return &lifecycle.PostingRef{
			Kind:         lifecycle.KindProject,
			ID:           project.ID,
			OwnerID:      project.CompanyID,
			Title:        project.Title,
			CompanyName:  project.Company.CompanyName,
			Description:  project.Description,
			Duration:     project.Duration,
			Modality:     project.Modality,
			Remuneration: project.Remuneration,
			Skills:       project.Skills,
		}, nil
	default:
		return nil, apperrors.NotFound("unknown posting kind")
	}
}
