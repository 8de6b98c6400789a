package lifecycle

import (
	"context"

	"gorm.io/datatypes"

	"github.com/worknow-dev/worknow/internal/models"
)

// PostingRef is the resolved view of a job or project posting. OwnerID is the
// company that posted it; the remaining fields feed the completed-work
// snapshot.
type PostingRef struct {
	Kind         PostingKind
	ID           uint
	OwnerID      uint
	Title        string
	CompanyName  string
	Description  string
	Duration     string
	Modality     string
	Remuneration string
	Skills       datatypes.JSON
}

// PostingResolver looks up postings by kind and id. Read-only.
// Returns apperrors.CodeNotFound when no posting of that kind exists.
type PostingResolver interface {
	ResolvePosting(ctx context.Context, kind PostingKind, id uint) (*PostingRef, error)
}

// CandidacyStore persists Application rows. All status mutation goes through
// the engine; the read-flag updates are issued by the notification aggregator
// and touch disjoint columns.
type CandidacyStore interface {
	// Create inserts a new candidacy. Returns apperrors.CodeDuplicate when a
	// row for (applicant, posting) already exists.
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	// UpdateStatus performs a plain single-row status update.
	UpdateStatus(ctx context.Context, id uint, status Status) (*models.Application, error)
	// AcceptExclusive atomically rejects every sibling candidacy on the same
	// posting that is not already accepted and marks the target accepted.
	// Both effects commit together or not at all. Returns
	// apperrors.CodeConflict when the target left the reviewable statuses
	// before the transaction could claim it (lost race).
	AcceptExclusive(ctx context.Context, id uint) (*models.Application, error)

	ListByApplicant(ctx context.Context, userID uint) ([]models.Application, error)
	ListByOwner(ctx context.Context, companyID uint) ([]models.Application, error)

	// CountUnread and MarkRead back the notification counters. An empty ids
	// slice means every unread row visible to the account.
	CountUnread(ctx context.Context, accountID uint, role Role) (int64, error)
	MarkRead(ctx context.Context, accountID uint, role Role, ids []uint) (int64, error)
}

// CompletedWorkStore persists the derived CompletedProject snapshots.
type CompletedWorkStore interface {
	// Create inserts a snapshot unless one already exists for the
	// (applicant, posting) pair; the existing-row case is a silent no-op.
	Create(ctx context.Context, cw *models.CompletedProject) error
	// DeleteForPosting removes the snapshot for (applicant, posting).
	// Absence is not an error.
	DeleteForPosting(ctx context.Context, userID uint, kind PostingKind, postingID uint) error

	ListByApplicant(ctx context.Context, userID uint) ([]models.CompletedProject, error)
	DeleteByID(ctx context.Context, userID, id uint) error
}

// AccountStore is the narrow slice of account persistence the engine needs:
// the apply-time contact backfill.
type AccountStore interface {
	// BackfillUserContact fills in the user's name and email when the stored
	// values are empty. Non-empty stored values are never overwritten.
	BackfillUserContact(ctx context.Context, userID uint, name, email string) error
}
