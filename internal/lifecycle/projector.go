package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/worknow-dev/worknow/internal/models"
)

// Projector maintains the derived CompletedProject records. It runs after the
// status transition has committed; its failures never roll the transition
// back.
type Projector struct {
	completed CompletedWorkStore
	postings  PostingResolver
	logger    *slog.Logger
}

func NewProjector(completed CompletedWorkStore, postings PostingResolver, logger *slog.Logger) *Projector {
	return &Projector{completed: completed, postings: postings, logger: logger}
}

// OnCompletionConfirmed creates the completed-work snapshot when done is true
// (a no-op when one already exists) and removes it when done is false (absence
// is not an error).
func (p *Projector) OnCompletionConfirmed(ctx context.Context, app *models.Application, done bool) error {
	kind, err := ParsePostingKind(app.PostingKind)
	if err != nil {
		return err
	}

	if !done {
		return p.completed.DeleteForPosting(ctx, app.UserID, kind, app.PostingID)
	}

	ref, err := p.postings.ResolvePosting(ctx, kind, app.PostingID)
	if err != nil {
		return err
	}

	snapshot := &models.CompletedProject{
		UserID:        app.UserID,
		PostingKind:   app.PostingKind,
		PostingID:     app.PostingID,
		ApplicationID: app.ID,
		Title:         ref.Title,
		CompanyName:   ref.CompanyName,
		Description:   ref.Description,
		Duration:      ref.Duration,
		Modality:      ref.Modality,
		Remuneration:  ref.Remuneration,
		Skills:        ref.Skills,
		StartedAt:     app.CreatedAt,
		CompletedAt:   time.Now().UTC(),
	}
	if err := p.completed.Create(ctx, snapshot); err != nil {
		return err
	}

	p.logger.Info("completed work recorded",
		"user_id", app.UserID, "posting_kind", kind, "posting_id", app.PostingID)
	return nil
}
