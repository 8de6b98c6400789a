package lifecycle

import (
	"context"
	"log/slog"

	"github.com/worknow-dev/worknow/internal/apperrors"
	"github.com/worknow-dev/worknow/internal/models"
)

// Engine validates and executes candidacy status transitions. All writes to
// application rows flow through it; storage access is injected so the engine
// owns no connection state.
type Engine struct {
	candidacies CandidacyStore
	postings    PostingResolver
	accounts    AccountStore
	projector   *Projector
	logger      *slog.Logger
}

func NewEngine(candidacies CandidacyStore, postings PostingResolver, accounts AccountStore, projector *Projector, logger *slog.Logger) *Engine {
	return &Engine{
		candidacies: candidacies,
		postings:    postings,
		accounts:    accounts,
		projector:   projector,
		logger:      logger,
	}
}

// Apply creates a Pending candidacy for the given posting. Fails with
// CodeNotFound when the posting does not exist and CodeDuplicate when the
// applicant already applied to it. When name or email are supplied they are
// backfilled onto the applicant's account if the stored values are empty.
func (e *Engine) Apply(ctx context.Context, applicantID uint, kind PostingKind, postingID uint, name, email string) (*models.Application, error) {
	ref, err := e.postings.ResolvePosting(ctx, kind, postingID)
	if err != nil {
		return nil, err
	}

	if name != "" || email != "" {
		if err := e.accounts.BackfillUserContact(ctx, applicantID, name, email); err != nil {
			e.logger.Warn("applicant contact backfill failed",
				"user_id", applicantID, "error", err)
		}
	}

	app := &models.Application{
		UserID:      applicantID,
		PostingKind: string(kind),
		PostingID:   postingID,
		CompanyID:   ref.OwnerID,
		Status:      string(StatusPending),
	}
	if err := e.candidacies.Create(ctx, app); err != nil {
		return nil, err
	}

	e.logger.Info("application created",
		"application_id", app.ID, "user_id", applicantID,
		"posting_kind", kind, "posting_id", postingID)
	return app, nil
}

// Review moves a candidacy to the owner-chosen status. Only the owner of the
// posting may call it, and only while the candidacy is Pending or UnderReview.
// An acceptance additionally rejects every sibling candidacy on the same
// posting inside one transaction, so at most one Accepted row per posting is
// ever observable.
func (e *Engine) Review(ctx context.Context, ownerID, candidacyID uint, target Status) (*models.Application, error) {
	app, err := e.candidacies.GetByID(ctx, candidacyID)
	if err != nil {
		return nil, err
	}

	kind, err := ParsePostingKind(app.PostingKind)
	if err != nil {
		return nil, apperrors.Internal("stored posting kind is invalid", err)
	}
	ref, err := e.postings.ResolvePosting(ctx, kind, app.PostingID)
	if err != nil {
		return nil, err
	}
	if ref.OwnerID != ownerID {
		return nil, apperrors.Forbidden("application belongs to another company's posting")
	}

	current, err := ParseStatus(app.Status)
	if err != nil {
		return nil, apperrors.Internal("stored application status is invalid", err)
	}
	if !IsReviewable(current) || !IsTransitionAllowed(current, target) {
		return nil, apperrors.InvalidTransition(string(current), string(target))
	}

	if target == StatusAccepted {
		accepted, err := e.candidacies.AcceptExclusive(ctx, candidacyID)
		if err != nil {
			return nil, err
		}
		e.logger.Info("application accepted, siblings rejected",
			"application_id", candidacyID, "posting_kind", kind, "posting_id", app.PostingID)
		return accepted, nil
	}

	updated, err := e.candidacies.UpdateStatus(ctx, candidacyID, target)
	if err != nil {
		return nil, err
	}
	e.logger.Info("application status updated",
		"application_id", candidacyID, "from", current, "to", target)
	return updated, nil
}

// CompletionResult carries the outcome of ConfirmCompletion. The status
// transition commits independently of the completed-work projection;
// ProjectionWarning is non-nil when the projection failed after the
// transition had already been persisted.
type CompletionResult struct {
	Application       *models.Application
	ProjectionWarning error
}

// ConfirmCompletion lets the applicant mark an accepted engagement as done or
// not done. Repeating the same confirmation is a no-op beyond the updated
// timestamp. The completed-work snapshot is maintained as a synchronous but
// non-transactional side effect.
func (e *Engine) ConfirmCompletion(ctx context.Context, applicantID, candidacyID uint, done bool) (*CompletionResult, error) {
	app, err := e.candidacies.GetByID(ctx, candidacyID)
	if err != nil {
		return nil, err
	}
	if app.UserID != applicantID {
		return nil, apperrors.Forbidden("application belongs to another user")
	}

	current, err := ParseStatus(app.Status)
	if err != nil {
		return nil, apperrors.Internal("stored application status is invalid", err)
	}
	target := StatusNotDone
	if done {
		target = StatusDone
	}
	if current != target && !IsTransitionAllowed(current, target) {
		return nil, apperrors.InvalidTransition(string(current), string(target))
	}

	updated, err := e.candidacies.UpdateStatus(ctx, candidacyID, target)
	if err != nil {
		return nil, err
	}

	result := &CompletionResult{Application: updated}
	if err := e.projector.OnCompletionConfirmed(ctx, updated, done); err != nil {
		e.logger.Error("completed-work projection failed",
			"application_id", candidacyID, "done", done, "error", err)
		result.ProjectionWarning = err
	}
	return result, nil
}
