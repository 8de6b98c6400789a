package lifecycle

import "context"

// Aggregator serves the unread notification counters. Counts are computed
// live from application rows on every call; nothing is cached.
//
// An applicant's unread count is the number of their candidacies the owner
// has decided on (Accepted or Rejected) whose applicant read-flag is unset.
// An owner's unread count is the number of still-reviewable candidacies on
// its postings whose owner read-flag is unset.
type Aggregator struct {
	candidacies CandidacyStore
}

func NewAggregator(candidacies CandidacyStore) *Aggregator {
	return &Aggregator{candidacies: candidacies}
}

func (a *Aggregator) CountFor(ctx context.Context, accountID uint, role Role) (int64, error) {
	return a.candidacies.CountUnread(ctx, accountID, role)
}

// MarkRead sets the role's read-flag on the given candidacies, or on every
// unread candidacy visible to the account when ids is empty. Rows outside the
// account's view are never touched, so a caller cannot mark another account's
// notifications. Returns the number of rows updated; zero is not an error.
func (a *Aggregator) MarkRead(ctx context.Context, accountID uint, role Role, ids []uint) (int64, error) {
	return a.candidacies.MarkRead(ctx, accountID, role, ids)
}
