package lifecycle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worknow-dev/worknow/internal/lifecycle"
)

func TestUnreadCountsAndMarkRead(t *testing.T) {
	env := newTestEnv()
	env.addJob(10, 7, "Backend Developer")
	env.addJob(11, 7, "Frontend Developer")
	env.accounts.add(1, "Ana", "ana@example.com")
	aggregator := lifecycle.NewAggregator(env.candidacies)
	ctx := context.Background()

	first, err := env.engine.Apply(ctx, 1, lifecycle.KindJob, 10, "", "")
	require.NoError(t, err)
	second, err := env.engine.Apply(ctx, 1, lifecycle.KindJob, 11, "", "")
	require.NoError(t, err)

	// Nothing decided yet, so the applicant has nothing unread.
	count, err := aggregator.CountFor(ctx, 1, lifecycle.RoleApplicant)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = env.engine.Review(ctx, 7, first.ID, lifecycle.StatusAccepted)
	require.NoError(t, err)
	_, err = env.engine.Review(ctx, 7, second.ID, lifecycle.StatusRejected)
	require.NoError(t, err)

	count, err = aggregator.CountFor(ctx, 1, lifecycle.RoleApplicant)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	updated, err := aggregator.MarkRead(ctx, 1, lifecycle.RoleApplicant, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	count, err = aggregator.CountFor(ctx, 1, lifecycle.RoleApplicant)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Marking again finds nothing; zero rows is not an error.
	updated, err = aggregator.MarkRead(ctx, 1, lifecycle.RoleApplicant, nil)
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestMarkReadSpecificCandidacies(t *testing.T) {
	env := newTestEnv()
	env.addJob(10, 7, "Backend Developer")
	env.addJob(11, 7, "Frontend Developer")
	env.accounts.add(1, "Ana", "ana@example.com")
	aggregator := lifecycle.NewAggregator(env.candidacies)
	ctx := context.Background()

	first, err := env.engine.Apply(ctx, 1, lifecycle.KindJob, 10, "", "")
	require.NoError(t, err)
	second, err := env.engine.Apply(ctx, 1, lifecycle.KindJob, 11, "", "")
	require.NoError(t, err)
	_, err = env.engine.Review(ctx, 7, first.ID, lifecycle.StatusRejected)
	require.NoError(t, err)
	_, err = env.engine.Review(ctx, 7, second.ID, lifecycle.StatusRejected)
	require.NoError(t, err)

	updated, err := aggregator.MarkRead(ctx, 1, lifecycle.RoleApplicant, []uint{first.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	count, err := aggregator.CountFor(ctx, 1, lifecycle.RoleApplicant)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMarkReadCannotTouchOtherAccounts(t *testing.T) {
	env := newTestEnv()
	env.addJob(10, 7, "Backend Developer")
	env.accounts.add(1, "Ana", "ana@example.com")
	aggregator := lifecycle.NewAggregator(env.candidacies)
	ctx := context.Background()

	app, err := env.engine.Apply(ctx, 1, lifecycle.KindJob, 10, "", "")
	require.NoError(t, err)
	_, err = env.engine.Review(ctx, 7, app.ID, lifecycle.StatusRejected)
	require.NoError(t, err)

	// User 2 names user 1's candidacy explicitly; nothing may change.
	updated, err := aggregator.MarkRead(ctx, 2, lifecycle.RoleApplicant, []uint{app.ID})
	require.NoError(t, err)
	assert.Zero(t, updated)

	count, err := aggregator.CountFor(ctx, 1, lifecycle.RoleApplicant)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestOwnerUnreadTracksReviewableCandidacies(t *testing.T) {
	env := newTestEnv()
	env.addJob(10, 7, "Backend Developer")
	env.accounts.add(1, "Ana", "ana@example.com")
	env.accounts.add(2, "Bruno", "bruno@example.com")
	aggregator := lifecycle.NewAggregator(env.candidacies)
	ctx := context.Background()

	first, err := env.engine.Apply(ctx, 1, lifecycle.KindJob, 10, "", "")
	require.NoError(t, err)
	_, err = env.engine.Apply(ctx, 2, lifecycle.KindJob, 10, "", "")
	require.NoError(t, err)

	count, err := aggregator.CountFor(ctx, 7, lifecycle.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Moving one to under review keeps it in the owner's reviewable set.
	_, err = env.engine.Review(ctx, 7, first.ID, lifecycle.StatusUnderReview)
	require.NoError(t, err)
	count, err = aggregator.CountFor(ctx, 7, lifecycle.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	updated, err := aggregator.MarkRead(ctx, 7, lifecycle.RoleOwner, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	count, err = aggregator.CountFor(ctx, 7, lifecycle.RoleOwner)
	require.NoError(t, err)
	assert.Zero(t, count)

	// A different company sees none of these candidacies.
	count, err = aggregator.CountFor(ctx, 8, lifecycle.RoleOwner)
	require.NoError(t, err)
	assert.Zero(t, count)
}
