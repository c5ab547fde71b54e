package repository

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/gen/ent"
)

func newUploadFixture(t *testing.T) (UploadRepository, *ent.Client) {
	t.Helper()
	logger := slog.Default()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := OpenSQLite(dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))
	return NewUploadRepository(client, logger), client
}

func mustCreate(t *testing.T, repo UploadRepository, owner, filename string, at time.Time) *ent.Upload {
	t.Helper()
	rows := []map[string]string{{"company_name": "Acme Corp"}}
	up, err := repo.Create(context.Background(), owner, filename, "csv", 64, rows, []byte(filename), at)
	require.NoError(t, err)
	return up
}

func status(t *testing.T, repo UploadRepository, id uuid.UUID) string {
	t.Helper()
	up, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return up.ProcessingStatus
}

func TestUploadStatusLifecycle(t *testing.T) {
	repo, _ := newUploadFixture(t)
	ctx := context.Background()
	up := mustCreate(t, repo, "user-a", "a.csv", time.Now().UTC())

	assert.Equal(t, string(constants.UploadStatusPending), up.ProcessingStatus)

	require.NoError(t, repo.MarkProcessing(ctx, up.ID))
	assert.Equal(t, string(constants.UploadStatusProcessing), status(t, repo, up.ID))

	// Re-marking during a retry is a harmless no-op.
	require.NoError(t, repo.MarkProcessing(ctx, up.ID))
	assert.Equal(t, string(constants.UploadStatusProcessing), status(t, repo, up.ID))

	require.NoError(t, repo.MarkCompleted(ctx, up.ID))
	assert.Equal(t, string(constants.UploadStatusCompleted), status(t, repo, up.ID))

	// Terminal states never regress through the guarded updates.
	require.NoError(t, repo.MarkProcessing(ctx, up.ID))
	assert.Equal(t, string(constants.UploadStatusCompleted), status(t, repo, up.ID))
	require.NoError(t, repo.MarkFailed(ctx, up.ID, "late failure"))
	assert.Equal(t, string(constants.UploadStatusCompleted), status(t, repo, up.ID))

	reloaded, err := repo.GetByID(ctx, up.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.ProcessedAt)
	assert.Nil(t, reloaded.ErrorMessage)
}

func TestUploadMarkFailedRecordsMessage(t *testing.T) {
	repo, _ := newUploadFixture(t)
	ctx := context.Background()
	up := mustCreate(t, repo, "user-a", "a.csv", time.Now().UTC())

	require.NoError(t, repo.MarkProcessing(ctx, up.ID))
	require.NoError(t, repo.MarkFailed(ctx, up.ID, "collaborator unreachable"))

	reloaded, err := repo.GetByID(ctx, up.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.UploadStatusFailed), reloaded.ProcessingStatus)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Equal(t, "collaborator unreachable", *reloaded.ErrorMessage)

	// Reset clears the failure for reprocessing.
	require.NoError(t, repo.Reset(ctx, up.ID))
	reloaded, err = repo.GetByID(ctx, up.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.UploadStatusPending), reloaded.ProcessingStatus)
	assert.Nil(t, reloaded.ErrorMessage)
	assert.Nil(t, reloaded.ProcessedAt)
}

func TestOldestPendingOrdersByUploadTime(t *testing.T) {
	repo, _ := newUploadFixture(t)
	ctx := context.Background()
	base := time.Now().UTC()

	newer := mustCreate(t, repo, "user-a", "newer.csv", base)
	older := mustCreate(t, repo, "user-a", "older.csv", base.Add(-time.Hour))
	_ = newer

	got, err := repo.OldestPending(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, older.ID, got.ID)

	require.NoError(t, repo.MarkProcessing(ctx, older.ID))
	got, err = repo.OldestPending(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)

	// Nothing pending for an unknown user.
	_, err = repo.OldestPending(ctx, "user-z")
	assert.True(t, ent.IsNotFound(err))
}

func TestListByOwnerCountsStatuses(t *testing.T) {
	repo, _ := newUploadFixture(t)
	ctx := context.Background()
	base := time.Now().UTC()

	a := mustCreate(t, repo, "user-a", "a.csv", base.Add(-3*time.Minute))
	b := mustCreate(t, repo, "user-a", "b.csv", base.Add(-2*time.Minute))
	c := mustCreate(t, repo, "user-a", "c.csv", base.Add(-time.Minute))
	mustCreate(t, repo, "user-b", "theirs.csv", base)

	require.NoError(t, repo.MarkProcessing(ctx, a.ID))
	require.NoError(t, repo.MarkCompleted(ctx, a.ID))
	require.NoError(t, repo.MarkProcessing(ctx, b.ID))
	require.NoError(t, repo.MarkFailed(ctx, b.ID, "boom"))

	summaries, counts, err := repo.ListByOwner(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, c.ID, summaries[0].ID, "newest first")
	assert.Equal(t, 1, counts.Pending)
	assert.Equal(t, 0, counts.Processing)
	assert.Equal(t, 1, counts.Completed)
	assert.Equal(t, 1, counts.Failed)
}

func TestUpsertByHashScopedPerOwner(t *testing.T) {
	repo, _ := newUploadFixture(t)
	ctx := context.Background()
	rows := []map[string]string{{"company_name": "Acme Corp"}}
	hash := []byte("same-content")
	now := time.Now().UTC()

	first, dedup, err := repo.UpsertByHash(ctx, "user-a", "a.csv", "csv", 64, rows, hash, now)
	require.NoError(t, err)
	assert.False(t, dedup)

	same, dedup, err := repo.UpsertByHash(ctx, "user-a", "copy.csv", "csv", 64, rows, hash, now)
	require.NoError(t, err)
	assert.True(t, dedup)
	assert.Equal(t, first.ID, same.ID)
	assert.Equal(t, "a.csv", same.Filename, "original upload wins")

	theirs, dedup, err := repo.UpsertByHash(ctx, "user-b", "a.csv", "csv", 64, rows, hash, now)
	require.NoError(t, err)
	assert.False(t, dedup)
	assert.NotEqual(t, first.ID, theirs.ID)
}
