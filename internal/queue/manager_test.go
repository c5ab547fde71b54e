package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/gen/ent"
	"github.com/tomide-adesanmi/company-enricher/internal/common"
	"github.com/tomide-adesanmi/company-enricher/internal/repository"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := repository.OpenSQLite(dsn, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))
	return client
}

func createUpload(t *testing.T, uploads repository.UploadRepository, owner, filename string, uploadedAt time.Time) *ent.Upload {
	t.Helper()
	rows := []map[string]string{{"Company Name": "Acme Corp"}}
	hash := []byte(filename) // distinct per file is all the tests need
	up, err := uploads.Create(context.Background(), owner, filename, "csv", 100, rows, hash, uploadedAt)
	require.NoError(t, err)
	return up
}

func TestAdmitSingleActiveJobUnderConcurrency(t *testing.T) {
	client := newTestClient(t)
	logger := slog.Default()
	uploads := repository.NewUploadRepository(client, logger)
	jobs := repository.NewJobRepository(client, logger)
	m := NewManager(uploads, jobs, 3, logger)

	up := createUpload(t, uploads, "user-a", "list.csv", time.Now().UTC())

	const attempts = 10
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = m.Admit(context.Background(), up)
		}(i)
	}
	wg.Wait()

	succeeded, conflicted := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, common.ErrAdmissionConflict):
			conflicted++
		default:
			t.Fatalf("unexpected admit error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)

	active, err := m.ActiveJobs(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestNextEligibleFIFOAndGating(t *testing.T) {
	client := newTestClient(t)
	logger := slog.Default()
	uploads := repository.NewUploadRepository(client, logger)
	jobs := repository.NewJobRepository(client, logger)
	m := NewManager(uploads, jobs, 3, logger)
	ctx := context.Background()

	base := time.Now().UTC()
	u1 := createUpload(t, uploads, "user-a", "first.csv", base)
	createUpload(t, uploads, "user-a", "second.csv", base.Add(time.Minute))

	next, err := m.NextEligible(ctx, "user-a")
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, u1.ID, next.ID, "oldest pending upload wins")

	_, err = m.Admit(ctx, u1)
	require.NoError(t, err)

	// With an active job the user is ineligible regardless of backlog.
	next, err = m.NextEligible(ctx, "user-a")
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestProcessNowConflictLeavesUploadPending(t *testing.T) {
	client := newTestClient(t)
	logger := slog.Default()
	uploads := repository.NewUploadRepository(client, logger)
	jobs := repository.NewJobRepository(client, logger)
	m := NewManager(uploads, jobs, 3, logger)
	ctx := context.Background()

	u1 := createUpload(t, uploads, "user-a", "first.csv", time.Now().UTC())
	u2 := createUpload(t, uploads, "user-a", "second.csv", time.Now().UTC().Add(time.Second))

	_, err := m.Admit(ctx, u1)
	require.NoError(t, err)

	_, err = m.AdmitUpload(ctx, u2.ID)
	require.ErrorIs(t, err, common.ErrAdmissionConflict)

	reloaded, err := uploads.GetByID(ctx, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.UploadStatusPending), reloaded.ProcessingStatus)
}

func TestAdmitUploadRejectsNonPending(t *testing.T) {
	client := newTestClient(t)
	logger := slog.Default()
	uploads := repository.NewUploadRepository(client, logger)
	jobs := repository.NewJobRepository(client, logger)
	m := NewManager(uploads, jobs, 3, logger)
	ctx := context.Background()

	up := createUpload(t, uploads, "user-a", "done.csv", time.Now().UTC())
	require.NoError(t, uploads.MarkProcessing(ctx, up.ID))
	require.NoError(t, uploads.MarkCompleted(ctx, up.ID))

	_, err := m.AdmitUpload(ctx, up.ID)
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestOwnersWithPendingWork(t *testing.T) {
	client := newTestClient(t)
	logger := slog.Default()
	uploads := repository.NewUploadRepository(client, logger)
	jobs := repository.NewJobRepository(client, logger)
	m := NewManager(uploads, jobs, 3, logger)
	ctx := context.Background()

	createUpload(t, uploads, "user-a", "a1.csv", time.Now().UTC())
	createUpload(t, uploads, "user-a", "a2.csv", time.Now().UTC())
	createUpload(t, uploads, "user-b", "b1.csv", time.Now().UTC())

	owners, err := m.OwnersWithPendingWork(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user-a", "user-b"}, owners)
}
