package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/gen/ent"
	"github.com/tomide-adesanmi/company-enricher/internal/async"
	"github.com/tomide-adesanmi/company-enricher/internal/common"
	"github.com/tomide-adesanmi/company-enricher/internal/enrich"
	"github.com/tomide-adesanmi/company-enricher/internal/pipeline"
	"github.com/tomide-adesanmi/company-enricher/internal/queue"
	"github.com/tomide-adesanmi/company-enricher/internal/repository"
)

// syncDispatcher runs the job to completion inline, so a Tick observes the
// whole admit-process-settle cycle deterministically.
type syncDispatcher struct {
	exec *pipeline.Executor
}

func (d *syncDispatcher) Enqueue(ctx context.Context, job async.Job) error {
	// Pipeline failures are recorded on the job; the scheduler settles them.
	_ = d.exec.ProcessJob(ctx, job.JobID)
	return nil
}

// collectDispatcher records dispatches without running anything, so tests can
// observe admission decisions in isolation.
type collectDispatcher struct {
	jobs []async.Job
}

func (d *collectDispatcher) Enqueue(_ context.Context, job async.Job) error {
	d.jobs = append(d.jobs, job)
	return nil
}

type harness struct {
	client  *ent.Client
	uploads repository.UploadRepository
	jobs    repository.JobRepository
	records repository.RecordRepository
	manager *queue.Manager
	stub    *enrich.Stub
	exec    *pipeline.Executor
}

func newHarness(t *testing.T, maxRetries int) *harness {
	t.Helper()
	logger := slog.Default()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := repository.OpenSQLite(dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))

	h := &harness{
		client:  client,
		uploads: repository.NewUploadRepository(client, logger),
		jobs:    repository.NewJobRepository(client, logger),
		records: repository.NewRecordRepository(client, logger),
		stub:    enrich.NewStub(),
	}
	h.manager = queue.NewManager(h.uploads, h.jobs, maxRetries, logger)
	h.exec = pipeline.NewExecutor(h.uploads, h.jobs, h.records, h.stub, logger)
	return h
}

func (h *harness) scheduler(d Dispatcher) *Scheduler {
	return New(h.manager, h.jobs, h.uploads, d, Config{}, slog.Default())
}

func (h *harness) createUpload(t *testing.T, owner, filename string, uploadedAt time.Time) *ent.Upload {
	t.Helper()
	rows := []map[string]string{
		{"company_name": "Acme Corp", "website": "acme.example"},
		{"company_name": "Globex"},
	}
	up, err := h.uploads.Create(context.Background(), owner, filename, "csv",
		128, rows, []byte(filename), uploadedAt)
	require.NoError(t, err)
	return up
}

func TestTickProcessesPendingUpload(t *testing.T) {
	h := newHarness(t, 3)
	ctx := context.Background()

	up := h.createUpload(t, "user-a", "a.csv", time.Now().UTC())
	sched := h.scheduler(&syncDispatcher{exec: h.exec})

	require.NoError(t, sched.Tick(ctx))

	reloaded, err := h.uploads.GetByID(ctx, up.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.UploadStatusCompleted), reloaded.ProcessingStatus)

	count, err := h.records.CountByUpload(ctx, up.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// A second tick with nothing pending is a no-op.
	require.NoError(t, sched.Tick(ctx))
	assert.Equal(t, 1, h.stub.Calls)
}

func TestTickAdmitsOneJobPerUser(t *testing.T) {
	h := newHarness(t, 3)
	ctx := context.Background()

	base := time.Now().UTC()
	first := h.createUpload(t, "user-a", "first.csv", base.Add(-time.Minute))
	h.createUpload(t, "user-a", "second.csv", base)
	other := h.createUpload(t, "user-b", "other.csv", base)

	collector := &collectDispatcher{}
	sched := h.scheduler(collector)

	// Tick 1 admits the oldest upload per user and nothing more.
	require.NoError(t, sched.Tick(ctx))
	require.Len(t, collector.jobs, 2)
	owners := map[string]uuid.UUID{}
	for _, j := range collector.jobs {
		owners[j.OwnerID] = j.JobID
	}
	require.Contains(t, owners, "user-a")
	require.Contains(t, owners, "user-b")

	jobA, err := h.jobs.GetByID(ctx, owners["user-a"])
	require.NoError(t, err)
	assert.Equal(t, first.ID, jobA.UploadID, "oldest upload goes first")
	jobB, err := h.jobs.GetByID(ctx, owners["user-b"])
	require.NoError(t, err)
	assert.Equal(t, other.ID, jobB.UploadID)

	// Tick 2: user-a's job is still queued, so second.csv must wait. The queued
	// jobs are re-dispatched, but no new job is created.
	collector.jobs = nil
	require.NoError(t, sched.Tick(ctx))
	for _, j := range collector.jobs {
		assert.Contains(t, []uuid.UUID{jobA.ID, jobB.ID}, j.JobID)
	}
	active, err := h.manager.ActiveJobs(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, active, 1)

	// Finish user-a's first job; the next tick admits second.csv.
	require.NoError(t, h.exec.ProcessJob(ctx, jobA.ID))
	require.NoError(t, h.exec.ProcessJob(ctx, jobB.ID))
	collector.jobs = nil
	require.NoError(t, sched.Tick(ctx))
	require.Len(t, collector.jobs, 1)
	assert.Equal(t, "user-a", collector.jobs[0].OwnerID)
}

func TestRetryBoundAndExhaustion(t *testing.T) {
	h := newHarness(t, 2)
	ctx := context.Background()
	h.stub.Err = errors.New("collaborator is down")

	up := h.createUpload(t, "user-a", "a.csv", time.Now().UTC())
	sched := h.scheduler(&syncDispatcher{exec: h.exec})

	// Tick 1: initial attempt. Ticks 2 and 3: one retry each. Tick 4 finds the
	// retries exhausted and finalizes the upload.
	for i := 0; i < 4; i++ {
		require.NoError(t, sched.Tick(ctx))
	}
	assert.Equal(t, 3, h.stub.Calls, "initial attempt plus max_retries retries")

	reloaded, err := h.uploads.GetByID(ctx, up.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.UploadStatusFailed), reloaded.ProcessingStatus)
	require.NotNil(t, reloaded.ErrorMessage)
	assert.Contains(t, *reloaded.ErrorMessage, "retries exhausted after 2 attempts")

	// Settled means settled: further ticks never touch the job again.
	require.NoError(t, sched.Tick(ctx))
	require.NoError(t, sched.Tick(ctx))
	assert.Equal(t, 3, h.stub.Calls)

	// The failed upload no longer blocks the user's queue.
	next := h.createUpload(t, "user-a", "b.csv", time.Now().UTC())
	require.NoError(t, sched.Tick(ctx))
	fresh, err := h.uploads.GetByID(ctx, next.ID)
	require.NoError(t, err)
	assert.NotEqual(t, string(constants.UploadStatusFailed), fresh.ProcessingStatus)
}

func TestMalformedInputIsNeverRetried(t *testing.T) {
	h := newHarness(t, 3)
	ctx := context.Background()

	rows := []map[string]string{{"website": "no-name.example"}}
	up, err := h.uploads.Create(ctx, "user-a", "broken.csv", "csv",
		64, rows, []byte("broken"), time.Now().UTC())
	require.NoError(t, err)

	sched := h.scheduler(&syncDispatcher{exec: h.exec})
	require.NoError(t, sched.Tick(ctx)) // attempt fails
	require.NoError(t, sched.Tick(ctx)) // settles without a retry

	reloaded, err := h.uploads.GetByID(ctx, up.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.UploadStatusFailed), reloaded.ProcessingStatus)
	assert.Equal(t, 0, h.stub.Calls)

	job, err := h.jobs.LatestForUpload(ctx, up.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, job.RetryCount)
	require.NotNil(t, job.ErrorKind)
	assert.Equal(t, common.KindMalformedInput, *job.ErrorKind)
}

func TestReclaimFailsStaleJobs(t *testing.T) {
	h := newHarness(t, 3)
	ctx := context.Background()

	up := h.createUpload(t, "user-a", "a.csv", time.Now().UTC())
	job, err := h.manager.Admit(ctx, up)
	require.NoError(t, err)
	claimed, err := h.jobs.ClaimProcessing(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, h.uploads.MarkProcessing(ctx, up.ID))

	sched := h.scheduler(&collectDispatcher{})

	// Fresh progress: reclaim must leave the job alone.
	require.NoError(t, sched.Reclaim(ctx))
	row, err := h.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusProcessing), row.JobStatus)

	// Simulate a worker that died mid-run: backdate the last progress write
	// beyond the stale window.
	err = h.client.ProcessingJob.UpdateOneID(job.ID).
		SetProgressUpdatedAt(time.Now().UTC().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, sched.Reclaim(ctx))
	row, err = h.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusFailed), row.JobStatus)
	require.NotNil(t, row.ErrorKind)
	assert.Equal(t, common.KindStaleTimeout, *row.ErrorKind)

	// The stale failure is retryable, so the next tick requeues it and the
	// user's admission slot is not permanently wedged.
	collector := &collectDispatcher{}
	sched2 := h.scheduler(collector)
	require.NoError(t, sched2.Tick(ctx))
	row, err = h.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusQueued), row.JobStatus)
	assert.Equal(t, 1, row.RetryCount)
	require.Len(t, collector.jobs, 1)
	assert.Equal(t, job.ID, collector.jobs[0].JobID)
}
