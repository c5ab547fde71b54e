package pipeline

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
	"github.com/tomide-adesanmi/company-enricher/internal/common"
	"github.com/tomide-adesanmi/company-enricher/internal/enrich"
	"github.com/tomide-adesanmi/company-enricher/internal/entity"
	"github.com/tomide-adesanmi/company-enricher/internal/queue"
	"github.com/tomide-adesanmi/company-enricher/internal/repository"
	"github.com/tomide-adesanmi/company-enricher/internal/utils"
)

type fixture struct {
	client  *ent.Client
	uploads repository.UploadRepository
	jobs    repository.JobRepository
	records repository.RecordRepository
	manager *queue.Manager
	stub    *enrich.Stub
	exec    *Executor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.Default()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := repository.OpenSQLite(dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))

	f := &fixture{
		client:  client,
		uploads: repository.NewUploadRepository(client, logger),
		jobs:    repository.NewJobRepository(client, logger),
		records: repository.NewRecordRepository(client, logger),
		stub:    enrich.NewStub(),
	}
	f.manager = queue.NewManager(f.uploads, f.jobs, 3, logger)
	f.exec = NewExecutor(f.uploads, f.jobs, f.records, f.stub, logger)
	return f
}

func (f *fixture) createUpload(t *testing.T, owner string, rows []map[string]string) *ent.Upload {
	t.Helper()
	hash := []byte(uuid.NewString())
	up, err := f.uploads.Create(context.Background(), owner, "companies.csv", "csv", 256, rows, hash, time.Now().UTC())
	require.NoError(t, err)
	return up
}

func threeCompanies() []map[string]string {
	return []map[string]string{
		{"Company Name": "Acme Corp", "Website": "acme.example"},
		{"company_name": "Globex", "Country": "US"},
		{"COMPANY-NAME": "Initech", "City": "Austin"},
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	up := f.createUpload(t, "user-a", threeCompanies())
	job, err := f.manager.Admit(ctx, up)
	require.NoError(t, err)

	require.NoError(t, f.exec.ProcessJob(ctx, job.ID))

	reloaded, err := f.uploads.GetByID(ctx, up.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.UploadStatusCompleted), reloaded.ProcessingStatus)
	assert.NotNil(t, reloaded.ProcessedAt)

	row, err := f.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	j := utils.ToProcessingJob(row)
	assert.Equal(t, string(constants.JobStatusCompleted), j.JobStatus)
	require.NotNil(t, j.Progress)
	assert.Equal(t, constants.StagePersist, j.Progress.Stage)
	assert.Equal(t, 100, j.Progress.Percent)
	require.NotNil(t, j.StartedAt)
	require.NotNil(t, j.CompletedAt)

	records, err := f.records.ListByUpload(ctx, up.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	names := map[string]bool{}
	for _, r := range records {
		assert.Equal(t, up.ID, r.UploadID)
		assert.Equal(t, "51-200", r.Size)
		assert.Equal(t, "Tech", r.Industry)
		assert.Equal(t, "$10M", r.Revenue)
		assert.Equal(t, string(constants.RecordStatusOK), r.EnrichmentStatus)
		names[r.CompanyName] = true
	}
	assert.True(t, names["Acme Corp"] && names["Globex"] && names["Initech"],
		"aliased headers must all normalize to company_name")
}

func TestPipelineMalformedInputIsTerminal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Rows exist but none carries the mandatory column.
	up := f.createUpload(t, "user-a", []map[string]string{
		{"Website": "nowhere.example"},
		{"City": "Lagos"},
	})
	job, err := f.manager.Admit(ctx, up)
	require.NoError(t, err)

	err = f.exec.ProcessJob(ctx, job.ID)
	require.ErrorIs(t, err, common.ErrMalformedInput)

	row, err := f.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	j := utils.ToProcessingJob(row)
	assert.Equal(t, string(constants.JobStatusFailed), j.JobStatus)
	require.NotNil(t, j.ErrorKind)
	assert.Equal(t, common.KindMalformedInput, *j.ErrorKind)
	assert.False(t, common.IsRetryable(*j.ErrorKind))
	assert.Equal(t, 0, f.stub.Calls, "collaborator must not be called for malformed input")
}

func TestPipelineCollaboratorFailureIsRetryable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.stub.Err = errors.New("upstream 503")

	up := f.createUpload(t, "user-a", threeCompanies())
	job, err := f.manager.Admit(ctx, up)
	require.NoError(t, err)

	err = f.exec.ProcessJob(ctx, job.ID)
	require.Error(t, err)

	row, err := f.jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	j := utils.ToProcessingJob(row)
	assert.Equal(t, string(constants.JobStatusFailed), j.JobStatus)
	require.NotNil(t, j.ErrorKind)
	assert.Equal(t, common.KindCollaborator, *j.ErrorKind)
	assert.True(t, common.IsRetryable(*j.ErrorKind))

	// Upload stays in processing: the scheduler owns the retry decision.
	reloaded, err := f.uploads.GetByID(ctx, up.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.UploadStatusProcessing), reloaded.ProcessingStatus)

	// No partial results leak out of a failed run.
	count, err := f.records.CountByUpload(ctx, up.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestPipelineReprocessIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	up := f.createUpload(t, "user-a", threeCompanies())
	job, err := f.manager.Admit(ctx, up)
	require.NoError(t, err)
	require.NoError(t, f.exec.ProcessJob(ctx, job.ID))

	first, err := f.records.ListByUpload(ctx, up.ID)
	require.NoError(t, err)
	require.Len(t, first, 3)

	// Operator reset and a second full run.
	require.NoError(t, f.uploads.Reset(ctx, up.ID))
	reloaded, err := f.uploads.GetByID(ctx, up.ID)
	require.NoError(t, err)
	job2, err := f.manager.Admit(ctx, reloaded)
	require.NoError(t, err)
	require.NoError(t, f.exec.ProcessJob(ctx, job2.ID))

	second, err := f.records.ListByUpload(ctx, up.ID)
	require.NoError(t, err)
	require.Len(t, second, 3, "reprocessing must replace, not accumulate")
	assert.ElementsMatch(t, recordNames(first), recordNames(second))
	for _, r := range second {
		assert.NotContains(t, recordIDs(first), r.ID, "records are rewritten, not reused")
	}
}

func recordNames(records []*entity.EnrichedRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.CompanyName
	}
	return names
}

func recordIDs(records []*entity.EnrichedRecord) []uuid.UUID {
	ids := make([]uuid.UUID, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func TestClaimedJobIsNotRunTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	up := f.createUpload(t, "user-a", threeCompanies())
	job, err := f.manager.Admit(ctx, up)
	require.NoError(t, err)

	require.NoError(t, f.exec.ProcessJob(ctx, job.ID))
	calls := f.stub.Calls

	// A second dispatch of the same job is a silent no-op.
	require.NoError(t, f.exec.ProcessJob(ctx, job.ID))
	assert.Equal(t, calls, f.stub.Calls)
}

func TestNormalizeRows(t *testing.T) {
	rows := []map[string]string{
		{"Company Name": "Acme", "URL": "acme.example", "ignored": "x"},
		{"organisation": "Globex", "Town": "Berlin"},
		{"Website": "orphan.example"}, // dropped: no company name
		{"name": ""},                  // dropped: empty mandatory value
	}
	out := NormalizeRows(rows)
	require.Len(t, out, 2)
	assert.Equal(t, "Acme", out[0][constants.ColumnCompanyName])
	assert.Equal(t, "acme.example", out[0][constants.ColumnWebsite])
	_, hasIgnored := out[0]["ignored"]
	assert.False(t, hasIgnored, "unknown columns are discarded")
	assert.Equal(t, "Globex", out[1][constants.ColumnCompanyName])
	assert.Equal(t, "Berlin", out[1][constants.ColumnCity])
}
