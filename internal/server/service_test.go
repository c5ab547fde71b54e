package server

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tomide-adesanmi/company-enricher/constants"
	enricherv1 "github.com/tomide-adesanmi/company-enricher/gen/proto/enricher/v1"
	"github.com/tomide-adesanmi/company-enricher/internal/ingest"
	"github.com/tomide-adesanmi/company-enricher/internal/queue"
	"github.com/tomide-adesanmi/company-enricher/internal/repository"
)

func newService(t *testing.T) *EnricherService {
	t.Helper()
	logger := slog.Default()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := repository.OpenSQLite(dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))

	uploads := repository.NewUploadRepository(client, logger)
	jobs := repository.NewJobRepository(client, logger)
	records := repository.NewRecordRepository(client, logger)
	manager := queue.NewManager(uploads, jobs, 3, logger)
	return NewEnricherService(ingest.NewUsecase(uploads, logger), manager, uploads, jobs, records, logger)
}

func grpcCode(t *testing.T, err error) codes.Code {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a grpc status error, got %v", err)
	return st.Code()
}

func TestSubmitUploadValidation(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.SubmitUpload(ctx, &enricherv1.SubmitUploadRequest{
		Filename: "a.csv", Content: []byte("company_name\nAcme\n"),
	})
	assert.Equal(t, codes.InvalidArgument, grpcCode(t, err))

	_, err = svc.SubmitUpload(ctx, &enricherv1.SubmitUploadRequest{
		OwnerId: "user-a", Filename: "a.exe", Content: []byte("company_name\nAcme\n"),
	})
	assert.Equal(t, codes.InvalidArgument, grpcCode(t, err))

	resp, err := svc.SubmitUpload(ctx, &enricherv1.SubmitUploadRequest{
		OwnerId: "user-a", Filename: "a.csv", Content: []byte("company_name\nAcme\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.UploadStatusPending), resp.ProcessingStatus)
	assert.Equal(t, int32(1), resp.RowCount)
	assert.False(t, resp.Deduplicated)

	// Resubmitting the same bytes returns the existing upload.
	again, err := svc.SubmitUpload(ctx, &enricherv1.SubmitUploadRequest{
		OwnerId: "user-a", Filename: "a.csv", Content: []byte("company_name\nAcme\n"),
	})
	require.NoError(t, err)
	assert.True(t, again.Deduplicated)
	assert.Equal(t, resp.UploadId, again.UploadId)
}

func TestProcessNowStatusMapping(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.SubmitUpload(ctx, &enricherv1.SubmitUploadRequest{
		OwnerId: "user-a", Filename: "a.csv", Content: []byte("company_name\nAcme\n"),
	})
	require.NoError(t, err)
	second, err := svc.SubmitUpload(ctx, &enricherv1.SubmitUploadRequest{
		OwnerId: "user-a", Filename: "b.csv", Content: []byte("company_name\nGlobex\n"),
	})
	require.NoError(t, err)

	queued, err := svc.ProcessNow(ctx, &enricherv1.ProcessNowRequest{
		OwnerId: "user-a", UploadId: first.UploadId,
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusQueued), queued.JobStatus)

	// One active job per user: the second request conflicts.
	_, err = svc.ProcessNow(ctx, &enricherv1.ProcessNowRequest{
		OwnerId: "user-a", UploadId: second.UploadId,
	})
	assert.Equal(t, codes.AlreadyExists, grpcCode(t, err))

	// And the conflicting upload is untouched.
	st, err := svc.GetJobStatus(ctx, &enricherv1.GetJobStatusRequest{
		OwnerId: "user-a", UploadId: second.UploadId,
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.UploadStatusPending), st.ProcessingStatus)

	_, err = svc.ProcessNow(ctx, &enricherv1.ProcessNowRequest{
		OwnerId: "user-a", UploadId: uuid.NewString(),
	})
	assert.Equal(t, codes.NotFound, grpcCode(t, err))

	_, err = svc.ProcessNow(ctx, &enricherv1.ProcessNowRequest{
		OwnerId: "user-a", UploadId: "not-a-uuid",
	})
	assert.Equal(t, codes.InvalidArgument, grpcCode(t, err))
}

func TestOwnershipIsOpaque(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	mine, err := svc.SubmitUpload(ctx, &enricherv1.SubmitUploadRequest{
		OwnerId: "user-a", Filename: "a.csv", Content: []byte("company_name\nAcme\n"),
	})
	require.NoError(t, err)

	// Other users cannot tell a foreign upload from a missing one.
	_, err = svc.GetJobStatus(ctx, &enricherv1.GetJobStatusRequest{
		OwnerId: "user-b", UploadId: mine.UploadId,
	})
	assert.Equal(t, codes.NotFound, grpcCode(t, err))

	_, err = svc.ProcessNow(ctx, &enricherv1.ProcessNowRequest{
		OwnerId: "user-b", UploadId: mine.UploadId,
	})
	assert.Equal(t, codes.NotFound, grpcCode(t, err))

	_, err = svc.ListEnrichedRecords(ctx, &enricherv1.ListEnrichedRecordsRequest{
		OwnerId: "user-b", UploadId: mine.UploadId,
	})
	assert.Equal(t, codes.NotFound, grpcCode(t, err))
}

func TestListUploadsCounts(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, f := range []string{"a.csv", "b.csv"} {
		_, err := svc.SubmitUpload(ctx, &enricherv1.SubmitUploadRequest{
			OwnerId: "user-a", Filename: f, Content: []byte("company_name\n" + f + "\n"),
		})
		require.NoError(t, err)
	}

	resp, err := svc.ListUploads(ctx, &enricherv1.ListUploadsRequest{OwnerId: "user-a"})
	require.NoError(t, err)
	assert.Len(t, resp.Uploads, 2)
	assert.Equal(t, int32(2), resp.Counts.Pending)

	empty, err := svc.ListUploads(ctx, &enricherv1.ListUploadsRequest{OwnerId: "user-z"})
	require.NoError(t, err)
	assert.Empty(t, empty.Uploads)
}
