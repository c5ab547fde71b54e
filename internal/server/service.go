package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tomide-adesanmi/company-enricher/gen/ent"
	enricherv1 "github.com/tomide-adesanmi/company-enricher/gen/proto/enricher/v1"
	"github.com/tomide-adesanmi/company-enricher/internal/common"
	"github.com/tomide-adesanmi/company-enricher/internal/ingest"
	"github.com/tomide-adesanmi/company-enricher/internal/queue"
	"github.com/tomide-adesanmi/company-enricher/internal/repository"
	"github.com/tomide-adesanmi/company-enricher/internal/utils"
)

// EnricherService is the thin gRPC layer over the ingest usecase, queue manager
// and repositories. No pipeline logic lives here.
type EnricherService struct {
	enricherv1.UnimplementedEnricherServiceServer
	ingestor ingest.Ingestor
	manager  *queue.Manager
	uploads  repository.UploadRepository
	jobs     repository.JobRepository
	records  repository.RecordRepository
	logger   *slog.Logger
}

func NewEnricherService(
	ing ingest.Ingestor,
	manager *queue.Manager,
	uploads repository.UploadRepository,
	jobs repository.JobRepository,
	records repository.RecordRepository,
	logger *slog.Logger,
) *EnricherService {
	return &EnricherService{
		ingestor: ing,
		manager:  manager,
		uploads:  uploads,
		jobs:     jobs,
		records:  records,
		logger:   logger,
	}
}

func (s *EnricherService) SubmitUpload(ctx context.Context, req *enricherv1.SubmitUploadRequest) (*enricherv1.SubmitUploadResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}
	if req.GetFilename() == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	ctx = common.WithOwnerID(ctx, ownerID)
	res, err := s.ingestor.IngestContent(ctx, ownerID, req.GetFilename(), req.GetContent())
	if err != nil {
		s.logger.Warn("submit upload failed", "owner_id", ownerID, "filename", req.GetFilename(), "error", err)
		return nil, common.InvalidArgumentError(err.Error())
	}

	return &enricherv1.SubmitUploadResponse{
		UploadId:         res.UploadID,
		ProcessingStatus: s.uploadStatus(ctx, res.UploadID),
		Deduplicated:     res.Deduplicated,
		RowCount:         int32(res.RowCount),
	}, nil
}

func (s *EnricherService) ProcessNow(ctx context.Context, req *enricherv1.ProcessNowRequest) (*enricherv1.ProcessNowResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	uploadID, err := s.parseUploadID(req.GetUploadId())
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, ownerID, uploadID); err != nil {
		return nil, err
	}

	job, err := s.manager.AdmitUpload(ctx, uploadID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAdmissionConflict):
			// Explicit conflict: the upload stays pending, nothing is queued.
			return nil, common.AlreadyExistsError("a job is already active for this user")
		case errors.Is(err, common.ErrNotFound):
			return nil, common.NotFoundError("upload not found")
		case errors.Is(err, common.ErrInvalidInput):
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		default:
			s.logger.Error("process now failed", "upload_id", uploadID, "error", err)
			return nil, common.InternalError("could not queue upload")
		}
	}
	return &enricherv1.ProcessNowResponse{
		JobId:     job.ID.String(),
		JobStatus: job.JobStatus,
	}, nil
}

func (s *EnricherService) GetJobStatus(ctx context.Context, req *enricherv1.GetJobStatusRequest) (*enricherv1.GetJobStatusResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	uploadID, err := s.parseUploadID(req.GetUploadId())
	if err != nil {
		return nil, err
	}

	upload, err := s.uploads.GetByID(ctx, uploadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("upload not found")
		}
		s.logger.Error("get job status failed", "upload_id", uploadID, "error", err)
		return nil, common.InternalError("could not load upload")
	}
	if upload.OwnerID != ownerID {
		return nil, common.NotFoundError("upload not found")
	}

	resp := &enricherv1.GetJobStatusResponse{
		UploadId:         upload.ID.String(),
		ProcessingStatus: upload.ProcessingStatus,
	}
	if upload.ErrorMessage != nil {
		resp.ErrorMessage = *upload.ErrorMessage
	}

	row, err := s.jobs.LatestForUpload(ctx, uploadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return resp, nil // not picked up yet; upload status alone is the answer
		}
		s.logger.Error("get job status failed", "upload_id", uploadID, "error", err)
		return nil, common.InternalError("could not load job")
	}
	job := utils.ToProcessingJob(row)
	resp.JobStatus = job.JobStatus
	resp.RetryCount = int32(job.RetryCount)
	resp.MaxRetries = int32(job.MaxRetries)
	if resp.ErrorMessage == "" && job.ErrorMessage != nil {
		resp.ErrorMessage = *job.ErrorMessage
	}
	if job.Progress != nil {
		resp.Progress = &enricherv1.JobProgress{
			Stage:     job.Progress.Stage,
			Percent:   int32(job.Progress.Percent),
			Message:   job.Progress.Message,
			UpdatedAt: job.Progress.UpdatedAt.UTC().Format(time.RFC3339),
		}
	}
	return resp, nil
}

func (s *EnricherService) ListUploads(ctx context.Context, req *enricherv1.ListUploadsRequest) (*enricherv1.ListUploadsResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	if ownerID == "" {
		return nil, common.InvalidArgumentError("owner_id is required")
	}

	summaries, counts, err := s.uploads.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("list uploads failed", "owner_id", ownerID, "error", err)
		return nil, common.InternalError("could not list uploads")
	}

	out := make([]*enricherv1.UploadSummary, len(summaries))
	for i, u := range summaries {
		pb := &enricherv1.UploadSummary{
			UploadId:         u.ID.String(),
			Filename:         u.Filename,
			RowCount:         int32(u.RowCount),
			ProcessingStatus: u.ProcessingStatus,
			UploadedAt:       u.UploadedAt.UTC().Format(time.RFC3339),
		}
		if u.ProcessedAt != nil {
			pb.ProcessedAt = u.ProcessedAt.UTC().Format(time.RFC3339)
		}
		if u.ErrorMessage != nil {
			pb.ErrorMessage = *u.ErrorMessage
		}
		out[i] = pb
	}
	return &enricherv1.ListUploadsResponse{
		Uploads: out,
		Counts: &enricherv1.StatusCounts{
			Pending:    int32(counts.Pending),
			Processing: int32(counts.Processing),
			Completed:  int32(counts.Completed),
			Failed:     int32(counts.Failed),
		},
	}, nil
}

func (s *EnricherService) ListEnrichedRecords(ctx context.Context, req *enricherv1.ListEnrichedRecordsRequest) (*enricherv1.ListEnrichedRecordsResponse, error) {
	ownerID := strings.TrimSpace(req.GetOwnerId())
	uploadID, err := s.parseUploadID(req.GetUploadId())
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(ctx, ownerID, uploadID); err != nil {
		return nil, err
	}

	records, err := s.records.ListByUpload(ctx, uploadID)
	if err != nil {
		s.logger.Error("list records failed", "upload_id", uploadID, "error", err)
		return nil, common.InternalError("could not list enriched records")
	}
	out := make([]*enricherv1.EnrichedRecord, len(records))
	for i, r := range records {
		out[i] = &enricherv1.EnrichedRecord{
			Id:               r.ID.String(),
			UploadId:         r.UploadID.String(),
			CompanyName:      r.CompanyName,
			Website:          r.Website,
			Country:          r.Country,
			City:             r.City,
			Size:             r.Size,
			Industry:         r.Industry,
			Revenue:          r.Revenue,
			EnrichmentStatus: r.EnrichmentStatus,
		}
	}
	return &enricherv1.ListEnrichedRecordsResponse{Records: out}, nil
}

func (s *EnricherService) parseUploadID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("upload_id must be a valid UUID")
	}
	return id, nil
}

// checkOwnership hides other users' uploads behind NotFound.
func (s *EnricherService) checkOwnership(ctx context.Context, ownerID string, uploadID uuid.UUID) error {
	if ownerID == "" {
		return common.InvalidArgumentError("owner_id is required")
	}
	upload, err := s.uploads.GetByID(ctx, uploadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NotFoundError("upload not found")
		}
		return common.InternalError("could not load upload")
	}
	if upload.OwnerID != ownerID {
		return common.NotFoundError("upload not found")
	}
	return nil
}

func (s *EnricherService) uploadStatus(ctx context.Context, id string) string {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ""
	}
	upload, err := s.uploads.GetByID(ctx, uid)
	if err != nil {
		return ""
	}
	return upload.ProcessingStatus
}
