package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/gen/ent"
	"github.com/tomide-adesanmi/company-enricher/internal/common"
	"github.com/tomide-adesanmi/company-enricher/internal/enrich"
	"github.com/tomide-adesanmi/company-enricher/internal/entity"
	"github.com/tomide-adesanmi/company-enricher/internal/repository"
)

// Executor drives one admitted job through the four pipeline stages, persisting
// a progress snapshot after each so pollers never see buffered state. Stage
// errors are classified at this boundary and written to the job record; retry
// decisions live in the scheduler, not here.
type Executor struct {
	uploads  repository.UploadRepository
	jobs     repository.JobRepository
	records  repository.RecordRepository
	enricher enrich.Enricher
	logger   *slog.Logger
}

func NewExecutor(
	uploads repository.UploadRepository,
	jobs repository.JobRepository,
	records repository.RecordRepository,
	enricher enrich.Enricher,
	logger *slog.Logger,
) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		uploads:  uploads,
		jobs:     jobs,
		records:  records,
		enricher: enricher,
		logger:   logger,
	}
}

// ProcessJob claims the job and runs it to a terminal state. A job already
// claimed elsewhere is skipped silently; everything else ends in either
// Complete or Fail on the job record. The returned error mirrors what was
// recorded and exists for synchronous callers (batch mode, tests).
func (e *Executor) ProcessJob(ctx context.Context, jobID uuid.UUID) (err error) {
	claimed, err := e.jobs.ClaimProcessing(ctx, jobID)
	if err != nil {
		return fmt.Errorf("%w: claim job: %v", common.ErrStorage, err)
	}
	if !claimed {
		e.logger.Debug("job already claimed, skipping", "job_id", jobID)
		return nil
	}

	job, err := e.jobs.GetByID(ctx, jobID)
	if err != nil {
		return e.fail(ctx, jobID, fmt.Errorf("%w: load job: %v", common.ErrStorage, err))
	}

	defer func() {
		if r := recover(); r != nil {
			err = e.fail(ctx, jobID, fmt.Errorf("panic in pipeline: %v", r))
		}
	}()

	if runErr := e.run(ctx, job); runErr != nil {
		return e.fail(ctx, jobID, runErr)
	}
	return nil
}

func (e *Executor) run(ctx context.Context, job *ent.ProcessingJob) error {
	// Stage 1: data preparation
	if err := e.uploads.MarkProcessing(ctx, job.UploadID); err != nil {
		return fmt.Errorf("%w: mark upload processing: %v", common.ErrStorage, err)
	}
	upload, err := e.uploads.GetByID(ctx, job.UploadID)
	if err != nil {
		return fmt.Errorf("%w: load upload: %v", common.ErrStorage, err)
	}

	normalized := NormalizeRows(upload.Rows)
	if len(normalized) == 0 {
		return fmt.Errorf("%w: no usable rows after normalization (%d raw rows, mandatory column %q)",
			common.ErrMalformedInput, len(upload.Rows), constants.MandatoryColumn)
	}
	if err := e.progress(ctx, job.ID, constants.StagePrepare, 25,
		fmt.Sprintf("normalized %d of %d rows", len(normalized), len(upload.Rows))); err != nil {
		return err
	}

	// Stage 2: transfer preparation (pure, transient shape for the collaborator)
	batch := make([]enrich.Row, len(normalized))
	copy(batch, normalized)
	if err := e.progress(ctx, job.ID, constants.StageTransfer, 50,
		fmt.Sprintf("prepared batch of %d rows", len(batch))); err != nil {
		return err
	}

	// Stage 3: enrichment, the one call expected to block for a while
	results, err := e.enricher.Enrich(ctx, batch)
	if err != nil {
		if common.ClassifyError(err) == common.KindUnknown {
			err = fmt.Errorf("%w: %v", common.ErrCollaborator, err)
		}
		return err
	}
	if err := e.progress(ctx, job.ID, constants.StageEnrich, 75,
		fmt.Sprintf("enriched %d rows", len(results))); err != nil {
		return err
	}

	// Stage 4: persistence, replace-on-reprocess in one transaction
	records := make([]*entity.EnrichedRecord, len(results))
	for i, res := range results {
		records[i] = &entity.EnrichedRecord{
			UploadID:         upload.ID,
			OwnerID:          upload.OwnerID,
			CompanyName:      res.CompanyName,
			Website:          res.Website,
			Country:          res.Country,
			City:             res.City,
			Size:             res.Size,
			Industry:         res.Industry,
			Revenue:          res.Revenue,
			EnrichmentStatus: res.Status,
		}
	}
	if err := e.records.ReplaceForUpload(ctx, upload.ID, upload.OwnerID, records); err != nil {
		return fmt.Errorf("%w: persist enriched records: %v", common.ErrStorage, err)
	}
	if err := e.progress(ctx, job.ID, constants.StagePersist, 100,
		fmt.Sprintf("persisted %d records", len(records))); err != nil {
		return err
	}

	if err := e.uploads.MarkCompleted(ctx, upload.ID); err != nil {
		return fmt.Errorf("%w: mark upload completed: %v", common.ErrStorage, err)
	}
	if err := e.jobs.Complete(ctx, job.ID); err != nil {
		return fmt.Errorf("%w: complete job: %v", common.ErrStorage, err)
	}
	e.logger.Info("pipeline completed", "job_id", job.ID, "upload_id", upload.ID, "records", len(records))
	return nil
}

func (e *Executor) progress(ctx context.Context, jobID uuid.UUID, stage string, percent int, message string) error {
	err := e.jobs.UpdateProgress(ctx, jobID, entity.JobProgress{
		Stage:     stage,
		Percent:   percent,
		Message:   message,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: write progress %s: %v", common.ErrStorage, stage, err)
	}
	return nil
}

// fail records the classified failure on the job and echoes the original error.
// The upload is left in processing: the scheduler's retry pass owns the
// decision to fail it permanently or requeue the job.
func (e *Executor) fail(ctx context.Context, jobID uuid.UUID, cause error) error {
	kind := common.ClassifyError(cause)
	if failErr := e.jobs.Fail(ctx, jobID, cause.Error(), kind); failErr != nil {
		e.logger.Error("could not record job failure", "job_id", jobID, "error", failErr, "cause", cause)
	}
	return cause
}
