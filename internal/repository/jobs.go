package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/gen/ent"
	entjob "github.com/tomide-adesanmi/company-enricher/gen/ent/processingjob"
	entupload "github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
	"github.com/tomide-adesanmi/company-enricher/internal/common"
	"github.com/tomide-adesanmi/company-enricher/internal/entity"
)

type JobRepository interface {
	// AdmitForUpload creates a queued job for the upload iff its owner has no job
	// in {queued, processing}. Check and insert run in one transaction; on a lost
	// race the caller gets common.ErrAdmissionConflict.
	AdmitForUpload(ctx context.Context, upload *ent.Upload, maxRetries int) (*ent.ProcessingJob, error)
	ActiveForOwner(ctx context.Context, ownerID string) ([]*ent.ProcessingJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.ProcessingJob, error)
	LatestForUpload(ctx context.Context, uploadID uuid.UUID) (*ent.ProcessingJob, error)
	// ClaimProcessing flips queued -> processing. Returns false when another
	// worker already claimed the job; double dispatch is resolved here.
	ClaimProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, p entity.JobProgress) error
	Complete(ctx context.Context, id uuid.UUID) error
	Fail(ctx context.Context, id uuid.UUID, message, kind string) error
	ResetForRetry(ctx context.Context, id uuid.UUID) error
	ListQueued(ctx context.Context) ([]*ent.ProcessingJob, error)
	ListStale(ctx context.Context, cutoff time.Time) ([]*ent.ProcessingJob, error)
	// ListFailedUnresolved returns failed jobs whose upload has not reached a
	// terminal status yet; the scheduler decides retry vs permanent failure.
	ListFailedUnresolved(ctx context.Context) ([]*ent.ProcessingJob, error)
}

type jobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewJobRepository(entc *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, logger: logger}
}

func (r *jobRepo) AdmitForUpload(ctx context.Context, upload *ent.Upload, maxRetries int) (*ent.ProcessingJob, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		r.logger.Error("admit: begin tx failed", "upload_id", upload.ID, "error", err)
		return nil, common.WrapError(err, "begin admit transaction")
	}

	active, err := tx.ProcessingJob.Query().
		Where(
			entjob.OwnerID(upload.OwnerID),
			entjob.JobStatusIn(constants.ActiveJobStatuses...),
		).
		Count(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("admit: active-job check failed", "owner_id", upload.OwnerID, "error", err)
		return nil, err
	}
	if active > 0 {
		_ = tx.Rollback()
		r.logger.Info("admission rejected, job already active", "owner_id", upload.OwnerID, "upload_id", upload.ID)
		return nil, common.ErrAdmissionConflict
	}

	job, err := tx.ProcessingJob.Create().
		SetUploadID(upload.ID).
		SetOwnerID(upload.OwnerID).
		SetJobStatus(string(constants.JobStatusQueued)).
		SetScheduledAt(time.Now().UTC()).
		SetMaxRetries(maxRetries).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("admit: job create failed", "upload_id", upload.ID, "error", err)
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		r.logger.Error("admit: commit failed", "upload_id", upload.ID, "error", err)
		return nil, err
	}
	r.logger.Info("job admitted", "job_id", job.ID, "upload_id", upload.ID, "owner_id", upload.OwnerID)
	return job, nil
}

func (r *jobRepo) ActiveForOwner(ctx context.Context, ownerID string) ([]*ent.ProcessingJob, error) {
	return r.ent.ProcessingJob.Query().
		Where(
			entjob.OwnerID(ownerID),
			entjob.JobStatusIn(constants.ActiveJobStatuses...),
		).
		All(ctx)
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.ProcessingJob, error) {
	return r.ent.ProcessingJob.Get(ctx, id)
}

func (r *jobRepo) LatestForUpload(ctx context.Context, uploadID uuid.UUID) (*ent.ProcessingJob, error) {
	return r.ent.ProcessingJob.Query().
		Where(entjob.UploadID(uploadID)).
		Order(ent.Desc(entjob.FieldScheduledAt)).
		First(ctx)
}

func (r *jobRepo) ClaimProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	now := time.Now().UTC()
	n, err := r.ent.ProcessingJob.Update().
		Where(
			entjob.ID(id),
			entjob.JobStatus(string(constants.JobStatusQueued)),
		).
		SetJobStatus(string(constants.JobStatusProcessing)).
		SetStartedAt(now).
		SetProgressUpdatedAt(now).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to claim job", "job_id", id, "error", err)
		return false, err
	}
	return n == 1, nil
}

func (r *jobRepo) UpdateProgress(ctx context.Context, id uuid.UUID, p entity.JobProgress) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return common.WrapError(err, "encode progress")
	}
	err = r.ent.ProcessingJob.UpdateOneID(id).
		SetProgress(raw).
		SetProgressUpdatedAt(p.UpdatedAt).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update job progress", "job_id", id, "stage", p.Stage, "error", err)
		return err
	}
	r.logger.Debug("job progress", "job_id", id, "stage", p.Stage, "percent", p.Percent)
	return nil
}

func (r *jobRepo) Complete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.ProcessingJob.UpdateOneID(id).
		SetJobStatus(string(constants.JobStatusCompleted)).
		SetCompletedAt(time.Now().UTC()).
		ClearErrorMessage().
		ClearErrorKind().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to complete job", "job_id", id, "error", err)
		return err
	}
	r.logger.Info("job completed", "job_id", id)
	return nil
}

func (r *jobRepo) Fail(ctx context.Context, id uuid.UUID, message, kind string) error {
	err := r.ent.ProcessingJob.UpdateOneID(id).
		SetJobStatus(string(constants.JobStatusFailed)).
		SetCompletedAt(time.Now().UTC()).
		SetErrorMessage(message).
		SetErrorKind(kind).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark job failed", "job_id", id, "error", err)
		return err
	}
	r.logger.Warn("job failed", "job_id", id, "kind", kind, "error", message)
	return nil
}

func (r *jobRepo) ResetForRetry(ctx context.Context, id uuid.UUID) error {
	err := r.ent.ProcessingJob.UpdateOneID(id).
		SetJobStatus(string(constants.JobStatusQueued)).
		AddRetryCount(1).
		ClearStartedAt().
		ClearCompletedAt().
		SetProgressUpdatedAt(time.Now().UTC()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to reset job for retry", "job_id", id, "error", err)
		return err
	}
	r.logger.Info("job reset for retry", "job_id", id)
	return nil
}

func (r *jobRepo) ListQueued(ctx context.Context) ([]*ent.ProcessingJob, error) {
	return r.ent.ProcessingJob.Query().
		Where(entjob.JobStatus(string(constants.JobStatusQueued))).
		Order(ent.Asc(entjob.FieldScheduledAt)).
		All(ctx)
}

func (r *jobRepo) ListStale(ctx context.Context, cutoff time.Time) ([]*ent.ProcessingJob, error) {
	return r.ent.ProcessingJob.Query().
		Where(
			entjob.JobStatus(string(constants.JobStatusProcessing)),
			entjob.ProgressUpdatedAtLT(cutoff),
		).
		All(ctx)
}

func (r *jobRepo) ListFailedUnresolved(ctx context.Context) ([]*ent.ProcessingJob, error) {
	return r.ent.ProcessingJob.Query().
		Where(
			entjob.JobStatus(string(constants.JobStatusFailed)),
			entjob.HasUploadWith(
				entupload.ProcessingStatus(string(constants.UploadStatusProcessing)),
			),
		).
		All(ctx)
}
