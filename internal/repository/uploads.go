package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/gen/ent"
	entupload "github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
	"github.com/tomide-adesanmi/company-enricher/internal/entity"
	"github.com/tomide-adesanmi/company-enricher/internal/utils"
)

type UploadRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Upload, error)
	GetByOwnerAndHash(ctx context.Context, ownerID string, hash []byte) (*ent.Upload, error)
	Create(ctx context.Context, ownerID, filename, ext string, size int, rows []map[string]string, hash []byte, uploadedAt time.Time) (*ent.Upload, error)
	UpsertByHash(ctx context.Context, ownerID, filename, ext string, size int, rows []map[string]string, hash []byte, uploadedAt time.Time) (*ent.Upload, bool, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.UploadSummary, *entity.StatusCounts, error)
	OldestPending(ctx context.Context, ownerID string) (*ent.Upload, error)
	OwnersWithPending(ctx context.Context) ([]string, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	Reset(ctx context.Context, id uuid.UUID) error
}

type uploadRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewUploadRepository(entc *ent.Client, logger *slog.Logger) UploadRepository {
	return &uploadRepo{ent: entc, logger: logger}
}

func (r *uploadRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Upload, error) {
	return r.ent.Upload.Get(ctx, id)
}

func (r *uploadRepo) GetByOwnerAndHash(ctx context.Context, ownerID string, hash []byte) (*ent.Upload, error) {
	row, err := r.ent.Upload.Query().
		Where(
			entupload.OwnerID(ownerID),
			entupload.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *uploadRepo) Create(ctx context.Context, ownerID, filename, ext string, size int, rows []map[string]string, hash []byte, uploadedAt time.Time) (*ent.Upload, error) {
	row, err := r.ent.Upload.Create().
		SetOwnerID(ownerID).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetRowCount(len(rows)).
		SetRows(rows).
		SetContentHash(hash).
		SetProcessingStatus(string(constants.UploadStatusPending)).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create upload", "owner_id", ownerID, "filename", filename, "error", err)
		return nil, err
	}
	r.logger.Info("upload created", "upload_id", row.ID, "owner_id", ownerID, "rows", len(rows))
	return row, nil
}

func (r *uploadRepo) UpsertByHash(ctx context.Context, ownerID, filename, ext string, size int, rows []map[string]string, hash []byte, uploadedAt time.Time) (*ent.Upload, bool, error) {
	if existing, err := r.GetByOwnerAndHash(ctx, ownerID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, ownerID, filename, ext, size, rows, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (r *uploadRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entity.UploadSummary, *entity.StatusCounts, error) {
	uploads, err := r.ent.Upload.Query().
		Where(entupload.OwnerID(ownerID)).
		Order(ent.Desc(entupload.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list uploads", "owner_id", ownerID, "error", err)
		return nil, nil, err
	}

	summaries := make([]*entity.UploadSummary, len(uploads))
	counts := &entity.StatusCounts{}
	for i, u := range uploads {
		summaries[i] = utils.ToUploadSummary(u)
		switch constants.UploadStatus(u.ProcessingStatus) {
		case constants.UploadStatusPending:
			counts.Pending++
		case constants.UploadStatusProcessing:
			counts.Processing++
		case constants.UploadStatusCompleted:
			counts.Completed++
		case constants.UploadStatusFailed:
			counts.Failed++
		}
	}
	return summaries, counts, nil
}

// OldestPending returns the owner's oldest pending upload, or ent.NotFoundError.
// Ordering by uploaded_at gives the strict per-user FIFO the queue relies on.
func (r *uploadRepo) OldestPending(ctx context.Context, ownerID string) (*ent.Upload, error) {
	return r.ent.Upload.Query().
		Where(
			entupload.OwnerID(ownerID),
			entupload.ProcessingStatus(string(constants.UploadStatusPending)),
		).
		Order(ent.Asc(entupload.FieldUploadedAt)).
		First(ctx)
}

// OwnersWithPending returns the distinct owners that have pending uploads.
// A grouped scan, so cost tracks distinct users rather than total uploads.
func (r *uploadRepo) OwnersWithPending(ctx context.Context) ([]string, error) {
	owners, err := r.ent.Upload.Query().
		Where(entupload.ProcessingStatus(string(constants.UploadStatusPending))).
		GroupBy(entupload.FieldOwnerID).
		Strings(ctx)
	if err != nil {
		r.logger.Error("failed to scan owners with pending uploads", "error", err)
		return nil, err
	}
	return owners, nil
}

// MarkProcessing advances pending -> processing. The update is conditional so a
// completed or failed upload can never regress; re-marking a processing upload
// (a retry re-running stage 1) is a no-op success.
func (r *uploadRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Upload.Update().
		Where(
			entupload.ID(id),
			entupload.ProcessingStatusIn(
				string(constants.UploadStatusPending),
				string(constants.UploadStatusProcessing),
			),
		).
		SetProcessingStatus(string(constants.UploadStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark upload processing", "upload_id", id, "error", err)
	}
	return err
}

func (r *uploadRepo) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Upload.Update().
		Where(
			entupload.ID(id),
			entupload.ProcessingStatus(string(constants.UploadStatusProcessing)),
		).
		SetProcessingStatus(string(constants.UploadStatusCompleted)).
		SetProcessedAt(time.Now().UTC()).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark upload completed", "upload_id", id, "error", err)
	}
	return err
}

func (r *uploadRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.Upload.Update().
		Where(
			entupload.ID(id),
			entupload.ProcessingStatus(string(constants.UploadStatusProcessing)),
		).
		SetProcessingStatus(string(constants.UploadStatusFailed)).
		SetProcessedAt(time.Now().UTC()).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark upload failed", "upload_id", id, "error", err)
		return err
	}
	r.logger.Warn("upload failed", "upload_id", id, "error", message)
	return nil
}

// Reset is the explicit operator escape hatch: back to pending for reprocessing.
func (r *uploadRepo) Reset(ctx context.Context, id uuid.UUID) error {
	err := r.ent.Upload.UpdateOneID(id).
		SetProcessingStatus(string(constants.UploadStatusPending)).
		ClearProcessedAt().
		ClearErrorMessage().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to reset upload", "upload_id", id, "error", err)
		return err
	}
	r.logger.Info("upload reset to pending", "upload_id", id)
	return nil
}
