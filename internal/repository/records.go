package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tomide-adesanmi/company-enricher/gen/ent"
	entrecord "github.com/tomide-adesanmi/company-enricher/gen/ent/enrichedrecord"
	"github.com/tomide-adesanmi/company-enricher/internal/common"
	"github.com/tomide-adesanmi/company-enricher/internal/entity"
	"github.com/tomide-adesanmi/company-enricher/internal/utils"
)

type RecordRepository interface {
	// ReplaceForUpload deletes any existing records for the upload and inserts
	// the new set in one transaction, so reprocessing never duplicates rows.
	ReplaceForUpload(ctx context.Context, uploadID uuid.UUID, ownerID string, records []*entity.EnrichedRecord) error
	ListByUpload(ctx context.Context, uploadID uuid.UUID) ([]*entity.EnrichedRecord, error)
	CountByUpload(ctx context.Context, uploadID uuid.UUID) (int, error)
	DeleteByUpload(ctx context.Context, uploadID uuid.UUID) (int, error)
}

type recordRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewRecordRepository(entc *ent.Client, logger *slog.Logger) RecordRepository {
	return &recordRepo{ent: entc, logger: logger}
}

func (r *recordRepo) ReplaceForUpload(ctx context.Context, uploadID uuid.UUID, ownerID string, records []*entity.EnrichedRecord) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return common.WrapError(err, "begin replace transaction")
	}

	deleted, err := tx.EnrichedRecord.Delete().
		Where(entrecord.UploadID(uploadID)).
		Exec(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to delete existing records", "upload_id", uploadID, "error", err)
		return err
	}

	builders := make([]*ent.EnrichedRecordCreate, len(records))
	for i, rec := range records {
		builders[i] = tx.EnrichedRecord.Create().
			SetUploadID(uploadID).
			SetOwnerID(ownerID).
			SetCompanyName(rec.CompanyName).
			SetWebsite(rec.Website).
			SetCountry(rec.Country).
			SetCity(rec.City).
			SetSize(rec.Size).
			SetIndustry(rec.Industry).
			SetRevenue(rec.Revenue).
			SetEnrichmentStatus(rec.EnrichmentStatus)
	}
	if _, err := tx.EnrichedRecord.CreateBulk(builders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to insert enriched records", "upload_id", uploadID, "count", len(records), "error", err)
		return err
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit record replacement", "upload_id", uploadID, "error", err)
		return err
	}
	r.logger.Info("enriched records replaced", "upload_id", uploadID, "deleted", deleted, "inserted", len(records))
	return nil
}

func (r *recordRepo) ListByUpload(ctx context.Context, uploadID uuid.UUID) ([]*entity.EnrichedRecord, error) {
	rows, err := r.ent.EnrichedRecord.Query().
		Where(entrecord.UploadID(uploadID)).
		Order(ent.Asc(entrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list enriched records", "upload_id", uploadID, "error", err)
		return nil, err
	}
	out := make([]*entity.EnrichedRecord, len(rows))
	for i, row := range rows {
		out[i] = utils.ToEnrichedRecord(row)
	}
	return out, nil
}

func (r *recordRepo) CountByUpload(ctx context.Context, uploadID uuid.UUID) (int, error) {
	return r.ent.EnrichedRecord.Query().
		Where(entrecord.UploadID(uploadID)).
		Count(ctx)
}

// DeleteByUpload removes an upload's records; used when the upload itself is deleted.
func (r *recordRepo) DeleteByUpload(ctx context.Context, uploadID uuid.UUID) (int, error) {
	n, err := r.ent.EnrichedRecord.Delete().
		Where(entrecord.UploadID(uploadID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete records for upload", "upload_id", uploadID, "error", err)
		return 0, err
	}
	return n, nil
}
