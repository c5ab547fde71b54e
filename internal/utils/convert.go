package utils

import (
	"encoding/json"

	"github.com/tomide-adesanmi/company-enricher/gen/ent"
	"github.com/tomide-adesanmi/company-enricher/internal/entity"
)

func ToUpload(e *ent.Upload) *entity.Upload {
	return &entity.Upload{
		ID:               e.ID,
		OwnerID:          e.OwnerID,
		Filename:         e.Filename,
		FileExt:          e.FileExt,
		FileSize:         e.FileSize,
		RowCount:         e.RowCount,
		Rows:             e.Rows,
		ContentHash:      e.ContentHash,
		ProcessingStatus: e.ProcessingStatus,
		UploadedAt:       e.UploadedAt,
		ProcessedAt:      e.ProcessedAt,
		ErrorMessage:     e.ErrorMessage,
	}
}

func ToUploadSummary(e *ent.Upload) *entity.UploadSummary {
	return &entity.UploadSummary{
		ID:               e.ID,
		Filename:         e.Filename,
		RowCount:         e.RowCount,
		ProcessingStatus: e.ProcessingStatus,
		UploadedAt:       e.UploadedAt,
		ProcessedAt:      e.ProcessedAt,
		ErrorMessage:     e.ErrorMessage,
	}
}

func ToProcessingJob(e *ent.ProcessingJob) *entity.ProcessingJob {
	j := &entity.ProcessingJob{
		ID:           e.ID,
		UploadID:     e.UploadID,
		OwnerID:      e.OwnerID,
		JobStatus:    e.JobStatus,
		ScheduledAt:  e.ScheduledAt,
		StartedAt:    e.StartedAt,
		CompletedAt:  e.CompletedAt,
		RetryCount:   e.RetryCount,
		MaxRetries:   e.MaxRetries,
		ErrorMessage: e.ErrorMessage,
		ErrorKind:    e.ErrorKind,
	}
	if len(e.Progress) > 0 {
		var p entity.JobProgress
		if err := json.Unmarshal(e.Progress, &p); err == nil {
			j.Progress = &p
		}
	}
	return j
}

func ToEnrichedRecord(e *ent.EnrichedRecord) *entity.EnrichedRecord {
	return &entity.EnrichedRecord{
		ID:               e.ID,
		UploadID:         e.UploadID,
		OwnerID:          e.OwnerID,
		CompanyName:      e.CompanyName,
		Website:          e.Website,
		Country:          e.Country,
		City:             e.City,
		Size:             e.Size,
		Industry:         e.Industry,
		Revenue:          e.Revenue,
		EnrichmentStatus: e.EnrichmentStatus,
		CreatedAt:        e.CreatedAt,
	}
}
