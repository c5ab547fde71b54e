package entity

import (
	"time"

	"github.com/google/uuid"
)

// Upload represents an uploaded company list for data transfer between layers.
type Upload struct {
	ID               uuid.UUID           `json:"id"`
	OwnerID          string              `json:"owner_id"`
	Filename         string              `json:"filename"`
	FileExt          string              `json:"file_ext"`
	FileSize         int                 `json:"file_size"`
	RowCount         int                 `json:"row_count"`
	Rows             []map[string]string `json:"rows,omitempty"`
	ContentHash      []byte              `json:"content_hash"`
	ProcessingStatus string              `json:"processing_status"`
	UploadedAt       time.Time           `json:"uploaded_at"`
	ProcessedAt      *time.Time          `json:"processed_at,omitempty"`
	ErrorMessage     *string             `json:"error_message,omitempty"`
}

// UploadSummary is the per-owner listing row (no raw row payload).
type UploadSummary struct {
	ID               uuid.UUID  `json:"id"`
	Filename         string     `json:"filename"`
	RowCount         int        `json:"row_count"`
	ProcessingStatus string     `json:"processing_status"`
	UploadedAt       time.Time  `json:"uploaded_at"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	ErrorMessage     *string    `json:"error_message,omitempty"`
}

// StatusCounts summarizes an owner's uploads by processing status.
type StatusCounts struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}
