package ingest

import (
	"context"
	"time"
)

// IngestionResult is the per-file ingest outcome.
type IngestionResult struct {
	UploadID     string
	Filename     string
	Deduplicated bool
	HashHex      string
	FileExt      string
	RowCount     int
	UploadedAt   time.Time
}

// Ingestor is the behavior the service and the watcher depend on.
type Ingestor interface {
	// IngestContent parses and persists an in-memory file (the API upload path).
	IngestContent(ctx context.Context, ownerID, filename string, content []byte) (IngestionResult, error)
	// IngestPath parses and persists a file on disk (the drop-directory path).
	IngestPath(ctx context.Context, ownerID, path string) (IngestionResult, error)
}
