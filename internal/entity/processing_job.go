package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobProgress is the snapshot written after each pipeline stage. Readers polling
// job status always see the last completed stage, never a buffered one.
type JobProgress struct {
	Stage     string    `json:"stage"`
	Percent   int       `json:"percent"`
	Message   string    `json:"message"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProcessingJob represents a processing job for data transfer between layers.
type ProcessingJob struct {
	ID           uuid.UUID    `json:"id"`
	UploadID     uuid.UUID    `json:"upload_id"`
	OwnerID      string       `json:"owner_id"`
	JobStatus    string       `json:"job_status"`
	ScheduledAt  time.Time    `json:"scheduled_at"`
	StartedAt    *time.Time   `json:"started_at,omitempty"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
	RetryCount   int          `json:"retry_count"`
	MaxRetries   int          `json:"max_retries"`
	Progress     *JobProgress `json:"progress,omitempty"`
	ErrorMessage *string      `json:"error_message,omitempty"`
	ErrorKind    *string      `json:"error_kind,omitempty"`
}

// RetriesExhausted reports whether the job may not be retried again.
func (j *ProcessingJob) RetriesExhausted() bool {
	return j.RetryCount >= j.MaxRetries
}
