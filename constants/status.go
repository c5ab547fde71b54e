package constants

// UploadStatus is the canonical status for rows in uploads.
type UploadStatus string

// Stable values (store these exact strings in DB).
const (
	UploadStatusPending    UploadStatus = "PENDING"    // persisted, waiting for a scheduler pick
	UploadStatusProcessing UploadStatus = "PROCESSING" // pipeline is running
	UploadStatusCompleted  UploadStatus = "COMPLETED"  // enriched records written
	UploadStatusFailed     UploadStatus = "FAILED"     // terminal failure (bad file or retries exhausted)
)

// UploadStatuses holds the allowed values for the processing_status field.
var UploadStatuses = []string{
	string(UploadStatusPending),
	string(UploadStatusProcessing),
	string(UploadStatusCompleted),
	string(UploadStatusFailed),
}

// JobStatus is the canonical status for rows in processing_jobs.
type JobStatus string

const (
	JobStatusQueued     JobStatus = "QUEUED"     // admitted, waiting for a worker
	JobStatusProcessing JobStatus = "PROCESSING" // pipeline is running
	JobStatusCompleted  JobStatus = "COMPLETED"  // terminal success
	JobStatusFailed     JobStatus = "FAILED"     // failed; may still be retried
)

// JobStatuses holds the allowed values for the job_status field.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
	string(JobStatusFailed),
}

// ActiveJobStatuses are the statuses that occupy a user's admission slot.
var ActiveJobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusProcessing),
}

// RecordStatus is the per-row outcome reported by the enrichment collaborator.
type RecordStatus string

const (
	RecordStatusOK       RecordStatus = "ok"
	RecordStatusNotFound RecordStatus = "not_found"
	RecordStatusError    RecordStatus = "error"
)

// RecordStatuses holds the allowed values for the enrichment_status field.
var RecordStatuses = []string{
	string(RecordStatusOK),
	string(RecordStatusNotFound),
	string(RecordStatusError),
}

// Pipeline stage names, in execution order.
const (
	StagePrepare  = "prepare"
	StageTransfer = "transfer"
	StageEnrich   = "enrich"
	StagePersist  = "persist"
)
