// Code generated by ent, DO NOT EDIT.

package processingjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the processingjob type in the database.
	Label = "processing_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUploadID holds the string denoting the upload_id field in the database.
	FieldUploadID = "upload_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldJobStatus holds the string denoting the job_status field in the database.
	FieldJobStatus = "job_status"
	// FieldScheduledAt holds the string denoting the scheduled_at field in the database.
	FieldScheduledAt = "scheduled_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldProgressUpdatedAt holds the string denoting the progress_updated_at field in the database.
	FieldProgressUpdatedAt = "progress_updated_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// EdgeUpload holds the string denoting the upload edge name in mutations.
	EdgeUpload = "upload"
	// Table holds the table name of the processingjob in the database.
	Table = "processing_jobs"
	// UploadTable is the table that holds the upload relation/edge.
	UploadTable = "processing_jobs"
	// UploadInverseTable is the table name for the Upload entity.
	// It exists in this package in order to avoid circular dependency with the "upload" package.
	UploadInverseTable = "uploads"
	// UploadColumn is the table column denoting the upload relation/edge.
	UploadColumn = "upload_id"
)

// Columns holds all SQL columns for processingjob fields.
var Columns = []string{
	FieldID,
	FieldUploadID,
	FieldOwnerID,
	FieldJobStatus,
	FieldScheduledAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldRetryCount,
	FieldMaxRetries,
	FieldProgress,
	FieldProgressUpdatedAt,
	FieldErrorMessage,
	FieldErrorKind,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	OwnerIDValidator func(string) error
	// DefaultJobStatus holds the default value on creation for the "job_status" field.
	DefaultJobStatus string
	// JobStatusValidator is a validator for the "job_status" field. It is called by the builders before save.
	JobStatusValidator func(string) error
	// DefaultScheduledAt holds the default value on creation for the "scheduled_at" field.
	DefaultScheduledAt func() time.Time
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	RetryCountValidator func(int) error
	// DefaultMaxRetries holds the default value on creation for the "max_retries" field.
	DefaultMaxRetries int
	// MaxRetriesValidator is a validator for the "max_retries" field. It is called by the builders before save.
	MaxRetriesValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ProcessingJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUploadID orders the results by the upload_id field.
func ByUploadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByJobStatus orders the results by the job_status field.
func ByJobStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobStatus, opts...).ToFunc()
}

// ByScheduledAt orders the results by the scheduled_at field.
func ByScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByProgressUpdatedAt orders the results by the progress_updated_at field.
func ByProgressUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressUpdatedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByUploadField orders the results by upload field.
func ByUploadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUploadStep(), sql.OrderByField(field, opts...))
	}
}
func newUploadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UploadInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UploadTable, UploadColumn),
	)
}
