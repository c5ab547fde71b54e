// Code generated by ent, DO NOT EDIT.

package upload

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the upload type in the database.
	Label = "upload"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldFileExt holds the string denoting the file_ext field in the database.
	FieldFileExt = "file_ext"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldRowCount holds the string denoting the row_count field in the database.
	FieldRowCount = "row_count"
	// FieldRows holds the string denoting the rows field in the database.
	FieldRows = "rows"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// EdgeRecords holds the string denoting the records edge name in mutations.
	EdgeRecords = "records"
	// Table holds the table name of the upload in the database.
	Table = "uploads"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "processing_jobs"
	// JobsInverseTable is the table name for the ProcessingJob entity.
	// It exists in this package in order to avoid circular dependency with the "processingjob" package.
	JobsInverseTable = "processing_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "upload_id"
	// RecordsTable is the table that holds the records relation/edge.
	RecordsTable = "enriched_records"
	// RecordsInverseTable is the table name for the EnrichedRecord entity.
	// It exists in this package in order to avoid circular dependency with the "enrichedrecord" package.
	RecordsInverseTable = "enriched_records"
	// RecordsColumn is the table column denoting the records relation/edge.
	RecordsColumn = "upload_id"
)

// Columns holds all SQL columns for upload fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldFilename,
	FieldFileExt,
	FieldFileSize,
	FieldRowCount,
	FieldRows,
	FieldContentHash,
	FieldProcessingStatus,
	FieldUploadedAt,
	FieldProcessedAt,
	FieldErrorMessage,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	FileExtValidator func(string) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int) error
	// RowCountValidator is a validator for the "row_count" field. It is called by the builders before save.
	RowCountValidator func(int) error
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func([]byte) error
	// DefaultProcessingStatus holds the default value on creation for the "processing_status" field.
	DefaultProcessingStatus string
	// ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	ProcessingStatusValidator func(string) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Upload queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByFileExt orders the results by the file_ext field.
func ByFileExt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileExt, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByRowCount orders the results by the row_count field.
func ByRowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRowCount, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRecordsCount orders the results by records count.
func ByRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecordsStep(), opts...)
	}
}

// ByRecords orders the results by records terms.
func ByRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
func newRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecordsTable, RecordsColumn),
	)
}
