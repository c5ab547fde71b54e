// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

// Upload is the model entity for the Upload schema.
type Upload struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// RowCount holds the value of the "row_count" field.
	RowCount int `json:"row_count,omitempty"`
	// Rows holds the value of the "rows" field.
	Rows []map[string]string `json:"rows,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus string `json:"processing_status,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UploadQuery when eager-loading is set.
	Edges        UploadEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UploadEdges holds the relations/edges for other nodes in the graph.
type UploadEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*ProcessingJob `json:"jobs,omitempty"`
	// Records holds the value of the records edge.
	Records []*EnrichedRecord `json:"records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e UploadEdges) JobsOrErr() ([]*ProcessingJob, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// RecordsOrErr returns the Records value or an error if the edge
// was not loaded in eager-loading.
func (e UploadEdges) RecordsOrErr() ([]*EnrichedRecord, error) {
	if e.loadedTypes[1] {
		return e.Records, nil
	}
	return nil, &NotLoadedError{edge: "records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Upload) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case upload.FieldRows, upload.FieldContentHash:
			values[i] = new([]byte)
		case upload.FieldFileSize, upload.FieldRowCount:
			values[i] = new(sql.NullInt64)
		case upload.FieldOwnerID, upload.FieldFilename, upload.FieldFileExt, upload.FieldProcessingStatus, upload.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case upload.FieldUploadedAt, upload.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		case upload.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Upload fields.
func (_m *Upload) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case upload.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case upload.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case upload.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case upload.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case upload.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case upload.FieldRowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field row_count", values[i])
			} else if value.Valid {
				_m.RowCount = int(value.Int64)
			}
		case upload.FieldRows:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rows", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Rows); err != nil {
					return fmt.Errorf("unmarshal field rows: %w", err)
				}
			}
		case upload.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case upload.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = value.String
			}
		case upload.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		case upload.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		case upload.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Upload.
// This includes values selected through modifiers, order, etc.
func (_m *Upload) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the Upload entity.
func (_m *Upload) QueryJobs() *ProcessingJobQuery {
	return NewUploadClient(_m.config).QueryJobs(_m)
}

// QueryRecords queries the "records" edge of the Upload entity.
func (_m *Upload) QueryRecords() *EnrichedRecordQuery {
	return NewUploadClient(_m.config).QueryRecords(_m)
}

// Update returns a builder for updating this Upload.
// Note that you need to call Upload.Unwrap() before calling this method if this Upload
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Upload) Update() *UploadUpdateOne {
	return NewUploadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Upload entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Upload) Unwrap() *Upload {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Upload is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Upload) String() string {
	var builder strings.Builder
	builder.WriteString("Upload(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("row_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RowCount))
	builder.WriteString(", ")
	builder.WriteString("rows=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rows))
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(_m.ProcessingStatus)
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Uploads is a parsable slice of Upload.
type Uploads []*Upload
