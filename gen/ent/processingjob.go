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
	"github.com/tomide-adesanmi/company-enricher/gen/ent/processingjob"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

// ProcessingJob is the model entity for the ProcessingJob schema.
type ProcessingJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UploadID holds the value of the "upload_id" field.
	UploadID uuid.UUID `json:"upload_id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// JobStatus holds the value of the "job_status" field.
	JobStatus string `json:"job_status,omitempty"`
	// ScheduledAt holds the value of the "scheduled_at" field.
	ScheduledAt time.Time `json:"scheduled_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// MaxRetries holds the value of the "max_retries" field.
	MaxRetries int `json:"max_retries,omitempty"`
	// Progress holds the value of the "progress" field.
	Progress json.RawMessage `json:"progress,omitempty"`
	// ProgressUpdatedAt holds the value of the "progress_updated_at" field.
	ProgressUpdatedAt *time.Time `json:"progress_updated_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *string `json:"error_kind,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcessingJobQuery when eager-loading is set.
	Edges        ProcessingJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcessingJobEdges holds the relations/edges for other nodes in the graph.
type ProcessingJobEdges struct {
	// Upload holds the value of the upload edge.
	Upload *Upload `json:"upload,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UploadOrErr returns the Upload value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProcessingJobEdges) UploadOrErr() (*Upload, error) {
	if e.Upload != nil {
		return e.Upload, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: upload.Label}
	}
	return nil, &NotLoadedError{edge: "upload"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessingJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processingjob.FieldProgress:
			values[i] = new([]byte)
		case processingjob.FieldRetryCount, processingjob.FieldMaxRetries:
			values[i] = new(sql.NullInt64)
		case processingjob.FieldOwnerID, processingjob.FieldJobStatus, processingjob.FieldErrorMessage, processingjob.FieldErrorKind:
			values[i] = new(sql.NullString)
		case processingjob.FieldScheduledAt, processingjob.FieldStartedAt, processingjob.FieldCompletedAt, processingjob.FieldProgressUpdatedAt:
			values[i] = new(sql.NullTime)
		case processingjob.FieldID, processingjob.FieldUploadID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessingJob fields.
func (_m *ProcessingJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processingjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case processingjob.FieldUploadID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field upload_id", values[i])
			} else if value != nil {
				_m.UploadID = *value
			}
		case processingjob.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case processingjob.FieldJobStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_status", values[i])
			} else if value.Valid {
				_m.JobStatus = value.String
			}
		case processingjob.FieldScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_at", values[i])
			} else if value.Valid {
				_m.ScheduledAt = value.Time
			}
		case processingjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case processingjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case processingjob.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case processingjob.FieldMaxRetries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_retries", values[i])
			} else if value.Valid {
				_m.MaxRetries = int(value.Int64)
			}
		case processingjob.FieldProgress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field progress", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Progress); err != nil {
					return fmt.Errorf("unmarshal field progress: %w", err)
				}
			}
		case processingjob.FieldProgressUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field progress_updated_at", values[i])
			} else if value.Valid {
				_m.ProgressUpdatedAt = new(time.Time)
				*_m.ProgressUpdatedAt = value.Time
			}
		case processingjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case processingjob.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessingJob.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessingJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUpload queries the "upload" edge of the ProcessingJob entity.
func (_m *ProcessingJob) QueryUpload() *UploadQuery {
	return NewProcessingJobClient(_m.config).QueryUpload(_m)
}

// Update returns a builder for updating this ProcessingJob.
// Note that you need to call ProcessingJob.Unwrap() before calling this method if this ProcessingJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessingJob) Update() *ProcessingJobUpdateOne {
	return NewProcessingJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessingJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessingJob) Unwrap() *ProcessingJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessingJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessingJob) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessingJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("upload_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UploadID))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("job_status=")
	builder.WriteString(_m.JobStatus)
	builder.WriteString(", ")
	builder.WriteString("scheduled_at=")
	builder.WriteString(_m.ScheduledAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("max_retries=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRetries))
	builder.WriteString(", ")
	builder.WriteString("progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.Progress))
	builder.WriteString(", ")
	if v := _m.ProgressUpdatedAt; v != nil {
		builder.WriteString("progress_updated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ProcessingJobs is a parsable slice of ProcessingJob.
type ProcessingJobs []*ProcessingJob
