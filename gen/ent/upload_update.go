// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/enrichedrecord"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/predicate"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/processingjob"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

// UploadUpdate is the builder for updating Upload entities.
type UploadUpdate struct {
	config
	hooks    []Hook
	mutation *UploadMutation
}

// Where appends a list predicates to the UploadUpdate builder.
func (_u *UploadUpdate) Where(ps ...predicate.Upload) *UploadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *UploadUpdate) SetOwnerID(v string) *UploadUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableOwnerID(v *string) *UploadUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *UploadUpdate) SetFilename(v string) *UploadUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableFilename(v *string) *UploadUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *UploadUpdate) SetFileExt(v string) *UploadUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableFileExt(v *string) *UploadUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *UploadUpdate) SetFileSize(v int) *UploadUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableFileSize(v *int) *UploadUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *UploadUpdate) AddFileSize(v int) *UploadUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *UploadUpdate) SetRowCount(v int) *UploadUpdate {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableRowCount(v *int) *UploadUpdate {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *UploadUpdate) AddRowCount(v int) *UploadUpdate {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetRows sets the "rows" field.
func (_u *UploadUpdate) SetRows(v []map[string]string) *UploadUpdate {
	_u.mutation.SetRows(v)
	return _u
}

// AppendRows appends value to the "rows" field.
func (_u *UploadUpdate) AppendRows(v []map[string]string) *UploadUpdate {
	_u.mutation.AppendRows(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *UploadUpdate) SetContentHash(v []byte) *UploadUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *UploadUpdate) SetProcessingStatus(v string) *UploadUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableProcessingStatus(v *string) *UploadUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *UploadUpdate) SetUploadedAt(v time.Time) *UploadUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableUploadedAt(v *time.Time) *UploadUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *UploadUpdate) SetProcessedAt(v time.Time) *UploadUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableProcessedAt(v *time.Time) *UploadUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *UploadUpdate) ClearProcessedAt() *UploadUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UploadUpdate) SetErrorMessage(v string) *UploadUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UploadUpdate) SetNillableErrorMessage(v *string) *UploadUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UploadUpdate) ClearErrorMessage() *UploadUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *UploadUpdate) AddJobIDs(ids ...uuid.UUID) *UploadUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *UploadUpdate) AddJobs(v ...*ProcessingJob) *UploadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddRecordIDs adds the "records" edge to the EnrichedRecord entity by IDs.
func (_u *UploadUpdate) AddRecordIDs(ids ...uuid.UUID) *UploadUpdate {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the EnrichedRecord entity.
func (_u *UploadUpdate) AddRecords(v ...*EnrichedRecord) *UploadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the UploadMutation object of the builder.
func (_u *UploadUpdate) Mutation() *UploadMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *UploadUpdate) ClearJobs() *UploadUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *UploadUpdate) RemoveJobIDs(ids ...uuid.UUID) *UploadUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *UploadUpdate) RemoveJobs(v ...*ProcessingJob) *UploadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearRecords clears all "records" edges to the EnrichedRecord entity.
func (_u *UploadUpdate) ClearRecords() *UploadUpdate {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to EnrichedRecord entities by IDs.
func (_u *UploadUpdate) RemoveRecordIDs(ids ...uuid.UUID) *UploadUpdate {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to EnrichedRecord entities.
func (_u *UploadUpdate) RemoveRecords(v ...*EnrichedRecord) *UploadUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := upload.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Upload.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := upload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Upload.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := upload.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Upload.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := upload.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Upload.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowCount(); ok {
		if err := upload.RowCountValidator(v); err != nil {
			return &ValidationError{Name: "row_count", err: fmt.Errorf(`ent: validator failed for field "Upload.row_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := upload.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Upload.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := upload.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Upload.processing_status": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upload.Table, upload.Columns, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(upload.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(upload.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(upload.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(upload.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(upload.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(upload.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(upload.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(upload.FieldRows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, upload.FieldRows, value)
		})
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(upload.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(upload.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(upload.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(upload.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(upload.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(upload.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(upload.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.JobsTable,
			Columns: []string{upload.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.JobsTable,
			Columns: []string{upload.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.JobsTable,
			Columns: []string{upload.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.RecordsTable,
			Columns: []string{upload.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichedrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.RecordsTable,
			Columns: []string{upload.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichedrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.RecordsTable,
			Columns: []string{upload.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichedrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadUpdateOne is the builder for updating a single Upload entity.
type UploadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *UploadUpdateOne) SetOwnerID(v string) *UploadUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableOwnerID(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *UploadUpdateOne) SetFilename(v string) *UploadUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableFilename(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *UploadUpdateOne) SetFileExt(v string) *UploadUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableFileExt(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *UploadUpdateOne) SetFileSize(v int) *UploadUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableFileSize(v *int) *UploadUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *UploadUpdateOne) AddFileSize(v int) *UploadUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetRowCount sets the "row_count" field.
func (_u *UploadUpdateOne) SetRowCount(v int) *UploadUpdateOne {
	_u.mutation.ResetRowCount()
	_u.mutation.SetRowCount(v)
	return _u
}

// SetNillableRowCount sets the "row_count" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableRowCount(v *int) *UploadUpdateOne {
	if v != nil {
		_u.SetRowCount(*v)
	}
	return _u
}

// AddRowCount adds value to the "row_count" field.
func (_u *UploadUpdateOne) AddRowCount(v int) *UploadUpdateOne {
	_u.mutation.AddRowCount(v)
	return _u
}

// SetRows sets the "rows" field.
func (_u *UploadUpdateOne) SetRows(v []map[string]string) *UploadUpdateOne {
	_u.mutation.SetRows(v)
	return _u
}

// AppendRows appends value to the "rows" field.
func (_u *UploadUpdateOne) AppendRows(v []map[string]string) *UploadUpdateOne {
	_u.mutation.AppendRows(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *UploadUpdateOne) SetContentHash(v []byte) *UploadUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *UploadUpdateOne) SetProcessingStatus(v string) *UploadUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableProcessingStatus(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *UploadUpdateOne) SetUploadedAt(v time.Time) *UploadUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableUploadedAt(v *time.Time) *UploadUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *UploadUpdateOne) SetProcessedAt(v time.Time) *UploadUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableProcessedAt(v *time.Time) *UploadUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *UploadUpdateOne) ClearProcessedAt() *UploadUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *UploadUpdateOne) SetErrorMessage(v string) *UploadUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *UploadUpdateOne) SetNillableErrorMessage(v *string) *UploadUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *UploadUpdateOne) ClearErrorMessage() *UploadUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_u *UploadUpdateOne) AddJobIDs(ids ...uuid.UUID) *UploadUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_u *UploadUpdateOne) AddJobs(v ...*ProcessingJob) *UploadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddRecordIDs adds the "records" edge to the EnrichedRecord entity by IDs.
func (_u *UploadUpdateOne) AddRecordIDs(ids ...uuid.UUID) *UploadUpdateOne {
	_u.mutation.AddRecordIDs(ids...)
	return _u
}

// AddRecords adds the "records" edges to the EnrichedRecord entity.
func (_u *UploadUpdateOne) AddRecords(v ...*EnrichedRecord) *UploadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordIDs(ids...)
}

// Mutation returns the UploadMutation object of the builder.
func (_u *UploadUpdateOne) Mutation() *UploadMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ProcessingJob entity.
func (_u *UploadUpdateOne) ClearJobs() *UploadUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ProcessingJob entities by IDs.
func (_u *UploadUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *UploadUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ProcessingJob entities.
func (_u *UploadUpdateOne) RemoveJobs(v ...*ProcessingJob) *UploadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearRecords clears all "records" edges to the EnrichedRecord entity.
func (_u *UploadUpdateOne) ClearRecords() *UploadUpdateOne {
	_u.mutation.ClearRecords()
	return _u
}

// RemoveRecordIDs removes the "records" edge to EnrichedRecord entities by IDs.
func (_u *UploadUpdateOne) RemoveRecordIDs(ids ...uuid.UUID) *UploadUpdateOne {
	_u.mutation.RemoveRecordIDs(ids...)
	return _u
}

// RemoveRecords removes "records" edges to EnrichedRecord entities.
func (_u *UploadUpdateOne) RemoveRecords(v ...*EnrichedRecord) *UploadUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordIDs(ids...)
}

// Where appends a list predicates to the UploadUpdate builder.
func (_u *UploadUpdateOne) Where(ps ...predicate.Upload) *UploadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadUpdateOne) Select(field string, fields ...string) *UploadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Upload entity.
func (_u *UploadUpdateOne) Save(ctx context.Context) (*Upload, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadUpdateOne) SaveX(ctx context.Context) *Upload {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := upload.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Upload.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := upload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Upload.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := upload.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Upload.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := upload.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Upload.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RowCount(); ok {
		if err := upload.RowCountValidator(v); err != nil {
			return &ValidationError{Name: "row_count", err: fmt.Errorf(`ent: validator failed for field "Upload.row_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := upload.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Upload.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := upload.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Upload.processing_status": %w`, err)}
		}
	}
	return nil
}

func (_u *UploadUpdateOne) sqlSave(ctx context.Context) (_node *Upload, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(upload.Table, upload.Columns, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Upload.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, upload.FieldID)
		for _, f := range fields {
			if !upload.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != upload.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(upload.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(upload.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(upload.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(upload.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(upload.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RowCount(); ok {
		_spec.SetField(upload.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowCount(); ok {
		_spec.AddField(upload.FieldRowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rows(); ok {
		_spec.SetField(upload.FieldRows, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRows(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, upload.FieldRows, value)
		})
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(upload.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(upload.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(upload.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(upload.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(upload.FieldProcessedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(upload.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(upload.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.JobsTable,
			Columns: []string{upload.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.JobsTable,
			Columns: []string{upload.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.JobsTable,
			Columns: []string{upload.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.RecordsTable,
			Columns: []string{upload.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichedrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordsIDs(); len(nodes) > 0 && !_u.mutation.RecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.RecordsTable,
			Columns: []string{upload.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichedrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   upload.RecordsTable,
			Columns: []string{upload.RecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichedrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Upload{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{upload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
