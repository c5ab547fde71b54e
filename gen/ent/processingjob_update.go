// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/predicate"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/processingjob"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

// ProcessingJobUpdate is the builder for updating ProcessingJob entities.
type ProcessingJobUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdate) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *ProcessingJobUpdate) SetUploadID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableUploadID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ProcessingJobUpdate) SetOwnerID(v string) *ProcessingJobUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableOwnerID(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetJobStatus sets the "job_status" field.
func (_u *ProcessingJobUpdate) SetJobStatus(v string) *ProcessingJobUpdate {
	_u.mutation.SetJobStatus(v)
	return _u
}

// SetNillableJobStatus sets the "job_status" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableJobStatus(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetJobStatus(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *ProcessingJobUpdate) SetScheduledAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableScheduledAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdate) SetStartedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessingJobUpdate) ClearStartedAt() *ProcessingJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingJobUpdate) SetCompletedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableCompletedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingJobUpdate) ClearCompletedAt() *ProcessingJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ProcessingJobUpdate) SetRetryCount(v int) *ProcessingJobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableRetryCount(v *int) *ProcessingJobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ProcessingJobUpdate) AddRetryCount(v int) *ProcessingJobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *ProcessingJobUpdate) SetMaxRetries(v int) *ProcessingJobUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableMaxRetries(v *int) *ProcessingJobUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *ProcessingJobUpdate) AddMaxRetries(v int) *ProcessingJobUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ProcessingJobUpdate) SetProgress(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.SetProgress(v)
	return _u
}

// AppendProgress appends value to the "progress" field.
func (_u *ProcessingJobUpdate) AppendProgress(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.AppendProgress(v)
	return _u
}

// ClearProgress clears the value of the "progress" field.
func (_u *ProcessingJobUpdate) ClearProgress() *ProcessingJobUpdate {
	_u.mutation.ClearProgress()
	return _u
}

// SetProgressUpdatedAt sets the "progress_updated_at" field.
func (_u *ProcessingJobUpdate) SetProgressUpdatedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetProgressUpdatedAt(v)
	return _u
}

// SetNillableProgressUpdatedAt sets the "progress_updated_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableProgressUpdatedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetProgressUpdatedAt(*v)
	}
	return _u
}

// ClearProgressUpdatedAt clears the value of the "progress_updated_at" field.
func (_u *ProcessingJobUpdate) ClearProgressUpdatedAt() *ProcessingJobUpdate {
	_u.mutation.ClearProgressUpdatedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingJobUpdate) SetErrorMessage(v string) *ProcessingJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableErrorMessage(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingJobUpdate) ClearErrorMessage() *ProcessingJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ProcessingJobUpdate) SetErrorKind(v string) *ProcessingJobUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableErrorKind(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ProcessingJobUpdate) ClearErrorKind() *ProcessingJobUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_u *ProcessingJobUpdate) SetUpload(v *Upload) *ProcessingJobUpdate {
	return _u.SetUploadID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdate) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (_u *ProcessingJobUpdate) ClearUpload() *ProcessingJobUpdate {
	_u.mutation.ClearUpload()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := processingjob.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobStatus(); ok {
		if err := processingjob.JobStatusValidator(v); err != nil {
			return &ValidationError{Name: "job_status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.job_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := processingjob.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := processingjob.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.max_retries": %w`, err)}
		}
	}
	if _u.mutation.UploadCleared() && len(_u.mutation.UploadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingJob.upload"`)
	}
	return nil
}

func (_u *ProcessingJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(processingjob.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobStatus(); ok {
		_spec.SetField(processingjob.FieldJobStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(processingjob.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(processingjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(processingjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(processingjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(processingjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(processingjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(processingjob.FieldProgress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProgress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldProgress, value)
		})
	}
	if _u.mutation.ProgressCleared() {
		_spec.ClearField(processingjob.FieldProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressUpdatedAt(); ok {
		_spec.SetField(processingjob.FieldProgressUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProgressUpdatedAtCleared() {
		_spec.ClearField(processingjob.FieldProgressUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(processingjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(processingjob.FieldErrorKind, field.TypeString)
	}
	if _u.mutation.UploadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.UploadTable,
			Columns: []string{processingjob.UploadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.UploadTable,
			Columns: []string{processingjob.UploadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingJobUpdateOne is the builder for updating a single ProcessingJob entity.
type ProcessingJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// SetUploadID sets the "upload_id" field.
func (_u *ProcessingJobUpdateOne) SetUploadID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableUploadID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ProcessingJobUpdateOne) SetOwnerID(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableOwnerID(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetJobStatus sets the "job_status" field.
func (_u *ProcessingJobUpdateOne) SetJobStatus(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetJobStatus(v)
	return _u
}

// SetNillableJobStatus sets the "job_status" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableJobStatus(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetJobStatus(*v)
	}
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *ProcessingJobUpdateOne) SetScheduledAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableScheduledAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdateOne) SetStartedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ProcessingJobUpdateOne) ClearStartedAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingJobUpdateOne) SetCompletedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingJobUpdateOne) ClearCompletedAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *ProcessingJobUpdateOne) SetRetryCount(v int) *ProcessingJobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableRetryCount(v *int) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *ProcessingJobUpdateOne) AddRetryCount(v int) *ProcessingJobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *ProcessingJobUpdateOne) SetMaxRetries(v int) *ProcessingJobUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableMaxRetries(v *int) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *ProcessingJobUpdateOne) AddMaxRetries(v int) *ProcessingJobUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ProcessingJobUpdateOne) SetProgress(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.SetProgress(v)
	return _u
}

// AppendProgress appends value to the "progress" field.
func (_u *ProcessingJobUpdateOne) AppendProgress(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.AppendProgress(v)
	return _u
}

// ClearProgress clears the value of the "progress" field.
func (_u *ProcessingJobUpdateOne) ClearProgress() *ProcessingJobUpdateOne {
	_u.mutation.ClearProgress()
	return _u
}

// SetProgressUpdatedAt sets the "progress_updated_at" field.
func (_u *ProcessingJobUpdateOne) SetProgressUpdatedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetProgressUpdatedAt(v)
	return _u
}

// SetNillableProgressUpdatedAt sets the "progress_updated_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableProgressUpdatedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetProgressUpdatedAt(*v)
	}
	return _u
}

// ClearProgressUpdatedAt clears the value of the "progress_updated_at" field.
func (_u *ProcessingJobUpdateOne) ClearProgressUpdatedAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearProgressUpdatedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingJobUpdateOne) SetErrorMessage(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableErrorMessage(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingJobUpdateOne) ClearErrorMessage() *ProcessingJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ProcessingJobUpdateOne) SetErrorKind(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableErrorKind(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ProcessingJobUpdateOne) ClearErrorKind() *ProcessingJobUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_u *ProcessingJobUpdateOne) SetUpload(v *Upload) *ProcessingJobUpdateOne {
	return _u.SetUploadID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdateOne) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (_u *ProcessingJobUpdateOne) ClearUpload() *ProcessingJobUpdateOne {
	_u.mutation.ClearUpload()
	return _u
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdateOne) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingJobUpdateOne) Select(field string, fields ...string) *ProcessingJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingJob entity.
func (_u *ProcessingJobUpdateOne) Save(ctx context.Context) (*ProcessingJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) SaveX(ctx context.Context) *ProcessingJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := processingjob.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JobStatus(); ok {
		if err := processingjob.JobStatusValidator(v); err != nil {
			return &ValidationError{Name: "job_status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.job_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := processingjob.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := processingjob.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.max_retries": %w`, err)}
		}
	}
	if _u.mutation.UploadCleared() && len(_u.mutation.UploadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingJob.upload"`)
	}
	return nil
}

func (_u *ProcessingJobUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingjob.FieldID)
		for _, f := range fields {
			if !processingjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingjob.FieldID {
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
		_spec.SetField(processingjob.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobStatus(); ok {
		_spec.SetField(processingjob.FieldJobStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(processingjob.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(processingjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(processingjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(processingjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(processingjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(processingjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(processingjob.FieldProgress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProgress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldProgress, value)
		})
	}
	if _u.mutation.ProgressCleared() {
		_spec.ClearField(processingjob.FieldProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProgressUpdatedAt(); ok {
		_spec.SetField(processingjob.FieldProgressUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProgressUpdatedAtCleared() {
		_spec.ClearField(processingjob.FieldProgressUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(processingjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(processingjob.FieldErrorKind, field.TypeString)
	}
	if _u.mutation.UploadCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.UploadTable,
			Columns: []string{processingjob.UploadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.UploadTable,
			Columns: []string{processingjob.UploadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessingJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
