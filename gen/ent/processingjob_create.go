// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/processingjob"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

// ProcessingJobCreate is the builder for creating a ProcessingJob entity.
type ProcessingJobCreate struct {
	config
	mutation *ProcessingJobMutation
	hooks    []Hook
}

// SetUploadID sets the "upload_id" field.
func (_c *ProcessingJobCreate) SetUploadID(v uuid.UUID) *ProcessingJobCreate {
	_c.mutation.SetUploadID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *ProcessingJobCreate) SetOwnerID(v string) *ProcessingJobCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetJobStatus sets the "job_status" field.
func (_c *ProcessingJobCreate) SetJobStatus(v string) *ProcessingJobCreate {
	_c.mutation.SetJobStatus(v)
	return _c
}

// SetNillableJobStatus sets the "job_status" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableJobStatus(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetJobStatus(*v)
	}
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *ProcessingJobCreate) SetScheduledAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableScheduledAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetScheduledAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ProcessingJobCreate) SetStartedAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableStartedAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProcessingJobCreate) SetCompletedAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableCompletedAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *ProcessingJobCreate) SetRetryCount(v int) *ProcessingJobCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableRetryCount(v *int) *ProcessingJobCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *ProcessingJobCreate) SetMaxRetries(v int) *ProcessingJobCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableMaxRetries(v *int) *ProcessingJobCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *ProcessingJobCreate) SetProgress(v json.RawMessage) *ProcessingJobCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetProgressUpdatedAt sets the "progress_updated_at" field.
func (_c *ProcessingJobCreate) SetProgressUpdatedAt(v time.Time) *ProcessingJobCreate {
	_c.mutation.SetProgressUpdatedAt(v)
	return _c
}

// SetNillableProgressUpdatedAt sets the "progress_updated_at" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableProgressUpdatedAt(v *time.Time) *ProcessingJobCreate {
	if v != nil {
		_c.SetProgressUpdatedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessingJobCreate) SetErrorMessage(v string) *ProcessingJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableErrorMessage(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *ProcessingJobCreate) SetErrorKind(v string) *ProcessingJobCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableErrorKind(v *string) *ProcessingJobCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessingJobCreate) SetID(v uuid.UUID) *ProcessingJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessingJobCreate) SetNillableID(v *uuid.UUID) *ProcessingJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_c *ProcessingJobCreate) SetUpload(v *Upload) *ProcessingJobCreate {
	return _c.SetUploadID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_c *ProcessingJobCreate) Mutation() *ProcessingJobMutation {
	return _c.mutation
}

// Save creates the ProcessingJob in the database.
func (_c *ProcessingJobCreate) Save(ctx context.Context) (*ProcessingJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingJobCreate) SaveX(ctx context.Context) *ProcessingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingJobCreate) defaults() {
	if _, ok := _c.mutation.JobStatus(); !ok {
		v := processingjob.DefaultJobStatus
		_c.mutation.SetJobStatus(v)
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		v := processingjob.DefaultScheduledAt()
		_c.mutation.SetScheduledAt(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := processingjob.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := processingjob.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processingjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingJobCreate) check() error {
	if _, ok := _c.mutation.UploadID(); !ok {
		return &ValidationError{Name: "upload_id", err: errors.New(`ent: missing required field "ProcessingJob.upload_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ProcessingJob.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := processingjob.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JobStatus(); !ok {
		return &ValidationError{Name: "job_status", err: errors.New(`ent: missing required field "ProcessingJob.job_status"`)}
	}
	if v, ok := _c.mutation.JobStatus(); ok {
		if err := processingjob.JobStatusValidator(v); err != nil {
			return &ValidationError{Name: "job_status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.job_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`ent: missing required field "ProcessingJob.scheduled_at"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "ProcessingJob.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := processingjob.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "ProcessingJob.max_retries"`)}
	}
	if v, ok := _c.mutation.MaxRetries(); ok {
		if err := processingjob.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.max_retries": %w`, err)}
		}
	}
	if len(_c.mutation.UploadIDs()) == 0 {
		return &ValidationError{Name: "upload", err: errors.New(`ent: missing required edge "ProcessingJob.upload"`)}
	}
	return nil
}

func (_c *ProcessingJobCreate) sqlSave(ctx context.Context) (*ProcessingJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessingJobCreate) createSpec() (*ProcessingJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingjob.Table, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(processingjob.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.JobStatus(); ok {
		_spec.SetField(processingjob.FieldJobStatus, field.TypeString, value)
		_node.JobStatus = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(processingjob.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(processingjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(processingjob.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(processingjob.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(processingjob.FieldProgress, field.TypeJSON, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.ProgressUpdatedAt(); ok {
		_spec.SetField(processingjob.FieldProgressUpdatedAt, field.TypeTime, value)
		_node.ProgressUpdatedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(processingjob.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if nodes := _c.mutation.UploadIDs(); len(nodes) > 0 {
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
		_node.UploadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessingJobCreateBulk is the builder for creating many ProcessingJob entities in bulk.
type ProcessingJobCreateBulk struct {
	config
	err      error
	builders []*ProcessingJobCreate
}

// Save creates the ProcessingJob entities in the database.
func (_c *ProcessingJobCreateBulk) Save(ctx context.Context) ([]*ProcessingJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProcessingJobCreateBulk) SaveX(ctx context.Context) []*ProcessingJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
