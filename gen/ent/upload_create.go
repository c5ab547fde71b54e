// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/enrichedrecord"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/processingjob"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

// UploadCreate is the builder for creating a Upload entity.
type UploadCreate struct {
	config
	mutation *UploadMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *UploadCreate) SetOwnerID(v string) *UploadCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *UploadCreate) SetFilename(v string) *UploadCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *UploadCreate) SetFileExt(v string) *UploadCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *UploadCreate) SetFileSize(v int) *UploadCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetRowCount sets the "row_count" field.
func (_c *UploadCreate) SetRowCount(v int) *UploadCreate {
	_c.mutation.SetRowCount(v)
	return _c
}

// SetRows sets the "rows" field.
func (_c *UploadCreate) SetRows(v []map[string]string) *UploadCreate {
	_c.mutation.SetRows(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *UploadCreate) SetContentHash(v []byte) *UploadCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *UploadCreate) SetProcessingStatus(v string) *UploadCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *UploadCreate) SetNillableProcessingStatus(v *string) *UploadCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *UploadCreate) SetUploadedAt(v time.Time) *UploadCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *UploadCreate) SetNillableUploadedAt(v *time.Time) *UploadCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *UploadCreate) SetProcessedAt(v time.Time) *UploadCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *UploadCreate) SetNillableProcessedAt(v *time.Time) *UploadCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *UploadCreate) SetErrorMessage(v string) *UploadCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *UploadCreate) SetNillableErrorMessage(v *string) *UploadCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadCreate) SetID(v uuid.UUID) *UploadCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UploadCreate) SetNillableID(v *uuid.UUID) *UploadCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by IDs.
func (_c *UploadCreate) AddJobIDs(ids ...uuid.UUID) *UploadCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ProcessingJob entity.
func (_c *UploadCreate) AddJobs(v ...*ProcessingJob) *UploadCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// AddRecordIDs adds the "records" edge to the EnrichedRecord entity by IDs.
func (_c *UploadCreate) AddRecordIDs(ids ...uuid.UUID) *UploadCreate {
	_c.mutation.AddRecordIDs(ids...)
	return _c
}

// AddRecords adds the "records" edges to the EnrichedRecord entity.
func (_c *UploadCreate) AddRecords(v ...*EnrichedRecord) *UploadCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecordIDs(ids...)
}

// Mutation returns the UploadMutation object of the builder.
func (_c *UploadCreate) Mutation() *UploadMutation {
	return _c.mutation
}

// Save creates the Upload in the database.
func (_c *UploadCreate) Save(ctx context.Context) (*Upload, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadCreate) SaveX(ctx context.Context) *Upload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadCreate) defaults() {
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := upload.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := upload.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := upload.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Upload.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := upload.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Upload.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Upload.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := upload.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Upload.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "Upload.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := upload.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "Upload.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Upload.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := upload.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Upload.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RowCount(); !ok {
		return &ValidationError{Name: "row_count", err: errors.New(`ent: missing required field "Upload.row_count"`)}
	}
	if v, ok := _c.mutation.RowCount(); ok {
		if err := upload.RowCountValidator(v); err != nil {
			return &ValidationError{Name: "row_count", err: fmt.Errorf(`ent: validator failed for field "Upload.row_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rows(); !ok {
		return &ValidationError{Name: "rows", err: errors.New(`ent: missing required field "Upload.rows"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Upload.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := upload.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Upload.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "Upload.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := upload.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Upload.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Upload.uploaded_at"`)}
	}
	return nil
}

func (_c *UploadCreate) sqlSave(ctx context.Context) (*Upload, error) {
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

func (_c *UploadCreate) createSpec() (*Upload, *sqlgraph.CreateSpec) {
	var (
		_node = &Upload{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(upload.Table, sqlgraph.NewFieldSpec(upload.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(upload.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(upload.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(upload.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(upload.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.RowCount(); ok {
		_spec.SetField(upload.FieldRowCount, field.TypeInt, value)
		_node.RowCount = value
	}
	if value, ok := _c.mutation.Rows(); ok {
		_spec.SetField(upload.FieldRows, field.TypeJSON, value)
		_node.Rows = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(upload.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(upload.FieldProcessingStatus, field.TypeString, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(upload.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(upload.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(upload.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UploadCreateBulk is the builder for creating many Upload entities in bulk.
type UploadCreateBulk struct {
	config
	err      error
	builders []*UploadCreate
}

// Save creates the Upload entities in the database.
func (_c *UploadCreateBulk) Save(ctx context.Context) ([]*Upload, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Upload, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadMutation)
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
func (_c *UploadCreateBulk) SaveX(ctx context.Context) []*Upload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
