// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/predicate"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/processingjob"
)

// ProcessingJobDelete is the builder for deleting a ProcessingJob entity.
type ProcessingJobDelete struct {
	config
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// Where appends a list predicates to the ProcessingJobDelete builder.
func (_d *ProcessingJobDelete) Where(ps ...predicate.ProcessingJob) *ProcessingJobDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProcessingJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessingJobDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProcessingJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(processingjob.Table, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProcessingJobDeleteOne is the builder for deleting a single ProcessingJob entity.
type ProcessingJobDeleteOne struct {
	_d *ProcessingJobDelete
}

// Where appends a list predicates to the ProcessingJobDelete builder.
func (_d *ProcessingJobDeleteOne) Where(ps ...predicate.ProcessingJob) *ProcessingJobDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProcessingJobDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{processingjob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessingJobDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
