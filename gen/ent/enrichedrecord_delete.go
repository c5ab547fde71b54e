// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/enrichedrecord"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/predicate"
)

// EnrichedRecordDelete is the builder for deleting a EnrichedRecord entity.
type EnrichedRecordDelete struct {
	config
	hooks    []Hook
	mutation *EnrichedRecordMutation
}

// Where appends a list predicates to the EnrichedRecordDelete builder.
func (_d *EnrichedRecordDelete) Where(ps ...predicate.EnrichedRecord) *EnrichedRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EnrichedRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnrichedRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EnrichedRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(enrichedrecord.Table, sqlgraph.NewFieldSpec(enrichedrecord.FieldID, field.TypeUUID))
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

// EnrichedRecordDeleteOne is the builder for deleting a single EnrichedRecord entity.
type EnrichedRecordDeleteOne struct {
	_d *EnrichedRecordDelete
}

// Where appends a list predicates to the EnrichedRecordDelete builder.
func (_d *EnrichedRecordDeleteOne) Where(ps ...predicate.EnrichedRecord) *EnrichedRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EnrichedRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{enrichedrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnrichedRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
