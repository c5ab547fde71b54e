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
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

// EnrichedRecordCreate is the builder for creating a EnrichedRecord entity.
type EnrichedRecordCreate struct {
	config
	mutation *EnrichedRecordMutation
	hooks    []Hook
}

// SetUploadID sets the "upload_id" field.
func (_c *EnrichedRecordCreate) SetUploadID(v uuid.UUID) *EnrichedRecordCreate {
	_c.mutation.SetUploadID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *EnrichedRecordCreate) SetOwnerID(v string) *EnrichedRecordCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *EnrichedRecordCreate) SetCompanyName(v string) *EnrichedRecordCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetWebsite sets the "website" field.
func (_c *EnrichedRecordCreate) SetWebsite(v string) *EnrichedRecordCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *EnrichedRecordCreate) SetNillableWebsite(v *string) *EnrichedRecordCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *EnrichedRecordCreate) SetCountry(v string) *EnrichedRecordCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *EnrichedRecordCreate) SetNillableCountry(v *string) *EnrichedRecordCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *EnrichedRecordCreate) SetCity(v string) *EnrichedRecordCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *EnrichedRecordCreate) SetNillableCity(v *string) *EnrichedRecordCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetSize sets the "size" field.
func (_c *EnrichedRecordCreate) SetSize(v string) *EnrichedRecordCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_c *EnrichedRecordCreate) SetNillableSize(v *string) *EnrichedRecordCreate {
	if v != nil {
		_c.SetSize(*v)
	}
	return _c
}

// SetIndustry sets the "industry" field.
func (_c *EnrichedRecordCreate) SetIndustry(v string) *EnrichedRecordCreate {
	_c.mutation.SetIndustry(v)
	return _c
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_c *EnrichedRecordCreate) SetNillableIndustry(v *string) *EnrichedRecordCreate {
	if v != nil {
		_c.SetIndustry(*v)
	}
	return _c
}

// SetRevenue sets the "revenue" field.
func (_c *EnrichedRecordCreate) SetRevenue(v string) *EnrichedRecordCreate {
	_c.mutation.SetRevenue(v)
	return _c
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_c *EnrichedRecordCreate) SetNillableRevenue(v *string) *EnrichedRecordCreate {
	if v != nil {
		_c.SetRevenue(*v)
	}
	return _c
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (_c *EnrichedRecordCreate) SetEnrichmentStatus(v string) *EnrichedRecordCreate {
	_c.mutation.SetEnrichmentStatus(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EnrichedRecordCreate) SetCreatedAt(v time.Time) *EnrichedRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EnrichedRecordCreate) SetNillableCreatedAt(v *time.Time) *EnrichedRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EnrichedRecordCreate) SetID(v uuid.UUID) *EnrichedRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EnrichedRecordCreate) SetNillableID(v *uuid.UUID) *EnrichedRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_c *EnrichedRecordCreate) SetUpload(v *Upload) *EnrichedRecordCreate {
	return _c.SetUploadID(v.ID)
}

// Mutation returns the EnrichedRecordMutation object of the builder.
func (_c *EnrichedRecordCreate) Mutation() *EnrichedRecordMutation {
	return _c.mutation
}

// Save creates the EnrichedRecord in the database.
func (_c *EnrichedRecordCreate) Save(ctx context.Context) (*EnrichedRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnrichedRecordCreate) SaveX(ctx context.Context) *EnrichedRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrichedRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrichedRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnrichedRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := enrichedrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := enrichedrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnrichedRecordCreate) check() error {
	if _, ok := _c.mutation.UploadID(); !ok {
		return &ValidationError{Name: "upload_id", err: errors.New(`ent: missing required field "EnrichedRecord.upload_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "EnrichedRecord.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := enrichedrecord.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "EnrichedRecord.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "EnrichedRecord.company_name"`)}
	}
	if v, ok := _c.mutation.CompanyName(); ok {
		if err := enrichedrecord.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "EnrichedRecord.company_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnrichmentStatus(); !ok {
		return &ValidationError{Name: "enrichment_status", err: errors.New(`ent: missing required field "EnrichedRecord.enrichment_status"`)}
	}
	if v, ok := _c.mutation.EnrichmentStatus(); ok {
		if err := enrichedrecord.EnrichmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "enrichment_status", err: fmt.Errorf(`ent: validator failed for field "EnrichedRecord.enrichment_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EnrichedRecord.created_at"`)}
	}
	if len(_c.mutation.UploadIDs()) == 0 {
		return &ValidationError{Name: "upload", err: errors.New(`ent: missing required edge "EnrichedRecord.upload"`)}
	}
	return nil
}

func (_c *EnrichedRecordCreate) sqlSave(ctx context.Context) (*EnrichedRecord, error) {
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

func (_c *EnrichedRecordCreate) createSpec() (*EnrichedRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &EnrichedRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(enrichedrecord.Table, sqlgraph.NewFieldSpec(enrichedrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(enrichedrecord.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(enrichedrecord.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(enrichedrecord.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(enrichedrecord.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(enrichedrecord.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(enrichedrecord.FieldSize, field.TypeString, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.Industry(); ok {
		_spec.SetField(enrichedrecord.FieldIndustry, field.TypeString, value)
		_node.Industry = value
	}
	if value, ok := _c.mutation.Revenue(); ok {
		_spec.SetField(enrichedrecord.FieldRevenue, field.TypeString, value)
		_node.Revenue = value
	}
	if value, ok := _c.mutation.EnrichmentStatus(); ok {
		_spec.SetField(enrichedrecord.FieldEnrichmentStatus, field.TypeString, value)
		_node.EnrichmentStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(enrichedrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UploadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrichedrecord.UploadTable,
			Columns: []string{enrichedrecord.UploadColumn},
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

// EnrichedRecordCreateBulk is the builder for creating many EnrichedRecord entities in bulk.
type EnrichedRecordCreateBulk struct {
	config
	err      error
	builders []*EnrichedRecordCreate
}

// Save creates the EnrichedRecord entities in the database.
func (_c *EnrichedRecordCreateBulk) Save(ctx context.Context) ([]*EnrichedRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnrichedRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnrichedRecordMutation)
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
func (_c *EnrichedRecordCreateBulk) SaveX(ctx context.Context) []*EnrichedRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrichedRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrichedRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
