// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/enrichedrecord"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/predicate"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

// EnrichedRecordUpdate is the builder for updating EnrichedRecord entities.
type EnrichedRecordUpdate struct {
	config
	hooks    []Hook
	mutation *EnrichedRecordMutation
}

// Where appends a list predicates to the EnrichedRecordUpdate builder.
func (_u *EnrichedRecordUpdate) Where(ps ...predicate.EnrichedRecord) *EnrichedRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUploadID sets the "upload_id" field.
func (_u *EnrichedRecordUpdate) SetUploadID(v uuid.UUID) *EnrichedRecordUpdate {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *EnrichedRecordUpdate) SetNillableUploadID(v *uuid.UUID) *EnrichedRecordUpdate {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *EnrichedRecordUpdate) SetOwnerID(v string) *EnrichedRecordUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *EnrichedRecordUpdate) SetNillableOwnerID(v *string) *EnrichedRecordUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *EnrichedRecordUpdate) SetCompanyName(v string) *EnrichedRecordUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *EnrichedRecordUpdate) SetNillableCompanyName(v *string) *EnrichedRecordUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *EnrichedRecordUpdate) SetWebsite(v string) *EnrichedRecordUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *EnrichedRecordUpdate) SetNillableWebsite(v *string) *EnrichedRecordUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *EnrichedRecordUpdate) ClearWebsite() *EnrichedRecordUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetCountry sets the "country" field.
func (_u *EnrichedRecordUpdate) SetCountry(v string) *EnrichedRecordUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *EnrichedRecordUpdate) SetNillableCountry(v *string) *EnrichedRecordUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *EnrichedRecordUpdate) ClearCountry() *EnrichedRecordUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetCity sets the "city" field.
func (_u *EnrichedRecordUpdate) SetCity(v string) *EnrichedRecordUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *EnrichedRecordUpdate) SetNillableCity(v *string) *EnrichedRecordUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *EnrichedRecordUpdate) ClearCity() *EnrichedRecordUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetSize sets the "size" field.
func (_u *EnrichedRecordUpdate) SetSize(v string) *EnrichedRecordUpdate {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *EnrichedRecordUpdate) SetNillableSize(v *string) *EnrichedRecordUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// ClearSize clears the value of the "size" field.
func (_u *EnrichedRecordUpdate) ClearSize() *EnrichedRecordUpdate {
	_u.mutation.ClearSize()
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *EnrichedRecordUpdate) SetIndustry(v string) *EnrichedRecordUpdate {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *EnrichedRecordUpdate) SetNillableIndustry(v *string) *EnrichedRecordUpdate {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *EnrichedRecordUpdate) ClearIndustry() *EnrichedRecordUpdate {
	_u.mutation.ClearIndustry()
	return _u
}

// SetRevenue sets the "revenue" field.
func (_u *EnrichedRecordUpdate) SetRevenue(v string) *EnrichedRecordUpdate {
	_u.mutation.SetRevenue(v)
	return _u
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_u *EnrichedRecordUpdate) SetNillableRevenue(v *string) *EnrichedRecordUpdate {
	if v != nil {
		_u.SetRevenue(*v)
	}
	return _u
}

// ClearRevenue clears the value of the "revenue" field.
func (_u *EnrichedRecordUpdate) ClearRevenue() *EnrichedRecordUpdate {
	_u.mutation.ClearRevenue()
	return _u
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (_u *EnrichedRecordUpdate) SetEnrichmentStatus(v string) *EnrichedRecordUpdate {
	_u.mutation.SetEnrichmentStatus(v)
	return _u
}

// SetNillableEnrichmentStatus sets the "enrichment_status" field if the given value is not nil.
func (_u *EnrichedRecordUpdate) SetNillableEnrichmentStatus(v *string) *EnrichedRecordUpdate {
	if v != nil {
		_u.SetEnrichmentStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EnrichedRecordUpdate) SetCreatedAt(v time.Time) *EnrichedRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EnrichedRecordUpdate) SetNillableCreatedAt(v *time.Time) *EnrichedRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_u *EnrichedRecordUpdate) SetUpload(v *Upload) *EnrichedRecordUpdate {
	return _u.SetUploadID(v.ID)
}

// Mutation returns the EnrichedRecordMutation object of the builder.
func (_u *EnrichedRecordUpdate) Mutation() *EnrichedRecordMutation {
	return _u.mutation
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (_u *EnrichedRecordUpdate) ClearUpload() *EnrichedRecordUpdate {
	_u.mutation.ClearUpload()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnrichedRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrichedRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnrichedRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrichedRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrichedRecordUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := enrichedrecord.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "EnrichedRecord.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := enrichedrecord.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "EnrichedRecord.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnrichmentStatus(); ok {
		if err := enrichedrecord.EnrichmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "enrichment_status", err: fmt.Errorf(`ent: validator failed for field "EnrichedRecord.enrichment_status": %w`, err)}
		}
	}
	if _u.mutation.UploadCleared() && len(_u.mutation.UploadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EnrichedRecord.upload"`)
	}
	return nil
}

func (_u *EnrichedRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrichedrecord.Table, enrichedrecord.Columns, sqlgraph.NewFieldSpec(enrichedrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(enrichedrecord.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(enrichedrecord.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(enrichedrecord.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(enrichedrecord.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(enrichedrecord.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(enrichedrecord.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(enrichedrecord.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(enrichedrecord.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(enrichedrecord.FieldSize, field.TypeString, value)
	}
	if _u.mutation.SizeCleared() {
		_spec.ClearField(enrichedrecord.FieldSize, field.TypeString)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(enrichedrecord.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(enrichedrecord.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Revenue(); ok {
		_spec.SetField(enrichedrecord.FieldRevenue, field.TypeString, value)
	}
	if _u.mutation.RevenueCleared() {
		_spec.ClearField(enrichedrecord.FieldRevenue, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichmentStatus(); ok {
		_spec.SetField(enrichedrecord.FieldEnrichmentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(enrichedrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.UploadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrichedrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnrichedRecordUpdateOne is the builder for updating a single EnrichedRecord entity.
type EnrichedRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnrichedRecordMutation
}

// SetUploadID sets the "upload_id" field.
func (_u *EnrichedRecordUpdateOne) SetUploadID(v uuid.UUID) *EnrichedRecordUpdateOne {
	_u.mutation.SetUploadID(v)
	return _u
}

// SetNillableUploadID sets the "upload_id" field if the given value is not nil.
func (_u *EnrichedRecordUpdateOne) SetNillableUploadID(v *uuid.UUID) *EnrichedRecordUpdateOne {
	if v != nil {
		_u.SetUploadID(*v)
	}
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *EnrichedRecordUpdateOne) SetOwnerID(v string) *EnrichedRecordUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *EnrichedRecordUpdateOne) SetNillableOwnerID(v *string) *EnrichedRecordUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *EnrichedRecordUpdateOne) SetCompanyName(v string) *EnrichedRecordUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *EnrichedRecordUpdateOne) SetNillableCompanyName(v *string) *EnrichedRecordUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetWebsite sets the "website" field.
func (_u *EnrichedRecordUpdateOne) SetWebsite(v string) *EnrichedRecordUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *EnrichedRecordUpdateOne) SetNillableWebsite(v *string) *EnrichedRecordUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *EnrichedRecordUpdateOne) ClearWebsite() *EnrichedRecordUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetCountry sets the "country" field.
func (_u *EnrichedRecordUpdateOne) SetCountry(v string) *EnrichedRecordUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *EnrichedRecordUpdateOne) SetNillableCountry(v *string) *EnrichedRecordUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *EnrichedRecordUpdateOne) ClearCountry() *EnrichedRecordUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetCity sets the "city" field.
func (_u *EnrichedRecordUpdateOne) SetCity(v string) *EnrichedRecordUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *EnrichedRecordUpdateOne) SetNillableCity(v *string) *EnrichedRecordUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *EnrichedRecordUpdateOne) ClearCity() *EnrichedRecordUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetSize sets the "size" field.
func (_u *EnrichedRecordUpdateOne) SetSize(v string) *EnrichedRecordUpdateOne {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *EnrichedRecordUpdateOne) SetNillableSize(v *string) *EnrichedRecordUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// ClearSize clears the value of the "size" field.
func (_u *EnrichedRecordUpdateOne) ClearSize() *EnrichedRecordUpdateOne {
	_u.mutation.ClearSize()
	return _u
}

// SetIndustry sets the "industry" field.
func (_u *EnrichedRecordUpdateOne) SetIndustry(v string) *EnrichedRecordUpdateOne {
	_u.mutation.SetIndustry(v)
	return _u
}

// SetNillableIndustry sets the "industry" field if the given value is not nil.
func (_u *EnrichedRecordUpdateOne) SetNillableIndustry(v *string) *EnrichedRecordUpdateOne {
	if v != nil {
		_u.SetIndustry(*v)
	}
	return _u
}

// ClearIndustry clears the value of the "industry" field.
func (_u *EnrichedRecordUpdateOne) ClearIndustry() *EnrichedRecordUpdateOne {
	_u.mutation.ClearIndustry()
	return _u
}

// SetRevenue sets the "revenue" field.
func (_u *EnrichedRecordUpdateOne) SetRevenue(v string) *EnrichedRecordUpdateOne {
	_u.mutation.SetRevenue(v)
	return _u
}

// SetNillableRevenue sets the "revenue" field if the given value is not nil.
func (_u *EnrichedRecordUpdateOne) SetNillableRevenue(v *string) *EnrichedRecordUpdateOne {
	if v != nil {
		_u.SetRevenue(*v)
	}
	return _u
}

// ClearRevenue clears the value of the "revenue" field.
func (_u *EnrichedRecordUpdateOne) ClearRevenue() *EnrichedRecordUpdateOne {
	_u.mutation.ClearRevenue()
	return _u
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (_u *EnrichedRecordUpdateOne) SetEnrichmentStatus(v string) *EnrichedRecordUpdateOne {
	_u.mutation.SetEnrichmentStatus(v)
	return _u
}

// SetNillableEnrichmentStatus sets the "enrichment_status" field if the given value is not nil.
func (_u *EnrichedRecordUpdateOne) SetNillableEnrichmentStatus(v *string) *EnrichedRecordUpdateOne {
	if v != nil {
		_u.SetEnrichmentStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EnrichedRecordUpdateOne) SetCreatedAt(v time.Time) *EnrichedRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EnrichedRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *EnrichedRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpload sets the "upload" edge to the Upload entity.
func (_u *EnrichedRecordUpdateOne) SetUpload(v *Upload) *EnrichedRecordUpdateOne {
	return _u.SetUploadID(v.ID)
}

// Mutation returns the EnrichedRecordMutation object of the builder.
func (_u *EnrichedRecordUpdateOne) Mutation() *EnrichedRecordMutation {
	return _u.mutation
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (_u *EnrichedRecordUpdateOne) ClearUpload() *EnrichedRecordUpdateOne {
	_u.mutation.ClearUpload()
	return _u
}

// Where appends a list predicates to the EnrichedRecordUpdate builder.
func (_u *EnrichedRecordUpdateOne) Where(ps ...predicate.EnrichedRecord) *EnrichedRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnrichedRecordUpdateOne) Select(field string, fields ...string) *EnrichedRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnrichedRecord entity.
func (_u *EnrichedRecordUpdateOne) Save(ctx context.Context) (*EnrichedRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrichedRecordUpdateOne) SaveX(ctx context.Context) *EnrichedRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnrichedRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrichedRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrichedRecordUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := enrichedrecord.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "EnrichedRecord.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompanyName(); ok {
		if err := enrichedrecord.CompanyNameValidator(v); err != nil {
			return &ValidationError{Name: "company_name", err: fmt.Errorf(`ent: validator failed for field "EnrichedRecord.company_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EnrichmentStatus(); ok {
		if err := enrichedrecord.EnrichmentStatusValidator(v); err != nil {
			return &ValidationError{Name: "enrichment_status", err: fmt.Errorf(`ent: validator failed for field "EnrichedRecord.enrichment_status": %w`, err)}
		}
	}
	if _u.mutation.UploadCleared() && len(_u.mutation.UploadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EnrichedRecord.upload"`)
	}
	return nil
}

func (_u *EnrichedRecordUpdateOne) sqlSave(ctx context.Context) (_node *EnrichedRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrichedrecord.Table, enrichedrecord.Columns, sqlgraph.NewFieldSpec(enrichedrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnrichedRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrichedrecord.FieldID)
		for _, f := range fields {
			if !enrichedrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enrichedrecord.FieldID {
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
		_spec.SetField(enrichedrecord.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(enrichedrecord.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(enrichedrecord.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(enrichedrecord.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(enrichedrecord.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(enrichedrecord.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(enrichedrecord.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(enrichedrecord.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(enrichedrecord.FieldSize, field.TypeString, value)
	}
	if _u.mutation.SizeCleared() {
		_spec.ClearField(enrichedrecord.FieldSize, field.TypeString)
	}
	if value, ok := _u.mutation.Industry(); ok {
		_spec.SetField(enrichedrecord.FieldIndustry, field.TypeString, value)
	}
	if _u.mutation.IndustryCleared() {
		_spec.ClearField(enrichedrecord.FieldIndustry, field.TypeString)
	}
	if value, ok := _u.mutation.Revenue(); ok {
		_spec.SetField(enrichedrecord.FieldRevenue, field.TypeString, value)
	}
	if _u.mutation.RevenueCleared() {
		_spec.ClearField(enrichedrecord.FieldRevenue, field.TypeString)
	}
	if value, ok := _u.mutation.EnrichmentStatus(); ok {
		_spec.SetField(enrichedrecord.FieldEnrichmentStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(enrichedrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.UploadCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UploadIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EnrichedRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrichedrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
