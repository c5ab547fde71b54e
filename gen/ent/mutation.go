// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/enrichedrecord"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/predicate"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/processingjob"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEnrichedRecord = "EnrichedRecord"
	TypeProcessingJob  = "ProcessingJob"
	TypeUpload         = "Upload"
)

// EnrichedRecordMutation represents an operation that mutates the EnrichedRecord nodes in the graph.
type EnrichedRecordMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	owner_id          *string
	company_name      *string
	website           *string
	country           *string
	city              *string
	size              *string
	industry          *string
	revenue           *string
	enrichment_status *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	upload            *uuid.UUID
	clearedupload     bool
	done              bool
	oldValue          func(context.Context) (*EnrichedRecord, error)
	predicates        []predicate.EnrichedRecord
}

var _ ent.Mutation = (*EnrichedRecordMutation)(nil)

// enrichedrecordOption allows management of the mutation configuration using functional options.
type enrichedrecordOption func(*EnrichedRecordMutation)

// newEnrichedRecordMutation creates new mutation for the EnrichedRecord entity.
func newEnrichedRecordMutation(c config, op Op, opts ...enrichedrecordOption) *EnrichedRecordMutation {
	m := &EnrichedRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeEnrichedRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEnrichedRecordID sets the ID field of the mutation.
func withEnrichedRecordID(id uuid.UUID) enrichedrecordOption {
	return func(m *EnrichedRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *EnrichedRecord
		)
		m.oldValue = func(ctx context.Context) (*EnrichedRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EnrichedRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEnrichedRecord sets the old EnrichedRecord of the mutation.
func withEnrichedRecord(node *EnrichedRecord) enrichedrecordOption {
	return func(m *EnrichedRecordMutation) {
		m.oldValue = func(context.Context) (*EnrichedRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EnrichedRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EnrichedRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EnrichedRecord entities.
func (m *EnrichedRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EnrichedRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EnrichedRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EnrichedRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUploadID sets the "upload_id" field.
func (m *EnrichedRecordMutation) SetUploadID(u uuid.UUID) {
	m.upload = &u
}

// UploadID returns the value of the "upload_id" field in the mutation.
func (m *EnrichedRecordMutation) UploadID() (r uuid.UUID, exists bool) {
	v := m.upload
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadID returns the old "upload_id" field's value of the EnrichedRecord entity.
// If the EnrichedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedRecordMutation) OldUploadID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadID: %w", err)
	}
	return oldValue.UploadID, nil
}

// ResetUploadID resets all changes to the "upload_id" field.
func (m *EnrichedRecordMutation) ResetUploadID() {
	m.upload = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *EnrichedRecordMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *EnrichedRecordMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the EnrichedRecord entity.
// If the EnrichedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedRecordMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *EnrichedRecordMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetCompanyName sets the "company_name" field.
func (m *EnrichedRecordMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *EnrichedRecordMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the EnrichedRecord entity.
// If the EnrichedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedRecordMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *EnrichedRecordMutation) ResetCompanyName() {
	m.company_name = nil
}

// SetWebsite sets the "website" field.
func (m *EnrichedRecordMutation) SetWebsite(s string) {
	m.website = &s
}

// Website returns the value of the "website" field in the mutation.
func (m *EnrichedRecordMutation) Website() (r string, exists bool) {
	v := m.website
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsite returns the old "website" field's value of the EnrichedRecord entity.
// If the EnrichedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedRecordMutation) OldWebsite(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsite: %w", err)
	}
	return oldValue.Website, nil
}

// ClearWebsite clears the value of the "website" field.
func (m *EnrichedRecordMutation) ClearWebsite() {
	m.website = nil
	m.clearedFields[enrichedrecord.FieldWebsite] = struct{}{}
}

// WebsiteCleared returns if the "website" field was cleared in this mutation.
func (m *EnrichedRecordMutation) WebsiteCleared() bool {
	_, ok := m.clearedFields[enrichedrecord.FieldWebsite]
	return ok
}

// ResetWebsite resets all changes to the "website" field.
func (m *EnrichedRecordMutation) ResetWebsite() {
	m.website = nil
	delete(m.clearedFields, enrichedrecord.FieldWebsite)
}

// SetCountry sets the "country" field.
func (m *EnrichedRecordMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *EnrichedRecordMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the EnrichedRecord entity.
// If the EnrichedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedRecordMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *EnrichedRecordMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[enrichedrecord.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *EnrichedRecordMutation) CountryCleared() bool {
	_, ok := m.clearedFields[enrichedrecord.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *EnrichedRecordMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, enrichedrecord.FieldCountry)
}

// SetCity sets the "city" field.
func (m *EnrichedRecordMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *EnrichedRecordMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the EnrichedRecord entity.
// If the EnrichedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedRecordMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *EnrichedRecordMutation) ClearCity() {
	m.city = nil
	m.clearedFields[enrichedrecord.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *EnrichedRecordMutation) CityCleared() bool {
	_, ok := m.clearedFields[enrichedrecord.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *EnrichedRecordMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, enrichedrecord.FieldCity)
}

// SetSize sets the "size" field.
func (m *EnrichedRecordMutation) SetSize(s string) {
	m.size = &s
}

// Size returns the value of the "size" field in the mutation.
func (m *EnrichedRecordMutation) Size() (r string, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the EnrichedRecord entity.
// If the EnrichedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedRecordMutation) OldSize(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// ClearSize clears the value of the "size" field.
func (m *EnrichedRecordMutation) ClearSize() {
	m.size = nil
	m.clearedFields[enrichedrecord.FieldSize] = struct{}{}
}

// SizeCleared returns if the "size" field was cleared in this mutation.
func (m *EnrichedRecordMutation) SizeCleared() bool {
	_, ok := m.clearedFields[enrichedrecord.FieldSize]
	return ok
}

// ResetSize resets all changes to the "size" field.
func (m *EnrichedRecordMutation) ResetSize() {
	m.size = nil
	delete(m.clearedFields, enrichedrecord.FieldSize)
}

// SetIndustry sets the "industry" field.
func (m *EnrichedRecordMutation) SetIndustry(s string) {
	m.industry = &s
}

// Industry returns the value of the "industry" field in the mutation.
func (m *EnrichedRecordMutation) Industry() (r string, exists bool) {
	v := m.industry
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustry returns the old "industry" field's value of the EnrichedRecord entity.
// If the EnrichedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedRecordMutation) OldIndustry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustry: %w", err)
	}
	return oldValue.Industry, nil
}

// ClearIndustry clears the value of the "industry" field.
func (m *EnrichedRecordMutation) ClearIndustry() {
	m.industry = nil
	m.clearedFields[enrichedrecord.FieldIndustry] = struct{}{}
}

// IndustryCleared returns if the "industry" field was cleared in this mutation.
func (m *EnrichedRecordMutation) IndustryCleared() bool {
	_, ok := m.clearedFields[enrichedrecord.FieldIndustry]
	return ok
}

// ResetIndustry resets all changes to the "industry" field.
func (m *EnrichedRecordMutation) ResetIndustry() {
	m.industry = nil
	delete(m.clearedFields, enrichedrecord.FieldIndustry)
}

// SetRevenue sets the "revenue" field.
func (m *EnrichedRecordMutation) SetRevenue(s string) {
	m.revenue = &s
}

// Revenue returns the value of the "revenue" field in the mutation.
func (m *EnrichedRecordMutation) Revenue() (r string, exists bool) {
	v := m.revenue
	if v == nil {
		return
	}
	return *v, true
}

// OldRevenue returns the old "revenue" field's value of the EnrichedRecord entity.
// If the EnrichedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedRecordMutation) OldRevenue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevenue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevenue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevenue: %w", err)
	}
	return oldValue.Revenue, nil
}

// ClearRevenue clears the value of the "revenue" field.
func (m *EnrichedRecordMutation) ClearRevenue() {
	m.revenue = nil
	m.clearedFields[enrichedrecord.FieldRevenue] = struct{}{}
}

// RevenueCleared returns if the "revenue" field was cleared in this mutation.
func (m *EnrichedRecordMutation) RevenueCleared() bool {
	_, ok := m.clearedFields[enrichedrecord.FieldRevenue]
	return ok
}

// ResetRevenue resets all changes to the "revenue" field.
func (m *EnrichedRecordMutation) ResetRevenue() {
	m.revenue = nil
	delete(m.clearedFields, enrichedrecord.FieldRevenue)
}

// SetEnrichmentStatus sets the "enrichment_status" field.
func (m *EnrichedRecordMutation) SetEnrichmentStatus(s string) {
	m.enrichment_status = &s
}

// EnrichmentStatus returns the value of the "enrichment_status" field in the mutation.
func (m *EnrichedRecordMutation) EnrichmentStatus() (r string, exists bool) {
	v := m.enrichment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichmentStatus returns the old "enrichment_status" field's value of the EnrichedRecord entity.
// If the EnrichedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedRecordMutation) OldEnrichmentStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichmentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichmentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichmentStatus: %w", err)
	}
	return oldValue.EnrichmentStatus, nil
}

// ResetEnrichmentStatus resets all changes to the "enrichment_status" field.
func (m *EnrichedRecordMutation) ResetEnrichmentStatus() {
	m.enrichment_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EnrichedRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EnrichedRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EnrichedRecord entity.
// If the EnrichedRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EnrichedRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EnrichedRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (m *EnrichedRecordMutation) ClearUpload() {
	m.clearedupload = true
	m.clearedFields[enrichedrecord.FieldUploadID] = struct{}{}
}

// UploadCleared reports if the "upload" edge to the Upload entity was cleared.
func (m *EnrichedRecordMutation) UploadCleared() bool {
	return m.clearedupload
}

// UploadIDs returns the "upload" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UploadID instead. It exists only for internal usage by the builders.
func (m *EnrichedRecordMutation) UploadIDs() (ids []uuid.UUID) {
	if id := m.upload; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUpload resets all changes to the "upload" edge.
func (m *EnrichedRecordMutation) ResetUpload() {
	m.upload = nil
	m.clearedupload = false
}

// Where appends a list predicates to the EnrichedRecordMutation builder.
func (m *EnrichedRecordMutation) Where(ps ...predicate.EnrichedRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EnrichedRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EnrichedRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EnrichedRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EnrichedRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EnrichedRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EnrichedRecord).
func (m *EnrichedRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EnrichedRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.upload != nil {
		fields = append(fields, enrichedrecord.FieldUploadID)
	}
	if m.owner_id != nil {
		fields = append(fields, enrichedrecord.FieldOwnerID)
	}
	if m.company_name != nil {
		fields = append(fields, enrichedrecord.FieldCompanyName)
	}
	if m.website != nil {
		fields = append(fields, enrichedrecord.FieldWebsite)
	}
	if m.country != nil {
		fields = append(fields, enrichedrecord.FieldCountry)
	}
	if m.city != nil {
		fields = append(fields, enrichedrecord.FieldCity)
	}
	if m.size != nil {
		fields = append(fields, enrichedrecord.FieldSize)
	}
	if m.industry != nil {
		fields = append(fields, enrichedrecord.FieldIndustry)
	}
	if m.revenue != nil {
		fields = append(fields, enrichedrecord.FieldRevenue)
	}
	if m.enrichment_status != nil {
		fields = append(fields, enrichedrecord.FieldEnrichmentStatus)
	}
	if m.created_at != nil {
		fields = append(fields, enrichedrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EnrichedRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case enrichedrecord.FieldUploadID:
		return m.UploadID()
	case enrichedrecord.FieldOwnerID:
		return m.OwnerID()
	case enrichedrecord.FieldCompanyName:
		return m.CompanyName()
	case enrichedrecord.FieldWebsite:
		return m.Website()
	case enrichedrecord.FieldCountry:
		return m.Country()
	case enrichedrecord.FieldCity:
		return m.City()
	case enrichedrecord.FieldSize:
		return m.Size()
	case enrichedrecord.FieldIndustry:
		return m.Industry()
	case enrichedrecord.FieldRevenue:
		return m.Revenue()
	case enrichedrecord.FieldEnrichmentStatus:
		return m.EnrichmentStatus()
	case enrichedrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EnrichedRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case enrichedrecord.FieldUploadID:
		return m.OldUploadID(ctx)
	case enrichedrecord.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case enrichedrecord.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case enrichedrecord.FieldWebsite:
		return m.OldWebsite(ctx)
	case enrichedrecord.FieldCountry:
		return m.OldCountry(ctx)
	case enrichedrecord.FieldCity:
		return m.OldCity(ctx)
	case enrichedrecord.FieldSize:
		return m.OldSize(ctx)
	case enrichedrecord.FieldIndustry:
		return m.OldIndustry(ctx)
	case enrichedrecord.FieldRevenue:
		return m.OldRevenue(ctx)
	case enrichedrecord.FieldEnrichmentStatus:
		return m.OldEnrichmentStatus(ctx)
	case enrichedrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EnrichedRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrichedRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case enrichedrecord.FieldUploadID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadID(v)
		return nil
	case enrichedrecord.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case enrichedrecord.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case enrichedrecord.FieldWebsite:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsite(v)
		return nil
	case enrichedrecord.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case enrichedrecord.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case enrichedrecord.FieldSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case enrichedrecord.FieldIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustry(v)
		return nil
	case enrichedrecord.FieldRevenue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevenue(v)
		return nil
	case enrichedrecord.FieldEnrichmentStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichmentStatus(v)
		return nil
	case enrichedrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EnrichedRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EnrichedRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EnrichedRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EnrichedRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EnrichedRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EnrichedRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(enrichedrecord.FieldWebsite) {
		fields = append(fields, enrichedrecord.FieldWebsite)
	}
	if m.FieldCleared(enrichedrecord.FieldCountry) {
		fields = append(fields, enrichedrecord.FieldCountry)
	}
	if m.FieldCleared(enrichedrecord.FieldCity) {
		fields = append(fields, enrichedrecord.FieldCity)
	}
	if m.FieldCleared(enrichedrecord.FieldSize) {
		fields = append(fields, enrichedrecord.FieldSize)
	}
	if m.FieldCleared(enrichedrecord.FieldIndustry) {
		fields = append(fields, enrichedrecord.FieldIndustry)
	}
	if m.FieldCleared(enrichedrecord.FieldRevenue) {
		fields = append(fields, enrichedrecord.FieldRevenue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EnrichedRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EnrichedRecordMutation) ClearField(name string) error {
	switch name {
	case enrichedrecord.FieldWebsite:
		m.ClearWebsite()
		return nil
	case enrichedrecord.FieldCountry:
		m.ClearCountry()
		return nil
	case enrichedrecord.FieldCity:
		m.ClearCity()
		return nil
	case enrichedrecord.FieldSize:
		m.ClearSize()
		return nil
	case enrichedrecord.FieldIndustry:
		m.ClearIndustry()
		return nil
	case enrichedrecord.FieldRevenue:
		m.ClearRevenue()
		return nil
	}
	return fmt.Errorf("unknown EnrichedRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EnrichedRecordMutation) ResetField(name string) error {
	switch name {
	case enrichedrecord.FieldUploadID:
		m.ResetUploadID()
		return nil
	case enrichedrecord.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case enrichedrecord.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case enrichedrecord.FieldWebsite:
		m.ResetWebsite()
		return nil
	case enrichedrecord.FieldCountry:
		m.ResetCountry()
		return nil
	case enrichedrecord.FieldCity:
		m.ResetCity()
		return nil
	case enrichedrecord.FieldSize:
		m.ResetSize()
		return nil
	case enrichedrecord.FieldIndustry:
		m.ResetIndustry()
		return nil
	case enrichedrecord.FieldRevenue:
		m.ResetRevenue()
		return nil
	case enrichedrecord.FieldEnrichmentStatus:
		m.ResetEnrichmentStatus()
		return nil
	case enrichedrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EnrichedRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EnrichedRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.upload != nil {
		edges = append(edges, enrichedrecord.EdgeUpload)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EnrichedRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case enrichedrecord.EdgeUpload:
		if id := m.upload; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EnrichedRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EnrichedRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EnrichedRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedupload {
		edges = append(edges, enrichedrecord.EdgeUpload)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EnrichedRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case enrichedrecord.EdgeUpload:
		return m.clearedupload
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EnrichedRecordMutation) ClearEdge(name string) error {
	switch name {
	case enrichedrecord.EdgeUpload:
		m.ClearUpload()
		return nil
	}
	return fmt.Errorf("unknown EnrichedRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EnrichedRecordMutation) ResetEdge(name string) error {
	switch name {
	case enrichedrecord.EdgeUpload:
		m.ResetUpload()
		return nil
	}
	return fmt.Errorf("unknown EnrichedRecord edge %s", name)
}

// ProcessingJobMutation represents an operation that mutates the ProcessingJob nodes in the graph.
type ProcessingJobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	owner_id            *string
	job_status          *string
	scheduled_at        *time.Time
	started_at          *time.Time
	completed_at        *time.Time
	retry_count         *int
	addretry_count      *int
	max_retries         *int
	addmax_retries      *int
	progress            *json.RawMessage
	appendprogress      json.RawMessage
	progress_updated_at *time.Time
	error_message       *string
	error_kind          *string
	clearedFields       map[string]struct{}
	upload              *uuid.UUID
	clearedupload       bool
	done                bool
	oldValue            func(context.Context) (*ProcessingJob, error)
	predicates          []predicate.ProcessingJob
}

var _ ent.Mutation = (*ProcessingJobMutation)(nil)

// processingjobOption allows management of the mutation configuration using functional options.
type processingjobOption func(*ProcessingJobMutation)

// newProcessingJobMutation creates new mutation for the ProcessingJob entity.
func newProcessingJobMutation(c config, op Op, opts ...processingjobOption) *ProcessingJobMutation {
	m := &ProcessingJobMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingJobID sets the ID field of the mutation.
func withProcessingJobID(id uuid.UUID) processingjobOption {
	return func(m *ProcessingJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingJob
		)
		m.oldValue = func(ctx context.Context) (*ProcessingJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingJob sets the old ProcessingJob of the mutation.
func withProcessingJob(node *ProcessingJob) processingjobOption {
	return func(m *ProcessingJobMutation) {
		m.oldValue = func(context.Context) (*ProcessingJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingJob entities.
func (m *ProcessingJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUploadID sets the "upload_id" field.
func (m *ProcessingJobMutation) SetUploadID(u uuid.UUID) {
	m.upload = &u
}

// UploadID returns the value of the "upload_id" field in the mutation.
func (m *ProcessingJobMutation) UploadID() (r uuid.UUID, exists bool) {
	v := m.upload
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadID returns the old "upload_id" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldUploadID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadID: %w", err)
	}
	return oldValue.UploadID, nil
}

// ResetUploadID resets all changes to the "upload_id" field.
func (m *ProcessingJobMutation) ResetUploadID() {
	m.upload = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *ProcessingJobMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ProcessingJobMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ProcessingJobMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetJobStatus sets the "job_status" field.
func (m *ProcessingJobMutation) SetJobStatus(s string) {
	m.job_status = &s
}

// JobStatus returns the value of the "job_status" field in the mutation.
func (m *ProcessingJobMutation) JobStatus() (r string, exists bool) {
	v := m.job_status
	if v == nil {
		return
	}
	return *v, true
}

// OldJobStatus returns the old "job_status" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldJobStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobStatus: %w", err)
	}
	return oldValue.JobStatus, nil
}

// ResetJobStatus resets all changes to the "job_status" field.
func (m *ProcessingJobMutation) ResetJobStatus() {
	m.job_status = nil
}

// SetScheduledAt sets the "scheduled_at" field.
func (m *ProcessingJobMutation) SetScheduledAt(t time.Time) {
	m.scheduled_at = &t
}

// ScheduledAt returns the value of the "scheduled_at" field in the mutation.
func (m *ProcessingJobMutation) ScheduledAt() (r time.Time, exists bool) {
	v := m.scheduled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledAt returns the old "scheduled_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldScheduledAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledAt: %w", err)
	}
	return oldValue.ScheduledAt, nil
}

// ResetScheduledAt resets all changes to the "scheduled_at" field.
func (m *ProcessingJobMutation) ResetScheduledAt() {
	m.scheduled_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ProcessingJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ProcessingJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ProcessingJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[processingjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ProcessingJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ProcessingJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, processingjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProcessingJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProcessingJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProcessingJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[processingjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProcessingJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProcessingJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, processingjob.FieldCompletedAt)
}

// SetRetryCount sets the "retry_count" field.
func (m *ProcessingJobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *ProcessingJobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *ProcessingJobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *ProcessingJobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *ProcessingJobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *ProcessingJobMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *ProcessingJobMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *ProcessingJobMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *ProcessingJobMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *ProcessingJobMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetProgress sets the "progress" field.
func (m *ProcessingJobMutation) SetProgress(jm json.RawMessage) {
	m.progress = &jm
	m.appendprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *ProcessingJobMutation) Progress() (r json.RawMessage, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldProgress(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AppendProgress adds jm to the "progress" field.
func (m *ProcessingJobMutation) AppendProgress(jm json.RawMessage) {
	m.appendprogress = append(m.appendprogress, jm...)
}

// AppendedProgress returns the list of values that were appended to the "progress" field in this mutation.
func (m *ProcessingJobMutation) AppendedProgress() (json.RawMessage, bool) {
	if len(m.appendprogress) == 0 {
		return nil, false
	}
	return m.appendprogress, true
}

// ClearProgress clears the value of the "progress" field.
func (m *ProcessingJobMutation) ClearProgress() {
	m.progress = nil
	m.appendprogress = nil
	m.clearedFields[processingjob.FieldProgress] = struct{}{}
}

// ProgressCleared returns if the "progress" field was cleared in this mutation.
func (m *ProcessingJobMutation) ProgressCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldProgress]
	return ok
}

// ResetProgress resets all changes to the "progress" field.
func (m *ProcessingJobMutation) ResetProgress() {
	m.progress = nil
	m.appendprogress = nil
	delete(m.clearedFields, processingjob.FieldProgress)
}

// SetProgressUpdatedAt sets the "progress_updated_at" field.
func (m *ProcessingJobMutation) SetProgressUpdatedAt(t time.Time) {
	m.progress_updated_at = &t
}

// ProgressUpdatedAt returns the value of the "progress_updated_at" field in the mutation.
func (m *ProcessingJobMutation) ProgressUpdatedAt() (r time.Time, exists bool) {
	v := m.progress_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressUpdatedAt returns the old "progress_updated_at" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldProgressUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressUpdatedAt: %w", err)
	}
	return oldValue.ProgressUpdatedAt, nil
}

// ClearProgressUpdatedAt clears the value of the "progress_updated_at" field.
func (m *ProcessingJobMutation) ClearProgressUpdatedAt() {
	m.progress_updated_at = nil
	m.clearedFields[processingjob.FieldProgressUpdatedAt] = struct{}{}
}

// ProgressUpdatedAtCleared returns if the "progress_updated_at" field was cleared in this mutation.
func (m *ProcessingJobMutation) ProgressUpdatedAtCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldProgressUpdatedAt]
	return ok
}

// ResetProgressUpdatedAt resets all changes to the "progress_updated_at" field.
func (m *ProcessingJobMutation) ResetProgressUpdatedAt() {
	m.progress_updated_at = nil
	delete(m.clearedFields, processingjob.FieldProgressUpdatedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ProcessingJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProcessingJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProcessingJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[processingjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProcessingJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProcessingJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, processingjob.FieldErrorMessage)
}

// SetErrorKind sets the "error_kind" field.
func (m *ProcessingJobMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *ProcessingJobMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the ProcessingJob entity.
// If the ProcessingJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingJobMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *ProcessingJobMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[processingjob.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *ProcessingJobMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[processingjob.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *ProcessingJobMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, processingjob.FieldErrorKind)
}

// ClearUpload clears the "upload" edge to the Upload entity.
func (m *ProcessingJobMutation) ClearUpload() {
	m.clearedupload = true
	m.clearedFields[processingjob.FieldUploadID] = struct{}{}
}

// UploadCleared reports if the "upload" edge to the Upload entity was cleared.
func (m *ProcessingJobMutation) UploadCleared() bool {
	return m.clearedupload
}

// UploadIDs returns the "upload" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UploadID instead. It exists only for internal usage by the builders.
func (m *ProcessingJobMutation) UploadIDs() (ids []uuid.UUID) {
	if id := m.upload; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUpload resets all changes to the "upload" edge.
func (m *ProcessingJobMutation) ResetUpload() {
	m.upload = nil
	m.clearedupload = false
}

// Where appends a list predicates to the ProcessingJobMutation builder.
func (m *ProcessingJobMutation) Where(ps ...predicate.ProcessingJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingJob).
func (m *ProcessingJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.upload != nil {
		fields = append(fields, processingjob.FieldUploadID)
	}
	if m.owner_id != nil {
		fields = append(fields, processingjob.FieldOwnerID)
	}
	if m.job_status != nil {
		fields = append(fields, processingjob.FieldJobStatus)
	}
	if m.scheduled_at != nil {
		fields = append(fields, processingjob.FieldScheduledAt)
	}
	if m.started_at != nil {
		fields = append(fields, processingjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, processingjob.FieldCompletedAt)
	}
	if m.retry_count != nil {
		fields = append(fields, processingjob.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, processingjob.FieldMaxRetries)
	}
	if m.progress != nil {
		fields = append(fields, processingjob.FieldProgress)
	}
	if m.progress_updated_at != nil {
		fields = append(fields, processingjob.FieldProgressUpdatedAt)
	}
	if m.error_message != nil {
		fields = append(fields, processingjob.FieldErrorMessage)
	}
	if m.error_kind != nil {
		fields = append(fields, processingjob.FieldErrorKind)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingjob.FieldUploadID:
		return m.UploadID()
	case processingjob.FieldOwnerID:
		return m.OwnerID()
	case processingjob.FieldJobStatus:
		return m.JobStatus()
	case processingjob.FieldScheduledAt:
		return m.ScheduledAt()
	case processingjob.FieldStartedAt:
		return m.StartedAt()
	case processingjob.FieldCompletedAt:
		return m.CompletedAt()
	case processingjob.FieldRetryCount:
		return m.RetryCount()
	case processingjob.FieldMaxRetries:
		return m.MaxRetries()
	case processingjob.FieldProgress:
		return m.Progress()
	case processingjob.FieldProgressUpdatedAt:
		return m.ProgressUpdatedAt()
	case processingjob.FieldErrorMessage:
		return m.ErrorMessage()
	case processingjob.FieldErrorKind:
		return m.ErrorKind()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingjob.FieldUploadID:
		return m.OldUploadID(ctx)
	case processingjob.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case processingjob.FieldJobStatus:
		return m.OldJobStatus(ctx)
	case processingjob.FieldScheduledAt:
		return m.OldScheduledAt(ctx)
	case processingjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case processingjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case processingjob.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case processingjob.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case processingjob.FieldProgress:
		return m.OldProgress(ctx)
	case processingjob.FieldProgressUpdatedAt:
		return m.OldProgressUpdatedAt(ctx)
	case processingjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case processingjob.FieldErrorKind:
		return m.OldErrorKind(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingjob.FieldUploadID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadID(v)
		return nil
	case processingjob.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case processingjob.FieldJobStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobStatus(v)
		return nil
	case processingjob.FieldScheduledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledAt(v)
		return nil
	case processingjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case processingjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case processingjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case processingjob.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case processingjob.FieldProgress:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case processingjob.FieldProgressUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressUpdatedAt(v)
		return nil
	case processingjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case processingjob.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingJobMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, processingjob.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, processingjob.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processingjob.FieldRetryCount:
		return m.AddedRetryCount()
	case processingjob.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processingjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case processingjob.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processingjob.FieldStartedAt) {
		fields = append(fields, processingjob.FieldStartedAt)
	}
	if m.FieldCleared(processingjob.FieldCompletedAt) {
		fields = append(fields, processingjob.FieldCompletedAt)
	}
	if m.FieldCleared(processingjob.FieldProgress) {
		fields = append(fields, processingjob.FieldProgress)
	}
	if m.FieldCleared(processingjob.FieldProgressUpdatedAt) {
		fields = append(fields, processingjob.FieldProgressUpdatedAt)
	}
	if m.FieldCleared(processingjob.FieldErrorMessage) {
		fields = append(fields, processingjob.FieldErrorMessage)
	}
	if m.FieldCleared(processingjob.FieldErrorKind) {
		fields = append(fields, processingjob.FieldErrorKind)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingJobMutation) ClearField(name string) error {
	switch name {
	case processingjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case processingjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case processingjob.FieldProgress:
		m.ClearProgress()
		return nil
	case processingjob.FieldProgressUpdatedAt:
		m.ClearProgressUpdatedAt()
		return nil
	case processingjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case processingjob.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingJobMutation) ResetField(name string) error {
	switch name {
	case processingjob.FieldUploadID:
		m.ResetUploadID()
		return nil
	case processingjob.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case processingjob.FieldJobStatus:
		m.ResetJobStatus()
		return nil
	case processingjob.FieldScheduledAt:
		m.ResetScheduledAt()
		return nil
	case processingjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case processingjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case processingjob.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case processingjob.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case processingjob.FieldProgress:
		m.ResetProgress()
		return nil
	case processingjob.FieldProgressUpdatedAt:
		m.ResetProgressUpdatedAt()
		return nil
	case processingjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case processingjob.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.upload != nil {
		edges = append(edges, processingjob.EdgeUpload)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processingjob.EdgeUpload:
		if id := m.upload; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedupload {
		edges = append(edges, processingjob.EdgeUpload)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingJobMutation) EdgeCleared(name string) bool {
	switch name {
	case processingjob.EdgeUpload:
		return m.clearedupload
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingJobMutation) ClearEdge(name string) error {
	switch name {
	case processingjob.EdgeUpload:
		m.ClearUpload()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingJobMutation) ResetEdge(name string) error {
	switch name {
	case processingjob.EdgeUpload:
		m.ResetUpload()
		return nil
	}
	return fmt.Errorf("unknown ProcessingJob edge %s", name)
}

// UploadMutation represents an operation that mutates the Upload nodes in the graph.
type UploadMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	owner_id          *string
	filename          *string
	file_ext          *string
	file_size         *int
	addfile_size      *int
	row_count         *int
	addrow_count      *int
	rows              *[]map[string]string
	appendrows        []map[string]string
	content_hash      *[]byte
	processing_status *string
	uploaded_at       *time.Time
	processed_at      *time.Time
	error_message     *string
	clearedFields     map[string]struct{}
	jobs              map[uuid.UUID]struct{}
	removedjobs       map[uuid.UUID]struct{}
	clearedjobs       bool
	records           map[uuid.UUID]struct{}
	removedrecords    map[uuid.UUID]struct{}
	clearedrecords    bool
	done              bool
	oldValue          func(context.Context) (*Upload, error)
	predicates        []predicate.Upload
}

var _ ent.Mutation = (*UploadMutation)(nil)

// uploadOption allows management of the mutation configuration using functional options.
type uploadOption func(*UploadMutation)

// newUploadMutation creates new mutation for the Upload entity.
func newUploadMutation(c config, op Op, opts ...uploadOption) *UploadMutation {
	m := &UploadMutation{
		config:        c,
		op:            op,
		typ:           TypeUpload,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUploadID sets the ID field of the mutation.
func withUploadID(id uuid.UUID) uploadOption {
	return func(m *UploadMutation) {
		var (
			err   error
			once  sync.Once
			value *Upload
		)
		m.oldValue = func(ctx context.Context) (*Upload, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Upload.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUpload sets the old Upload of the mutation.
func withUpload(node *Upload) uploadOption {
	return func(m *UploadMutation) {
		m.oldValue = func(context.Context) (*Upload, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UploadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UploadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Upload entities.
func (m *UploadMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UploadMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UploadMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Upload.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *UploadMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *UploadMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *UploadMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetFilename sets the "filename" field.
func (m *UploadMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *UploadMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *UploadMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *UploadMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *UploadMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *UploadMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *UploadMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *UploadMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *UploadMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *UploadMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *UploadMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetRowCount sets the "row_count" field.
func (m *UploadMutation) SetRowCount(i int) {
	m.row_count = &i
	m.addrow_count = nil
}

// RowCount returns the value of the "row_count" field in the mutation.
func (m *UploadMutation) RowCount() (r int, exists bool) {
	v := m.row_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRowCount returns the old "row_count" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldRowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowCount: %w", err)
	}
	return oldValue.RowCount, nil
}

// AddRowCount adds i to the "row_count" field.
func (m *UploadMutation) AddRowCount(i int) {
	if m.addrow_count != nil {
		*m.addrow_count += i
	} else {
		m.addrow_count = &i
	}
}

// AddedRowCount returns the value that was added to the "row_count" field in this mutation.
func (m *UploadMutation) AddedRowCount() (r int, exists bool) {
	v := m.addrow_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowCount resets all changes to the "row_count" field.
func (m *UploadMutation) ResetRowCount() {
	m.row_count = nil
	m.addrow_count = nil
}

// SetRows sets the "rows" field.
func (m *UploadMutation) SetRows(value []map[string]string) {
	m.rows = &value
	m.appendrows = nil
}

// Rows returns the value of the "rows" field in the mutation.
func (m *UploadMutation) Rows() (r []map[string]string, exists bool) {
	v := m.rows
	if v == nil {
		return
	}
	return *v, true
}

// OldRows returns the old "rows" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldRows(ctx context.Context) (v []map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRows: %w", err)
	}
	return oldValue.Rows, nil
}

// AppendRows adds value to the "rows" field.
func (m *UploadMutation) AppendRows(value []map[string]string) {
	m.appendrows = append(m.appendrows, value...)
}

// AppendedRows returns the list of values that were appended to the "rows" field in this mutation.
func (m *UploadMutation) AppendedRows() ([]map[string]string, bool) {
	if len(m.appendrows) == 0 {
		return nil, false
	}
	return m.appendrows, true
}

// ResetRows resets all changes to the "rows" field.
func (m *UploadMutation) ResetRows() {
	m.rows = nil
	m.appendrows = nil
}

// SetContentHash sets the "content_hash" field.
func (m *UploadMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *UploadMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *UploadMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetProcessingStatus sets the "processing_status" field.
func (m *UploadMutation) SetProcessingStatus(s string) {
	m.processing_status = &s
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *UploadMutation) ProcessingStatus() (r string, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldProcessingStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *UploadMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *UploadMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *UploadMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *UploadMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *UploadMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *UploadMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *UploadMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[upload.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *UploadMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[upload.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *UploadMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, upload.FieldProcessedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *UploadMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *UploadMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Upload entity.
// If the Upload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UploadMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *UploadMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[upload.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *UploadMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[upload.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *UploadMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, upload.FieldErrorMessage)
}

// AddJobIDs adds the "jobs" edge to the ProcessingJob entity by ids.
func (m *UploadMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ProcessingJob entity.
func (m *UploadMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ProcessingJob entity was cleared.
func (m *UploadMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ProcessingJob entity by IDs.
func (m *UploadMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ProcessingJob entity.
func (m *UploadMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *UploadMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *UploadMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddRecordIDs adds the "records" edge to the EnrichedRecord entity by ids.
func (m *UploadMutation) AddRecordIDs(ids ...uuid.UUID) {
	if m.records == nil {
		m.records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.records[ids[i]] = struct{}{}
	}
}

// ClearRecords clears the "records" edge to the EnrichedRecord entity.
func (m *UploadMutation) ClearRecords() {
	m.clearedrecords = true
}

// RecordsCleared reports if the "records" edge to the EnrichedRecord entity was cleared.
func (m *UploadMutation) RecordsCleared() bool {
	return m.clearedrecords
}

// RemoveRecordIDs removes the "records" edge to the EnrichedRecord entity by IDs.
func (m *UploadMutation) RemoveRecordIDs(ids ...uuid.UUID) {
	if m.removedrecords == nil {
		m.removedrecords = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.records, ids[i])
		m.removedrecords[ids[i]] = struct{}{}
	}
}

// RemovedRecords returns the removed IDs of the "records" edge to the EnrichedRecord entity.
func (m *UploadMutation) RemovedRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecords {
		ids = append(ids, id)
	}
	return
}

// RecordsIDs returns the "records" edge IDs in the mutation.
func (m *UploadMutation) RecordsIDs() (ids []uuid.UUID) {
	for id := range m.records {
		ids = append(ids, id)
	}
	return
}

// ResetRecords resets all changes to the "records" edge.
func (m *UploadMutation) ResetRecords() {
	m.records = nil
	m.clearedrecords = false
	m.removedrecords = nil
}

// Where appends a list predicates to the UploadMutation builder.
func (m *UploadMutation) Where(ps ...predicate.Upload) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UploadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UploadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Upload, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UploadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UploadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Upload).
func (m *UploadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UploadMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.owner_id != nil {
		fields = append(fields, upload.FieldOwnerID)
	}
	if m.filename != nil {
		fields = append(fields, upload.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, upload.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, upload.FieldFileSize)
	}
	if m.row_count != nil {
		fields = append(fields, upload.FieldRowCount)
	}
	if m.rows != nil {
		fields = append(fields, upload.FieldRows)
	}
	if m.content_hash != nil {
		fields = append(fields, upload.FieldContentHash)
	}
	if m.processing_status != nil {
		fields = append(fields, upload.FieldProcessingStatus)
	}
	if m.uploaded_at != nil {
		fields = append(fields, upload.FieldUploadedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, upload.FieldProcessedAt)
	}
	if m.error_message != nil {
		fields = append(fields, upload.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UploadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case upload.FieldOwnerID:
		return m.OwnerID()
	case upload.FieldFilename:
		return m.Filename()
	case upload.FieldFileExt:
		return m.FileExt()
	case upload.FieldFileSize:
		return m.FileSize()
	case upload.FieldRowCount:
		return m.RowCount()
	case upload.FieldRows:
		return m.Rows()
	case upload.FieldContentHash:
		return m.ContentHash()
	case upload.FieldProcessingStatus:
		return m.ProcessingStatus()
	case upload.FieldUploadedAt:
		return m.UploadedAt()
	case upload.FieldProcessedAt:
		return m.ProcessedAt()
	case upload.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UploadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case upload.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case upload.FieldFilename:
		return m.OldFilename(ctx)
	case upload.FieldFileExt:
		return m.OldFileExt(ctx)
	case upload.FieldFileSize:
		return m.OldFileSize(ctx)
	case upload.FieldRowCount:
		return m.OldRowCount(ctx)
	case upload.FieldRows:
		return m.OldRows(ctx)
	case upload.FieldContentHash:
		return m.OldContentHash(ctx)
	case upload.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case upload.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case upload.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case upload.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown Upload field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case upload.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case upload.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case upload.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case upload.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case upload.FieldRowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowCount(v)
		return nil
	case upload.FieldRows:
		v, ok := value.([]map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRows(v)
		return nil
	case upload.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case upload.FieldProcessingStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case upload.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case upload.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case upload.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown Upload field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UploadMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, upload.FieldFileSize)
	}
	if m.addrow_count != nil {
		fields = append(fields, upload.FieldRowCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UploadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case upload.FieldFileSize:
		return m.AddedFileSize()
	case upload.FieldRowCount:
		return m.AddedRowCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UploadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case upload.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case upload.FieldRowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowCount(v)
		return nil
	}
	return fmt.Errorf("unknown Upload numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UploadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(upload.FieldProcessedAt) {
		fields = append(fields, upload.FieldProcessedAt)
	}
	if m.FieldCleared(upload.FieldErrorMessage) {
		fields = append(fields, upload.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UploadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UploadMutation) ClearField(name string) error {
	switch name {
	case upload.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case upload.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Upload nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UploadMutation) ResetField(name string) error {
	switch name {
	case upload.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case upload.FieldFilename:
		m.ResetFilename()
		return nil
	case upload.FieldFileExt:
		m.ResetFileExt()
		return nil
	case upload.FieldFileSize:
		m.ResetFileSize()
		return nil
	case upload.FieldRowCount:
		m.ResetRowCount()
		return nil
	case upload.FieldRows:
		m.ResetRows()
		return nil
	case upload.FieldContentHash:
		m.ResetContentHash()
		return nil
	case upload.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case upload.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case upload.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case upload.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Upload field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UploadMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.jobs != nil {
		edges = append(edges, upload.EdgeJobs)
	}
	if m.records != nil {
		edges = append(edges, upload.EdgeRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UploadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case upload.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case upload.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.records))
		for id := range m.records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UploadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, upload.EdgeJobs)
	}
	if m.removedrecords != nil {
		edges = append(edges, upload.EdgeRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UploadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case upload.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case upload.EdgeRecords:
		ids := make([]ent.Value, 0, len(m.removedrecords))
		for id := range m.removedrecords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UploadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjobs {
		edges = append(edges, upload.EdgeJobs)
	}
	if m.clearedrecords {
		edges = append(edges, upload.EdgeRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UploadMutation) EdgeCleared(name string) bool {
	switch name {
	case upload.EdgeJobs:
		return m.clearedjobs
	case upload.EdgeRecords:
		return m.clearedrecords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UploadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Upload unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UploadMutation) ResetEdge(name string) error {
	switch name {
	case upload.EdgeJobs:
		m.ResetJobs()
		return nil
	case upload.EdgeRecords:
		m.ResetRecords()
		return nil
	}
	return fmt.Errorf("unknown Upload edge %s", name)
}
