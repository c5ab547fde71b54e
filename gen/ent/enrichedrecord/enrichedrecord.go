// Code generated by ent, DO NOT EDIT.

package enrichedrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the enrichedrecord type in the database.
	Label = "enriched_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUploadID holds the string denoting the upload_id field in the database.
	FieldUploadID = "upload_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldSize holds the string denoting the size field in the database.
	FieldSize = "size"
	// FieldIndustry holds the string denoting the industry field in the database.
	FieldIndustry = "industry"
	// FieldRevenue holds the string denoting the revenue field in the database.
	FieldRevenue = "revenue"
	// FieldEnrichmentStatus holds the string denoting the enrichment_status field in the database.
	FieldEnrichmentStatus = "enrichment_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUpload holds the string denoting the upload edge name in mutations.
	EdgeUpload = "upload"
	// Table holds the table name of the enrichedrecord in the database.
	Table = "enriched_records"
	// UploadTable is the table that holds the upload relation/edge.
	UploadTable = "enriched_records"
	// UploadInverseTable is the table name for the Upload entity.
	// It exists in this package in order to avoid circular dependency with the "upload" package.
	UploadInverseTable = "uploads"
	// UploadColumn is the table column denoting the upload relation/edge.
	UploadColumn = "upload_id"
)

// Columns holds all SQL columns for enrichedrecord fields.
var Columns = []string{
	FieldID,
	FieldUploadID,
	FieldOwnerID,
	FieldCompanyName,
	FieldWebsite,
	FieldCountry,
	FieldCity,
	FieldSize,
	FieldIndustry,
	FieldRevenue,
	FieldEnrichmentStatus,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	OwnerIDValidator func(string) error
	// CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	CompanyNameValidator func(string) error
	// EnrichmentStatusValidator is a validator for the "enrichment_status" field. It is called by the builders before save.
	EnrichmentStatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EnrichedRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUploadID orders the results by the upload_id field.
func ByUploadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// BySize orders the results by the size field.
func BySize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSize, opts...).ToFunc()
}

// ByIndustry orders the results by the industry field.
func ByIndustry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndustry, opts...).ToFunc()
}

// ByRevenue orders the results by the revenue field.
func ByRevenue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevenue, opts...).ToFunc()
}

// ByEnrichmentStatus orders the results by the enrichment_status field.
func ByEnrichmentStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichmentStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUploadField orders the results by upload field.
func ByUploadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUploadStep(), sql.OrderByField(field, opts...))
	}
}
func newUploadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UploadInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UploadTable, UploadColumn),
	)
}
