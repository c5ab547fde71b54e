// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/enrichedrecord"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

// EnrichedRecord is the model entity for the EnrichedRecord schema.
type EnrichedRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UploadID holds the value of the "upload_id" field.
	UploadID uuid.UUID `json:"upload_id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// CompanyName holds the value of the "company_name" field.
	CompanyName string `json:"company_name,omitempty"`
	// Website holds the value of the "website" field.
	Website string `json:"website,omitempty"`
	// Country holds the value of the "country" field.
	Country string `json:"country,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// Size holds the value of the "size" field.
	Size string `json:"size,omitempty"`
	// Industry holds the value of the "industry" field.
	Industry string `json:"industry,omitempty"`
	// Revenue holds the value of the "revenue" field.
	Revenue string `json:"revenue,omitempty"`
	// EnrichmentStatus holds the value of the "enrichment_status" field.
	EnrichmentStatus string `json:"enrichment_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EnrichedRecordQuery when eager-loading is set.
	Edges        EnrichedRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EnrichedRecordEdges holds the relations/edges for other nodes in the graph.
type EnrichedRecordEdges struct {
	// Upload holds the value of the upload edge.
	Upload *Upload `json:"upload,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UploadOrErr returns the Upload value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EnrichedRecordEdges) UploadOrErr() (*Upload, error) {
	if e.Upload != nil {
		return e.Upload, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: upload.Label}
	}
	return nil, &NotLoadedError{edge: "upload"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EnrichedRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case enrichedrecord.FieldOwnerID, enrichedrecord.FieldCompanyName, enrichedrecord.FieldWebsite, enrichedrecord.FieldCountry, enrichedrecord.FieldCity, enrichedrecord.FieldSize, enrichedrecord.FieldIndustry, enrichedrecord.FieldRevenue, enrichedrecord.FieldEnrichmentStatus:
			values[i] = new(sql.NullString)
		case enrichedrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case enrichedrecord.FieldID, enrichedrecord.FieldUploadID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EnrichedRecord fields.
func (_m *EnrichedRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case enrichedrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case enrichedrecord.FieldUploadID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field upload_id", values[i])
			} else if value != nil {
				_m.UploadID = *value
			}
		case enrichedrecord.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case enrichedrecord.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case enrichedrecord.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = value.String
			}
		case enrichedrecord.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = value.String
			}
		case enrichedrecord.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case enrichedrecord.FieldSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				_m.Size = value.String
			}
		case enrichedrecord.FieldIndustry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field industry", values[i])
			} else if value.Valid {
				_m.Industry = value.String
			}
		case enrichedrecord.FieldRevenue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field revenue", values[i])
			} else if value.Valid {
				_m.Revenue = value.String
			}
		case enrichedrecord.FieldEnrichmentStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enrichment_status", values[i])
			} else if value.Valid {
				_m.EnrichmentStatus = value.String
			}
		case enrichedrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EnrichedRecord.
// This includes values selected through modifiers, order, etc.
func (_m *EnrichedRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUpload queries the "upload" edge of the EnrichedRecord entity.
func (_m *EnrichedRecord) QueryUpload() *UploadQuery {
	return NewEnrichedRecordClient(_m.config).QueryUpload(_m)
}

// Update returns a builder for updating this EnrichedRecord.
// Note that you need to call EnrichedRecord.Unwrap() before calling this method if this EnrichedRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EnrichedRecord) Update() *EnrichedRecordUpdateOne {
	return NewEnrichedRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EnrichedRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EnrichedRecord) Unwrap() *EnrichedRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EnrichedRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EnrichedRecord) String() string {
	var builder strings.Builder
	builder.WriteString("EnrichedRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("upload_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UploadID))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("website=")
	builder.WriteString(_m.Website)
	builder.WriteString(", ")
	builder.WriteString("country=")
	builder.WriteString(_m.Country)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(_m.Size)
	builder.WriteString(", ")
	builder.WriteString("industry=")
	builder.WriteString(_m.Industry)
	builder.WriteString(", ")
	builder.WriteString("revenue=")
	builder.WriteString(_m.Revenue)
	builder.WriteString(", ")
	builder.WriteString("enrichment_status=")
	builder.WriteString(_m.EnrichmentStatus)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EnrichedRecords is a parsable slice of EnrichedRecord.
type EnrichedRecords []*EnrichedRecord
