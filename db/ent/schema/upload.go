package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/db/ent/schema/utils"

	"github.com/google/uuid"
)

type Upload struct {
	ent.Schema
}

func (Upload) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "uploads"},
	}
}

func (Upload) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// owner_id is the verified user identifier supplied by the auth layer;
		// there is no local user table, the id is the admission key as-is.
		field.String("owner_id").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("file_ext").NotEmpty().
			Validate(utils.EnumValidator("csv", "xlsx")),
		field.Int("file_size").NonNegative(),
		field.Int("row_count").NonNegative(),
		// Raw row data exactly as parsed from the file, ordered.
		field.JSON("rows", []map[string]string{}),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("processing_status").
			Default(string(constants.UploadStatusPending)).
			Validate(utils.EnumValidator(constants.UploadStatuses...)),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("processed_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (Upload) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE upload -> MANY jobs (normally one live job at a time; retries reuse it)
		edge.To("jobs", ProcessingJob.Type),
		// ONE upload -> MANY enriched records
		edge.To("records", EnrichedRecord.Type),
	}
}

func (Upload) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "content_hash").Unique(),
		index.Fields("owner_id", "processing_status", "uploaded_at"),
	}
}
