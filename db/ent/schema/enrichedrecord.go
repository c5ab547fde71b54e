package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/tomide-adesanmi/company-enricher/constants"
	"github.com/tomide-adesanmi/company-enricher/db/ent/schema/utils"

	"github.com/google/uuid"
)

type EnrichedRecord struct{ ent.Schema }

func (EnrichedRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "enriched_records"},
	}
}

func (EnrichedRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK: every record traces to exactly one upload
		field.UUID("upload_id", uuid.UUID{}),
		field.String("owner_id").NotEmpty(),
		field.String("company_name").NotEmpty(),
		field.String("website").Optional(),
		field.String("country").Optional(),
		field.String("city").Optional(),
		field.String("size").Optional(),
		field.String("industry").Optional(),
		field.String("revenue").Optional(),
		field.String("enrichment_status").
			Validate(utils.EnumValidator(constants.RecordStatuses...)),
		field.Time("created_at").Default(time.Now),
	}
}

func (EnrichedRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("upload", Upload.Type).
			Ref("records").
			Field("upload_id").
			Unique().
			Required(),
	}
}

func (EnrichedRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("upload_id"),
		index.Fields("owner_id", "created_at"),
	}
}
