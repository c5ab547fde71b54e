package schema

import (
	"encoding/json"
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

type ProcessingJob struct{ ent.Schema }

func (ProcessingJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_jobs"},
	}
}

func (ProcessingJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can index on it
		field.UUID("upload_id", uuid.UUID{}),
		field.String("owner_id").NotEmpty(),
		field.String("job_status").
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Time("scheduled_at").Default(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Int("retry_count").Default(0).NonNegative(),
		field.Int("max_retries").Default(3).NonNegative(),
		// {stage, percent, message, updated_at} snapshot written after each stage.
		field.JSON("progress", json.RawMessage{}).Optional(),
		// progress_updated_at duplicates the snapshot timestamp as a plain column
		// so stale-job scans stay a SQL predicate instead of JSON inspection.
		field.Time("progress_updated_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// classification used by the central retry policy (see common/errors.go)
		field.String("error_kind").Optional().Nillable(),
	}
}

func (ProcessingJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("upload", Upload.Type).
			Ref("jobs").
			Field("upload_id").
			Unique().
			Required(),
	}
}

func (ProcessingJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "job_status"),
		index.Fields("job_status", "progress_updated_at"),
		index.Fields("upload_id"),
	}
}
