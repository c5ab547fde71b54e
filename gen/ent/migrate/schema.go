// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EnrichedRecordsColumns holds the columns for the "enriched_records" table.
	EnrichedRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "company_name", Type: field.TypeString},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "size", Type: field.TypeString, Nullable: true},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "revenue", Type: field.TypeString, Nullable: true},
		{Name: "enrichment_status", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "upload_id", Type: field.TypeUUID},
	}
	// EnrichedRecordsTable holds the schema information for the "enriched_records" table.
	EnrichedRecordsTable = &schema.Table{
		Name:       "enriched_records",
		Columns:    EnrichedRecordsColumns,
		PrimaryKey: []*schema.Column{EnrichedRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "enriched_records_uploads_records",
				Columns:    []*schema.Column{EnrichedRecordsColumns[11]},
				RefColumns: []*schema.Column{UploadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "enrichedrecord_upload_id",
				Unique:  false,
				Columns: []*schema.Column{EnrichedRecordsColumns[11]},
			},
			{
				Name:    "enrichedrecord_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EnrichedRecordsColumns[1], EnrichedRecordsColumns[10]},
			},
		},
	}
	// ProcessingJobsColumns holds the columns for the "processing_jobs" table.
	ProcessingJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "job_status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "progress", Type: field.TypeJSON, Nullable: true},
		{Name: "progress_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "upload_id", Type: field.TypeUUID},
	}
	// ProcessingJobsTable holds the schema information for the "processing_jobs" table.
	ProcessingJobsTable = &schema.Table{
		Name:       "processing_jobs",
		Columns:    ProcessingJobsColumns,
		PrimaryKey: []*schema.Column{ProcessingJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_jobs_uploads_jobs",
				Columns:    []*schema.Column{ProcessingJobsColumns[12]},
				RefColumns: []*schema.Column{UploadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processingjob_owner_id_job_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[1], ProcessingJobsColumns[2]},
			},
			{
				Name:    "processingjob_job_status_progress_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[2], ProcessingJobsColumns[9]},
			},
			{
				Name:    "processingjob_upload_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobsColumns[12]},
			},
		},
	}
	// UploadsColumns holds the columns for the "uploads" table.
	UploadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "row_count", Type: field.TypeInt},
		{Name: "rows", Type: field.TypeJSON},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "processing_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// UploadsTable holds the schema information for the "uploads" table.
	UploadsTable = &schema.Table{
		Name:       "uploads",
		Columns:    UploadsColumns,
		PrimaryKey: []*schema.Column{UploadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "upload_owner_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{UploadsColumns[1], UploadsColumns[7]},
			},
			{
				Name:    "upload_owner_id_processing_status_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{UploadsColumns[1], UploadsColumns[8], UploadsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EnrichedRecordsTable,
		ProcessingJobsTable,
		UploadsTable,
	}
)

func init() {
	EnrichedRecordsTable.ForeignKeys[0].RefTable = UploadsTable
	EnrichedRecordsTable.Annotation = &entsql.Annotation{
		Table: "enriched_records",
	}
	ProcessingJobsTable.ForeignKeys[0].RefTable = UploadsTable
	ProcessingJobsTable.Annotation = &entsql.Annotation{
		Table: "processing_jobs",
	}
	UploadsTable.Annotation = &entsql.Annotation{
		Table: "uploads",
	}
}
