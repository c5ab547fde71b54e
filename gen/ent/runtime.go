// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/db/ent/schema"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/enrichedrecord"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/processingjob"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/upload"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	enrichedrecordFields := schema.EnrichedRecord{}.Fields()
	_ = enrichedrecordFields
	// enrichedrecordDescOwnerID is the schema descriptor for owner_id field.
	enrichedrecordDescOwnerID := enrichedrecordFields[2].Descriptor()
	// enrichedrecord.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	enrichedrecord.OwnerIDValidator = enrichedrecordDescOwnerID.Validators[0].(func(string) error)
	// enrichedrecordDescCompanyName is the schema descriptor for company_name field.
	enrichedrecordDescCompanyName := enrichedrecordFields[3].Descriptor()
	// enrichedrecord.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	enrichedrecord.CompanyNameValidator = enrichedrecordDescCompanyName.Validators[0].(func(string) error)
	// enrichedrecordDescEnrichmentStatus is the schema descriptor for enrichment_status field.
	enrichedrecordDescEnrichmentStatus := enrichedrecordFields[10].Descriptor()
	// enrichedrecord.EnrichmentStatusValidator is a validator for the "enrichment_status" field. It is called by the builders before save.
	enrichedrecord.EnrichmentStatusValidator = enrichedrecordDescEnrichmentStatus.Validators[0].(func(string) error)
	// enrichedrecordDescCreatedAt is the schema descriptor for created_at field.
	enrichedrecordDescCreatedAt := enrichedrecordFields[11].Descriptor()
	// enrichedrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	enrichedrecord.DefaultCreatedAt = enrichedrecordDescCreatedAt.Default.(func() time.Time)
	// enrichedrecordDescID is the schema descriptor for id field.
	enrichedrecordDescID := enrichedrecordFields[0].Descriptor()
	// enrichedrecord.DefaultID holds the default value on creation for the id field.
	enrichedrecord.DefaultID = enrichedrecordDescID.Default.(func() uuid.UUID)
	processingjobFields := schema.ProcessingJob{}.Fields()
	_ = processingjobFields
	// processingjobDescOwnerID is the schema descriptor for owner_id field.
	processingjobDescOwnerID := processingjobFields[2].Descriptor()
	// processingjob.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	processingjob.OwnerIDValidator = processingjobDescOwnerID.Validators[0].(func(string) error)
	// processingjobDescJobStatus is the schema descriptor for job_status field.
	processingjobDescJobStatus := processingjobFields[3].Descriptor()
	// processingjob.DefaultJobStatus holds the default value on creation for the job_status field.
	processingjob.DefaultJobStatus = processingjobDescJobStatus.Default.(string)
	// processingjob.JobStatusValidator is a validator for the "job_status" field. It is called by the builders before save.
	processingjob.JobStatusValidator = processingjobDescJobStatus.Validators[0].(func(string) error)
	// processingjobDescScheduledAt is the schema descriptor for scheduled_at field.
	processingjobDescScheduledAt := processingjobFields[4].Descriptor()
	// processingjob.DefaultScheduledAt holds the default value on creation for the scheduled_at field.
	processingjob.DefaultScheduledAt = processingjobDescScheduledAt.Default.(func() time.Time)
	// processingjobDescRetryCount is the schema descriptor for retry_count field.
	processingjobDescRetryCount := processingjobFields[7].Descriptor()
	// processingjob.DefaultRetryCount holds the default value on creation for the retry_count field.
	processingjob.DefaultRetryCount = processingjobDescRetryCount.Default.(int)
	// processingjob.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	processingjob.RetryCountValidator = processingjobDescRetryCount.Validators[0].(func(int) error)
	// processingjobDescMaxRetries is the schema descriptor for max_retries field.
	processingjobDescMaxRetries := processingjobFields[8].Descriptor()
	// processingjob.DefaultMaxRetries holds the default value on creation for the max_retries field.
	processingjob.DefaultMaxRetries = processingjobDescMaxRetries.Default.(int)
	// processingjob.MaxRetriesValidator is a validator for the "max_retries" field. It is called by the builders before save.
	processingjob.MaxRetriesValidator = processingjobDescMaxRetries.Validators[0].(func(int) error)
	// processingjobDescID is the schema descriptor for id field.
	processingjobDescID := processingjobFields[0].Descriptor()
	// processingjob.DefaultID holds the default value on creation for the id field.
	processingjob.DefaultID = processingjobDescID.Default.(func() uuid.UUID)
	uploadFields := schema.Upload{}.Fields()
	_ = uploadFields
	// uploadDescOwnerID is the schema descriptor for owner_id field.
	uploadDescOwnerID := uploadFields[1].Descriptor()
	// upload.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	upload.OwnerIDValidator = uploadDescOwnerID.Validators[0].(func(string) error)
	// uploadDescFilename is the schema descriptor for filename field.
	uploadDescFilename := uploadFields[2].Descriptor()
	// upload.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	upload.FilenameValidator = uploadDescFilename.Validators[0].(func(string) error)
	// uploadDescFileExt is the schema descriptor for file_ext field.
	uploadDescFileExt := uploadFields[3].Descriptor()
	// upload.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	upload.FileExtValidator = func() func(string) error {
		validators := uploadDescFileExt.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_ext string) error {
			for _, fn := range fns {
				if err := fn(file_ext); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// uploadDescFileSize is the schema descriptor for file_size field.
	uploadDescFileSize := uploadFields[4].Descriptor()
	// upload.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	upload.FileSizeValidator = uploadDescFileSize.Validators[0].(func(int) error)
	// uploadDescRowCount is the schema descriptor for row_count field.
	uploadDescRowCount := uploadFields[5].Descriptor()
	// upload.RowCountValidator is a validator for the "row_count" field. It is called by the builders before save.
	upload.RowCountValidator = uploadDescRowCount.Validators[0].(func(int) error)
	// uploadDescContentHash is the schema descriptor for content_hash field.
	uploadDescContentHash := uploadFields[7].Descriptor()
	// upload.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	upload.ContentHashValidator = uploadDescContentHash.Validators[0].(func([]byte) error)
	// uploadDescProcessingStatus is the schema descriptor for processing_status field.
	uploadDescProcessingStatus := uploadFields[8].Descriptor()
	// upload.DefaultProcessingStatus holds the default value on creation for the processing_status field.
	upload.DefaultProcessingStatus = uploadDescProcessingStatus.Default.(string)
	// upload.ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	upload.ProcessingStatusValidator = uploadDescProcessingStatus.Validators[0].(func(string) error)
	// uploadDescUploadedAt is the schema descriptor for uploaded_at field.
	uploadDescUploadedAt := uploadFields[9].Descriptor()
	// upload.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	upload.DefaultUploadedAt = uploadDescUploadedAt.Default.(func() time.Time)
	// uploadDescID is the schema descriptor for id field.
	uploadDescID := uploadFields[0].Descriptor()
	// upload.DefaultID holds the default value on creation for the id field.
	upload.DefaultID = uploadDescID.Default.(func() uuid.UUID)
}
