// Code generated by ent, DO NOT EDIT.

package processingjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldID, id))
}

// UploadID applies equality check predicate on the "upload_id" field. It's identical to UploadIDEQ.
func UploadID(v uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldUploadID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldOwnerID, v))
}

// JobStatus applies equality check predicate on the "job_status" field. It's identical to JobStatusEQ.
func JobStatus(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldJobStatus, v))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldScheduledAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldCompletedAt, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldRetryCount, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldMaxRetries, v))
}

// ProgressUpdatedAt applies equality check predicate on the "progress_updated_at" field. It's identical to ProgressUpdatedAtEQ.
func ProgressUpdatedAt(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldProgressUpdatedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldErrorKind, v))
}

// UploadIDEQ applies the EQ predicate on the "upload_id" field.
func UploadIDEQ(v uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldUploadID, v))
}

// UploadIDNEQ applies the NEQ predicate on the "upload_id" field.
func UploadIDNEQ(v uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldUploadID, v))
}

// UploadIDIn applies the In predicate on the "upload_id" field.
func UploadIDIn(vs ...uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldUploadID, vs...))
}

// UploadIDNotIn applies the NotIn predicate on the "upload_id" field.
func UploadIDNotIn(vs ...uuid.UUID) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldUploadID, vs...))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContainsFold(FieldOwnerID, v))
}

// JobStatusEQ applies the EQ predicate on the "job_status" field.
func JobStatusEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldJobStatus, v))
}

// JobStatusNEQ applies the NEQ predicate on the "job_status" field.
func JobStatusNEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldJobStatus, v))
}

// JobStatusIn applies the In predicate on the "job_status" field.
func JobStatusIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldJobStatus, vs...))
}

// JobStatusNotIn applies the NotIn predicate on the "job_status" field.
func JobStatusNotIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldJobStatus, vs...))
}

// JobStatusGT applies the GT predicate on the "job_status" field.
func JobStatusGT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldJobStatus, v))
}

// JobStatusGTE applies the GTE predicate on the "job_status" field.
func JobStatusGTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldJobStatus, v))
}

// JobStatusLT applies the LT predicate on the "job_status" field.
func JobStatusLT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldJobStatus, v))
}

// JobStatusLTE applies the LTE predicate on the "job_status" field.
func JobStatusLTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldJobStatus, v))
}

// JobStatusContains applies the Contains predicate on the "job_status" field.
func JobStatusContains(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContains(FieldJobStatus, v))
}

// JobStatusHasPrefix applies the HasPrefix predicate on the "job_status" field.
func JobStatusHasPrefix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasPrefix(FieldJobStatus, v))
}

// JobStatusHasSuffix applies the HasSuffix predicate on the "job_status" field.
func JobStatusHasSuffix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasSuffix(FieldJobStatus, v))
}

// JobStatusEqualFold applies the EqualFold predicate on the "job_status" field.
func JobStatusEqualFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEqualFold(FieldJobStatus, v))
}

// JobStatusContainsFold applies the ContainsFold predicate on the "job_status" field.
func JobStatusContainsFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContainsFold(FieldJobStatus, v))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldScheduledAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldCompletedAt))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldRetryCount, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldMaxRetries, v))
}

// ProgressIsNil applies the IsNil predicate on the "progress" field.
func ProgressIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldProgress))
}

// ProgressNotNil applies the NotNil predicate on the "progress" field.
func ProgressNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldProgress))
}

// ProgressUpdatedAtEQ applies the EQ predicate on the "progress_updated_at" field.
func ProgressUpdatedAtEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldProgressUpdatedAt, v))
}

// ProgressUpdatedAtNEQ applies the NEQ predicate on the "progress_updated_at" field.
func ProgressUpdatedAtNEQ(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldProgressUpdatedAt, v))
}

// ProgressUpdatedAtIn applies the In predicate on the "progress_updated_at" field.
func ProgressUpdatedAtIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldProgressUpdatedAt, vs...))
}

// ProgressUpdatedAtNotIn applies the NotIn predicate on the "progress_updated_at" field.
func ProgressUpdatedAtNotIn(vs ...time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldProgressUpdatedAt, vs...))
}

// ProgressUpdatedAtGT applies the GT predicate on the "progress_updated_at" field.
func ProgressUpdatedAtGT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldProgressUpdatedAt, v))
}

// ProgressUpdatedAtGTE applies the GTE predicate on the "progress_updated_at" field.
func ProgressUpdatedAtGTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldProgressUpdatedAt, v))
}

// ProgressUpdatedAtLT applies the LT predicate on the "progress_updated_at" field.
func ProgressUpdatedAtLT(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldProgressUpdatedAt, v))
}

// ProgressUpdatedAtLTE applies the LTE predicate on the "progress_updated_at" field.
func ProgressUpdatedAtLTE(v time.Time) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldProgressUpdatedAt, v))
}

// ProgressUpdatedAtIsNil applies the IsNil predicate on the "progress_updated_at" field.
func ProgressUpdatedAtIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldProgressUpdatedAt))
}

// ProgressUpdatedAtNotNil applies the NotNil predicate on the "progress_updated_at" field.
func ProgressUpdatedAtNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldProgressUpdatedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.FieldContainsFold(FieldErrorKind, v))
}

// HasUpload applies the HasEdge predicate on the "upload" edge.
func HasUpload() predicate.ProcessingJob {
	return predicate.ProcessingJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UploadTable, UploadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUploadWith applies the HasEdge predicate on the "upload" edge with a given conditions (other predicates).
func HasUploadWith(preds ...predicate.Upload) predicate.ProcessingJob {
	return predicate.ProcessingJob(func(s *sql.Selector) {
		step := newUploadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessingJob) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessingJob) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessingJob) predicate.ProcessingJob {
	return predicate.ProcessingJob(sql.NotPredicates(p))
}
