// Code generated by ent, DO NOT EDIT.

package upload

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/tomide-adesanmi/company-enricher/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldOwnerID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldFilename, v))
}

// FileExt applies equality check predicate on the "file_ext" field. It's identical to FileExtEQ.
func FileExt(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldFileExt, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldFileSize, v))
}

// RowCount applies equality check predicate on the "row_count" field. It's identical to RowCountEQ.
func RowCount(v int) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldRowCount, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldContentHash, v))
}

// ProcessingStatus applies equality check predicate on the "processing_status" field. It's identical to ProcessingStatusEQ.
func ProcessingStatus(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldProcessingStatus, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldUploadedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldProcessedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldErrorMessage, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldOwnerID, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldFilename, v))
}

// FileExtEQ applies the EQ predicate on the "file_ext" field.
func FileExtEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldFileExt, v))
}

// FileExtNEQ applies the NEQ predicate on the "file_ext" field.
func FileExtNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldFileExt, v))
}

// FileExtIn applies the In predicate on the "file_ext" field.
func FileExtIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldFileExt, vs...))
}

// FileExtNotIn applies the NotIn predicate on the "file_ext" field.
func FileExtNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldFileExt, vs...))
}

// FileExtGT applies the GT predicate on the "file_ext" field.
func FileExtGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldFileExt, v))
}

// FileExtGTE applies the GTE predicate on the "file_ext" field.
func FileExtGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldFileExt, v))
}

// FileExtLT applies the LT predicate on the "file_ext" field.
func FileExtLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldFileExt, v))
}

// FileExtLTE applies the LTE predicate on the "file_ext" field.
func FileExtLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldFileExt, v))
}

// FileExtContains applies the Contains predicate on the "file_ext" field.
func FileExtContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldFileExt, v))
}

// FileExtHasPrefix applies the HasPrefix predicate on the "file_ext" field.
func FileExtHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldFileExt, v))
}

// FileExtHasSuffix applies the HasSuffix predicate on the "file_ext" field.
func FileExtHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldFileExt, v))
}

// FileExtEqualFold applies the EqualFold predicate on the "file_ext" field.
func FileExtEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldFileExt, v))
}

// FileExtContainsFold applies the ContainsFold predicate on the "file_ext" field.
func FileExtContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldFileExt, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldFileSize, v))
}

// RowCountEQ applies the EQ predicate on the "row_count" field.
func RowCountEQ(v int) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldRowCount, v))
}

// RowCountNEQ applies the NEQ predicate on the "row_count" field.
func RowCountNEQ(v int) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldRowCount, v))
}

// RowCountIn applies the In predicate on the "row_count" field.
func RowCountIn(vs ...int) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldRowCount, vs...))
}

// RowCountNotIn applies the NotIn predicate on the "row_count" field.
func RowCountNotIn(vs ...int) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldRowCount, vs...))
}

// RowCountGT applies the GT predicate on the "row_count" field.
func RowCountGT(v int) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldRowCount, v))
}

// RowCountGTE applies the GTE predicate on the "row_count" field.
func RowCountGTE(v int) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldRowCount, v))
}

// RowCountLT applies the LT predicate on the "row_count" field.
func RowCountLT(v int) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldRowCount, v))
}

// RowCountLTE applies the LTE predicate on the "row_count" field.
func RowCountLTE(v int) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldRowCount, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldContentHash, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusGT applies the GT predicate on the "processing_status" field.
func ProcessingStatusGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldProcessingStatus, v))
}

// ProcessingStatusGTE applies the GTE predicate on the "processing_status" field.
func ProcessingStatusGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldProcessingStatus, v))
}

// ProcessingStatusLT applies the LT predicate on the "processing_status" field.
func ProcessingStatusLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldProcessingStatus, v))
}

// ProcessingStatusLTE applies the LTE predicate on the "processing_status" field.
func ProcessingStatusLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldProcessingStatus, v))
}

// ProcessingStatusContains applies the Contains predicate on the "processing_status" field.
func ProcessingStatusContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldProcessingStatus, v))
}

// ProcessingStatusHasPrefix applies the HasPrefix predicate on the "processing_status" field.
func ProcessingStatusHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldProcessingStatus, v))
}

// ProcessingStatusHasSuffix applies the HasSuffix predicate on the "processing_status" field.
func ProcessingStatusHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldProcessingStatus, v))
}

// ProcessingStatusEqualFold applies the EqualFold predicate on the "processing_status" field.
func ProcessingStatusEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldProcessingStatus, v))
}

// ProcessingStatusContainsFold applies the ContainsFold predicate on the "processing_status" field.
func ProcessingStatusContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldProcessingStatus, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldUploadedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.Upload {
	return predicate.Upload(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.Upload {
	return predicate.Upload(sql.FieldNotNull(FieldProcessedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Upload {
	return predicate.Upload(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Upload {
	return predicate.Upload(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Upload {
	return predicate.Upload(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Upload {
	return predicate.Upload(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Upload {
	return predicate.Upload(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Upload {
	return predicate.Upload(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Upload {
	return predicate.Upload(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Upload {
	return predicate.Upload(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ProcessingJob) predicate.Upload {
	return predicate.Upload(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecords applies the HasEdge predicate on the "records" edge.
func HasRecords() predicate.Upload {
	return predicate.Upload(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecordsTable, RecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordsWith applies the HasEdge predicate on the "records" edge with a given conditions (other predicates).
func HasRecordsWith(preds ...predicate.EnrichedRecord) predicate.Upload {
	return predicate.Upload(func(s *sql.Selector) {
		step := newRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Upload) predicate.Upload {
	return predicate.Upload(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Upload) predicate.Upload {
	return predicate.Upload(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Upload) predicate.Upload {
	return predicate.Upload(sql.NotPredicates(p))
}
