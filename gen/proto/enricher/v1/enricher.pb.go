// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: enricher/v1/enricher.proto

package enricherv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SubmitUploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitUploadRequest) Reset() {
	*x = SubmitUploadRequest{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitUploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitUploadRequest) ProtoMessage() {}

func (x *SubmitUploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitUploadRequest.ProtoReflect.Descriptor instead.
func (*SubmitUploadRequest) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitUploadRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *SubmitUploadRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SubmitUploadRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type SubmitUploadResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	UploadId         string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	ProcessingStatus string                 `protobuf:"bytes,2,opt,name=processing_status,json=processingStatus,proto3" json:"processing_status,omitempty"`
	Deduplicated     bool                   `protobuf:"varint,3,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	RowCount         int32                  `protobuf:"varint,4,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *SubmitUploadResponse) Reset() {
	*x = SubmitUploadResponse{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitUploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitUploadResponse) ProtoMessage() {}

func (x *SubmitUploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitUploadResponse.ProtoReflect.Descriptor instead.
func (*SubmitUploadResponse) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitUploadResponse) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

func (x *SubmitUploadResponse) GetProcessingStatus() string {
	if x != nil {
		return x.ProcessingStatus
	}
	return ""
}

func (x *SubmitUploadResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *SubmitUploadResponse) GetRowCount() int32 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

type ProcessNowRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	UploadId      string                 `protobuf:"bytes,2,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessNowRequest) Reset() {
	*x = ProcessNowRequest{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessNowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessNowRequest) ProtoMessage() {}

func (x *ProcessNowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessNowRequest.ProtoReflect.Descriptor instead.
func (*ProcessNowRequest) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessNowRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ProcessNowRequest) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

type ProcessNowResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	JobStatus     string                 `protobuf:"bytes,2,opt,name=job_status,json=jobStatus,proto3" json:"job_status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessNowResponse) Reset() {
	*x = ProcessNowResponse{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessNowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessNowResponse) ProtoMessage() {}

func (x *ProcessNowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessNowResponse.ProtoReflect.Descriptor instead.
func (*ProcessNowResponse) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessNowResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ProcessNowResponse) GetJobStatus() string {
	if x != nil {
		return x.JobStatus
	}
	return ""
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	UploadId      string                 `protobuf:"bytes,2,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobStatusRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *GetJobStatusRequest) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

type JobProgress struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stage         string                 `protobuf:"bytes,1,opt,name=stage,proto3" json:"stage,omitempty"`
	Percent       int32                  `protobuf:"varint,2,opt,name=percent,proto3" json:"percent,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,4,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *JobProgress) Reset() {
	*x = JobProgress{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobProgress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobProgress) ProtoMessage() {}

func (x *JobProgress) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobProgress.ProtoReflect.Descriptor instead.
func (*JobProgress) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{5}
}

func (x *JobProgress) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *JobProgress) GetPercent() int32 {
	if x != nil {
		return x.Percent
	}
	return 0
}

func (x *JobProgress) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *JobProgress) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetJobStatusResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	UploadId         string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	ProcessingStatus string                 `protobuf:"bytes,2,opt,name=processing_status,json=processingStatus,proto3" json:"processing_status,omitempty"`
	JobStatus        string                 `protobuf:"bytes,3,opt,name=job_status,json=jobStatus,proto3" json:"job_status,omitempty"`
	Progress         *JobProgress           `protobuf:"bytes,4,opt,name=progress,proto3" json:"progress,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	RetryCount       int32                  `protobuf:"varint,6,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	MaxRetries       int32                  `protobuf:"varint,7,opt,name=max_retries,json=maxRetries,proto3" json:"max_retries,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*GetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{6}
}

func (x *GetJobStatusResponse) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

func (x *GetJobStatusResponse) GetProcessingStatus() string {
	if x != nil {
		return x.ProcessingStatus
	}
	return ""
}

func (x *GetJobStatusResponse) GetJobStatus() string {
	if x != nil {
		return x.JobStatus
	}
	return ""
}

func (x *GetJobStatusResponse) GetProgress() *JobProgress {
	if x != nil {
		return x.Progress
	}
	return nil
}

func (x *GetJobStatusResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *GetJobStatusResponse) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *GetJobStatusResponse) GetMaxRetries() int32 {
	if x != nil {
		return x.MaxRetries
	}
	return 0
}

type UploadSummary struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	UploadId         string                 `protobuf:"bytes,1,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	Filename         string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	RowCount         int32                  `protobuf:"varint,3,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	ProcessingStatus string                 `protobuf:"bytes,4,opt,name=processing_status,json=processingStatus,proto3" json:"processing_status,omitempty"`
	UploadedAt       string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	ProcessedAt      string                 `protobuf:"bytes,6,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *UploadSummary) Reset() {
	*x = UploadSummary{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadSummary) ProtoMessage() {}

func (x *UploadSummary) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadSummary.ProtoReflect.Descriptor instead.
func (*UploadSummary) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{7}
}

func (x *UploadSummary) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

func (x *UploadSummary) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadSummary) GetRowCount() int32 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

func (x *UploadSummary) GetProcessingStatus() string {
	if x != nil {
		return x.ProcessingStatus
	}
	return ""
}

func (x *UploadSummary) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *UploadSummary) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

func (x *UploadSummary) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type StatusCounts struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Pending       int32                  `protobuf:"varint,1,opt,name=pending,proto3" json:"pending,omitempty"`
	Processing    int32                  `protobuf:"varint,2,opt,name=processing,proto3" json:"processing,omitempty"`
	Completed     int32                  `protobuf:"varint,3,opt,name=completed,proto3" json:"completed,omitempty"`
	Failed        int32                  `protobuf:"varint,4,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusCounts) Reset() {
	*x = StatusCounts{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusCounts) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusCounts) ProtoMessage() {}

func (x *StatusCounts) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusCounts.ProtoReflect.Descriptor instead.
func (*StatusCounts) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{8}
}

func (x *StatusCounts) GetPending() int32 {
	if x != nil {
		return x.Pending
	}
	return 0
}

func (x *StatusCounts) GetProcessing() int32 {
	if x != nil {
		return x.Processing
	}
	return 0
}

func (x *StatusCounts) GetCompleted() int32 {
	if x != nil {
		return x.Completed
	}
	return 0
}

func (x *StatusCounts) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type ListUploadsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUploadsRequest) Reset() {
	*x = ListUploadsRequest{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUploadsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUploadsRequest) ProtoMessage() {}

func (x *ListUploadsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUploadsRequest.ProtoReflect.Descriptor instead.
func (*ListUploadsRequest) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{9}
}

func (x *ListUploadsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ListUploadsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Uploads       []*UploadSummary       `protobuf:"bytes,1,rep,name=uploads,proto3" json:"uploads,omitempty"`
	Counts        *StatusCounts          `protobuf:"bytes,2,opt,name=counts,proto3" json:"counts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUploadsResponse) Reset() {
	*x = ListUploadsResponse{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUploadsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUploadsResponse) ProtoMessage() {}

func (x *ListUploadsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUploadsResponse.ProtoReflect.Descriptor instead.
func (*ListUploadsResponse) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{10}
}

func (x *ListUploadsResponse) GetUploads() []*UploadSummary {
	if x != nil {
		return x.Uploads
	}
	return nil
}

func (x *ListUploadsResponse) GetCounts() *StatusCounts {
	if x != nil {
		return x.Counts
	}
	return nil
}

type EnrichedRecord struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UploadId         string                 `protobuf:"bytes,2,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	CompanyName      string                 `protobuf:"bytes,3,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	Website          string                 `protobuf:"bytes,4,opt,name=website,proto3" json:"website,omitempty"`
	Country          string                 `protobuf:"bytes,5,opt,name=country,proto3" json:"country,omitempty"`
	City             string                 `protobuf:"bytes,6,opt,name=city,proto3" json:"city,omitempty"`
	Size             string                 `protobuf:"bytes,7,opt,name=size,proto3" json:"size,omitempty"`
	Industry         string                 `protobuf:"bytes,8,opt,name=industry,proto3" json:"industry,omitempty"`
	Revenue          string                 `protobuf:"bytes,9,opt,name=revenue,proto3" json:"revenue,omitempty"`
	EnrichmentStatus string                 `protobuf:"bytes,10,opt,name=enrichment_status,json=enrichmentStatus,proto3" json:"enrichment_status,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *EnrichedRecord) Reset() {
	*x = EnrichedRecord{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnrichedRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnrichedRecord) ProtoMessage() {}

func (x *EnrichedRecord) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnrichedRecord.ProtoReflect.Descriptor instead.
func (*EnrichedRecord) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{11}
}

func (x *EnrichedRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *EnrichedRecord) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

func (x *EnrichedRecord) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *EnrichedRecord) GetWebsite() string {
	if x != nil {
		return x.Website
	}
	return ""
}

func (x *EnrichedRecord) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *EnrichedRecord) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *EnrichedRecord) GetSize() string {
	if x != nil {
		return x.Size
	}
	return ""
}

func (x *EnrichedRecord) GetIndustry() string {
	if x != nil {
		return x.Industry
	}
	return ""
}

func (x *EnrichedRecord) GetRevenue() string {
	if x != nil {
		return x.Revenue
	}
	return ""
}

func (x *EnrichedRecord) GetEnrichmentStatus() string {
	if x != nil {
		return x.EnrichmentStatus
	}
	return ""
}

type ListEnrichedRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	UploadId      string                 `protobuf:"bytes,2,opt,name=upload_id,json=uploadId,proto3" json:"upload_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEnrichedRecordsRequest) Reset() {
	*x = ListEnrichedRecordsRequest{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEnrichedRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEnrichedRecordsRequest) ProtoMessage() {}

func (x *ListEnrichedRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEnrichedRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListEnrichedRecordsRequest) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{12}
}

func (x *ListEnrichedRecordsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListEnrichedRecordsRequest) GetUploadId() string {
	if x != nil {
		return x.UploadId
	}
	return ""
}

type ListEnrichedRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*EnrichedRecord      `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEnrichedRecordsResponse) Reset() {
	*x = ListEnrichedRecordsResponse{}
	mi := &file_enricher_v1_enricher_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEnrichedRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEnrichedRecordsResponse) ProtoMessage() {}

func (x *ListEnrichedRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_enricher_v1_enricher_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEnrichedRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListEnrichedRecordsResponse) Descriptor() ([]byte, []int) {
	return file_enricher_v1_enricher_proto_rawDescGZIP(), []int{13}
}

func (x *ListEnrichedRecordsResponse) GetRecords() []*EnrichedRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

var File_enricher_v1_enricher_proto protoreflect.FileDescriptor

const file_enricher_v1_enricher_proto_rawDesc = "" +
	"\n" +
	"\x1aenricher/v1/enricher.proto\x12\venricher.v1\"f\n" +
	"\x13SubmitUploadRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"\xa1\x01\n" +
	"\x14SubmitUploadResponse\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\x12+\n" +
	"\x11processing_status\x18\x02 \x01(\tR\x10processingStatus\x12\"\n" +
	"\fdeduplicated\x18\x03 \x01(\bR\fdeduplicated\x12\x1b\n" +
	"\trow_count\x18\x04 \x01(\x05R\browCount\"K\n" +
	"\x11ProcessNowRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1b\n" +
	"\tupload_id\x18\x02 \x01(\tR\buploadId\"J\n" +
	"\x12ProcessNowResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1d\n" +
	"\n" +
	"job_status\x18\x02 \x01(\tR\tjobStatus\"M\n" +
	"\x13GetJobStatusRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1b\n" +
	"\tupload_id\x18\x02 \x01(\tR\buploadId\"v\n" +
	"\vJobProgress\x12\x14\n" +
	"\x05stage\x18\x01 \x01(\tR\x05stage\x12\x18\n" +
	"\apercent\x18\x02 \x01(\x05R\apercent\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x04 \x01(\tR\tupdatedAt\"\x9c\x02\n" +
	"\x14GetJobStatusResponse\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\x12+\n" +
	"\x11processing_status\x18\x02 \x01(\tR\x10processingStatus\x12\x1d\n" +
	"\n" +
	"job_status\x18\x03 \x01(\tR\tjobStatus\x124\n" +
	"\bprogress\x18\x04 \x01(\v2\x18.enricher.v1.JobProgressR\bprogress\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\vretry_count\x18\x06 \x01(\x05R\n" +
	"retryCount\x12\x1f\n" +
	"\vmax_retries\x18\a \x01(\x05R\n" +
	"maxRetries\"\xfb\x01\n" +
	"\rUploadSummary\x12\x1b\n" +
	"\tupload_id\x18\x01 \x01(\tR\buploadId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1b\n" +
	"\trow_count\x18\x03 \x01(\x05R\browCount\x12+\n" +
	"\x11processing_status\x18\x04 \x01(\tR\x10processingStatus\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12!\n" +
	"\fprocessed_at\x18\x06 \x01(\tR\vprocessedAt\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\"~\n" +
	"\fStatusCounts\x12\x18\n" +
	"\apending\x18\x01 \x01(\x05R\apending\x12\x1e\n" +
	"\n" +
	"processing\x18\x02 \x01(\x05R\n" +
	"processing\x12\x1c\n" +
	"\tcompleted\x18\x03 \x01(\x05R\tcompleted\x12\x16\n" +
	"\x06failed\x18\x04 \x01(\x05R\x06failed\"/\n" +
	"\x12ListUploadsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"~\n" +
	"\x13ListUploadsResponse\x124\n" +
	"\auploads\x18\x01 \x03(\v2\x1a.enricher.v1.UploadSummaryR\auploads\x121\n" +
	"\x06counts\x18\x02 \x01(\v2\x19.enricher.v1.StatusCountsR\x06counts\"\x9f\x02\n" +
	"\x0eEnrichedRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tupload_id\x18\x02 \x01(\tR\buploadId\x12!\n" +
	"\fcompany_name\x18\x03 \x01(\tR\vcompanyName\x12\x18\n" +
	"\awebsite\x18\x04 \x01(\tR\awebsite\x12\x18\n" +
	"\acountry\x18\x05 \x01(\tR\acountry\x12\x12\n" +
	"\x04city\x18\x06 \x01(\tR\x04city\x12\x12\n" +
	"\x04size\x18\a \x01(\tR\x04size\x12\x1a\n" +
	"\bindustry\x18\b \x01(\tR\bindustry\x12\x18\n" +
	"\arevenue\x18\t \x01(\tR\arevenue\x12+\n" +
	"\x11enrichment_status\x18\n" +
	" \x01(\tR\x10enrichmentStatus\"T\n" +
	"\x1aListEnrichedRecordsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1b\n" +
	"\tupload_id\x18\x02 \x01(\tR\buploadId\"T\n" +
	"\x1bListEnrichedRecordsResponse\x125\n" +
	"\arecords\x18\x01 \x03(\v2\x1b.enricher.v1.EnrichedRecordR\arecords2\xc6\x03\n" +
	"\x0fEnricherService\x12S\n" +
	"\fSubmitUpload\x12 .enricher.v1.SubmitUploadRequest\x1a!.enricher.v1.SubmitUploadResponse\x12M\n" +
	"\n" +
	"ProcessNow\x12\x1e.enricher.v1.ProcessNowRequest\x1a\x1f.enricher.v1.ProcessNowResponse\x12S\n" +
	"\fGetJobStatus\x12 .enricher.v1.GetJobStatusRequest\x1a!.enricher.v1.GetJobStatusResponse\x12P\n" +
	"\vListUploads\x12\x1f.enricher.v1.ListUploadsRequest\x1a .enricher.v1.ListUploadsResponse\x12h\n" +
	"\x13ListEnrichedRecords\x12'.enricher.v1.ListEnrichedRecordsRequest\x1a(.enricher.v1.ListEnrichedRecordsResponseBNZLgithub.com/tomide-adesanmi/company-enricher/gen/proto/enricher/v1;enricherv1b\x06proto3"

var (
	file_enricher_v1_enricher_proto_rawDescOnce sync.Once
	file_enricher_v1_enricher_proto_rawDescData []byte
)

func file_enricher_v1_enricher_proto_rawDescGZIP() []byte {
	file_enricher_v1_enricher_proto_rawDescOnce.Do(func() {
		file_enricher_v1_enricher_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_enricher_v1_enricher_proto_rawDesc), len(file_enricher_v1_enricher_proto_rawDesc)))
	})
	return file_enricher_v1_enricher_proto_rawDescData
}

var file_enricher_v1_enricher_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_enricher_v1_enricher_proto_goTypes = []any{
	(*SubmitUploadRequest)(nil),         // 0: enricher.v1.SubmitUploadRequest
	(*SubmitUploadResponse)(nil),        // 1: enricher.v1.SubmitUploadResponse
	(*ProcessNowRequest)(nil),           // 2: enricher.v1.ProcessNowRequest
	(*ProcessNowResponse)(nil),          // 3: enricher.v1.ProcessNowResponse
	(*GetJobStatusRequest)(nil),         // 4: enricher.v1.GetJobStatusRequest
	(*JobProgress)(nil),                 // 5: enricher.v1.JobProgress
	(*GetJobStatusResponse)(nil),        // 6: enricher.v1.GetJobStatusResponse
	(*UploadSummary)(nil),               // 7: enricher.v1.UploadSummary
	(*StatusCounts)(nil),                // 8: enricher.v1.StatusCounts
	(*ListUploadsRequest)(nil),          // 9: enricher.v1.ListUploadsRequest
	(*ListUploadsResponse)(nil),         // 10: enricher.v1.ListUploadsResponse
	(*EnrichedRecord)(nil),              // 11: enricher.v1.EnrichedRecord
	(*ListEnrichedRecordsRequest)(nil),  // 12: enricher.v1.ListEnrichedRecordsRequest
	(*ListEnrichedRecordsResponse)(nil), // 13: enricher.v1.ListEnrichedRecordsResponse
}
var file_enricher_v1_enricher_proto_depIdxs = []int32{
	5,  // 0: enricher.v1.GetJobStatusResponse.progress:type_name -> enricher.v1.JobProgress
	7,  // 1: enricher.v1.ListUploadsResponse.uploads:type_name -> enricher.v1.UploadSummary
	8,  // 2: enricher.v1.ListUploadsResponse.counts:type_name -> enricher.v1.StatusCounts
	11, // 3: enricher.v1.ListEnrichedRecordsResponse.records:type_name -> enricher.v1.EnrichedRecord
	0,  // 4: enricher.v1.EnricherService.SubmitUpload:input_type -> enricher.v1.SubmitUploadRequest
	2,  // 5: enricher.v1.EnricherService.ProcessNow:input_type -> enricher.v1.ProcessNowRequest
	4,  // 6: enricher.v1.EnricherService.GetJobStatus:input_type -> enricher.v1.GetJobStatusRequest
	9,  // 7: enricher.v1.EnricherService.ListUploads:input_type -> enricher.v1.ListUploadsRequest
	12, // 8: enricher.v1.EnricherService.ListEnrichedRecords:input_type -> enricher.v1.ListEnrichedRecordsRequest
	1,  // 9: enricher.v1.EnricherService.SubmitUpload:output_type -> enricher.v1.SubmitUploadResponse
	3,  // 10: enricher.v1.EnricherService.ProcessNow:output_type -> enricher.v1.ProcessNowResponse
	6,  // 11: enricher.v1.EnricherService.GetJobStatus:output_type -> enricher.v1.GetJobStatusResponse
	10, // 12: enricher.v1.EnricherService.ListUploads:output_type -> enricher.v1.ListUploadsResponse
	13, // 13: enricher.v1.EnricherService.ListEnrichedRecords:output_type -> enricher.v1.ListEnrichedRecordsResponse
	9,  // [9:14] is the sub-list for method output_type
	4,  // [4:9] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_enricher_v1_enricher_proto_init() }
func file_enricher_v1_enricher_proto_init() {
	if File_enricher_v1_enricher_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_enricher_v1_enricher_proto_rawDesc), len(file_enricher_v1_enricher_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_enricher_v1_enricher_proto_goTypes,
		DependencyIndexes: file_enricher_v1_enricher_proto_depIdxs,
		MessageInfos:      file_enricher_v1_enricher_proto_msgTypes,
	}.Build()
	File_enricher_v1_enricher_proto = out.File
	file_enricher_v1_enricher_proto_goTypes = nil
	file_enricher_v1_enricher_proto_depIdxs = nil
}
