// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: scores/v1/scores.proto

package scoresv1

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

type SubmitScoreRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// local path visible to the daemon; same intake the batch tool uses
	Path          string   `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Title         string   `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Composer      string   `protobuf:"bytes,3,opt,name=composer,proto3" json:"composer,omitempty"`
	Year          int32    `protobuf:"varint,4,opt,name=year,proto3" json:"year,omitempty"`
	Categories    []string `protobuf:"bytes,5,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitScoreRequest) Reset() {
	*x = SubmitScoreRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitScoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitScoreRequest) ProtoMessage() {}

func (x *SubmitScoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitScoreRequest.ProtoReflect.Descriptor instead.
func (*SubmitScoreRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{0}
}

func (x *SubmitScoreRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *SubmitScoreRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *SubmitScoreRequest) GetComposer() string {
	if x != nil {
		return x.Composer
	}
	return ""
}

func (x *SubmitScoreRequest) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *SubmitScoreRequest) GetCategories() []string {
	if x != nil {
		return x.Categories
	}
	return nil
}

type SubmitScoreResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ScoreId        string                 `protobuf:"bytes,1,opt,name=score_id,json=scoreId,proto3" json:"score_id,omitempty"`
	JobId          string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	FileExt        string                 `protobuf:"bytes,3,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,4,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	Error          string                 `protobuf:"bytes,6,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *SubmitScoreResponse) Reset() {
	*x = SubmitScoreResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitScoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitScoreResponse) ProtoMessage() {}

func (x *SubmitScoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitScoreResponse.ProtoReflect.Descriptor instead.
func (*SubmitScoreResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitScoreResponse) GetScoreId() string {
	if x != nil {
		return x.ScoreId
	}
	return ""
}

func (x *SubmitScoreResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *SubmitScoreResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *SubmitScoreResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *SubmitScoreResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *SubmitScoreResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type SubmitDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDirectoryRequest) Reset() {
	*x = SubmitDirectoryRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDirectoryRequest) ProtoMessage() {}

func (x *SubmitDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDirectoryRequest.ProtoReflect.Descriptor instead.
func (*SubmitDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *SubmitDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type SubmitDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*SubmitScoreResponse `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	Scanned       uint32                 `protobuf:"varint,2,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,3,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,4,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDirectoryResponse) Reset() {
	*x = SubmitDirectoryResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDirectoryResponse) ProtoMessage() {}

func (x *SubmitDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDirectoryResponse.ProtoReflect.Descriptor instead.
func (*SubmitDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitDirectoryResponse) GetResults() []*SubmitScoreResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

func (x *SubmitDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *SubmitDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *SubmitDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *SubmitDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type Category struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Category) Reset() {
	*x = Category{}
	mi := &file_scores_v1_scores_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Category) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Category) ProtoMessage() {}

func (x *Category) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Category.ProtoReflect.Descriptor instead.
func (*Category) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{4}
}

func (x *Category) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Category) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type Score struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Id        string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Title     string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	Composer  string                 `protobuf:"bytes,3,opt,name=composer,proto3" json:"composer,omitempty"`
	Year      int32                  `protobuf:"varint,4,opt,name=year,proto3" json:"year,omitempty"`
	Processed bool                   `protobuf:"varint,5,opt,name=processed,proto3" json:"processed,omitempty"`
	Lyrics    string                 `protobuf:"bytes,6,opt,name=lyrics,proto3" json:"lyrics,omitempty"`
	// analysis features as a JSON document
	ResultsJson   string      `protobuf:"bytes,7,opt,name=results_json,json=resultsJson,proto3" json:"results_json,omitempty"`
	Summary       string      `protobuf:"bytes,8,opt,name=summary,proto3" json:"summary,omitempty"`
	UploadedAt    string      `protobuf:"bytes,9,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	Categories    []*Category `protobuf:"bytes,10,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Score) Reset() {
	*x = Score{}
	mi := &file_scores_v1_scores_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Score) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Score) ProtoMessage() {}

func (x *Score) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Score.ProtoReflect.Descriptor instead.
func (*Score) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{5}
}

func (x *Score) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Score) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Score) GetComposer() string {
	if x != nil {
		return x.Composer
	}
	return ""
}

func (x *Score) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *Score) GetProcessed() bool {
	if x != nil {
		return x.Processed
	}
	return false
}

func (x *Score) GetLyrics() string {
	if x != nil {
		return x.Lyrics
	}
	return ""
}

func (x *Score) GetResultsJson() string {
	if x != nil {
		return x.ResultsJson
	}
	return ""
}

func (x *Score) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *Score) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Score) GetCategories() []*Category {
	if x != nil {
		return x.Categories
	}
	return nil
}

type GetScoreRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScoreId       string                 `protobuf:"bytes,1,opt,name=score_id,json=scoreId,proto3" json:"score_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScoreRequest) Reset() {
	*x = GetScoreRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScoreRequest) ProtoMessage() {}

func (x *GetScoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScoreRequest.ProtoReflect.Descriptor instead.
func (*GetScoreRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{6}
}

func (x *GetScoreRequest) GetScoreId() string {
	if x != nil {
		return x.ScoreId
	}
	return ""
}

type GetScoreResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Score         *Score                 `protobuf:"bytes,1,opt,name=score,proto3" json:"score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScoreResponse) Reset() {
	*x = GetScoreResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScoreResponse) ProtoMessage() {}

func (x *GetScoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScoreResponse.ProtoReflect.Descriptor instead.
func (*GetScoreResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{7}
}

func (x *GetScoreResponse) GetScore() *Score {
	if x != nil {
		return x.Score
	}
	return nil
}

type ListScoresRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProcessedOnly bool                   `protobuf:"varint,1,opt,name=processed_only,json=processedOnly,proto3" json:"processed_only,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScoresRequest) Reset() {
	*x = ListScoresRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScoresRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScoresRequest) ProtoMessage() {}

func (x *ListScoresRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScoresRequest.ProtoReflect.Descriptor instead.
func (*ListScoresRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{8}
}

func (x *ListScoresRequest) GetProcessedOnly() bool {
	if x != nil {
		return x.ProcessedOnly
	}
	return false
}

func (x *ListScoresRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListScoresRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListScoresResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scores        []*Score               `protobuf:"bytes,1,rep,name=scores,proto3" json:"scores,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScoresResponse) Reset() {
	*x = ListScoresResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScoresResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScoresResponse) ProtoMessage() {}

func (x *ListScoresResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScoresResponse.ProtoReflect.Descriptor instead.
func (*ListScoresResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{9}
}

func (x *ListScoresResponse) GetScores() []*Score {
	if x != nil {
		return x.Scores
	}
	return nil
}

type DeleteScoreRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScoreId       string                 `protobuf:"bytes,1,opt,name=score_id,json=scoreId,proto3" json:"score_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteScoreRequest) Reset() {
	*x = DeleteScoreRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteScoreRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteScoreRequest) ProtoMessage() {}

func (x *DeleteScoreRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteScoreRequest.ProtoReflect.Descriptor instead.
func (*DeleteScoreRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteScoreRequest) GetScoreId() string {
	if x != nil {
		return x.ScoreId
	}
	return ""
}

type DeleteScoreResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteScoreResponse) Reset() {
	*x = DeleteScoreResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteScoreResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteScoreResponse) ProtoMessage() {}

func (x *DeleteScoreResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteScoreResponse.ProtoReflect.Descriptor instead.
func (*DeleteScoreResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{11}
}

type ListCategoriesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesRequest) Reset() {
	*x = ListCategoriesRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesRequest) ProtoMessage() {}

func (x *ListCategoriesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesRequest.ProtoReflect.Descriptor instead.
func (*ListCategoriesRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{12}
}

type ListCategoriesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []*Category            `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCategoriesResponse) Reset() {
	*x = ListCategoriesResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCategoriesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCategoriesResponse) ProtoMessage() {}

func (x *ListCategoriesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCategoriesResponse.ProtoReflect.Descriptor instead.
func (*ListCategoriesResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{13}
}

func (x *ListCategoriesResponse) GetCategories() []*Category {
	if x != nil {
		return x.Categories
	}
	return nil
}

type CreateCategoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCategoryRequest) Reset() {
	*x = CreateCategoryRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCategoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCategoryRequest) ProtoMessage() {}

func (x *CreateCategoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCategoryRequest.ProtoReflect.Descriptor instead.
func (*CreateCategoryRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{14}
}

func (x *CreateCategoryRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type CreateCategoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      *Category              `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCategoryResponse) Reset() {
	*x = CreateCategoryResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCategoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCategoryResponse) ProtoMessage() {}

func (x *CreateCategoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCategoryResponse.ProtoReflect.Descriptor instead.
func (*CreateCategoryResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{15}
}

func (x *CreateCategoryResponse) GetCategory() *Category {
	if x != nil {
		return x.Category
	}
	return nil
}

type ExportScoresRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProcessedOnly bool                   `protobuf:"varint,1,opt,name=processed_only,json=processedOnly,proto3" json:"processed_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportScoresRequest) Reset() {
	*x = ExportScoresRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportScoresRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportScoresRequest) ProtoMessage() {}

func (x *ExportScoresRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportScoresRequest.ProtoReflect.Descriptor instead.
func (*ExportScoresRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{16}
}

func (x *ExportScoresRequest) GetProcessedOnly() bool {
	if x != nil {
		return x.ProcessedOnly
	}
	return false
}

type ExportScoresResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	RowCount      uint32                 `protobuf:"varint,2,opt,name=row_count,json=rowCount,proto3" json:"row_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportScoresResponse) Reset() {
	*x = ExportScoresResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportScoresResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportScoresResponse) ProtoMessage() {}

func (x *ExportScoresResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportScoresResponse.ProtoReflect.Descriptor instead.
func (*ExportScoresResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{17}
}

func (x *ExportScoresResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportScoresResponse) GetRowCount() uint32 {
	if x != nil {
		return x.RowCount
	}
	return 0
}

type JobStatus struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	JobId        string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ScoreId      string                 `protobuf:"bytes,2,opt,name=score_id,json=scoreId,proto3" json:"score_id,omitempty"`
	Stage        string                 `protobuf:"bytes,3,opt,name=stage,proto3" json:"stage,omitempty"`
	AttemptCount int32                  `protobuf:"varint,4,opt,name=attempt_count,json=attemptCount,proto3" json:"attempt_count,omitempty"`
	// artifact kind -> store key
	Artifacts       map[string]string `protobuf:"bytes,5,rep,name=artifacts,proto3" json:"artifacts,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	ErrorKind       string            `protobuf:"bytes,6,opt,name=error_kind,json=errorKind,proto3" json:"error_kind,omitempty"`
	ErrorStage      string            `protobuf:"bytes,7,opt,name=error_stage,json=errorStage,proto3" json:"error_stage,omitempty"`
	ErrorMessage    string            `protobuf:"bytes,8,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CancelRequested bool              `protobuf:"varint,9,opt,name=cancel_requested,json=cancelRequested,proto3" json:"cancel_requested,omitempty"`
	NotBefore       string            `protobuf:"bytes,10,opt,name=not_before,json=notBefore,proto3" json:"not_before,omitempty"`
	CreatedAt       string            `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string            `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *JobStatus) Reset() {
	*x = JobStatus{}
	mi := &file_scores_v1_scores_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobStatus) ProtoMessage() {}

func (x *JobStatus) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobStatus.ProtoReflect.Descriptor instead.
func (*JobStatus) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{18}
}

func (x *JobStatus) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *JobStatus) GetScoreId() string {
	if x != nil {
		return x.ScoreId
	}
	return ""
}

func (x *JobStatus) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *JobStatus) GetAttemptCount() int32 {
	if x != nil {
		return x.AttemptCount
	}
	return 0
}

func (x *JobStatus) GetArtifacts() map[string]string {
	if x != nil {
		return x.Artifacts
	}
	return nil
}

func (x *JobStatus) GetErrorKind() string {
	if x != nil {
		return x.ErrorKind
	}
	return ""
}

func (x *JobStatus) GetErrorStage() string {
	if x != nil {
		return x.ErrorStage
	}
	return ""
}

func (x *JobStatus) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *JobStatus) GetCancelRequested() bool {
	if x != nil {
		return x.CancelRequested
	}
	return false
}

func (x *JobStatus) GetNotBefore() string {
	if x != nil {
		return x.NotBefore
	}
	return ""
}

func (x *JobStatus) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *JobStatus) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[19]
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
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{19}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *JobStatus             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[20]
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
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{20}
}

func (x *GetJobStatusResponse) GetJob() *JobStatus {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScoreId       string                 `protobuf:"bytes,1,opt,name=score_id,json=scoreId,proto3" json:"score_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{21}
}

func (x *ListJobsRequest) GetScoreId() string {
	if x != nil {
		return x.ScoreId
	}
	return ""
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*JobStatus           `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{22}
}

func (x *ListJobsResponse) GetJobs() []*JobStatus {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{23}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      bool                   `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{24}
}

func (x *CancelJobResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

type GetArtifactRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	JobId string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	// musicxml | midi | extracted_text | summary
	Kind          string `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetArtifactRequest) Reset() {
	*x = GetArtifactRequest{}
	mi := &file_scores_v1_scores_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetArtifactRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetArtifactRequest) ProtoMessage() {}

func (x *GetArtifactRequest) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetArtifactRequest.ProtoReflect.Descriptor instead.
func (*GetArtifactRequest) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{25}
}

func (x *GetArtifactRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetArtifactRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

type GetArtifactResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          []byte                 `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	FileName      string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetArtifactResponse) Reset() {
	*x = GetArtifactResponse{}
	mi := &file_scores_v1_scores_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetArtifactResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetArtifactResponse) ProtoMessage() {}

func (x *GetArtifactResponse) ProtoReflect() protoreflect.Message {
	mi := &file_scores_v1_scores_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetArtifactResponse.ProtoReflect.Descriptor instead.
func (*GetArtifactResponse) Descriptor() ([]byte, []int) {
	return file_scores_v1_scores_proto_rawDescGZIP(), []int{26}
}

func (x *GetArtifactResponse) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *GetArtifactResponse) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *GetArtifactResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

var File_scores_v1_scores_proto protoreflect.FileDescriptor

const file_scores_v1_scores_proto_rawDesc = "" +
	"\n" +
	"\x16scores/v1/scores.proto\x12\tscores.v1\"\x8e\x01\n" +
	"\x12SubmitScoreRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1a\n" +
	"\bcomposer\x18\x03 \x01(\tR\bcomposer\x12\x12\n" +
	"\x04year\x18\x04 \x01(\x05R\x04year\x12\x1e\n" +
	"\n" +
	"categories\x18\x05 \x03(\tR\n" +
	"categories\"\xc3\x01\n" +
	"\x13SubmitScoreResponse\x12\x19\n" +
	"\bscore_id\x18\x01 \x01(\tR\ascoreId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x19\n" +
	"\bfile_ext\x18\x03 \x01(\tR\afileExt\x12(\n" +
	"\x10content_hash_hex\x18\x04 \x01(\tR\x0econtentHashHex\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x14\n" +
	"\x05error\x18\x06 \x01(\tR\x05error\"V\n" +
	"\x16SubmitDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xbd\x01\n" +
	"\x17SubmitDirectoryResponse\x128\n" +
	"\aresults\x18\x01 \x03(\v2\x1e.scores.v1.SubmitScoreResponseR\aresults\x12\x18\n" +
	"\ascanned\x18\x02 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x03 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x04 \x01(\rR\tsucceeded\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\".\n" +
	"\bCategory\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"\xa6\x02\n" +
	"\x05Score\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1a\n" +
	"\bcomposer\x18\x03 \x01(\tR\bcomposer\x12\x12\n" +
	"\x04year\x18\x04 \x01(\x05R\x04year\x12\x1c\n" +
	"\tprocessed\x18\x05 \x01(\bR\tprocessed\x12\x16\n" +
	"\x06lyrics\x18\x06 \x01(\tR\x06lyrics\x12!\n" +
	"\fresults_json\x18\a \x01(\tR\vresultsJson\x12\x18\n" +
	"\asummary\x18\b \x01(\tR\asummary\x12\x1f\n" +
	"\vuploaded_at\x18\t \x01(\tR\n" +
	"uploadedAt\x123\n" +
	"\n" +
	"categories\x18\n" +
	" \x03(\v2\x13.scores.v1.CategoryR\n" +
	"categories\",\n" +
	"\x0fGetScoreRequest\x12\x19\n" +
	"\bscore_id\x18\x01 \x01(\tR\ascoreId\":\n" +
	"\x10GetScoreResponse\x12&\n" +
	"\x05score\x18\x01 \x01(\v2\x10.scores.v1.ScoreR\x05score\"h\n" +
	"\x11ListScoresRequest\x12%\n" +
	"\x0eprocessed_only\x18\x01 \x01(\bR\rprocessedOnly\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\">\n" +
	"\x12ListScoresResponse\x12(\n" +
	"\x06scores\x18\x01 \x03(\v2\x10.scores.v1.ScoreR\x06scores\"/\n" +
	"\x12DeleteScoreRequest\x12\x19\n" +
	"\bscore_id\x18\x01 \x01(\tR\ascoreId\"\x15\n" +
	"\x13DeleteScoreResponse\"\x17\n" +
	"\x15ListCategoriesRequest\"M\n" +
	"\x16ListCategoriesResponse\x123\n" +
	"\n" +
	"categories\x18\x01 \x03(\v2\x13.scores.v1.CategoryR\n" +
	"categories\"+\n" +
	"\x15CreateCategoryRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\"I\n" +
	"\x16CreateCategoryResponse\x12/\n" +
	"\bcategory\x18\x01 \x01(\v2\x13.scores.v1.CategoryR\bcategory\"<\n" +
	"\x13ExportScoresRequest\x12%\n" +
	"\x0eprocessed_only\x18\x01 \x01(\bR\rprocessedOnly\"G\n" +
	"\x14ExportScoresResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1b\n" +
	"\trow_count\x18\x02 \x01(\rR\browCount\"\xe6\x03\n" +
	"\tJobStatus\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x19\n" +
	"\bscore_id\x18\x02 \x01(\tR\ascoreId\x12\x14\n" +
	"\x05stage\x18\x03 \x01(\tR\x05stage\x12#\n" +
	"\rattempt_count\x18\x04 \x01(\x05R\fattemptCount\x12A\n" +
	"\tartifacts\x18\x05 \x03(\v2#.scores.v1.JobStatus.ArtifactsEntryR\tartifacts\x12\x1d\n" +
	"\n" +
	"error_kind\x18\x06 \x01(\tR\terrorKind\x12\x1f\n" +
	"\verror_stage\x18\a \x01(\tR\n" +
	"errorStage\x12#\n" +
	"\rerror_message\x18\b \x01(\tR\ferrorMessage\x12)\n" +
	"\x10cancel_requested\x18\t \x01(\bR\x0fcancelRequested\x12\x1d\n" +
	"\n" +
	"not_before\x18\n" +
	" \x01(\tR\tnotBefore\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\x1a<\n" +
	"\x0eArtifactsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\",\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\">\n" +
	"\x14GetJobStatusResponse\x12&\n" +
	"\x03job\x18\x01 \x01(\v2\x14.scores.v1.JobStatusR\x03job\",\n" +
	"\x0fListJobsRequest\x12\x19\n" +
	"\bscore_id\x18\x01 \x01(\tR\ascoreId\"<\n" +
	"\x10ListJobsResponse\x12(\n" +
	"\x04jobs\x18\x01 \x03(\v2\x14.scores.v1.JobStatusR\x04jobs\")\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"/\n" +
	"\x11CancelJobResponse\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\bR\baccepted\"?\n" +
	"\x12GetArtifactRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\"i\n" +
	"\x13GetArtifactResponse\x12\x12\n" +
	"\x04data\x18\x01 \x01(\fR\x04data\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName2\x94\x05\n" +
	"\rScoresService\x12L\n" +
	"\vSubmitScore\x12\x1d.scores.v1.SubmitScoreRequest\x1a\x1e.scores.v1.SubmitScoreResponse\x12X\n" +
	"\x0fSubmitDirectory\x12!.scores.v1.SubmitDirectoryRequest\x1a\".scores.v1.SubmitDirectoryResponse\x12C\n" +
	"\bGetScore\x12\x1a.scores.v1.GetScoreRequest\x1a\x1b.scores.v1.GetScoreResponse\x12I\n" +
	"\n" +
	"ListScores\x12\x1c.scores.v1.ListScoresRequest\x1a\x1d.scores.v1.ListScoresResponse\x12L\n" +
	"\vDeleteScore\x12\x1d.scores.v1.DeleteScoreRequest\x1a\x1e.scores.v1.DeleteScoreResponse\x12U\n" +
	"\x0eListCategories\x12 .scores.v1.ListCategoriesRequest\x1a!.scores.v1.ListCategoriesResponse\x12U\n" +
	"\x0eCreateCategory\x12 .scores.v1.CreateCategoryRequest\x1a!.scores.v1.CreateCategoryResponse\x12O\n" +
	"\fExportScores\x12\x1e.scores.v1.ExportScoresRequest\x1a\x1f.scores.v1.ExportScoresResponse2\xb9\x02\n" +
	"\vJobsService\x12O\n" +
	"\fGetJobStatus\x12\x1e.scores.v1.GetJobStatusRequest\x1a\x1f.scores.v1.GetJobStatusResponse\x12C\n" +
	"\bListJobs\x12\x1a.scores.v1.ListJobsRequest\x1a\x1b.scores.v1.ListJobsResponse\x12F\n" +
	"\tCancelJob\x12\x1b.scores.v1.CancelJobRequest\x1a\x1c.scores.v1.CancelJobResponse\x12L\n" +
	"\vGetArtifact\x12\x1d.scores.v1.GetArtifactRequest\x1a\x1e.scores.v1.GetArtifactResponseBBZ@github.com/nota-music/nota-pipeline/gen/proto/scores/v1;scoresv1b\x06proto3"

var (
	file_scores_v1_scores_proto_rawDescOnce sync.Once
	file_scores_v1_scores_proto_rawDescData []byte
)

func file_scores_v1_scores_proto_rawDescGZIP() []byte {
	file_scores_v1_scores_proto_rawDescOnce.Do(func() {
		file_scores_v1_scores_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_scores_v1_scores_proto_rawDesc), len(file_scores_v1_scores_proto_rawDesc)))
	})
	return file_scores_v1_scores_proto_rawDescData
}

var file_scores_v1_scores_proto_msgTypes = make([]protoimpl.MessageInfo, 28)
var file_scores_v1_scores_proto_goTypes = []any{
	(*SubmitScoreRequest)(nil),      // 0: scores.v1.SubmitScoreRequest
	(*SubmitScoreResponse)(nil),     // 1: scores.v1.SubmitScoreResponse
	(*SubmitDirectoryRequest)(nil),  // 2: scores.v1.SubmitDirectoryRequest
	(*SubmitDirectoryResponse)(nil), // 3: scores.v1.SubmitDirectoryResponse
	(*Category)(nil),                // 4: scores.v1.Category
	(*Score)(nil),                   // 5: scores.v1.Score
	(*GetScoreRequest)(nil),         // 6: scores.v1.GetScoreRequest
	(*GetScoreResponse)(nil),        // 7: scores.v1.GetScoreResponse
	(*ListScoresRequest)(nil),       // 8: scores.v1.ListScoresRequest
	(*ListScoresResponse)(nil),      // 9: scores.v1.ListScoresResponse
	(*DeleteScoreRequest)(nil),      // 10: scores.v1.DeleteScoreRequest
	(*DeleteScoreResponse)(nil),     // 11: scores.v1.DeleteScoreResponse
	(*ListCategoriesRequest)(nil),   // 12: scores.v1.ListCategoriesRequest
	(*ListCategoriesResponse)(nil),  // 13: scores.v1.ListCategoriesResponse
	(*CreateCategoryRequest)(nil),   // 14: scores.v1.CreateCategoryRequest
	(*CreateCategoryResponse)(nil),  // 15: scores.v1.CreateCategoryResponse
	(*ExportScoresRequest)(nil),     // 16: scores.v1.ExportScoresRequest
	(*ExportScoresResponse)(nil),    // 17: scores.v1.ExportScoresResponse
	(*JobStatus)(nil),               // 18: scores.v1.JobStatus
	(*GetJobStatusRequest)(nil),     // 19: scores.v1.GetJobStatusRequest
	(*GetJobStatusResponse)(nil),    // 20: scores.v1.GetJobStatusResponse
	(*ListJobsRequest)(nil),         // 21: scores.v1.ListJobsRequest
	(*ListJobsResponse)(nil),        // 22: scores.v1.ListJobsResponse
	(*CancelJobRequest)(nil),        // 23: scores.v1.CancelJobRequest
	(*CancelJobResponse)(nil),       // 24: scores.v1.CancelJobResponse
	(*GetArtifactRequest)(nil),      // 25: scores.v1.GetArtifactRequest
	(*GetArtifactResponse)(nil),     // 26: scores.v1.GetArtifactResponse
	nil,                             // 27: scores.v1.JobStatus.ArtifactsEntry
}
var file_scores_v1_scores_proto_depIdxs = []int32{
	1,  // 0: scores.v1.SubmitDirectoryResponse.results:type_name -> scores.v1.SubmitScoreResponse
	4,  // 1: scores.v1.Score.categories:type_name -> scores.v1.Category
	5,  // 2: scores.v1.GetScoreResponse.score:type_name -> scores.v1.Score
	5,  // 3: scores.v1.ListScoresResponse.scores:type_name -> scores.v1.Score
	4,  // 4: scores.v1.ListCategoriesResponse.categories:type_name -> scores.v1.Category
	4,  // 5: scores.v1.CreateCategoryResponse.category:type_name -> scores.v1.Category
	27, // 6: scores.v1.JobStatus.artifacts:type_name -> scores.v1.JobStatus.ArtifactsEntry
	18, // 7: scores.v1.GetJobStatusResponse.job:type_name -> scores.v1.JobStatus
	18, // 8: scores.v1.ListJobsResponse.jobs:type_name -> scores.v1.JobStatus
	0,  // 9: scores.v1.ScoresService.SubmitScore:input_type -> scores.v1.SubmitScoreRequest
	2,  // 10: scores.v1.ScoresService.SubmitDirectory:input_type -> scores.v1.SubmitDirectoryRequest
	6,  // 11: scores.v1.ScoresService.GetScore:input_type -> scores.v1.GetScoreRequest
	8,  // 12: scores.v1.ScoresService.ListScores:input_type -> scores.v1.ListScoresRequest
	10, // 13: scores.v1.ScoresService.DeleteScore:input_type -> scores.v1.DeleteScoreRequest
	12, // 14: scores.v1.ScoresService.ListCategories:input_type -> scores.v1.ListCategoriesRequest
	14, // 15: scores.v1.ScoresService.CreateCategory:input_type -> scores.v1.CreateCategoryRequest
	16, // 16: scores.v1.ScoresService.ExportScores:input_type -> scores.v1.ExportScoresRequest
	19, // 17: scores.v1.JobsService.GetJobStatus:input_type -> scores.v1.GetJobStatusRequest
	21, // 18: scores.v1.JobsService.ListJobs:input_type -> scores.v1.ListJobsRequest
	23, // 19: scores.v1.JobsService.CancelJob:input_type -> scores.v1.CancelJobRequest
	25, // 20: scores.v1.JobsService.GetArtifact:input_type -> scores.v1.GetArtifactRequest
	1,  // 21: scores.v1.ScoresService.SubmitScore:output_type -> scores.v1.SubmitScoreResponse
	3,  // 22: scores.v1.ScoresService.SubmitDirectory:output_type -> scores.v1.SubmitDirectoryResponse
	7,  // 23: scores.v1.ScoresService.GetScore:output_type -> scores.v1.GetScoreResponse
	9,  // 24: scores.v1.ScoresService.ListScores:output_type -> scores.v1.ListScoresResponse
	11, // 25: scores.v1.ScoresService.DeleteScore:output_type -> scores.v1.DeleteScoreResponse
	13, // 26: scores.v1.ScoresService.ListCategories:output_type -> scores.v1.ListCategoriesResponse
	15, // 27: scores.v1.ScoresService.CreateCategory:output_type -> scores.v1.CreateCategoryResponse
	17, // 28: scores.v1.ScoresService.ExportScores:output_type -> scores.v1.ExportScoresResponse
	20, // 29: scores.v1.JobsService.GetJobStatus:output_type -> scores.v1.GetJobStatusResponse
	22, // 30: scores.v1.JobsService.ListJobs:output_type -> scores.v1.ListJobsResponse
	24, // 31: scores.v1.JobsService.CancelJob:output_type -> scores.v1.CancelJobResponse
	26, // 32: scores.v1.JobsService.GetArtifact:output_type -> scores.v1.GetArtifactResponse
	21, // [21:33] is the sub-list for method output_type
	9,  // [9:21] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_scores_v1_scores_proto_init() }
func file_scores_v1_scores_proto_init() {
	if File_scores_v1_scores_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_scores_v1_scores_proto_rawDesc), len(file_scores_v1_scores_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   28,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_scores_v1_scores_proto_goTypes,
		DependencyIndexes: file_scores_v1_scores_proto_depIdxs,
		MessageInfos:      file_scores_v1_scores_proto_msgTypes,
	}.Build()
	File_scores_v1_scores_proto = out.File
	file_scores_v1_scores_proto_goTypes = nil
	file_scores_v1_scores_proto_depIdxs = nil
}
