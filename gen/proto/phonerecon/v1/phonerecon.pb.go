// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: proto/phonerecon/v1/phonerecon.proto

package phonereconv1

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

type Screenshot struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	FilePath      string                 `protobuf:"bytes,3,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	Source        string                 `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	Processed     bool                   `protobuf:"varint,5,opt,name=processed,proto3" json:"processed,omitempty"`
	Notes         string                 `protobuf:"bytes,6,opt,name=notes,proto3" json:"notes,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,7,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	NumbersCount  int32                  `protobuf:"varint,8,opt,name=numbers_count,json=numbersCount,proto3" json:"numbers_count,omitempty"`
	OcrText       string                 `protobuf:"bytes,9,opt,name=ocr_text,json=ocrText,proto3" json:"ocr_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Screenshot) Reset() {
	*x = Screenshot{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Screenshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Screenshot) ProtoMessage() {}

func (x *Screenshot) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Screenshot.ProtoReflect.Descriptor instead.
func (*Screenshot) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{0}
}

func (x *Screenshot) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Screenshot) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Screenshot) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *Screenshot) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Screenshot) GetProcessed() bool {
	if x != nil {
		return x.Processed
	}
	return false
}

func (x *Screenshot) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Screenshot) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Screenshot) GetNumbersCount() int32 {
	if x != nil {
		return x.NumbersCount
	}
	return 0
}

func (x *Screenshot) GetOcrText() string {
	if x != nil {
		return x.OcrText
	}
	return ""
}

type GroupRef struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Color         string                 `protobuf:"bytes,3,opt,name=color,proto3" json:"color,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GroupRef) Reset() {
	*x = GroupRef{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GroupRef) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GroupRef) ProtoMessage() {}

func (x *GroupRef) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GroupRef.ProtoReflect.Descriptor instead.
func (*GroupRef) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{1}
}

func (x *GroupRef) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *GroupRef) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *GroupRef) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

type ExtractedNumber struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ScreenshotId     string                 `protobuf:"bytes,2,opt,name=screenshot_id,json=screenshotId,proto3" json:"screenshot_id,omitempty"`
	RawNumber        string                 `protobuf:"bytes,3,opt,name=raw_number,json=rawNumber,proto3" json:"raw_number,omitempty"`
	NormalizedNumber string                 `protobuf:"bytes,4,opt,name=normalized_number,json=normalizedNumber,proto3" json:"normalized_number,omitempty"`
	CountryCode      string                 `protobuf:"bytes,5,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	CountryName      string                 `protobuf:"bytes,6,opt,name=country_name,json=countryName,proto3" json:"country_name,omitempty"`
	Carrier          string                 `protobuf:"bytes,7,opt,name=carrier,proto3" json:"carrier,omitempty"`
	NumberType       string                 `protobuf:"bytes,8,opt,name=number_type,json=numberType,proto3" json:"number_type,omitempty"`
	IsValid          bool                   `protobuf:"varint,9,opt,name=is_valid,json=isValid,proto3" json:"is_valid,omitempty"`
	ExtractedAt      string                 `protobuf:"bytes,10,opt,name=extracted_at,json=extractedAt,proto3" json:"extracted_at,omitempty"` // RFC3339
	Groups           []*GroupRef            `protobuf:"bytes,11,rep,name=groups,proto3" json:"groups,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExtractedNumber) Reset() {
	*x = ExtractedNumber{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedNumber) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedNumber) ProtoMessage() {}

func (x *ExtractedNumber) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedNumber.ProtoReflect.Descriptor instead.
func (*ExtractedNumber) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractedNumber) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractedNumber) GetScreenshotId() string {
	if x != nil {
		return x.ScreenshotId
	}
	return ""
}

func (x *ExtractedNumber) GetRawNumber() string {
	if x != nil {
		return x.RawNumber
	}
	return ""
}

func (x *ExtractedNumber) GetNormalizedNumber() string {
	if x != nil {
		return x.NormalizedNumber
	}
	return ""
}

func (x *ExtractedNumber) GetCountryCode() string {
	if x != nil {
		return x.CountryCode
	}
	return ""
}

func (x *ExtractedNumber) GetCountryName() string {
	if x != nil {
		return x.CountryName
	}
	return ""
}

func (x *ExtractedNumber) GetCarrier() string {
	if x != nil {
		return x.Carrier
	}
	return ""
}

func (x *ExtractedNumber) GetNumberType() string {
	if x != nil {
		return x.NumberType
	}
	return ""
}

func (x *ExtractedNumber) GetIsValid() bool {
	if x != nil {
		return x.IsValid
	}
	return false
}

func (x *ExtractedNumber) GetExtractedAt() string {
	if x != nil {
		return x.ExtractedAt
	}
	return ""
}

func (x *ExtractedNumber) GetGroups() []*GroupRef {
	if x != nil {
		return x.Groups
	}
	return nil
}

type Group struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Color         string                 `protobuf:"bytes,4,opt,name=color,proto3" json:"color,omitempty"`
	IsSystem      bool                   `protobuf:"varint,5,opt,name=is_system,json=isSystem,proto3" json:"is_system,omitempty"`
	CountryCode   string                 `protobuf:"bytes,6,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	NumbersCount  int32                  `protobuf:"varint,8,opt,name=numbers_count,json=numbersCount,proto3" json:"numbers_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Group) Reset() {
	*x = Group{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Group) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Group) ProtoMessage() {}

func (x *Group) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Group.ProtoReflect.Descriptor instead.
func (*Group) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{3}
}

func (x *Group) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Group) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Group) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Group) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

func (x *Group) GetIsSystem() bool {
	if x != nil {
		return x.IsSystem
	}
	return false
}

func (x *Group) GetCountryCode() string {
	if x != nil {
		return x.CountryCode
	}
	return ""
}

func (x *Group) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Group) GetNumbersCount() int32 {
	if x != nil {
		return x.NumbersCount
	}
	return 0
}

type ExistingContact struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	NormalizedNumber string                 `protobuf:"bytes,2,opt,name=normalized_number,json=normalizedNumber,proto3" json:"normalized_number,omitempty"`
	RawNumber        string                 `protobuf:"bytes,3,opt,name=raw_number,json=rawNumber,proto3" json:"raw_number,omitempty"`
	Name             string                 `protobuf:"bytes,4,opt,name=name,proto3" json:"name,omitempty"`
	Email            string                 `protobuf:"bytes,5,opt,name=email,proto3" json:"email,omitempty"`
	Company          string                 `protobuf:"bytes,6,opt,name=company,proto3" json:"company,omitempty"`
	Source           string                 `protobuf:"bytes,7,opt,name=source,proto3" json:"source,omitempty"`
	ExternalId       string                 `protobuf:"bytes,8,opt,name=external_id,json=externalId,proto3" json:"external_id,omitempty"`
	ImportedAt       string                 `protobuf:"bytes,9,opt,name=imported_at,json=importedAt,proto3" json:"imported_at,omitempty"` // RFC3339
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExistingContact) Reset() {
	*x = ExistingContact{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExistingContact) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExistingContact) ProtoMessage() {}

func (x *ExistingContact) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExistingContact.ProtoReflect.Descriptor instead.
func (*ExistingContact) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{4}
}

func (x *ExistingContact) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExistingContact) GetNormalizedNumber() string {
	if x != nil {
		return x.NormalizedNumber
	}
	return ""
}

func (x *ExistingContact) GetRawNumber() string {
	if x != nil {
		return x.RawNumber
	}
	return ""
}

func (x *ExistingContact) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ExistingContact) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *ExistingContact) GetCompany() string {
	if x != nil {
		return x.Company
	}
	return ""
}

func (x *ExistingContact) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ExistingContact) GetExternalId() string {
	if x != nil {
		return x.ExternalId
	}
	return ""
}

func (x *ExistingContact) GetImportedAt() string {
	if x != nil {
		return x.ImportedAt
	}
	return ""
}

type ComparisonStats struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TotalExtracted int32                  `protobuf:"varint,1,opt,name=total_extracted,json=totalExtracted,proto3" json:"total_extracted,omitempty"`
	TotalContacts  int32                  `protobuf:"varint,2,opt,name=total_contacts,json=totalContacts,proto3" json:"total_contacts,omitempty"`
	ExactMatches   int32                  `protobuf:"varint,3,opt,name=exact_matches,json=exactMatches,proto3" json:"exact_matches,omitempty"`
	PartialMatches int32                  `protobuf:"varint,4,opt,name=partial_matches,json=partialMatches,proto3" json:"partial_matches,omitempty"`
	NewNumbers     int32                  `protobuf:"varint,5,opt,name=new_numbers,json=newNumbers,proto3" json:"new_numbers,omitempty"`
	NotCompared    int32                  `protobuf:"varint,6,opt,name=not_compared,json=notCompared,proto3" json:"not_compared,omitempty"`
	MatchRate      float64                `protobuf:"fixed64,7,opt,name=match_rate,json=matchRate,proto3" json:"match_rate,omitempty"`
	ComparedAt     string                 `protobuf:"bytes,8,opt,name=compared_at,json=comparedAt,proto3" json:"compared_at,omitempty"` // RFC3339
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ComparisonStats) Reset() {
	*x = ComparisonStats{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ComparisonStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ComparisonStats) ProtoMessage() {}

func (x *ComparisonStats) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ComparisonStats.ProtoReflect.Descriptor instead.
func (*ComparisonStats) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{5}
}

func (x *ComparisonStats) GetTotalExtracted() int32 {
	if x != nil {
		return x.TotalExtracted
	}
	return 0
}

func (x *ComparisonStats) GetTotalContacts() int32 {
	if x != nil {
		return x.TotalContacts
	}
	return 0
}

func (x *ComparisonStats) GetExactMatches() int32 {
	if x != nil {
		return x.ExactMatches
	}
	return 0
}

func (x *ComparisonStats) GetPartialMatches() int32 {
	if x != nil {
		return x.PartialMatches
	}
	return 0
}

func (x *ComparisonStats) GetNewNumbers() int32 {
	if x != nil {
		return x.NewNumbers
	}
	return 0
}

func (x *ComparisonStats) GetNotCompared() int32 {
	if x != nil {
		return x.NotCompared
	}
	return 0
}

func (x *ComparisonStats) GetMatchRate() float64 {
	if x != nil {
		return x.MatchRate
	}
	return 0
}

func (x *ComparisonStats) GetComparedAt() string {
	if x != nil {
		return x.ComparedAt
	}
	return ""
}

type Classification struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NumberId      string                 `protobuf:"bytes,1,opt,name=number_id,json=numberId,proto3" json:"number_id,omitempty"`
	MatchType     string                 `protobuf:"bytes,2,opt,name=match_type,json=matchType,proto3" json:"match_type,omitempty"` // existing-exact | existing-partial | new | unknown
	ContactId     string                 `protobuf:"bytes,3,opt,name=contact_id,json=contactId,proto3" json:"contact_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Classification) Reset() {
	*x = Classification{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Classification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Classification) ProtoMessage() {}

func (x *Classification) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Classification.ProtoReflect.Descriptor instead.
func (*Classification) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{6}
}

func (x *Classification) GetNumberId() string {
	if x != nil {
		return x.NumberId
	}
	return ""
}

func (x *Classification) GetMatchType() string {
	if x != nil {
		return x.MatchType
	}
	return ""
}

func (x *Classification) GetContactId() string {
	if x != nil {
		return x.ContactId
	}
	return ""
}

type ImportStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TotalRows     int32                  `protobuf:"varint,1,opt,name=total_rows,json=totalRows,proto3" json:"total_rows,omitempty"`
	Imported      int32                  `protobuf:"varint,2,opt,name=imported,proto3" json:"imported,omitempty"`
	Duplicates    int32                  `protobuf:"varint,3,opt,name=duplicates,proto3" json:"duplicates,omitempty"`
	InvalidPhones int32                  `protobuf:"varint,4,opt,name=invalid_phones,json=invalidPhones,proto3" json:"invalid_phones,omitempty"`
	Skipped       int32                  `protobuf:"varint,5,opt,name=skipped,proto3" json:"skipped,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportStats) Reset() {
	*x = ImportStats{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportStats) ProtoMessage() {}

func (x *ImportStats) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportStats.ProtoReflect.Descriptor instead.
func (*ImportStats) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{7}
}

func (x *ImportStats) GetTotalRows() int32 {
	if x != nil {
		return x.TotalRows
	}
	return 0
}

func (x *ImportStats) GetImported() int32 {
	if x != nil {
		return x.Imported
	}
	return 0
}

func (x *ImportStats) GetDuplicates() int32 {
	if x != nil {
		return x.Duplicates
	}
	return 0
}

func (x *ImportStats) GetInvalidPhones() int32 {
	if x != nil {
		return x.InvalidPhones
	}
	return 0
}

func (x *ImportStats) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

type ExtractionSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScreenshotId  string                 `protobuf:"bytes,1,opt,name=screenshot_id,json=screenshotId,proto3" json:"screenshot_id,omitempty"`
	Candidates    int32                  `protobuf:"varint,2,opt,name=candidates,proto3" json:"candidates,omitempty"`
	Stored        int32                  `protobuf:"varint,3,opt,name=stored,proto3" json:"stored,omitempty"`
	Deduplicated  int32                  `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Rejected      int32                  `protobuf:"varint,5,opt,name=rejected,proto3" json:"rejected,omitempty"`
	Error         string                 `protobuf:"bytes,6,opt,name=error,proto3" json:"error,omitempty"` // per-item failure, empty on success
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractionSummary) Reset() {
	*x = ExtractionSummary{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionSummary) ProtoMessage() {}

func (x *ExtractionSummary) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionSummary.ProtoReflect.Descriptor instead.
func (*ExtractionSummary) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{8}
}

func (x *ExtractionSummary) GetScreenshotId() string {
	if x != nil {
		return x.ScreenshotId
	}
	return ""
}

func (x *ExtractionSummary) GetCandidates() int32 {
	if x != nil {
		return x.Candidates
	}
	return 0
}

func (x *ExtractionSummary) GetStored() int32 {
	if x != nil {
		return x.Stored
	}
	return 0
}

func (x *ExtractionSummary) GetDeduplicated() int32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *ExtractionSummary) GetRejected() int32 {
	if x != nil {
		return x.Rejected
	}
	return 0
}

func (x *ExtractionSummary) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type RegisterScreenshotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Source        string                 `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterScreenshotRequest) Reset() {
	*x = RegisterScreenshotRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterScreenshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterScreenshotRequest) ProtoMessage() {}

func (x *RegisterScreenshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterScreenshotRequest.ProtoReflect.Descriptor instead.
func (*RegisterScreenshotRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{9}
}

func (x *RegisterScreenshotRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *RegisterScreenshotRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type RegisterScreenshotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Screenshot    *Screenshot            `protobuf:"bytes,1,opt,name=screenshot,proto3" json:"screenshot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterScreenshotResponse) Reset() {
	*x = RegisterScreenshotResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterScreenshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterScreenshotResponse) ProtoMessage() {}

func (x *RegisterScreenshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterScreenshotResponse.ProtoReflect.Descriptor instead.
func (*RegisterScreenshotResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{10}
}

func (x *RegisterScreenshotResponse) GetScreenshot() *Screenshot {
	if x != nil {
		return x.Screenshot
	}
	return nil
}

type RegisterDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	Source        string                 `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterDirectoryRequest) Reset() {
	*x = RegisterDirectoryRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDirectoryRequest) ProtoMessage() {}

func (x *RegisterDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDirectoryRequest.ProtoReflect.Descriptor instead.
func (*RegisterDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{11}
}

func (x *RegisterDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *RegisterDirectoryRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *RegisterDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type RegisterDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Screenshots   []*Screenshot          `protobuf:"bytes,1,rep,name=screenshots,proto3" json:"screenshots,omitempty"`
	Scanned       uint32                 `protobuf:"varint,2,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,3,opt,name=matched,proto3" json:"matched,omitempty"`
	Registered    uint32                 `protobuf:"varint,4,opt,name=registered,proto3" json:"registered,omitempty"`
	Skipped       uint32                 `protobuf:"varint,5,opt,name=skipped,proto3" json:"skipped,omitempty"` // already registered on a previous walk
	Failed        uint32                 `protobuf:"varint,6,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterDirectoryResponse) Reset() {
	*x = RegisterDirectoryResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDirectoryResponse) ProtoMessage() {}

func (x *RegisterDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDirectoryResponse.ProtoReflect.Descriptor instead.
func (*RegisterDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{12}
}

func (x *RegisterDirectoryResponse) GetScreenshots() []*Screenshot {
	if x != nil {
		return x.Screenshots
	}
	return nil
}

func (x *RegisterDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *RegisterDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *RegisterDirectoryResponse) GetRegistered() uint32 {
	if x != nil {
		return x.Registered
	}
	return 0
}

func (x *RegisterDirectoryResponse) GetSkipped() uint32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *RegisterDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type GetScreenshotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScreenshotRequest) Reset() {
	*x = GetScreenshotRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScreenshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScreenshotRequest) ProtoMessage() {}

func (x *GetScreenshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScreenshotRequest.ProtoReflect.Descriptor instead.
func (*GetScreenshotRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{13}
}

func (x *GetScreenshotRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetScreenshotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Screenshot    *Screenshot            `protobuf:"bytes,1,opt,name=screenshot,proto3" json:"screenshot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScreenshotResponse) Reset() {
	*x = GetScreenshotResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScreenshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScreenshotResponse) ProtoMessage() {}

func (x *GetScreenshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScreenshotResponse.ProtoReflect.Descriptor instead.
func (*GetScreenshotResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{14}
}

func (x *GetScreenshotResponse) GetScreenshot() *Screenshot {
	if x != nil {
		return x.Screenshot
	}
	return nil
}

type ListScreenshotsRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Page     int32                  `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	PageSize int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Source   string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	// processed filter: unset = all
	Processed     *bool `protobuf:"varint,4,opt,name=processed,proto3,oneof" json:"processed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScreenshotsRequest) Reset() {
	*x = ListScreenshotsRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScreenshotsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScreenshotsRequest) ProtoMessage() {}

func (x *ListScreenshotsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScreenshotsRequest.ProtoReflect.Descriptor instead.
func (*ListScreenshotsRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{15}
}

func (x *ListScreenshotsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListScreenshotsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListScreenshotsRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ListScreenshotsRequest) GetProcessed() bool {
	if x != nil && x.Processed != nil {
		return *x.Processed
	}
	return false
}

type ListScreenshotsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Screenshots   []*Screenshot          `protobuf:"bytes,1,rep,name=screenshots,proto3" json:"screenshots,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScreenshotsResponse) Reset() {
	*x = ListScreenshotsResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScreenshotsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScreenshotsResponse) ProtoMessage() {}

func (x *ListScreenshotsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScreenshotsResponse.ProtoReflect.Descriptor instead.
func (*ListScreenshotsResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{16}
}

func (x *ListScreenshotsResponse) GetScreenshots() []*Screenshot {
	if x != nil {
		return x.Screenshots
	}
	return nil
}

func (x *ListScreenshotsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type UpdateScreenshotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Source        *string                `protobuf:"bytes,2,opt,name=source,proto3,oneof" json:"source,omitempty"`
	Notes         *string                `protobuf:"bytes,3,opt,name=notes,proto3,oneof" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateScreenshotRequest) Reset() {
	*x = UpdateScreenshotRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateScreenshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateScreenshotRequest) ProtoMessage() {}

func (x *UpdateScreenshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateScreenshotRequest.ProtoReflect.Descriptor instead.
func (*UpdateScreenshotRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{17}
}

func (x *UpdateScreenshotRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateScreenshotRequest) GetSource() string {
	if x != nil && x.Source != nil {
		return *x.Source
	}
	return ""
}

func (x *UpdateScreenshotRequest) GetNotes() string {
	if x != nil && x.Notes != nil {
		return *x.Notes
	}
	return ""
}

type UpdateScreenshotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Screenshot    *Screenshot            `protobuf:"bytes,1,opt,name=screenshot,proto3" json:"screenshot,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateScreenshotResponse) Reset() {
	*x = UpdateScreenshotResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateScreenshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateScreenshotResponse) ProtoMessage() {}

func (x *UpdateScreenshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateScreenshotResponse.ProtoReflect.Descriptor instead.
func (*UpdateScreenshotResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{18}
}

func (x *UpdateScreenshotResponse) GetScreenshot() *Screenshot {
	if x != nil {
		return x.Screenshot
	}
	return nil
}

type DeleteScreenshotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteScreenshotRequest) Reset() {
	*x = DeleteScreenshotRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteScreenshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteScreenshotRequest) ProtoMessage() {}

func (x *DeleteScreenshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteScreenshotRequest.ProtoReflect.Descriptor instead.
func (*DeleteScreenshotRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{19}
}

func (x *DeleteScreenshotRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteScreenshotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteScreenshotResponse) Reset() {
	*x = DeleteScreenshotResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteScreenshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteScreenshotResponse) ProtoMessage() {}

func (x *DeleteScreenshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteScreenshotResponse.ProtoReflect.Descriptor instead.
func (*DeleteScreenshotResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{20}
}

func (x *DeleteScreenshotResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type ExtractScreenshotRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScreenshotId  string                 `protobuf:"bytes,1,opt,name=screenshot_id,json=screenshotId,proto3" json:"screenshot_id,omitempty"`
	Source        string                 `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"` // overrides the stored source when set
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractScreenshotRequest) Reset() {
	*x = ExtractScreenshotRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractScreenshotRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractScreenshotRequest) ProtoMessage() {}

func (x *ExtractScreenshotRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractScreenshotRequest.ProtoReflect.Descriptor instead.
func (*ExtractScreenshotRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{21}
}

func (x *ExtractScreenshotRequest) GetScreenshotId() string {
	if x != nil {
		return x.ScreenshotId
	}
	return ""
}

func (x *ExtractScreenshotRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type ExtractScreenshotResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summary       *ExtractionSummary     `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractScreenshotResponse) Reset() {
	*x = ExtractScreenshotResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractScreenshotResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractScreenshotResponse) ProtoMessage() {}

func (x *ExtractScreenshotResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractScreenshotResponse.ProtoReflect.Descriptor instead.
func (*ExtractScreenshotResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{22}
}

func (x *ExtractScreenshotResponse) GetSummary() *ExtractionSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type ExtractBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScreenshotIds []string               `protobuf:"bytes,1,rep,name=screenshot_ids,json=screenshotIds,proto3" json:"screenshot_ids,omitempty"`
	Source        string                 `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	// when set and screenshot_ids is empty, extract every unprocessed screenshot
	AllUnprocessed bool `protobuf:"varint,3,opt,name=all_unprocessed,json=allUnprocessed,proto3" json:"all_unprocessed,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ExtractBatchRequest) Reset() {
	*x = ExtractBatchRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractBatchRequest) ProtoMessage() {}

func (x *ExtractBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractBatchRequest.ProtoReflect.Descriptor instead.
func (*ExtractBatchRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{23}
}

func (x *ExtractBatchRequest) GetScreenshotIds() []string {
	if x != nil {
		return x.ScreenshotIds
	}
	return nil
}

func (x *ExtractBatchRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ExtractBatchRequest) GetAllUnprocessed() bool {
	if x != nil {
		return x.AllUnprocessed
	}
	return false
}

type ExtractBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summaries     []*ExtractionSummary   `protobuf:"bytes,1,rep,name=summaries,proto3" json:"summaries,omitempty"`
	Succeeded     int32                  `protobuf:"varint,2,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractBatchResponse) Reset() {
	*x = ExtractBatchResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractBatchResponse) ProtoMessage() {}

func (x *ExtractBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractBatchResponse.ProtoReflect.Descriptor instead.
func (*ExtractBatchResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{24}
}

func (x *ExtractBatchResponse) GetSummaries() []*ExtractionSummary {
	if x != nil {
		return x.Summaries
	}
	return nil
}

func (x *ExtractBatchResponse) GetSucceeded() int32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *ExtractBatchResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type ListNumbersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Page          int32                  `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	CountryCode   string                 `protobuf:"bytes,3,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	IsValid       *bool                  `protobuf:"varint,4,opt,name=is_valid,json=isValid,proto3,oneof" json:"is_valid,omitempty"`
	ScreenshotId  string                 `protobuf:"bytes,5,opt,name=screenshot_id,json=screenshotId,proto3" json:"screenshot_id,omitempty"`
	Search        string                 `protobuf:"bytes,6,opt,name=search,proto3" json:"search,omitempty"` // substring of raw or normalized
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNumbersRequest) Reset() {
	*x = ListNumbersRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNumbersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNumbersRequest) ProtoMessage() {}

func (x *ListNumbersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNumbersRequest.ProtoReflect.Descriptor instead.
func (*ListNumbersRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{25}
}

func (x *ListNumbersRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListNumbersRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListNumbersRequest) GetCountryCode() string {
	if x != nil {
		return x.CountryCode
	}
	return ""
}

func (x *ListNumbersRequest) GetIsValid() bool {
	if x != nil && x.IsValid != nil {
		return *x.IsValid
	}
	return false
}

func (x *ListNumbersRequest) GetScreenshotId() string {
	if x != nil {
		return x.ScreenshotId
	}
	return ""
}

func (x *ListNumbersRequest) GetSearch() string {
	if x != nil {
		return x.Search
	}
	return ""
}

type ListNumbersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Numbers       []*ExtractedNumber     `protobuf:"bytes,1,rep,name=numbers,proto3" json:"numbers,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNumbersResponse) Reset() {
	*x = ListNumbersResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNumbersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNumbersResponse) ProtoMessage() {}

func (x *ListNumbersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNumbersResponse.ProtoReflect.Descriptor instead.
func (*ListNumbersResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{26}
}

func (x *ListNumbersResponse) GetNumbers() []*ExtractedNumber {
	if x != nil {
		return x.Numbers
	}
	return nil
}

func (x *ListNumbersResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type GetNumberStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNumberStatsRequest) Reset() {
	*x = GetNumberStatsRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNumberStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNumberStatsRequest) ProtoMessage() {}

func (x *GetNumberStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNumberStatsRequest.ProtoReflect.Descriptor instead.
func (*GetNumberStatsRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{27}
}

type CountryCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CountryCode   string                 `protobuf:"bytes,1,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	CountryName   string                 `protobuf:"bytes,2,opt,name=country_name,json=countryName,proto3" json:"country_name,omitempty"`
	Count         int32                  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CountryCount) Reset() {
	*x = CountryCount{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CountryCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CountryCount) ProtoMessage() {}

func (x *CountryCount) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CountryCount.ProtoReflect.Descriptor instead.
func (*CountryCount) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{28}
}

func (x *CountryCount) GetCountryCode() string {
	if x != nil {
		return x.CountryCode
	}
	return ""
}

func (x *CountryCount) GetCountryName() string {
	if x != nil {
		return x.CountryName
	}
	return ""
}

func (x *CountryCount) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type TypeCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NumberType    string                 `protobuf:"bytes,1,opt,name=number_type,json=numberType,proto3" json:"number_type,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TypeCount) Reset() {
	*x = TypeCount{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TypeCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TypeCount) ProtoMessage() {}

func (x *TypeCount) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TypeCount.ProtoReflect.Descriptor instead.
func (*TypeCount) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{29}
}

func (x *TypeCount) GetNumberType() string {
	if x != nil {
		return x.NumberType
	}
	return ""
}

func (x *TypeCount) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type GetNumberStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CountryCounts []*CountryCount        `protobuf:"bytes,1,rep,name=country_counts,json=countryCounts,proto3" json:"country_counts,omitempty"`
	TypeCounts    []*TypeCount           `protobuf:"bytes,2,rep,name=type_counts,json=typeCounts,proto3" json:"type_counts,omitempty"`
	Total         int32                  `protobuf:"varint,3,opt,name=total,proto3" json:"total,omitempty"`
	Valid         int32                  `protobuf:"varint,4,opt,name=valid,proto3" json:"valid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNumberStatsResponse) Reset() {
	*x = GetNumberStatsResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNumberStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNumberStatsResponse) ProtoMessage() {}

func (x *GetNumberStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNumberStatsResponse.ProtoReflect.Descriptor instead.
func (*GetNumberStatsResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{30}
}

func (x *GetNumberStatsResponse) GetCountryCounts() []*CountryCount {
	if x != nil {
		return x.CountryCounts
	}
	return nil
}

func (x *GetNumberStatsResponse) GetTypeCounts() []*TypeCount {
	if x != nil {
		return x.TypeCounts
	}
	return nil
}

func (x *GetNumberStatsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *GetNumberStatsResponse) GetValid() int32 {
	if x != nil {
		return x.Valid
	}
	return 0
}

type ListDuplicatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDuplicatesRequest) Reset() {
	*x = ListDuplicatesRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDuplicatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDuplicatesRequest) ProtoMessage() {}

func (x *ListDuplicatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDuplicatesRequest.ProtoReflect.Descriptor instead.
func (*ListDuplicatesRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{31}
}

type DuplicateGroup struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	NormalizedNumber string                 `protobuf:"bytes,1,opt,name=normalized_number,json=normalizedNumber,proto3" json:"normalized_number,omitempty"`
	Numbers          []*ExtractedNumber     `protobuf:"bytes,2,rep,name=numbers,proto3" json:"numbers,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *DuplicateGroup) Reset() {
	*x = DuplicateGroup{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DuplicateGroup) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DuplicateGroup) ProtoMessage() {}

func (x *DuplicateGroup) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DuplicateGroup.ProtoReflect.Descriptor instead.
func (*DuplicateGroup) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{32}
}

func (x *DuplicateGroup) GetNormalizedNumber() string {
	if x != nil {
		return x.NormalizedNumber
	}
	return ""
}

func (x *DuplicateGroup) GetNumbers() []*ExtractedNumber {
	if x != nil {
		return x.Numbers
	}
	return nil
}

type ListDuplicatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Duplicates    []*DuplicateGroup      `protobuf:"bytes,1,rep,name=duplicates,proto3" json:"duplicates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDuplicatesResponse) Reset() {
	*x = ListDuplicatesResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDuplicatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDuplicatesResponse) ProtoMessage() {}

func (x *ListDuplicatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDuplicatesResponse.ProtoReflect.Descriptor instead.
func (*ListDuplicatesResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{33}
}

func (x *ListDuplicatesResponse) GetDuplicates() []*DuplicateGroup {
	if x != nil {
		return x.Duplicates
	}
	return nil
}

type DeleteNumbersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ids           []string               `protobuf:"bytes,1,rep,name=ids,proto3" json:"ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteNumbersRequest) Reset() {
	*x = DeleteNumbersRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteNumbersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteNumbersRequest) ProtoMessage() {}

func (x *DeleteNumbersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteNumbersRequest.ProtoReflect.Descriptor instead.
func (*DeleteNumbersRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{34}
}

func (x *DeleteNumbersRequest) GetIds() []string {
	if x != nil {
		return x.Ids
	}
	return nil
}

type DeleteNumbersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       int32                  `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteNumbersResponse) Reset() {
	*x = DeleteNumbersResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteNumbersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteNumbersResponse) ProtoMessage() {}

func (x *DeleteNumbersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteNumbersResponse.ProtoReflect.Descriptor instead.
func (*DeleteNumbersResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{35}
}

func (x *DeleteNumbersResponse) GetDeleted() int32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

type CreateGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	Color         string                 `protobuf:"bytes,3,opt,name=color,proto3" json:"color,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateGroupRequest) Reset() {
	*x = CreateGroupRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateGroupRequest) ProtoMessage() {}

func (x *CreateGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateGroupRequest.ProtoReflect.Descriptor instead.
func (*CreateGroupRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{36}
}

func (x *CreateGroupRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateGroupRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateGroupRequest) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

type CreateGroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Group         *Group                 `protobuf:"bytes,1,opt,name=group,proto3" json:"group,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateGroupResponse) Reset() {
	*x = CreateGroupResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateGroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateGroupResponse) ProtoMessage() {}

func (x *CreateGroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateGroupResponse.ProtoReflect.Descriptor instead.
func (*CreateGroupResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{37}
}

func (x *CreateGroupResponse) GetGroup() *Group {
	if x != nil {
		return x.Group
	}
	return nil
}

type GetGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetGroupRequest) Reset() {
	*x = GetGroupRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetGroupRequest) ProtoMessage() {}

func (x *GetGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetGroupRequest.ProtoReflect.Descriptor instead.
func (*GetGroupRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{38}
}

func (x *GetGroupRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetGroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Group         *Group                 `protobuf:"bytes,1,opt,name=group,proto3" json:"group,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetGroupResponse) Reset() {
	*x = GetGroupResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetGroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetGroupResponse) ProtoMessage() {}

func (x *GetGroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetGroupResponse.ProtoReflect.Descriptor instead.
func (*GetGroupResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{39}
}

func (x *GetGroupResponse) GetGroup() *Group {
	if x != nil {
		return x.Group
	}
	return nil
}

type ListGroupsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	IncludeSystem bool                   `protobuf:"varint,1,opt,name=include_system,json=includeSystem,proto3" json:"include_system,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGroupsRequest) Reset() {
	*x = ListGroupsRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGroupsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGroupsRequest) ProtoMessage() {}

func (x *ListGroupsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGroupsRequest.ProtoReflect.Descriptor instead.
func (*ListGroupsRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{40}
}

func (x *ListGroupsRequest) GetIncludeSystem() bool {
	if x != nil {
		return x.IncludeSystem
	}
	return false
}

type ListGroupsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Groups        []*Group               `protobuf:"bytes,1,rep,name=groups,proto3" json:"groups,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGroupsResponse) Reset() {
	*x = ListGroupsResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGroupsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGroupsResponse) ProtoMessage() {}

func (x *ListGroupsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGroupsResponse.ProtoReflect.Descriptor instead.
func (*ListGroupsResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{41}
}

func (x *ListGroupsResponse) GetGroups() []*Group {
	if x != nil {
		return x.Groups
	}
	return nil
}

type UpdateGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          *string                `protobuf:"bytes,2,opt,name=name,proto3,oneof" json:"name,omitempty"`
	Description   *string                `protobuf:"bytes,3,opt,name=description,proto3,oneof" json:"description,omitempty"`
	Color         *string                `protobuf:"bytes,4,opt,name=color,proto3,oneof" json:"color,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateGroupRequest) Reset() {
	*x = UpdateGroupRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateGroupRequest) ProtoMessage() {}

func (x *UpdateGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateGroupRequest.ProtoReflect.Descriptor instead.
func (*UpdateGroupRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{42}
}

func (x *UpdateGroupRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateGroupRequest) GetName() string {
	if x != nil && x.Name != nil {
		return *x.Name
	}
	return ""
}

func (x *UpdateGroupRequest) GetDescription() string {
	if x != nil && x.Description != nil {
		return *x.Description
	}
	return ""
}

func (x *UpdateGroupRequest) GetColor() string {
	if x != nil && x.Color != nil {
		return *x.Color
	}
	return ""
}

type UpdateGroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Group         *Group                 `protobuf:"bytes,1,opt,name=group,proto3" json:"group,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateGroupResponse) Reset() {
	*x = UpdateGroupResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateGroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateGroupResponse) ProtoMessage() {}

func (x *UpdateGroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateGroupResponse.ProtoReflect.Descriptor instead.
func (*UpdateGroupResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{43}
}

func (x *UpdateGroupResponse) GetGroup() *Group {
	if x != nil {
		return x.Group
	}
	return nil
}

type DeleteGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteGroupRequest) Reset() {
	*x = DeleteGroupRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteGroupRequest) ProtoMessage() {}

func (x *DeleteGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteGroupRequest.ProtoReflect.Descriptor instead.
func (*DeleteGroupRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{44}
}

func (x *DeleteGroupRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteGroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteGroupResponse) Reset() {
	*x = DeleteGroupResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteGroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteGroupResponse) ProtoMessage() {}

func (x *DeleteGroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteGroupResponse.ProtoReflect.Descriptor instead.
func (*DeleteGroupResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{45}
}

func (x *DeleteGroupResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type AddNumbersToGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	NumberIds     []string               `protobuf:"bytes,2,rep,name=number_ids,json=numberIds,proto3" json:"number_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddNumbersToGroupRequest) Reset() {
	*x = AddNumbersToGroupRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddNumbersToGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddNumbersToGroupRequest) ProtoMessage() {}

func (x *AddNumbersToGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddNumbersToGroupRequest.ProtoReflect.Descriptor instead.
func (*AddNumbersToGroupRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{46}
}

func (x *AddNumbersToGroupRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *AddNumbersToGroupRequest) GetNumberIds() []string {
	if x != nil {
		return x.NumberIds
	}
	return nil
}

type AddNumbersToGroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Added         int32                  `protobuf:"varint,1,opt,name=added,proto3" json:"added,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddNumbersToGroupResponse) Reset() {
	*x = AddNumbersToGroupResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddNumbersToGroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddNumbersToGroupResponse) ProtoMessage() {}

func (x *AddNumbersToGroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddNumbersToGroupResponse.ProtoReflect.Descriptor instead.
func (*AddNumbersToGroupResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{47}
}

func (x *AddNumbersToGroupResponse) GetAdded() int32 {
	if x != nil {
		return x.Added
	}
	return 0
}

type RemoveNumbersFromGroupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	NumberIds     []string               `protobuf:"bytes,2,rep,name=number_ids,json=numberIds,proto3" json:"number_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveNumbersFromGroupRequest) Reset() {
	*x = RemoveNumbersFromGroupRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveNumbersFromGroupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveNumbersFromGroupRequest) ProtoMessage() {}

func (x *RemoveNumbersFromGroupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveNumbersFromGroupRequest.ProtoReflect.Descriptor instead.
func (*RemoveNumbersFromGroupRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{48}
}

func (x *RemoveNumbersFromGroupRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *RemoveNumbersFromGroupRequest) GetNumberIds() []string {
	if x != nil {
		return x.NumberIds
	}
	return nil
}

type RemoveNumbersFromGroupResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Removed       int32                  `protobuf:"varint,1,opt,name=removed,proto3" json:"removed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveNumbersFromGroupResponse) Reset() {
	*x = RemoveNumbersFromGroupResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveNumbersFromGroupResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveNumbersFromGroupResponse) ProtoMessage() {}

func (x *RemoveNumbersFromGroupResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveNumbersFromGroupResponse.ProtoReflect.Descriptor instead.
func (*RemoveNumbersFromGroupResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{49}
}

func (x *RemoveNumbersFromGroupResponse) GetRemoved() int32 {
	if x != nil {
		return x.Removed
	}
	return 0
}

type ListGroupNumbersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	GroupId       string                 `protobuf:"bytes,1,opt,name=group_id,json=groupId,proto3" json:"group_id,omitempty"`
	Page          int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGroupNumbersRequest) Reset() {
	*x = ListGroupNumbersRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[50]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGroupNumbersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGroupNumbersRequest) ProtoMessage() {}

func (x *ListGroupNumbersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[50]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGroupNumbersRequest.ProtoReflect.Descriptor instead.
func (*ListGroupNumbersRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{50}
}

func (x *ListGroupNumbersRequest) GetGroupId() string {
	if x != nil {
		return x.GroupId
	}
	return ""
}

func (x *ListGroupNumbersRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListGroupNumbersRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListGroupNumbersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Numbers       []*ExtractedNumber     `protobuf:"bytes,1,rep,name=numbers,proto3" json:"numbers,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListGroupNumbersResponse) Reset() {
	*x = ListGroupNumbersResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[51]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListGroupNumbersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListGroupNumbersResponse) ProtoMessage() {}

func (x *ListGroupNumbersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[51]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListGroupNumbersResponse.ProtoReflect.Descriptor instead.
func (*ListGroupNumbersResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{51}
}

func (x *ListGroupNumbersResponse) GetNumbers() []*ExtractedNumber {
	if x != nil {
		return x.Numbers
	}
	return nil
}

func (x *ListGroupNumbersResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type PreviewImportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CsvData       []byte                 `protobuf:"bytes,1,opt,name=csv_data,json=csvData,proto3" json:"csv_data,omitempty"`
	SampleRows    int32                  `protobuf:"varint,2,opt,name=sample_rows,json=sampleRows,proto3" json:"sample_rows,omitempty"` // default 5
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviewImportRequest) Reset() {
	*x = PreviewImportRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[52]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewImportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewImportRequest) ProtoMessage() {}

func (x *PreviewImportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[52]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewImportRequest.ProtoReflect.Descriptor instead.
func (*PreviewImportRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{52}
}

func (x *PreviewImportRequest) GetCsvData() []byte {
	if x != nil {
		return x.CsvData
	}
	return nil
}

func (x *PreviewImportRequest) GetSampleRows() int32 {
	if x != nil {
		return x.SampleRows
	}
	return 0
}

type ColumnScore struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          string                 `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"`
	Header        string                 `protobuf:"bytes,2,opt,name=header,proto3" json:"header,omitempty"`
	Value         float64                `protobuf:"fixed64,3,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ColumnScore) Reset() {
	*x = ColumnScore{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[53]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ColumnScore) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ColumnScore) ProtoMessage() {}

func (x *ColumnScore) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[53]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ColumnScore.ProtoReflect.Descriptor instead.
func (*ColumnScore) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{53}
}

func (x *ColumnScore) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *ColumnScore) GetHeader() string {
	if x != nil {
		return x.Header
	}
	return ""
}

func (x *ColumnScore) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

type PreviewImportResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Headers          []string               `protobuf:"bytes,1,rep,name=headers,proto3" json:"headers,omitempty"`
	SampleRows       []*SampleRow           `protobuf:"bytes,2,rep,name=sample_rows,json=sampleRows,proto3" json:"sample_rows,omitempty"`
	SuggestedMapping map[string]string      `protobuf:"bytes,3,rep,name=suggested_mapping,json=suggestedMapping,proto3" json:"suggested_mapping,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"` // role -> header
	Scores           []*ColumnScore         `protobuf:"bytes,4,rep,name=scores,proto3" json:"scores,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *PreviewImportResponse) Reset() {
	*x = PreviewImportResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[54]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewImportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewImportResponse) ProtoMessage() {}

func (x *PreviewImportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[54]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewImportResponse.ProtoReflect.Descriptor instead.
func (*PreviewImportResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{54}
}

func (x *PreviewImportResponse) GetHeaders() []string {
	if x != nil {
		return x.Headers
	}
	return nil
}

func (x *PreviewImportResponse) GetSampleRows() []*SampleRow {
	if x != nil {
		return x.SampleRows
	}
	return nil
}

func (x *PreviewImportResponse) GetSuggestedMapping() map[string]string {
	if x != nil {
		return x.SuggestedMapping
	}
	return nil
}

func (x *PreviewImportResponse) GetScores() []*ColumnScore {
	if x != nil {
		return x.Scores
	}
	return nil
}

type SampleRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Values        []string               `protobuf:"bytes,1,rep,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SampleRow) Reset() {
	*x = SampleRow{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[55]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SampleRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SampleRow) ProtoMessage() {}

func (x *SampleRow) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[55]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SampleRow.ProtoReflect.Descriptor instead.
func (*SampleRow) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{55}
}

func (x *SampleRow) GetValues() []string {
	if x != nil {
		return x.Values
	}
	return nil
}

type ImportContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CsvData       []byte                 `protobuf:"bytes,1,opt,name=csv_data,json=csvData,proto3" json:"csv_data,omitempty"`
	Mapping       map[string]string      `protobuf:"bytes,2,rep,name=mapping,proto3" json:"mapping,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"` // role -> header; phone required
	Source        string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`                                                                             // label, default "csv"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportContactsRequest) Reset() {
	*x = ImportContactsRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[56]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportContactsRequest) ProtoMessage() {}

func (x *ImportContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[56]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportContactsRequest.ProtoReflect.Descriptor instead.
func (*ImportContactsRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{56}
}

func (x *ImportContactsRequest) GetCsvData() []byte {
	if x != nil {
		return x.CsvData
	}
	return nil
}

func (x *ImportContactsRequest) GetMapping() map[string]string {
	if x != nil {
		return x.Mapping
	}
	return nil
}

func (x *ImportContactsRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type ImportContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stats         *ImportStats           `protobuf:"bytes,1,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportContactsResponse) Reset() {
	*x = ImportContactsResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[57]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportContactsResponse) ProtoMessage() {}

func (x *ImportContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[57]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportContactsResponse.ProtoReflect.Descriptor instead.
func (*ImportContactsResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{57}
}

func (x *ImportContactsResponse) GetStats() *ImportStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

type ListContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Page          int32                  `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Search        string                 `protobuf:"bytes,3,opt,name=search,proto3" json:"search,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsRequest) Reset() {
	*x = ListContactsRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[58]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsRequest) ProtoMessage() {}

func (x *ListContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[58]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsRequest.ProtoReflect.Descriptor instead.
func (*ListContactsRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{58}
}

func (x *ListContactsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListContactsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListContactsRequest) GetSearch() string {
	if x != nil {
		return x.Search
	}
	return ""
}

type ListContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Contacts      []*ExistingContact     `protobuf:"bytes,1,rep,name=contacts,proto3" json:"contacts,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListContactsResponse) Reset() {
	*x = ListContactsResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[59]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListContactsResponse) ProtoMessage() {}

func (x *ListContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[59]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListContactsResponse.ProtoReflect.Descriptor instead.
func (*ListContactsResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{59}
}

func (x *ListContactsResponse) GetContacts() []*ExistingContact {
	if x != nil {
		return x.Contacts
	}
	return nil
}

func (x *ListContactsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type ClearContactsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearContactsRequest) Reset() {
	*x = ClearContactsRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[60]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearContactsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearContactsRequest) ProtoMessage() {}

func (x *ClearContactsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[60]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearContactsRequest.ProtoReflect.Descriptor instead.
func (*ClearContactsRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{60}
}

type ClearContactsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       int32                  `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearContactsResponse) Reset() {
	*x = ClearContactsResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[61]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearContactsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearContactsResponse) ProtoMessage() {}

func (x *ClearContactsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[61]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearContactsResponse.ProtoReflect.Descriptor instead.
func (*ClearContactsResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{61}
}

func (x *ClearContactsResponse) GetDeleted() int32 {
	if x != nil {
		return x.Deleted
	}
	return 0
}

type RunComparisonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunComparisonRequest) Reset() {
	*x = RunComparisonRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[62]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunComparisonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunComparisonRequest) ProtoMessage() {}

func (x *RunComparisonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[62]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunComparisonRequest.ProtoReflect.Descriptor instead.
func (*RunComparisonRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{62}
}

type RunComparisonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stats         *ComparisonStats       `protobuf:"bytes,1,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunComparisonResponse) Reset() {
	*x = RunComparisonResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[63]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunComparisonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunComparisonResponse) ProtoMessage() {}

func (x *RunComparisonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[63]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunComparisonResponse.ProtoReflect.Descriptor instead.
func (*RunComparisonResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{63}
}

func (x *RunComparisonResponse) GetStats() *ComparisonStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

type GetLatestStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestStatsRequest) Reset() {
	*x = GetLatestStatsRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[64]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestStatsRequest) ProtoMessage() {}

func (x *GetLatestStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[64]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestStatsRequest.ProtoReflect.Descriptor instead.
func (*GetLatestStatsRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{64}
}

type GetLatestStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Stats         *ComparisonStats       `protobuf:"bytes,1,opt,name=stats,proto3" json:"stats,omitempty"` // zero-valued when no run happened yet
	Found         bool                   `protobuf:"varint,2,opt,name=found,proto3" json:"found,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestStatsResponse) Reset() {
	*x = GetLatestStatsResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[65]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestStatsResponse) ProtoMessage() {}

func (x *GetLatestStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[65]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestStatsResponse.ProtoReflect.Descriptor instead.
func (*GetLatestStatsResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{65}
}

func (x *GetLatestStatsResponse) GetStats() *ComparisonStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

func (x *GetLatestStatsResponse) GetFound() bool {
	if x != nil {
		return x.Found
	}
	return false
}

type ListClassificationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Page          int32                  `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	MatchType     string                 `protobuf:"bytes,3,opt,name=match_type,json=matchType,proto3" json:"match_type,omitempty"` // filter: existing-exact | existing-partial | new | unknown
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClassificationsRequest) Reset() {
	*x = ListClassificationsRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[66]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClassificationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClassificationsRequest) ProtoMessage() {}

func (x *ListClassificationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[66]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClassificationsRequest.ProtoReflect.Descriptor instead.
func (*ListClassificationsRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{66}
}

func (x *ListClassificationsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListClassificationsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListClassificationsRequest) GetMatchType() string {
	if x != nil {
		return x.MatchType
	}
	return ""
}

type ListClassificationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Numbers       []*ClassifiedNumber    `protobuf:"bytes,1,rep,name=numbers,proto3" json:"numbers,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClassificationsResponse) Reset() {
	*x = ListClassificationsResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[67]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClassificationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClassificationsResponse) ProtoMessage() {}

func (x *ListClassificationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[67]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClassificationsResponse.ProtoReflect.Descriptor instead.
func (*ListClassificationsResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{67}
}

func (x *ListClassificationsResponse) GetNumbers() []*ClassifiedNumber {
	if x != nil {
		return x.Numbers
	}
	return nil
}

func (x *ListClassificationsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type ClassifiedNumber struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Number         *ExtractedNumber       `protobuf:"bytes,1,opt,name=number,proto3" json:"number,omitempty"`
	Classification *Classification        `protobuf:"bytes,2,opt,name=classification,proto3" json:"classification,omitempty"`
	Contact        *ExistingContact       `protobuf:"bytes,3,opt,name=contact,proto3" json:"contact,omitempty"` // set for exact and partial
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ClassifiedNumber) Reset() {
	*x = ClassifiedNumber{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[68]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClassifiedNumber) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClassifiedNumber) ProtoMessage() {}

func (x *ClassifiedNumber) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[68]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClassifiedNumber.ProtoReflect.Descriptor instead.
func (*ClassifiedNumber) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{68}
}

func (x *ClassifiedNumber) GetNumber() *ExtractedNumber {
	if x != nil {
		return x.Number
	}
	return nil
}

func (x *ClassifiedNumber) GetClassification() *Classification {
	if x != nil {
		return x.Classification
	}
	return nil
}

func (x *ClassifiedNumber) GetContact() *ExistingContact {
	if x != nil {
		return x.Contact
	}
	return nil
}

type ExportNumbersCSVRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CountryCode   string                 `protobuf:"bytes,1,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	IsValid       *bool                  `protobuf:"varint,2,opt,name=is_valid,json=isValid,proto3,oneof" json:"is_valid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportNumbersCSVRequest) Reset() {
	*x = ExportNumbersCSVRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[69]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportNumbersCSVRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportNumbersCSVRequest) ProtoMessage() {}

func (x *ExportNumbersCSVRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[69]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportNumbersCSVRequest.ProtoReflect.Descriptor instead.
func (*ExportNumbersCSVRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{69}
}

func (x *ExportNumbersCSVRequest) GetCountryCode() string {
	if x != nil {
		return x.CountryCode
	}
	return ""
}

func (x *ExportNumbersCSVRequest) GetIsValid() bool {
	if x != nil && x.IsValid != nil {
		return *x.IsValid
	}
	return false
}

type ExportNumbersCSVResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CsvData       []byte                 `protobuf:"bytes,1,opt,name=csv_data,json=csvData,proto3" json:"csv_data,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportNumbersCSVResponse) Reset() {
	*x = ExportNumbersCSVResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[70]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportNumbersCSVResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportNumbersCSVResponse) ProtoMessage() {}

func (x *ExportNumbersCSVResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[70]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportNumbersCSVResponse.ProtoReflect.Descriptor instead.
func (*ExportNumbersCSVResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{70}
}

func (x *ExportNumbersCSVResponse) GetCsvData() []byte {
	if x != nil {
		return x.CsvData
	}
	return nil
}

func (x *ExportNumbersCSVResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ExportNumbersXLSXRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CountryCode   string                 `protobuf:"bytes,1,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	IsValid       *bool                  `protobuf:"varint,2,opt,name=is_valid,json=isValid,proto3,oneof" json:"is_valid,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportNumbersXLSXRequest) Reset() {
	*x = ExportNumbersXLSXRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[71]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportNumbersXLSXRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportNumbersXLSXRequest) ProtoMessage() {}

func (x *ExportNumbersXLSXRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[71]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportNumbersXLSXRequest.ProtoReflect.Descriptor instead.
func (*ExportNumbersXLSXRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{71}
}

func (x *ExportNumbersXLSXRequest) GetCountryCode() string {
	if x != nil {
		return x.CountryCode
	}
	return ""
}

func (x *ExportNumbersXLSXRequest) GetIsValid() bool {
	if x != nil && x.IsValid != nil {
		return *x.IsValid
	}
	return false
}

type ExportNumbersXLSXResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	XlsxData      []byte                 `protobuf:"bytes,1,opt,name=xlsx_data,json=xlsxData,proto3" json:"xlsx_data,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportNumbersXLSXResponse) Reset() {
	*x = ExportNumbersXLSXResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[72]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportNumbersXLSXResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportNumbersXLSXResponse) ProtoMessage() {}

func (x *ExportNumbersXLSXResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[72]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportNumbersXLSXResponse.ProtoReflect.Descriptor instead.
func (*ExportNumbersXLSXResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{72}
}

func (x *ExportNumbersXLSXResponse) GetXlsxData() []byte {
	if x != nil {
		return x.XlsxData
	}
	return nil
}

func (x *ExportNumbersXLSXResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type ExportComparisonCSVRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MatchType     string                 `protobuf:"bytes,1,opt,name=match_type,json=matchType,proto3" json:"match_type,omitempty"` // optional filter: existing-exact | existing-partial | new | unknown
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportComparisonCSVRequest) Reset() {
	*x = ExportComparisonCSVRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[73]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportComparisonCSVRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportComparisonCSVRequest) ProtoMessage() {}

func (x *ExportComparisonCSVRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[73]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportComparisonCSVRequest.ProtoReflect.Descriptor instead.
func (*ExportComparisonCSVRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{73}
}

func (x *ExportComparisonCSVRequest) GetMatchType() string {
	if x != nil {
		return x.MatchType
	}
	return ""
}

type ExportComparisonCSVResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CsvData       []byte                 `protobuf:"bytes,1,opt,name=csv_data,json=csvData,proto3" json:"csv_data,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportComparisonCSVResponse) Reset() {
	*x = ExportComparisonCSVResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[74]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportComparisonCSVResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportComparisonCSVResponse) ProtoMessage() {}

func (x *ExportComparisonCSVResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[74]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportComparisonCSVResponse.ProtoReflect.Descriptor instead.
func (*ExportComparisonCSVResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{74}
}

func (x *ExportComparisonCSVResponse) GetCsvData() []byte {
	if x != nil {
		return x.CsvData
	}
	return nil
}

func (x *ExportComparisonCSVResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

// Numbers the comparison classified as new, in the numbers-export shape.
type ExportNewNumbersCSVRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportNewNumbersCSVRequest) Reset() {
	*x = ExportNewNumbersCSVRequest{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[75]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportNewNumbersCSVRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportNewNumbersCSVRequest) ProtoMessage() {}

func (x *ExportNewNumbersCSVRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[75]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportNewNumbersCSVRequest.ProtoReflect.Descriptor instead.
func (*ExportNewNumbersCSVRequest) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{75}
}

type ExportNewNumbersCSVResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CsvData       []byte                 `protobuf:"bytes,1,opt,name=csv_data,json=csvData,proto3" json:"csv_data,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportNewNumbersCSVResponse) Reset() {
	*x = ExportNewNumbersCSVResponse{}
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[76]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportNewNumbersCSVResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportNewNumbersCSVResponse) ProtoMessage() {}

func (x *ExportNewNumbersCSVResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_phonerecon_v1_phonerecon_proto_msgTypes[76]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportNewNumbersCSVResponse.ProtoReflect.Descriptor instead.
func (*ExportNewNumbersCSVResponse) Descriptor() ([]byte, []int) {
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP(), []int{76}
}

func (x *ExportNewNumbersCSVResponse) GetCsvData() []byte {
	if x != nil {
		return x.CsvData
	}
	return nil
}

func (x *ExportNewNumbersCSVResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_proto_phonerecon_v1_phonerecon_proto protoreflect.FileDescriptor

const file_proto_phonerecon_v1_phonerecon_proto_rawDesc = "" +
	"\n" +
	"$proto/phonerecon/v1/phonerecon.proto\x12\rphonerecon.v1\"\x82\x02\n" +
	"\n" +
	"Screenshot\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x1b\n" +
	"\tfile_path\x18\x03 \x01(\tR\bfilePath\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\x12\x1c\n" +
	"\tprocessed\x18\x05 \x01(\bR\tprocessed\x12\x14\n" +
	"\x05notes\x18\x06 \x01(\tR\x05notes\x12\x1f\n" +
	"\vuploaded_at\x18\a \x01(\tR\n" +
	"uploadedAt\x12#\n" +
	"\rnumbers_count\x18\b \x01(\x05R\fnumbersCount\x12\x19\n" +
	"\bocr_text\x18\t \x01(\tR\aocrText\"D\n" +
	"\bGroupRef\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05color\x18\x03 \x01(\tR\x05color\"\x82\x03\n" +
	"\x0fExtractedNumber\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rscreenshot_id\x18\x02 \x01(\tR\fscreenshotId\x12\x1d\n" +
	"\n" +
	"raw_number\x18\x03 \x01(\tR\trawNumber\x12+\n" +
	"\x11normalized_number\x18\x04 \x01(\tR\x10normalizedNumber\x12!\n" +
	"\fcountry_code\x18\x05 \x01(\tR\vcountryCode\x12!\n" +
	"\fcountry_name\x18\x06 \x01(\tR\vcountryName\x12\x18\n" +
	"\acarrier\x18\a \x01(\tR\acarrier\x12\x1f\n" +
	"\vnumber_type\x18\b \x01(\tR\n" +
	"numberType\x12\x19\n" +
	"\bis_valid\x18\t \x01(\bR\aisValid\x12!\n" +
	"\fextracted_at\x18\n" +
	" \x01(\tR\vextractedAt\x12/\n" +
	"\x06groups\x18\v \x03(\v2\x17.phonerecon.v1.GroupRefR\x06groups\"\xe7\x01\n" +
	"\x05Group\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x14\n" +
	"\x05color\x18\x04 \x01(\tR\x05color\x12\x1b\n" +
	"\tis_system\x18\x05 \x01(\bR\bisSystem\x12!\n" +
	"\fcountry_code\x18\x06 \x01(\tR\vcountryCode\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12#\n" +
	"\rnumbers_count\x18\b \x01(\x05R\fnumbersCount\"\x8b\x02\n" +
	"\x0fExistingContact\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12+\n" +
	"\x11normalized_number\x18\x02 \x01(\tR\x10normalizedNumber\x12\x1d\n" +
	"\n" +
	"raw_number\x18\x03 \x01(\tR\trawNumber\x12\x12\n" +
	"\x04name\x18\x04 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x05 \x01(\tR\x05email\x12\x18\n" +
	"\acompany\x18\x06 \x01(\tR\acompany\x12\x16\n" +
	"\x06source\x18\a \x01(\tR\x06source\x12\x1f\n" +
	"\vexternal_id\x18\b \x01(\tR\n" +
	"externalId\x12\x1f\n" +
	"\vimported_at\x18\t \x01(\tR\n" +
	"importedAt\"\xb3\x02\n" +
	"\x0fComparisonStats\x12'\n" +
	"\x0ftotal_extracted\x18\x01 \x01(\x05R\x0etotalExtracted\x12%\n" +
	"\x0etotal_contacts\x18\x02 \x01(\x05R\rtotalContacts\x12#\n" +
	"\rexact_matches\x18\x03 \x01(\x05R\fexactMatches\x12'\n" +
	"\x0fpartial_matches\x18\x04 \x01(\x05R\x0epartialMatches\x12\x1f\n" +
	"\vnew_numbers\x18\x05 \x01(\x05R\n" +
	"newNumbers\x12!\n" +
	"\fnot_compared\x18\x06 \x01(\x05R\vnotCompared\x12\x1d\n" +
	"\n" +
	"match_rate\x18\a \x01(\x01R\tmatchRate\x12\x1f\n" +
	"\vcompared_at\x18\b \x01(\tR\n" +
	"comparedAt\"k\n" +
	"\x0eClassification\x12\x1b\n" +
	"\tnumber_id\x18\x01 \x01(\tR\bnumberId\x12\x1d\n" +
	"\n" +
	"match_type\x18\x02 \x01(\tR\tmatchType\x12\x1d\n" +
	"\n" +
	"contact_id\x18\x03 \x01(\tR\tcontactId\"\xa9\x01\n" +
	"\vImportStats\x12\x1d\n" +
	"\n" +
	"total_rows\x18\x01 \x01(\x05R\ttotalRows\x12\x1a\n" +
	"\bimported\x18\x02 \x01(\x05R\bimported\x12\x1e\n" +
	"\n" +
	"duplicates\x18\x03 \x01(\x05R\n" +
	"duplicates\x12%\n" +
	"\x0einvalid_phones\x18\x04 \x01(\x05R\rinvalidPhones\x12\x18\n" +
	"\askipped\x18\x05 \x01(\x05R\askipped\"\xc6\x01\n" +
	"\x11ExtractionSummary\x12#\n" +
	"\rscreenshot_id\x18\x01 \x01(\tR\fscreenshotId\x12\x1e\n" +
	"\n" +
	"candidates\x18\x02 \x01(\x05R\n" +
	"candidates\x12\x16\n" +
	"\x06stored\x18\x03 \x01(\x05R\x06stored\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\x05R\fdeduplicated\x12\x1a\n" +
	"\brejected\x18\x05 \x01(\x05R\brejected\x12\x14\n" +
	"\x05error\x18\x06 \x01(\tR\x05error\"G\n" +
	"\x19RegisterScreenshotRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\"W\n" +
	"\x1aRegisterScreenshotResponse\x129\n" +
	"\n" +
	"screenshot\x18\x01 \x01(\v2\x19.phonerecon.v1.ScreenshotR\n" +
	"screenshot\"p\n" +
	"\x18RegisterDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\xde\x01\n" +
	"\x19RegisterDirectoryResponse\x12;\n" +
	"\vscreenshots\x18\x01 \x03(\v2\x19.phonerecon.v1.ScreenshotR\vscreenshots\x12\x18\n" +
	"\ascanned\x18\x02 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x03 \x01(\rR\amatched\x12\x1e\n" +
	"\n" +
	"registered\x18\x04 \x01(\rR\n" +
	"registered\x12\x18\n" +
	"\askipped\x18\x05 \x01(\rR\askipped\x12\x16\n" +
	"\x06failed\x18\x06 \x01(\rR\x06failed\"&\n" +
	"\x14GetScreenshotRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"R\n" +
	"\x15GetScreenshotResponse\x129\n" +
	"\n" +
	"screenshot\x18\x01 \x01(\v2\x19.phonerecon.v1.ScreenshotR\n" +
	"screenshot\"\x92\x01\n" +
	"\x16ListScreenshotsRequest\x12\x12\n" +
	"\x04page\x18\x01 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\x12!\n" +
	"\tprocessed\x18\x04 \x01(\bH\x00R\tprocessed\x88\x01\x01B\f\n" +
	"\n" +
	"_processed\"l\n" +
	"\x17ListScreenshotsResponse\x12;\n" +
	"\vscreenshots\x18\x01 \x03(\v2\x19.phonerecon.v1.ScreenshotR\vscreenshots\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"v\n" +
	"\x17UpdateScreenshotRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\x06source\x18\x02 \x01(\tH\x00R\x06source\x88\x01\x01\x12\x19\n" +
	"\x05notes\x18\x03 \x01(\tH\x01R\x05notes\x88\x01\x01B\t\n" +
	"\a_sourceB\b\n" +
	"\x06_notes\"U\n" +
	"\x18UpdateScreenshotResponse\x129\n" +
	"\n" +
	"screenshot\x18\x01 \x01(\v2\x19.phonerecon.v1.ScreenshotR\n" +
	"screenshot\")\n" +
	"\x17DeleteScreenshotRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"4\n" +
	"\x18DeleteScreenshotResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"W\n" +
	"\x18ExtractScreenshotRequest\x12#\n" +
	"\rscreenshot_id\x18\x01 \x01(\tR\fscreenshotId\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\"W\n" +
	"\x19ExtractScreenshotResponse\x12:\n" +
	"\asummary\x18\x01 \x01(\v2 .phonerecon.v1.ExtractionSummaryR\asummary\"}\n" +
	"\x13ExtractBatchRequest\x12%\n" +
	"\x0escreenshot_ids\x18\x01 \x03(\tR\rscreenshotIds\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\x12'\n" +
	"\x0fall_unprocessed\x18\x03 \x01(\bR\x0eallUnprocessed\"\x8c\x01\n" +
	"\x14ExtractBatchResponse\x12>\n" +
	"\tsummaries\x18\x01 \x03(\v2 .phonerecon.v1.ExtractionSummaryR\tsummaries\x12\x1c\n" +
	"\tsucceeded\x18\x02 \x01(\x05R\tsucceeded\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\"\xd2\x01\n" +
	"\x12ListNumbersRequest\x12\x12\n" +
	"\x04page\x18\x01 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12!\n" +
	"\fcountry_code\x18\x03 \x01(\tR\vcountryCode\x12\x1e\n" +
	"\bis_valid\x18\x04 \x01(\bH\x00R\aisValid\x88\x01\x01\x12#\n" +
	"\rscreenshot_id\x18\x05 \x01(\tR\fscreenshotId\x12\x16\n" +
	"\x06search\x18\x06 \x01(\tR\x06searchB\v\n" +
	"\t_is_valid\"e\n" +
	"\x13ListNumbersResponse\x128\n" +
	"\anumbers\x18\x01 \x03(\v2\x1e.phonerecon.v1.ExtractedNumberR\anumbers\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"\x17\n" +
	"\x15GetNumberStatsRequest\"j\n" +
	"\fCountryCount\x12!\n" +
	"\fcountry_code\x18\x01 \x01(\tR\vcountryCode\x12!\n" +
	"\fcountry_name\x18\x02 \x01(\tR\vcountryName\x12\x14\n" +
	"\x05count\x18\x03 \x01(\x05R\x05count\"B\n" +
	"\tTypeCount\x12\x1f\n" +
	"\vnumber_type\x18\x01 \x01(\tR\n" +
	"numberType\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\"\xc3\x01\n" +
	"\x16GetNumberStatsResponse\x12B\n" +
	"\x0ecountry_counts\x18\x01 \x03(\v2\x1b.phonerecon.v1.CountryCountR\rcountryCounts\x129\n" +
	"\vtype_counts\x18\x02 \x03(\v2\x18.phonerecon.v1.TypeCountR\n" +
	"typeCounts\x12\x14\n" +
	"\x05total\x18\x03 \x01(\x05R\x05total\x12\x14\n" +
	"\x05valid\x18\x04 \x01(\x05R\x05valid\"\x17\n" +
	"\x15ListDuplicatesRequest\"w\n" +
	"\x0eDuplicateGroup\x12+\n" +
	"\x11normalized_number\x18\x01 \x01(\tR\x10normalizedNumber\x128\n" +
	"\anumbers\x18\x02 \x03(\v2\x1e.phonerecon.v1.ExtractedNumberR\anumbers\"W\n" +
	"\x16ListDuplicatesResponse\x12=\n" +
	"\n" +
	"duplicates\x18\x01 \x03(\v2\x1d.phonerecon.v1.DuplicateGroupR\n" +
	"duplicates\"(\n" +
	"\x14DeleteNumbersRequest\x12\x10\n" +
	"\x03ids\x18\x01 \x03(\tR\x03ids\"1\n" +
	"\x15DeleteNumbersResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\x05R\adeleted\"`\n" +
	"\x12CreateGroupRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12\x14\n" +
	"\x05color\x18\x03 \x01(\tR\x05color\"A\n" +
	"\x13CreateGroupResponse\x12*\n" +
	"\x05group\x18\x01 \x01(\v2\x14.phonerecon.v1.GroupR\x05group\"!\n" +
	"\x0fGetGroupRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\">\n" +
	"\x10GetGroupResponse\x12*\n" +
	"\x05group\x18\x01 \x01(\v2\x14.phonerecon.v1.GroupR\x05group\":\n" +
	"\x11ListGroupsRequest\x12%\n" +
	"\x0einclude_system\x18\x01 \x01(\bR\rincludeSystem\"B\n" +
	"\x12ListGroupsResponse\x12,\n" +
	"\x06groups\x18\x01 \x03(\v2\x14.phonerecon.v1.GroupR\x06groups\"\xa2\x01\n" +
	"\x12UpdateGroupRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\x04name\x18\x02 \x01(\tH\x00R\x04name\x88\x01\x01\x12%\n" +
	"\vdescription\x18\x03 \x01(\tH\x01R\vdescription\x88\x01\x01\x12\x19\n" +
	"\x05color\x18\x04 \x01(\tH\x02R\x05color\x88\x01\x01B\a\n" +
	"\x05_nameB\x0e\n" +
	"\f_descriptionB\b\n" +
	"\x06_color\"A\n" +
	"\x13UpdateGroupResponse\x12*\n" +
	"\x05group\x18\x01 \x01(\v2\x14.phonerecon.v1.GroupR\x05group\"$\n" +
	"\x12DeleteGroupRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"/\n" +
	"\x13DeleteGroupResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"T\n" +
	"\x18AddNumbersToGroupRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\x12\x1d\n" +
	"\n" +
	"number_ids\x18\x02 \x03(\tR\tnumberIds\"1\n" +
	"\x19AddNumbersToGroupResponse\x12\x14\n" +
	"\x05added\x18\x01 \x01(\x05R\x05added\"Y\n" +
	"\x1dRemoveNumbersFromGroupRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\x12\x1d\n" +
	"\n" +
	"number_ids\x18\x02 \x03(\tR\tnumberIds\":\n" +
	"\x1eRemoveNumbersFromGroupResponse\x12\x18\n" +
	"\aremoved\x18\x01 \x01(\x05R\aremoved\"e\n" +
	"\x17ListGroupNumbersRequest\x12\x19\n" +
	"\bgroup_id\x18\x01 \x01(\tR\agroupId\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"j\n" +
	"\x18ListGroupNumbersResponse\x128\n" +
	"\anumbers\x18\x01 \x03(\v2\x1e.phonerecon.v1.ExtractedNumberR\anumbers\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"R\n" +
	"\x14PreviewImportRequest\x12\x19\n" +
	"\bcsv_data\x18\x01 \x01(\fR\acsvData\x12\x1f\n" +
	"\vsample_rows\x18\x02 \x01(\x05R\n" +
	"sampleRows\"O\n" +
	"\vColumnScore\x12\x12\n" +
	"\x04role\x18\x01 \x01(\tR\x04role\x12\x16\n" +
	"\x06header\x18\x02 \x01(\tR\x06header\x12\x14\n" +
	"\x05value\x18\x03 \x01(\x01R\x05value\"\xce\x02\n" +
	"\x15PreviewImportResponse\x12\x18\n" +
	"\aheaders\x18\x01 \x03(\tR\aheaders\x129\n" +
	"\vsample_rows\x18\x02 \x03(\v2\x18.phonerecon.v1.SampleRowR\n" +
	"sampleRows\x12g\n" +
	"\x11suggested_mapping\x18\x03 \x03(\v2:.phonerecon.v1.PreviewImportResponse.SuggestedMappingEntryR\x10suggestedMapping\x122\n" +
	"\x06scores\x18\x04 \x03(\v2\x1a.phonerecon.v1.ColumnScoreR\x06scores\x1aC\n" +
	"\x15SuggestedMappingEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"#\n" +
	"\tSampleRow\x12\x16\n" +
	"\x06values\x18\x01 \x03(\tR\x06values\"\xd3\x01\n" +
	"\x15ImportContactsRequest\x12\x19\n" +
	"\bcsv_data\x18\x01 \x01(\fR\acsvData\x12K\n" +
	"\amapping\x18\x02 \x03(\v21.phonerecon.v1.ImportContactsRequest.MappingEntryR\amapping\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\x1a:\n" +
	"\fMappingEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"J\n" +
	"\x16ImportContactsResponse\x120\n" +
	"\x05stats\x18\x01 \x01(\v2\x1a.phonerecon.v1.ImportStatsR\x05stats\"^\n" +
	"\x13ListContactsRequest\x12\x12\n" +
	"\x04page\x18\x01 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06search\x18\x03 \x01(\tR\x06search\"h\n" +
	"\x14ListContactsResponse\x12:\n" +
	"\bcontacts\x18\x01 \x03(\v2\x1e.phonerecon.v1.ExistingContactR\bcontacts\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"\x16\n" +
	"\x14ClearContactsRequest\"1\n" +
	"\x15ClearContactsResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\x05R\adeleted\"\x16\n" +
	"\x14RunComparisonRequest\"M\n" +
	"\x15RunComparisonResponse\x124\n" +
	"\x05stats\x18\x01 \x01(\v2\x1e.phonerecon.v1.ComparisonStatsR\x05stats\"\x17\n" +
	"\x15GetLatestStatsRequest\"d\n" +
	"\x16GetLatestStatsResponse\x124\n" +
	"\x05stats\x18\x01 \x01(\v2\x1e.phonerecon.v1.ComparisonStatsR\x05stats\x12\x14\n" +
	"\x05found\x18\x02 \x01(\bR\x05found\"l\n" +
	"\x1aListClassificationsRequest\x12\x12\n" +
	"\x04page\x18\x01 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"match_type\x18\x03 \x01(\tR\tmatchType\"n\n" +
	"\x1bListClassificationsResponse\x129\n" +
	"\anumbers\x18\x01 \x03(\v2\x1f.phonerecon.v1.ClassifiedNumberR\anumbers\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"\xcb\x01\n" +
	"\x10ClassifiedNumber\x126\n" +
	"\x06number\x18\x01 \x01(\v2\x1e.phonerecon.v1.ExtractedNumberR\x06number\x12E\n" +
	"\x0eclassification\x18\x02 \x01(\v2\x1d.phonerecon.v1.ClassificationR\x0eclassification\x128\n" +
	"\acontact\x18\x03 \x01(\v2\x1e.phonerecon.v1.ExistingContactR\acontact\"i\n" +
	"\x17ExportNumbersCSVRequest\x12!\n" +
	"\fcountry_code\x18\x01 \x01(\tR\vcountryCode\x12\x1e\n" +
	"\bis_valid\x18\x02 \x01(\bH\x00R\aisValid\x88\x01\x01B\v\n" +
	"\t_is_valid\"Q\n" +
	"\x18ExportNumbersCSVResponse\x12\x19\n" +
	"\bcsv_data\x18\x01 \x01(\fR\acsvData\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"j\n" +
	"\x18ExportNumbersXLSXRequest\x12!\n" +
	"\fcountry_code\x18\x01 \x01(\tR\vcountryCode\x12\x1e\n" +
	"\bis_valid\x18\x02 \x01(\bH\x00R\aisValid\x88\x01\x01B\v\n" +
	"\t_is_valid\"T\n" +
	"\x19ExportNumbersXLSXResponse\x12\x1b\n" +
	"\txlsx_data\x18\x01 \x01(\fR\bxlsxData\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\";\n" +
	"\x1aExportComparisonCSVRequest\x12\x1d\n" +
	"\n" +
	"match_type\x18\x01 \x01(\tR\tmatchType\"T\n" +
	"\x1bExportComparisonCSVResponse\x12\x19\n" +
	"\bcsv_data\x18\x01 \x01(\fR\acsvData\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\"\x1c\n" +
	"\x1aExportNewNumbersCSVRequest\"T\n" +
	"\x1bExportNewNumbersCSVResponse\x12\x19\n" +
	"\bcsv_data\x18\x01 \x01(\fR\acsvData\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xee\x04\n" +
	"\x11ScreenshotService\x12i\n" +
	"\x12RegisterScreenshot\x12(.phonerecon.v1.RegisterScreenshotRequest\x1a).phonerecon.v1.RegisterScreenshotResponse\x12f\n" +
	"\x11RegisterDirectory\x12'.phonerecon.v1.RegisterDirectoryRequest\x1a(.phonerecon.v1.RegisterDirectoryResponse\x12Z\n" +
	"\rGetScreenshot\x12#.phonerecon.v1.GetScreenshotRequest\x1a$.phonerecon.v1.GetScreenshotResponse\x12`\n" +
	"\x0fListScreenshots\x12%.phonerecon.v1.ListScreenshotsRequest\x1a&.phonerecon.v1.ListScreenshotsResponse\x12c\n" +
	"\x10UpdateScreenshot\x12&.phonerecon.v1.UpdateScreenshotRequest\x1a'.phonerecon.v1.UpdateScreenshotResponse\x12c\n" +
	"\x10DeleteScreenshot\x12&.phonerecon.v1.DeleteScreenshotRequest\x1a'.phonerecon.v1.DeleteScreenshotResponse2\xd4\x01\n" +
	"\x11ExtractionService\x12f\n" +
	"\x11ExtractScreenshot\x12'.phonerecon.v1.ExtractScreenshotRequest\x1a(.phonerecon.v1.ExtractScreenshotResponse\x12W\n" +
	"\fExtractBatch\x12\".phonerecon.v1.ExtractBatchRequest\x1a#.phonerecon.v1.ExtractBatchResponse2\xff\x02\n" +
	"\rNumberService\x12T\n" +
	"\vListNumbers\x12!.phonerecon.v1.ListNumbersRequest\x1a\".phonerecon.v1.ListNumbersResponse\x12]\n" +
	"\x0eGetNumberStats\x12$.phonerecon.v1.GetNumberStatsRequest\x1a%.phonerecon.v1.GetNumberStatsResponse\x12]\n" +
	"\x0eListDuplicates\x12$.phonerecon.v1.ListDuplicatesRequest\x1a%.phonerecon.v1.ListDuplicatesResponse\x12Z\n" +
	"\rDeleteNumbers\x12#.phonerecon.v1.DeleteNumbersRequest\x1a$.phonerecon.v1.DeleteNumbersResponse2\xf4\x05\n" +
	"\fGroupService\x12T\n" +
	"\vCreateGroup\x12!.phonerecon.v1.CreateGroupRequest\x1a\".phonerecon.v1.CreateGroupResponse\x12K\n" +
	"\bGetGroup\x12\x1e.phonerecon.v1.GetGroupRequest\x1a\x1f.phonerecon.v1.GetGroupResponse\x12Q\n" +
	"\n" +
	"ListGroups\x12 .phonerecon.v1.ListGroupsRequest\x1a!.phonerecon.v1.ListGroupsResponse\x12T\n" +
	"\vUpdateGroup\x12!.phonerecon.v1.UpdateGroupRequest\x1a\".phonerecon.v1.UpdateGroupResponse\x12T\n" +
	"\vDeleteGroup\x12!.phonerecon.v1.DeleteGroupRequest\x1a\".phonerecon.v1.DeleteGroupResponse\x12f\n" +
	"\x11AddNumbersToGroup\x12'.phonerecon.v1.AddNumbersToGroupRequest\x1a(.phonerecon.v1.AddNumbersToGroupResponse\x12u\n" +
	"\x16RemoveNumbersFromGroup\x12,.phonerecon.v1.RemoveNumbersFromGroupRequest\x1a-.phonerecon.v1.RemoveNumbersFromGroupResponse\x12c\n" +
	"\x10ListGroupNumbers\x12&.phonerecon.v1.ListGroupNumbersRequest\x1a'.phonerecon.v1.ListGroupNumbersResponse2\x80\x03\n" +
	"\x0eContactService\x12Z\n" +
	"\rPreviewImport\x12#.phonerecon.v1.PreviewImportRequest\x1a$.phonerecon.v1.PreviewImportResponse\x12]\n" +
	"\x0eImportContacts\x12$.phonerecon.v1.ImportContactsRequest\x1a%.phonerecon.v1.ImportContactsResponse\x12W\n" +
	"\fListContacts\x12\".phonerecon.v1.ListContactsRequest\x1a#.phonerecon.v1.ListContactsResponse\x12Z\n" +
	"\rClearContacts\x12#.phonerecon.v1.ClearContactsRequest\x1a$.phonerecon.v1.ClearContactsResponse2\xbc\x02\n" +
	"\x11ComparisonService\x12Z\n" +
	"\rRunComparison\x12#.phonerecon.v1.RunComparisonRequest\x1a$.phonerecon.v1.RunComparisonResponse\x12]\n" +
	"\x0eGetLatestStats\x12$.phonerecon.v1.GetLatestStatsRequest\x1a%.phonerecon.v1.GetLatestStatsResponse\x12l\n" +
	"\x13ListClassifications\x12).phonerecon.v1.ListClassificationsRequest\x1a*.phonerecon.v1.ListClassificationsResponse2\xb8\x03\n" +
	"\rExportService\x12c\n" +
	"\x10ExportNumbersCSV\x12&.phonerecon.v1.ExportNumbersCSVRequest\x1a'.phonerecon.v1.ExportNumbersCSVResponse\x12f\n" +
	"\x11ExportNumbersXLSX\x12'.phonerecon.v1.ExportNumbersXLSXRequest\x1a(.phonerecon.v1.ExportNumbersXLSXResponse\x12l\n" +
	"\x13ExportComparisonCSV\x12).phonerecon.v1.ExportComparisonCSVRequest\x1a*.phonerecon.v1.ExportComparisonCSVResponse\x12l\n" +
	"\x13ExportNewNumbersCSV\x12).phonerecon.v1.ExportNewNumbersCSVRequest\x1a*.phonerecon.v1.ExportNewNumbersCSVResponseBFZDgithub.com/reconkit/phone-recon/gen/proto/phonerecon/v1;phonereconv1b\x06proto3"

var (
	file_proto_phonerecon_v1_phonerecon_proto_rawDescOnce sync.Once
	file_proto_phonerecon_v1_phonerecon_proto_rawDescData []byte
)

func file_proto_phonerecon_v1_phonerecon_proto_rawDescGZIP() []byte {
	file_proto_phonerecon_v1_phonerecon_proto_rawDescOnce.Do(func() {
		file_proto_phonerecon_v1_phonerecon_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_phonerecon_v1_phonerecon_proto_rawDesc), len(file_proto_phonerecon_v1_phonerecon_proto_rawDesc)))
	})
	return file_proto_phonerecon_v1_phonerecon_proto_rawDescData
}

var file_proto_phonerecon_v1_phonerecon_proto_msgTypes = make([]protoimpl.MessageInfo, 79)
var file_proto_phonerecon_v1_phonerecon_proto_goTypes = []any{
	(*Screenshot)(nil),                     // 0: phonerecon.v1.Screenshot
	(*GroupRef)(nil),                       // 1: phonerecon.v1.GroupRef
	(*ExtractedNumber)(nil),                // 2: phonerecon.v1.ExtractedNumber
	(*Group)(nil),                          // 3: phonerecon.v1.Group
	(*ExistingContact)(nil),                // 4: phonerecon.v1.ExistingContact
	(*ComparisonStats)(nil),                // 5: phonerecon.v1.ComparisonStats
	(*Classification)(nil),                 // 6: phonerecon.v1.Classification
	(*ImportStats)(nil),                    // 7: phonerecon.v1.ImportStats
	(*ExtractionSummary)(nil),              // 8: phonerecon.v1.ExtractionSummary
	(*RegisterScreenshotRequest)(nil),      // 9: phonerecon.v1.RegisterScreenshotRequest
	(*RegisterScreenshotResponse)(nil),     // 10: phonerecon.v1.RegisterScreenshotResponse
	(*RegisterDirectoryRequest)(nil),       // 11: phonerecon.v1.RegisterDirectoryRequest
	(*RegisterDirectoryResponse)(nil),      // 12: phonerecon.v1.RegisterDirectoryResponse
	(*GetScreenshotRequest)(nil),           // 13: phonerecon.v1.GetScreenshotRequest
	(*GetScreenshotResponse)(nil),          // 14: phonerecon.v1.GetScreenshotResponse
	(*ListScreenshotsRequest)(nil),         // 15: phonerecon.v1.ListScreenshotsRequest
	(*ListScreenshotsResponse)(nil),        // 16: phonerecon.v1.ListScreenshotsResponse
	(*UpdateScreenshotRequest)(nil),        // 17: phonerecon.v1.UpdateScreenshotRequest
	(*UpdateScreenshotResponse)(nil),       // 18: phonerecon.v1.UpdateScreenshotResponse
	(*DeleteScreenshotRequest)(nil),        // 19: phonerecon.v1.DeleteScreenshotRequest
	(*DeleteScreenshotResponse)(nil),       // 20: phonerecon.v1.DeleteScreenshotResponse
	(*ExtractScreenshotRequest)(nil),       // 21: phonerecon.v1.ExtractScreenshotRequest
	(*ExtractScreenshotResponse)(nil),      // 22: phonerecon.v1.ExtractScreenshotResponse
	(*ExtractBatchRequest)(nil),            // 23: phonerecon.v1.ExtractBatchRequest
	(*ExtractBatchResponse)(nil),           // 24: phonerecon.v1.ExtractBatchResponse
	(*ListNumbersRequest)(nil),             // 25: phonerecon.v1.ListNumbersRequest
	(*ListNumbersResponse)(nil),            // 26: phonerecon.v1.ListNumbersResponse
	(*GetNumberStatsRequest)(nil),          // 27: phonerecon.v1.GetNumberStatsRequest
	(*CountryCount)(nil),                   // 28: phonerecon.v1.CountryCount
	(*TypeCount)(nil),                      // 29: phonerecon.v1.TypeCount
	(*GetNumberStatsResponse)(nil),         // 30: phonerecon.v1.GetNumberStatsResponse
	(*ListDuplicatesRequest)(nil),          // 31: phonerecon.v1.ListDuplicatesRequest
	(*DuplicateGroup)(nil),                 // 32: phonerecon.v1.DuplicateGroup
	(*ListDuplicatesResponse)(nil),         // 33: phonerecon.v1.ListDuplicatesResponse
	(*DeleteNumbersRequest)(nil),           // 34: phonerecon.v1.DeleteNumbersRequest
	(*DeleteNumbersResponse)(nil),          // 35: phonerecon.v1.DeleteNumbersResponse
	(*CreateGroupRequest)(nil),             // 36: phonerecon.v1.CreateGroupRequest
	(*CreateGroupResponse)(nil),            // 37: phonerecon.v1.CreateGroupResponse
	(*GetGroupRequest)(nil),                // 38: phonerecon.v1.GetGroupRequest
	(*GetGroupResponse)(nil),               // 39: phonerecon.v1.GetGroupResponse
	(*ListGroupsRequest)(nil),              // 40: phonerecon.v1.ListGroupsRequest
	(*ListGroupsResponse)(nil),             // 41: phonerecon.v1.ListGroupsResponse
	(*UpdateGroupRequest)(nil),             // 42: phonerecon.v1.UpdateGroupRequest
	(*UpdateGroupResponse)(nil),            // 43: phonerecon.v1.UpdateGroupResponse
	(*DeleteGroupRequest)(nil),             // 44: phonerecon.v1.DeleteGroupRequest
	(*DeleteGroupResponse)(nil),            // 45: phonerecon.v1.DeleteGroupResponse
	(*AddNumbersToGroupRequest)(nil),       // 46: phonerecon.v1.AddNumbersToGroupRequest
	(*AddNumbersToGroupResponse)(nil),      // 47: phonerecon.v1.AddNumbersToGroupResponse
	(*RemoveNumbersFromGroupRequest)(nil),  // 48: phonerecon.v1.RemoveNumbersFromGroupRequest
	(*RemoveNumbersFromGroupResponse)(nil), // 49: phonerecon.v1.RemoveNumbersFromGroupResponse
	(*ListGroupNumbersRequest)(nil),        // 50: phonerecon.v1.ListGroupNumbersRequest
	(*ListGroupNumbersResponse)(nil),       // 51: phonerecon.v1.ListGroupNumbersResponse
	(*PreviewImportRequest)(nil),           // 52: phonerecon.v1.PreviewImportRequest
	(*ColumnScore)(nil),                    // 53: phonerecon.v1.ColumnScore
	(*PreviewImportResponse)(nil),          // 54: phonerecon.v1.PreviewImportResponse
	(*SampleRow)(nil),                      // 55: phonerecon.v1.SampleRow
	(*ImportContactsRequest)(nil),          // 56: phonerecon.v1.ImportContactsRequest
	(*ImportContactsResponse)(nil),         // 57: phonerecon.v1.ImportContactsResponse
	(*ListContactsRequest)(nil),            // 58: phonerecon.v1.ListContactsRequest
	(*ListContactsResponse)(nil),           // 59: phonerecon.v1.ListContactsResponse
	(*ClearContactsRequest)(nil),           // 60: phonerecon.v1.ClearContactsRequest
	(*ClearContactsResponse)(nil),          // 61: phonerecon.v1.ClearContactsResponse
	(*RunComparisonRequest)(nil),           // 62: phonerecon.v1.RunComparisonRequest
	(*RunComparisonResponse)(nil),          // 63: phonerecon.v1.RunComparisonResponse
	(*GetLatestStatsRequest)(nil),          // 64: phonerecon.v1.GetLatestStatsRequest
	(*GetLatestStatsResponse)(nil),         // 65: phonerecon.v1.GetLatestStatsResponse
	(*ListClassificationsRequest)(nil),     // 66: phonerecon.v1.ListClassificationsRequest
	(*ListClassificationsResponse)(nil),    // 67: phonerecon.v1.ListClassificationsResponse
	(*ClassifiedNumber)(nil),               // 68: phonerecon.v1.ClassifiedNumber
	(*ExportNumbersCSVRequest)(nil),        // 69: phonerecon.v1.ExportNumbersCSVRequest
	(*ExportNumbersCSVResponse)(nil),       // 70: phonerecon.v1.ExportNumbersCSVResponse
	(*ExportNumbersXLSXRequest)(nil),       // 71: phonerecon.v1.ExportNumbersXLSXRequest
	(*ExportNumbersXLSXResponse)(nil),      // 72: phonerecon.v1.ExportNumbersXLSXResponse
	(*ExportComparisonCSVRequest)(nil),     // 73: phonerecon.v1.ExportComparisonCSVRequest
	(*ExportComparisonCSVResponse)(nil),    // 74: phonerecon.v1.ExportComparisonCSVResponse
	(*ExportNewNumbersCSVRequest)(nil),     // 75: phonerecon.v1.ExportNewNumbersCSVRequest
	(*ExportNewNumbersCSVResponse)(nil),    // 76: phonerecon.v1.ExportNewNumbersCSVResponse
	nil,                                    // 77: phonerecon.v1.PreviewImportResponse.SuggestedMappingEntry
	nil,                                    // 78: phonerecon.v1.ImportContactsRequest.MappingEntry
}
var file_proto_phonerecon_v1_phonerecon_proto_depIdxs = []int32{
	1,  // 0: phonerecon.v1.ExtractedNumber.groups:type_name -> phonerecon.v1.GroupRef
	0,  // 1: phonerecon.v1.RegisterScreenshotResponse.screenshot:type_name -> phonerecon.v1.Screenshot
	0,  // 2: phonerecon.v1.RegisterDirectoryResponse.screenshots:type_name -> phonerecon.v1.Screenshot
	0,  // 3: phonerecon.v1.GetScreenshotResponse.screenshot:type_name -> phonerecon.v1.Screenshot
	0,  // 4: phonerecon.v1.ListScreenshotsResponse.screenshots:type_name -> phonerecon.v1.Screenshot
	0,  // 5: phonerecon.v1.UpdateScreenshotResponse.screenshot:type_name -> phonerecon.v1.Screenshot
	8,  // 6: phonerecon.v1.ExtractScreenshotResponse.summary:type_name -> phonerecon.v1.ExtractionSummary
	8,  // 7: phonerecon.v1.ExtractBatchResponse.summaries:type_name -> phonerecon.v1.ExtractionSummary
	2,  // 8: phonerecon.v1.ListNumbersResponse.numbers:type_name -> phonerecon.v1.ExtractedNumber
	28, // 9: phonerecon.v1.GetNumberStatsResponse.country_counts:type_name -> phonerecon.v1.CountryCount
	29, // 10: phonerecon.v1.GetNumberStatsResponse.type_counts:type_name -> phonerecon.v1.TypeCount
	2,  // 11: phonerecon.v1.DuplicateGroup.numbers:type_name -> phonerecon.v1.ExtractedNumber
	32, // 12: phonerecon.v1.ListDuplicatesResponse.duplicates:type_name -> phonerecon.v1.DuplicateGroup
	3,  // 13: phonerecon.v1.CreateGroupResponse.group:type_name -> phonerecon.v1.Group
	3,  // 14: phonerecon.v1.GetGroupResponse.group:type_name -> phonerecon.v1.Group
	3,  // 15: phonerecon.v1.ListGroupsResponse.groups:type_name -> phonerecon.v1.Group
	3,  // 16: phonerecon.v1.UpdateGroupResponse.group:type_name -> phonerecon.v1.Group
	2,  // 17: phonerecon.v1.ListGroupNumbersResponse.numbers:type_name -> phonerecon.v1.ExtractedNumber
	55, // 18: phonerecon.v1.PreviewImportResponse.sample_rows:type_name -> phonerecon.v1.SampleRow
	77, // 19: phonerecon.v1.PreviewImportResponse.suggested_mapping:type_name -> phonerecon.v1.PreviewImportResponse.SuggestedMappingEntry
	53, // 20: phonerecon.v1.PreviewImportResponse.scores:type_name -> phonerecon.v1.ColumnScore
	78, // 21: phonerecon.v1.ImportContactsRequest.mapping:type_name -> phonerecon.v1.ImportContactsRequest.MappingEntry
	7,  // 22: phonerecon.v1.ImportContactsResponse.stats:type_name -> phonerecon.v1.ImportStats
	4,  // 23: phonerecon.v1.ListContactsResponse.contacts:type_name -> phonerecon.v1.ExistingContact
	5,  // 24: phonerecon.v1.RunComparisonResponse.stats:type_name -> phonerecon.v1.ComparisonStats
	5,  // 25: phonerecon.v1.GetLatestStatsResponse.stats:type_name -> phonerecon.v1.ComparisonStats
	68, // 26: phonerecon.v1.ListClassificationsResponse.numbers:type_name -> phonerecon.v1.ClassifiedNumber
	2,  // 27: phonerecon.v1.ClassifiedNumber.number:type_name -> phonerecon.v1.ExtractedNumber
	6,  // 28: phonerecon.v1.ClassifiedNumber.classification:type_name -> phonerecon.v1.Classification
	4,  // 29: phonerecon.v1.ClassifiedNumber.contact:type_name -> phonerecon.v1.ExistingContact
	9,  // 30: phonerecon.v1.ScreenshotService.RegisterScreenshot:input_type -> phonerecon.v1.RegisterScreenshotRequest
	11, // 31: phonerecon.v1.ScreenshotService.RegisterDirectory:input_type -> phonerecon.v1.RegisterDirectoryRequest
	13, // 32: phonerecon.v1.ScreenshotService.GetScreenshot:input_type -> phonerecon.v1.GetScreenshotRequest
	15, // 33: phonerecon.v1.ScreenshotService.ListScreenshots:input_type -> phonerecon.v1.ListScreenshotsRequest
	17, // 34: phonerecon.v1.ScreenshotService.UpdateScreenshot:input_type -> phonerecon.v1.UpdateScreenshotRequest
	19, // 35: phonerecon.v1.ScreenshotService.DeleteScreenshot:input_type -> phonerecon.v1.DeleteScreenshotRequest
	21, // 36: phonerecon.v1.ExtractionService.ExtractScreenshot:input_type -> phonerecon.v1.ExtractScreenshotRequest
	23, // 37: phonerecon.v1.ExtractionService.ExtractBatch:input_type -> phonerecon.v1.ExtractBatchRequest
	25, // 38: phonerecon.v1.NumberService.ListNumbers:input_type -> phonerecon.v1.ListNumbersRequest
	27, // 39: phonerecon.v1.NumberService.GetNumberStats:input_type -> phonerecon.v1.GetNumberStatsRequest
	31, // 40: phonerecon.v1.NumberService.ListDuplicates:input_type -> phonerecon.v1.ListDuplicatesRequest
	34, // 41: phonerecon.v1.NumberService.DeleteNumbers:input_type -> phonerecon.v1.DeleteNumbersRequest
	36, // 42: phonerecon.v1.GroupService.CreateGroup:input_type -> phonerecon.v1.CreateGroupRequest
	38, // 43: phonerecon.v1.GroupService.GetGroup:input_type -> phonerecon.v1.GetGroupRequest
	40, // 44: phonerecon.v1.GroupService.ListGroups:input_type -> phonerecon.v1.ListGroupsRequest
	42, // 45: phonerecon.v1.GroupService.UpdateGroup:input_type -> phonerecon.v1.UpdateGroupRequest
	44, // 46: phonerecon.v1.GroupService.DeleteGroup:input_type -> phonerecon.v1.DeleteGroupRequest
	46, // 47: phonerecon.v1.GroupService.AddNumbersToGroup:input_type -> phonerecon.v1.AddNumbersToGroupRequest
	48, // 48: phonerecon.v1.GroupService.RemoveNumbersFromGroup:input_type -> phonerecon.v1.RemoveNumbersFromGroupRequest
	50, // 49: phonerecon.v1.GroupService.ListGroupNumbers:input_type -> phonerecon.v1.ListGroupNumbersRequest
	52, // 50: phonerecon.v1.ContactService.PreviewImport:input_type -> phonerecon.v1.PreviewImportRequest
	56, // 51: phonerecon.v1.ContactService.ImportContacts:input_type -> phonerecon.v1.ImportContactsRequest
	58, // 52: phonerecon.v1.ContactService.ListContacts:input_type -> phonerecon.v1.ListContactsRequest
	60, // 53: phonerecon.v1.ContactService.ClearContacts:input_type -> phonerecon.v1.ClearContactsRequest
	62, // 54: phonerecon.v1.ComparisonService.RunComparison:input_type -> phonerecon.v1.RunComparisonRequest
	64, // 55: phonerecon.v1.ComparisonService.GetLatestStats:input_type -> phonerecon.v1.GetLatestStatsRequest
	66, // 56: phonerecon.v1.ComparisonService.ListClassifications:input_type -> phonerecon.v1.ListClassificationsRequest
	69, // 57: phonerecon.v1.ExportService.ExportNumbersCSV:input_type -> phonerecon.v1.ExportNumbersCSVRequest
	71, // 58: phonerecon.v1.ExportService.ExportNumbersXLSX:input_type -> phonerecon.v1.ExportNumbersXLSXRequest
	73, // 59: phonerecon.v1.ExportService.ExportComparisonCSV:input_type -> phonerecon.v1.ExportComparisonCSVRequest
	75, // 60: phonerecon.v1.ExportService.ExportNewNumbersCSV:input_type -> phonerecon.v1.ExportNewNumbersCSVRequest
	10, // 61: phonerecon.v1.ScreenshotService.RegisterScreenshot:output_type -> phonerecon.v1.RegisterScreenshotResponse
	12, // 62: phonerecon.v1.ScreenshotService.RegisterDirectory:output_type -> phonerecon.v1.RegisterDirectoryResponse
	14, // 63: phonerecon.v1.ScreenshotService.GetScreenshot:output_type -> phonerecon.v1.GetScreenshotResponse
	16, // 64: phonerecon.v1.ScreenshotService.ListScreenshots:output_type -> phonerecon.v1.ListScreenshotsResponse
	18, // 65: phonerecon.v1.ScreenshotService.UpdateScreenshot:output_type -> phonerecon.v1.UpdateScreenshotResponse
	20, // 66: phonerecon.v1.ScreenshotService.DeleteScreenshot:output_type -> phonerecon.v1.DeleteScreenshotResponse
	22, // 67: phonerecon.v1.ExtractionService.ExtractScreenshot:output_type -> phonerecon.v1.ExtractScreenshotResponse
	24, // 68: phonerecon.v1.ExtractionService.ExtractBatch:output_type -> phonerecon.v1.ExtractBatchResponse
	26, // 69: phonerecon.v1.NumberService.ListNumbers:output_type -> phonerecon.v1.ListNumbersResponse
	30, // 70: phonerecon.v1.NumberService.GetNumberStats:output_type -> phonerecon.v1.GetNumberStatsResponse
	33, // 71: phonerecon.v1.NumberService.ListDuplicates:output_type -> phonerecon.v1.ListDuplicatesResponse
	35, // 72: phonerecon.v1.NumberService.DeleteNumbers:output_type -> phonerecon.v1.DeleteNumbersResponse
	37, // 73: phonerecon.v1.GroupService.CreateGroup:output_type -> phonerecon.v1.CreateGroupResponse
	39, // 74: phonerecon.v1.GroupService.GetGroup:output_type -> phonerecon.v1.GetGroupResponse
	41, // 75: phonerecon.v1.GroupService.ListGroups:output_type -> phonerecon.v1.ListGroupsResponse
	43, // 76: phonerecon.v1.GroupService.UpdateGroup:output_type -> phonerecon.v1.UpdateGroupResponse
	45, // 77: phonerecon.v1.GroupService.DeleteGroup:output_type -> phonerecon.v1.DeleteGroupResponse
	47, // 78: phonerecon.v1.GroupService.AddNumbersToGroup:output_type -> phonerecon.v1.AddNumbersToGroupResponse
	49, // 79: phonerecon.v1.GroupService.RemoveNumbersFromGroup:output_type -> phonerecon.v1.RemoveNumbersFromGroupResponse
	51, // 80: phonerecon.v1.GroupService.ListGroupNumbers:output_type -> phonerecon.v1.ListGroupNumbersResponse
	54, // 81: phonerecon.v1.ContactService.PreviewImport:output_type -> phonerecon.v1.PreviewImportResponse
	57, // 82: phonerecon.v1.ContactService.ImportContacts:output_type -> phonerecon.v1.ImportContactsResponse
	59, // 83: phonerecon.v1.ContactService.ListContacts:output_type -> phonerecon.v1.ListContactsResponse
	61, // 84: phonerecon.v1.ContactService.ClearContacts:output_type -> phonerecon.v1.ClearContactsResponse
	63, // 85: phonerecon.v1.ComparisonService.RunComparison:output_type -> phonerecon.v1.RunComparisonResponse
	65, // 86: phonerecon.v1.ComparisonService.GetLatestStats:output_type -> phonerecon.v1.GetLatestStatsResponse
	67, // 87: phonerecon.v1.ComparisonService.ListClassifications:output_type -> phonerecon.v1.ListClassificationsResponse
	70, // 88: phonerecon.v1.ExportService.ExportNumbersCSV:output_type -> phonerecon.v1.ExportNumbersCSVResponse
	72, // 89: phonerecon.v1.ExportService.ExportNumbersXLSX:output_type -> phonerecon.v1.ExportNumbersXLSXResponse
	74, // 90: phonerecon.v1.ExportService.ExportComparisonCSV:output_type -> phonerecon.v1.ExportComparisonCSVResponse
	76, // 91: phonerecon.v1.ExportService.ExportNewNumbersCSV:output_type -> phonerecon.v1.ExportNewNumbersCSVResponse
	61, // [61:92] is the sub-list for method output_type
	30, // [30:61] is the sub-list for method input_type
	30, // [30:30] is the sub-list for extension type_name
	30, // [30:30] is the sub-list for extension extendee
	0,  // [0:30] is the sub-list for field type_name
}

func init() { file_proto_phonerecon_v1_phonerecon_proto_init() }
func file_proto_phonerecon_v1_phonerecon_proto_init() {
	if File_proto_phonerecon_v1_phonerecon_proto != nil {
		return
	}
	file_proto_phonerecon_v1_phonerecon_proto_msgTypes[15].OneofWrappers = []any{}
	file_proto_phonerecon_v1_phonerecon_proto_msgTypes[17].OneofWrappers = []any{}
	file_proto_phonerecon_v1_phonerecon_proto_msgTypes[25].OneofWrappers = []any{}
	file_proto_phonerecon_v1_phonerecon_proto_msgTypes[42].OneofWrappers = []any{}
	file_proto_phonerecon_v1_phonerecon_proto_msgTypes[69].OneofWrappers = []any{}
	file_proto_phonerecon_v1_phonerecon_proto_msgTypes[71].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_phonerecon_v1_phonerecon_proto_rawDesc), len(file_proto_phonerecon_v1_phonerecon_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   79,
			NumExtensions: 0,
			NumServices:   7,
		},
		GoTypes:           file_proto_phonerecon_v1_phonerecon_proto_goTypes,
		DependencyIndexes: file_proto_phonerecon_v1_phonerecon_proto_depIdxs,
		MessageInfos:      file_proto_phonerecon_v1_phonerecon_proto_msgTypes,
	}.Build()
	File_proto_phonerecon_v1_phonerecon_proto = out.File
	file_proto_phonerecon_v1_phonerecon_proto_goTypes = nil
	file_proto_phonerecon_v1_phonerecon_proto_depIdxs = nil
}
