// Code generated by ent, DO NOT EDIT.

package contact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contact type in the database.
	Label = "contact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAffiliateStatus holds the string denoting the affiliate_status field in the database.
	FieldAffiliateStatus = "affiliate_status"
	// FieldMessenger holds the string denoting the messenger field in the database.
	FieldMessenger = "messenger"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldAffiliateID holds the string denoting the affiliate_id field in the database.
	FieldAffiliateID = "affiliate_id"
	// FieldURLID holds the string denoting the url_id field in the database.
	FieldURLID = "url_id"
	// FieldSub1 holds the string denoting the sub1 field in the database.
	FieldSub1 = "sub1"
	// FieldSub2 holds the string denoting the sub2 field in the database.
	FieldSub2 = "sub2"
	// FieldSub3 holds the string denoting the sub3 field in the database.
	FieldSub3 = "sub3"
	// FieldCampaignID holds the string denoting the campaign_id field in the database.
	FieldCampaignID = "campaign_id"
	// FieldTrackingSource holds the string denoting the tracking_source field in the database.
	FieldTrackingSource = "tracking_source"
	// FieldTrackingLink holds the string denoting the tracking_link field in the database.
	FieldTrackingLink = "tracking_link"
	// FieldAffiliateRegistered holds the string denoting the affiliate_registered field in the database.
	FieldAffiliateRegistered = "affiliate_registered"
	// FieldAffiliateError holds the string denoting the affiliate_error field in the database.
	FieldAffiliateError = "affiliate_error"
	// FieldFtd holds the string denoting the ftd field in the database.
	FieldFtd = "ftd"
	// FieldFtdAmount holds the string denoting the ftd_amount field in the database.
	FieldFtdAmount = "ftd_amount"
	// FieldFtdDate holds the string denoting the ftd_date field in the database.
	FieldFtdDate = "ftd_date"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the contact in the database.
	Table = "contacts"
)

// Columns holds all SQL columns for contact fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldName,
	FieldCompany,
	FieldType,
	FieldStatus,
	FieldAffiliateStatus,
	FieldMessenger,
	FieldUsername,
	FieldMessage,
	FieldNotes,
	FieldAffiliateID,
	FieldURLID,
	FieldSub1,
	FieldSub2,
	FieldSub3,
	FieldCampaignID,
	FieldTrackingSource,
	FieldTrackingLink,
	FieldAffiliateRegistered,
	FieldAffiliateError,
	FieldFtd,
	FieldFtdAmount,
	FieldFtdDate,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultAffiliateRegistered holds the default value on creation for the "affiliate_registered" field.
	DefaultAffiliateRegistered bool
	// DefaultFtd holds the default value on creation for the "ftd" field.
	DefaultFtd bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeAffiliate  Type = "affiliate"
	TypePublisher  Type = "publisher"
	TypeAdvertiser Type = "advertiser"
	TypeInfluencer Type = "influencer"
	TypeMediaBuyer Type = "media_buyer"
	TypeAgency     Type = "agency"
	TypeUser       Type = "user"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeAffiliate, TypePublisher, TypeAdvertiser, TypeInfluencer, TypeMediaBuyer, TypeAgency, TypeUser:
		return nil
	default:
		return fmt.Errorf("contact: invalid enum value for type field: %q", _type)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusQualified Status = "qualified"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusRejected:
		return nil
	default:
		return fmt.Errorf("contact: invalid enum value for status field: %q", s)
	}
}

// AffiliateStatus defines the type for the "affiliate_status" enum field.
type AffiliateStatus string

// AffiliateStatusPending is the default value of the AffiliateStatus enum.
const DefaultAffiliateStatus = AffiliateStatusPending

// AffiliateStatus values.
const (
	AffiliateStatusPending  AffiliateStatus = "pending"
	AffiliateStatusApproved AffiliateStatus = "approved"
	AffiliateStatusRejected AffiliateStatus = "rejected"
)

func (as AffiliateStatus) String() string {
	return string(as)
}

// AffiliateStatusValidator is a validator for the "affiliate_status" field enum values. It is called by the builders before save.
func AffiliateStatusValidator(as AffiliateStatus) error {
	switch as {
	case AffiliateStatusPending, AffiliateStatusApproved, AffiliateStatusRejected:
		return nil
	default:
		return fmt.Errorf("contact: invalid enum value for affiliate_status field: %q", as)
	}
}

// OrderOption defines the ordering options for the Contact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAffiliateStatus orders the results by the affiliate_status field.
func ByAffiliateStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffiliateStatus, opts...).ToFunc()
}

// ByMessenger orders the results by the messenger field.
func ByMessenger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessenger, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByMessage orders the results by the message field.
func ByMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessage, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByAffiliateID orders the results by the affiliate_id field.
func ByAffiliateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffiliateID, opts...).ToFunc()
}

// ByURLID orders the results by the url_id field.
func ByURLID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURLID, opts...).ToFunc()
}

// BySub1 orders the results by the sub1 field.
func BySub1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSub1, opts...).ToFunc()
}

// BySub2 orders the results by the sub2 field.
func BySub2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSub2, opts...).ToFunc()
}

// BySub3 orders the results by the sub3 field.
func BySub3(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSub3, opts...).ToFunc()
}

// ByCampaignID orders the results by the campaign_id field.
func ByCampaignID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignID, opts...).ToFunc()
}

// ByTrackingSource orders the results by the tracking_source field.
func ByTrackingSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrackingSource, opts...).ToFunc()
}

// ByTrackingLink orders the results by the tracking_link field.
func ByTrackingLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrackingLink, opts...).ToFunc()
}

// ByAffiliateRegistered orders the results by the affiliate_registered field.
func ByAffiliateRegistered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffiliateRegistered, opts...).ToFunc()
}

// ByAffiliateError orders the results by the affiliate_error field.
func ByAffiliateError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffiliateError, opts...).ToFunc()
}

// ByFtd orders the results by the ftd field.
func ByFtd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFtd, opts...).ToFunc()
}

// ByFtdAmount orders the results by the ftd_amount field.
func ByFtdAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFtdAmount, opts...).ToFunc()
}

// ByFtdDate orders the results by the ftd_date field.
func ByFtdDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFtdDate, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
