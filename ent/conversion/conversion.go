// Code generated by ent, DO NOT EDIT.

package conversion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the conversion type in the database.
	Label = "conversion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClickID holds the string denoting the click_id field in the database.
	FieldClickID = "click_id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldGoalType holds the string denoting the goal_type field in the database.
	FieldGoalType = "goal_type"
	// FieldAffiliateID holds the string denoting the affiliate_id field in the database.
	FieldAffiliateID = "affiliate_id"
	// FieldOfferID holds the string denoting the offer_id field in the database.
	FieldOfferID = "offer_id"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldSaleAmount holds the string denoting the sale_amount field in the database.
	FieldSaleAmount = "sale_amount"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSub1 holds the string denoting the sub1 field in the database.
	FieldSub1 = "sub1"
	// FieldSub2 holds the string denoting the sub2 field in the database.
	FieldSub2 = "sub2"
	// FieldSub3 holds the string denoting the sub3 field in the database.
	FieldSub3 = "sub3"
	// FieldSub4 holds the string denoting the sub4 field in the database.
	FieldSub4 = "sub4"
	// FieldSub5 holds the string denoting the sub5 field in the database.
	FieldSub5 = "sub5"
	// FieldUserAgent holds the string denoting the user_agent field in the database.
	FieldUserAgent = "user_agent"
	// FieldIPAddress holds the string denoting the ip_address field in the database.
	FieldIPAddress = "ip_address"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldBrowser holds the string denoting the browser field in the database.
	FieldBrowser = "browser"
	// FieldOs holds the string denoting the os field in the database.
	FieldOs = "os"
	// FieldOsVersion holds the string denoting the os_version field in the database.
	FieldOsVersion = "os_version"
	// FieldManufacturer holds the string denoting the manufacturer field in the database.
	FieldManufacturer = "manufacturer"
	// FieldDeviceType holds the string denoting the device_type field in the database.
	FieldDeviceType = "device_type"
	// FieldIsTest holds the string denoting the is_test field in the database.
	FieldIsTest = "is_test"
	// FieldClickHash holds the string denoting the click_hash field in the database.
	FieldClickHash = "click_hash"
	// FieldAdvertiserID holds the string denoting the advertiser_id field in the database.
	FieldAdvertiserID = "advertiser_id"
	// FieldOfferURLID holds the string denoting the offer_url_id field in the database.
	FieldOfferURLID = "offer_url_id"
	// FieldAffiliateSource holds the string denoting the affiliate_source field in the database.
	FieldAffiliateSource = "affiliate_source"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the conversion in the database.
	Table = "conversions"
)

// Columns holds all SQL columns for conversion fields.
var Columns = []string{
	FieldID,
	FieldClickID,
	FieldGoalID,
	FieldGoalType,
	FieldAffiliateID,
	FieldOfferID,
	FieldAmount,
	FieldSaleAmount,
	FieldStatus,
	FieldSub1,
	FieldSub2,
	FieldSub3,
	FieldSub4,
	FieldSub5,
	FieldUserAgent,
	FieldIPAddress,
	FieldCountry,
	FieldRegion,
	FieldSource,
	FieldPlatform,
	FieldBrowser,
	FieldOs,
	FieldOsVersion,
	FieldManufacturer,
	FieldDeviceType,
	FieldIsTest,
	FieldClickHash,
	FieldAdvertiserID,
	FieldOfferURLID,
	FieldAffiliateSource,
	FieldMetadata,
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
	// ClickIDValidator is a validator for the "click_id" field. It is called by the builders before save.
	ClickIDValidator func(string) error
	// GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	GoalIDValidator func(string) error
	// DefaultAmount holds the default value on creation for the "amount" field.
	DefaultAmount float64
	// DefaultIsTest holds the default value on creation for the "is_test" field.
	DefaultIsTest bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// GoalType defines the type for the "goal_type" enum field.
type GoalType string

// GoalType values.
const (
	GoalTypeRegistration GoalType = "registration"
	GoalTypeDeposit      GoalType = "deposit"
	GoalTypeOther        GoalType = "other"
)

func (gt GoalType) String() string {
	return string(gt)
}

// GoalTypeValidator is a validator for the "goal_type" field enum values. It is called by the builders before save.
func GoalTypeValidator(gt GoalType) error {
	switch gt {
	case GoalTypeRegistration, GoalTypeDeposit, GoalTypeOther:
		return nil
	default:
		return fmt.Errorf("conversion: invalid enum value for goal_type field: %q", gt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return nil
	default:
		return fmt.Errorf("conversion: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Conversion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClickID orders the results by the click_id field.
func ByClickID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClickID, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByGoalType orders the results by the goal_type field.
func ByGoalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalType, opts...).ToFunc()
}

// ByAffiliateID orders the results by the affiliate_id field.
func ByAffiliateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffiliateID, opts...).ToFunc()
}

// ByOfferID orders the results by the offer_id field.
func ByOfferID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfferID, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// BySaleAmount orders the results by the sale_amount field.
func BySaleAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSaleAmount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
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

// BySub4 orders the results by the sub4 field.
func BySub4(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSub4, opts...).ToFunc()
}

// BySub5 orders the results by the sub5 field.
func BySub5(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSub5, opts...).ToFunc()
}

// ByUserAgent orders the results by the user_agent field.
func ByUserAgent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAgent, opts...).ToFunc()
}

// ByIPAddress orders the results by the ip_address field.
func ByIPAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIPAddress, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByBrowser orders the results by the browser field.
func ByBrowser(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrowser, opts...).ToFunc()
}

// ByOs orders the results by the os field.
func ByOs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOs, opts...).ToFunc()
}

// ByOsVersion orders the results by the os_version field.
func ByOsVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOsVersion, opts...).ToFunc()
}

// ByManufacturer orders the results by the manufacturer field.
func ByManufacturer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldManufacturer, opts...).ToFunc()
}

// ByDeviceType orders the results by the device_type field.
func ByDeviceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceType, opts...).ToFunc()
}

// ByIsTest orders the results by the is_test field.
func ByIsTest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTest, opts...).ToFunc()
}

// ByClickHash orders the results by the click_hash field.
func ByClickHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClickHash, opts...).ToFunc()
}

// ByAdvertiserID orders the results by the advertiser_id field.
func ByAdvertiserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdvertiserID, opts...).ToFunc()
}

// ByOfferURLID orders the results by the offer_url_id field.
func ByOfferURLID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfferURLID, opts...).ToFunc()
}

// ByAffiliateSource orders the results by the affiliate_source field.
func ByAffiliateSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffiliateSource, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
