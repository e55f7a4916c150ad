// Code generated by ent, DO NOT EDIT.

package postback

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the postback type in the database.
	Label = "postback"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClickID holds the string denoting the click_id field in the database.
	FieldClickID = "click_id"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
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
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the postback in the database.
	Table = "postbacks"
)

// Columns holds all SQL columns for postback fields.
var Columns = []string{
	FieldID,
	FieldClickID,
	FieldGoal,
	FieldAffiliateID,
	FieldOfferID,
	FieldAmount,
	FieldSaleAmount,
	FieldStatus,
	FieldSub1,
	FieldSub2,
	FieldSub3,
	FieldCreatedAt,
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
	// DefaultAmount holds the default value on creation for the "amount" field.
	DefaultAmount float64
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Goal defines the type for the "goal" enum field.
type Goal string

// Goal values.
const (
	GoalRegistration Goal = "registration"
	GoalDeposit      Goal = "deposit"
)

func (_go Goal) String() string {
	return string(_go)
}

// GoalValidator is a validator for the "goal" field enum values. It is called by the builders before save.
func GoalValidator(_go Goal) error {
	switch _go {
	case GoalRegistration, GoalDeposit:
		return nil
	default:
		return fmt.Errorf("postback: invalid enum value for goal field: %q", _go)
	}
}

// OrderOption defines the ordering options for the Postback queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClickID orders the results by the click_id field.
func ByClickID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClickID, opts...).ToFunc()
}

// ByGoal orders the results by the goal field.
func ByGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoal, opts...).ToFunc()
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

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
