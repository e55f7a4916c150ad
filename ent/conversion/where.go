// Code generated by ent, DO NOT EDIT.

package conversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/barracuda-partners/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldID, id))
}

// ClickID applies equality check predicate on the "click_id" field. It's identical to ClickIDEQ.
func ClickID(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldClickID, v))
}

// GoalID applies equality check predicate on the "goal_id" field. It's identical to GoalIDEQ.
func GoalID(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldGoalID, v))
}

// AffiliateID applies equality check predicate on the "affiliate_id" field. It's identical to AffiliateIDEQ.
func AffiliateID(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldAffiliateID, v))
}

// OfferID applies equality check predicate on the "offer_id" field. It's identical to OfferIDEQ.
func OfferID(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldOfferID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldAmount, v))
}

// SaleAmount applies equality check predicate on the "sale_amount" field. It's identical to SaleAmountEQ.
func SaleAmount(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSaleAmount, v))
}

// Sub1 applies equality check predicate on the "sub1" field. It's identical to Sub1EQ.
func Sub1(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSub1, v))
}

// Sub2 applies equality check predicate on the "sub2" field. It's identical to Sub2EQ.
func Sub2(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSub2, v))
}

// Sub3 applies equality check predicate on the "sub3" field. It's identical to Sub3EQ.
func Sub3(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSub3, v))
}

// Sub4 applies equality check predicate on the "sub4" field. It's identical to Sub4EQ.
func Sub4(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSub4, v))
}

// Sub5 applies equality check predicate on the "sub5" field. It's identical to Sub5EQ.
func Sub5(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSub5, v))
}

// UserAgent applies equality check predicate on the "user_agent" field. It's identical to UserAgentEQ.
func UserAgent(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldUserAgent, v))
}

// IPAddress applies equality check predicate on the "ip_address" field. It's identical to IPAddressEQ.
func IPAddress(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldIPAddress, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldCountry, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldRegion, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSource, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldPlatform, v))
}

// Browser applies equality check predicate on the "browser" field. It's identical to BrowserEQ.
func Browser(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldBrowser, v))
}

// Os applies equality check predicate on the "os" field. It's identical to OsEQ.
func Os(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldOs, v))
}

// OsVersion applies equality check predicate on the "os_version" field. It's identical to OsVersionEQ.
func OsVersion(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldOsVersion, v))
}

// Manufacturer applies equality check predicate on the "manufacturer" field. It's identical to ManufacturerEQ.
func Manufacturer(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldManufacturer, v))
}

// DeviceType applies equality check predicate on the "device_type" field. It's identical to DeviceTypeEQ.
func DeviceType(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldDeviceType, v))
}

// IsTest applies equality check predicate on the "is_test" field. It's identical to IsTestEQ.
func IsTest(v bool) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldIsTest, v))
}

// ClickHash applies equality check predicate on the "click_hash" field. It's identical to ClickHashEQ.
func ClickHash(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldClickHash, v))
}

// AdvertiserID applies equality check predicate on the "advertiser_id" field. It's identical to AdvertiserIDEQ.
func AdvertiserID(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldAdvertiserID, v))
}

// OfferURLID applies equality check predicate on the "offer_url_id" field. It's identical to OfferURLIDEQ.
func OfferURLID(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldOfferURLID, v))
}

// AffiliateSource applies equality check predicate on the "affiliate_source" field. It's identical to AffiliateSourceEQ.
func AffiliateSource(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldAffiliateSource, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClickIDEQ applies the EQ predicate on the "click_id" field.
func ClickIDEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldClickID, v))
}

// ClickIDNEQ applies the NEQ predicate on the "click_id" field.
func ClickIDNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldClickID, v))
}

// ClickIDIn applies the In predicate on the "click_id" field.
func ClickIDIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldClickID, vs...))
}

// ClickIDNotIn applies the NotIn predicate on the "click_id" field.
func ClickIDNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldClickID, vs...))
}

// ClickIDGT applies the GT predicate on the "click_id" field.
func ClickIDGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldClickID, v))
}

// ClickIDGTE applies the GTE predicate on the "click_id" field.
func ClickIDGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldClickID, v))
}

// ClickIDLT applies the LT predicate on the "click_id" field.
func ClickIDLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldClickID, v))
}

// ClickIDLTE applies the LTE predicate on the "click_id" field.
func ClickIDLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldClickID, v))
}

// ClickIDContains applies the Contains predicate on the "click_id" field.
func ClickIDContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldClickID, v))
}

// ClickIDHasPrefix applies the HasPrefix predicate on the "click_id" field.
func ClickIDHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldClickID, v))
}

// ClickIDHasSuffix applies the HasSuffix predicate on the "click_id" field.
func ClickIDHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldClickID, v))
}

// ClickIDEqualFold applies the EqualFold predicate on the "click_id" field.
func ClickIDEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldClickID, v))
}

// ClickIDContainsFold applies the ContainsFold predicate on the "click_id" field.
func ClickIDContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldClickID, v))
}

// GoalIDEQ applies the EQ predicate on the "goal_id" field.
func GoalIDEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldGoalID, v))
}

// GoalIDNEQ applies the NEQ predicate on the "goal_id" field.
func GoalIDNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldGoalID, v))
}

// GoalIDIn applies the In predicate on the "goal_id" field.
func GoalIDIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldGoalID, vs...))
}

// GoalIDNotIn applies the NotIn predicate on the "goal_id" field.
func GoalIDNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldGoalID, vs...))
}

// GoalIDGT applies the GT predicate on the "goal_id" field.
func GoalIDGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldGoalID, v))
}

// GoalIDGTE applies the GTE predicate on the "goal_id" field.
func GoalIDGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldGoalID, v))
}

// GoalIDLT applies the LT predicate on the "goal_id" field.
func GoalIDLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldGoalID, v))
}

// GoalIDLTE applies the LTE predicate on the "goal_id" field.
func GoalIDLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldGoalID, v))
}

// GoalIDContains applies the Contains predicate on the "goal_id" field.
func GoalIDContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldGoalID, v))
}

// GoalIDHasPrefix applies the HasPrefix predicate on the "goal_id" field.
func GoalIDHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldGoalID, v))
}

// GoalIDHasSuffix applies the HasSuffix predicate on the "goal_id" field.
func GoalIDHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldGoalID, v))
}

// GoalIDEqualFold applies the EqualFold predicate on the "goal_id" field.
func GoalIDEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldGoalID, v))
}

// GoalIDContainsFold applies the ContainsFold predicate on the "goal_id" field.
func GoalIDContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldGoalID, v))
}

// GoalTypeEQ applies the EQ predicate on the "goal_type" field.
func GoalTypeEQ(v GoalType) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldGoalType, v))
}

// GoalTypeNEQ applies the NEQ predicate on the "goal_type" field.
func GoalTypeNEQ(v GoalType) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldGoalType, v))
}

// GoalTypeIn applies the In predicate on the "goal_type" field.
func GoalTypeIn(vs ...GoalType) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldGoalType, vs...))
}

// GoalTypeNotIn applies the NotIn predicate on the "goal_type" field.
func GoalTypeNotIn(vs ...GoalType) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldGoalType, vs...))
}

// AffiliateIDEQ applies the EQ predicate on the "affiliate_id" field.
func AffiliateIDEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldAffiliateID, v))
}

// AffiliateIDNEQ applies the NEQ predicate on the "affiliate_id" field.
func AffiliateIDNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldAffiliateID, v))
}

// AffiliateIDIn applies the In predicate on the "affiliate_id" field.
func AffiliateIDIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldAffiliateID, vs...))
}

// AffiliateIDNotIn applies the NotIn predicate on the "affiliate_id" field.
func AffiliateIDNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldAffiliateID, vs...))
}

// AffiliateIDGT applies the GT predicate on the "affiliate_id" field.
func AffiliateIDGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldAffiliateID, v))
}

// AffiliateIDGTE applies the GTE predicate on the "affiliate_id" field.
func AffiliateIDGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldAffiliateID, v))
}

// AffiliateIDLT applies the LT predicate on the "affiliate_id" field.
func AffiliateIDLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldAffiliateID, v))
}

// AffiliateIDLTE applies the LTE predicate on the "affiliate_id" field.
func AffiliateIDLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldAffiliateID, v))
}

// AffiliateIDContains applies the Contains predicate on the "affiliate_id" field.
func AffiliateIDContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldAffiliateID, v))
}

// AffiliateIDHasPrefix applies the HasPrefix predicate on the "affiliate_id" field.
func AffiliateIDHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldAffiliateID, v))
}

// AffiliateIDHasSuffix applies the HasSuffix predicate on the "affiliate_id" field.
func AffiliateIDHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldAffiliateID, v))
}

// AffiliateIDIsNil applies the IsNil predicate on the "affiliate_id" field.
func AffiliateIDIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldAffiliateID))
}

// AffiliateIDNotNil applies the NotNil predicate on the "affiliate_id" field.
func AffiliateIDNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldAffiliateID))
}

// AffiliateIDEqualFold applies the EqualFold predicate on the "affiliate_id" field.
func AffiliateIDEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldAffiliateID, v))
}

// AffiliateIDContainsFold applies the ContainsFold predicate on the "affiliate_id" field.
func AffiliateIDContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldAffiliateID, v))
}

// OfferIDEQ applies the EQ predicate on the "offer_id" field.
func OfferIDEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldOfferID, v))
}

// OfferIDNEQ applies the NEQ predicate on the "offer_id" field.
func OfferIDNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldOfferID, v))
}

// OfferIDIn applies the In predicate on the "offer_id" field.
func OfferIDIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldOfferID, vs...))
}

// OfferIDNotIn applies the NotIn predicate on the "offer_id" field.
func OfferIDNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldOfferID, vs...))
}

// OfferIDGT applies the GT predicate on the "offer_id" field.
func OfferIDGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldOfferID, v))
}

// OfferIDGTE applies the GTE predicate on the "offer_id" field.
func OfferIDGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldOfferID, v))
}

// OfferIDLT applies the LT predicate on the "offer_id" field.
func OfferIDLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldOfferID, v))
}

// OfferIDLTE applies the LTE predicate on the "offer_id" field.
func OfferIDLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldOfferID, v))
}

// OfferIDContains applies the Contains predicate on the "offer_id" field.
func OfferIDContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldOfferID, v))
}

// OfferIDHasPrefix applies the HasPrefix predicate on the "offer_id" field.
func OfferIDHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldOfferID, v))
}

// OfferIDHasSuffix applies the HasSuffix predicate on the "offer_id" field.
func OfferIDHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldOfferID, v))
}

// OfferIDIsNil applies the IsNil predicate on the "offer_id" field.
func OfferIDIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldOfferID))
}

// OfferIDNotNil applies the NotNil predicate on the "offer_id" field.
func OfferIDNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldOfferID))
}

// OfferIDEqualFold applies the EqualFold predicate on the "offer_id" field.
func OfferIDEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldOfferID, v))
}

// OfferIDContainsFold applies the ContainsFold predicate on the "offer_id" field.
func OfferIDContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldOfferID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldAmount, v))
}

// SaleAmountEQ applies the EQ predicate on the "sale_amount" field.
func SaleAmountEQ(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSaleAmount, v))
}

// SaleAmountNEQ applies the NEQ predicate on the "sale_amount" field.
func SaleAmountNEQ(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldSaleAmount, v))
}

// SaleAmountIn applies the In predicate on the "sale_amount" field.
func SaleAmountIn(vs ...float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldSaleAmount, vs...))
}

// SaleAmountNotIn applies the NotIn predicate on the "sale_amount" field.
func SaleAmountNotIn(vs ...float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldSaleAmount, vs...))
}

// SaleAmountGT applies the GT predicate on the "sale_amount" field.
func SaleAmountGT(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldSaleAmount, v))
}

// SaleAmountGTE applies the GTE predicate on the "sale_amount" field.
func SaleAmountGTE(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldSaleAmount, v))
}

// SaleAmountLT applies the LT predicate on the "sale_amount" field.
func SaleAmountLT(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldSaleAmount, v))
}

// SaleAmountLTE applies the LTE predicate on the "sale_amount" field.
func SaleAmountLTE(v float64) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldSaleAmount, v))
}

// SaleAmountIsNil applies the IsNil predicate on the "sale_amount" field.
func SaleAmountIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldSaleAmount))
}

// SaleAmountNotNil applies the NotNil predicate on the "sale_amount" field.
func SaleAmountNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldSaleAmount))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldStatus, vs...))
}

// Sub1EQ applies the EQ predicate on the "sub1" field.
func Sub1EQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSub1, v))
}

// Sub1NEQ applies the NEQ predicate on the "sub1" field.
func Sub1NEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldSub1, v))
}

// Sub1In applies the In predicate on the "sub1" field.
func Sub1In(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldSub1, vs...))
}

// Sub1NotIn applies the NotIn predicate on the "sub1" field.
func Sub1NotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldSub1, vs...))
}

// Sub1GT applies the GT predicate on the "sub1" field.
func Sub1GT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldSub1, v))
}

// Sub1GTE applies the GTE predicate on the "sub1" field.
func Sub1GTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldSub1, v))
}

// Sub1LT applies the LT predicate on the "sub1" field.
func Sub1LT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldSub1, v))
}

// Sub1LTE applies the LTE predicate on the "sub1" field.
func Sub1LTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldSub1, v))
}

// Sub1Contains applies the Contains predicate on the "sub1" field.
func Sub1Contains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldSub1, v))
}

// Sub1HasPrefix applies the HasPrefix predicate on the "sub1" field.
func Sub1HasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldSub1, v))
}

// Sub1HasSuffix applies the HasSuffix predicate on the "sub1" field.
func Sub1HasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldSub1, v))
}

// Sub1IsNil applies the IsNil predicate on the "sub1" field.
func Sub1IsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldSub1))
}

// Sub1NotNil applies the NotNil predicate on the "sub1" field.
func Sub1NotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldSub1))
}

// Sub1EqualFold applies the EqualFold predicate on the "sub1" field.
func Sub1EqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldSub1, v))
}

// Sub1ContainsFold applies the ContainsFold predicate on the "sub1" field.
func Sub1ContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldSub1, v))
}

// Sub2EQ applies the EQ predicate on the "sub2" field.
func Sub2EQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSub2, v))
}

// Sub2NEQ applies the NEQ predicate on the "sub2" field.
func Sub2NEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldSub2, v))
}

// Sub2In applies the In predicate on the "sub2" field.
func Sub2In(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldSub2, vs...))
}

// Sub2NotIn applies the NotIn predicate on the "sub2" field.
func Sub2NotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldSub2, vs...))
}

// Sub2GT applies the GT predicate on the "sub2" field.
func Sub2GT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldSub2, v))
}

// Sub2GTE applies the GTE predicate on the "sub2" field.
func Sub2GTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldSub2, v))
}

// Sub2LT applies the LT predicate on the "sub2" field.
func Sub2LT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldSub2, v))
}

// Sub2LTE applies the LTE predicate on the "sub2" field.
func Sub2LTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldSub2, v))
}

// Sub2Contains applies the Contains predicate on the "sub2" field.
func Sub2Contains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldSub2, v))
}

// Sub2HasPrefix applies the HasPrefix predicate on the "sub2" field.
func Sub2HasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldSub2, v))
}

// Sub2HasSuffix applies the HasSuffix predicate on the "sub2" field.
func Sub2HasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldSub2, v))
}

// Sub2IsNil applies the IsNil predicate on the "sub2" field.
func Sub2IsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldSub2))
}

// Sub2NotNil applies the NotNil predicate on the "sub2" field.
func Sub2NotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldSub2))
}

// Sub2EqualFold applies the EqualFold predicate on the "sub2" field.
func Sub2EqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldSub2, v))
}

// Sub2ContainsFold applies the ContainsFold predicate on the "sub2" field.
func Sub2ContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldSub2, v))
}

// Sub3EQ applies the EQ predicate on the "sub3" field.
func Sub3EQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSub3, v))
}

// Sub3NEQ applies the NEQ predicate on the "sub3" field.
func Sub3NEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldSub3, v))
}

// Sub3In applies the In predicate on the "sub3" field.
func Sub3In(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldSub3, vs...))
}

// Sub3NotIn applies the NotIn predicate on the "sub3" field.
func Sub3NotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldSub3, vs...))
}

// Sub3GT applies the GT predicate on the "sub3" field.
func Sub3GT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldSub3, v))
}

// Sub3GTE applies the GTE predicate on the "sub3" field.
func Sub3GTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldSub3, v))
}

// Sub3LT applies the LT predicate on the "sub3" field.
func Sub3LT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldSub3, v))
}

// Sub3LTE applies the LTE predicate on the "sub3" field.
func Sub3LTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldSub3, v))
}

// Sub3Contains applies the Contains predicate on the "sub3" field.
func Sub3Contains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldSub3, v))
}

// Sub3HasPrefix applies the HasPrefix predicate on the "sub3" field.
func Sub3HasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldSub3, v))
}

// Sub3HasSuffix applies the HasSuffix predicate on the "sub3" field.
func Sub3HasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldSub3, v))
}

// Sub3IsNil applies the IsNil predicate on the "sub3" field.
func Sub3IsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldSub3))
}

// Sub3NotNil applies the NotNil predicate on the "sub3" field.
func Sub3NotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldSub3))
}

// Sub3EqualFold applies the EqualFold predicate on the "sub3" field.
func Sub3EqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldSub3, v))
}

// Sub3ContainsFold applies the ContainsFold predicate on the "sub3" field.
func Sub3ContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldSub3, v))
}

// Sub4EQ applies the EQ predicate on the "sub4" field.
func Sub4EQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSub4, v))
}

// Sub4NEQ applies the NEQ predicate on the "sub4" field.
func Sub4NEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldSub4, v))
}

// Sub4In applies the In predicate on the "sub4" field.
func Sub4In(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldSub4, vs...))
}

// Sub4NotIn applies the NotIn predicate on the "sub4" field.
func Sub4NotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldSub4, vs...))
}

// Sub4GT applies the GT predicate on the "sub4" field.
func Sub4GT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldSub4, v))
}

// Sub4GTE applies the GTE predicate on the "sub4" field.
func Sub4GTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldSub4, v))
}

// Sub4LT applies the LT predicate on the "sub4" field.
func Sub4LT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldSub4, v))
}

// Sub4LTE applies the LTE predicate on the "sub4" field.
func Sub4LTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldSub4, v))
}

// Sub4Contains applies the Contains predicate on the "sub4" field.
func Sub4Contains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldSub4, v))
}

// Sub4HasPrefix applies the HasPrefix predicate on the "sub4" field.
func Sub4HasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldSub4, v))
}

// Sub4HasSuffix applies the HasSuffix predicate on the "sub4" field.
func Sub4HasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldSub4, v))
}

// Sub4IsNil applies the IsNil predicate on the "sub4" field.
func Sub4IsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldSub4))
}

// Sub4NotNil applies the NotNil predicate on the "sub4" field.
func Sub4NotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldSub4))
}

// Sub4EqualFold applies the EqualFold predicate on the "sub4" field.
func Sub4EqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldSub4, v))
}

// Sub4ContainsFold applies the ContainsFold predicate on the "sub4" field.
func Sub4ContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldSub4, v))
}

// Sub5EQ applies the EQ predicate on the "sub5" field.
func Sub5EQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSub5, v))
}

// Sub5NEQ applies the NEQ predicate on the "sub5" field.
func Sub5NEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldSub5, v))
}

// Sub5In applies the In predicate on the "sub5" field.
func Sub5In(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldSub5, vs...))
}

// Sub5NotIn applies the NotIn predicate on the "sub5" field.
func Sub5NotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldSub5, vs...))
}

// Sub5GT applies the GT predicate on the "sub5" field.
func Sub5GT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldSub5, v))
}

// Sub5GTE applies the GTE predicate on the "sub5" field.
func Sub5GTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldSub5, v))
}

// Sub5LT applies the LT predicate on the "sub5" field.
func Sub5LT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldSub5, v))
}

// Sub5LTE applies the LTE predicate on the "sub5" field.
func Sub5LTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldSub5, v))
}

// Sub5Contains applies the Contains predicate on the "sub5" field.
func Sub5Contains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldSub5, v))
}

// Sub5HasPrefix applies the HasPrefix predicate on the "sub5" field.
func Sub5HasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldSub5, v))
}

// Sub5HasSuffix applies the HasSuffix predicate on the "sub5" field.
func Sub5HasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldSub5, v))
}

// Sub5IsNil applies the IsNil predicate on the "sub5" field.
func Sub5IsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldSub5))
}

// Sub5NotNil applies the NotNil predicate on the "sub5" field.
func Sub5NotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldSub5))
}

// Sub5EqualFold applies the EqualFold predicate on the "sub5" field.
func Sub5EqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldSub5, v))
}

// Sub5ContainsFold applies the ContainsFold predicate on the "sub5" field.
func Sub5ContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldSub5, v))
}

// UserAgentEQ applies the EQ predicate on the "user_agent" field.
func UserAgentEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldUserAgent, v))
}

// UserAgentNEQ applies the NEQ predicate on the "user_agent" field.
func UserAgentNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldUserAgent, v))
}

// UserAgentIn applies the In predicate on the "user_agent" field.
func UserAgentIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldUserAgent, vs...))
}

// UserAgentNotIn applies the NotIn predicate on the "user_agent" field.
func UserAgentNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldUserAgent, vs...))
}

// UserAgentGT applies the GT predicate on the "user_agent" field.
func UserAgentGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldUserAgent, v))
}

// UserAgentGTE applies the GTE predicate on the "user_agent" field.
func UserAgentGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldUserAgent, v))
}

// UserAgentLT applies the LT predicate on the "user_agent" field.
func UserAgentLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldUserAgent, v))
}

// UserAgentLTE applies the LTE predicate on the "user_agent" field.
func UserAgentLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldUserAgent, v))
}

// UserAgentContains applies the Contains predicate on the "user_agent" field.
func UserAgentContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldUserAgent, v))
}

// UserAgentHasPrefix applies the HasPrefix predicate on the "user_agent" field.
func UserAgentHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldUserAgent, v))
}

// UserAgentHasSuffix applies the HasSuffix predicate on the "user_agent" field.
func UserAgentHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldUserAgent, v))
}

// UserAgentIsNil applies the IsNil predicate on the "user_agent" field.
func UserAgentIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldUserAgent))
}

// UserAgentNotNil applies the NotNil predicate on the "user_agent" field.
func UserAgentNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldUserAgent))
}

// UserAgentEqualFold applies the EqualFold predicate on the "user_agent" field.
func UserAgentEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldUserAgent, v))
}

// UserAgentContainsFold applies the ContainsFold predicate on the "user_agent" field.
func UserAgentContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldUserAgent, v))
}

// IPAddressEQ applies the EQ predicate on the "ip_address" field.
func IPAddressEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldIPAddress, v))
}

// IPAddressNEQ applies the NEQ predicate on the "ip_address" field.
func IPAddressNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldIPAddress, v))
}

// IPAddressIn applies the In predicate on the "ip_address" field.
func IPAddressIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldIPAddress, vs...))
}

// IPAddressNotIn applies the NotIn predicate on the "ip_address" field.
func IPAddressNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldIPAddress, vs...))
}

// IPAddressGT applies the GT predicate on the "ip_address" field.
func IPAddressGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldIPAddress, v))
}

// IPAddressGTE applies the GTE predicate on the "ip_address" field.
func IPAddressGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldIPAddress, v))
}

// IPAddressLT applies the LT predicate on the "ip_address" field.
func IPAddressLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldIPAddress, v))
}

// IPAddressLTE applies the LTE predicate on the "ip_address" field.
func IPAddressLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldIPAddress, v))
}

// IPAddressContains applies the Contains predicate on the "ip_address" field.
func IPAddressContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldIPAddress, v))
}

// IPAddressHasPrefix applies the HasPrefix predicate on the "ip_address" field.
func IPAddressHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldIPAddress, v))
}

// IPAddressHasSuffix applies the HasSuffix predicate on the "ip_address" field.
func IPAddressHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldIPAddress, v))
}

// IPAddressIsNil applies the IsNil predicate on the "ip_address" field.
func IPAddressIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldIPAddress))
}

// IPAddressNotNil applies the NotNil predicate on the "ip_address" field.
func IPAddressNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldIPAddress))
}

// IPAddressEqualFold applies the EqualFold predicate on the "ip_address" field.
func IPAddressEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldIPAddress, v))
}

// IPAddressContainsFold applies the ContainsFold predicate on the "ip_address" field.
func IPAddressContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldIPAddress, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryIsNil applies the IsNil predicate on the "country" field.
func CountryIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldCountry))
}

// CountryNotNil applies the NotNil predicate on the "country" field.
func CountryNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldCountry))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldCountry, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionIsNil applies the IsNil predicate on the "region" field.
func RegionIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldRegion))
}

// RegionNotNil applies the NotNil predicate on the "region" field.
func RegionNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldRegion))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldRegion, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldSource, v))
}

// SourceIsNil applies the IsNil predicate on the "source" field.
func SourceIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldSource))
}

// SourceNotNil applies the NotNil predicate on the "source" field.
func SourceNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldSource))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldSource, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformIsNil applies the IsNil predicate on the "platform" field.
func PlatformIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldPlatform))
}

// PlatformNotNil applies the NotNil predicate on the "platform" field.
func PlatformNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldPlatform))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldPlatform, v))
}

// BrowserEQ applies the EQ predicate on the "browser" field.
func BrowserEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldBrowser, v))
}

// BrowserNEQ applies the NEQ predicate on the "browser" field.
func BrowserNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldBrowser, v))
}

// BrowserIn applies the In predicate on the "browser" field.
func BrowserIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldBrowser, vs...))
}

// BrowserNotIn applies the NotIn predicate on the "browser" field.
func BrowserNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldBrowser, vs...))
}

// BrowserGT applies the GT predicate on the "browser" field.
func BrowserGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldBrowser, v))
}

// BrowserGTE applies the GTE predicate on the "browser" field.
func BrowserGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldBrowser, v))
}

// BrowserLT applies the LT predicate on the "browser" field.
func BrowserLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldBrowser, v))
}

// BrowserLTE applies the LTE predicate on the "browser" field.
func BrowserLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldBrowser, v))
}

// BrowserContains applies the Contains predicate on the "browser" field.
func BrowserContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldBrowser, v))
}

// BrowserHasPrefix applies the HasPrefix predicate on the "browser" field.
func BrowserHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldBrowser, v))
}

// BrowserHasSuffix applies the HasSuffix predicate on the "browser" field.
func BrowserHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldBrowser, v))
}

// BrowserIsNil applies the IsNil predicate on the "browser" field.
func BrowserIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldBrowser))
}

// BrowserNotNil applies the NotNil predicate on the "browser" field.
func BrowserNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldBrowser))
}

// BrowserEqualFold applies the EqualFold predicate on the "browser" field.
func BrowserEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldBrowser, v))
}

// BrowserContainsFold applies the ContainsFold predicate on the "browser" field.
func BrowserContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldBrowser, v))
}

// OsEQ applies the EQ predicate on the "os" field.
func OsEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldOs, v))
}

// OsNEQ applies the NEQ predicate on the "os" field.
func OsNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldOs, v))
}

// OsIn applies the In predicate on the "os" field.
func OsIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldOs, vs...))
}

// OsNotIn applies the NotIn predicate on the "os" field.
func OsNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldOs, vs...))
}

// OsGT applies the GT predicate on the "os" field.
func OsGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldOs, v))
}

// OsGTE applies the GTE predicate on the "os" field.
func OsGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldOs, v))
}

// OsLT applies the LT predicate on the "os" field.
func OsLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldOs, v))
}

// OsLTE applies the LTE predicate on the "os" field.
func OsLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldOs, v))
}

// OsContains applies the Contains predicate on the "os" field.
func OsContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldOs, v))
}

// OsHasPrefix applies the HasPrefix predicate on the "os" field.
func OsHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldOs, v))
}

// OsHasSuffix applies the HasSuffix predicate on the "os" field.
func OsHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldOs, v))
}

// OsIsNil applies the IsNil predicate on the "os" field.
func OsIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldOs))
}

// OsNotNil applies the NotNil predicate on the "os" field.
func OsNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldOs))
}

// OsEqualFold applies the EqualFold predicate on the "os" field.
func OsEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldOs, v))
}

// OsContainsFold applies the ContainsFold predicate on the "os" field.
func OsContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldOs, v))
}

// OsVersionEQ applies the EQ predicate on the "os_version" field.
func OsVersionEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldOsVersion, v))
}

// OsVersionNEQ applies the NEQ predicate on the "os_version" field.
func OsVersionNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldOsVersion, v))
}

// OsVersionIn applies the In predicate on the "os_version" field.
func OsVersionIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldOsVersion, vs...))
}

// OsVersionNotIn applies the NotIn predicate on the "os_version" field.
func OsVersionNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldOsVersion, vs...))
}

// OsVersionGT applies the GT predicate on the "os_version" field.
func OsVersionGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldOsVersion, v))
}

// OsVersionGTE applies the GTE predicate on the "os_version" field.
func OsVersionGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldOsVersion, v))
}

// OsVersionLT applies the LT predicate on the "os_version" field.
func OsVersionLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldOsVersion, v))
}

// OsVersionLTE applies the LTE predicate on the "os_version" field.
func OsVersionLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldOsVersion, v))
}

// OsVersionContains applies the Contains predicate on the "os_version" field.
func OsVersionContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldOsVersion, v))
}

// OsVersionHasPrefix applies the HasPrefix predicate on the "os_version" field.
func OsVersionHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldOsVersion, v))
}

// OsVersionHasSuffix applies the HasSuffix predicate on the "os_version" field.
func OsVersionHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldOsVersion, v))
}

// OsVersionIsNil applies the IsNil predicate on the "os_version" field.
func OsVersionIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldOsVersion))
}

// OsVersionNotNil applies the NotNil predicate on the "os_version" field.
func OsVersionNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldOsVersion))
}

// OsVersionEqualFold applies the EqualFold predicate on the "os_version" field.
func OsVersionEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldOsVersion, v))
}

// OsVersionContainsFold applies the ContainsFold predicate on the "os_version" field.
func OsVersionContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldOsVersion, v))
}

// ManufacturerEQ applies the EQ predicate on the "manufacturer" field.
func ManufacturerEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldManufacturer, v))
}

// ManufacturerNEQ applies the NEQ predicate on the "manufacturer" field.
func ManufacturerNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldManufacturer, v))
}

// ManufacturerIn applies the In predicate on the "manufacturer" field.
func ManufacturerIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldManufacturer, vs...))
}

// ManufacturerNotIn applies the NotIn predicate on the "manufacturer" field.
func ManufacturerNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldManufacturer, vs...))
}

// ManufacturerGT applies the GT predicate on the "manufacturer" field.
func ManufacturerGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldManufacturer, v))
}

// ManufacturerGTE applies the GTE predicate on the "manufacturer" field.
func ManufacturerGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldManufacturer, v))
}

// ManufacturerLT applies the LT predicate on the "manufacturer" field.
func ManufacturerLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldManufacturer, v))
}

// ManufacturerLTE applies the LTE predicate on the "manufacturer" field.
func ManufacturerLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldManufacturer, v))
}

// ManufacturerContains applies the Contains predicate on the "manufacturer" field.
func ManufacturerContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldManufacturer, v))
}

// ManufacturerHasPrefix applies the HasPrefix predicate on the "manufacturer" field.
func ManufacturerHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldManufacturer, v))
}

// ManufacturerHasSuffix applies the HasSuffix predicate on the "manufacturer" field.
func ManufacturerHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldManufacturer, v))
}

// ManufacturerIsNil applies the IsNil predicate on the "manufacturer" field.
func ManufacturerIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldManufacturer))
}

// ManufacturerNotNil applies the NotNil predicate on the "manufacturer" field.
func ManufacturerNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldManufacturer))
}

// ManufacturerEqualFold applies the EqualFold predicate on the "manufacturer" field.
func ManufacturerEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldManufacturer, v))
}

// ManufacturerContainsFold applies the ContainsFold predicate on the "manufacturer" field.
func ManufacturerContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldManufacturer, v))
}

// DeviceTypeEQ applies the EQ predicate on the "device_type" field.
func DeviceTypeEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldDeviceType, v))
}

// DeviceTypeNEQ applies the NEQ predicate on the "device_type" field.
func DeviceTypeNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldDeviceType, v))
}

// DeviceTypeIn applies the In predicate on the "device_type" field.
func DeviceTypeIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldDeviceType, vs...))
}

// DeviceTypeNotIn applies the NotIn predicate on the "device_type" field.
func DeviceTypeNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldDeviceType, vs...))
}

// DeviceTypeGT applies the GT predicate on the "device_type" field.
func DeviceTypeGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldDeviceType, v))
}

// DeviceTypeGTE applies the GTE predicate on the "device_type" field.
func DeviceTypeGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldDeviceType, v))
}

// DeviceTypeLT applies the LT predicate on the "device_type" field.
func DeviceTypeLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldDeviceType, v))
}

// DeviceTypeLTE applies the LTE predicate on the "device_type" field.
func DeviceTypeLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldDeviceType, v))
}

// DeviceTypeContains applies the Contains predicate on the "device_type" field.
func DeviceTypeContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldDeviceType, v))
}

// DeviceTypeHasPrefix applies the HasPrefix predicate on the "device_type" field.
func DeviceTypeHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldDeviceType, v))
}

// DeviceTypeHasSuffix applies the HasSuffix predicate on the "device_type" field.
func DeviceTypeHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldDeviceType, v))
}

// DeviceTypeIsNil applies the IsNil predicate on the "device_type" field.
func DeviceTypeIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldDeviceType))
}

// DeviceTypeNotNil applies the NotNil predicate on the "device_type" field.
func DeviceTypeNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldDeviceType))
}

// DeviceTypeEqualFold applies the EqualFold predicate on the "device_type" field.
func DeviceTypeEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldDeviceType, v))
}

// DeviceTypeContainsFold applies the ContainsFold predicate on the "device_type" field.
func DeviceTypeContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldDeviceType, v))
}

// IsTestEQ applies the EQ predicate on the "is_test" field.
func IsTestEQ(v bool) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldIsTest, v))
}

// IsTestNEQ applies the NEQ predicate on the "is_test" field.
func IsTestNEQ(v bool) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldIsTest, v))
}

// ClickHashEQ applies the EQ predicate on the "click_hash" field.
func ClickHashEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldClickHash, v))
}

// ClickHashNEQ applies the NEQ predicate on the "click_hash" field.
func ClickHashNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldClickHash, v))
}

// ClickHashIn applies the In predicate on the "click_hash" field.
func ClickHashIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldClickHash, vs...))
}

// ClickHashNotIn applies the NotIn predicate on the "click_hash" field.
func ClickHashNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldClickHash, vs...))
}

// ClickHashGT applies the GT predicate on the "click_hash" field.
func ClickHashGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldClickHash, v))
}

// ClickHashGTE applies the GTE predicate on the "click_hash" field.
func ClickHashGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldClickHash, v))
}

// ClickHashLT applies the LT predicate on the "click_hash" field.
func ClickHashLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldClickHash, v))
}

// ClickHashLTE applies the LTE predicate on the "click_hash" field.
func ClickHashLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldClickHash, v))
}

// ClickHashContains applies the Contains predicate on the "click_hash" field.
func ClickHashContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldClickHash, v))
}

// ClickHashHasPrefix applies the HasPrefix predicate on the "click_hash" field.
func ClickHashHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldClickHash, v))
}

// ClickHashHasSuffix applies the HasSuffix predicate on the "click_hash" field.
func ClickHashHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldClickHash, v))
}

// ClickHashIsNil applies the IsNil predicate on the "click_hash" field.
func ClickHashIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldClickHash))
}

// ClickHashNotNil applies the NotNil predicate on the "click_hash" field.
func ClickHashNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldClickHash))
}

// ClickHashEqualFold applies the EqualFold predicate on the "click_hash" field.
func ClickHashEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldClickHash, v))
}

// ClickHashContainsFold applies the ContainsFold predicate on the "click_hash" field.
func ClickHashContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldClickHash, v))
}

// AdvertiserIDEQ applies the EQ predicate on the "advertiser_id" field.
func AdvertiserIDEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldAdvertiserID, v))
}

// AdvertiserIDNEQ applies the NEQ predicate on the "advertiser_id" field.
func AdvertiserIDNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldAdvertiserID, v))
}

// AdvertiserIDIn applies the In predicate on the "advertiser_id" field.
func AdvertiserIDIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldAdvertiserID, vs...))
}

// AdvertiserIDNotIn applies the NotIn predicate on the "advertiser_id" field.
func AdvertiserIDNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldAdvertiserID, vs...))
}

// AdvertiserIDGT applies the GT predicate on the "advertiser_id" field.
func AdvertiserIDGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldAdvertiserID, v))
}

// AdvertiserIDGTE applies the GTE predicate on the "advertiser_id" field.
func AdvertiserIDGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldAdvertiserID, v))
}

// AdvertiserIDLT applies the LT predicate on the "advertiser_id" field.
func AdvertiserIDLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldAdvertiserID, v))
}

// AdvertiserIDLTE applies the LTE predicate on the "advertiser_id" field.
func AdvertiserIDLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldAdvertiserID, v))
}

// AdvertiserIDContains applies the Contains predicate on the "advertiser_id" field.
func AdvertiserIDContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldAdvertiserID, v))
}

// AdvertiserIDHasPrefix applies the HasPrefix predicate on the "advertiser_id" field.
func AdvertiserIDHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldAdvertiserID, v))
}

// AdvertiserIDHasSuffix applies the HasSuffix predicate on the "advertiser_id" field.
func AdvertiserIDHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldAdvertiserID, v))
}

// AdvertiserIDIsNil applies the IsNil predicate on the "advertiser_id" field.
func AdvertiserIDIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldAdvertiserID))
}

// AdvertiserIDNotNil applies the NotNil predicate on the "advertiser_id" field.
func AdvertiserIDNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldAdvertiserID))
}

// AdvertiserIDEqualFold applies the EqualFold predicate on the "advertiser_id" field.
func AdvertiserIDEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldAdvertiserID, v))
}

// AdvertiserIDContainsFold applies the ContainsFold predicate on the "advertiser_id" field.
func AdvertiserIDContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldAdvertiserID, v))
}

// OfferURLIDEQ applies the EQ predicate on the "offer_url_id" field.
func OfferURLIDEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldOfferURLID, v))
}

// OfferURLIDNEQ applies the NEQ predicate on the "offer_url_id" field.
func OfferURLIDNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldOfferURLID, v))
}

// OfferURLIDIn applies the In predicate on the "offer_url_id" field.
func OfferURLIDIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldOfferURLID, vs...))
}

// OfferURLIDNotIn applies the NotIn predicate on the "offer_url_id" field.
func OfferURLIDNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldOfferURLID, vs...))
}

// OfferURLIDGT applies the GT predicate on the "offer_url_id" field.
func OfferURLIDGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldOfferURLID, v))
}

// OfferURLIDGTE applies the GTE predicate on the "offer_url_id" field.
func OfferURLIDGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldOfferURLID, v))
}

// OfferURLIDLT applies the LT predicate on the "offer_url_id" field.
func OfferURLIDLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldOfferURLID, v))
}

// OfferURLIDLTE applies the LTE predicate on the "offer_url_id" field.
func OfferURLIDLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldOfferURLID, v))
}

// OfferURLIDContains applies the Contains predicate on the "offer_url_id" field.
func OfferURLIDContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldOfferURLID, v))
}

// OfferURLIDHasPrefix applies the HasPrefix predicate on the "offer_url_id" field.
func OfferURLIDHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldOfferURLID, v))
}

// OfferURLIDHasSuffix applies the HasSuffix predicate on the "offer_url_id" field.
func OfferURLIDHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldOfferURLID, v))
}

// OfferURLIDIsNil applies the IsNil predicate on the "offer_url_id" field.
func OfferURLIDIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldOfferURLID))
}

// OfferURLIDNotNil applies the NotNil predicate on the "offer_url_id" field.
func OfferURLIDNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldOfferURLID))
}

// OfferURLIDEqualFold applies the EqualFold predicate on the "offer_url_id" field.
func OfferURLIDEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldOfferURLID, v))
}

// OfferURLIDContainsFold applies the ContainsFold predicate on the "offer_url_id" field.
func OfferURLIDContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldOfferURLID, v))
}

// AffiliateSourceEQ applies the EQ predicate on the "affiliate_source" field.
func AffiliateSourceEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldAffiliateSource, v))
}

// AffiliateSourceNEQ applies the NEQ predicate on the "affiliate_source" field.
func AffiliateSourceNEQ(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldAffiliateSource, v))
}

// AffiliateSourceIn applies the In predicate on the "affiliate_source" field.
func AffiliateSourceIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldAffiliateSource, vs...))
}

// AffiliateSourceNotIn applies the NotIn predicate on the "affiliate_source" field.
func AffiliateSourceNotIn(vs ...string) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldAffiliateSource, vs...))
}

// AffiliateSourceGT applies the GT predicate on the "affiliate_source" field.
func AffiliateSourceGT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldAffiliateSource, v))
}

// AffiliateSourceGTE applies the GTE predicate on the "affiliate_source" field.
func AffiliateSourceGTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldAffiliateSource, v))
}

// AffiliateSourceLT applies the LT predicate on the "affiliate_source" field.
func AffiliateSourceLT(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldAffiliateSource, v))
}

// AffiliateSourceLTE applies the LTE predicate on the "affiliate_source" field.
func AffiliateSourceLTE(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldAffiliateSource, v))
}

// AffiliateSourceContains applies the Contains predicate on the "affiliate_source" field.
func AffiliateSourceContains(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContains(FieldAffiliateSource, v))
}

// AffiliateSourceHasPrefix applies the HasPrefix predicate on the "affiliate_source" field.
func AffiliateSourceHasPrefix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasPrefix(FieldAffiliateSource, v))
}

// AffiliateSourceHasSuffix applies the HasSuffix predicate on the "affiliate_source" field.
func AffiliateSourceHasSuffix(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldHasSuffix(FieldAffiliateSource, v))
}

// AffiliateSourceIsNil applies the IsNil predicate on the "affiliate_source" field.
func AffiliateSourceIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldAffiliateSource))
}

// AffiliateSourceNotNil applies the NotNil predicate on the "affiliate_source" field.
func AffiliateSourceNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldAffiliateSource))
}

// AffiliateSourceEqualFold applies the EqualFold predicate on the "affiliate_source" field.
func AffiliateSourceEqualFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldEqualFold(FieldAffiliateSource, v))
}

// AffiliateSourceContainsFold applies the ContainsFold predicate on the "affiliate_source" field.
func AffiliateSourceContainsFold(v string) predicate.Conversion {
	return predicate.Conversion(sql.FieldContainsFold(FieldAffiliateSource, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Conversion {
	return predicate.Conversion(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Conversion {
	return predicate.Conversion(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversion) predicate.Conversion {
	return predicate.Conversion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversion) predicate.Conversion {
	return predicate.Conversion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversion) predicate.Conversion {
	return predicate.Conversion(sql.NotPredicates(p))
}
