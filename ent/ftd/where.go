// Code generated by ent, DO NOT EDIT.

package ftd

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/barracuda-partners/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FTD {
	return predicate.FTD(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FTD {
	return predicate.FTD(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FTD {
	return predicate.FTD(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FTD {
	return predicate.FTD(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FTD {
	return predicate.FTD(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FTD {
	return predicate.FTD(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FTD {
	return predicate.FTD(sql.FieldLTE(FieldID, id))
}

// ClickID applies equality check predicate on the "click_id" field. It's identical to ClickIDEQ.
func ClickID(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldClickID, v))
}

// AffiliateID applies equality check predicate on the "affiliate_id" field. It's identical to AffiliateIDEQ.
func AffiliateID(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldAffiliateID, v))
}

// OfferID applies equality check predicate on the "offer_id" field. It's identical to OfferIDEQ.
func OfferID(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldOfferID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldAmount, v))
}

// SaleAmount applies equality check predicate on the "sale_amount" field. It's identical to SaleAmountEQ.
func SaleAmount(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldSaleAmount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldCreatedAt, v))
}

// ClickIDEQ applies the EQ predicate on the "click_id" field.
func ClickIDEQ(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldClickID, v))
}

// ClickIDNEQ applies the NEQ predicate on the "click_id" field.
func ClickIDNEQ(v string) predicate.FTD {
	return predicate.FTD(sql.FieldNEQ(FieldClickID, v))
}

// ClickIDIn applies the In predicate on the "click_id" field.
func ClickIDIn(vs ...string) predicate.FTD {
	return predicate.FTD(sql.FieldIn(FieldClickID, vs...))
}

// ClickIDNotIn applies the NotIn predicate on the "click_id" field.
func ClickIDNotIn(vs ...string) predicate.FTD {
	return predicate.FTD(sql.FieldNotIn(FieldClickID, vs...))
}

// ClickIDGT applies the GT predicate on the "click_id" field.
func ClickIDGT(v string) predicate.FTD {
	return predicate.FTD(sql.FieldGT(FieldClickID, v))
}

// ClickIDGTE applies the GTE predicate on the "click_id" field.
func ClickIDGTE(v string) predicate.FTD {
	return predicate.FTD(sql.FieldGTE(FieldClickID, v))
}

// ClickIDLT applies the LT predicate on the "click_id" field.
func ClickIDLT(v string) predicate.FTD {
	return predicate.FTD(sql.FieldLT(FieldClickID, v))
}

// ClickIDLTE applies the LTE predicate on the "click_id" field.
func ClickIDLTE(v string) predicate.FTD {
	return predicate.FTD(sql.FieldLTE(FieldClickID, v))
}

// ClickIDContains applies the Contains predicate on the "click_id" field.
func ClickIDContains(v string) predicate.FTD {
	return predicate.FTD(sql.FieldContains(FieldClickID, v))
}

// ClickIDHasPrefix applies the HasPrefix predicate on the "click_id" field.
func ClickIDHasPrefix(v string) predicate.FTD {
	return predicate.FTD(sql.FieldHasPrefix(FieldClickID, v))
}

// ClickIDHasSuffix applies the HasSuffix predicate on the "click_id" field.
func ClickIDHasSuffix(v string) predicate.FTD {
	return predicate.FTD(sql.FieldHasSuffix(FieldClickID, v))
}

// ClickIDEqualFold applies the EqualFold predicate on the "click_id" field.
func ClickIDEqualFold(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEqualFold(FieldClickID, v))
}

// ClickIDContainsFold applies the ContainsFold predicate on the "click_id" field.
func ClickIDContainsFold(v string) predicate.FTD {
	return predicate.FTD(sql.FieldContainsFold(FieldClickID, v))
}

// AffiliateIDEQ applies the EQ predicate on the "affiliate_id" field.
func AffiliateIDEQ(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldAffiliateID, v))
}

// AffiliateIDNEQ applies the NEQ predicate on the "affiliate_id" field.
func AffiliateIDNEQ(v string) predicate.FTD {
	return predicate.FTD(sql.FieldNEQ(FieldAffiliateID, v))
}

// AffiliateIDIn applies the In predicate on the "affiliate_id" field.
func AffiliateIDIn(vs ...string) predicate.FTD {
	return predicate.FTD(sql.FieldIn(FieldAffiliateID, vs...))
}

// AffiliateIDNotIn applies the NotIn predicate on the "affiliate_id" field.
func AffiliateIDNotIn(vs ...string) predicate.FTD {
	return predicate.FTD(sql.FieldNotIn(FieldAffiliateID, vs...))
}

// AffiliateIDGT applies the GT predicate on the "affiliate_id" field.
func AffiliateIDGT(v string) predicate.FTD {
	return predicate.FTD(sql.FieldGT(FieldAffiliateID, v))
}

// AffiliateIDGTE applies the GTE predicate on the "affiliate_id" field.
func AffiliateIDGTE(v string) predicate.FTD {
	return predicate.FTD(sql.FieldGTE(FieldAffiliateID, v))
}

// AffiliateIDLT applies the LT predicate on the "affiliate_id" field.
func AffiliateIDLT(v string) predicate.FTD {
	return predicate.FTD(sql.FieldLT(FieldAffiliateID, v))
}

// AffiliateIDLTE applies the LTE predicate on the "affiliate_id" field.
func AffiliateIDLTE(v string) predicate.FTD {
	return predicate.FTD(sql.FieldLTE(FieldAffiliateID, v))
}

// AffiliateIDContains applies the Contains predicate on the "affiliate_id" field.
func AffiliateIDContains(v string) predicate.FTD {
	return predicate.FTD(sql.FieldContains(FieldAffiliateID, v))
}

// AffiliateIDHasPrefix applies the HasPrefix predicate on the "affiliate_id" field.
func AffiliateIDHasPrefix(v string) predicate.FTD {
	return predicate.FTD(sql.FieldHasPrefix(FieldAffiliateID, v))
}

// AffiliateIDHasSuffix applies the HasSuffix predicate on the "affiliate_id" field.
func AffiliateIDHasSuffix(v string) predicate.FTD {
	return predicate.FTD(sql.FieldHasSuffix(FieldAffiliateID, v))
}

// AffiliateIDIsNil applies the IsNil predicate on the "affiliate_id" field.
func AffiliateIDIsNil() predicate.FTD {
	return predicate.FTD(sql.FieldIsNull(FieldAffiliateID))
}

// AffiliateIDNotNil applies the NotNil predicate on the "affiliate_id" field.
func AffiliateIDNotNil() predicate.FTD {
	return predicate.FTD(sql.FieldNotNull(FieldAffiliateID))
}

// AffiliateIDEqualFold applies the EqualFold predicate on the "affiliate_id" field.
func AffiliateIDEqualFold(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEqualFold(FieldAffiliateID, v))
}

// AffiliateIDContainsFold applies the ContainsFold predicate on the "affiliate_id" field.
func AffiliateIDContainsFold(v string) predicate.FTD {
	return predicate.FTD(sql.FieldContainsFold(FieldAffiliateID, v))
}

// OfferIDEQ applies the EQ predicate on the "offer_id" field.
func OfferIDEQ(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldOfferID, v))
}

// OfferIDNEQ applies the NEQ predicate on the "offer_id" field.
func OfferIDNEQ(v string) predicate.FTD {
	return predicate.FTD(sql.FieldNEQ(FieldOfferID, v))
}

// OfferIDIn applies the In predicate on the "offer_id" field.
func OfferIDIn(vs ...string) predicate.FTD {
	return predicate.FTD(sql.FieldIn(FieldOfferID, vs...))
}

// OfferIDNotIn applies the NotIn predicate on the "offer_id" field.
func OfferIDNotIn(vs ...string) predicate.FTD {
	return predicate.FTD(sql.FieldNotIn(FieldOfferID, vs...))
}

// OfferIDGT applies the GT predicate on the "offer_id" field.
func OfferIDGT(v string) predicate.FTD {
	return predicate.FTD(sql.FieldGT(FieldOfferID, v))
}

// OfferIDGTE applies the GTE predicate on the "offer_id" field.
func OfferIDGTE(v string) predicate.FTD {
	return predicate.FTD(sql.FieldGTE(FieldOfferID, v))
}

// OfferIDLT applies the LT predicate on the "offer_id" field.
func OfferIDLT(v string) predicate.FTD {
	return predicate.FTD(sql.FieldLT(FieldOfferID, v))
}

// OfferIDLTE applies the LTE predicate on the "offer_id" field.
func OfferIDLTE(v string) predicate.FTD {
	return predicate.FTD(sql.FieldLTE(FieldOfferID, v))
}

// OfferIDContains applies the Contains predicate on the "offer_id" field.
func OfferIDContains(v string) predicate.FTD {
	return predicate.FTD(sql.FieldContains(FieldOfferID, v))
}

// OfferIDHasPrefix applies the HasPrefix predicate on the "offer_id" field.
func OfferIDHasPrefix(v string) predicate.FTD {
	return predicate.FTD(sql.FieldHasPrefix(FieldOfferID, v))
}

// OfferIDHasSuffix applies the HasSuffix predicate on the "offer_id" field.
func OfferIDHasSuffix(v string) predicate.FTD {
	return predicate.FTD(sql.FieldHasSuffix(FieldOfferID, v))
}

// OfferIDIsNil applies the IsNil predicate on the "offer_id" field.
func OfferIDIsNil() predicate.FTD {
	return predicate.FTD(sql.FieldIsNull(FieldOfferID))
}

// OfferIDNotNil applies the NotNil predicate on the "offer_id" field.
func OfferIDNotNil() predicate.FTD {
	return predicate.FTD(sql.FieldNotNull(FieldOfferID))
}

// OfferIDEqualFold applies the EqualFold predicate on the "offer_id" field.
func OfferIDEqualFold(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEqualFold(FieldOfferID, v))
}

// OfferIDContainsFold applies the ContainsFold predicate on the "offer_id" field.
func OfferIDContainsFold(v string) predicate.FTD {
	return predicate.FTD(sql.FieldContainsFold(FieldOfferID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.FTD {
	return predicate.FTD(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.FTD {
	return predicate.FTD(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldLTE(FieldAmount, v))
}

// SaleAmountEQ applies the EQ predicate on the "sale_amount" field.
func SaleAmountEQ(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldSaleAmount, v))
}

// SaleAmountNEQ applies the NEQ predicate on the "sale_amount" field.
func SaleAmountNEQ(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldNEQ(FieldSaleAmount, v))
}

// SaleAmountIn applies the In predicate on the "sale_amount" field.
func SaleAmountIn(vs ...float64) predicate.FTD {
	return predicate.FTD(sql.FieldIn(FieldSaleAmount, vs...))
}

// SaleAmountNotIn applies the NotIn predicate on the "sale_amount" field.
func SaleAmountNotIn(vs ...float64) predicate.FTD {
	return predicate.FTD(sql.FieldNotIn(FieldSaleAmount, vs...))
}

// SaleAmountGT applies the GT predicate on the "sale_amount" field.
func SaleAmountGT(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldGT(FieldSaleAmount, v))
}

// SaleAmountGTE applies the GTE predicate on the "sale_amount" field.
func SaleAmountGTE(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldGTE(FieldSaleAmount, v))
}

// SaleAmountLT applies the LT predicate on the "sale_amount" field.
func SaleAmountLT(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldLT(FieldSaleAmount, v))
}

// SaleAmountLTE applies the LTE predicate on the "sale_amount" field.
func SaleAmountLTE(v float64) predicate.FTD {
	return predicate.FTD(sql.FieldLTE(FieldSaleAmount, v))
}

// SaleAmountIsNil applies the IsNil predicate on the "sale_amount" field.
func SaleAmountIsNil() predicate.FTD {
	return predicate.FTD(sql.FieldIsNull(FieldSaleAmount))
}

// SaleAmountNotNil applies the NotNil predicate on the "sale_amount" field.
func SaleAmountNotNil() predicate.FTD {
	return predicate.FTD(sql.FieldNotNull(FieldSaleAmount))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.FTD {
	return predicate.FTD(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.FTD {
	return predicate.FTD(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.FTD {
	return predicate.FTD(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.FTD {
	return predicate.FTD(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.FTD {
	return predicate.FTD(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.FTD {
	return predicate.FTD(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.FTD {
	return predicate.FTD(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.FTD {
	return predicate.FTD(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.FTD {
	return predicate.FTD(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.FTD {
	return predicate.FTD(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.FTD {
	return predicate.FTD(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.FTD {
	return predicate.FTD(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FTD {
	return predicate.FTD(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FTD {
	return predicate.FTD(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FTD {
	return predicate.FTD(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FTD {
	return predicate.FTD(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FTD {
	return predicate.FTD(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FTD {
	return predicate.FTD(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FTD {
	return predicate.FTD(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FTD {
	return predicate.FTD(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FTD) predicate.FTD {
	return predicate.FTD(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FTD) predicate.FTD {
	return predicate.FTD(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FTD) predicate.FTD {
	return predicate.FTD(sql.NotPredicates(p))
}
