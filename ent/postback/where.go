// Code generated by ent, DO NOT EDIT.

package postback

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/barracuda-partners/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Postback {
	return predicate.Postback(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Postback {
	return predicate.Postback(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Postback {
	return predicate.Postback(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Postback {
	return predicate.Postback(sql.FieldLTE(FieldID, id))
}

// ClickID applies equality check predicate on the "click_id" field. It's identical to ClickIDEQ.
func ClickID(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldClickID, v))
}

// AffiliateID applies equality check predicate on the "affiliate_id" field. It's identical to AffiliateIDEQ.
func AffiliateID(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldAffiliateID, v))
}

// OfferID applies equality check predicate on the "offer_id" field. It's identical to OfferIDEQ.
func OfferID(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldOfferID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldAmount, v))
}

// SaleAmount applies equality check predicate on the "sale_amount" field. It's identical to SaleAmountEQ.
func SaleAmount(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldSaleAmount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldStatus, v))
}

// Sub1 applies equality check predicate on the "sub1" field. It's identical to Sub1EQ.
func Sub1(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldSub1, v))
}

// Sub2 applies equality check predicate on the "sub2" field. It's identical to Sub2EQ.
func Sub2(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldSub2, v))
}

// Sub3 applies equality check predicate on the "sub3" field. It's identical to Sub3EQ.
func Sub3(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldSub3, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldCreatedAt, v))
}

// ClickIDEQ applies the EQ predicate on the "click_id" field.
func ClickIDEQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldClickID, v))
}

// ClickIDNEQ applies the NEQ predicate on the "click_id" field.
func ClickIDNEQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldClickID, v))
}

// ClickIDIn applies the In predicate on the "click_id" field.
func ClickIDIn(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldClickID, vs...))
}

// ClickIDNotIn applies the NotIn predicate on the "click_id" field.
func ClickIDNotIn(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldClickID, vs...))
}

// ClickIDGT applies the GT predicate on the "click_id" field.
func ClickIDGT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGT(FieldClickID, v))
}

// ClickIDGTE applies the GTE predicate on the "click_id" field.
func ClickIDGTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGTE(FieldClickID, v))
}

// ClickIDLT applies the LT predicate on the "click_id" field.
func ClickIDLT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLT(FieldClickID, v))
}

// ClickIDLTE applies the LTE predicate on the "click_id" field.
func ClickIDLTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLTE(FieldClickID, v))
}

// ClickIDContains applies the Contains predicate on the "click_id" field.
func ClickIDContains(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContains(FieldClickID, v))
}

// ClickIDHasPrefix applies the HasPrefix predicate on the "click_id" field.
func ClickIDHasPrefix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasPrefix(FieldClickID, v))
}

// ClickIDHasSuffix applies the HasSuffix predicate on the "click_id" field.
func ClickIDHasSuffix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasSuffix(FieldClickID, v))
}

// ClickIDEqualFold applies the EqualFold predicate on the "click_id" field.
func ClickIDEqualFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEqualFold(FieldClickID, v))
}

// ClickIDContainsFold applies the ContainsFold predicate on the "click_id" field.
func ClickIDContainsFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContainsFold(FieldClickID, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v Goal) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v Goal) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...Goal) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...Goal) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldGoal, vs...))
}

// AffiliateIDEQ applies the EQ predicate on the "affiliate_id" field.
func AffiliateIDEQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldAffiliateID, v))
}

// AffiliateIDNEQ applies the NEQ predicate on the "affiliate_id" field.
func AffiliateIDNEQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldAffiliateID, v))
}

// AffiliateIDIn applies the In predicate on the "affiliate_id" field.
func AffiliateIDIn(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldAffiliateID, vs...))
}

// AffiliateIDNotIn applies the NotIn predicate on the "affiliate_id" field.
func AffiliateIDNotIn(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldAffiliateID, vs...))
}

// AffiliateIDGT applies the GT predicate on the "affiliate_id" field.
func AffiliateIDGT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGT(FieldAffiliateID, v))
}

// AffiliateIDGTE applies the GTE predicate on the "affiliate_id" field.
func AffiliateIDGTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGTE(FieldAffiliateID, v))
}

// AffiliateIDLT applies the LT predicate on the "affiliate_id" field.
func AffiliateIDLT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLT(FieldAffiliateID, v))
}

// AffiliateIDLTE applies the LTE predicate on the "affiliate_id" field.
func AffiliateIDLTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLTE(FieldAffiliateID, v))
}

// AffiliateIDContains applies the Contains predicate on the "affiliate_id" field.
func AffiliateIDContains(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContains(FieldAffiliateID, v))
}

// AffiliateIDHasPrefix applies the HasPrefix predicate on the "affiliate_id" field.
func AffiliateIDHasPrefix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasPrefix(FieldAffiliateID, v))
}

// AffiliateIDHasSuffix applies the HasSuffix predicate on the "affiliate_id" field.
func AffiliateIDHasSuffix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasSuffix(FieldAffiliateID, v))
}

// AffiliateIDIsNil applies the IsNil predicate on the "affiliate_id" field.
func AffiliateIDIsNil() predicate.Postback {
	return predicate.Postback(sql.FieldIsNull(FieldAffiliateID))
}

// AffiliateIDNotNil applies the NotNil predicate on the "affiliate_id" field.
func AffiliateIDNotNil() predicate.Postback {
	return predicate.Postback(sql.FieldNotNull(FieldAffiliateID))
}

// AffiliateIDEqualFold applies the EqualFold predicate on the "affiliate_id" field.
func AffiliateIDEqualFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEqualFold(FieldAffiliateID, v))
}

// AffiliateIDContainsFold applies the ContainsFold predicate on the "affiliate_id" field.
func AffiliateIDContainsFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContainsFold(FieldAffiliateID, v))
}

// OfferIDEQ applies the EQ predicate on the "offer_id" field.
func OfferIDEQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldOfferID, v))
}

// OfferIDNEQ applies the NEQ predicate on the "offer_id" field.
func OfferIDNEQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldOfferID, v))
}

// OfferIDIn applies the In predicate on the "offer_id" field.
func OfferIDIn(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldOfferID, vs...))
}

// OfferIDNotIn applies the NotIn predicate on the "offer_id" field.
func OfferIDNotIn(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldOfferID, vs...))
}

// OfferIDGT applies the GT predicate on the "offer_id" field.
func OfferIDGT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGT(FieldOfferID, v))
}

// OfferIDGTE applies the GTE predicate on the "offer_id" field.
func OfferIDGTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGTE(FieldOfferID, v))
}

// OfferIDLT applies the LT predicate on the "offer_id" field.
func OfferIDLT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLT(FieldOfferID, v))
}

// OfferIDLTE applies the LTE predicate on the "offer_id" field.
func OfferIDLTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLTE(FieldOfferID, v))
}

// OfferIDContains applies the Contains predicate on the "offer_id" field.
func OfferIDContains(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContains(FieldOfferID, v))
}

// OfferIDHasPrefix applies the HasPrefix predicate on the "offer_id" field.
func OfferIDHasPrefix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasPrefix(FieldOfferID, v))
}

// OfferIDHasSuffix applies the HasSuffix predicate on the "offer_id" field.
func OfferIDHasSuffix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasSuffix(FieldOfferID, v))
}

// OfferIDIsNil applies the IsNil predicate on the "offer_id" field.
func OfferIDIsNil() predicate.Postback {
	return predicate.Postback(sql.FieldIsNull(FieldOfferID))
}

// OfferIDNotNil applies the NotNil predicate on the "offer_id" field.
func OfferIDNotNil() predicate.Postback {
	return predicate.Postback(sql.FieldNotNull(FieldOfferID))
}

// OfferIDEqualFold applies the EqualFold predicate on the "offer_id" field.
func OfferIDEqualFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEqualFold(FieldOfferID, v))
}

// OfferIDContainsFold applies the ContainsFold predicate on the "offer_id" field.
func OfferIDContainsFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContainsFold(FieldOfferID, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...float64) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...float64) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldLTE(FieldAmount, v))
}

// SaleAmountEQ applies the EQ predicate on the "sale_amount" field.
func SaleAmountEQ(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldSaleAmount, v))
}

// SaleAmountNEQ applies the NEQ predicate on the "sale_amount" field.
func SaleAmountNEQ(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldSaleAmount, v))
}

// SaleAmountIn applies the In predicate on the "sale_amount" field.
func SaleAmountIn(vs ...float64) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldSaleAmount, vs...))
}

// SaleAmountNotIn applies the NotIn predicate on the "sale_amount" field.
func SaleAmountNotIn(vs ...float64) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldSaleAmount, vs...))
}

// SaleAmountGT applies the GT predicate on the "sale_amount" field.
func SaleAmountGT(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldGT(FieldSaleAmount, v))
}

// SaleAmountGTE applies the GTE predicate on the "sale_amount" field.
func SaleAmountGTE(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldGTE(FieldSaleAmount, v))
}

// SaleAmountLT applies the LT predicate on the "sale_amount" field.
func SaleAmountLT(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldLT(FieldSaleAmount, v))
}

// SaleAmountLTE applies the LTE predicate on the "sale_amount" field.
func SaleAmountLTE(v float64) predicate.Postback {
	return predicate.Postback(sql.FieldLTE(FieldSaleAmount, v))
}

// SaleAmountIsNil applies the IsNil predicate on the "sale_amount" field.
func SaleAmountIsNil() predicate.Postback {
	return predicate.Postback(sql.FieldIsNull(FieldSaleAmount))
}

// SaleAmountNotNil applies the NotNil predicate on the "sale_amount" field.
func SaleAmountNotNil() predicate.Postback {
	return predicate.Postback(sql.FieldNotNull(FieldSaleAmount))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContainsFold(FieldStatus, v))
}

// Sub1EQ applies the EQ predicate on the "sub1" field.
func Sub1EQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldSub1, v))
}

// Sub1NEQ applies the NEQ predicate on the "sub1" field.
func Sub1NEQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldSub1, v))
}

// Sub1In applies the In predicate on the "sub1" field.
func Sub1In(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldSub1, vs...))
}

// Sub1NotIn applies the NotIn predicate on the "sub1" field.
func Sub1NotIn(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldSub1, vs...))
}

// Sub1GT applies the GT predicate on the "sub1" field.
func Sub1GT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGT(FieldSub1, v))
}

// Sub1GTE applies the GTE predicate on the "sub1" field.
func Sub1GTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGTE(FieldSub1, v))
}

// Sub1LT applies the LT predicate on the "sub1" field.
func Sub1LT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLT(FieldSub1, v))
}

// Sub1LTE applies the LTE predicate on the "sub1" field.
func Sub1LTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLTE(FieldSub1, v))
}

// Sub1Contains applies the Contains predicate on the "sub1" field.
func Sub1Contains(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContains(FieldSub1, v))
}

// Sub1HasPrefix applies the HasPrefix predicate on the "sub1" field.
func Sub1HasPrefix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasPrefix(FieldSub1, v))
}

// Sub1HasSuffix applies the HasSuffix predicate on the "sub1" field.
func Sub1HasSuffix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasSuffix(FieldSub1, v))
}

// Sub1IsNil applies the IsNil predicate on the "sub1" field.
func Sub1IsNil() predicate.Postback {
	return predicate.Postback(sql.FieldIsNull(FieldSub1))
}

// Sub1NotNil applies the NotNil predicate on the "sub1" field.
func Sub1NotNil() predicate.Postback {
	return predicate.Postback(sql.FieldNotNull(FieldSub1))
}

// Sub1EqualFold applies the EqualFold predicate on the "sub1" field.
func Sub1EqualFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEqualFold(FieldSub1, v))
}

// Sub1ContainsFold applies the ContainsFold predicate on the "sub1" field.
func Sub1ContainsFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContainsFold(FieldSub1, v))
}

// Sub2EQ applies the EQ predicate on the "sub2" field.
func Sub2EQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldSub2, v))
}

// Sub2NEQ applies the NEQ predicate on the "sub2" field.
func Sub2NEQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldSub2, v))
}

// Sub2In applies the In predicate on the "sub2" field.
func Sub2In(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldSub2, vs...))
}

// Sub2NotIn applies the NotIn predicate on the "sub2" field.
func Sub2NotIn(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldSub2, vs...))
}

// Sub2GT applies the GT predicate on the "sub2" field.
func Sub2GT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGT(FieldSub2, v))
}

// Sub2GTE applies the GTE predicate on the "sub2" field.
func Sub2GTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGTE(FieldSub2, v))
}

// Sub2LT applies the LT predicate on the "sub2" field.
func Sub2LT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLT(FieldSub2, v))
}

// Sub2LTE applies the LTE predicate on the "sub2" field.
func Sub2LTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLTE(FieldSub2, v))
}

// Sub2Contains applies the Contains predicate on the "sub2" field.
func Sub2Contains(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContains(FieldSub2, v))
}

// Sub2HasPrefix applies the HasPrefix predicate on the "sub2" field.
func Sub2HasPrefix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasPrefix(FieldSub2, v))
}

// Sub2HasSuffix applies the HasSuffix predicate on the "sub2" field.
func Sub2HasSuffix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasSuffix(FieldSub2, v))
}

// Sub2IsNil applies the IsNil predicate on the "sub2" field.
func Sub2IsNil() predicate.Postback {
	return predicate.Postback(sql.FieldIsNull(FieldSub2))
}

// Sub2NotNil applies the NotNil predicate on the "sub2" field.
func Sub2NotNil() predicate.Postback {
	return predicate.Postback(sql.FieldNotNull(FieldSub2))
}

// Sub2EqualFold applies the EqualFold predicate on the "sub2" field.
func Sub2EqualFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEqualFold(FieldSub2, v))
}

// Sub2ContainsFold applies the ContainsFold predicate on the "sub2" field.
func Sub2ContainsFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContainsFold(FieldSub2, v))
}

// Sub3EQ applies the EQ predicate on the "sub3" field.
func Sub3EQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldSub3, v))
}

// Sub3NEQ applies the NEQ predicate on the "sub3" field.
func Sub3NEQ(v string) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldSub3, v))
}

// Sub3In applies the In predicate on the "sub3" field.
func Sub3In(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldSub3, vs...))
}

// Sub3NotIn applies the NotIn predicate on the "sub3" field.
func Sub3NotIn(vs ...string) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldSub3, vs...))
}

// Sub3GT applies the GT predicate on the "sub3" field.
func Sub3GT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGT(FieldSub3, v))
}

// Sub3GTE applies the GTE predicate on the "sub3" field.
func Sub3GTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldGTE(FieldSub3, v))
}

// Sub3LT applies the LT predicate on the "sub3" field.
func Sub3LT(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLT(FieldSub3, v))
}

// Sub3LTE applies the LTE predicate on the "sub3" field.
func Sub3LTE(v string) predicate.Postback {
	return predicate.Postback(sql.FieldLTE(FieldSub3, v))
}

// Sub3Contains applies the Contains predicate on the "sub3" field.
func Sub3Contains(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContains(FieldSub3, v))
}

// Sub3HasPrefix applies the HasPrefix predicate on the "sub3" field.
func Sub3HasPrefix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasPrefix(FieldSub3, v))
}

// Sub3HasSuffix applies the HasSuffix predicate on the "sub3" field.
func Sub3HasSuffix(v string) predicate.Postback {
	return predicate.Postback(sql.FieldHasSuffix(FieldSub3, v))
}

// Sub3IsNil applies the IsNil predicate on the "sub3" field.
func Sub3IsNil() predicate.Postback {
	return predicate.Postback(sql.FieldIsNull(FieldSub3))
}

// Sub3NotNil applies the NotNil predicate on the "sub3" field.
func Sub3NotNil() predicate.Postback {
	return predicate.Postback(sql.FieldNotNull(FieldSub3))
}

// Sub3EqualFold applies the EqualFold predicate on the "sub3" field.
func Sub3EqualFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldEqualFold(FieldSub3, v))
}

// Sub3ContainsFold applies the ContainsFold predicate on the "sub3" field.
func Sub3ContainsFold(v string) predicate.Postback {
	return predicate.Postback(sql.FieldContainsFold(FieldSub3, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Postback {
	return predicate.Postback(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Postback {
	return predicate.Postback(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Postback {
	return predicate.Postback(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Postback {
	return predicate.Postback(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Postback {
	return predicate.Postback(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Postback {
	return predicate.Postback(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Postback {
	return predicate.Postback(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Postback {
	return predicate.Postback(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Postback) predicate.Postback {
	return predicate.Postback(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Postback) predicate.Postback {
	return predicate.Postback(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Postback) predicate.Postback {
	return predicate.Postback(sql.NotPredicates(p))
}
