// Code generated by ent, DO NOT EDIT.

package contact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/barracuda-partners/backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmail, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldName, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCompany, v))
}

// Messenger applies equality check predicate on the "messenger" field. It's identical to MessengerEQ.
func Messenger(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldMessenger, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUsername, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldMessage, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldNotes, v))
}

// AffiliateID applies equality check predicate on the "affiliate_id" field. It's identical to AffiliateIDEQ.
func AffiliateID(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldAffiliateID, v))
}

// URLID applies equality check predicate on the "url_id" field. It's identical to URLIDEQ.
func URLID(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldURLID, v))
}

// Sub1 applies equality check predicate on the "sub1" field. It's identical to Sub1EQ.
func Sub1(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSub1, v))
}

// Sub2 applies equality check predicate on the "sub2" field. It's identical to Sub2EQ.
func Sub2(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSub2, v))
}

// Sub3 applies equality check predicate on the "sub3" field. It's identical to Sub3EQ.
func Sub3(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSub3, v))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCampaignID, v))
}

// TrackingSource applies equality check predicate on the "tracking_source" field. It's identical to TrackingSourceEQ.
func TrackingSource(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldTrackingSource, v))
}

// TrackingLink applies equality check predicate on the "tracking_link" field. It's identical to TrackingLinkEQ.
func TrackingLink(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldTrackingLink, v))
}

// AffiliateRegistered applies equality check predicate on the "affiliate_registered" field. It's identical to AffiliateRegisteredEQ.
func AffiliateRegistered(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldAffiliateRegistered, v))
}

// AffiliateError applies equality check predicate on the "affiliate_error" field. It's identical to AffiliateErrorEQ.
func AffiliateError(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldAffiliateError, v))
}

// Ftd applies equality check predicate on the "ftd" field. It's identical to FtdEQ.
func Ftd(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFtd, v))
}

// FtdAmount applies equality check predicate on the "ftd_amount" field. It's identical to FtdAmountEQ.
func FtdAmount(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFtdAmount, v))
}

// FtdDate applies equality check predicate on the "ftd_date" field. It's identical to FtdDateEQ.
func FtdDate(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFtdDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldEmail, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldName, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldCompany, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldStatus, vs...))
}

// AffiliateStatusEQ applies the EQ predicate on the "affiliate_status" field.
func AffiliateStatusEQ(v AffiliateStatus) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldAffiliateStatus, v))
}

// AffiliateStatusNEQ applies the NEQ predicate on the "affiliate_status" field.
func AffiliateStatusNEQ(v AffiliateStatus) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldAffiliateStatus, v))
}

// AffiliateStatusIn applies the In predicate on the "affiliate_status" field.
func AffiliateStatusIn(vs ...AffiliateStatus) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldAffiliateStatus, vs...))
}

// AffiliateStatusNotIn applies the NotIn predicate on the "affiliate_status" field.
func AffiliateStatusNotIn(vs ...AffiliateStatus) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldAffiliateStatus, vs...))
}

// MessengerEQ applies the EQ predicate on the "messenger" field.
func MessengerEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldMessenger, v))
}

// MessengerNEQ applies the NEQ predicate on the "messenger" field.
func MessengerNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldMessenger, v))
}

// MessengerIn applies the In predicate on the "messenger" field.
func MessengerIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldMessenger, vs...))
}

// MessengerNotIn applies the NotIn predicate on the "messenger" field.
func MessengerNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldMessenger, vs...))
}

// MessengerGT applies the GT predicate on the "messenger" field.
func MessengerGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldMessenger, v))
}

// MessengerGTE applies the GTE predicate on the "messenger" field.
func MessengerGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldMessenger, v))
}

// MessengerLT applies the LT predicate on the "messenger" field.
func MessengerLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldMessenger, v))
}

// MessengerLTE applies the LTE predicate on the "messenger" field.
func MessengerLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldMessenger, v))
}

// MessengerContains applies the Contains predicate on the "messenger" field.
func MessengerContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldMessenger, v))
}

// MessengerHasPrefix applies the HasPrefix predicate on the "messenger" field.
func MessengerHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldMessenger, v))
}

// MessengerHasSuffix applies the HasSuffix predicate on the "messenger" field.
func MessengerHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldMessenger, v))
}

// MessengerIsNil applies the IsNil predicate on the "messenger" field.
func MessengerIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldMessenger))
}

// MessengerNotNil applies the NotNil predicate on the "messenger" field.
func MessengerNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldMessenger))
}

// MessengerEqualFold applies the EqualFold predicate on the "messenger" field.
func MessengerEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldMessenger, v))
}

// MessengerContainsFold applies the ContainsFold predicate on the "messenger" field.
func MessengerContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldMessenger, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameIsNil applies the IsNil predicate on the "username" field.
func UsernameIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldUsername))
}

// UsernameNotNil applies the NotNil predicate on the "username" field.
func UsernameNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldUsername))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldUsername, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageIsNil applies the IsNil predicate on the "message" field.
func MessageIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldMessage))
}

// MessageNotNil applies the NotNil predicate on the "message" field.
func MessageNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldMessage))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldMessage, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldNotes, v))
}

// AffiliateIDEQ applies the EQ predicate on the "affiliate_id" field.
func AffiliateIDEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldAffiliateID, v))
}

// AffiliateIDNEQ applies the NEQ predicate on the "affiliate_id" field.
func AffiliateIDNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldAffiliateID, v))
}

// AffiliateIDIn applies the In predicate on the "affiliate_id" field.
func AffiliateIDIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldAffiliateID, vs...))
}

// AffiliateIDNotIn applies the NotIn predicate on the "affiliate_id" field.
func AffiliateIDNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldAffiliateID, vs...))
}

// AffiliateIDGT applies the GT predicate on the "affiliate_id" field.
func AffiliateIDGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldAffiliateID, v))
}

// AffiliateIDGTE applies the GTE predicate on the "affiliate_id" field.
func AffiliateIDGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldAffiliateID, v))
}

// AffiliateIDLT applies the LT predicate on the "affiliate_id" field.
func AffiliateIDLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldAffiliateID, v))
}

// AffiliateIDLTE applies the LTE predicate on the "affiliate_id" field.
func AffiliateIDLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldAffiliateID, v))
}

// AffiliateIDContains applies the Contains predicate on the "affiliate_id" field.
func AffiliateIDContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldAffiliateID, v))
}

// AffiliateIDHasPrefix applies the HasPrefix predicate on the "affiliate_id" field.
func AffiliateIDHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldAffiliateID, v))
}

// AffiliateIDHasSuffix applies the HasSuffix predicate on the "affiliate_id" field.
func AffiliateIDHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldAffiliateID, v))
}

// AffiliateIDIsNil applies the IsNil predicate on the "affiliate_id" field.
func AffiliateIDIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldAffiliateID))
}

// AffiliateIDNotNil applies the NotNil predicate on the "affiliate_id" field.
func AffiliateIDNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldAffiliateID))
}

// AffiliateIDEqualFold applies the EqualFold predicate on the "affiliate_id" field.
func AffiliateIDEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldAffiliateID, v))
}

// AffiliateIDContainsFold applies the ContainsFold predicate on the "affiliate_id" field.
func AffiliateIDContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldAffiliateID, v))
}

// URLIDEQ applies the EQ predicate on the "url_id" field.
func URLIDEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldURLID, v))
}

// URLIDNEQ applies the NEQ predicate on the "url_id" field.
func URLIDNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldURLID, v))
}

// URLIDIn applies the In predicate on the "url_id" field.
func URLIDIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldURLID, vs...))
}

// URLIDNotIn applies the NotIn predicate on the "url_id" field.
func URLIDNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldURLID, vs...))
}

// URLIDGT applies the GT predicate on the "url_id" field.
func URLIDGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldURLID, v))
}

// URLIDGTE applies the GTE predicate on the "url_id" field.
func URLIDGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldURLID, v))
}

// URLIDLT applies the LT predicate on the "url_id" field.
func URLIDLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldURLID, v))
}

// URLIDLTE applies the LTE predicate on the "url_id" field.
func URLIDLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldURLID, v))
}

// URLIDContains applies the Contains predicate on the "url_id" field.
func URLIDContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldURLID, v))
}

// URLIDHasPrefix applies the HasPrefix predicate on the "url_id" field.
func URLIDHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldURLID, v))
}

// URLIDHasSuffix applies the HasSuffix predicate on the "url_id" field.
func URLIDHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldURLID, v))
}

// URLIDIsNil applies the IsNil predicate on the "url_id" field.
func URLIDIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldURLID))
}

// URLIDNotNil applies the NotNil predicate on the "url_id" field.
func URLIDNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldURLID))
}

// URLIDEqualFold applies the EqualFold predicate on the "url_id" field.
func URLIDEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldURLID, v))
}

// URLIDContainsFold applies the ContainsFold predicate on the "url_id" field.
func URLIDContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldURLID, v))
}

// Sub1EQ applies the EQ predicate on the "sub1" field.
func Sub1EQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSub1, v))
}

// Sub1NEQ applies the NEQ predicate on the "sub1" field.
func Sub1NEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldSub1, v))
}

// Sub1In applies the In predicate on the "sub1" field.
func Sub1In(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldSub1, vs...))
}

// Sub1NotIn applies the NotIn predicate on the "sub1" field.
func Sub1NotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldSub1, vs...))
}

// Sub1GT applies the GT predicate on the "sub1" field.
func Sub1GT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldSub1, v))
}

// Sub1GTE applies the GTE predicate on the "sub1" field.
func Sub1GTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldSub1, v))
}

// Sub1LT applies the LT predicate on the "sub1" field.
func Sub1LT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldSub1, v))
}

// Sub1LTE applies the LTE predicate on the "sub1" field.
func Sub1LTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldSub1, v))
}

// Sub1Contains applies the Contains predicate on the "sub1" field.
func Sub1Contains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldSub1, v))
}

// Sub1HasPrefix applies the HasPrefix predicate on the "sub1" field.
func Sub1HasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldSub1, v))
}

// Sub1HasSuffix applies the HasSuffix predicate on the "sub1" field.
func Sub1HasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldSub1, v))
}

// Sub1IsNil applies the IsNil predicate on the "sub1" field.
func Sub1IsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldSub1))
}

// Sub1NotNil applies the NotNil predicate on the "sub1" field.
func Sub1NotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldSub1))
}

// Sub1EqualFold applies the EqualFold predicate on the "sub1" field.
func Sub1EqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldSub1, v))
}

// Sub1ContainsFold applies the ContainsFold predicate on the "sub1" field.
func Sub1ContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldSub1, v))
}

// Sub2EQ applies the EQ predicate on the "sub2" field.
func Sub2EQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSub2, v))
}

// Sub2NEQ applies the NEQ predicate on the "sub2" field.
func Sub2NEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldSub2, v))
}

// Sub2In applies the In predicate on the "sub2" field.
func Sub2In(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldSub2, vs...))
}

// Sub2NotIn applies the NotIn predicate on the "sub2" field.
func Sub2NotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldSub2, vs...))
}

// Sub2GT applies the GT predicate on the "sub2" field.
func Sub2GT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldSub2, v))
}

// Sub2GTE applies the GTE predicate on the "sub2" field.
func Sub2GTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldSub2, v))
}

// Sub2LT applies the LT predicate on the "sub2" field.
func Sub2LT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldSub2, v))
}

// Sub2LTE applies the LTE predicate on the "sub2" field.
func Sub2LTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldSub2, v))
}

// Sub2Contains applies the Contains predicate on the "sub2" field.
func Sub2Contains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldSub2, v))
}

// Sub2HasPrefix applies the HasPrefix predicate on the "sub2" field.
func Sub2HasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldSub2, v))
}

// Sub2HasSuffix applies the HasSuffix predicate on the "sub2" field.
func Sub2HasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldSub2, v))
}

// Sub2IsNil applies the IsNil predicate on the "sub2" field.
func Sub2IsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldSub2))
}

// Sub2NotNil applies the NotNil predicate on the "sub2" field.
func Sub2NotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldSub2))
}

// Sub2EqualFold applies the EqualFold predicate on the "sub2" field.
func Sub2EqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldSub2, v))
}

// Sub2ContainsFold applies the ContainsFold predicate on the "sub2" field.
func Sub2ContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldSub2, v))
}

// Sub3EQ applies the EQ predicate on the "sub3" field.
func Sub3EQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldSub3, v))
}

// Sub3NEQ applies the NEQ predicate on the "sub3" field.
func Sub3NEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldSub3, v))
}

// Sub3In applies the In predicate on the "sub3" field.
func Sub3In(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldSub3, vs...))
}

// Sub3NotIn applies the NotIn predicate on the "sub3" field.
func Sub3NotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldSub3, vs...))
}

// Sub3GT applies the GT predicate on the "sub3" field.
func Sub3GT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldSub3, v))
}

// Sub3GTE applies the GTE predicate on the "sub3" field.
func Sub3GTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldSub3, v))
}

// Sub3LT applies the LT predicate on the "sub3" field.
func Sub3LT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldSub3, v))
}

// Sub3LTE applies the LTE predicate on the "sub3" field.
func Sub3LTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldSub3, v))
}

// Sub3Contains applies the Contains predicate on the "sub3" field.
func Sub3Contains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldSub3, v))
}

// Sub3HasPrefix applies the HasPrefix predicate on the "sub3" field.
func Sub3HasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldSub3, v))
}

// Sub3HasSuffix applies the HasSuffix predicate on the "sub3" field.
func Sub3HasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldSub3, v))
}

// Sub3IsNil applies the IsNil predicate on the "sub3" field.
func Sub3IsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldSub3))
}

// Sub3NotNil applies the NotNil predicate on the "sub3" field.
func Sub3NotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldSub3))
}

// Sub3EqualFold applies the EqualFold predicate on the "sub3" field.
func Sub3EqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldSub3, v))
}

// Sub3ContainsFold applies the ContainsFold predicate on the "sub3" field.
func Sub3ContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldSub3, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDIsNil applies the IsNil predicate on the "campaign_id" field.
func CampaignIDIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldCampaignID))
}

// CampaignIDNotNil applies the NotNil predicate on the "campaign_id" field.
func CampaignIDNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldCampaignID))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldCampaignID, v))
}

// TrackingSourceEQ applies the EQ predicate on the "tracking_source" field.
func TrackingSourceEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldTrackingSource, v))
}

// TrackingSourceNEQ applies the NEQ predicate on the "tracking_source" field.
func TrackingSourceNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldTrackingSource, v))
}

// TrackingSourceIn applies the In predicate on the "tracking_source" field.
func TrackingSourceIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldTrackingSource, vs...))
}

// TrackingSourceNotIn applies the NotIn predicate on the "tracking_source" field.
func TrackingSourceNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldTrackingSource, vs...))
}

// TrackingSourceGT applies the GT predicate on the "tracking_source" field.
func TrackingSourceGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldTrackingSource, v))
}

// TrackingSourceGTE applies the GTE predicate on the "tracking_source" field.
func TrackingSourceGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldTrackingSource, v))
}

// TrackingSourceLT applies the LT predicate on the "tracking_source" field.
func TrackingSourceLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldTrackingSource, v))
}

// TrackingSourceLTE applies the LTE predicate on the "tracking_source" field.
func TrackingSourceLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldTrackingSource, v))
}

// TrackingSourceContains applies the Contains predicate on the "tracking_source" field.
func TrackingSourceContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldTrackingSource, v))
}

// TrackingSourceHasPrefix applies the HasPrefix predicate on the "tracking_source" field.
func TrackingSourceHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldTrackingSource, v))
}

// TrackingSourceHasSuffix applies the HasSuffix predicate on the "tracking_source" field.
func TrackingSourceHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldTrackingSource, v))
}

// TrackingSourceIsNil applies the IsNil predicate on the "tracking_source" field.
func TrackingSourceIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldTrackingSource))
}

// TrackingSourceNotNil applies the NotNil predicate on the "tracking_source" field.
func TrackingSourceNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldTrackingSource))
}

// TrackingSourceEqualFold applies the EqualFold predicate on the "tracking_source" field.
func TrackingSourceEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldTrackingSource, v))
}

// TrackingSourceContainsFold applies the ContainsFold predicate on the "tracking_source" field.
func TrackingSourceContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldTrackingSource, v))
}

// TrackingLinkEQ applies the EQ predicate on the "tracking_link" field.
func TrackingLinkEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldTrackingLink, v))
}

// TrackingLinkNEQ applies the NEQ predicate on the "tracking_link" field.
func TrackingLinkNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldTrackingLink, v))
}

// TrackingLinkIn applies the In predicate on the "tracking_link" field.
func TrackingLinkIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldTrackingLink, vs...))
}

// TrackingLinkNotIn applies the NotIn predicate on the "tracking_link" field.
func TrackingLinkNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldTrackingLink, vs...))
}

// TrackingLinkGT applies the GT predicate on the "tracking_link" field.
func TrackingLinkGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldTrackingLink, v))
}

// TrackingLinkGTE applies the GTE predicate on the "tracking_link" field.
func TrackingLinkGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldTrackingLink, v))
}

// TrackingLinkLT applies the LT predicate on the "tracking_link" field.
func TrackingLinkLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldTrackingLink, v))
}

// TrackingLinkLTE applies the LTE predicate on the "tracking_link" field.
func TrackingLinkLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldTrackingLink, v))
}

// TrackingLinkContains applies the Contains predicate on the "tracking_link" field.
func TrackingLinkContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldTrackingLink, v))
}

// TrackingLinkHasPrefix applies the HasPrefix predicate on the "tracking_link" field.
func TrackingLinkHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldTrackingLink, v))
}

// TrackingLinkHasSuffix applies the HasSuffix predicate on the "tracking_link" field.
func TrackingLinkHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldTrackingLink, v))
}

// TrackingLinkIsNil applies the IsNil predicate on the "tracking_link" field.
func TrackingLinkIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldTrackingLink))
}

// TrackingLinkNotNil applies the NotNil predicate on the "tracking_link" field.
func TrackingLinkNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldTrackingLink))
}

// TrackingLinkEqualFold applies the EqualFold predicate on the "tracking_link" field.
func TrackingLinkEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldTrackingLink, v))
}

// TrackingLinkContainsFold applies the ContainsFold predicate on the "tracking_link" field.
func TrackingLinkContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldTrackingLink, v))
}

// AffiliateRegisteredEQ applies the EQ predicate on the "affiliate_registered" field.
func AffiliateRegisteredEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldAffiliateRegistered, v))
}

// AffiliateRegisteredNEQ applies the NEQ predicate on the "affiliate_registered" field.
func AffiliateRegisteredNEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldAffiliateRegistered, v))
}

// AffiliateErrorEQ applies the EQ predicate on the "affiliate_error" field.
func AffiliateErrorEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldAffiliateError, v))
}

// AffiliateErrorNEQ applies the NEQ predicate on the "affiliate_error" field.
func AffiliateErrorNEQ(v string) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldAffiliateError, v))
}

// AffiliateErrorIn applies the In predicate on the "affiliate_error" field.
func AffiliateErrorIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldAffiliateError, vs...))
}

// AffiliateErrorNotIn applies the NotIn predicate on the "affiliate_error" field.
func AffiliateErrorNotIn(vs ...string) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldAffiliateError, vs...))
}

// AffiliateErrorGT applies the GT predicate on the "affiliate_error" field.
func AffiliateErrorGT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldAffiliateError, v))
}

// AffiliateErrorGTE applies the GTE predicate on the "affiliate_error" field.
func AffiliateErrorGTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldAffiliateError, v))
}

// AffiliateErrorLT applies the LT predicate on the "affiliate_error" field.
func AffiliateErrorLT(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldAffiliateError, v))
}

// AffiliateErrorLTE applies the LTE predicate on the "affiliate_error" field.
func AffiliateErrorLTE(v string) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldAffiliateError, v))
}

// AffiliateErrorContains applies the Contains predicate on the "affiliate_error" field.
func AffiliateErrorContains(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContains(FieldAffiliateError, v))
}

// AffiliateErrorHasPrefix applies the HasPrefix predicate on the "affiliate_error" field.
func AffiliateErrorHasPrefix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasPrefix(FieldAffiliateError, v))
}

// AffiliateErrorHasSuffix applies the HasSuffix predicate on the "affiliate_error" field.
func AffiliateErrorHasSuffix(v string) predicate.Contact {
	return predicate.Contact(sql.FieldHasSuffix(FieldAffiliateError, v))
}

// AffiliateErrorIsNil applies the IsNil predicate on the "affiliate_error" field.
func AffiliateErrorIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldAffiliateError))
}

// AffiliateErrorNotNil applies the NotNil predicate on the "affiliate_error" field.
func AffiliateErrorNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldAffiliateError))
}

// AffiliateErrorEqualFold applies the EqualFold predicate on the "affiliate_error" field.
func AffiliateErrorEqualFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldEqualFold(FieldAffiliateError, v))
}

// AffiliateErrorContainsFold applies the ContainsFold predicate on the "affiliate_error" field.
func AffiliateErrorContainsFold(v string) predicate.Contact {
	return predicate.Contact(sql.FieldContainsFold(FieldAffiliateError, v))
}

// FtdEQ applies the EQ predicate on the "ftd" field.
func FtdEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFtd, v))
}

// FtdNEQ applies the NEQ predicate on the "ftd" field.
func FtdNEQ(v bool) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldFtd, v))
}

// FtdAmountEQ applies the EQ predicate on the "ftd_amount" field.
func FtdAmountEQ(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFtdAmount, v))
}

// FtdAmountNEQ applies the NEQ predicate on the "ftd_amount" field.
func FtdAmountNEQ(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldFtdAmount, v))
}

// FtdAmountIn applies the In predicate on the "ftd_amount" field.
func FtdAmountIn(vs ...float64) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldFtdAmount, vs...))
}

// FtdAmountNotIn applies the NotIn predicate on the "ftd_amount" field.
func FtdAmountNotIn(vs ...float64) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldFtdAmount, vs...))
}

// FtdAmountGT applies the GT predicate on the "ftd_amount" field.
func FtdAmountGT(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldFtdAmount, v))
}

// FtdAmountGTE applies the GTE predicate on the "ftd_amount" field.
func FtdAmountGTE(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldFtdAmount, v))
}

// FtdAmountLT applies the LT predicate on the "ftd_amount" field.
func FtdAmountLT(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldFtdAmount, v))
}

// FtdAmountLTE applies the LTE predicate on the "ftd_amount" field.
func FtdAmountLTE(v float64) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldFtdAmount, v))
}

// FtdAmountIsNil applies the IsNil predicate on the "ftd_amount" field.
func FtdAmountIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldFtdAmount))
}

// FtdAmountNotNil applies the NotNil predicate on the "ftd_amount" field.
func FtdAmountNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldFtdAmount))
}

// FtdDateEQ applies the EQ predicate on the "ftd_date" field.
func FtdDateEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldFtdDate, v))
}

// FtdDateNEQ applies the NEQ predicate on the "ftd_date" field.
func FtdDateNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldFtdDate, v))
}

// FtdDateIn applies the In predicate on the "ftd_date" field.
func FtdDateIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldFtdDate, vs...))
}

// FtdDateNotIn applies the NotIn predicate on the "ftd_date" field.
func FtdDateNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldFtdDate, vs...))
}

// FtdDateGT applies the GT predicate on the "ftd_date" field.
func FtdDateGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldFtdDate, v))
}

// FtdDateGTE applies the GTE predicate on the "ftd_date" field.
func FtdDateGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldFtdDate, v))
}

// FtdDateLT applies the LT predicate on the "ftd_date" field.
func FtdDateLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldFtdDate, v))
}

// FtdDateLTE applies the LTE predicate on the "ftd_date" field.
func FtdDateLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldFtdDate, v))
}

// FtdDateIsNil applies the IsNil predicate on the "ftd_date" field.
func FtdDateIsNil() predicate.Contact {
	return predicate.Contact(sql.FieldIsNull(FieldFtdDate))
}

// FtdDateNotNil applies the NotNil predicate on the "ftd_date" field.
func FtdDateNotNil() predicate.Contact {
	return predicate.Contact(sql.FieldNotNull(FieldFtdDate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contact {
	return predicate.Contact(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contact) predicate.Contact {
	return predicate.Contact(sql.NotPredicates(p))
}
