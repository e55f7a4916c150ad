// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/barracuda-partners/backend/ent/contact"
	"github.com/barracuda-partners/backend/ent/predicate"
)

// ContactUpdate is the builder for updating Contact entities.
type ContactUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdate) Where(ps ...predicate.Contact) *ContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactUpdate) SetEmail(v string) *ContactUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEmail(v *string) *ContactUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ContactUpdate) SetName(v string) *ContactUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableName(v *string) *ContactUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ContactUpdate) ClearName() *ContactUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ContactUpdate) SetCompany(v string) *ContactUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableCompany(v *string) *ContactUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ContactUpdate) ClearCompany() *ContactUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetType sets the "type" field.
func (_u *ContactUpdate) SetType(v contact.Type) *ContactUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableType(v *contact.Type) *ContactUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactUpdate) SetStatus(v contact.Status) *ContactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableStatus(v *contact.Status) *ContactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAffiliateStatus sets the "affiliate_status" field.
func (_u *ContactUpdate) SetAffiliateStatus(v contact.AffiliateStatus) *ContactUpdate {
	_u.mutation.SetAffiliateStatus(v)
	return _u
}

// SetNillableAffiliateStatus sets the "affiliate_status" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableAffiliateStatus(v *contact.AffiliateStatus) *ContactUpdate {
	if v != nil {
		_u.SetAffiliateStatus(*v)
	}
	return _u
}

// SetMessenger sets the "messenger" field.
func (_u *ContactUpdate) SetMessenger(v string) *ContactUpdate {
	_u.mutation.SetMessenger(v)
	return _u
}

// SetNillableMessenger sets the "messenger" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableMessenger(v *string) *ContactUpdate {
	if v != nil {
		_u.SetMessenger(*v)
	}
	return _u
}

// ClearMessenger clears the value of the "messenger" field.
func (_u *ContactUpdate) ClearMessenger() *ContactUpdate {
	_u.mutation.ClearMessenger()
	return _u
}

// SetUsername sets the "username" field.
func (_u *ContactUpdate) SetUsername(v string) *ContactUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableUsername(v *string) *ContactUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *ContactUpdate) ClearUsername() *ContactUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetMessage sets the "message" field.
func (_u *ContactUpdate) SetMessage(v string) *ContactUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableMessage(v *string) *ContactUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *ContactUpdate) ClearMessage() *ContactUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ContactUpdate) SetNotes(v string) *ContactUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableNotes(v *string) *ContactUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ContactUpdate) ClearNotes() *ContactUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *ContactUpdate) SetAffiliateID(v string) *ContactUpdate {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableAffiliateID(v *string) *ContactUpdate {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (_u *ContactUpdate) ClearAffiliateID() *ContactUpdate {
	_u.mutation.ClearAffiliateID()
	return _u
}

// SetURLID sets the "url_id" field.
func (_u *ContactUpdate) SetURLID(v string) *ContactUpdate {
	_u.mutation.SetURLID(v)
	return _u
}

// SetNillableURLID sets the "url_id" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableURLID(v *string) *ContactUpdate {
	if v != nil {
		_u.SetURLID(*v)
	}
	return _u
}

// ClearURLID clears the value of the "url_id" field.
func (_u *ContactUpdate) ClearURLID() *ContactUpdate {
	_u.mutation.ClearURLID()
	return _u
}

// SetSub1 sets the "sub1" field.
func (_u *ContactUpdate) SetSub1(v string) *ContactUpdate {
	_u.mutation.SetSub1(v)
	return _u
}

// SetNillableSub1 sets the "sub1" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableSub1(v *string) *ContactUpdate {
	if v != nil {
		_u.SetSub1(*v)
	}
	return _u
}

// ClearSub1 clears the value of the "sub1" field.
func (_u *ContactUpdate) ClearSub1() *ContactUpdate {
	_u.mutation.ClearSub1()
	return _u
}

// SetSub2 sets the "sub2" field.
func (_u *ContactUpdate) SetSub2(v string) *ContactUpdate {
	_u.mutation.SetSub2(v)
	return _u
}

// SetNillableSub2 sets the "sub2" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableSub2(v *string) *ContactUpdate {
	if v != nil {
		_u.SetSub2(*v)
	}
	return _u
}

// ClearSub2 clears the value of the "sub2" field.
func (_u *ContactUpdate) ClearSub2() *ContactUpdate {
	_u.mutation.ClearSub2()
	return _u
}

// SetSub3 sets the "sub3" field.
func (_u *ContactUpdate) SetSub3(v string) *ContactUpdate {
	_u.mutation.SetSub3(v)
	return _u
}

// SetNillableSub3 sets the "sub3" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableSub3(v *string) *ContactUpdate {
	if v != nil {
		_u.SetSub3(*v)
	}
	return _u
}

// ClearSub3 clears the value of the "sub3" field.
func (_u *ContactUpdate) ClearSub3() *ContactUpdate {
	_u.mutation.ClearSub3()
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *ContactUpdate) SetCampaignID(v string) *ContactUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableCampaignID(v *string) *ContactUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (_u *ContactUpdate) ClearCampaignID() *ContactUpdate {
	_u.mutation.ClearCampaignID()
	return _u
}

// SetTrackingSource sets the "tracking_source" field.
func (_u *ContactUpdate) SetTrackingSource(v string) *ContactUpdate {
	_u.mutation.SetTrackingSource(v)
	return _u
}

// SetNillableTrackingSource sets the "tracking_source" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableTrackingSource(v *string) *ContactUpdate {
	if v != nil {
		_u.SetTrackingSource(*v)
	}
	return _u
}

// ClearTrackingSource clears the value of the "tracking_source" field.
func (_u *ContactUpdate) ClearTrackingSource() *ContactUpdate {
	_u.mutation.ClearTrackingSource()
	return _u
}

// SetTrackingLink sets the "tracking_link" field.
func (_u *ContactUpdate) SetTrackingLink(v string) *ContactUpdate {
	_u.mutation.SetTrackingLink(v)
	return _u
}

// SetNillableTrackingLink sets the "tracking_link" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableTrackingLink(v *string) *ContactUpdate {
	if v != nil {
		_u.SetTrackingLink(*v)
	}
	return _u
}

// ClearTrackingLink clears the value of the "tracking_link" field.
func (_u *ContactUpdate) ClearTrackingLink() *ContactUpdate {
	_u.mutation.ClearTrackingLink()
	return _u
}

// SetAffiliateRegistered sets the "affiliate_registered" field.
func (_u *ContactUpdate) SetAffiliateRegistered(v bool) *ContactUpdate {
	_u.mutation.SetAffiliateRegistered(v)
	return _u
}

// SetNillableAffiliateRegistered sets the "affiliate_registered" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableAffiliateRegistered(v *bool) *ContactUpdate {
	if v != nil {
		_u.SetAffiliateRegistered(*v)
	}
	return _u
}

// SetAffiliateError sets the "affiliate_error" field.
func (_u *ContactUpdate) SetAffiliateError(v string) *ContactUpdate {
	_u.mutation.SetAffiliateError(v)
	return _u
}

// SetNillableAffiliateError sets the "affiliate_error" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableAffiliateError(v *string) *ContactUpdate {
	if v != nil {
		_u.SetAffiliateError(*v)
	}
	return _u
}

// ClearAffiliateError clears the value of the "affiliate_error" field.
func (_u *ContactUpdate) ClearAffiliateError() *ContactUpdate {
	_u.mutation.ClearAffiliateError()
	return _u
}

// SetFtd sets the "ftd" field.
func (_u *ContactUpdate) SetFtd(v bool) *ContactUpdate {
	_u.mutation.SetFtd(v)
	return _u
}

// SetNillableFtd sets the "ftd" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableFtd(v *bool) *ContactUpdate {
	if v != nil {
		_u.SetFtd(*v)
	}
	return _u
}

// SetFtdAmount sets the "ftd_amount" field.
func (_u *ContactUpdate) SetFtdAmount(v float64) *ContactUpdate {
	_u.mutation.ResetFtdAmount()
	_u.mutation.SetFtdAmount(v)
	return _u
}

// SetNillableFtdAmount sets the "ftd_amount" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableFtdAmount(v *float64) *ContactUpdate {
	if v != nil {
		_u.SetFtdAmount(*v)
	}
	return _u
}

// AddFtdAmount adds value to the "ftd_amount" field.
func (_u *ContactUpdate) AddFtdAmount(v float64) *ContactUpdate {
	_u.mutation.AddFtdAmount(v)
	return _u
}

// ClearFtdAmount clears the value of the "ftd_amount" field.
func (_u *ContactUpdate) ClearFtdAmount() *ContactUpdate {
	_u.mutation.ClearFtdAmount()
	return _u
}

// SetFtdDate sets the "ftd_date" field.
func (_u *ContactUpdate) SetFtdDate(v time.Time) *ContactUpdate {
	_u.mutation.SetFtdDate(v)
	return _u
}

// SetNillableFtdDate sets the "ftd_date" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableFtdDate(v *time.Time) *ContactUpdate {
	if v != nil {
		_u.SetFtdDate(*v)
	}
	return _u
}

// ClearFtdDate clears the value of the "ftd_date" field.
func (_u *ContactUpdate) ClearFtdDate() *ContactUpdate {
	_u.mutation.ClearFtdDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdate) SetUpdatedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdate) Mutation() *ContactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := contact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Contact.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := contact.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Contact.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contact.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AffiliateStatus(); ok {
		if err := contact.AffiliateStatusValidator(v); err != nil {
			return &ValidationError{Name: "affiliate_status", err: fmt.Errorf(`ent: validator failed for field "Contact.affiliate_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(contact.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(contact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(contact.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffiliateStatus(); ok {
		_spec.SetField(contact.FieldAffiliateStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Messenger(); ok {
		_spec.SetField(contact.FieldMessenger, field.TypeString, value)
	}
	if _u.mutation.MessengerCleared() {
		_spec.ClearField(contact.FieldMessenger, field.TypeString)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(contact.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(contact.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(contact.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(contact.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(contact.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(contact.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.AffiliateID(); ok {
		_spec.SetField(contact.FieldAffiliateID, field.TypeString, value)
	}
	if _u.mutation.AffiliateIDCleared() {
		_spec.ClearField(contact.FieldAffiliateID, field.TypeString)
	}
	if value, ok := _u.mutation.URLID(); ok {
		_spec.SetField(contact.FieldURLID, field.TypeString, value)
	}
	if _u.mutation.URLIDCleared() {
		_spec.ClearField(contact.FieldURLID, field.TypeString)
	}
	if value, ok := _u.mutation.Sub1(); ok {
		_spec.SetField(contact.FieldSub1, field.TypeString, value)
	}
	if _u.mutation.Sub1Cleared() {
		_spec.ClearField(contact.FieldSub1, field.TypeString)
	}
	if value, ok := _u.mutation.Sub2(); ok {
		_spec.SetField(contact.FieldSub2, field.TypeString, value)
	}
	if _u.mutation.Sub2Cleared() {
		_spec.ClearField(contact.FieldSub2, field.TypeString)
	}
	if value, ok := _u.mutation.Sub3(); ok {
		_spec.SetField(contact.FieldSub3, field.TypeString, value)
	}
	if _u.mutation.Sub3Cleared() {
		_spec.ClearField(contact.FieldSub3, field.TypeString)
	}
	if value, ok := _u.mutation.CampaignID(); ok {
		_spec.SetField(contact.FieldCampaignID, field.TypeString, value)
	}
	if _u.mutation.CampaignIDCleared() {
		_spec.ClearField(contact.FieldCampaignID, field.TypeString)
	}
	if value, ok := _u.mutation.TrackingSource(); ok {
		_spec.SetField(contact.FieldTrackingSource, field.TypeString, value)
	}
	if _u.mutation.TrackingSourceCleared() {
		_spec.ClearField(contact.FieldTrackingSource, field.TypeString)
	}
	if value, ok := _u.mutation.TrackingLink(); ok {
		_spec.SetField(contact.FieldTrackingLink, field.TypeString, value)
	}
	if _u.mutation.TrackingLinkCleared() {
		_spec.ClearField(contact.FieldTrackingLink, field.TypeString)
	}
	if value, ok := _u.mutation.AffiliateRegistered(); ok {
		_spec.SetField(contact.FieldAffiliateRegistered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AffiliateError(); ok {
		_spec.SetField(contact.FieldAffiliateError, field.TypeString, value)
	}
	if _u.mutation.AffiliateErrorCleared() {
		_spec.ClearField(contact.FieldAffiliateError, field.TypeString)
	}
	if value, ok := _u.mutation.Ftd(); ok {
		_spec.SetField(contact.FieldFtd, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FtdAmount(); ok {
		_spec.SetField(contact.FieldFtdAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFtdAmount(); ok {
		_spec.AddField(contact.FieldFtdAmount, field.TypeFloat64, value)
	}
	if _u.mutation.FtdAmountCleared() {
		_spec.ClearField(contact.FieldFtdAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FtdDate(); ok {
		_spec.SetField(contact.FieldFtdDate, field.TypeTime, value)
	}
	if _u.mutation.FtdDateCleared() {
		_spec.ClearField(contact.FieldFtdDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactUpdateOne is the builder for updating a single Contact entity.
type ContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMutation
}

// SetEmail sets the "email" field.
func (_u *ContactUpdateOne) SetEmail(v string) *ContactUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEmail(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ContactUpdateOne) SetName(v string) *ContactUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableName(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ContactUpdateOne) ClearName() *ContactUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ContactUpdateOne) SetCompany(v string) *ContactUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableCompany(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ContactUpdateOne) ClearCompany() *ContactUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetType sets the "type" field.
func (_u *ContactUpdateOne) SetType(v contact.Type) *ContactUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableType(v *contact.Type) *ContactUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactUpdateOne) SetStatus(v contact.Status) *ContactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableStatus(v *contact.Status) *ContactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAffiliateStatus sets the "affiliate_status" field.
func (_u *ContactUpdateOne) SetAffiliateStatus(v contact.AffiliateStatus) *ContactUpdateOne {
	_u.mutation.SetAffiliateStatus(v)
	return _u
}

// SetNillableAffiliateStatus sets the "affiliate_status" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableAffiliateStatus(v *contact.AffiliateStatus) *ContactUpdateOne {
	if v != nil {
		_u.SetAffiliateStatus(*v)
	}
	return _u
}

// SetMessenger sets the "messenger" field.
func (_u *ContactUpdateOne) SetMessenger(v string) *ContactUpdateOne {
	_u.mutation.SetMessenger(v)
	return _u
}

// SetNillableMessenger sets the "messenger" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableMessenger(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetMessenger(*v)
	}
	return _u
}

// ClearMessenger clears the value of the "messenger" field.
func (_u *ContactUpdateOne) ClearMessenger() *ContactUpdateOne {
	_u.mutation.ClearMessenger()
	return _u
}

// SetUsername sets the "username" field.
func (_u *ContactUpdateOne) SetUsername(v string) *ContactUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableUsername(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *ContactUpdateOne) ClearUsername() *ContactUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetMessage sets the "message" field.
func (_u *ContactUpdateOne) SetMessage(v string) *ContactUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableMessage(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *ContactUpdateOne) ClearMessage() *ContactUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ContactUpdateOne) SetNotes(v string) *ContactUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableNotes(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ContactUpdateOne) ClearNotes() *ContactUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *ContactUpdateOne) SetAffiliateID(v string) *ContactUpdateOne {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableAffiliateID(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (_u *ContactUpdateOne) ClearAffiliateID() *ContactUpdateOne {
	_u.mutation.ClearAffiliateID()
	return _u
}

// SetURLID sets the "url_id" field.
func (_u *ContactUpdateOne) SetURLID(v string) *ContactUpdateOne {
	_u.mutation.SetURLID(v)
	return _u
}

// SetNillableURLID sets the "url_id" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableURLID(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetURLID(*v)
	}
	return _u
}

// ClearURLID clears the value of the "url_id" field.
func (_u *ContactUpdateOne) ClearURLID() *ContactUpdateOne {
	_u.mutation.ClearURLID()
	return _u
}

// SetSub1 sets the "sub1" field.
func (_u *ContactUpdateOne) SetSub1(v string) *ContactUpdateOne {
	_u.mutation.SetSub1(v)
	return _u
}

// SetNillableSub1 sets the "sub1" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableSub1(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetSub1(*v)
	}
	return _u
}

// ClearSub1 clears the value of the "sub1" field.
func (_u *ContactUpdateOne) ClearSub1() *ContactUpdateOne {
	_u.mutation.ClearSub1()
	return _u
}

// SetSub2 sets the "sub2" field.
func (_u *ContactUpdateOne) SetSub2(v string) *ContactUpdateOne {
	_u.mutation.SetSub2(v)
	return _u
}

// SetNillableSub2 sets the "sub2" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableSub2(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetSub2(*v)
	}
	return _u
}

// ClearSub2 clears the value of the "sub2" field.
func (_u *ContactUpdateOne) ClearSub2() *ContactUpdateOne {
	_u.mutation.ClearSub2()
	return _u
}

// SetSub3 sets the "sub3" field.
func (_u *ContactUpdateOne) SetSub3(v string) *ContactUpdateOne {
	_u.mutation.SetSub3(v)
	return _u
}

// SetNillableSub3 sets the "sub3" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableSub3(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetSub3(*v)
	}
	return _u
}

// ClearSub3 clears the value of the "sub3" field.
func (_u *ContactUpdateOne) ClearSub3() *ContactUpdateOne {
	_u.mutation.ClearSub3()
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *ContactUpdateOne) SetCampaignID(v string) *ContactUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableCampaignID(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (_u *ContactUpdateOne) ClearCampaignID() *ContactUpdateOne {
	_u.mutation.ClearCampaignID()
	return _u
}

// SetTrackingSource sets the "tracking_source" field.
func (_u *ContactUpdateOne) SetTrackingSource(v string) *ContactUpdateOne {
	_u.mutation.SetTrackingSource(v)
	return _u
}

// SetNillableTrackingSource sets the "tracking_source" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableTrackingSource(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetTrackingSource(*v)
	}
	return _u
}

// ClearTrackingSource clears the value of the "tracking_source" field.
func (_u *ContactUpdateOne) ClearTrackingSource() *ContactUpdateOne {
	_u.mutation.ClearTrackingSource()
	return _u
}

// SetTrackingLink sets the "tracking_link" field.
func (_u *ContactUpdateOne) SetTrackingLink(v string) *ContactUpdateOne {
	_u.mutation.SetTrackingLink(v)
	return _u
}

// SetNillableTrackingLink sets the "tracking_link" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableTrackingLink(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetTrackingLink(*v)
	}
	return _u
}

// ClearTrackingLink clears the value of the "tracking_link" field.
func (_u *ContactUpdateOne) ClearTrackingLink() *ContactUpdateOne {
	_u.mutation.ClearTrackingLink()
	return _u
}

// SetAffiliateRegistered sets the "affiliate_registered" field.
func (_u *ContactUpdateOne) SetAffiliateRegistered(v bool) *ContactUpdateOne {
	_u.mutation.SetAffiliateRegistered(v)
	return _u
}

// SetNillableAffiliateRegistered sets the "affiliate_registered" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableAffiliateRegistered(v *bool) *ContactUpdateOne {
	if v != nil {
		_u.SetAffiliateRegistered(*v)
	}
	return _u
}

// SetAffiliateError sets the "affiliate_error" field.
func (_u *ContactUpdateOne) SetAffiliateError(v string) *ContactUpdateOne {
	_u.mutation.SetAffiliateError(v)
	return _u
}

// SetNillableAffiliateError sets the "affiliate_error" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableAffiliateError(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetAffiliateError(*v)
	}
	return _u
}

// ClearAffiliateError clears the value of the "affiliate_error" field.
func (_u *ContactUpdateOne) ClearAffiliateError() *ContactUpdateOne {
	_u.mutation.ClearAffiliateError()
	return _u
}

// SetFtd sets the "ftd" field.
func (_u *ContactUpdateOne) SetFtd(v bool) *ContactUpdateOne {
	_u.mutation.SetFtd(v)
	return _u
}

// SetNillableFtd sets the "ftd" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableFtd(v *bool) *ContactUpdateOne {
	if v != nil {
		_u.SetFtd(*v)
	}
	return _u
}

// SetFtdAmount sets the "ftd_amount" field.
func (_u *ContactUpdateOne) SetFtdAmount(v float64) *ContactUpdateOne {
	_u.mutation.ResetFtdAmount()
	_u.mutation.SetFtdAmount(v)
	return _u
}

// SetNillableFtdAmount sets the "ftd_amount" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableFtdAmount(v *float64) *ContactUpdateOne {
	if v != nil {
		_u.SetFtdAmount(*v)
	}
	return _u
}

// AddFtdAmount adds value to the "ftd_amount" field.
func (_u *ContactUpdateOne) AddFtdAmount(v float64) *ContactUpdateOne {
	_u.mutation.AddFtdAmount(v)
	return _u
}

// ClearFtdAmount clears the value of the "ftd_amount" field.
func (_u *ContactUpdateOne) ClearFtdAmount() *ContactUpdateOne {
	_u.mutation.ClearFtdAmount()
	return _u
}

// SetFtdDate sets the "ftd_date" field.
func (_u *ContactUpdateOne) SetFtdDate(v time.Time) *ContactUpdateOne {
	_u.mutation.SetFtdDate(v)
	return _u
}

// SetNillableFtdDate sets the "ftd_date" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableFtdDate(v *time.Time) *ContactUpdateOne {
	if v != nil {
		_u.SetFtdDate(*v)
	}
	return _u
}

// ClearFtdDate clears the value of the "ftd_date" field.
func (_u *ContactUpdateOne) ClearFtdDate() *ContactUpdateOne {
	_u.mutation.ClearFtdDate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdateOne) SetUpdatedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdateOne) Mutation() *ContactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdateOne) Where(ps ...predicate.Contact) *ContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactUpdateOne) Select(field string, fields ...string) *ContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contact entity.
func (_u *ContactUpdateOne) Save(ctx context.Context) (*Contact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdateOne) SaveX(ctx context.Context) *Contact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := contact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Contact.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := contact.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Contact.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contact.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AffiliateStatus(); ok {
		if err := contact.AffiliateStatusValidator(v); err != nil {
			return &ValidationError{Name: "affiliate_status", err: fmt.Errorf(`ent: validator failed for field "Contact.affiliate_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactUpdateOne) sqlSave(ctx context.Context) (_node *Contact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contact.FieldID)
		for _, f := range fields {
			if !contact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contact.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(contact.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(contact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(contact.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffiliateStatus(); ok {
		_spec.SetField(contact.FieldAffiliateStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Messenger(); ok {
		_spec.SetField(contact.FieldMessenger, field.TypeString, value)
	}
	if _u.mutation.MessengerCleared() {
		_spec.ClearField(contact.FieldMessenger, field.TypeString)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(contact.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(contact.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(contact.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(contact.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(contact.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(contact.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.AffiliateID(); ok {
		_spec.SetField(contact.FieldAffiliateID, field.TypeString, value)
	}
	if _u.mutation.AffiliateIDCleared() {
		_spec.ClearField(contact.FieldAffiliateID, field.TypeString)
	}
	if value, ok := _u.mutation.URLID(); ok {
		_spec.SetField(contact.FieldURLID, field.TypeString, value)
	}
	if _u.mutation.URLIDCleared() {
		_spec.ClearField(contact.FieldURLID, field.TypeString)
	}
	if value, ok := _u.mutation.Sub1(); ok {
		_spec.SetField(contact.FieldSub1, field.TypeString, value)
	}
	if _u.mutation.Sub1Cleared() {
		_spec.ClearField(contact.FieldSub1, field.TypeString)
	}
	if value, ok := _u.mutation.Sub2(); ok {
		_spec.SetField(contact.FieldSub2, field.TypeString, value)
	}
	if _u.mutation.Sub2Cleared() {
		_spec.ClearField(contact.FieldSub2, field.TypeString)
	}
	if value, ok := _u.mutation.Sub3(); ok {
		_spec.SetField(contact.FieldSub3, field.TypeString, value)
	}
	if _u.mutation.Sub3Cleared() {
		_spec.ClearField(contact.FieldSub3, field.TypeString)
	}
	if value, ok := _u.mutation.CampaignID(); ok {
		_spec.SetField(contact.FieldCampaignID, field.TypeString, value)
	}
	if _u.mutation.CampaignIDCleared() {
		_spec.ClearField(contact.FieldCampaignID, field.TypeString)
	}
	if value, ok := _u.mutation.TrackingSource(); ok {
		_spec.SetField(contact.FieldTrackingSource, field.TypeString, value)
	}
	if _u.mutation.TrackingSourceCleared() {
		_spec.ClearField(contact.FieldTrackingSource, field.TypeString)
	}
	if value, ok := _u.mutation.TrackingLink(); ok {
		_spec.SetField(contact.FieldTrackingLink, field.TypeString, value)
	}
	if _u.mutation.TrackingLinkCleared() {
		_spec.ClearField(contact.FieldTrackingLink, field.TypeString)
	}
	if value, ok := _u.mutation.AffiliateRegistered(); ok {
		_spec.SetField(contact.FieldAffiliateRegistered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AffiliateError(); ok {
		_spec.SetField(contact.FieldAffiliateError, field.TypeString, value)
	}
	if _u.mutation.AffiliateErrorCleared() {
		_spec.ClearField(contact.FieldAffiliateError, field.TypeString)
	}
	if value, ok := _u.mutation.Ftd(); ok {
		_spec.SetField(contact.FieldFtd, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FtdAmount(); ok {
		_spec.SetField(contact.FieldFtdAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFtdAmount(); ok {
		_spec.AddField(contact.FieldFtdAmount, field.TypeFloat64, value)
	}
	if _u.mutation.FtdAmountCleared() {
		_spec.ClearField(contact.FieldFtdAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FtdDate(); ok {
		_spec.SetField(contact.FieldFtdDate, field.TypeTime, value)
	}
	if _u.mutation.FtdDateCleared() {
		_spec.ClearField(contact.FieldFtdDate, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Contact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
