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
	"github.com/barracuda-partners/backend/ent/conversion"
	"github.com/barracuda-partners/backend/ent/predicate"
)

// ConversionUpdate is the builder for updating Conversion entities.
type ConversionUpdate struct {
	config
	hooks    []Hook
	mutation *ConversionMutation
}

// Where appends a list predicates to the ConversionUpdate builder.
func (_u *ConversionUpdate) Where(ps ...predicate.Conversion) *ConversionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClickID sets the "click_id" field.
func (_u *ConversionUpdate) SetClickID(v string) *ConversionUpdate {
	_u.mutation.SetClickID(v)
	return _u
}

// SetNillableClickID sets the "click_id" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableClickID(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetClickID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *ConversionUpdate) SetGoalID(v string) *ConversionUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableGoalID(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetGoalType sets the "goal_type" field.
func (_u *ConversionUpdate) SetGoalType(v conversion.GoalType) *ConversionUpdate {
	_u.mutation.SetGoalType(v)
	return _u
}

// SetNillableGoalType sets the "goal_type" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableGoalType(v *conversion.GoalType) *ConversionUpdate {
	if v != nil {
		_u.SetGoalType(*v)
	}
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *ConversionUpdate) SetAffiliateID(v string) *ConversionUpdate {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableAffiliateID(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (_u *ConversionUpdate) ClearAffiliateID() *ConversionUpdate {
	_u.mutation.ClearAffiliateID()
	return _u
}

// SetOfferID sets the "offer_id" field.
func (_u *ConversionUpdate) SetOfferID(v string) *ConversionUpdate {
	_u.mutation.SetOfferID(v)
	return _u
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableOfferID(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetOfferID(*v)
	}
	return _u
}

// ClearOfferID clears the value of the "offer_id" field.
func (_u *ConversionUpdate) ClearOfferID() *ConversionUpdate {
	_u.mutation.ClearOfferID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ConversionUpdate) SetAmount(v float64) *ConversionUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableAmount(v *float64) *ConversionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ConversionUpdate) AddAmount(v float64) *ConversionUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetSaleAmount sets the "sale_amount" field.
func (_u *ConversionUpdate) SetSaleAmount(v float64) *ConversionUpdate {
	_u.mutation.ResetSaleAmount()
	_u.mutation.SetSaleAmount(v)
	return _u
}

// SetNillableSaleAmount sets the "sale_amount" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableSaleAmount(v *float64) *ConversionUpdate {
	if v != nil {
		_u.SetSaleAmount(*v)
	}
	return _u
}

// AddSaleAmount adds value to the "sale_amount" field.
func (_u *ConversionUpdate) AddSaleAmount(v float64) *ConversionUpdate {
	_u.mutation.AddSaleAmount(v)
	return _u
}

// ClearSaleAmount clears the value of the "sale_amount" field.
func (_u *ConversionUpdate) ClearSaleAmount() *ConversionUpdate {
	_u.mutation.ClearSaleAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversionUpdate) SetStatus(v conversion.Status) *ConversionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableStatus(v *conversion.Status) *ConversionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSub1 sets the "sub1" field.
func (_u *ConversionUpdate) SetSub1(v string) *ConversionUpdate {
	_u.mutation.SetSub1(v)
	return _u
}

// SetNillableSub1 sets the "sub1" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableSub1(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetSub1(*v)
	}
	return _u
}

// ClearSub1 clears the value of the "sub1" field.
func (_u *ConversionUpdate) ClearSub1() *ConversionUpdate {
	_u.mutation.ClearSub1()
	return _u
}

// SetSub2 sets the "sub2" field.
func (_u *ConversionUpdate) SetSub2(v string) *ConversionUpdate {
	_u.mutation.SetSub2(v)
	return _u
}

// SetNillableSub2 sets the "sub2" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableSub2(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetSub2(*v)
	}
	return _u
}

// ClearSub2 clears the value of the "sub2" field.
func (_u *ConversionUpdate) ClearSub2() *ConversionUpdate {
	_u.mutation.ClearSub2()
	return _u
}

// SetSub3 sets the "sub3" field.
func (_u *ConversionUpdate) SetSub3(v string) *ConversionUpdate {
	_u.mutation.SetSub3(v)
	return _u
}

// SetNillableSub3 sets the "sub3" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableSub3(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetSub3(*v)
	}
	return _u
}

// ClearSub3 clears the value of the "sub3" field.
func (_u *ConversionUpdate) ClearSub3() *ConversionUpdate {
	_u.mutation.ClearSub3()
	return _u
}

// SetSub4 sets the "sub4" field.
func (_u *ConversionUpdate) SetSub4(v string) *ConversionUpdate {
	_u.mutation.SetSub4(v)
	return _u
}

// SetNillableSub4 sets the "sub4" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableSub4(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetSub4(*v)
	}
	return _u
}

// ClearSub4 clears the value of the "sub4" field.
func (_u *ConversionUpdate) ClearSub4() *ConversionUpdate {
	_u.mutation.ClearSub4()
	return _u
}

// SetSub5 sets the "sub5" field.
func (_u *ConversionUpdate) SetSub5(v string) *ConversionUpdate {
	_u.mutation.SetSub5(v)
	return _u
}

// SetNillableSub5 sets the "sub5" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableSub5(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetSub5(*v)
	}
	return _u
}

// ClearSub5 clears the value of the "sub5" field.
func (_u *ConversionUpdate) ClearSub5() *ConversionUpdate {
	_u.mutation.ClearSub5()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *ConversionUpdate) SetUserAgent(v string) *ConversionUpdate {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableUserAgent(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *ConversionUpdate) ClearUserAgent() *ConversionUpdate {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *ConversionUpdate) SetIPAddress(v string) *ConversionUpdate {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableIPAddress(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *ConversionUpdate) ClearIPAddress() *ConversionUpdate {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ConversionUpdate) SetCountry(v string) *ConversionUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableCountry(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *ConversionUpdate) ClearCountry() *ConversionUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetRegion sets the "region" field.
func (_u *ConversionUpdate) SetRegion(v string) *ConversionUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableRegion(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *ConversionUpdate) ClearRegion() *ConversionUpdate {
	_u.mutation.ClearRegion()
	return _u
}

// SetSource sets the "source" field.
func (_u *ConversionUpdate) SetSource(v string) *ConversionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableSource(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *ConversionUpdate) ClearSource() *ConversionUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *ConversionUpdate) SetPlatform(v string) *ConversionUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillablePlatform(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// ClearPlatform clears the value of the "platform" field.
func (_u *ConversionUpdate) ClearPlatform() *ConversionUpdate {
	_u.mutation.ClearPlatform()
	return _u
}

// SetBrowser sets the "browser" field.
func (_u *ConversionUpdate) SetBrowser(v string) *ConversionUpdate {
	_u.mutation.SetBrowser(v)
	return _u
}

// SetNillableBrowser sets the "browser" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableBrowser(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetBrowser(*v)
	}
	return _u
}

// ClearBrowser clears the value of the "browser" field.
func (_u *ConversionUpdate) ClearBrowser() *ConversionUpdate {
	_u.mutation.ClearBrowser()
	return _u
}

// SetOs sets the "os" field.
func (_u *ConversionUpdate) SetOs(v string) *ConversionUpdate {
	_u.mutation.SetOs(v)
	return _u
}

// SetNillableOs sets the "os" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableOs(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetOs(*v)
	}
	return _u
}

// ClearOs clears the value of the "os" field.
func (_u *ConversionUpdate) ClearOs() *ConversionUpdate {
	_u.mutation.ClearOs()
	return _u
}

// SetOsVersion sets the "os_version" field.
func (_u *ConversionUpdate) SetOsVersion(v string) *ConversionUpdate {
	_u.mutation.SetOsVersion(v)
	return _u
}

// SetNillableOsVersion sets the "os_version" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableOsVersion(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetOsVersion(*v)
	}
	return _u
}

// ClearOsVersion clears the value of the "os_version" field.
func (_u *ConversionUpdate) ClearOsVersion() *ConversionUpdate {
	_u.mutation.ClearOsVersion()
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *ConversionUpdate) SetManufacturer(v string) *ConversionUpdate {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableManufacturer(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *ConversionUpdate) ClearManufacturer() *ConversionUpdate {
	_u.mutation.ClearManufacturer()
	return _u
}

// SetDeviceType sets the "device_type" field.
func (_u *ConversionUpdate) SetDeviceType(v string) *ConversionUpdate {
	_u.mutation.SetDeviceType(v)
	return _u
}

// SetNillableDeviceType sets the "device_type" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableDeviceType(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetDeviceType(*v)
	}
	return _u
}

// ClearDeviceType clears the value of the "device_type" field.
func (_u *ConversionUpdate) ClearDeviceType() *ConversionUpdate {
	_u.mutation.ClearDeviceType()
	return _u
}

// SetIsTest sets the "is_test" field.
func (_u *ConversionUpdate) SetIsTest(v bool) *ConversionUpdate {
	_u.mutation.SetIsTest(v)
	return _u
}

// SetNillableIsTest sets the "is_test" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableIsTest(v *bool) *ConversionUpdate {
	if v != nil {
		_u.SetIsTest(*v)
	}
	return _u
}

// SetClickHash sets the "click_hash" field.
func (_u *ConversionUpdate) SetClickHash(v string) *ConversionUpdate {
	_u.mutation.SetClickHash(v)
	return _u
}

// SetNillableClickHash sets the "click_hash" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableClickHash(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetClickHash(*v)
	}
	return _u
}

// ClearClickHash clears the value of the "click_hash" field.
func (_u *ConversionUpdate) ClearClickHash() *ConversionUpdate {
	_u.mutation.ClearClickHash()
	return _u
}

// SetAdvertiserID sets the "advertiser_id" field.
func (_u *ConversionUpdate) SetAdvertiserID(v string) *ConversionUpdate {
	_u.mutation.SetAdvertiserID(v)
	return _u
}

// SetNillableAdvertiserID sets the "advertiser_id" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableAdvertiserID(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetAdvertiserID(*v)
	}
	return _u
}

// ClearAdvertiserID clears the value of the "advertiser_id" field.
func (_u *ConversionUpdate) ClearAdvertiserID() *ConversionUpdate {
	_u.mutation.ClearAdvertiserID()
	return _u
}

// SetOfferURLID sets the "offer_url_id" field.
func (_u *ConversionUpdate) SetOfferURLID(v string) *ConversionUpdate {
	_u.mutation.SetOfferURLID(v)
	return _u
}

// SetNillableOfferURLID sets the "offer_url_id" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableOfferURLID(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetOfferURLID(*v)
	}
	return _u
}

// ClearOfferURLID clears the value of the "offer_url_id" field.
func (_u *ConversionUpdate) ClearOfferURLID() *ConversionUpdate {
	_u.mutation.ClearOfferURLID()
	return _u
}

// SetAffiliateSource sets the "affiliate_source" field.
func (_u *ConversionUpdate) SetAffiliateSource(v string) *ConversionUpdate {
	_u.mutation.SetAffiliateSource(v)
	return _u
}

// SetNillableAffiliateSource sets the "affiliate_source" field if the given value is not nil.
func (_u *ConversionUpdate) SetNillableAffiliateSource(v *string) *ConversionUpdate {
	if v != nil {
		_u.SetAffiliateSource(*v)
	}
	return _u
}

// ClearAffiliateSource clears the value of the "affiliate_source" field.
func (_u *ConversionUpdate) ClearAffiliateSource() *ConversionUpdate {
	_u.mutation.ClearAffiliateSource()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ConversionUpdate) SetMetadata(v map[string]interface{}) *ConversionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ConversionUpdate) ClearMetadata() *ConversionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversionUpdate) SetUpdatedAt(v time.Time) *ConversionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversionMutation object of the builder.
func (_u *ConversionUpdate) Mutation() *ConversionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversionUpdate) check() error {
	if v, ok := _u.mutation.ClickID(); ok {
		if err := conversion.ClickIDValidator(v); err != nil {
			return &ValidationError{Name: "click_id", err: fmt.Errorf(`ent: validator failed for field "Conversion.click_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := conversion.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "Conversion.goal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalType(); ok {
		if err := conversion.GoalTypeValidator(v); err != nil {
			return &ValidationError{Name: "goal_type", err: fmt.Errorf(`ent: validator failed for field "Conversion.goal_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversion.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversion.Table, conversion.Columns, sqlgraph.NewFieldSpec(conversion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClickID(); ok {
		_spec.SetField(conversion.FieldClickID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(conversion.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalType(); ok {
		_spec.SetField(conversion.FieldGoalType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffiliateID(); ok {
		_spec.SetField(conversion.FieldAffiliateID, field.TypeString, value)
	}
	if _u.mutation.AffiliateIDCleared() {
		_spec.ClearField(conversion.FieldAffiliateID, field.TypeString)
	}
	if value, ok := _u.mutation.OfferID(); ok {
		_spec.SetField(conversion.FieldOfferID, field.TypeString, value)
	}
	if _u.mutation.OfferIDCleared() {
		_spec.ClearField(conversion.FieldOfferID, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(conversion.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(conversion.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SaleAmount(); ok {
		_spec.SetField(conversion.FieldSaleAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSaleAmount(); ok {
		_spec.AddField(conversion.FieldSaleAmount, field.TypeFloat64, value)
	}
	if _u.mutation.SaleAmountCleared() {
		_spec.ClearField(conversion.FieldSaleAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sub1(); ok {
		_spec.SetField(conversion.FieldSub1, field.TypeString, value)
	}
	if _u.mutation.Sub1Cleared() {
		_spec.ClearField(conversion.FieldSub1, field.TypeString)
	}
	if value, ok := _u.mutation.Sub2(); ok {
		_spec.SetField(conversion.FieldSub2, field.TypeString, value)
	}
	if _u.mutation.Sub2Cleared() {
		_spec.ClearField(conversion.FieldSub2, field.TypeString)
	}
	if value, ok := _u.mutation.Sub3(); ok {
		_spec.SetField(conversion.FieldSub3, field.TypeString, value)
	}
	if _u.mutation.Sub3Cleared() {
		_spec.ClearField(conversion.FieldSub3, field.TypeString)
	}
	if value, ok := _u.mutation.Sub4(); ok {
		_spec.SetField(conversion.FieldSub4, field.TypeString, value)
	}
	if _u.mutation.Sub4Cleared() {
		_spec.ClearField(conversion.FieldSub4, field.TypeString)
	}
	if value, ok := _u.mutation.Sub5(); ok {
		_spec.SetField(conversion.FieldSub5, field.TypeString, value)
	}
	if _u.mutation.Sub5Cleared() {
		_spec.ClearField(conversion.FieldSub5, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(conversion.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(conversion.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(conversion.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(conversion.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(conversion.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(conversion.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(conversion.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(conversion.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(conversion.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(conversion.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(conversion.FieldPlatform, field.TypeString, value)
	}
	if _u.mutation.PlatformCleared() {
		_spec.ClearField(conversion.FieldPlatform, field.TypeString)
	}
	if value, ok := _u.mutation.Browser(); ok {
		_spec.SetField(conversion.FieldBrowser, field.TypeString, value)
	}
	if _u.mutation.BrowserCleared() {
		_spec.ClearField(conversion.FieldBrowser, field.TypeString)
	}
	if value, ok := _u.mutation.Os(); ok {
		_spec.SetField(conversion.FieldOs, field.TypeString, value)
	}
	if _u.mutation.OsCleared() {
		_spec.ClearField(conversion.FieldOs, field.TypeString)
	}
	if value, ok := _u.mutation.OsVersion(); ok {
		_spec.SetField(conversion.FieldOsVersion, field.TypeString, value)
	}
	if _u.mutation.OsVersionCleared() {
		_spec.ClearField(conversion.FieldOsVersion, field.TypeString)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(conversion.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(conversion.FieldManufacturer, field.TypeString)
	}
	if value, ok := _u.mutation.DeviceType(); ok {
		_spec.SetField(conversion.FieldDeviceType, field.TypeString, value)
	}
	if _u.mutation.DeviceTypeCleared() {
		_spec.ClearField(conversion.FieldDeviceType, field.TypeString)
	}
	if value, ok := _u.mutation.IsTest(); ok {
		_spec.SetField(conversion.FieldIsTest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClickHash(); ok {
		_spec.SetField(conversion.FieldClickHash, field.TypeString, value)
	}
	if _u.mutation.ClickHashCleared() {
		_spec.ClearField(conversion.FieldClickHash, field.TypeString)
	}
	if value, ok := _u.mutation.AdvertiserID(); ok {
		_spec.SetField(conversion.FieldAdvertiserID, field.TypeString, value)
	}
	if _u.mutation.AdvertiserIDCleared() {
		_spec.ClearField(conversion.FieldAdvertiserID, field.TypeString)
	}
	if value, ok := _u.mutation.OfferURLID(); ok {
		_spec.SetField(conversion.FieldOfferURLID, field.TypeString, value)
	}
	if _u.mutation.OfferURLIDCleared() {
		_spec.ClearField(conversion.FieldOfferURLID, field.TypeString)
	}
	if value, ok := _u.mutation.AffiliateSource(); ok {
		_spec.SetField(conversion.FieldAffiliateSource, field.TypeString, value)
	}
	if _u.mutation.AffiliateSourceCleared() {
		_spec.ClearField(conversion.FieldAffiliateSource, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(conversion.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(conversion.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversionUpdateOne is the builder for updating a single Conversion entity.
type ConversionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversionMutation
}

// SetClickID sets the "click_id" field.
func (_u *ConversionUpdateOne) SetClickID(v string) *ConversionUpdateOne {
	_u.mutation.SetClickID(v)
	return _u
}

// SetNillableClickID sets the "click_id" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableClickID(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetClickID(*v)
	}
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *ConversionUpdateOne) SetGoalID(v string) *ConversionUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableGoalID(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetGoalType sets the "goal_type" field.
func (_u *ConversionUpdateOne) SetGoalType(v conversion.GoalType) *ConversionUpdateOne {
	_u.mutation.SetGoalType(v)
	return _u
}

// SetNillableGoalType sets the "goal_type" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableGoalType(v *conversion.GoalType) *ConversionUpdateOne {
	if v != nil {
		_u.SetGoalType(*v)
	}
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *ConversionUpdateOne) SetAffiliateID(v string) *ConversionUpdateOne {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableAffiliateID(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (_u *ConversionUpdateOne) ClearAffiliateID() *ConversionUpdateOne {
	_u.mutation.ClearAffiliateID()
	return _u
}

// SetOfferID sets the "offer_id" field.
func (_u *ConversionUpdateOne) SetOfferID(v string) *ConversionUpdateOne {
	_u.mutation.SetOfferID(v)
	return _u
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableOfferID(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetOfferID(*v)
	}
	return _u
}

// ClearOfferID clears the value of the "offer_id" field.
func (_u *ConversionUpdateOne) ClearOfferID() *ConversionUpdateOne {
	_u.mutation.ClearOfferID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *ConversionUpdateOne) SetAmount(v float64) *ConversionUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableAmount(v *float64) *ConversionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *ConversionUpdateOne) AddAmount(v float64) *ConversionUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetSaleAmount sets the "sale_amount" field.
func (_u *ConversionUpdateOne) SetSaleAmount(v float64) *ConversionUpdateOne {
	_u.mutation.ResetSaleAmount()
	_u.mutation.SetSaleAmount(v)
	return _u
}

// SetNillableSaleAmount sets the "sale_amount" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableSaleAmount(v *float64) *ConversionUpdateOne {
	if v != nil {
		_u.SetSaleAmount(*v)
	}
	return _u
}

// AddSaleAmount adds value to the "sale_amount" field.
func (_u *ConversionUpdateOne) AddSaleAmount(v float64) *ConversionUpdateOne {
	_u.mutation.AddSaleAmount(v)
	return _u
}

// ClearSaleAmount clears the value of the "sale_amount" field.
func (_u *ConversionUpdateOne) ClearSaleAmount() *ConversionUpdateOne {
	_u.mutation.ClearSaleAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversionUpdateOne) SetStatus(v conversion.Status) *ConversionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableStatus(v *conversion.Status) *ConversionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSub1 sets the "sub1" field.
func (_u *ConversionUpdateOne) SetSub1(v string) *ConversionUpdateOne {
	_u.mutation.SetSub1(v)
	return _u
}

// SetNillableSub1 sets the "sub1" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableSub1(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetSub1(*v)
	}
	return _u
}

// ClearSub1 clears the value of the "sub1" field.
func (_u *ConversionUpdateOne) ClearSub1() *ConversionUpdateOne {
	_u.mutation.ClearSub1()
	return _u
}

// SetSub2 sets the "sub2" field.
func (_u *ConversionUpdateOne) SetSub2(v string) *ConversionUpdateOne {
	_u.mutation.SetSub2(v)
	return _u
}

// SetNillableSub2 sets the "sub2" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableSub2(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetSub2(*v)
	}
	return _u
}

// ClearSub2 clears the value of the "sub2" field.
func (_u *ConversionUpdateOne) ClearSub2() *ConversionUpdateOne {
	_u.mutation.ClearSub2()
	return _u
}

// SetSub3 sets the "sub3" field.
func (_u *ConversionUpdateOne) SetSub3(v string) *ConversionUpdateOne {
	_u.mutation.SetSub3(v)
	return _u
}

// SetNillableSub3 sets the "sub3" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableSub3(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetSub3(*v)
	}
	return _u
}

// ClearSub3 clears the value of the "sub3" field.
func (_u *ConversionUpdateOne) ClearSub3() *ConversionUpdateOne {
	_u.mutation.ClearSub3()
	return _u
}

// SetSub4 sets the "sub4" field.
func (_u *ConversionUpdateOne) SetSub4(v string) *ConversionUpdateOne {
	_u.mutation.SetSub4(v)
	return _u
}

// SetNillableSub4 sets the "sub4" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableSub4(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetSub4(*v)
	}
	return _u
}

// ClearSub4 clears the value of the "sub4" field.
func (_u *ConversionUpdateOne) ClearSub4() *ConversionUpdateOne {
	_u.mutation.ClearSub4()
	return _u
}

// SetSub5 sets the "sub5" field.
func (_u *ConversionUpdateOne) SetSub5(v string) *ConversionUpdateOne {
	_u.mutation.SetSub5(v)
	return _u
}

// SetNillableSub5 sets the "sub5" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableSub5(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetSub5(*v)
	}
	return _u
}

// ClearSub5 clears the value of the "sub5" field.
func (_u *ConversionUpdateOne) ClearSub5() *ConversionUpdateOne {
	_u.mutation.ClearSub5()
	return _u
}

// SetUserAgent sets the "user_agent" field.
func (_u *ConversionUpdateOne) SetUserAgent(v string) *ConversionUpdateOne {
	_u.mutation.SetUserAgent(v)
	return _u
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableUserAgent(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetUserAgent(*v)
	}
	return _u
}

// ClearUserAgent clears the value of the "user_agent" field.
func (_u *ConversionUpdateOne) ClearUserAgent() *ConversionUpdateOne {
	_u.mutation.ClearUserAgent()
	return _u
}

// SetIPAddress sets the "ip_address" field.
func (_u *ConversionUpdateOne) SetIPAddress(v string) *ConversionUpdateOne {
	_u.mutation.SetIPAddress(v)
	return _u
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableIPAddress(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetIPAddress(*v)
	}
	return _u
}

// ClearIPAddress clears the value of the "ip_address" field.
func (_u *ConversionUpdateOne) ClearIPAddress() *ConversionUpdateOne {
	_u.mutation.ClearIPAddress()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ConversionUpdateOne) SetCountry(v string) *ConversionUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableCountry(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *ConversionUpdateOne) ClearCountry() *ConversionUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetRegion sets the "region" field.
func (_u *ConversionUpdateOne) SetRegion(v string) *ConversionUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableRegion(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *ConversionUpdateOne) ClearRegion() *ConversionUpdateOne {
	_u.mutation.ClearRegion()
	return _u
}

// SetSource sets the "source" field.
func (_u *ConversionUpdateOne) SetSource(v string) *ConversionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableSource(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *ConversionUpdateOne) ClearSource() *ConversionUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *ConversionUpdateOne) SetPlatform(v string) *ConversionUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillablePlatform(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// ClearPlatform clears the value of the "platform" field.
func (_u *ConversionUpdateOne) ClearPlatform() *ConversionUpdateOne {
	_u.mutation.ClearPlatform()
	return _u
}

// SetBrowser sets the "browser" field.
func (_u *ConversionUpdateOne) SetBrowser(v string) *ConversionUpdateOne {
	_u.mutation.SetBrowser(v)
	return _u
}

// SetNillableBrowser sets the "browser" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableBrowser(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetBrowser(*v)
	}
	return _u
}

// ClearBrowser clears the value of the "browser" field.
func (_u *ConversionUpdateOne) ClearBrowser() *ConversionUpdateOne {
	_u.mutation.ClearBrowser()
	return _u
}

// SetOs sets the "os" field.
func (_u *ConversionUpdateOne) SetOs(v string) *ConversionUpdateOne {
	_u.mutation.SetOs(v)
	return _u
}

// SetNillableOs sets the "os" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableOs(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetOs(*v)
	}
	return _u
}

// ClearOs clears the value of the "os" field.
func (_u *ConversionUpdateOne) ClearOs() *ConversionUpdateOne {
	_u.mutation.ClearOs()
	return _u
}

// SetOsVersion sets the "os_version" field.
func (_u *ConversionUpdateOne) SetOsVersion(v string) *ConversionUpdateOne {
	_u.mutation.SetOsVersion(v)
	return _u
}

// SetNillableOsVersion sets the "os_version" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableOsVersion(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetOsVersion(*v)
	}
	return _u
}

// ClearOsVersion clears the value of the "os_version" field.
func (_u *ConversionUpdateOne) ClearOsVersion() *ConversionUpdateOne {
	_u.mutation.ClearOsVersion()
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *ConversionUpdateOne) SetManufacturer(v string) *ConversionUpdateOne {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableManufacturer(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *ConversionUpdateOne) ClearManufacturer() *ConversionUpdateOne {
	_u.mutation.ClearManufacturer()
	return _u
}

// SetDeviceType sets the "device_type" field.
func (_u *ConversionUpdateOne) SetDeviceType(v string) *ConversionUpdateOne {
	_u.mutation.SetDeviceType(v)
	return _u
}

// SetNillableDeviceType sets the "device_type" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableDeviceType(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetDeviceType(*v)
	}
	return _u
}

// ClearDeviceType clears the value of the "device_type" field.
func (_u *ConversionUpdateOne) ClearDeviceType() *ConversionUpdateOne {
	_u.mutation.ClearDeviceType()
	return _u
}

// SetIsTest sets the "is_test" field.
func (_u *ConversionUpdateOne) SetIsTest(v bool) *ConversionUpdateOne {
	_u.mutation.SetIsTest(v)
	return _u
}

// SetNillableIsTest sets the "is_test" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableIsTest(v *bool) *ConversionUpdateOne {
	if v != nil {
		_u.SetIsTest(*v)
	}
	return _u
}

// SetClickHash sets the "click_hash" field.
func (_u *ConversionUpdateOne) SetClickHash(v string) *ConversionUpdateOne {
	_u.mutation.SetClickHash(v)
	return _u
}

// SetNillableClickHash sets the "click_hash" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableClickHash(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetClickHash(*v)
	}
	return _u
}

// ClearClickHash clears the value of the "click_hash" field.
func (_u *ConversionUpdateOne) ClearClickHash() *ConversionUpdateOne {
	_u.mutation.ClearClickHash()
	return _u
}

// SetAdvertiserID sets the "advertiser_id" field.
func (_u *ConversionUpdateOne) SetAdvertiserID(v string) *ConversionUpdateOne {
	_u.mutation.SetAdvertiserID(v)
	return _u
}

// SetNillableAdvertiserID sets the "advertiser_id" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableAdvertiserID(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetAdvertiserID(*v)
	}
	return _u
}

// ClearAdvertiserID clears the value of the "advertiser_id" field.
func (_u *ConversionUpdateOne) ClearAdvertiserID() *ConversionUpdateOne {
	_u.mutation.ClearAdvertiserID()
	return _u
}

// SetOfferURLID sets the "offer_url_id" field.
func (_u *ConversionUpdateOne) SetOfferURLID(v string) *ConversionUpdateOne {
	_u.mutation.SetOfferURLID(v)
	return _u
}

// SetNillableOfferURLID sets the "offer_url_id" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableOfferURLID(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetOfferURLID(*v)
	}
	return _u
}

// ClearOfferURLID clears the value of the "offer_url_id" field.
func (_u *ConversionUpdateOne) ClearOfferURLID() *ConversionUpdateOne {
	_u.mutation.ClearOfferURLID()
	return _u
}

// SetAffiliateSource sets the "affiliate_source" field.
func (_u *ConversionUpdateOne) SetAffiliateSource(v string) *ConversionUpdateOne {
	_u.mutation.SetAffiliateSource(v)
	return _u
}

// SetNillableAffiliateSource sets the "affiliate_source" field if the given value is not nil.
func (_u *ConversionUpdateOne) SetNillableAffiliateSource(v *string) *ConversionUpdateOne {
	if v != nil {
		_u.SetAffiliateSource(*v)
	}
	return _u
}

// ClearAffiliateSource clears the value of the "affiliate_source" field.
func (_u *ConversionUpdateOne) ClearAffiliateSource() *ConversionUpdateOne {
	_u.mutation.ClearAffiliateSource()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ConversionUpdateOne) SetMetadata(v map[string]interface{}) *ConversionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ConversionUpdateOne) ClearMetadata() *ConversionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversionUpdateOne) SetUpdatedAt(v time.Time) *ConversionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversionMutation object of the builder.
func (_u *ConversionUpdateOne) Mutation() *ConversionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversionUpdate builder.
func (_u *ConversionUpdateOne) Where(ps ...predicate.Conversion) *ConversionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversionUpdateOne) Select(field string, fields ...string) *ConversionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversion entity.
func (_u *ConversionUpdateOne) Save(ctx context.Context) (*Conversion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversionUpdateOne) SaveX(ctx context.Context) *Conversion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversionUpdateOne) check() error {
	if v, ok := _u.mutation.ClickID(); ok {
		if err := conversion.ClickIDValidator(v); err != nil {
			return &ValidationError{Name: "click_id", err: fmt.Errorf(`ent: validator failed for field "Conversion.click_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalID(); ok {
		if err := conversion.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "Conversion.goal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GoalType(); ok {
		if err := conversion.GoalTypeValidator(v); err != nil {
			return &ValidationError{Name: "goal_type", err: fmt.Errorf(`ent: validator failed for field "Conversion.goal_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversion.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversionUpdateOne) sqlSave(ctx context.Context) (_node *Conversion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversion.Table, conversion.Columns, sqlgraph.NewFieldSpec(conversion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversion.FieldID)
		for _, f := range fields {
			if !conversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversion.FieldID {
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
	if value, ok := _u.mutation.ClickID(); ok {
		_spec.SetField(conversion.FieldClickID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(conversion.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GoalType(); ok {
		_spec.SetField(conversion.FieldGoalType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffiliateID(); ok {
		_spec.SetField(conversion.FieldAffiliateID, field.TypeString, value)
	}
	if _u.mutation.AffiliateIDCleared() {
		_spec.ClearField(conversion.FieldAffiliateID, field.TypeString)
	}
	if value, ok := _u.mutation.OfferID(); ok {
		_spec.SetField(conversion.FieldOfferID, field.TypeString, value)
	}
	if _u.mutation.OfferIDCleared() {
		_spec.ClearField(conversion.FieldOfferID, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(conversion.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(conversion.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SaleAmount(); ok {
		_spec.SetField(conversion.FieldSaleAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSaleAmount(); ok {
		_spec.AddField(conversion.FieldSaleAmount, field.TypeFloat64, value)
	}
	if _u.mutation.SaleAmountCleared() {
		_spec.ClearField(conversion.FieldSaleAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sub1(); ok {
		_spec.SetField(conversion.FieldSub1, field.TypeString, value)
	}
	if _u.mutation.Sub1Cleared() {
		_spec.ClearField(conversion.FieldSub1, field.TypeString)
	}
	if value, ok := _u.mutation.Sub2(); ok {
		_spec.SetField(conversion.FieldSub2, field.TypeString, value)
	}
	if _u.mutation.Sub2Cleared() {
		_spec.ClearField(conversion.FieldSub2, field.TypeString)
	}
	if value, ok := _u.mutation.Sub3(); ok {
		_spec.SetField(conversion.FieldSub3, field.TypeString, value)
	}
	if _u.mutation.Sub3Cleared() {
		_spec.ClearField(conversion.FieldSub3, field.TypeString)
	}
	if value, ok := _u.mutation.Sub4(); ok {
		_spec.SetField(conversion.FieldSub4, field.TypeString, value)
	}
	if _u.mutation.Sub4Cleared() {
		_spec.ClearField(conversion.FieldSub4, field.TypeString)
	}
	if value, ok := _u.mutation.Sub5(); ok {
		_spec.SetField(conversion.FieldSub5, field.TypeString, value)
	}
	if _u.mutation.Sub5Cleared() {
		_spec.ClearField(conversion.FieldSub5, field.TypeString)
	}
	if value, ok := _u.mutation.UserAgent(); ok {
		_spec.SetField(conversion.FieldUserAgent, field.TypeString, value)
	}
	if _u.mutation.UserAgentCleared() {
		_spec.ClearField(conversion.FieldUserAgent, field.TypeString)
	}
	if value, ok := _u.mutation.IPAddress(); ok {
		_spec.SetField(conversion.FieldIPAddress, field.TypeString, value)
	}
	if _u.mutation.IPAddressCleared() {
		_spec.ClearField(conversion.FieldIPAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(conversion.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(conversion.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(conversion.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(conversion.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(conversion.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(conversion.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(conversion.FieldPlatform, field.TypeString, value)
	}
	if _u.mutation.PlatformCleared() {
		_spec.ClearField(conversion.FieldPlatform, field.TypeString)
	}
	if value, ok := _u.mutation.Browser(); ok {
		_spec.SetField(conversion.FieldBrowser, field.TypeString, value)
	}
	if _u.mutation.BrowserCleared() {
		_spec.ClearField(conversion.FieldBrowser, field.TypeString)
	}
	if value, ok := _u.mutation.Os(); ok {
		_spec.SetField(conversion.FieldOs, field.TypeString, value)
	}
	if _u.mutation.OsCleared() {
		_spec.ClearField(conversion.FieldOs, field.TypeString)
	}
	if value, ok := _u.mutation.OsVersion(); ok {
		_spec.SetField(conversion.FieldOsVersion, field.TypeString, value)
	}
	if _u.mutation.OsVersionCleared() {
		_spec.ClearField(conversion.FieldOsVersion, field.TypeString)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(conversion.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(conversion.FieldManufacturer, field.TypeString)
	}
	if value, ok := _u.mutation.DeviceType(); ok {
		_spec.SetField(conversion.FieldDeviceType, field.TypeString, value)
	}
	if _u.mutation.DeviceTypeCleared() {
		_spec.ClearField(conversion.FieldDeviceType, field.TypeString)
	}
	if value, ok := _u.mutation.IsTest(); ok {
		_spec.SetField(conversion.FieldIsTest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClickHash(); ok {
		_spec.SetField(conversion.FieldClickHash, field.TypeString, value)
	}
	if _u.mutation.ClickHashCleared() {
		_spec.ClearField(conversion.FieldClickHash, field.TypeString)
	}
	if value, ok := _u.mutation.AdvertiserID(); ok {
		_spec.SetField(conversion.FieldAdvertiserID, field.TypeString, value)
	}
	if _u.mutation.AdvertiserIDCleared() {
		_spec.ClearField(conversion.FieldAdvertiserID, field.TypeString)
	}
	if value, ok := _u.mutation.OfferURLID(); ok {
		_spec.SetField(conversion.FieldOfferURLID, field.TypeString, value)
	}
	if _u.mutation.OfferURLIDCleared() {
		_spec.ClearField(conversion.FieldOfferURLID, field.TypeString)
	}
	if value, ok := _u.mutation.AffiliateSource(); ok {
		_spec.SetField(conversion.FieldAffiliateSource, field.TypeString, value)
	}
	if _u.mutation.AffiliateSourceCleared() {
		_spec.ClearField(conversion.FieldAffiliateSource, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(conversion.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(conversion.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversion.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Conversion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
