// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/barracuda-partners/backend/ent/conversion"
)

// ConversionCreate is the builder for creating a Conversion entity.
type ConversionCreate struct {
	config
	mutation *ConversionMutation
	hooks    []Hook
}

// SetClickID sets the "click_id" field.
func (_c *ConversionCreate) SetClickID(v string) *ConversionCreate {
	_c.mutation.SetClickID(v)
	return _c
}

// SetGoalID sets the "goal_id" field.
func (_c *ConversionCreate) SetGoalID(v string) *ConversionCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetGoalType sets the "goal_type" field.
func (_c *ConversionCreate) SetGoalType(v conversion.GoalType) *ConversionCreate {
	_c.mutation.SetGoalType(v)
	return _c
}

// SetAffiliateID sets the "affiliate_id" field.
func (_c *ConversionCreate) SetAffiliateID(v string) *ConversionCreate {
	_c.mutation.SetAffiliateID(v)
	return _c
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableAffiliateID(v *string) *ConversionCreate {
	if v != nil {
		_c.SetAffiliateID(*v)
	}
	return _c
}

// SetOfferID sets the "offer_id" field.
func (_c *ConversionCreate) SetOfferID(v string) *ConversionCreate {
	_c.mutation.SetOfferID(v)
	return _c
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableOfferID(v *string) *ConversionCreate {
	if v != nil {
		_c.SetOfferID(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *ConversionCreate) SetAmount(v float64) *ConversionCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableAmount(v *float64) *ConversionCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetSaleAmount sets the "sale_amount" field.
func (_c *ConversionCreate) SetSaleAmount(v float64) *ConversionCreate {
	_c.mutation.SetSaleAmount(v)
	return _c
}

// SetNillableSaleAmount sets the "sale_amount" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableSaleAmount(v *float64) *ConversionCreate {
	if v != nil {
		_c.SetSaleAmount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConversionCreate) SetStatus(v conversion.Status) *ConversionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableStatus(v *conversion.Status) *ConversionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSub1 sets the "sub1" field.
func (_c *ConversionCreate) SetSub1(v string) *ConversionCreate {
	_c.mutation.SetSub1(v)
	return _c
}

// SetNillableSub1 sets the "sub1" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableSub1(v *string) *ConversionCreate {
	if v != nil {
		_c.SetSub1(*v)
	}
	return _c
}

// SetSub2 sets the "sub2" field.
func (_c *ConversionCreate) SetSub2(v string) *ConversionCreate {
	_c.mutation.SetSub2(v)
	return _c
}

// SetNillableSub2 sets the "sub2" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableSub2(v *string) *ConversionCreate {
	if v != nil {
		_c.SetSub2(*v)
	}
	return _c
}

// SetSub3 sets the "sub3" field.
func (_c *ConversionCreate) SetSub3(v string) *ConversionCreate {
	_c.mutation.SetSub3(v)
	return _c
}

// SetNillableSub3 sets the "sub3" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableSub3(v *string) *ConversionCreate {
	if v != nil {
		_c.SetSub3(*v)
	}
	return _c
}

// SetSub4 sets the "sub4" field.
func (_c *ConversionCreate) SetSub4(v string) *ConversionCreate {
	_c.mutation.SetSub4(v)
	return _c
}

// SetNillableSub4 sets the "sub4" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableSub4(v *string) *ConversionCreate {
	if v != nil {
		_c.SetSub4(*v)
	}
	return _c
}

// SetSub5 sets the "sub5" field.
func (_c *ConversionCreate) SetSub5(v string) *ConversionCreate {
	_c.mutation.SetSub5(v)
	return _c
}

// SetNillableSub5 sets the "sub5" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableSub5(v *string) *ConversionCreate {
	if v != nil {
		_c.SetSub5(*v)
	}
	return _c
}

// SetUserAgent sets the "user_agent" field.
func (_c *ConversionCreate) SetUserAgent(v string) *ConversionCreate {
	_c.mutation.SetUserAgent(v)
	return _c
}

// SetNillableUserAgent sets the "user_agent" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableUserAgent(v *string) *ConversionCreate {
	if v != nil {
		_c.SetUserAgent(*v)
	}
	return _c
}

// SetIPAddress sets the "ip_address" field.
func (_c *ConversionCreate) SetIPAddress(v string) *ConversionCreate {
	_c.mutation.SetIPAddress(v)
	return _c
}

// SetNillableIPAddress sets the "ip_address" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableIPAddress(v *string) *ConversionCreate {
	if v != nil {
		_c.SetIPAddress(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *ConversionCreate) SetCountry(v string) *ConversionCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableCountry(v *string) *ConversionCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *ConversionCreate) SetRegion(v string) *ConversionCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableRegion(v *string) *ConversionCreate {
	if v != nil {
		_c.SetRegion(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ConversionCreate) SetSource(v string) *ConversionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableSource(v *string) *ConversionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *ConversionCreate) SetPlatform(v string) *ConversionCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_c *ConversionCreate) SetNillablePlatform(v *string) *ConversionCreate {
	if v != nil {
		_c.SetPlatform(*v)
	}
	return _c
}

// SetBrowser sets the "browser" field.
func (_c *ConversionCreate) SetBrowser(v string) *ConversionCreate {
	_c.mutation.SetBrowser(v)
	return _c
}

// SetNillableBrowser sets the "browser" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableBrowser(v *string) *ConversionCreate {
	if v != nil {
		_c.SetBrowser(*v)
	}
	return _c
}

// SetOs sets the "os" field.
func (_c *ConversionCreate) SetOs(v string) *ConversionCreate {
	_c.mutation.SetOs(v)
	return _c
}

// SetNillableOs sets the "os" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableOs(v *string) *ConversionCreate {
	if v != nil {
		_c.SetOs(*v)
	}
	return _c
}

// SetOsVersion sets the "os_version" field.
func (_c *ConversionCreate) SetOsVersion(v string) *ConversionCreate {
	_c.mutation.SetOsVersion(v)
	return _c
}

// SetNillableOsVersion sets the "os_version" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableOsVersion(v *string) *ConversionCreate {
	if v != nil {
		_c.SetOsVersion(*v)
	}
	return _c
}

// SetManufacturer sets the "manufacturer" field.
func (_c *ConversionCreate) SetManufacturer(v string) *ConversionCreate {
	_c.mutation.SetManufacturer(v)
	return _c
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableManufacturer(v *string) *ConversionCreate {
	if v != nil {
		_c.SetManufacturer(*v)
	}
	return _c
}

// SetDeviceType sets the "device_type" field.
func (_c *ConversionCreate) SetDeviceType(v string) *ConversionCreate {
	_c.mutation.SetDeviceType(v)
	return _c
}

// SetNillableDeviceType sets the "device_type" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableDeviceType(v *string) *ConversionCreate {
	if v != nil {
		_c.SetDeviceType(*v)
	}
	return _c
}

// SetIsTest sets the "is_test" field.
func (_c *ConversionCreate) SetIsTest(v bool) *ConversionCreate {
	_c.mutation.SetIsTest(v)
	return _c
}

// SetNillableIsTest sets the "is_test" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableIsTest(v *bool) *ConversionCreate {
	if v != nil {
		_c.SetIsTest(*v)
	}
	return _c
}

// SetClickHash sets the "click_hash" field.
func (_c *ConversionCreate) SetClickHash(v string) *ConversionCreate {
	_c.mutation.SetClickHash(v)
	return _c
}

// SetNillableClickHash sets the "click_hash" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableClickHash(v *string) *ConversionCreate {
	if v != nil {
		_c.SetClickHash(*v)
	}
	return _c
}

// SetAdvertiserID sets the "advertiser_id" field.
func (_c *ConversionCreate) SetAdvertiserID(v string) *ConversionCreate {
	_c.mutation.SetAdvertiserID(v)
	return _c
}

// SetNillableAdvertiserID sets the "advertiser_id" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableAdvertiserID(v *string) *ConversionCreate {
	if v != nil {
		_c.SetAdvertiserID(*v)
	}
	return _c
}

// SetOfferURLID sets the "offer_url_id" field.
func (_c *ConversionCreate) SetOfferURLID(v string) *ConversionCreate {
	_c.mutation.SetOfferURLID(v)
	return _c
}

// SetNillableOfferURLID sets the "offer_url_id" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableOfferURLID(v *string) *ConversionCreate {
	if v != nil {
		_c.SetOfferURLID(*v)
	}
	return _c
}

// SetAffiliateSource sets the "affiliate_source" field.
func (_c *ConversionCreate) SetAffiliateSource(v string) *ConversionCreate {
	_c.mutation.SetAffiliateSource(v)
	return _c
}

// SetNillableAffiliateSource sets the "affiliate_source" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableAffiliateSource(v *string) *ConversionCreate {
	if v != nil {
		_c.SetAffiliateSource(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ConversionCreate) SetMetadata(v map[string]interface{}) *ConversionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversionCreate) SetCreatedAt(v time.Time) *ConversionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableCreatedAt(v *time.Time) *ConversionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversionCreate) SetUpdatedAt(v time.Time) *ConversionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversionCreate) SetNillableUpdatedAt(v *time.Time) *ConversionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ConversionMutation object of the builder.
func (_c *ConversionCreate) Mutation() *ConversionMutation {
	return _c.mutation
}

// Save creates the Conversion in the database.
func (_c *ConversionCreate) Save(ctx context.Context) (*Conversion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversionCreate) SaveX(ctx context.Context) *Conversion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversionCreate) defaults() {
	if _, ok := _c.mutation.Amount(); !ok {
		v := conversion.DefaultAmount
		_c.mutation.SetAmount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := conversion.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsTest(); !ok {
		v := conversion.DefaultIsTest
		_c.mutation.SetIsTest(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversionCreate) check() error {
	if _, ok := _c.mutation.ClickID(); !ok {
		return &ValidationError{Name: "click_id", err: errors.New(`ent: missing required field "Conversion.click_id"`)}
	}
	if v, ok := _c.mutation.ClickID(); ok {
		if err := conversion.ClickIDValidator(v); err != nil {
			return &ValidationError{Name: "click_id", err: fmt.Errorf(`ent: validator failed for field "Conversion.click_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "Conversion.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := conversion.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "Conversion.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GoalType(); !ok {
		return &ValidationError{Name: "goal_type", err: errors.New(`ent: missing required field "Conversion.goal_type"`)}
	}
	if v, ok := _c.mutation.GoalType(); ok {
		if err := conversion.GoalTypeValidator(v); err != nil {
			return &ValidationError{Name: "goal_type", err: fmt.Errorf(`ent: validator failed for field "Conversion.goal_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Conversion.amount"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Conversion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := conversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversion.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsTest(); !ok {
		return &ValidationError{Name: "is_test", err: errors.New(`ent: missing required field "Conversion.is_test"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Conversion.updated_at"`)}
	}
	return nil
}

func (_c *ConversionCreate) sqlSave(ctx context.Context) (*Conversion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversionCreate) createSpec() (*Conversion, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversion.Table, sqlgraph.NewFieldSpec(conversion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClickID(); ok {
		_spec.SetField(conversion.FieldClickID, field.TypeString, value)
		_node.ClickID = value
	}
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(conversion.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.GoalType(); ok {
		_spec.SetField(conversion.FieldGoalType, field.TypeEnum, value)
		_node.GoalType = value
	}
	if value, ok := _c.mutation.AffiliateID(); ok {
		_spec.SetField(conversion.FieldAffiliateID, field.TypeString, value)
		_node.AffiliateID = value
	}
	if value, ok := _c.mutation.OfferID(); ok {
		_spec.SetField(conversion.FieldOfferID, field.TypeString, value)
		_node.OfferID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(conversion.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.SaleAmount(); ok {
		_spec.SetField(conversion.FieldSaleAmount, field.TypeFloat64, value)
		_node.SaleAmount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(conversion.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Sub1(); ok {
		_spec.SetField(conversion.FieldSub1, field.TypeString, value)
		_node.Sub1 = value
	}
	if value, ok := _c.mutation.Sub2(); ok {
		_spec.SetField(conversion.FieldSub2, field.TypeString, value)
		_node.Sub2 = value
	}
	if value, ok := _c.mutation.Sub3(); ok {
		_spec.SetField(conversion.FieldSub3, field.TypeString, value)
		_node.Sub3 = value
	}
	if value, ok := _c.mutation.Sub4(); ok {
		_spec.SetField(conversion.FieldSub4, field.TypeString, value)
		_node.Sub4 = value
	}
	if value, ok := _c.mutation.Sub5(); ok {
		_spec.SetField(conversion.FieldSub5, field.TypeString, value)
		_node.Sub5 = value
	}
	if value, ok := _c.mutation.UserAgent(); ok {
		_spec.SetField(conversion.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if value, ok := _c.mutation.IPAddress(); ok {
		_spec.SetField(conversion.FieldIPAddress, field.TypeString, value)
		_node.IPAddress = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(conversion.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(conversion.FieldRegion, field.TypeString, value)
		_node.Region = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(conversion.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(conversion.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Browser(); ok {
		_spec.SetField(conversion.FieldBrowser, field.TypeString, value)
		_node.Browser = value
	}
	if value, ok := _c.mutation.Os(); ok {
		_spec.SetField(conversion.FieldOs, field.TypeString, value)
		_node.Os = value
	}
	if value, ok := _c.mutation.OsVersion(); ok {
		_spec.SetField(conversion.FieldOsVersion, field.TypeString, value)
		_node.OsVersion = value
	}
	if value, ok := _c.mutation.Manufacturer(); ok {
		_spec.SetField(conversion.FieldManufacturer, field.TypeString, value)
		_node.Manufacturer = value
	}
	if value, ok := _c.mutation.DeviceType(); ok {
		_spec.SetField(conversion.FieldDeviceType, field.TypeString, value)
		_node.DeviceType = value
	}
	if value, ok := _c.mutation.IsTest(); ok {
		_spec.SetField(conversion.FieldIsTest, field.TypeBool, value)
		_node.IsTest = value
	}
	if value, ok := _c.mutation.ClickHash(); ok {
		_spec.SetField(conversion.FieldClickHash, field.TypeString, value)
		_node.ClickHash = value
	}
	if value, ok := _c.mutation.AdvertiserID(); ok {
		_spec.SetField(conversion.FieldAdvertiserID, field.TypeString, value)
		_node.AdvertiserID = value
	}
	if value, ok := _c.mutation.OfferURLID(); ok {
		_spec.SetField(conversion.FieldOfferURLID, field.TypeString, value)
		_node.OfferURLID = value
	}
	if value, ok := _c.mutation.AffiliateSource(); ok {
		_spec.SetField(conversion.FieldAffiliateSource, field.TypeString, value)
		_node.AffiliateSource = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(conversion.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ConversionCreateBulk is the builder for creating many Conversion entities in bulk.
type ConversionCreateBulk struct {
	config
	err      error
	builders []*ConversionCreate
}

// Save creates the Conversion entities in the database.
func (_c *ConversionCreateBulk) Save(ctx context.Context) ([]*Conversion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ConversionCreateBulk) SaveX(ctx context.Context) []*Conversion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
