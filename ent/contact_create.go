// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/barracuda-partners/backend/ent/contact"
)

// ContactCreate is the builder for creating a Contact entity.
type ContactCreate struct {
	config
	mutation *ContactMutation
	hooks    []Hook
}

// SetEmail sets the "email" field.
func (_c *ContactCreate) SetEmail(v string) *ContactCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ContactCreate) SetName(v string) *ContactCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *ContactCreate) SetNillableName(v *string) *ContactCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *ContactCreate) SetCompany(v string) *ContactCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCompany(v *string) *ContactCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *ContactCreate) SetType(v contact.Type) *ContactCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ContactCreate) SetStatus(v contact.Status) *ContactCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ContactCreate) SetNillableStatus(v *contact.Status) *ContactCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAffiliateStatus sets the "affiliate_status" field.
func (_c *ContactCreate) SetAffiliateStatus(v contact.AffiliateStatus) *ContactCreate {
	_c.mutation.SetAffiliateStatus(v)
	return _c
}

// SetNillableAffiliateStatus sets the "affiliate_status" field if the given value is not nil.
func (_c *ContactCreate) SetNillableAffiliateStatus(v *contact.AffiliateStatus) *ContactCreate {
	if v != nil {
		_c.SetAffiliateStatus(*v)
	}
	return _c
}

// SetMessenger sets the "messenger" field.
func (_c *ContactCreate) SetMessenger(v string) *ContactCreate {
	_c.mutation.SetMessenger(v)
	return _c
}

// SetNillableMessenger sets the "messenger" field if the given value is not nil.
func (_c *ContactCreate) SetNillableMessenger(v *string) *ContactCreate {
	if v != nil {
		_c.SetMessenger(*v)
	}
	return _c
}

// SetUsername sets the "username" field.
func (_c *ContactCreate) SetUsername(v string) *ContactCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *ContactCreate) SetNillableUsername(v *string) *ContactCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *ContactCreate) SetMessage(v string) *ContactCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *ContactCreate) SetNillableMessage(v *string) *ContactCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ContactCreate) SetNotes(v string) *ContactCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ContactCreate) SetNillableNotes(v *string) *ContactCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetAffiliateID sets the "affiliate_id" field.
func (_c *ContactCreate) SetAffiliateID(v string) *ContactCreate {
	_c.mutation.SetAffiliateID(v)
	return _c
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_c *ContactCreate) SetNillableAffiliateID(v *string) *ContactCreate {
	if v != nil {
		_c.SetAffiliateID(*v)
	}
	return _c
}

// SetURLID sets the "url_id" field.
func (_c *ContactCreate) SetURLID(v string) *ContactCreate {
	_c.mutation.SetURLID(v)
	return _c
}

// SetNillableURLID sets the "url_id" field if the given value is not nil.
func (_c *ContactCreate) SetNillableURLID(v *string) *ContactCreate {
	if v != nil {
		_c.SetURLID(*v)
	}
	return _c
}

// SetSub1 sets the "sub1" field.
func (_c *ContactCreate) SetSub1(v string) *ContactCreate {
	_c.mutation.SetSub1(v)
	return _c
}

// SetNillableSub1 sets the "sub1" field if the given value is not nil.
func (_c *ContactCreate) SetNillableSub1(v *string) *ContactCreate {
	if v != nil {
		_c.SetSub1(*v)
	}
	return _c
}

// SetSub2 sets the "sub2" field.
func (_c *ContactCreate) SetSub2(v string) *ContactCreate {
	_c.mutation.SetSub2(v)
	return _c
}

// SetNillableSub2 sets the "sub2" field if the given value is not nil.
func (_c *ContactCreate) SetNillableSub2(v *string) *ContactCreate {
	if v != nil {
		_c.SetSub2(*v)
	}
	return _c
}

// SetSub3 sets the "sub3" field.
func (_c *ContactCreate) SetSub3(v string) *ContactCreate {
	_c.mutation.SetSub3(v)
	return _c
}

// SetNillableSub3 sets the "sub3" field if the given value is not nil.
func (_c *ContactCreate) SetNillableSub3(v *string) *ContactCreate {
	if v != nil {
		_c.SetSub3(*v)
	}
	return _c
}

// SetCampaignID sets the "campaign_id" field.
func (_c *ContactCreate) SetCampaignID(v string) *ContactCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCampaignID(v *string) *ContactCreate {
	if v != nil {
		_c.SetCampaignID(*v)
	}
	return _c
}

// SetTrackingSource sets the "tracking_source" field.
func (_c *ContactCreate) SetTrackingSource(v string) *ContactCreate {
	_c.mutation.SetTrackingSource(v)
	return _c
}

// SetNillableTrackingSource sets the "tracking_source" field if the given value is not nil.
func (_c *ContactCreate) SetNillableTrackingSource(v *string) *ContactCreate {
	if v != nil {
		_c.SetTrackingSource(*v)
	}
	return _c
}

// SetTrackingLink sets the "tracking_link" field.
func (_c *ContactCreate) SetTrackingLink(v string) *ContactCreate {
	_c.mutation.SetTrackingLink(v)
	return _c
}

// SetNillableTrackingLink sets the "tracking_link" field if the given value is not nil.
func (_c *ContactCreate) SetNillableTrackingLink(v *string) *ContactCreate {
	if v != nil {
		_c.SetTrackingLink(*v)
	}
	return _c
}

// SetAffiliateRegistered sets the "affiliate_registered" field.
func (_c *ContactCreate) SetAffiliateRegistered(v bool) *ContactCreate {
	_c.mutation.SetAffiliateRegistered(v)
	return _c
}

// SetNillableAffiliateRegistered sets the "affiliate_registered" field if the given value is not nil.
func (_c *ContactCreate) SetNillableAffiliateRegistered(v *bool) *ContactCreate {
	if v != nil {
		_c.SetAffiliateRegistered(*v)
	}
	return _c
}

// SetAffiliateError sets the "affiliate_error" field.
func (_c *ContactCreate) SetAffiliateError(v string) *ContactCreate {
	_c.mutation.SetAffiliateError(v)
	return _c
}

// SetNillableAffiliateError sets the "affiliate_error" field if the given value is not nil.
func (_c *ContactCreate) SetNillableAffiliateError(v *string) *ContactCreate {
	if v != nil {
		_c.SetAffiliateError(*v)
	}
	return _c
}

// SetFtd sets the "ftd" field.
func (_c *ContactCreate) SetFtd(v bool) *ContactCreate {
	_c.mutation.SetFtd(v)
	return _c
}

// SetNillableFtd sets the "ftd" field if the given value is not nil.
func (_c *ContactCreate) SetNillableFtd(v *bool) *ContactCreate {
	if v != nil {
		_c.SetFtd(*v)
	}
	return _c
}

// SetFtdAmount sets the "ftd_amount" field.
func (_c *ContactCreate) SetFtdAmount(v float64) *ContactCreate {
	_c.mutation.SetFtdAmount(v)
	return _c
}

// SetNillableFtdAmount sets the "ftd_amount" field if the given value is not nil.
func (_c *ContactCreate) SetNillableFtdAmount(v *float64) *ContactCreate {
	if v != nil {
		_c.SetFtdAmount(*v)
	}
	return _c
}

// SetFtdDate sets the "ftd_date" field.
func (_c *ContactCreate) SetFtdDate(v time.Time) *ContactCreate {
	_c.mutation.SetFtdDate(v)
	return _c
}

// SetNillableFtdDate sets the "ftd_date" field if the given value is not nil.
func (_c *ContactCreate) SetNillableFtdDate(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetFtdDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContactCreate) SetCreatedAt(v time.Time) *ContactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCreatedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContactCreate) SetUpdatedAt(v time.Time) *ContactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableUpdatedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ContactMutation object of the builder.
func (_c *ContactCreate) Mutation() *ContactMutation {
	return _c.mutation
}

// Save creates the Contact in the database.
func (_c *ContactCreate) Save(ctx context.Context) (*Contact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContactCreate) SaveX(ctx context.Context) *Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContactCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := contact.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AffiliateStatus(); !ok {
		v := contact.DefaultAffiliateStatus
		_c.mutation.SetAffiliateStatus(v)
	}
	if _, ok := _c.mutation.AffiliateRegistered(); !ok {
		v := contact.DefaultAffiliateRegistered
		_c.mutation.SetAffiliateRegistered(v)
	}
	if _, ok := _c.mutation.Ftd(); !ok {
		v := contact.DefaultFtd
		_c.mutation.SetFtd(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContactCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Contact.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := contact.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Contact.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Contact.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := contact.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Contact.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Contact.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := contact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contact.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AffiliateStatus(); !ok {
		return &ValidationError{Name: "affiliate_status", err: errors.New(`ent: missing required field "Contact.affiliate_status"`)}
	}
	if v, ok := _c.mutation.AffiliateStatus(); ok {
		if err := contact.AffiliateStatusValidator(v); err != nil {
			return &ValidationError{Name: "affiliate_status", err: fmt.Errorf(`ent: validator failed for field "Contact.affiliate_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AffiliateRegistered(); !ok {
		return &ValidationError{Name: "affiliate_registered", err: errors.New(`ent: missing required field "Contact.affiliate_registered"`)}
	}
	if _, ok := _c.mutation.Ftd(); !ok {
		return &ValidationError{Name: "ftd", err: errors.New(`ent: missing required field "Contact.ftd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contact.updated_at"`)}
	}
	return nil
}

func (_c *ContactCreate) sqlSave(ctx context.Context) (*Contact, error) {
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

func (_c *ContactCreate) createSpec() (*Contact, *sqlgraph.CreateSpec) {
	var (
		_node = &Contact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contact.Table, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(contact.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(contact.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AffiliateStatus(); ok {
		_spec.SetField(contact.FieldAffiliateStatus, field.TypeEnum, value)
		_node.AffiliateStatus = value
	}
	if value, ok := _c.mutation.Messenger(); ok {
		_spec.SetField(contact.FieldMessenger, field.TypeString, value)
		_node.Messenger = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(contact.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(contact.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(contact.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.AffiliateID(); ok {
		_spec.SetField(contact.FieldAffiliateID, field.TypeString, value)
		_node.AffiliateID = value
	}
	if value, ok := _c.mutation.URLID(); ok {
		_spec.SetField(contact.FieldURLID, field.TypeString, value)
		_node.URLID = value
	}
	if value, ok := _c.mutation.Sub1(); ok {
		_spec.SetField(contact.FieldSub1, field.TypeString, value)
		_node.Sub1 = value
	}
	if value, ok := _c.mutation.Sub2(); ok {
		_spec.SetField(contact.FieldSub2, field.TypeString, value)
		_node.Sub2 = value
	}
	if value, ok := _c.mutation.Sub3(); ok {
		_spec.SetField(contact.FieldSub3, field.TypeString, value)
		_node.Sub3 = value
	}
	if value, ok := _c.mutation.CampaignID(); ok {
		_spec.SetField(contact.FieldCampaignID, field.TypeString, value)
		_node.CampaignID = value
	}
	if value, ok := _c.mutation.TrackingSource(); ok {
		_spec.SetField(contact.FieldTrackingSource, field.TypeString, value)
		_node.TrackingSource = value
	}
	if value, ok := _c.mutation.TrackingLink(); ok {
		_spec.SetField(contact.FieldTrackingLink, field.TypeString, value)
		_node.TrackingLink = value
	}
	if value, ok := _c.mutation.AffiliateRegistered(); ok {
		_spec.SetField(contact.FieldAffiliateRegistered, field.TypeBool, value)
		_node.AffiliateRegistered = value
	}
	if value, ok := _c.mutation.AffiliateError(); ok {
		_spec.SetField(contact.FieldAffiliateError, field.TypeString, value)
		_node.AffiliateError = value
	}
	if value, ok := _c.mutation.Ftd(); ok {
		_spec.SetField(contact.FieldFtd, field.TypeBool, value)
		_node.Ftd = value
	}
	if value, ok := _c.mutation.FtdAmount(); ok {
		_spec.SetField(contact.FieldFtdAmount, field.TypeFloat64, value)
		_node.FtdAmount = value
	}
	if value, ok := _c.mutation.FtdDate(); ok {
		_spec.SetField(contact.FieldFtdDate, field.TypeTime, value)
		_node.FtdDate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ContactCreateBulk is the builder for creating many Contact entities in bulk.
type ContactCreateBulk struct {
	config
	err      error
	builders []*ContactCreate
}

// Save creates the Contact entities in the database.
func (_c *ContactCreateBulk) Save(ctx context.Context) ([]*Contact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContactMutation)
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
func (_c *ContactCreateBulk) SaveX(ctx context.Context) []*Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
