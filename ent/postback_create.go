// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/barracuda-partners/backend/ent/postback"
)

// PostbackCreate is the builder for creating a Postback entity.
type PostbackCreate struct {
	config
	mutation *PostbackMutation
	hooks    []Hook
}

// SetClickID sets the "click_id" field.
func (_c *PostbackCreate) SetClickID(v string) *PostbackCreate {
	_c.mutation.SetClickID(v)
	return _c
}

// SetGoal sets the "goal" field.
func (_c *PostbackCreate) SetGoal(v postback.Goal) *PostbackCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetAffiliateID sets the "affiliate_id" field.
func (_c *PostbackCreate) SetAffiliateID(v string) *PostbackCreate {
	_c.mutation.SetAffiliateID(v)
	return _c
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_c *PostbackCreate) SetNillableAffiliateID(v *string) *PostbackCreate {
	if v != nil {
		_c.SetAffiliateID(*v)
	}
	return _c
}

// SetOfferID sets the "offer_id" field.
func (_c *PostbackCreate) SetOfferID(v string) *PostbackCreate {
	_c.mutation.SetOfferID(v)
	return _c
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_c *PostbackCreate) SetNillableOfferID(v *string) *PostbackCreate {
	if v != nil {
		_c.SetOfferID(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PostbackCreate) SetAmount(v float64) *PostbackCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *PostbackCreate) SetNillableAmount(v *float64) *PostbackCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetSaleAmount sets the "sale_amount" field.
func (_c *PostbackCreate) SetSaleAmount(v float64) *PostbackCreate {
	_c.mutation.SetSaleAmount(v)
	return _c
}

// SetNillableSaleAmount sets the "sale_amount" field if the given value is not nil.
func (_c *PostbackCreate) SetNillableSaleAmount(v *float64) *PostbackCreate {
	if v != nil {
		_c.SetSaleAmount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PostbackCreate) SetStatus(v string) *PostbackCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PostbackCreate) SetNillableStatus(v *string) *PostbackCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSub1 sets the "sub1" field.
func (_c *PostbackCreate) SetSub1(v string) *PostbackCreate {
	_c.mutation.SetSub1(v)
	return _c
}

// SetNillableSub1 sets the "sub1" field if the given value is not nil.
func (_c *PostbackCreate) SetNillableSub1(v *string) *PostbackCreate {
	if v != nil {
		_c.SetSub1(*v)
	}
	return _c
}

// SetSub2 sets the "sub2" field.
func (_c *PostbackCreate) SetSub2(v string) *PostbackCreate {
	_c.mutation.SetSub2(v)
	return _c
}

// SetNillableSub2 sets the "sub2" field if the given value is not nil.
func (_c *PostbackCreate) SetNillableSub2(v *string) *PostbackCreate {
	if v != nil {
		_c.SetSub2(*v)
	}
	return _c
}

// SetSub3 sets the "sub3" field.
func (_c *PostbackCreate) SetSub3(v string) *PostbackCreate {
	_c.mutation.SetSub3(v)
	return _c
}

// SetNillableSub3 sets the "sub3" field if the given value is not nil.
func (_c *PostbackCreate) SetNillableSub3(v *string) *PostbackCreate {
	if v != nil {
		_c.SetSub3(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PostbackCreate) SetCreatedAt(v time.Time) *PostbackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PostbackCreate) SetNillableCreatedAt(v *time.Time) *PostbackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PostbackMutation object of the builder.
func (_c *PostbackCreate) Mutation() *PostbackMutation {
	return _c.mutation
}

// Save creates the Postback in the database.
func (_c *PostbackCreate) Save(ctx context.Context) (*Postback, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PostbackCreate) SaveX(ctx context.Context) *Postback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostbackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostbackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PostbackCreate) defaults() {
	if _, ok := _c.mutation.Amount(); !ok {
		v := postback.DefaultAmount
		_c.mutation.SetAmount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := postback.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := postback.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PostbackCreate) check() error {
	if _, ok := _c.mutation.ClickID(); !ok {
		return &ValidationError{Name: "click_id", err: errors.New(`ent: missing required field "Postback.click_id"`)}
	}
	if v, ok := _c.mutation.ClickID(); ok {
		if err := postback.ClickIDValidator(v); err != nil {
			return &ValidationError{Name: "click_id", err: fmt.Errorf(`ent: validator failed for field "Postback.click_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "Postback.goal"`)}
	}
	if v, ok := _c.mutation.Goal(); ok {
		if err := postback.GoalValidator(v); err != nil {
			return &ValidationError{Name: "goal", err: fmt.Errorf(`ent: validator failed for field "Postback.goal": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Postback.amount"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Postback.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Postback.created_at"`)}
	}
	return nil
}

func (_c *PostbackCreate) sqlSave(ctx context.Context) (*Postback, error) {
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

func (_c *PostbackCreate) createSpec() (*Postback, *sqlgraph.CreateSpec) {
	var (
		_node = &Postback{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(postback.Table, sqlgraph.NewFieldSpec(postback.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClickID(); ok {
		_spec.SetField(postback.FieldClickID, field.TypeString, value)
		_node.ClickID = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(postback.FieldGoal, field.TypeEnum, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.AffiliateID(); ok {
		_spec.SetField(postback.FieldAffiliateID, field.TypeString, value)
		_node.AffiliateID = value
	}
	if value, ok := _c.mutation.OfferID(); ok {
		_spec.SetField(postback.FieldOfferID, field.TypeString, value)
		_node.OfferID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(postback.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.SaleAmount(); ok {
		_spec.SetField(postback.FieldSaleAmount, field.TypeFloat64, value)
		_node.SaleAmount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(postback.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Sub1(); ok {
		_spec.SetField(postback.FieldSub1, field.TypeString, value)
		_node.Sub1 = value
	}
	if value, ok := _c.mutation.Sub2(); ok {
		_spec.SetField(postback.FieldSub2, field.TypeString, value)
		_node.Sub2 = value
	}
	if value, ok := _c.mutation.Sub3(); ok {
		_spec.SetField(postback.FieldSub3, field.TypeString, value)
		_node.Sub3 = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(postback.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PostbackCreateBulk is the builder for creating many Postback entities in bulk.
type PostbackCreateBulk struct {
	config
	err      error
	builders []*PostbackCreate
}

// Save creates the Postback entities in the database.
func (_c *PostbackCreateBulk) Save(ctx context.Context) ([]*Postback, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Postback, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PostbackMutation)
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
func (_c *PostbackCreateBulk) SaveX(ctx context.Context) []*Postback {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostbackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostbackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
