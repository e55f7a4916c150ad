// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/barracuda-partners/backend/ent/ftd"
)

// FTDCreate is the builder for creating a FTD entity.
type FTDCreate struct {
	config
	mutation *FTDMutation
	hooks    []Hook
}

// SetClickID sets the "click_id" field.
func (_c *FTDCreate) SetClickID(v string) *FTDCreate {
	_c.mutation.SetClickID(v)
	return _c
}

// SetAffiliateID sets the "affiliate_id" field.
func (_c *FTDCreate) SetAffiliateID(v string) *FTDCreate {
	_c.mutation.SetAffiliateID(v)
	return _c
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_c *FTDCreate) SetNillableAffiliateID(v *string) *FTDCreate {
	if v != nil {
		_c.SetAffiliateID(*v)
	}
	return _c
}

// SetOfferID sets the "offer_id" field.
func (_c *FTDCreate) SetOfferID(v string) *FTDCreate {
	_c.mutation.SetOfferID(v)
	return _c
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_c *FTDCreate) SetNillableOfferID(v *string) *FTDCreate {
	if v != nil {
		_c.SetOfferID(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *FTDCreate) SetAmount(v float64) *FTDCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetSaleAmount sets the "sale_amount" field.
func (_c *FTDCreate) SetSaleAmount(v float64) *FTDCreate {
	_c.mutation.SetSaleAmount(v)
	return _c
}

// SetNillableSaleAmount sets the "sale_amount" field if the given value is not nil.
func (_c *FTDCreate) SetNillableSaleAmount(v *float64) *FTDCreate {
	if v != nil {
		_c.SetSaleAmount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FTDCreate) SetStatus(v string) *FTDCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FTDCreate) SetNillableStatus(v *string) *FTDCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FTDCreate) SetCreatedAt(v time.Time) *FTDCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FTDCreate) SetNillableCreatedAt(v *time.Time) *FTDCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the FTDMutation object of the builder.
func (_c *FTDCreate) Mutation() *FTDMutation {
	return _c.mutation
}

// Save creates the FTD in the database.
func (_c *FTDCreate) Save(ctx context.Context) (*FTD, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FTDCreate) SaveX(ctx context.Context) *FTD {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FTDCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FTDCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FTDCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := ftd.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ftd.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FTDCreate) check() error {
	if _, ok := _c.mutation.ClickID(); !ok {
		return &ValidationError{Name: "click_id", err: errors.New(`ent: missing required field "FTD.click_id"`)}
	}
	if v, ok := _c.mutation.ClickID(); ok {
		if err := ftd.ClickIDValidator(v); err != nil {
			return &ValidationError{Name: "click_id", err: fmt.Errorf(`ent: validator failed for field "FTD.click_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "FTD.amount"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FTD.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FTD.created_at"`)}
	}
	return nil
}

func (_c *FTDCreate) sqlSave(ctx context.Context) (*FTD, error) {
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

func (_c *FTDCreate) createSpec() (*FTD, *sqlgraph.CreateSpec) {
	var (
		_node = &FTD{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ftd.Table, sqlgraph.NewFieldSpec(ftd.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ClickID(); ok {
		_spec.SetField(ftd.FieldClickID, field.TypeString, value)
		_node.ClickID = value
	}
	if value, ok := _c.mutation.AffiliateID(); ok {
		_spec.SetField(ftd.FieldAffiliateID, field.TypeString, value)
		_node.AffiliateID = value
	}
	if value, ok := _c.mutation.OfferID(); ok {
		_spec.SetField(ftd.FieldOfferID, field.TypeString, value)
		_node.OfferID = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(ftd.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.SaleAmount(); ok {
		_spec.SetField(ftd.FieldSaleAmount, field.TypeFloat64, value)
		_node.SaleAmount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ftd.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ftd.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// FTDCreateBulk is the builder for creating many FTD entities in bulk.
type FTDCreateBulk struct {
	config
	err      error
	builders []*FTDCreate
}

// Save creates the FTD entities in the database.
func (_c *FTDCreateBulk) Save(ctx context.Context) ([]*FTD, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FTD, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FTDMutation)
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
func (_c *FTDCreateBulk) SaveX(ctx context.Context) []*FTD {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FTDCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FTDCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
