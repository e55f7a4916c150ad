// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/barracuda-partners/backend/ent/ftd"
	"github.com/barracuda-partners/backend/ent/predicate"
)

// FTDUpdate is the builder for updating FTD entities.
type FTDUpdate struct {
	config
	hooks    []Hook
	mutation *FTDMutation
}

// Where appends a list predicates to the FTDUpdate builder.
func (_u *FTDUpdate) Where(ps ...predicate.FTD) *FTDUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClickID sets the "click_id" field.
func (_u *FTDUpdate) SetClickID(v string) *FTDUpdate {
	_u.mutation.SetClickID(v)
	return _u
}

// SetNillableClickID sets the "click_id" field if the given value is not nil.
func (_u *FTDUpdate) SetNillableClickID(v *string) *FTDUpdate {
	if v != nil {
		_u.SetClickID(*v)
	}
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *FTDUpdate) SetAffiliateID(v string) *FTDUpdate {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *FTDUpdate) SetNillableAffiliateID(v *string) *FTDUpdate {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (_u *FTDUpdate) ClearAffiliateID() *FTDUpdate {
	_u.mutation.ClearAffiliateID()
	return _u
}

// SetOfferID sets the "offer_id" field.
func (_u *FTDUpdate) SetOfferID(v string) *FTDUpdate {
	_u.mutation.SetOfferID(v)
	return _u
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_u *FTDUpdate) SetNillableOfferID(v *string) *FTDUpdate {
	if v != nil {
		_u.SetOfferID(*v)
	}
	return _u
}

// ClearOfferID clears the value of the "offer_id" field.
func (_u *FTDUpdate) ClearOfferID() *FTDUpdate {
	_u.mutation.ClearOfferID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *FTDUpdate) SetAmount(v float64) *FTDUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *FTDUpdate) SetNillableAmount(v *float64) *FTDUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *FTDUpdate) AddAmount(v float64) *FTDUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetSaleAmount sets the "sale_amount" field.
func (_u *FTDUpdate) SetSaleAmount(v float64) *FTDUpdate {
	_u.mutation.ResetSaleAmount()
	_u.mutation.SetSaleAmount(v)
	return _u
}

// SetNillableSaleAmount sets the "sale_amount" field if the given value is not nil.
func (_u *FTDUpdate) SetNillableSaleAmount(v *float64) *FTDUpdate {
	if v != nil {
		_u.SetSaleAmount(*v)
	}
	return _u
}

// AddSaleAmount adds value to the "sale_amount" field.
func (_u *FTDUpdate) AddSaleAmount(v float64) *FTDUpdate {
	_u.mutation.AddSaleAmount(v)
	return _u
}

// ClearSaleAmount clears the value of the "sale_amount" field.
func (_u *FTDUpdate) ClearSaleAmount() *FTDUpdate {
	_u.mutation.ClearSaleAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FTDUpdate) SetStatus(v string) *FTDUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FTDUpdate) SetNillableStatus(v *string) *FTDUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the FTDMutation object of the builder.
func (_u *FTDUpdate) Mutation() *FTDMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FTDUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FTDUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FTDUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FTDUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FTDUpdate) check() error {
	if v, ok := _u.mutation.ClickID(); ok {
		if err := ftd.ClickIDValidator(v); err != nil {
			return &ValidationError{Name: "click_id", err: fmt.Errorf(`ent: validator failed for field "FTD.click_id": %w`, err)}
		}
	}
	return nil
}

func (_u *FTDUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ftd.Table, ftd.Columns, sqlgraph.NewFieldSpec(ftd.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClickID(); ok {
		_spec.SetField(ftd.FieldClickID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AffiliateID(); ok {
		_spec.SetField(ftd.FieldAffiliateID, field.TypeString, value)
	}
	if _u.mutation.AffiliateIDCleared() {
		_spec.ClearField(ftd.FieldAffiliateID, field.TypeString)
	}
	if value, ok := _u.mutation.OfferID(); ok {
		_spec.SetField(ftd.FieldOfferID, field.TypeString, value)
	}
	if _u.mutation.OfferIDCleared() {
		_spec.ClearField(ftd.FieldOfferID, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(ftd.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(ftd.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SaleAmount(); ok {
		_spec.SetField(ftd.FieldSaleAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSaleAmount(); ok {
		_spec.AddField(ftd.FieldSaleAmount, field.TypeFloat64, value)
	}
	if _u.mutation.SaleAmountCleared() {
		_spec.ClearField(ftd.FieldSaleAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ftd.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ftd.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FTDUpdateOne is the builder for updating a single FTD entity.
type FTDUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FTDMutation
}

// SetClickID sets the "click_id" field.
func (_u *FTDUpdateOne) SetClickID(v string) *FTDUpdateOne {
	_u.mutation.SetClickID(v)
	return _u
}

// SetNillableClickID sets the "click_id" field if the given value is not nil.
func (_u *FTDUpdateOne) SetNillableClickID(v *string) *FTDUpdateOne {
	if v != nil {
		_u.SetClickID(*v)
	}
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *FTDUpdateOne) SetAffiliateID(v string) *FTDUpdateOne {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *FTDUpdateOne) SetNillableAffiliateID(v *string) *FTDUpdateOne {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (_u *FTDUpdateOne) ClearAffiliateID() *FTDUpdateOne {
	_u.mutation.ClearAffiliateID()
	return _u
}

// SetOfferID sets the "offer_id" field.
func (_u *FTDUpdateOne) SetOfferID(v string) *FTDUpdateOne {
	_u.mutation.SetOfferID(v)
	return _u
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_u *FTDUpdateOne) SetNillableOfferID(v *string) *FTDUpdateOne {
	if v != nil {
		_u.SetOfferID(*v)
	}
	return _u
}

// ClearOfferID clears the value of the "offer_id" field.
func (_u *FTDUpdateOne) ClearOfferID() *FTDUpdateOne {
	_u.mutation.ClearOfferID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *FTDUpdateOne) SetAmount(v float64) *FTDUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *FTDUpdateOne) SetNillableAmount(v *float64) *FTDUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *FTDUpdateOne) AddAmount(v float64) *FTDUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetSaleAmount sets the "sale_amount" field.
func (_u *FTDUpdateOne) SetSaleAmount(v float64) *FTDUpdateOne {
	_u.mutation.ResetSaleAmount()
	_u.mutation.SetSaleAmount(v)
	return _u
}

// SetNillableSaleAmount sets the "sale_amount" field if the given value is not nil.
func (_u *FTDUpdateOne) SetNillableSaleAmount(v *float64) *FTDUpdateOne {
	if v != nil {
		_u.SetSaleAmount(*v)
	}
	return _u
}

// AddSaleAmount adds value to the "sale_amount" field.
func (_u *FTDUpdateOne) AddSaleAmount(v float64) *FTDUpdateOne {
	_u.mutation.AddSaleAmount(v)
	return _u
}

// ClearSaleAmount clears the value of the "sale_amount" field.
func (_u *FTDUpdateOne) ClearSaleAmount() *FTDUpdateOne {
	_u.mutation.ClearSaleAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *FTDUpdateOne) SetStatus(v string) *FTDUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FTDUpdateOne) SetNillableStatus(v *string) *FTDUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the FTDMutation object of the builder.
func (_u *FTDUpdateOne) Mutation() *FTDMutation {
	return _u.mutation
}

// Where appends a list predicates to the FTDUpdate builder.
func (_u *FTDUpdateOne) Where(ps ...predicate.FTD) *FTDUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FTDUpdateOne) Select(field string, fields ...string) *FTDUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FTD entity.
func (_u *FTDUpdateOne) Save(ctx context.Context) (*FTD, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FTDUpdateOne) SaveX(ctx context.Context) *FTD {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FTDUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FTDUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FTDUpdateOne) check() error {
	if v, ok := _u.mutation.ClickID(); ok {
		if err := ftd.ClickIDValidator(v); err != nil {
			return &ValidationError{Name: "click_id", err: fmt.Errorf(`ent: validator failed for field "FTD.click_id": %w`, err)}
		}
	}
	return nil
}

func (_u *FTDUpdateOne) sqlSave(ctx context.Context) (_node *FTD, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ftd.Table, ftd.Columns, sqlgraph.NewFieldSpec(ftd.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FTD.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ftd.FieldID)
		for _, f := range fields {
			if !ftd.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ftd.FieldID {
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
		_spec.SetField(ftd.FieldClickID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AffiliateID(); ok {
		_spec.SetField(ftd.FieldAffiliateID, field.TypeString, value)
	}
	if _u.mutation.AffiliateIDCleared() {
		_spec.ClearField(ftd.FieldAffiliateID, field.TypeString)
	}
	if value, ok := _u.mutation.OfferID(); ok {
		_spec.SetField(ftd.FieldOfferID, field.TypeString, value)
	}
	if _u.mutation.OfferIDCleared() {
		_spec.ClearField(ftd.FieldOfferID, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(ftd.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(ftd.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SaleAmount(); ok {
		_spec.SetField(ftd.FieldSaleAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSaleAmount(); ok {
		_spec.AddField(ftd.FieldSaleAmount, field.TypeFloat64, value)
	}
	if _u.mutation.SaleAmountCleared() {
		_spec.ClearField(ftd.FieldSaleAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ftd.FieldStatus, field.TypeString, value)
	}
	_node = &FTD{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ftd.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
