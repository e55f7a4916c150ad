// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/barracuda-partners/backend/ent/postback"
	"github.com/barracuda-partners/backend/ent/predicate"
)

// PostbackUpdate is the builder for updating Postback entities.
type PostbackUpdate struct {
	config
	hooks    []Hook
	mutation *PostbackMutation
}

// Where appends a list predicates to the PostbackUpdate builder.
func (_u *PostbackUpdate) Where(ps ...predicate.Postback) *PostbackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClickID sets the "click_id" field.
func (_u *PostbackUpdate) SetClickID(v string) *PostbackUpdate {
	_u.mutation.SetClickID(v)
	return _u
}

// SetNillableClickID sets the "click_id" field if the given value is not nil.
func (_u *PostbackUpdate) SetNillableClickID(v *string) *PostbackUpdate {
	if v != nil {
		_u.SetClickID(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *PostbackUpdate) SetGoal(v postback.Goal) *PostbackUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *PostbackUpdate) SetNillableGoal(v *postback.Goal) *PostbackUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *PostbackUpdate) SetAffiliateID(v string) *PostbackUpdate {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *PostbackUpdate) SetNillableAffiliateID(v *string) *PostbackUpdate {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (_u *PostbackUpdate) ClearAffiliateID() *PostbackUpdate {
	_u.mutation.ClearAffiliateID()
	return _u
}

// SetOfferID sets the "offer_id" field.
func (_u *PostbackUpdate) SetOfferID(v string) *PostbackUpdate {
	_u.mutation.SetOfferID(v)
	return _u
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_u *PostbackUpdate) SetNillableOfferID(v *string) *PostbackUpdate {
	if v != nil {
		_u.SetOfferID(*v)
	}
	return _u
}

// ClearOfferID clears the value of the "offer_id" field.
func (_u *PostbackUpdate) ClearOfferID() *PostbackUpdate {
	_u.mutation.ClearOfferID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PostbackUpdate) SetAmount(v float64) *PostbackUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PostbackUpdate) SetNillableAmount(v *float64) *PostbackUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PostbackUpdate) AddAmount(v float64) *PostbackUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetSaleAmount sets the "sale_amount" field.
func (_u *PostbackUpdate) SetSaleAmount(v float64) *PostbackUpdate {
	_u.mutation.ResetSaleAmount()
	_u.mutation.SetSaleAmount(v)
	return _u
}

// SetNillableSaleAmount sets the "sale_amount" field if the given value is not nil.
func (_u *PostbackUpdate) SetNillableSaleAmount(v *float64) *PostbackUpdate {
	if v != nil {
		_u.SetSaleAmount(*v)
	}
	return _u
}

// AddSaleAmount adds value to the "sale_amount" field.
func (_u *PostbackUpdate) AddSaleAmount(v float64) *PostbackUpdate {
	_u.mutation.AddSaleAmount(v)
	return _u
}

// ClearSaleAmount clears the value of the "sale_amount" field.
func (_u *PostbackUpdate) ClearSaleAmount() *PostbackUpdate {
	_u.mutation.ClearSaleAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PostbackUpdate) SetStatus(v string) *PostbackUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PostbackUpdate) SetNillableStatus(v *string) *PostbackUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSub1 sets the "sub1" field.
func (_u *PostbackUpdate) SetSub1(v string) *PostbackUpdate {
	_u.mutation.SetSub1(v)
	return _u
}

// SetNillableSub1 sets the "sub1" field if the given value is not nil.
func (_u *PostbackUpdate) SetNillableSub1(v *string) *PostbackUpdate {
	if v != nil {
		_u.SetSub1(*v)
	}
	return _u
}

// ClearSub1 clears the value of the "sub1" field.
func (_u *PostbackUpdate) ClearSub1() *PostbackUpdate {
	_u.mutation.ClearSub1()
	return _u
}

// SetSub2 sets the "sub2" field.
func (_u *PostbackUpdate) SetSub2(v string) *PostbackUpdate {
	_u.mutation.SetSub2(v)
	return _u
}

// SetNillableSub2 sets the "sub2" field if the given value is not nil.
func (_u *PostbackUpdate) SetNillableSub2(v *string) *PostbackUpdate {
	if v != nil {
		_u.SetSub2(*v)
	}
	return _u
}

// ClearSub2 clears the value of the "sub2" field.
func (_u *PostbackUpdate) ClearSub2() *PostbackUpdate {
	_u.mutation.ClearSub2()
	return _u
}

// SetSub3 sets the "sub3" field.
func (_u *PostbackUpdate) SetSub3(v string) *PostbackUpdate {
	_u.mutation.SetSub3(v)
	return _u
}

// SetNillableSub3 sets the "sub3" field if the given value is not nil.
func (_u *PostbackUpdate) SetNillableSub3(v *string) *PostbackUpdate {
	if v != nil {
		_u.SetSub3(*v)
	}
	return _u
}

// ClearSub3 clears the value of the "sub3" field.
func (_u *PostbackUpdate) ClearSub3() *PostbackUpdate {
	_u.mutation.ClearSub3()
	return _u
}

// Mutation returns the PostbackMutation object of the builder.
func (_u *PostbackUpdate) Mutation() *PostbackMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PostbackUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostbackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PostbackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostbackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostbackUpdate) check() error {
	if v, ok := _u.mutation.ClickID(); ok {
		if err := postback.ClickIDValidator(v); err != nil {
			return &ValidationError{Name: "click_id", err: fmt.Errorf(`ent: validator failed for field "Postback.click_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Goal(); ok {
		if err := postback.GoalValidator(v); err != nil {
			return &ValidationError{Name: "goal", err: fmt.Errorf(`ent: validator failed for field "Postback.goal": %w`, err)}
		}
	}
	return nil
}

func (_u *PostbackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(postback.Table, postback.Columns, sqlgraph.NewFieldSpec(postback.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClickID(); ok {
		_spec.SetField(postback.FieldClickID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(postback.FieldGoal, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffiliateID(); ok {
		_spec.SetField(postback.FieldAffiliateID, field.TypeString, value)
	}
	if _u.mutation.AffiliateIDCleared() {
		_spec.ClearField(postback.FieldAffiliateID, field.TypeString)
	}
	if value, ok := _u.mutation.OfferID(); ok {
		_spec.SetField(postback.FieldOfferID, field.TypeString, value)
	}
	if _u.mutation.OfferIDCleared() {
		_spec.ClearField(postback.FieldOfferID, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(postback.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(postback.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SaleAmount(); ok {
		_spec.SetField(postback.FieldSaleAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSaleAmount(); ok {
		_spec.AddField(postback.FieldSaleAmount, field.TypeFloat64, value)
	}
	if _u.mutation.SaleAmountCleared() {
		_spec.ClearField(postback.FieldSaleAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(postback.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sub1(); ok {
		_spec.SetField(postback.FieldSub1, field.TypeString, value)
	}
	if _u.mutation.Sub1Cleared() {
		_spec.ClearField(postback.FieldSub1, field.TypeString)
	}
	if value, ok := _u.mutation.Sub2(); ok {
		_spec.SetField(postback.FieldSub2, field.TypeString, value)
	}
	if _u.mutation.Sub2Cleared() {
		_spec.ClearField(postback.FieldSub2, field.TypeString)
	}
	if value, ok := _u.mutation.Sub3(); ok {
		_spec.SetField(postback.FieldSub3, field.TypeString, value)
	}
	if _u.mutation.Sub3Cleared() {
		_spec.ClearField(postback.FieldSub3, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PostbackUpdateOne is the builder for updating a single Postback entity.
type PostbackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PostbackMutation
}

// SetClickID sets the "click_id" field.
func (_u *PostbackUpdateOne) SetClickID(v string) *PostbackUpdateOne {
	_u.mutation.SetClickID(v)
	return _u
}

// SetNillableClickID sets the "click_id" field if the given value is not nil.
func (_u *PostbackUpdateOne) SetNillableClickID(v *string) *PostbackUpdateOne {
	if v != nil {
		_u.SetClickID(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *PostbackUpdateOne) SetGoal(v postback.Goal) *PostbackUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *PostbackUpdateOne) SetNillableGoal(v *postback.Goal) *PostbackUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetAffiliateID sets the "affiliate_id" field.
func (_u *PostbackUpdateOne) SetAffiliateID(v string) *PostbackUpdateOne {
	_u.mutation.SetAffiliateID(v)
	return _u
}

// SetNillableAffiliateID sets the "affiliate_id" field if the given value is not nil.
func (_u *PostbackUpdateOne) SetNillableAffiliateID(v *string) *PostbackUpdateOne {
	if v != nil {
		_u.SetAffiliateID(*v)
	}
	return _u
}

// ClearAffiliateID clears the value of the "affiliate_id" field.
func (_u *PostbackUpdateOne) ClearAffiliateID() *PostbackUpdateOne {
	_u.mutation.ClearAffiliateID()
	return _u
}

// SetOfferID sets the "offer_id" field.
func (_u *PostbackUpdateOne) SetOfferID(v string) *PostbackUpdateOne {
	_u.mutation.SetOfferID(v)
	return _u
}

// SetNillableOfferID sets the "offer_id" field if the given value is not nil.
func (_u *PostbackUpdateOne) SetNillableOfferID(v *string) *PostbackUpdateOne {
	if v != nil {
		_u.SetOfferID(*v)
	}
	return _u
}

// ClearOfferID clears the value of the "offer_id" field.
func (_u *PostbackUpdateOne) ClearOfferID() *PostbackUpdateOne {
	_u.mutation.ClearOfferID()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PostbackUpdateOne) SetAmount(v float64) *PostbackUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PostbackUpdateOne) SetNillableAmount(v *float64) *PostbackUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PostbackUpdateOne) AddAmount(v float64) *PostbackUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetSaleAmount sets the "sale_amount" field.
func (_u *PostbackUpdateOne) SetSaleAmount(v float64) *PostbackUpdateOne {
	_u.mutation.ResetSaleAmount()
	_u.mutation.SetSaleAmount(v)
	return _u
}

// SetNillableSaleAmount sets the "sale_amount" field if the given value is not nil.
func (_u *PostbackUpdateOne) SetNillableSaleAmount(v *float64) *PostbackUpdateOne {
	if v != nil {
		_u.SetSaleAmount(*v)
	}
	return _u
}

// AddSaleAmount adds value to the "sale_amount" field.
func (_u *PostbackUpdateOne) AddSaleAmount(v float64) *PostbackUpdateOne {
	_u.mutation.AddSaleAmount(v)
	return _u
}

// ClearSaleAmount clears the value of the "sale_amount" field.
func (_u *PostbackUpdateOne) ClearSaleAmount() *PostbackUpdateOne {
	_u.mutation.ClearSaleAmount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PostbackUpdateOne) SetStatus(v string) *PostbackUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PostbackUpdateOne) SetNillableStatus(v *string) *PostbackUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSub1 sets the "sub1" field.
func (_u *PostbackUpdateOne) SetSub1(v string) *PostbackUpdateOne {
	_u.mutation.SetSub1(v)
	return _u
}

// SetNillableSub1 sets the "sub1" field if the given value is not nil.
func (_u *PostbackUpdateOne) SetNillableSub1(v *string) *PostbackUpdateOne {
	if v != nil {
		_u.SetSub1(*v)
	}
	return _u
}

// ClearSub1 clears the value of the "sub1" field.
func (_u *PostbackUpdateOne) ClearSub1() *PostbackUpdateOne {
	_u.mutation.ClearSub1()
	return _u
}

// SetSub2 sets the "sub2" field.
func (_u *PostbackUpdateOne) SetSub2(v string) *PostbackUpdateOne {
	_u.mutation.SetSub2(v)
	return _u
}

// SetNillableSub2 sets the "sub2" field if the given value is not nil.
func (_u *PostbackUpdateOne) SetNillableSub2(v *string) *PostbackUpdateOne {
	if v != nil {
		_u.SetSub2(*v)
	}
	return _u
}

// ClearSub2 clears the value of the "sub2" field.
func (_u *PostbackUpdateOne) ClearSub2() *PostbackUpdateOne {
	_u.mutation.ClearSub2()
	return _u
}

// SetSub3 sets the "sub3" field.
func (_u *PostbackUpdateOne) SetSub3(v string) *PostbackUpdateOne {
	_u.mutation.SetSub3(v)
	return _u
}

// SetNillableSub3 sets the "sub3" field if the given value is not nil.
func (_u *PostbackUpdateOne) SetNillableSub3(v *string) *PostbackUpdateOne {
	if v != nil {
		_u.SetSub3(*v)
	}
	return _u
}

// ClearSub3 clears the value of the "sub3" field.
func (_u *PostbackUpdateOne) ClearSub3() *PostbackUpdateOne {
	_u.mutation.ClearSub3()
	return _u
}

// Mutation returns the PostbackMutation object of the builder.
func (_u *PostbackUpdateOne) Mutation() *PostbackMutation {
	return _u.mutation
}

// Where appends a list predicates to the PostbackUpdate builder.
func (_u *PostbackUpdateOne) Where(ps ...predicate.Postback) *PostbackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PostbackUpdateOne) Select(field string, fields ...string) *PostbackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Postback entity.
func (_u *PostbackUpdateOne) Save(ctx context.Context) (*Postback, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostbackUpdateOne) SaveX(ctx context.Context) *Postback {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PostbackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostbackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostbackUpdateOne) check() error {
	if v, ok := _u.mutation.ClickID(); ok {
		if err := postback.ClickIDValidator(v); err != nil {
			return &ValidationError{Name: "click_id", err: fmt.Errorf(`ent: validator failed for field "Postback.click_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Goal(); ok {
		if err := postback.GoalValidator(v); err != nil {
			return &ValidationError{Name: "goal", err: fmt.Errorf(`ent: validator failed for field "Postback.goal": %w`, err)}
		}
	}
	return nil
}

func (_u *PostbackUpdateOne) sqlSave(ctx context.Context) (_node *Postback, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(postback.Table, postback.Columns, sqlgraph.NewFieldSpec(postback.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Postback.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, postback.FieldID)
		for _, f := range fields {
			if !postback.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != postback.FieldID {
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
		_spec.SetField(postback.FieldClickID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(postback.FieldGoal, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffiliateID(); ok {
		_spec.SetField(postback.FieldAffiliateID, field.TypeString, value)
	}
	if _u.mutation.AffiliateIDCleared() {
		_spec.ClearField(postback.FieldAffiliateID, field.TypeString)
	}
	if value, ok := _u.mutation.OfferID(); ok {
		_spec.SetField(postback.FieldOfferID, field.TypeString, value)
	}
	if _u.mutation.OfferIDCleared() {
		_spec.ClearField(postback.FieldOfferID, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(postback.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(postback.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SaleAmount(); ok {
		_spec.SetField(postback.FieldSaleAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSaleAmount(); ok {
		_spec.AddField(postback.FieldSaleAmount, field.TypeFloat64, value)
	}
	if _u.mutation.SaleAmountCleared() {
		_spec.ClearField(postback.FieldSaleAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(postback.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sub1(); ok {
		_spec.SetField(postback.FieldSub1, field.TypeString, value)
	}
	if _u.mutation.Sub1Cleared() {
		_spec.ClearField(postback.FieldSub1, field.TypeString)
	}
	if value, ok := _u.mutation.Sub2(); ok {
		_spec.SetField(postback.FieldSub2, field.TypeString, value)
	}
	if _u.mutation.Sub2Cleared() {
		_spec.ClearField(postback.FieldSub2, field.TypeString)
	}
	if value, ok := _u.mutation.Sub3(); ok {
		_spec.SetField(postback.FieldSub3, field.TypeString, value)
	}
	if _u.mutation.Sub3Cleared() {
		_spec.ClearField(postback.FieldSub3, field.TypeString)
	}
	_node = &Postback{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postback.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
