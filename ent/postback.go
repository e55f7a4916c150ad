// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/barracuda-partners/backend/ent/postback"
)

// Postback is the model entity for the Postback schema.
type Postback struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Click identifier from the tracking platform
	ClickID string `json:"click_id,omitempty"`
	// Goal the event reports
	Goal postback.Goal `json:"goal,omitempty"`
	// AffiliateID holds the value of the "affiliate_id" field.
	AffiliateID string `json:"affiliate_id,omitempty"`
	// OfferID holds the value of the "offer_id" field.
	OfferID string `json:"offer_id,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// SaleAmount holds the value of the "sale_amount" field.
	SaleAmount float64 `json:"sale_amount,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Sub1 holds the value of the "sub1" field.
	Sub1 string `json:"sub1,omitempty"`
	// Sub2 holds the value of the "sub2" field.
	Sub2 string `json:"sub2,omitempty"`
	// Sub3 holds the value of the "sub3" field.
	Sub3 string `json:"sub3,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Postback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case postback.FieldAmount, postback.FieldSaleAmount:
			values[i] = new(sql.NullFloat64)
		case postback.FieldID:
			values[i] = new(sql.NullInt64)
		case postback.FieldClickID, postback.FieldGoal, postback.FieldAffiliateID, postback.FieldOfferID, postback.FieldStatus, postback.FieldSub1, postback.FieldSub2, postback.FieldSub3:
			values[i] = new(sql.NullString)
		case postback.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Postback fields.
func (_m *Postback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case postback.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case postback.FieldClickID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field click_id", values[i])
			} else if value.Valid {
				_m.ClickID = value.String
			}
		case postback.FieldGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value.Valid {
				_m.Goal = postback.Goal(value.String)
			}
		case postback.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				_m.AffiliateID = value.String
			}
		case postback.FieldOfferID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field offer_id", values[i])
			} else if value.Valid {
				_m.OfferID = value.String
			}
		case postback.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case postback.FieldSaleAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sale_amount", values[i])
			} else if value.Valid {
				_m.SaleAmount = value.Float64
			}
		case postback.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case postback.FieldSub1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub1", values[i])
			} else if value.Valid {
				_m.Sub1 = value.String
			}
		case postback.FieldSub2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub2", values[i])
			} else if value.Valid {
				_m.Sub2 = value.String
			}
		case postback.FieldSub3:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub3", values[i])
			} else if value.Valid {
				_m.Sub3 = value.String
			}
		case postback.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Postback.
// This includes values selected through modifiers, order, etc.
func (_m *Postback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Postback.
// Note that you need to call Postback.Unwrap() before calling this method if this Postback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Postback) Update() *PostbackUpdateOne {
	return NewPostbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Postback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Postback) Unwrap() *Postback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Postback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Postback) String() string {
	var builder strings.Builder
	builder.WriteString("Postback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("click_id=")
	builder.WriteString(_m.ClickID)
	builder.WriteString(", ")
	builder.WriteString("goal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Goal))
	builder.WriteString(", ")
	builder.WriteString("affiliate_id=")
	builder.WriteString(_m.AffiliateID)
	builder.WriteString(", ")
	builder.WriteString("offer_id=")
	builder.WriteString(_m.OfferID)
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("sale_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.SaleAmount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("sub1=")
	builder.WriteString(_m.Sub1)
	builder.WriteString(", ")
	builder.WriteString("sub2=")
	builder.WriteString(_m.Sub2)
	builder.WriteString(", ")
	builder.WriteString("sub3=")
	builder.WriteString(_m.Sub3)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Postbacks is a parsable slice of Postback.
type Postbacks []*Postback
