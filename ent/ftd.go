// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/barracuda-partners/backend/ent/ftd"
)

// FTD is the model entity for the FTD schema.
type FTD struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ClickID holds the value of the "click_id" field.
	ClickID string `json:"click_id,omitempty"`
	// AffiliateID holds the value of the "affiliate_id" field.
	AffiliateID string `json:"affiliate_id,omitempty"`
	// OfferID holds the value of the "offer_id" field.
	OfferID string `json:"offer_id,omitempty"`
	// Deposit amount
	Amount float64 `json:"amount,omitempty"`
	// SaleAmount holds the value of the "sale_amount" field.
	SaleAmount float64 `json:"sale_amount,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FTD) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ftd.FieldAmount, ftd.FieldSaleAmount:
			values[i] = new(sql.NullFloat64)
		case ftd.FieldID:
			values[i] = new(sql.NullInt64)
		case ftd.FieldClickID, ftd.FieldAffiliateID, ftd.FieldOfferID, ftd.FieldStatus:
			values[i] = new(sql.NullString)
		case ftd.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FTD fields.
func (_m *FTD) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ftd.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case ftd.FieldClickID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field click_id", values[i])
			} else if value.Valid {
				_m.ClickID = value.String
			}
		case ftd.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				_m.AffiliateID = value.String
			}
		case ftd.FieldOfferID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field offer_id", values[i])
			} else if value.Valid {
				_m.OfferID = value.String
			}
		case ftd.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case ftd.FieldSaleAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sale_amount", values[i])
			} else if value.Valid {
				_m.SaleAmount = value.Float64
			}
		case ftd.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case ftd.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FTD.
// This includes values selected through modifiers, order, etc.
func (_m *FTD) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FTD.
// Note that you need to call FTD.Unwrap() before calling this method if this FTD
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FTD) Update() *FTDUpdateOne {
	return NewFTDClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FTD entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FTD) Unwrap() *FTD {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FTD is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FTD) String() string {
	var builder strings.Builder
	builder.WriteString("FTD(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("click_id=")
	builder.WriteString(_m.ClickID)
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
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FTDs is a parsable slice of FTD.
type FTDs []*FTD
