// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/barracuda-partners/backend/ent/conversion"
)

// Conversion is the model entity for the Conversion schema.
type Conversion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ClickID holds the value of the "click_id" field.
	ClickID string `json:"click_id,omitempty"`
	// Goal identifier on the tracking platform (5 registration, 6 deposit)
	GoalID string `json:"goal_id,omitempty"`
	// GoalType holds the value of the "goal_type" field.
	GoalType conversion.GoalType `json:"goal_type,omitempty"`
	// AffiliateID holds the value of the "affiliate_id" field.
	AffiliateID string `json:"affiliate_id,omitempty"`
	// OfferID holds the value of the "offer_id" field.
	OfferID string `json:"offer_id,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// SaleAmount holds the value of the "sale_amount" field.
	SaleAmount float64 `json:"sale_amount,omitempty"`
	// approved when the tracking platform accepted the postback
	Status conversion.Status `json:"status,omitempty"`
	// Sub1 holds the value of the "sub1" field.
	Sub1 string `json:"sub1,omitempty"`
	// Sub2 holds the value of the "sub2" field.
	Sub2 string `json:"sub2,omitempty"`
	// Sub3 holds the value of the "sub3" field.
	Sub3 string `json:"sub3,omitempty"`
	// Sub4 holds the value of the "sub4" field.
	Sub4 string `json:"sub4,omitempty"`
	// Sub5 holds the value of the "sub5" field.
	Sub5 string `json:"sub5,omitempty"`
	// UserAgent holds the value of the "user_agent" field.
	UserAgent string `json:"user_agent,omitempty"`
	// IPAddress holds the value of the "ip_address" field.
	IPAddress string `json:"ip_address,omitempty"`
	// Country holds the value of the "country" field.
	Country string `json:"country,omitempty"`
	// Region holds the value of the "region" field.
	Region string `json:"region,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// Browser holds the value of the "browser" field.
	Browser string `json:"browser,omitempty"`
	// Os holds the value of the "os" field.
	Os string `json:"os,omitempty"`
	// OsVersion holds the value of the "os_version" field.
	OsVersion string `json:"os_version,omitempty"`
	// Manufacturer holds the value of the "manufacturer" field.
	Manufacturer string `json:"manufacturer,omitempty"`
	// desktop, mobile or tablet
	DeviceType string `json:"device_type,omitempty"`
	// IsTest holds the value of the "is_test" field.
	IsTest bool `json:"is_test,omitempty"`
	// Click hash when the event came through the open API
	ClickHash string `json:"click_hash,omitempty"`
	// AdvertiserID holds the value of the "advertiser_id" field.
	AdvertiserID string `json:"advertiser_id,omitempty"`
	// OfferURLID holds the value of the "offer_url_id" field.
	OfferURLID string `json:"offer_url_id,omitempty"`
	// AffiliateSource holds the value of the "affiliate_source" field.
	AffiliateSource string `json:"affiliate_source,omitempty"`
	// Free-form payload, includes the raw postback response
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Conversion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversion.FieldMetadata:
			values[i] = new([]byte)
		case conversion.FieldIsTest:
			values[i] = new(sql.NullBool)
		case conversion.FieldAmount, conversion.FieldSaleAmount:
			values[i] = new(sql.NullFloat64)
		case conversion.FieldID:
			values[i] = new(sql.NullInt64)
		case conversion.FieldClickID, conversion.FieldGoalID, conversion.FieldGoalType, conversion.FieldAffiliateID, conversion.FieldOfferID, conversion.FieldStatus, conversion.FieldSub1, conversion.FieldSub2, conversion.FieldSub3, conversion.FieldSub4, conversion.FieldSub5, conversion.FieldUserAgent, conversion.FieldIPAddress, conversion.FieldCountry, conversion.FieldRegion, conversion.FieldSource, conversion.FieldPlatform, conversion.FieldBrowser, conversion.FieldOs, conversion.FieldOsVersion, conversion.FieldManufacturer, conversion.FieldDeviceType, conversion.FieldClickHash, conversion.FieldAdvertiserID, conversion.FieldOfferURLID, conversion.FieldAffiliateSource:
			values[i] = new(sql.NullString)
		case conversion.FieldCreatedAt, conversion.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Conversion fields.
func (_m *Conversion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case conversion.FieldClickID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field click_id", values[i])
			} else if value.Valid {
				_m.ClickID = value.String
			}
		case conversion.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = value.String
			}
		case conversion.FieldGoalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_type", values[i])
			} else if value.Valid {
				_m.GoalType = conversion.GoalType(value.String)
			}
		case conversion.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				_m.AffiliateID = value.String
			}
		case conversion.FieldOfferID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field offer_id", values[i])
			} else if value.Valid {
				_m.OfferID = value.String
			}
		case conversion.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case conversion.FieldSaleAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sale_amount", values[i])
			} else if value.Valid {
				_m.SaleAmount = value.Float64
			}
		case conversion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = conversion.Status(value.String)
			}
		case conversion.FieldSub1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub1", values[i])
			} else if value.Valid {
				_m.Sub1 = value.String
			}
		case conversion.FieldSub2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub2", values[i])
			} else if value.Valid {
				_m.Sub2 = value.String
			}
		case conversion.FieldSub3:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub3", values[i])
			} else if value.Valid {
				_m.Sub3 = value.String
			}
		case conversion.FieldSub4:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub4", values[i])
			} else if value.Valid {
				_m.Sub4 = value.String
			}
		case conversion.FieldSub5:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub5", values[i])
			} else if value.Valid {
				_m.Sub5 = value.String
			}
		case conversion.FieldUserAgent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_agent", values[i])
			} else if value.Valid {
				_m.UserAgent = value.String
			}
		case conversion.FieldIPAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ip_address", values[i])
			} else if value.Valid {
				_m.IPAddress = value.String
			}
		case conversion.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = value.String
			}
		case conversion.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = value.String
			}
		case conversion.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case conversion.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case conversion.FieldBrowser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field browser", values[i])
			} else if value.Valid {
				_m.Browser = value.String
			}
		case conversion.FieldOs:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field os", values[i])
			} else if value.Valid {
				_m.Os = value.String
			}
		case conversion.FieldOsVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field os_version", values[i])
			} else if value.Valid {
				_m.OsVersion = value.String
			}
		case conversion.FieldManufacturer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manufacturer", values[i])
			} else if value.Valid {
				_m.Manufacturer = value.String
			}
		case conversion.FieldDeviceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device_type", values[i])
			} else if value.Valid {
				_m.DeviceType = value.String
			}
		case conversion.FieldIsTest:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_test", values[i])
			} else if value.Valid {
				_m.IsTest = value.Bool
			}
		case conversion.FieldClickHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field click_hash", values[i])
			} else if value.Valid {
				_m.ClickHash = value.String
			}
		case conversion.FieldAdvertiserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field advertiser_id", values[i])
			} else if value.Valid {
				_m.AdvertiserID = value.String
			}
		case conversion.FieldOfferURLID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field offer_url_id", values[i])
			} else if value.Valid {
				_m.OfferURLID = value.String
			}
		case conversion.FieldAffiliateSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_source", values[i])
			} else if value.Valid {
				_m.AffiliateSource = value.String
			}
		case conversion.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case conversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversion.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Conversion.
// This includes values selected through modifiers, order, etc.
func (_m *Conversion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Conversion.
// Note that you need to call Conversion.Unwrap() before calling this method if this Conversion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Conversion) Update() *ConversionUpdateOne {
	return NewConversionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Conversion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Conversion) Unwrap() *Conversion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Conversion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Conversion) String() string {
	var builder strings.Builder
	builder.WriteString("Conversion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("click_id=")
	builder.WriteString(_m.ClickID)
	builder.WriteString(", ")
	builder.WriteString("goal_id=")
	builder.WriteString(_m.GoalID)
	builder.WriteString(", ")
	builder.WriteString("goal_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.GoalType))
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
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
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
	builder.WriteString("sub4=")
	builder.WriteString(_m.Sub4)
	builder.WriteString(", ")
	builder.WriteString("sub5=")
	builder.WriteString(_m.Sub5)
	builder.WriteString(", ")
	builder.WriteString("user_agent=")
	builder.WriteString(_m.UserAgent)
	builder.WriteString(", ")
	builder.WriteString("ip_address=")
	builder.WriteString(_m.IPAddress)
	builder.WriteString(", ")
	builder.WriteString("country=")
	builder.WriteString(_m.Country)
	builder.WriteString(", ")
	builder.WriteString("region=")
	builder.WriteString(_m.Region)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("browser=")
	builder.WriteString(_m.Browser)
	builder.WriteString(", ")
	builder.WriteString("os=")
	builder.WriteString(_m.Os)
	builder.WriteString(", ")
	builder.WriteString("os_version=")
	builder.WriteString(_m.OsVersion)
	builder.WriteString(", ")
	builder.WriteString("manufacturer=")
	builder.WriteString(_m.Manufacturer)
	builder.WriteString(", ")
	builder.WriteString("device_type=")
	builder.WriteString(_m.DeviceType)
	builder.WriteString(", ")
	builder.WriteString("is_test=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTest))
	builder.WriteString(", ")
	builder.WriteString("click_hash=")
	builder.WriteString(_m.ClickHash)
	builder.WriteString(", ")
	builder.WriteString("advertiser_id=")
	builder.WriteString(_m.AdvertiserID)
	builder.WriteString(", ")
	builder.WriteString("offer_url_id=")
	builder.WriteString(_m.OfferURLID)
	builder.WriteString(", ")
	builder.WriteString("affiliate_source=")
	builder.WriteString(_m.AffiliateSource)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Conversions is a parsable slice of Conversion.
type Conversions []*Conversion
