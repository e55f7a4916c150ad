// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/barracuda-partners/backend/ent/contact"
)

// Contact is the model entity for the Contact schema.
type Contact struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Contact email, one contact per email
	Email string `json:"email,omitempty"`
	// Contact name
	Name string `json:"name,omitempty"`
	// Company or brand name
	Company string `json:"company,omitempty"`
	// Partner type declared on the form
	Type contact.Type `json:"type,omitempty"`
	// Pipeline status set by admins
	Status contact.Status `json:"status,omitempty"`
	// Affiliate application status
	AffiliateStatus contact.AffiliateStatus `json:"affiliate_status,omitempty"`
	// Preferred messenger (telegram, skype, ...)
	Messenger string `json:"messenger,omitempty"`
	// Messenger username
	Username string `json:"username,omitempty"`
	// Free-form message from the form
	Message string `json:"message,omitempty"`
	// Internal admin notes
	Notes string `json:"notes,omitempty"`
	// Affiliate identifier on the tracking platform
	AffiliateID string `json:"affiliate_id,omitempty"`
	// Offer URL identifier
	URLID string `json:"url_id,omitempty"`
	// Affiliate sub parameter, usually the click id
	Sub1 string `json:"sub1,omitempty"`
	// Sub2 holds the value of the "sub2" field.
	Sub2 string `json:"sub2,omitempty"`
	// Sub3 holds the value of the "sub3" field.
	Sub3 string `json:"sub3,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID string `json:"campaign_id,omitempty"`
	// Where the submission came from (contact_form, landing, ...)
	TrackingSource string `json:"tracking_source,omitempty"`
	// Offer link generated for this contact
	TrackingLink string `json:"tracking_link,omitempty"`
	// Registration goal was accepted by the tracking platform
	AffiliateRegistered bool `json:"affiliate_registered,omitempty"`
	// Last error returned by the tracking platform
	AffiliateError string `json:"affiliate_error,omitempty"`
	// Contact completed a first deposit
	Ftd bool `json:"ftd,omitempty"`
	// First deposit amount
	FtdAmount float64 `json:"ftd_amount,omitempty"`
	// When the first deposit was recorded
	FtdDate *time.Time `json:"ftd_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contact.FieldAffiliateRegistered, contact.FieldFtd:
			values[i] = new(sql.NullBool)
		case contact.FieldFtdAmount:
			values[i] = new(sql.NullFloat64)
		case contact.FieldID:
			values[i] = new(sql.NullInt64)
		case contact.FieldEmail, contact.FieldName, contact.FieldCompany, contact.FieldType, contact.FieldStatus, contact.FieldAffiliateStatus, contact.FieldMessenger, contact.FieldUsername, contact.FieldMessage, contact.FieldNotes, contact.FieldAffiliateID, contact.FieldURLID, contact.FieldSub1, contact.FieldSub2, contact.FieldSub3, contact.FieldCampaignID, contact.FieldTrackingSource, contact.FieldTrackingLink, contact.FieldAffiliateError:
			values[i] = new(sql.NullString)
		case contact.FieldFtdDate, contact.FieldCreatedAt, contact.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contact fields.
func (_m *Contact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contact.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case contact.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case contact.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case contact.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case contact.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = contact.Type(value.String)
			}
		case contact.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = contact.Status(value.String)
			}
		case contact.FieldAffiliateStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_status", values[i])
			} else if value.Valid {
				_m.AffiliateStatus = contact.AffiliateStatus(value.String)
			}
		case contact.FieldMessenger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field messenger", values[i])
			} else if value.Valid {
				_m.Messenger = value.String
			}
		case contact.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case contact.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case contact.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case contact.FieldAffiliateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_id", values[i])
			} else if value.Valid {
				_m.AffiliateID = value.String
			}
		case contact.FieldURLID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url_id", values[i])
			} else if value.Valid {
				_m.URLID = value.String
			}
		case contact.FieldSub1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub1", values[i])
			} else if value.Valid {
				_m.Sub1 = value.String
			}
		case contact.FieldSub2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub2", values[i])
			} else if value.Valid {
				_m.Sub2 = value.String
			}
		case contact.FieldSub3:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sub3", values[i])
			} else if value.Valid {
				_m.Sub3 = value.String
			}
		case contact.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case contact.FieldTrackingSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tracking_source", values[i])
			} else if value.Valid {
				_m.TrackingSource = value.String
			}
		case contact.FieldTrackingLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tracking_link", values[i])
			} else if value.Valid {
				_m.TrackingLink = value.String
			}
		case contact.FieldAffiliateRegistered:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_registered", values[i])
			} else if value.Valid {
				_m.AffiliateRegistered = value.Bool
			}
		case contact.FieldAffiliateError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field affiliate_error", values[i])
			} else if value.Valid {
				_m.AffiliateError = value.String
			}
		case contact.FieldFtd:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field ftd", values[i])
			} else if value.Valid {
				_m.Ftd = value.Bool
			}
		case contact.FieldFtdAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ftd_amount", values[i])
			} else if value.Valid {
				_m.FtdAmount = value.Float64
			}
		case contact.FieldFtdDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ftd_date", values[i])
			} else if value.Valid {
				_m.FtdDate = new(time.Time)
				*_m.FtdDate = value.Time
			}
		case contact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contact.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Contact.
// This includes values selected through modifiers, order, etc.
func (_m *Contact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Contact.
// Note that you need to call Contact.Unwrap() before calling this method if this Contact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contact) Update() *ContactUpdateOne {
	return NewContactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contact) Unwrap() *Contact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contact) String() string {
	var builder strings.Builder
	builder.WriteString("Contact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("affiliate_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffiliateStatus))
	builder.WriteString(", ")
	builder.WriteString("messenger=")
	builder.WriteString(_m.Messenger)
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("affiliate_id=")
	builder.WriteString(_m.AffiliateID)
	builder.WriteString(", ")
	builder.WriteString("url_id=")
	builder.WriteString(_m.URLID)
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
	builder.WriteString("campaign_id=")
	builder.WriteString(_m.CampaignID)
	builder.WriteString(", ")
	builder.WriteString("tracking_source=")
	builder.WriteString(_m.TrackingSource)
	builder.WriteString(", ")
	builder.WriteString("tracking_link=")
	builder.WriteString(_m.TrackingLink)
	builder.WriteString(", ")
	builder.WriteString("affiliate_registered=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffiliateRegistered))
	builder.WriteString(", ")
	builder.WriteString("affiliate_error=")
	builder.WriteString(_m.AffiliateError)
	builder.WriteString(", ")
	builder.WriteString("ftd=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ftd))
	builder.WriteString(", ")
	builder.WriteString("ftd_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.FtdAmount))
	builder.WriteString(", ")
	if v := _m.FtdDate; v != nil {
		builder.WriteString("ftd_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contacts is a parsable slice of Contact.
type Contacts []*Contact
