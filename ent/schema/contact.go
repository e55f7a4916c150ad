package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contact holds the schema definition for the Contact entity.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("Contact email, one contact per email"),
		field.String("name").
			Optional().
			Comment("Contact name"),
		field.String("company").
			Optional().
			Comment("Company or brand name"),
		field.Enum("type").
			Values("affiliate", "publisher", "advertiser", "influencer", "media_buyer", "agency", "user").
			Comment("Partner type declared on the form"),
		field.Enum("status").
			Values("new", "contacted", "qualified", "rejected").
			Default("new").
			Comment("Pipeline status set by admins"),
		field.Enum("affiliate_status").
			Values("pending", "approved", "rejected").
			Default("pending").
			Comment("Affiliate application status"),
		field.String("messenger").
			Optional().
			Comment("Preferred messenger (telegram, skype, ...)"),
		field.String("username").
			Optional().
			Comment("Messenger username"),
		field.Text("message").
			Optional().
			Comment("Free-form message from the form"),
		field.Text("notes").
			Optional().
			Comment("Internal admin notes"),

		// Tracking fields
		field.String("affiliate_id").
			Optional().
			Comment("Affiliate identifier on the tracking platform"),
		field.String("url_id").
			Optional().
			Comment("Offer URL identifier"),
		field.String("sub1").
			Optional().
			Comment("Affiliate sub parameter, usually the click id"),
		field.String("sub2").
			Optional(),
		field.String("sub3").
			Optional(),
		field.String("campaign_id").
			Optional(),
		field.String("tracking_source").
			Optional().
			Comment("Where the submission came from (contact_form, landing, ...)"),
		field.String("tracking_link").
			Optional().
			Comment("Offer link generated for this contact"),

		// Outcome of the registration pipeline
		field.Bool("affiliate_registered").
			Default(false).
			Comment("Registration goal was accepted by the tracking platform"),
		field.String("affiliate_error").
			Optional().
			Comment("Last error returned by the tracking platform"),

		// First-time-deposit state
		field.Bool("ftd").
			Default(false).
			Comment("Contact completed a first deposit"),
		field.Float("ftd_amount").
			Optional().
			Comment("First deposit amount"),
		field.Time("ftd_date").
			Optional().
			Nillable().
			Comment("When the first deposit was recorded"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
		index.Fields("status"),
		index.Fields("affiliate_id"),
		index.Fields("sub1"),
		index.Fields("created_at"),
	}
}
