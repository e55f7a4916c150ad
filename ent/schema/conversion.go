package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversion holds the schema definition for the Conversion entity, the
// canonical record of a tracked goal event. The (click_id, goal_id) pair
// is unique; status reflects the outcome of the outbound postback.
type Conversion struct {
	ent.Schema
}

// Fields of the Conversion.
func (Conversion) Fields() []ent.Field {
	return []ent.Field{
		field.String("click_id").
			NotEmpty(),
		field.String("goal_id").
			NotEmpty().
			Comment("Goal identifier on the tracking platform (5 registration, 6 deposit)"),
		field.Enum("goal_type").
			Values("registration", "deposit", "other"),
		field.String("affiliate_id").
			Optional(),
		field.String("offer_id").
			Optional(),
		field.Float("amount").
			Default(0),
		field.Float("sale_amount").
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending").
			Comment("approved when the tracking platform accepted the postback"),

		// Affiliate sub parameters
		field.String("sub1").
			Optional(),
		field.String("sub2").
			Optional(),
		field.String("sub3").
			Optional(),
		field.String("sub4").
			Optional(),
		field.String("sub5").
			Optional(),

		// Device and geo attribution
		field.Text("user_agent").
			Optional(),
		field.String("ip_address").
			Optional(),
		field.String("country").
			Optional(),
		field.String("region").
			Optional(),
		field.String("source").
			Optional(),
		field.String("platform").
			Optional(),
		field.String("browser").
			Optional(),
		field.String("os").
			Optional(),
		field.String("os_version").
			Optional(),
		field.String("manufacturer").
			Optional(),
		field.String("device_type").
			Optional().
			Comment("desktop, mobile or tablet"),
		field.Bool("is_test").
			Default(false),

		// Alternative identifiers
		field.String("click_hash").
			Optional().
			Comment("Click hash when the event came through the open API"),
		field.String("advertiser_id").
			Optional(),
		field.String("offer_url_id").
			Optional(),
		field.String("affiliate_source").
			Optional(),

		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Free-form payload, includes the raw postback response"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Conversion.
func (Conversion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("click_id", "goal_id").
			Unique(),
		index.Fields("affiliate_id"),
		index.Fields("goal_type"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
