package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Postback holds the schema definition for the Postback entity. It is an
// append-only log of registration and deposit events received or relayed
// server-to-server; the (click_id, goal) pair is the duplicate guard.
type Postback struct {
	ent.Schema
}

// Fields of the Postback.
func (Postback) Fields() []ent.Field {
	return []ent.Field{
		field.String("click_id").
			NotEmpty().
			Comment("Click identifier from the tracking platform"),
		field.Enum("goal").
			Values("registration", "deposit").
			Comment("Goal the event reports"),
		field.String("affiliate_id").
			Optional(),
		field.String("offer_id").
			Optional(),
		field.Float("amount").
			Default(0),
		field.Float("sale_amount").
			Optional(),
		field.String("status").
			Default("received"),
		field.String("sub1").
			Optional(),
		field.String("sub2").
			Optional(),
		field.String("sub3").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Postback.
func (Postback) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("click_id", "goal").
			Unique(),
		index.Fields("affiliate_id"),
		index.Fields("created_at"),
	}
}
