package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FTD holds the schema definition for the FTD (first-time deposit) entity.
// One row per click_id; a repeated click_id is acknowledged but not written.
type FTD struct {
	ent.Schema
}

// Fields of the FTD.
func (FTD) Fields() []ent.Field {
	return []ent.Field{
		field.String("click_id").
			Unique().
			NotEmpty(),
		field.String("affiliate_id").
			Optional(),
		field.String("offer_id").
			Optional(),
		field.Float("amount").
			Comment("Deposit amount"),
		field.Float("sale_amount").
			Optional(),
		field.String("status").
			Default("received"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the FTD.
func (FTD) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("affiliate_id"),
		index.Fields("created_at"),
	}
}
