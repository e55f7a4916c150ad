package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Admin holds the schema definition for the Admin entity. Sessions are
// opaque bearer tokens; only the SHA-256 hash of the token is stored.
type Admin struct {
	ent.Schema
}

// Fields of the Admin.
func (Admin) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("password_hash").
			Sensitive().
			Comment("bcrypt hash of the password"),
		field.String("name").
			Default("Admin"),
		field.String("role").
			Default("admin"),
		field.String("token_hash").
			Optional().
			Sensitive().
			Comment("SHA-256 hash of the current session token"),
		field.Time("last_login").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
