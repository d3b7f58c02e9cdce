package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a platform account. Clinic staff membership (and role) lives in
// ClinicMember; a user may belong to several clinics.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			MaxLen(255),

		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive(),

		field.String("first_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("last_name").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Bool("email_verified").
			Default(false),

		field.Enum("status").
			Values("active", "suspended").
			Default("active"),

		field.Int("failed_login_attempts").
			Default(0),

		field.Time("last_failed_login_at").
			Optional().
			Nillable(),

		field.Time("locked_until").
			Optional().
			Nillable(),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("memberships", ClinicMember.Type),
		edge.To("sessions", UserSession.Type),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
