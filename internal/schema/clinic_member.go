package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ClinicMember links a user to a clinic with a staff role.
type ClinicMember struct {
	ent.Schema
}

func (ClinicMember) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ClinicMember) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}),

		field.UUID("user_id", uuid.UUID{}),

		field.Enum("role").
			Values("admin", "doctor", "nurse", "receptionist"),

		field.String("title").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("Display title, e.g. General Practitioner"),

		field.String("license_number").
			Optional().
			Nillable().
			MaxLen(50),

		field.Bool("is_active").
			Default(true),
	}
}

func (ClinicMember) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("members").
			Unique().
			Required().
			Field("clinic_id"),
		edge.From("user", User.Type).
			Ref("memberships").
			Unique().
			Required().
			Field("user_id"),
	}
}

func (ClinicMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "user_id").Unique(),
		index.Fields("user_id"),
	}
}
