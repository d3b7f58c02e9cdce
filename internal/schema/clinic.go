package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Clinic is the tenant. Every clinical record is scoped to exactly one clinic.
type Clinic struct {
	ent.Schema
}

func (Clinic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Clinic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255),

		field.String("address").
			Optional().
			Nillable(),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.Bool("is_active").
			Default(true),
	}
}

func (Clinic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("members", ClinicMember.Type),
		edge.To("patients", Patient.Type),
	}
}
