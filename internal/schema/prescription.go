package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Prescription is a medication order. Status moves active → discontinued or
// active → completed, one way only.
type Prescription struct {
	ent.Schema
}

func (Prescription) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Prescription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("visit_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Visit the prescription was written during, if any"),

		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → clinic_members.id (prescriber)"),

		field.String("medication_name").
			MaxLen(255),

		field.String("generic_name").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("brand_name").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("dosage").
			MaxLen(100).
			Comment("e.g. 500mg"),

		field.String("frequency").
			MaxLen(100).
			Comment("e.g. twice daily"),

		field.String("route").
			MaxLen(50).
			Comment("Free-form, e.g. oral, topical, IV"),

		field.String("duration").
			MaxLen(100).
			Comment("e.g. 7 days"),

		field.Int("quantity"),

		field.Int("refills").
			Default(0).
			Min(0).
			Max(12),

		field.Text("instructions").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("active", "discontinued", "completed").
			Default("active"),

		field.Text("discontinued_reason").
			Optional().
			Nillable(),

		field.Time("discontinued_at").
			Optional().
			Nillable(),
	}
}

func (Prescription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("prescriptions").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("visit", Visit.Type).
			Ref("prescriptions").
			Unique().
			Field("visit_id"),
	}
}

func (Prescription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
		index.Fields("clinic_id", "patient_id"),
		index.Fields("clinic_id", "status"),
		index.Fields("visit_id"),
	}
}
