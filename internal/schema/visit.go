package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Visit is a clinical encounter. Once locked it is immutable.
type Visit struct {
	ent.Schema
}

func (Visit) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Visit) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("provider_id", uuid.UUID{}).
			Comment("FK → clinic_members.id (attending provider)"),

		field.String("visit_type").
			MaxLen(50).
			Default("consultation").
			Comment("Free-form, e.g. consultation, follow_up, emergency, procedure"),

		field.Time("visit_date"),

		field.Text("chief_complaint").
			Optional().
			Nillable(),

		// Vitals. All optional; range checks live in the visit service.
		field.Int("bp_systolic").
			Optional().
			Nillable(),

		field.Int("bp_diastolic").
			Optional().
			Nillable(),

		field.Int("heart_rate").
			Optional().
			Nillable(),

		field.Int("respiratory_rate").
			Optional().
			Nillable(),

		field.Float("temperature").
			Optional().
			Nillable().
			Comment("Celsius"),

		field.Int("oxygen_saturation").
			Optional().
			Nillable().
			Comment("SpO2 percent"),

		field.Float("weight").
			Optional().
			Nillable().
			Comment("Kilograms"),

		field.Float("height").
			Optional().
			Nillable().
			Comment("Centimeters"),

		field.Int("pain_scale").
			Optional().
			Nillable().
			Comment("0-10"),

		// SOAP note.
		field.Text("subjective").
			Optional().
			Nillable(),

		field.Text("objective").
			Optional().
			Nillable(),

		field.Text("assessment").
			Optional().
			Nillable(),

		field.Text("plan").
			Optional().
			Nillable(),

		field.String("primary_diagnosis").
			Optional().
			Nillable().
			MaxLen(500),

		field.JSON("secondary_diagnoses", []string{}).
			Optional(),

		field.JSON("icd10_codes", []string{}).
			Optional(),

		field.Time("follow_up_date").
			Optional().
			Nillable(),

		field.Text("follow_up_reason").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Bool("locked").
			Default(false),

		field.Time("locked_at").
			Optional().
			Nillable(),

		field.UUID("locked_by", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

func (Visit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("visits").
			Unique().
			Required().
			Field("patient_id"),
		edge.To("prescriptions", Prescription.Type),
	}
}

func (Visit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id"),
		index.Fields("clinic_id", "patient_id"),
		index.Fields("clinic_id", "provider_id"),
		index.Fields("clinic_id", "visit_date"),
	}
}
