package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a per-clinic medical record. The code is assigned once at
// registration and never changes.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.String("code").
			MaxLen(20).
			Immutable().
			Comment("Clinic-facing patient code, e.g. P2025-00042"),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.Time("date_of_birth").
			Optional().
			Nillable(),

		field.Enum("gender").
			Values("male", "female", "other").
			Optional().
			Nillable(),

		field.String("phone").
			MaxLen(20),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.Text("address").
			Optional().
			Nillable(),

		field.String("emergency_contact_name").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("emergency_contact_phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("emergency_contact_relation").
			Optional().
			Nillable().
			MaxLen(50).
			Comment("e.g. spouse, parent, sibling"),

		field.String("blood_type").
			Optional().
			Nillable().
			MaxLen(5),

		field.JSON("allergies", []string{}).
			Optional(),

		field.JSON("chronic_conditions", []string{}).
			Optional(),

		field.JSON("current_medications", []string{}).
			Optional(),

		field.Text("family_history").
			Optional().
			Nillable(),

		field.String("insurance_provider").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("insurance_policy_number").
			Optional().
			Nillable().
			Sensitive().
			Comment("AES-256-GCM ciphertext, base64"),

		field.Time("insurance_expiry").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("active", "inactive").
			Default("active"),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("patients").
			Unique().
			Required().
			Field("clinic_id"),
		edge.To("visits", Visit.Type),
		edge.To("prescriptions", Prescription.Type),
		edge.To("invoices", Invoice.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "code").Unique(),
		index.Fields("clinic_id"),
		index.Fields("clinic_id", "phone"),
		index.Fields("clinic_id", "status"),
	}
}
