package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Invoice is a billing document. All monetary fields are integer cents.
// Status is derived from the payment and refund sums, never set directly.
type Invoice struct {
	ent.Schema
}

func (Invoice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Comment("FK → clinics.id"),

		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("visit_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.String("number").
			MaxLen(20).
			Immutable().
			Comment("Clinic-facing invoice number, e.g. INV2025-00017"),

		field.Int64("subtotal").
			Comment("Sum of line totals, cents"),

		field.Int64("discount_amount").
			Default(0).
			Comment("Fixed discount, cents; zero when percent discount is used"),

		field.Float("discount_percent").
			Default(0).
			Comment("0-100; zero when fixed discount is used"),

		field.Text("discount_reason").
			Optional().
			Nillable(),

		field.Float("tax_rate").
			Default(0).
			Comment("Percent, 0-100"),

		field.Int64("discount").
			Default(0).
			Comment("Effective discount applied, cents"),

		field.Int64("tax_amount").
			Default(0).
			Comment("Cents"),

		field.Int64("grand_total").
			Comment("Cents"),

		field.Enum("status").
			Values("unpaid", "partially_paid", "paid", "refunded").
			Default("unpaid"),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("invoices").
			Unique().
			Required().
			Field("patient_id"),
		edge.To("items", InvoiceItem.Type),
		edge.To("payments", Payment.Type),
		edge.To("refunds", Refund.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "number").Unique(),
		index.Fields("clinic_id"),
		index.Fields("clinic_id", "patient_id"),
		index.Fields("clinic_id", "status"),
		index.Fields("visit_id"),
	}
}
