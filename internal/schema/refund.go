package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Refund is an append-only record of money returned against an invoice.
type Refund struct {
	ent.Schema
}

func (Refund) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Refund) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("invoice_id", uuid.UUID{}),

		field.Int64("amount").
			Comment("Cents, always positive"),

		field.Text("reason"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.UUID("refunded_by", uuid.UUID{}).
			Comment("FK → clinic_members.id"),
	}
}

func (Refund) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("refunds").
			Unique().
			Required().
			Field("invoice_id"),
	}
}

func (Refund) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
	}
}
