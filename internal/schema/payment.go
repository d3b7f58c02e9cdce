package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Payment is an append-only record of money received against an invoice.
type Payment struct {
	ent.Schema
}

func (Payment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (Payment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("invoice_id", uuid.UUID{}),

		field.Int64("amount").
			Comment("Cents, always positive"),

		field.Enum("method").
			Values("cash", "card", "mobile", "bank_transfer", "check", "insurance"),

		field.String("receipt_no").
			Optional().
			Nillable().
			MaxLen(100),

		field.Text("notes").
			Optional().
			Nillable(),

		field.UUID("received_by", uuid.UUID{}).
			Comment("FK → clinic_members.id"),
	}
}

func (Payment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("payments").
			Unique().
			Required().
			Field("invoice_id"),
	}
}

func (Payment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
	}
}
