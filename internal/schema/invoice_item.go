package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// InvoiceItem is a single invoice line. The total is always recomputed
// server-side as quantity * unit_price.
type InvoiceItem struct {
	ent.Schema
}

func (InvoiceItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (InvoiceItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("invoice_id", uuid.UUID{}),

		field.String("description").
			MaxLen(500),

		field.Int("quantity"),

		field.Int64("unit_price").
			Comment("Cents"),

		field.Int64("total").
			Comment("quantity * unit_price, cents"),

		field.Int("position").
			Default(0).
			Comment("Line order within the invoice"),
	}
}

func (InvoiceItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("items").
			Unique().
			Required().
			Field("invoice_id"),
	}
}

func (InvoiceItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
	}
}
