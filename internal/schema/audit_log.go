package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// AuditLog is an append-only trail of mutating operations. Rows are written
// by the audit worker from NATS events and never updated or deleted.
type AuditLog struct {
	ent.Schema
}

func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("clinic_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Nil for platform-level actions"),

		field.UUID("actor_id", uuid.UUID{}),

		field.String("action").
			MaxLen(50).
			Comment("e.g. create, update, delete, lock, discontinue"),

		field.String("entity_type").
			MaxLen(50),

		field.UUID("entity_id", uuid.UUID{}),

		field.JSON("changes", map[string]any{}).
			Optional().
			Comment("Redacted snapshot of the change"),

		field.String("request_id").
			Optional().
			Nillable().
			MaxLen(64),
	}
}

func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "created_at"),
		index.Fields("actor_id"),
		index.Fields("entity_type", "entity_id"),
	}
}
