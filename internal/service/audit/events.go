package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/clinovahq/clinova_backend/pkg/reqctx"
)

// Subjects follow "clinova.audit.<entity_type>". The persist worker
// subscribes to "clinova.audit.>" and writes events to the audit_logs table.
const SubjectPrefix = "clinova.audit."

// Entity types used in audit subjects and rows.
const (
	EntityUser         = "user"
	EntityClinic       = "clinic"
	EntityClinicMember = "clinic_member"
	EntityPatient      = "patient"
	EntityVisit        = "visit"
	EntityPrescription = "prescription"
	EntityInvoice      = "invoice"
	EntityPayment      = "payment"
	EntityRefund       = "refund"
)

// Event is a single audit record published over NATS.
type Event struct {
	ClinicID   *uuid.UUID     `json:"clinic_id,omitempty"`
	ActorID    uuid.UUID      `json:"actor_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   uuid.UUID      `json:"entity_id"`
	Changes    map[string]any `json:"changes,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// redactedFields are never written to the audit trail in clear text.
var redactedFields = map[string]struct{}{
	"password":                {},
	"password_hash":           {},
	"refresh_token":           {},
	"refresh_token_hash":      {},
	"insurance_policy_number": {},
}

// Redact replaces sensitive change values with a placeholder.
func Redact(changes map[string]any) map[string]any {
	if changes == nil {
		return nil
	}
	out := make(map[string]any, len(changes))
	for k, v := range changes {
		if _, ok := redactedFields[k]; ok {
			out[k] = "[redacted]"
			continue
		}
		out[k] = v
	}
	return out
}

// Publisher emits audit events on NATS. Publishing is best effort; a nil
// connection or a publish failure never blocks the business operation.
type Publisher struct {
	nc *nats.Conn
}

func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

// Publish sends the event on the subject for its entity type. Changes are
// redacted before leaving the process, and the request ID is taken from the
// context when the caller did not set one.
func (p *Publisher) Publish(ctx context.Context, ev Event) {
	if p == nil || p.nc == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	if ev.RequestID == "" {
		if meta, ok := reqctx.RequestMetaFromContext(ctx); ok {
			ev.RequestID = meta.RequestID
		}
	}
	ev.Changes = Redact(ev.Changes)

	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_ = p.nc.Publish(fmt.Sprintf("%s%s", SubjectPrefix, ev.EntityType), payload)
}
