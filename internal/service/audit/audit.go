package audit

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/clinovahq/clinova_backend/internal/repo"
	entlog "github.com/clinovahq/clinova_backend/internal/repo/auditlog"
	"github.com/clinovahq/clinova_backend/internal/service/pagination"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SearchRequest struct {
	ActorID    *uuid.UUID
	EntityType *string
	EntityID   *uuid.UUID
	Action     *string
	From       *time.Time
	To         *time.Time
	Page       int
	PerPage    int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Record persists an event. Called by the NATS consumer, not by
	// request handlers.
	Record(ctx context.Context, ev Event) error
	Search(ctx context.Context, clinicID uuid.UUID, req SearchRequest) (*pagination.Result[*repo.AuditLog], error)
	GetByID(ctx context.Context, clinicID, logID uuid.UUID) (*repo.AuditLog, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type auditService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &auditService{db: db}
}

func (s *auditService) Record(ctx context.Context, ev Event) error {
	c := s.db.AuditLog.Create().
		SetActorID(ev.ActorID).
		SetAction(ev.Action).
		SetEntityType(ev.EntityType).
		SetEntityID(ev.EntityID)

	if ev.ClinicID != nil {
		c = c.SetClinicID(*ev.ClinicID)
	}
	if ev.Changes != nil {
		c = c.SetChanges(ev.Changes)
	}
	if ev.RequestID != "" {
		c = c.SetRequestID(ev.RequestID)
	}
	if !ev.OccurredAt.IsZero() {
		c = c.SetCreatedAt(ev.OccurredAt)
	}

	if err := c.Exec(ctx); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}

func (s *auditService) Search(ctx context.Context, clinicID uuid.UUID, req SearchRequest) (*pagination.Result[*repo.AuditLog], error) {
	page, perPage, offset := pagination.Clamp(req.Page, req.PerPage)

	q := s.db.AuditLog.Query().
		Where(entlog.ClinicID(clinicID))

	if req.ActorID != nil {
		q = q.Where(entlog.ActorID(*req.ActorID))
	}
	if req.EntityType != nil {
		q = q.Where(entlog.EntityType(*req.EntityType))
	}
	if req.EntityID != nil {
		q = q.Where(entlog.EntityID(*req.EntityID))
	}
	if req.Action != nil {
		q = q.Where(entlog.Action(*req.Action))
	}
	if req.From != nil {
		q = q.Where(entlog.CreatedAtGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entlog.CreatedAtLT(*req.To))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count audit logs: %w", err)
	}

	logs, err := q.
		Order(entlog.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}

	return pagination.New(logs, total, page, perPage), nil
}

func (s *auditService) GetByID(ctx context.Context, clinicID, logID uuid.UUID) (*repo.AuditLog, error) {
	l, err := s.db.AuditLog.Query().
		Where(entlog.ID(logID), entlog.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("get audit log: %w", err)
	}
	return l, nil
}
