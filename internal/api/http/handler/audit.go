package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/clinovahq/clinova_backend/internal/service/audit"
)

type AuditHandler struct {
	svc audit.Service
}

func NewAuditHandler(svc audit.Service) *AuditHandler {
	return &AuditHandler{svc: svc}
}

func mapAuditError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, audit.ErrLogNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /audit-logs
func (h *AuditHandler) List(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	var q struct {
		Page       int    `query:"page"`
		PerPage    int    `query:"limit"`
		ActorID    string `query:"actor_id"`
		EntityType string `query:"entity_type"`
		EntityID   string `query:"entity_id"`
		Action     string `query:"action"`
		From       string `query:"from"`
		To         string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	req := audit.SearchRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.ActorID != "" {
		id, err := uuid.Parse(q.ActorID)
		if err != nil {
			return badRequest(c, "invalid actor_id")
		}
		req.ActorID = &id
	}
	if q.EntityID != "" {
		id, err := uuid.Parse(q.EntityID)
		if err != nil {
			return badRequest(c, "invalid entity_id")
		}
		req.EntityID = &id
	}
	if q.EntityType != "" {
		req.EntityType = &q.EntityType
	}
	if q.Action != "" {
		req.Action = &q.Action
	}
	from, okFrom := parseTimeParam(q.From)
	if !okFrom {
		return badRequest(c, "invalid from date")
	}
	req.From = from
	to, okTo := parseTimeParam(q.To)
	if !okTo {
		return badRequest(c, "invalid to date")
	}
	req.To = to

	result, err := h.svc.Search(c.Context(), clinicID, req)
	if err != nil {
		return mapAuditError(c, err)
	}

	return paged(c, result)
}

// GET /audit-logs/:id
func (h *AuditHandler) Get(c fiber.Ctx) error {
	clinicID, valid := clinicIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing clinic context")
	}

	logID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid log id")
	}

	entry, err := h.svc.GetByID(c.Context(), clinicID, logID)
	if err != nil {
		return mapAuditError(c, err)
	}

	return ok(c, entry)
}
