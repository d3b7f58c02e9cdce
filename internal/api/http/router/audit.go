package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/clinovahq/clinova_backend/internal/api/http/handler"
	"github.com/clinovahq/clinova_backend/pkg/authorize"
)

func (r *Router) registerAuditRoutes(
	api fiber.Router,
	h *handler.AuditHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	logs := api.Group("/audit-logs", authRequired, clinicHeader)

	logs.Get("/", requirePerm(authorize.ResourceAudit, authorize.ActionRead), h.List)
	logs.Get("/:id", requirePerm(authorize.ResourceAudit, authorize.ActionRead), h.Get)
}
