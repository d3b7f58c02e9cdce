package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/clinovahq/clinova_backend/internal/api/http/handler"
	"github.com/clinovahq/clinova_backend/pkg/authorize"
)

func (r *Router) registerVisitRoutes(
	api fiber.Router,
	h *handler.VisitHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	visits := api.Group("/visits", authRequired, clinicHeader)

	visits.Get("/", requirePerm(authorize.ResourceVisit, authorize.ActionRead), h.List)
	visits.Post("/", requirePerm(authorize.ResourceVisit, authorize.ActionCreate), h.Create)

	v := visits.Group("/:id")
	v.Get("/", requirePerm(authorize.ResourceVisit, authorize.ActionRead), h.Get)
	v.Patch("/", requirePerm(authorize.ResourceVisit, authorize.ActionUpdate), h.Update)
	v.Post("/lock", requirePerm(authorize.ResourceVisit, authorize.ActionLock), h.Lock)
}
