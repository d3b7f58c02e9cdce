package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/clinovahq/clinova_backend/internal/api/http/handler"
	"github.com/clinovahq/clinova_backend/pkg/authorize"
)

func (r *Router) registerPrescriptionRoutes(
	api fiber.Router,
	h *handler.PrescriptionHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	rx := api.Group("/prescriptions", authRequired, clinicHeader)

	rx.Get("/", requirePerm(authorize.ResourcePrescription, authorize.ActionRead), h.List)
	rx.Post("/", requirePerm(authorize.ResourcePrescription, authorize.ActionCreate), h.Create)

	one := rx.Group("/:id")
	one.Get("/", requirePerm(authorize.ResourcePrescription, authorize.ActionRead), h.Get)
	one.Patch("/", requirePerm(authorize.ResourcePrescription, authorize.ActionUpdate), h.Update)
	one.Post("/discontinue", requirePerm(authorize.ResourcePrescription, authorize.ActionDiscontinue), h.Discontinue)
	one.Post("/complete", requirePerm(authorize.ResourcePrescription, authorize.ActionComplete), h.Complete)
}
