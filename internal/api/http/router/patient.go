package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/clinovahq/clinova_backend/internal/api/http/handler"
	"github.com/clinovahq/clinova_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	h *handler.PatientHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired, clinicHeader)

	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), h.Create)
	patients.Get("/stats", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.Stats)
	patients.Get("/code/:code", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.GetByCode)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionRead), h.Get)
	p.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), h.Update)
	p.Patch("/status", requirePerm(authorize.ResourcePatient, authorize.ActionUpdate), h.SetStatus)
	p.Delete("/", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), h.Delete)
	p.Post("/restore", requirePerm(authorize.ResourcePatient, authorize.ActionRestore), h.Restore)
}
