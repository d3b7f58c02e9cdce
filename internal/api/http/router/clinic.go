package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/clinovahq/clinova_backend/internal/api/http/handler"
	"github.com/clinovahq/clinova_backend/pkg/authorize"
)

func (r *Router) registerClinicRoutes(
	api fiber.Router,
	h *handler.ClinicHandler,
	authRequired fiber.Handler,
	clinicCtx fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	clinics := api.Group("/clinics", authRequired)

	clinics.Get("/", h.List)
	clinics.Post("/", h.Create)

	mgmt := clinics.Group("/:id", clinicCtx)
	mgmt.Get("/", h.Get)
	mgmt.Patch("/", requirePerm(authorize.ResourceClinic, authorize.ActionUpdate), h.Update)
	mgmt.Get("/members", h.ListMembers)
	mgmt.Get("/members/me", h.MyMembership)
	mgmt.Post("/members", requirePerm(authorize.ResourceClinicMember, authorize.ActionCreate), h.AddMember)
	mgmt.Get("/members/:mid", h.GetMember)
	mgmt.Patch("/members/:mid", requirePerm(authorize.ResourceClinicMember, authorize.ActionUpdate), h.UpdateMember)
	mgmt.Delete("/members/:mid", requirePerm(authorize.ResourceClinicMember, authorize.ActionDelete), h.RemoveMember)
}
