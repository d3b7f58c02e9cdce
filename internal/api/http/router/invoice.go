package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/clinovahq/clinova_backend/internal/api/http/handler"
	"github.com/clinovahq/clinova_backend/pkg/authorize"
)

func (r *Router) registerInvoiceRoutes(
	api fiber.Router,
	h *handler.InvoiceHandler,
	authRequired fiber.Handler,
	clinicHeader fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	invoices := api.Group("/invoices", authRequired, clinicHeader)

	invoices.Get("/", requirePerm(authorize.ResourceInvoice, authorize.ActionRead), h.List)
	invoices.Post("/", requirePerm(authorize.ResourceInvoice, authorize.ActionCreate), h.Create)

	one := invoices.Group("/:id")
	one.Get("/", requirePerm(authorize.ResourceInvoice, authorize.ActionRead), h.Get)
	one.Patch("/", requirePerm(authorize.ResourceInvoice, authorize.ActionUpdate), h.Update)
	one.Post("/discount", requirePerm(authorize.ResourceInvoice, authorize.ActionUpdate), h.ApplyDiscount)
	one.Post("/payments", requirePerm(authorize.ResourcePayment, authorize.ActionCreate), h.RecordPayment)
	one.Post("/refunds", requirePerm(authorize.ResourceRefund, authorize.ActionCreate), h.RecordRefund)
}
