package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/clinovahq/clinova_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, authRequired fiber.Handler) {
	group := api.Group("/auth")
	group.Post("/register", h.Register)
	group.Post("/verify-email", h.VerifyEmail)
	group.Post("/login", h.Login)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", authRequired, h.Logout)
	group.Post("/forgot-password", h.RequestPasswordReset)
	group.Post("/reset-password", h.ResetPassword)
	group.Post("/change-password", authRequired, h.ChangePassword)
	group.Get("/me", authRequired, h.Me)
	group.Patch("/me", authRequired, h.UpdateProfile)
}
