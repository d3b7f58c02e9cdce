package http

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/clinovahq/clinova_backend/config"
	"github.com/clinovahq/clinova_backend/internal/api/http/router"
	"github.com/clinovahq/clinova_backend/internal/app"
)

func Start(cfg *config.Config, timeout time.Duration) {
	fx.New(
		fx.Supply(cfg),
		app.InfraModule,
		app.ServiceModule,
		app.WorkerModule,
		router.Module,
		Module, // the http.Module from server.go

		// Invoking *fiber.App forces its construction, which registers
		// the OnStart hook that actually listens.
		fx.Invoke(func(*fiber.App) {}),

		fx.StopTimeout(timeout),
	).Run()
}
