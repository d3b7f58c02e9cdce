package logs

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/grafana/loki-client-go/loki"
	slogloki "github.com/samber/slog-loki/v3"

	"github.com/clinovahq/clinova_backend/config"
)

// newLokiHandler builds a slog handler that ships log records to Loki's
// push API in the background.
func newLokiHandler(cfg *config.Config, level slog.Level) (slog.Handler, error) {
	pushURL, err := url.Parse(cfg.Logging.Output.Loki.Endpoint + "/loki/api/v1/push")
	if err != nil {
		return nil, fmt.Errorf("parse loki endpoint: %w", err)
	}
	if cfg.Logging.Output.Loki.Username != "" {
		pushURL.User = url.UserPassword(cfg.Logging.Output.Loki.Username, cfg.Logging.Output.Loki.Password)
	}

	lokiCfg, err := loki.NewDefaultConfig(pushURL.String())
	if err != nil {
		return nil, fmt.Errorf("loki config: %w", err)
	}

	client, err := loki.New(lokiCfg)
	if err != nil {
		return nil, fmt.Errorf("loki client: %w", err)
	}

	h := slogloki.Option{
		Level:  level,
		Client: client,
	}.NewLokiHandler()

	return h.WithAttrs([]slog.Attr{
		slog.String("service", cfg.Observability.ServiceName),
		slog.String("env", cfg.Server.Environment),
	}), nil
}
