package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sheetsql/sheetsql/internal/config"

	nova_config_loader "github.com/init-pkg/nova/tools/config-loader"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

func coreOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			newConfig,
			newLogger,
			newFiberApp,
		),
		fx.Invoke(
			startServer,
		),
	)
}

func newConfig() *config.Config {
	return nova_config_loader.MustLoad[config.Config]()
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func newFiberApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName: "sheetsql",
	})
}

func startServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, log *slog.Logger) {
	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(addr); err != nil {
					log.Error("http server stopped", "error", err)
				}
			}()
			log.Info("http server listening", "addr", addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
