package server

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/glentakahashi/spt-pityloot/internal/app"
	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/app/appcontext"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/bininfo"
)

func Run() {
	fxApp := app.New(appcontext.Declare(appcontext.EnvServer), fx.Invoke(run))

	if err := fxApp.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to start app")
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("received shutdown signal, stopping")
	if err := fxApp.Stop(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to stop app gracefully")
	}
}

func run(serviceApp *fiber.App, conf *appconfig.Config, lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", conf.ServiceAddress)
			if err != nil {
				return err
			}

			log.Info().
				Str("evt.name", "server.start").
				Str("address", conf.ServiceAddress).
				Str("version", bininfo.Version).
				Msg("pity loot engine listening")

			go func() {
				if err := serviceApp.Listener(ln); err != nil {
					log.Error().Err(err).Msg("server terminated unexpectedly")
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if conf.DevMode {
				return nil
			}
			return serviceApp.ShutdownWithContext(ctx)
		},
	})
}
