package app

import (
	"time"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
	"github.com/glentakahashi/spt-pityloot/internal/app/appcontext"
	"github.com/glentakahashi/spt-pityloot/internal/controller"
	"github.com/glentakahashi/spt-pityloot/internal/infra"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/logger"
	"github.com/glentakahashi/spt-pityloot/internal/repo"
	"github.com/glentakahashi/spt-pityloot/internal/server"
	"github.com/glentakahashi/spt-pityloot/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)
	log.Debug().
		Str("evt.name", "app.options").
		Stringer("env", ctx.Env).
		Msg("assembling application graph")

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures. Sentry and the tracer provider are installed by infra's own
		// fx#Invoke calls, which run before the server and controller modules below
		// because invokes are called in the order of their registration.
		infra.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	if ctx.Env == appcontext.EnvServer {
		baseOpts = append(baseOpts,
			// Servers
			server.Module(),

			// Controllers
			controller.Module(),
		)
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
