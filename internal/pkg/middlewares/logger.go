package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/glentakahashi/spt-pityloot/internal/constant"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/flog"
)

// Logger installs the per-request logger, the request id and the access log.
func Logger(app *fiber.App) {
	for _, h := range []fiber.Handler{
		flog.Inject(log.With().Str("component", "http").Logger()),
		flog.RequestID("request_id", constant.RequestIDHeader),
		flog.Request("request"),
		accessLog(),
	} {
		app.Use(h)
	}
}

func accessLog() fiber.Handler {
	return flog.Access(func(ctx *fiber.Ctx, duration time.Duration) {
		status := ctx.Response().StatusCode()
		evt := flog.InfoFrom(ctx)
		if status >= fiber.StatusInternalServerError {
			evt = flog.From(ctx).Error()
		}
		evt.
			Str("evt.name", "http.request").
			Int("status", status).
			Int("size", len(ctx.Response().Body())).
			Dur("duration", duration).
			Msg("handled request")
	})
}
