package middlewares

import (
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/glentakahashi/spt-pityloot/internal/constant"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/flog"
)

// EnrichSentry tags the request's Sentry scope with the request id.
func EnrichSentry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(constant.SlimHeaderKey) != "" {
			return c.Next()
		}
		if hub := fibersentry.GetHubFromContext(c); hub != nil {
			if id, ok := c.Locals(constant.ContextKeyRequestID).(string); ok {
				hub.Scope().SetTag("request_id", id)
			}
		}
		return c.Next()
	}
}

// TagProfile attaches the profile being worked on to the request logger and to the
// request's Sentry scope, if any.
func TagProfile(c *fiber.Ctx, profileID string) {
	flog.With(c, func(zc zerolog.Context) zerolog.Context {
		return zc.Str("profileId", profileID)
	})
	if hub := fibersentry.GetHubFromContext(c); hub != nil {
		hub.Scope().SetTag("profile_id", profileID)
	}
}
