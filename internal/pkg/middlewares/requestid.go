package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glentakahashi/spt-pityloot/internal/constant"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/flog"
)

// RequestID copies the request id assigned by the logger middleware into ctx.Locals.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFrom(c); ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
