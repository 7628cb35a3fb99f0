package cachectrl

import (
	"github.com/gofiber/fiber/v2"
)

// OptOut marks the response as never cacheable.
func OptOut(ctx *fiber.Ctx) {
	ctx.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	ctx.Set("Pragma", "no-cache")
	ctx.Set("Expires", "0")
}
