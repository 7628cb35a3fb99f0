package meta

import (
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/glentakahashi/spt-pityloot/internal/pkg/bininfo"
	"github.com/glentakahashi/spt-pityloot/internal/server/svr"
	"github.com/glentakahashi/spt-pityloot/internal/service"
)

type Meta struct {
	fx.In

	HealthService  *service.Health
	SessionService *service.Session
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	// cached for a second: a miss reads the tracker file and pings every backend
	meta.Get("/health", cache.New(cache.Config{
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
		"go":      runtime.Version(),
	})
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	if err := c.HealthService.Ping(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"status":         "ok",
		"activeSessions": c.SessionService.Count(),
	})
}
