package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/glentakahashi/spt-pityloot/internal/pkg/cachectrl"
	"github.com/glentakahashi/spt-pityloot/internal/server/svr"
	"github.com/glentakahashi/spt-pityloot/internal/service"
	"github.com/glentakahashi/spt-pityloot/internal/util/rekuest"
)

type Tracker struct {
	fx.In

	TrackerService *service.Tracker
}

func RegisterTracker(v1 *svr.V1, c Tracker) {
	v1.Get("/trackers/:profileId", c.GetTracker)
}

func (c *Tracker) GetTracker(ctx *fiber.Ctx) error {
	profileID := ctx.Params("profileId")
	if err := rekuest.ValidProfileID(profileID); err != nil {
		return err
	}

	tracker, err := c.TrackerService.Get(ctx.UserContext(), profileID)
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(tracker)
}
