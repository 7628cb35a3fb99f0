package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/glentakahashi/spt-pityloot/internal/model"
	"github.com/glentakahashi/spt-pityloot/internal/model/types"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/cachectrl"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/flog"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/middlewares"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/plerr"
	"github.com/glentakahashi/spt-pityloot/internal/server/svr"
	"github.com/glentakahashi/spt-pityloot/internal/service"
	"github.com/glentakahashi/spt-pityloot/internal/util/rekuest"
)

type Session struct {
	fx.In

	SessionService       *service.Session
	RecalculationService *service.Recalculation
}

func RegisterSession(v1 *svr.V1, c Session) {
	v1.Post("/sessions", c.StartSession)
	v1.Post("/sessions/:profileId/events", c.HandleEvent)
	v1.Delete("/sessions/:profileId", c.EndSession)
}

// StartSession captures the untouched host tables as the session baseline and runs the
// first recalculation against them.
func (c *Session) StartSession(ctx *fiber.Ctx) error {
	var request types.SessionStartRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	middlewares.TagProfile(ctx, request.Profile.Info.ID)

	session, err := c.SessionService.Capture(&request)
	if err != nil {
		return err
	}

	result, err := c.RecalculationService.Recalculate(ctx.UserContext(), session, request.Profile, types.EventSessionStart, false)
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(response(session, result))
}

func (c *Session) HandleEvent(ctx *fiber.Ctx) error {
	profileID := ctx.Params("profileId")
	if err := rekuest.ValidProfileID(profileID); err != nil {
		return err
	}
	middlewares.TagProfile(ctx, profileID)

	var request types.SessionEventRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	if request.Profile.Info.ID != profileID {
		return plerr.ErrInvalidReq.Msg("profile id %q does not match the session %q", request.Profile.Info.ID, profileID)
	}

	session, err := c.SessionService.Get(profileID)
	if err != nil {
		return err
	}

	flog.DebugFrom(ctx).
		Str("evt.name", "session.event").
		Str("event", string(request.Event)).
		Bool("isScav", request.IsScav).
		Msg("received session event")

	result, err := c.RecalculationService.Recalculate(ctx.UserContext(), session, request.Profile, request.Event, request.IsScav)
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	return ctx.JSON(response(session, result))
}

func (c *Session) EndSession(ctx *fiber.Ctx) error {
	profileID := ctx.Params("profileId")
	if err := rekuest.ValidProfileID(profileID); err != nil {
		return err
	}

	c.SessionService.Delete(profileID)
	return ctx.SendStatus(fiber.StatusNoContent)
}

func response(session *model.Session, result *model.RecalculationResult) *types.RecalculationResponse {
	return &types.RecalculationResponse{
		PassID:                 result.PassID,
		ProfileID:              result.ProfileID,
		Fingerprint:            session.Fingerprint,
		Locations:              result.Locations,
		Bots:                   result.Bots,
		IncompleteRequirements: result.IncompleteRequirements,
		Multipliers:            result.Multipliers,
	}
}
