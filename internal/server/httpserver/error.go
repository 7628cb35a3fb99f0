package httpserver

import (
	"strconv"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/glentakahashi/spt-pityloot/internal/constant"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/plerr"
)

func handleCustomError(ctx *fiber.Ctx, e *plerr.PityError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

// AsPityError finds the first *plerr.PityError in the chain of err.
func AsPityError(err error) (*plerr.PityError, bool) {
	var pe *plerr.PityError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	if e, ok := AsPityError(err); ok {
		return handleCustomError(ctx, e)
	}

	// Default 500 statuscode
	re := *plerr.ErrInternalError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		// Overwrite status code if fiber.Error type & provided code
		re.StatusCode = fe.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = fe.Message
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if re.StatusCode >= fiber.StatusInternalServerError {
		if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
			hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
			if id, ok := ctx.Locals(constant.ContextKeyRequestID).(string); ok {
				hub.Scope().SetTag("request_id", id)
			}
			hub.CaptureException(err)
		}
	}

	return handleCustomError(ctx, &re)
}
