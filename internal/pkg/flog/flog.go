// Package flog carries a per-request zerolog logger through fiber handlers.
package flog

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
)

type idKey struct{}

// From is the logger of the request. Requests that did not pass Inject get the
// disabled logger.
func From(ctx *fiber.Ctx) *zerolog.Logger {
	return zerolog.Ctx(ctx.UserContext())
}

func DebugFrom(ctx *fiber.Ctx) *zerolog.Event {
	return From(ctx).Debug()
}

func InfoFrom(ctx *fiber.Ctx) *zerolog.Event {
	return From(ctx).Info()
}

// Inject gives every request its own copy of base, so that fields added later with
// UpdateContext stay local to the request.
func Inject(base zerolog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		l := base.With().Logger()
		ctx.SetUserContext(l.WithContext(ctx.UserContext()))
		return ctx.Next()
	}
}

// RequestID assigns the request an xid. A well-formed id sent by the host in header is
// kept so that host and engine log lines can be joined. The id is logged under
// fieldKey and echoed back in header.
func RequestID(fieldKey, header string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := xid.FromString(ctx.Get(header))
		if err != nil {
			id = xid.New()
		}
		ctx.SetUserContext(context.WithValue(ctx.UserContext(), idKey{}, id))

		With(ctx, func(c zerolog.Context) zerolog.Context {
			return c.Str(fieldKey, id.String())
		})
		ctx.Set(header, id.String())
		return ctx.Next()
	}
}

// IDFrom returns the id assigned by RequestID.
func IDFrom(ctx *fiber.Ctx) (xid.ID, bool) {
	id, ok := ctx.UserContext().Value(idKey{}).(xid.ID)
	return id, ok
}

// Request logs the method and path under fieldKey.
func Request(fieldKey string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		With(ctx, func(c zerolog.Context) zerolog.Context {
			return c.Str(fieldKey, ctx.Method()+" "+ctx.Path())
		})
		return ctx.Next()
	}
}

// Access calls f once the rest of the chain has run.
func Access(f func(ctx *fiber.Ctx, duration time.Duration)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		f(ctx, time.Since(start))
		return err
	}
}

// With adds fields to the request logger for the rest of the request.
func With(ctx *fiber.Ctx, fields func(c zerolog.Context) zerolog.Context) {
	From(ctx).UpdateContext(fields)
}
