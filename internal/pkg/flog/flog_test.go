package flog

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const header = "X-Request-ID"

func newTestApp(buf *bytes.Buffer) *fiber.App {
	app := fiber.New()
	app.Use(Inject(zerolog.New(buf)))
	app.Use(RequestID("request_id", header))
	app.Use(Request("request"))
	app.Get("/ping", func(ctx *fiber.Ctx) error {
		With(ctx, func(c zerolog.Context) zerolog.Context {
			return c.Str("profileId", "p1")
		})
		InfoFrom(ctx).Msg("pong")
		return ctx.SendString("pong")
	})
	return app
}

func TestRequestIDIsGenerated(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)

	id := resp.Header.Get(header)
	_, err = xid.FromString(id)
	assert.NoError(t, err, "response should carry a valid xid")

	line := gjson.Parse(buf.String())
	assert.Equal(t, id, line.Get("request_id").String())
	assert.Equal(t, "GET /ping", line.Get("request").String())
	assert.Equal(t, "p1", line.Get("profileId").String())
}

func TestRequestIDFromHostIsKept(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&buf)
	sent := xid.New().String()

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(header, sent)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, sent, resp.Header.Get(header))

	req = httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set(header, "not-an-xid")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.NotEqual(t, "not-an-xid", resp.Header.Get(header))
}
