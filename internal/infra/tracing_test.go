package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx/fxtest"

	"github.com/glentakahashi/spt-pityloot/internal/app/appconfig"
)

func TestTracingDisabledKeepsProvider(t *testing.T) {
	before := otel.GetTracerProvider()
	lc := fxtest.NewLifecycle(t)

	require.NoError(t, Tracing(&appconfig.Config{}, lc))
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestTracingStdoutExporter(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	lc := fxtest.NewLifecycle(t)
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		TracingEnabled:    true,
		TracingExporters:  []string{"stdout"},
		TracingSampleRate: 1,
	}}

	require.NoError(t, Tracing(conf, lc))
	_, ok := otel.GetTracerProvider().(*tracesdk.TracerProvider)
	assert.True(t, ok, "an sdk provider should be installed")

	lc.RequireStart()
	lc.RequireStop()
}

func TestTracingUnknownExporter(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	conf := &appconfig.Config{ConfigSpec: appconfig.ConfigSpec{
		TracingEnabled:   true,
		TracingExporters: []string{"zipkin"},
	}}

	err := Tracing(conf, lc)
	assert.ErrorContains(t, err, "unknown exporter")
}
