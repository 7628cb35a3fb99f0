package appconfig

import (
	"time"

	"github.com/glentakahashi/spt-pityloot/internal/app/appcontext"
	"github.com/glentakahashi/spt-pityloot/internal/model"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving host events.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// DataDir is the directory holding the durable tracker record.
	DataDir string `required:"true" split_words:"true" default:"data"`

	// TuningPath is the YAML file holding the engine tuning. A missing file means defaults.
	TuningPath string `split_words:"true" default:"config/tuning.yaml"`

	// LogDir is the directory the rotating log file is written to.
	LogDir string `split_words:"true" default:"logs"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// DevMode to indicate development mode. When true, the program logs at trace level and
	// provides a more contextual message when encountered a panic.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporters to indicate which exporters to use for tracing.
	// Valid values are: jaeger, otlp, stdout (for debug).
	TracingExporters []string `split_words:"true" default:"otlp"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// RedisURL is the URL of an optional Redis server. When set, writes to the tracker record are
	// additionally guarded by a distributed lock, so several processes may share one DataDir.
	// See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL for the URL format.
	RedisURL string `split_words:"true"`

	// NatsURL is the URL of an optional NATS server recalculation summaries are published to.
	// See https://pkg.go.dev/github.com/nats-io/nats.go#Connect for the URL format.
	NatsURL string `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// HTTPBodyLimit is the maximum accepted request body in bytes. Session start requests carry
	// every location table and are large.
	HTTPBodyLimit int `split_words:"true" default:"268435456"`

	// SessionTTL is how long a captured session is kept without events. Zero keeps sessions until deleted.
	SessionTTL time.Duration `split_words:"true" default:"12h"`

	// TrackerCacheTTL is how long the tracker record read from disk is served from memory.
	TrackerCacheTTL time.Duration `split_words:"true" default:"5m"`

	// LockTimeout bounds how long a writer waits for the tracker record lock.
	LockTimeout time.Duration `split_words:"true" default:"10s"`

	// RewriteConcurrency limits how many locations are rewritten at once. Zero means no limit.
	RewriteConcurrency int `split_words:"true" default:"4"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx

	// Tuning is the engine tuning loaded from TuningPath.
	Tuning model.Settings
}
