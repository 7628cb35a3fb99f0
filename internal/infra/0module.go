package infra

import "go.uber.org/fx"

// Module provides the optional backends and installs the process-wide reporters.
// Redis, RedSync and NATS resolve to nil when they are not configured.
func Module() fx.Option {
	return fx.Module("infra",
		fx.Provide(
			NATS,
			Redis,
			RedSync,
		),
		fx.Invoke(
			SentryInit,
			Tracing,
		),
	)
}
