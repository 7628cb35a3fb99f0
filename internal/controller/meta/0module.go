package meta

import (
	"go.uber.org/fx"
)

// Module registers the unversioned endpoints under /api.
func Module() fx.Option {
	return fx.Module("controller.meta", fx.Invoke(RegisterMeta))
}
