package server

import (
	"go.uber.org/fx"

	"github.com/glentakahashi/spt-pityloot/internal/server/httpserver"
	"github.com/glentakahashi/spt-pityloot/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
