package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/glentakahashi/spt-pityloot/cmd/app/cli/recalc"
	"github.com/glentakahashi/spt-pityloot/cmd/app/cli/tracker"
	"github.com/glentakahashi/spt-pityloot/cmd/app/server"
	"github.com/glentakahashi/spt-pityloot/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "pityloot",
		Description: "Pity loot engine for SPT. Raises the drop weight of items a profile still needs the longer it goes without finding them. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			recalc.Command(),
			tracker.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
