package recalc

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/glentakahashi/spt-pityloot/cmd/app/cli"
	"github.com/glentakahashi/spt-pityloot/internal/model/types"
	"github.com/glentakahashi/spt-pityloot/internal/service"
)

type CommandDeps struct {
	fx.In

	SessionService       *service.Session
	RecalculationService *service.Recalculation
}

func Command() *cli.Command {
	return &cli.Command{
		Name:      "recalc",
		Usage:     "run one recalculation pass over a session bundle",
		ArgsUsage: "<bundle.json>",
		Description: "Reads a session bundle (profile, locations, bots, quests and hideoutAreas, " +
			"as sent to POST /api/v1/sessions), runs the pipeline once and writes the rewritten tables.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "event",
				Aliases: []string{"e"},
				Usage:   "event to recalculate for: sessionStart, raidStart, raidEnd or inventoryChanged",
				Value:   string(types.EventSessionStart),
			},
			&cli.BoolFlag{
				Name:  "scav",
				Usage: "treat a raidEnd event as a scav raid",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "file to write the result to; stdout when empty",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("exactly one bundle path is required", 2)
			}
			deps, err := cliapp.Deps[CommandDeps]()
			if err != nil {
				return err
			}
			return run(c, deps, options{
				bundlePath: c.Args().First(),
				event:      types.EventKind(c.String("event")),
				isScav:     c.Bool("scav"),
				outputPath: c.String("output"),
			})
		},
	}
}
