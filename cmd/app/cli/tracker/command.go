package tracker

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/glentakahashi/spt-pityloot/cmd/app/cli"
	"github.com/glentakahashi/spt-pityloot/internal/repo"
	"github.com/glentakahashi/spt-pityloot/internal/service"
	"github.com/glentakahashi/spt-pityloot/internal/util/rekuest"
)

type CommandDeps struct {
	fx.In

	TrackerService *service.Tracker
	TrackerRepo    *repo.Tracker
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "tracker",
		Usage: "inspect the pity tracker record",
		Subcommands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "print the tracker of a profile, or the whole record without one",
				ArgsUsage: "[profileId]",
				Action: func(c *cli.Context) error {
					deps, err := cliapp.Deps[CommandDeps]()
					if err != nil {
						return err
					}
					return show(c, deps, c.Args().First())
				},
			},
			{
				Name:  "path",
				Usage: "print where the tracker record is stored",
				Action: func(c *cli.Context) error {
					deps, err := cliapp.Deps[CommandDeps]()
					if err != nil {
						return err
					}
					_, err = os.Stdout.WriteString(deps.TrackerRepo.Path() + "\n")
					return err
				},
			},
		},
	}
}

func show(c *cli.Context, deps CommandDeps, profileID string) error {
	var v any
	if profileID == "" {
		record, err := deps.TrackerRepo.Load(c.Context)
		if err != nil {
			return err
		}
		v = record
	} else {
		if err := rekuest.ValidProfileID(profileID); err != nil {
			return errors.Wrap(err, "invalid profile id")
		}
		tracker, err := deps.TrackerService.Get(c.Context, profileID)
		if err != nil {
			return err
		}
		v = tracker
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode tracker")
	}
	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
