package server

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "serve host events over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Aliases: []string{"a"},
				Usage:   "listen address, overriding PITYLOOT_SERVICE_ADDRESS",
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "tracker record directory, overriding PITYLOOT_DATA_DIR",
			},
		},
		Action: func(c *cli.Context) error {
			// configuration is read from the environment when the fx graph is assembled
			for flag, env := range map[string]string{
				"address":  "PITYLOOT_SERVICE_ADDRESS",
				"data-dir": "PITYLOOT_DATA_DIR",
			} {
				if v := c.String(flag); v != "" {
					if err := os.Setenv(env, v); err != nil {
						return errors.Wrapf(err, "failed to apply --%s", flag)
					}
				}
			}
			Run()
			return nil
		},
	}
}
