package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/glentakahashi/spt-pityloot/internal/app"
	"github.com/glentakahashi/spt-pityloot/internal/app/appcontext"
)

func Start(module fx.Option) error {
	return app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}

// Deps builds the CLI dependency graph and populates T from it.
func Deps[T any]() (T, error) {
	var deps T
	err := Start(fx.Populate(&deps))
	return deps, err
}
