package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/aadarsh214/seogen/cmd/seogen/commands"
	"github.com/aadarsh214/seogen/internal/foundation/errors"
	"github.com/aadarsh214/seogen/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("seogen"),
		kong.Description("Programmatic SEO page generation and internal-linking engine"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}); err != nil {
		slog.Error("command failed", errors.LogFields(err)...)
		os.Exit(errors.ExitCode(err))
	}
}
