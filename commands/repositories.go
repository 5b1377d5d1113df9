package commands // import "code.cloudfoundry.org/regscan/commands"

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/regscan/inventory"
	errorspkg "github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var RepositoriesCommand = cli.Command{
	Name:        "repositories",
	Usage:       "repositories --registry <url>",
	Description: "Lists the repositories a scan would inventory",

	Flags: append(registryFlags(), filterFlags()...),

	Action: func(ctx *cli.Context) error {
		logger := ctx.App.Metadata["logger"].(lager.Logger)
		logger = logger.Session("repositories")

		if ctx.NArg() != 0 {
			logger.Error("parsing-command", errorspkg.New("invalid arguments"), lager.Data{"args": ctx.Args().Slice()})
			return cli.Exit(fmt.Sprintf("invalid arguments - usage: %s", ctx.Command.Usage), 1)
		}

		cfg, err := buildConfig(ctx)
		logger.Debug("repositories-config", lager.Data{"currentConfig": cfg})
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		client, err := newRegistryClient(ctx, logger, cfg)
		if err != nil {
			logger.Error("creating-registry-client-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		lister, err := inventory.NewRepositoryLister(client, cfg.Include, cfg.Exclude, cfg.PageSize)
		if err != nil {
			logger.Error("creating-repository-lister-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		repositories, err := lister.List(ctx.Context, logger)
		if err != nil {
			logger.Error("listing-repositories-failed", err)
			return cli.Exit(fmt.Sprintf("Failed to retrieve list of repositories: %s", err.Error()), 1)
		}

		for _, repository := range repositories {
			fmt.Fprintln(ctx.App.Writer, repository)
		}

		return nil
	},
}
