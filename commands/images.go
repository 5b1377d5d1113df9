package commands // import "code.cloudfoundry.org/regscan/commands"

import (
	"encoding/json"
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/regscan/inventory"
	errorspkg "github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var ImagesCommand = cli.Command{
	Name:        "images",
	Usage:       "images --registry <url> <repository>",
	Description: "Lists the images of a repository, one JSON document per manifest digest",

	Flags: registryFlags(),

	Action: func(ctx *cli.Context) error {
		logger := ctx.App.Metadata["logger"].(lager.Logger)
		logger = logger.Session("images")

		if ctx.NArg() != 1 {
			logger.Error("parsing-command", errorspkg.New("repository was not specified"), lager.Data{"args": ctx.Args().Slice()})
			return cli.Exit(fmt.Sprintf("invalid arguments - usage: %s", ctx.Command.Usage), 1)
		}
		repository := ctx.Args().First()

		cfg, err := buildConfig(ctx)
		logger.Debug("images-config", lager.Data{"currentConfig": cfg})
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		client, err := newRegistryClient(ctx, logger, cfg)
		if err != nil {
			logger.Error("creating-registry-client-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		discoverer := inventory.NewImageDiscoverer(client, cfg.PageSize)
		images, err := discoverer.Discover(ctx.Context, logger, repository)
		if err != nil {
			logger.Error("discovering-images-failed", err, lager.Data{"repository": repository})
			return cli.Exit(err.Error(), 1)
		}

		encoder := json.NewEncoder(ctx.App.Writer)
		for _, image := range images {
			if err := encoder.Encode(image); err != nil {
				return cli.Exit(errorspkg.Wrap(err, "writing image").Error(), 1)
			}
		}

		return nil
	},
}
