package commands // import "code.cloudfoundry.org/regscan/commands"

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/regscan/inventory"
	"code.cloudfoundry.org/regscan/output"
	"code.cloudfoundry.org/regscan/progress"
	errorspkg "github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var ScanCommand = cli.Command{
	Name:        "scan",
	Usage:       "scan --registry <url> [--output <file>]",
	Description: "Writes a JSON lines inventory of every image manifest in the registry",

	Flags: append(append(registryFlags(), filterFlags()...),
		&cli.StringFlag{
			Name:  "output",
			Usage: "File the inventory is written to, - for stdout",
		},
		&cli.IntFlag{
			Name:  "concurrency",
			Usage: "Maximum repositories, and manifest batches per repository, in flight",
		},
		&cli.IntFlag{
			Name:  "chunk-size",
			Usage: "Digests requested per manifest batch",
		},
		&cli.IntFlag{
			Name:  "batch-limit",
			Usage: "Most manifests a distribution registry batch may request",
		},
	),

	Action: func(ctx *cli.Context) error {
		logger := ctx.App.Metadata["logger"].(lager.Logger)
		logger = logger.Session("scan")

		if ctx.NArg() != 0 {
			logger.Error("parsing-command", errorspkg.New("invalid arguments"), lager.Data{"args": ctx.Args().Slice()})
			return cli.Exit(fmt.Sprintf("invalid arguments - usage: %s", ctx.Command.Usage), 1)
		}

		cfg, err := buildConfig(ctx)
		logger.Debug("scan-config", lager.Data{"currentConfig": cfg})
		if err != nil {
			logger.Error("config-builder-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		client, err := newRegistryClient(ctx, logger, cfg)
		if err != nil {
			logger.Error("creating-registry-client-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		metricsEmitter, err := newMetricsEmitter(cfg)
		if err != nil {
			logger.Error("creating-metrics-emitter-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		lister, err := inventory.NewRepositoryLister(client, cfg.Include, cfg.Exclude, cfg.PageSize)
		if err != nil {
			logger.Error("creating-repository-lister-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		out, err := openOutput(cfg.Output)
		if err != nil {
			logger.Error("opening-output-failed", err)
			return cli.Exit(err.Error(), 1)
		}
		defer out.Close()

		// the scanner sets the repository total once the repositories are listed
		repositoryProgress := progress.NewLogReporter(logger, "repositories", 0, progressInterval)
		manifestProgress := progress.NewLogReporter(logger, "manifests", 0, progressInterval)

		scanner := inventory.NewScanner(
			lister,
			inventory.NewImageDiscoverer(client, cfg.PageSize),
			inventory.NewManifestResolver(client, manifestProgress, metricsEmitter, cfg.ChunkSize, cfg.Concurrency),
			output.NewJSONLinesSink(out),
			repositoryProgress,
			metricsEmitter,
			cfg.Concurrency,
		)

		if err := scanner.Scan(ctx.Context, logger); err != nil {
			logger.Error("scanning-failed", err)
			return cli.Exit(err.Error(), 1)
		}

		logger.Info("scanned", lager.Data{
			"repositories": repositoryProgress.Done(),
			"manifests":    manifestProgress.Done(),
		})

		return nil
	},
}
