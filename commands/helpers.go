package commands // import "code.cloudfoundry.org/regscan/commands"

import (
	"io"
	"os"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/regscan/commands/config"
	"code.cloudfoundry.org/regscan/fetcher"
	"code.cloudfoundry.org/regscan/inventory"
	"code.cloudfoundry.org/regscan/metrics"
	"code.cloudfoundry.org/regscan/metrics/systemreporter"
	errorspkg "github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const progressInterval = 5 * time.Second

func registryFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "registry",
			Usage: "Registry to inventory, e.g.: ecr://eu-west-1, docker://registry.example.com",
		},
		&cli.StringSliceFlag{
			Name:  "insecure-registry",
			Usage: "Registry host reached over plain HTTP",
		},
		&cli.IntFlag{
			Name:  "page-size",
			Usage: "Number of results requested per listing page",
		},
	}
}

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Only inventory repositories matching the glob",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Skip repositories matching the glob",
		},
	}
}

// buildConfig overlays the flags shared by every command onto the config
// builder. Flags a command does not declare are never set.
func buildConfig(ctx *cli.Context) (config.Config, error) {
	configBuilder := ctx.App.Metadata["configBuilder"].(*config.Builder)

	return configBuilder.
		WithRegistry(ctx.String("registry")).
		WithInsecureRegistries(ctx.StringSlice("insecure-registry")).
		WithPageSize(ctx.Int("page-size"), ctx.IsSet("page-size")).
		WithInclude(ctx.StringSlice("include")).
		WithExclude(ctx.StringSlice("exclude")).
		WithOutput(ctx.String("output")).
		WithConcurrency(ctx.Int("concurrency"), ctx.IsSet("concurrency")).
		WithChunkSize(ctx.Int("chunk-size"), ctx.IsSet("chunk-size")).
		WithBatchLimit(ctx.Int("batch-limit"), ctx.IsSet("batch-limit")).
		Build()
}

func newRegistryClient(ctx *cli.Context, logger lager.Logger, cfg config.Config) (inventory.RegistryClient, error) {
	return fetcher.NewRegistryClient(ctx.Context, logger, fetcher.RegistrySpec{
		URL:                cfg.Registry,
		InsecureRegistries: cfg.InsecureRegistries,
		BatchLimit:         cfg.BatchLimit,
	})
}

func newMetricsEmitter(cfg config.Config) (*metrics.Emitter, error) {
	systemReporter := systemreporter.NewLogBased(time.Duration(cfg.SlowThresholdSeconds) * time.Second)
	if cfg.MetronEndpoint == "" {
		return metrics.NewLogOnlyEmitter(systemReporter), nil
	}

	return metrics.NewEmitter(cfg.MetronEndpoint, systemReporter)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// openOutput returns stdout for "-" and creates the file otherwise.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{Writer: os.Stdout}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, errorspkg.Wrapf(err, "creating output file `%s`", path)
	}

	return file, nil
}
