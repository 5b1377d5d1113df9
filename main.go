package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/regscan/commands"
	"code.cloudfoundry.org/regscan/commands/config"

	"github.com/urfave/cli/v2"
)

func main() {
	regscan := cli.NewApp()
	regscan.Name = "regscan"
	regscan.Usage = "Inventories the image manifests of a container registry"
	regscan.Version = "0.1.0"

	regscan.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to config file",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Set logging level <debug|info|error|fatal>",
		},
		&cli.StringFlag{
			Name:  "metron-endpoint",
			Usage: "Metron endpoint used to send metrics",
		},
		&cli.IntFlag{
			Name:  "slow-threshold-seconds",
			Usage: "Log a runtime report when a timed operation takes longer",
		},
	}

	regscan.Commands = []*cli.Command{
		&commands.ScanCommand,
		&commands.RepositoriesCommand,
		&commands.ImagesCommand,
	}

	regscan.Before = func(ctx *cli.Context) error {
		configBuilder, err := config.NewBuilder(ctx.String("config"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		ctx.App.Metadata["configBuilder"] = configBuilder

		cfg, err := configBuilder.
			WithLogLevel(ctx.String("log-level"), ctx.IsSet("log-level")).
			WithMetronEndpoint(ctx.String("metron-endpoint")).
			WithSlowThresholdSeconds(ctx.Int("slow-threshold-seconds"), ctx.IsSet("slow-threshold-seconds")).
			Build()
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		logger := lager.NewLogger("regscan")
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, logLevel(cfg.LogLevel)))
		ctx.App.Metadata["logger"] = logger

		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := regscan.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logLevel(level string) lager.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return lager.DEBUG
	case "error":
		return lager.ERROR
	case "fatal":
		return lager.FATAL
	default:
		return lager.INFO
	}
}
