package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/xavierca1/lead-scoring/internal/logging"
)

var version = "v0.0.1-default"

var logLevelFlag = &cli.StringFlag{
	Name:  "log-level",
	Usage: "Log level [debug, info, warn, error]",
	Value: "warn",
}

func main() {
	_ = godotenv.Load()

	app := &cli.Command{
		Name:    "leadscore",
		Version: version,
		Usage:   "Score sales leads against a product offer",
		Flags:   []cli.Flag{logLevelFlag},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logging.Setup(c.String(logLevelFlag.Name), true)
			return ctx, nil
		},
		Commands: []*cli.Command{
			scoreCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("leadscore failed")
		os.Exit(1)
	}
}
