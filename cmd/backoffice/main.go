package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/mkarell/backoffice"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := backoffice.LoadConfig(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app := backoffice.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "backoffice",
		Usage:  "Admin console for managing blogs, services, leads, and SEO profiles",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("BACKOFFICE_CONFIG_FILE"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
