// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/userguard/cmd/app/commands"
)

var version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "userguard",
		Usage:   "User authentication service with field-level PII encryption",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "create-data-key",
				Usage: "Generate a new base64-encoded 256-bit data encryption key",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCreateDataKey(os.Stdout)
				},
			},
			{
				Name:  "clean-reset-tokens",
				Usage: "Delete expired password reset tokens",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "dry-run",
						Value: false,
						Usage: "Only report what would be deleted",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCleanResetTokens(ctx, cmd.Bool("dry-run"))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
