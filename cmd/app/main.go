// Package main is the septer command line: the API server, migrations and
// account administration.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/septer/septer/internal/app"
	"github.com/septer/septer/internal/config"
	cryptoDomain "github.com/septer/septer/internal/crypto/domain"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:     "septer",
		Usage:    "Security log analysis backend",
		Version:  version,
		Commands: append(getSystemCommands(version), getUserCommands()...),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

// withContainer validates the configuration, builds a container for one
// command and shuts it down afterwards.
func withContainer(ctx context.Context, fn func(*app.Container) error) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", cryptoDomain.ErrConfiguration, err)
	}

	container := app.NewContainer(cfg)
	defer func() {
		if err := container.Shutdown(ctx); err != nil {
			container.Logger().Error("failed to shutdown container", slog.Any("error", err))
		}
	}()

	return fn(container)
}
