// Command shopdesk manages user accounts, the signed-in user and per-user
// product catalogs stored in a local SQLite database.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/custodia-labs/shopdesk/internal/adapters/driven/config/file"
	"github.com/custodia-labs/shopdesk/internal/adapters/driven/crypto/argon2"
	"github.com/custodia-labs/shopdesk/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/shopdesk/internal/adapters/driving/cli"
	"github.com/custodia-labs/shopdesk/internal/config"
	"github.com/custodia-labs/shopdesk/internal/core/services"
	"github.com/custodia-labs/shopdesk/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		logger.Error("loading config: %v", err)
		return 1
	}

	settingsService := services.NewSettingsService(configStore)
	settingsService.SetOverlay(config.ApplyEnv)

	settings, err := settingsService.Get()
	if err != nil {
		logger.Error("reading settings: %v", err)
		return 1
	}
	logger.SetVerbose(settings.Log.Verbose)

	// The database must be usable before any command runs.
	store, err := sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		logger.Error("initialising database: %v", err)
		return 1
	}
	defer store.Close()
	logger.Debug("database ready at %s", store.Path())

	userService := services.NewUserService(store.UserStore(), argon2.NewHasher(argon2.DefaultParams()))
	userService.SetRateLimit(settings.Auth.MaxAttempts, time.Duration(settings.Auth.RefillSeconds)*time.Second)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		User:     userService,
		Session:  services.NewSessionService(store.SessionStore(), userService),
		Product:  services.NewProductService(store.ProductStore()),
		Settings: settingsService,
	})

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}
