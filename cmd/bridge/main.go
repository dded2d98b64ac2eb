package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-bridge/internal/adapter"
	"github.com/MKhiriev/go-pass-bridge/internal/client"
	"github.com/MKhiriev/go-pass-bridge/internal/config"
	"github.com/MKhiriev/go-pass-bridge/internal/crypto"
	"github.com/MKhiriev/go-pass-bridge/internal/keystore"
	"github.com/MKhiriev/go-pass-bridge/internal/logger"
	"github.com/MKhiriev/go-pass-bridge/internal/service"
	"github.com/MKhiriev/go-pass-bridge/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-pass-bridge")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.LogFile != "" {
		log = logger.NewFileLogger("go-pass-bridge", cfg.App.LogFile)
	}

	log.Debug().
		Any("storage", cfg.Storage).
		Str("key_backend", cfg.Keys.Backend).
		Str("algorithm", cfg.Crypto.Algorithm).
		Str("user_id", cfg.App.UserID).
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	// Open logs a configuration failure itself; the unusable manager then
	// rejects every operation.
	manager := store.Open(ctx, cfg.Storage, log, nil)
	stores := store.NewStores(manager)
	defer stores.Close()

	keys, err := keystore.New(cfg.Keys, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating key repository")
	}

	cryptoService, err := crypto.NewCryptographyService(keys, cfg.Keys.KeyName, cfg.Crypto.Algorithm, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cryptography service")
	}

	source, err := adapter.NewSyncSource(cfg.Sync, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating sync source")
	}

	services := service.NewServices(stores, keys, cryptoService, source, *cfg, log)

	app, err := client.NewApp(services, *cfg, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init bridge app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("bridge run error")
		stores.Close()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
