package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-notes-api-tests/internal/config"
	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/server"
	"github.com/MKhiriev/go-notes-api-tests/internal/store"
	"github.com/MKhiriev/go-notes-api-tests/internal/stub"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStubConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("notes-stub").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("notes-stub")
	log.Logger = log.Level(logger.ParseLevel(cfg.LogLevel))
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	handler := stub.NewHandler(storages, stub.NewMailbox(), log)

	srv, err := server.NewServer(handler.Init(), cfg.Address, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return
	}

	log.Info().Str("base_path", stub.BasePath).Msg("serving notes api stub")
	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
