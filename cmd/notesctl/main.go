package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-api-tests/internal/config"
	"github.com/MKhiriev/go-notes-api-tests/internal/logger"
	"github.com/MKhiriev/go-notes-api-tests/internal/service"
	"github.com/MKhiriev/go-notes-api-tests/internal/smoke"
	"github.com/MKhiriev/go-notes-api-tests/internal/stub"
	"github.com/MKhiriev/go-notes-api-tests/internal/workers"
	"github.com/MKhiriev/go-notes-api-tests/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetSuiteConfig(os.Args[1:])
	if err != nil {
		logger.NewConsoleLogger("notesctl", "info").Error().Err(err).Msg("error getting configs")
		os.Exit(1)
	}

	log := logger.NewConsoleLogger("notesctl", cfg.LogLevel)
	if err = run(cfg, log); err != nil {
		if !errors.Is(err, smoke.ErrScenarioFailed) {
			log.Error().Err(err).Msg("notesctl run error")
		}
		os.Exit(1)
	}
}

func run(cfg *config.SuiteConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if !cfg.Remote() {
		instance, err := stub.StartSuite(ctx, cfg, log)
		if err != nil {
			return fmt.Errorf("error starting stub: %w", err)
		}
		defer func() {
			if err := instance.Close(); err != nil {
				log.Err(err).Msg("error closing stub")
			}
		}()
	}

	log.Debug().Str("target", cfg.Target).Str("base_url", cfg.API.BaseURL).Msg("received configs")

	runner := smoke.NewRunner(cfg.Target, func() (service.NotesService, error) {
		return service.NewNotesService(cfg.API, log)
	}, models.Credentials{
		Email:    cfg.Credentials.Email,
		Password: cfg.Credentials.Password,
	}, log)

	job := smoke.NewJob(runner, cfg.SmokeInterval, os.Stdout, log)

	return workers.NewWorkers(job).Run(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
