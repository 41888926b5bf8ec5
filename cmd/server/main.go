package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/portfolio-server/internal/adapter"
	"github.com/MKhiriev/portfolio-server/internal/config"
	"github.com/MKhiriev/portfolio-server/internal/handler"
	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/MKhiriev/portfolio-server/internal/server"
	"github.com/MKhiriev/portfolio-server/internal/service"
	"github.com/MKhiriev/portfolio-server/internal/store"
	"github.com/MKhiriev/portfolio-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("portfolio-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// the version reported by the API falls back to the linked build version
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	imageHost := adapter.NewImageHost(cfg.Adapter.ImageHost, log)
	if !cfg.Adapter.ImageHost.Enabled() {
		log.Warn().Msg("image host is not configured, uploads are disabled")
	}

	services, err := service.NewServices(storages, imageHost, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
