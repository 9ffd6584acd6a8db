package main

import (
	"fmt"

	"github.com/MKhiriev/go-access-desk/internal/config"
	"github.com/MKhiriev/go-access-desk/internal/handler"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/server"
	"github.com/MKhiriev/go-access-desk/internal/service"
	"github.com/MKhiriev/go-access-desk/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-access-desk-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	registry, err := service.NewFormatRegistry(cfg.App.FormatsFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating access code format registry")
	}

	services, err := service.NewServices(store.NewMemoryPlanStorage(), registry, *cfg, log)
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
