package main

import (
	"fmt"

	"github.com/MKhiriev/go-access-desk/internal/adapter"
	"github.com/MKhiriev/go-access-desk/internal/client"
	"github.com/MKhiriev/go-access-desk/internal/config"
	"github.com/MKhiriev/go-access-desk/internal/logger"
	"github.com/MKhiriev/go-access-desk/internal/service"
	"github.com/MKhiriev/go-access-desk/internal/store"
	"github.com/MKhiriev/go-access-desk/internal/tui"
	"github.com/MKhiriev/go-access-desk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-access-desk-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	registry, err := service.NewFormatRegistry(cfg.App.FormatsFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create access code format registry")
	}

	var serverAdapter adapter.ServerAdapter
	if cfg.Online() {
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create server adapter")
		}
	}

	services, err := service.NewClientServices(store.NewMemoryPlanStorage(), registry, serverAdapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	version := buildVersion
	if version == "" {
		version = cfg.App.Version
	}
	ui, err := tui.New(services, models.NewAppBuildInfo(version, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		fmt.Println("Build version: N/A")
	} else {
		fmt.Printf("Build version: %s\n", buildVersion)
	}
	if buildDate == "" {
		fmt.Println("Build date: N/A")
	} else {
		fmt.Printf("Build date: %s\n", buildDate)
	}
	if buildCommit == "" {
		fmt.Println("Build commit: N/A")
	} else {
		fmt.Printf("Build commit: %s\n", buildCommit)
	}
}
