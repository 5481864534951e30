package main

import (
	"context"
	"fmt"

	"github.com/ruablog/rua-api/internal/config"
	httpHandler "github.com/ruablog/rua-api/internal/handler/http"
	"github.com/ruablog/rua-api/internal/logger"
	"github.com/ruablog/rua-api/internal/server"
	"github.com/ruablog/rua-api/internal/service"
	"github.com/ruablog/rua-api/internal/store"
	"github.com/ruablog/rua-api/internal/validators"
	"github.com/ruablog/rua-api/models"
)

// Populated at link time via -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("rua-api-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	repos, err := store.NewRepositories(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	services := service.NewServices(repos, *cfg, buildInfo, log)

	handler := httpHandler.NewHandler(services, validators.NewUserValidator(), buildInfo.Version, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
