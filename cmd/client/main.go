package main

import (
	"fmt"

	"github.com/mkondo/go-wordbook/internal/client"
	"github.com/mkondo/go-wordbook/internal/config"
	"github.com/mkondo/go-wordbook/internal/gateway"
	"github.com/mkondo/go-wordbook/internal/identity"
	"github.com/mkondo/go-wordbook/internal/logger"
	"github.com/mkondo/go-wordbook/internal/store"
	"github.com/mkondo/go-wordbook/internal/tui"
	"github.com/mkondo/go-wordbook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("wordbook-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	gw, err := gateway.NewHTTPGateway(cfg.API, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api gateway")
	}

	auth, err := identity.NewRESTProvider(cfg.Identity, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create identity provider")
	}

	stores := store.NewStores(gw, auth, cfg.Cache.DeckListTTL, log)

	ui, err := tui.New(stores, auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := client.NewApp(stores, ui, auth, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
