package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tanq16/yamanaka/internal/broadcast"
	"github.com/tanq16/yamanaka/internal/config"
	httphandler "github.com/tanq16/yamanaka/internal/handler/http"
	"github.com/tanq16/yamanaka/internal/history"
	"github.com/tanq16/yamanaka/internal/logger"
	"github.com/tanq16/yamanaka/internal/registry"
	"github.com/tanq16/yamanaka/internal/server"
	"github.com/tanq16/yamanaka/internal/spool"
	"github.com/tanq16/yamanaka/internal/syncengine"
	"github.com/tanq16/yamanaka/internal/vault"
	"github.com/tanq16/yamanaka/internal/workers"
	"github.com/tanq16/yamanaka/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("yamanaka-server")
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting yamanaka server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	if err := os.MkdirAll(cfg.Vault.RootDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("root", cfg.Vault.RootDir).Msg("could not create vault root directory")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	vaultStore := vault.New(cfg.Vault.RootDir)

	historyStore := history.NewGitStore(cfg.Vault.RootDir)
	if err := historyStore.EnsureInitialized(ctx); err != nil {
		log.Fatal().Err(err).Msg("could not initialize history store")
	}

	reg, err := registry.New(cfg.Vault.RootDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load client registry")
	}

	sp := spool.New(cfg.Vault.RootDir, log)
	bcast := broadcast.New(reg, sp, log)
	engine := syncengine.New(vaultStore, historyStore, bcast, vaultStore, log)

	snapshotter := history.NewSnapshotter(ctx, historyStore, vaultStore, cfg.Snapshot.Interval, log)
	background := workers.New(snapshotter)
	backgroundDone := make(chan struct{})
	go func() {
		background.Run()
		close(backgroundDone)
	}()

	handler := httphandler.NewHandler(
		engine,
		reg,
		sp,
		cfg.Sync.ResyncThreshold,
		cfg.Server.HeartbeatInterval,
		cfg.Server.AllowedOrigin,
		log,
	)
	router := handler.Init()

	srv, err := server.NewServer(ctx, router, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create server")
	}

	srv.RunServer()
	<-backgroundDone
	log.Info().Msg("yamanaka server stopped")
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())

	return info
}
