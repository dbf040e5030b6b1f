package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"fleetsync/internal/buildinfo"
	"fleetsync/internal/cli"
	"fleetsync/internal/config"
	"fleetsync/internal/logging"
	"fleetsync/internal/netx"
	"fleetsync/internal/notify"
	"fleetsync/internal/remote"
	"fleetsync/internal/services"
	"fleetsync/internal/store"
	"fleetsync/internal/syncer"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	repos, err := store.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer repos.Close()

	if err := repos.Seed(ctx); err != nil {
		log.Fatalf("error seeding database: %v", err)
	}

	clients, err := remote.NewAWSClients(ctx, cfg)
	if err != nil {
		log.Fatalf("error initializing remote stores: %v", err)
	}

	orch := syncer.New(
		repos.Users,
		repos.Vehicles,
		clients.Tables,
		clients.Objects,
		netx.NewHTTPProbe(cfg.ProbeEndpoint, cfg.ProbeTimeout),
		notify.NewConsole(os.Stdout),
		logger,
		syncer.Config{
			UsersTable:    cfg.UsersTable,
			VehiclesTable: cfg.VehiclesTable,
			ImageBucket:   cfg.ImageBucket,
			AssetDir:      cfg.AssetDir,
		},
	)

	app := cli.NewApp(
		services.NewAuthService(repos.Users, orch),
		services.NewVehicleService(repos.Vehicles, orch),
	)
	app.Run(ctx)
}
