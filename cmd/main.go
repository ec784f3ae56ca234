package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pumptrack/statserver/internal/config"
	"github.com/pumptrack/statserver/internal/logger"
	sqlite3migrate "github.com/pumptrack/statserver/internal/migrate"
	"github.com/pumptrack/statserver/internal/service"
	"github.com/pumptrack/statserver/internal/storage"
	"github.com/pumptrack/statserver/internal/storage/sqlite"
	"github.com/pumptrack/statserver/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	db, err := storage.NewDB(cfg.Server.SqliteFile)
	if err != nil {
		return err
	}
	if err := sqlite3migrate.Up(db); err != nil {
		return err
	}

	store := sqlite.New(db)
	stats := service.New(log, store, store, store)

	// first snapshot before serving so readers never see an empty state
	if err := stats.RecomputeSync(context.Background()); err != nil {
		return err
	}

	server := web.New(stats, cfg.Server)
	return server.Serve()
}
