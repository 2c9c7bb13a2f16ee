package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/database/migration"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/database/seeder"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/infrastructure/youtube"
	"career-compass/internal/ws"
)

// Container holds the process-wide dependencies in the order they were
// built.
type Container struct {
	Config  config.Config
	DB      database.DB
	Cache   *cache.Redis
	YouTube *youtube.Client
	Hub     *ws.Hub
	Logger  *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := migration.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	runner := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}
	if err := runner.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run seeders: %w", err)
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	return &Container{
		Config:  cfg,
		DB:      db,
		Cache:   cache.NewRedis(cfg.Redis, logger),
		YouTube: youtube.NewClient(cfg.YouTube, logger),
		Hub:     hub,
		Logger:  logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
