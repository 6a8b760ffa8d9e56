package app

import (
	"context"
	"log"
	"time"

	"staffing-engine/internal/config"
	"staffing-engine/internal/database"
	dbpostgres "staffing-engine/internal/database/postgres"
	"staffing-engine/internal/infrastructure/cache"
	"staffing-engine/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redis := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redis,
		Hub:    hub,
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
