package main

import (
	"context"
	"flag"
	"log"
	"time"

	"staffing-engine/internal/app"
	"staffing-engine/internal/config"
	"staffing-engine/internal/pipeline"
	"staffing-engine/internal/repository"
	"staffing-engine/internal/usecase"
)

func main() {
	workers := flag.Int("workers", 4, "concurrent warm workers")
	limit := flag.Int("limit", 50, "max upcoming events to warm")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall run timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	phaseRepo := repository.NewPostgresPhaseRepository(c.DB)
	demandRepo := repository.NewPostgresDemandRepository(c.DB)
	employeeRepo := repository.NewPostgresEmployeeRepository(c.DB)
	suggestionUC := usecase.NewSuggestionUsecase(phaseRepo, demandRepo, employeeRepo, c.Cache)

	p := pipeline.NewShortlistWarmPipeline(phaseRepo, suggestionUC, c.Logger)
	if *workers > 0 {
		p.Workers = *workers
	}
	if *limit > 0 {
		p.EventLimit = *limit
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := p.Run(ctx); err != nil {
		log.Fatalf("shortlist warm failed: %v", err)
	}
}
