package pipeline

import (
	"context"
	"log"

	"staffing-engine/internal/repository"
	"staffing-engine/internal/usecase"
	"staffing-engine/internal/worker"

	"github.com/google/uuid"
)

// ShortlistWarmPipeline precomputes suggestion shortlists for upcoming
// events so coordinators open pre-warmed pages. Each event is an
// independent task; one failure never stops the rest.
type ShortlistWarmPipeline struct {
	phases      repository.PhaseRepository
	suggestions usecase.SuggestionUsecase
	logger      *log.Logger

	Workers    int
	EventLimit int
}

func NewShortlistWarmPipeline(
	phases repository.PhaseRepository,
	suggestions usecase.SuggestionUsecase,
	logger *log.Logger,
) *ShortlistWarmPipeline {
	return &ShortlistWarmPipeline{
		phases:      phases,
		suggestions: suggestions,
		logger:      logger,
		Workers:     4,
		EventLimit:  50,
	}
}

func (p *ShortlistWarmPipeline) Run(ctx context.Context) error {
	eventIDs, err := p.phases.ListUpcomingEventIDs(ctx, p.EventLimit)
	if err != nil {
		return err
	}
	if len(eventIDs) == 0 {
		return nil
	}

	pool := worker.NewPool(p.Workers, len(eventIDs))
	for _, id := range eventIDs {
		eventID := id
		pool.Submit(func(taskCtx context.Context) error {
			return p.warmOne(taskCtx, eventID)
		})
	}
	pool.Close()

	warmed := 0
	failed := 0
	for res := range pool.Run(ctx) {
		if res.Err != nil {
			failed++
			continue
		}
		warmed++
	}

	if p.logger != nil {
		p.logger.Printf("[Pipeline] shortlist warm done | events=%d warmed=%d failed=%d", len(eventIDs), warmed, failed)
	}
	return nil
}

func (p *ShortlistWarmPipeline) warmOne(ctx context.Context, eventID uuid.UUID) error {
	_, err := p.suggestions.SuggestForEvent(ctx, eventID)
	if err != nil && p.logger != nil {
		p.logger.Printf("[Pipeline] shortlist warm failed | event_id=%s err=%v", eventID, err)
	}
	return err
}
