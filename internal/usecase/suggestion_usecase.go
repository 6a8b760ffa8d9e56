package usecase

import (
	"context"
	"errors"
	"time"

	"staffing-engine/internal/domain/staffing"
	"staffing-engine/internal/repository"

	"github.com/google/uuid"
)

var ErrEventNotFound = errors.New("event not found")

type SuggestionCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type EventSuggestions struct {
	EventID    uuid.UUID
	Demand     []staffing.DemandEntry
	Candidates []staffing.CandidateScore
}

type SuggestionUsecase interface {
	SuggestForEvent(ctx context.Context, eventID uuid.UUID) (EventSuggestions, error)
}

type Suggestion struct {
	events    repository.PhaseRepository
	demand    repository.DemandRepository
	employees repository.EmployeeRepository
	cache     SuggestionCache
}

func NewSuggestionUsecase(
	events repository.PhaseRepository,
	demand repository.DemandRepository,
	employees repository.EmployeeRepository,
	cache SuggestionCache,
) *Suggestion {
	return &Suggestion{events: events, demand: demand, employees: employees, cache: cache}
}

// SuggestForEvent computes the top-5 staffing shortlist for an event from
// its aggregated product demand and the active employee pool. Shortlists
// are cached; grant mutations invalidate them.
func (u *Suggestion) SuggestForEvent(ctx context.Context, eventID uuid.UUID) (EventSuggestions, error) {
	if eventID == uuid.Nil {
		return EventSuggestions{}, ErrInvalidInput
	}

	exists, err := u.events.EventExistsByID(ctx, eventID)
	if err != nil {
		return EventSuggestions{}, ErrInternal
	}
	if !exists {
		return EventSuggestions{}, ErrEventNotFound
	}

	key := suggestionCacheKey(eventID)
	if u.cache != nil {
		var cached EventSuggestions
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	demand, err := u.demand.GetAggregatedDemand(ctx, eventID)
	if err != nil {
		return EventSuggestions{}, ErrInternal
	}

	pool, err := u.employees.ListActive(ctx)
	if err != nil {
		return EventSuggestions{}, ErrInternal
	}

	scored := staffing.ScoreCandidates(demand, pool)
	out := EventSuggestions{
		EventID:    eventID,
		Demand:     demand,
		Candidates: staffing.Shortlist(scored),
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, 0)
	}
	return out, nil
}
