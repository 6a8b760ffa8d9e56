package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"staffing-engine/internal/domain/employee"
	"staffing-engine/internal/domain/event"
	"staffing-engine/internal/domain/skill"
	"staffing-engine/internal/domain/staffing"

	"github.com/google/uuid"
)

type mockDemandRepo struct {
	demand []staffing.DemandEntry
	err    error
}

func (m mockDemandRepo) GetAggregatedDemand(context.Context, uuid.UUID) ([]staffing.DemandEntry, error) {
	return m.demand, m.err
}

// fakeSuggestionCache round-trips values through JSON like the real cache.
type fakeSuggestionCache struct {
	entries map[string][]byte
	sets    int
}

func newFakeSuggestionCache() *fakeSuggestionCache {
	return &fakeSuggestionCache{entries: make(map[string][]byte)}
}

func (f *fakeSuggestionCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeSuggestionCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	f.sets++
	return nil
}

func (f *fakeSuggestionCache) DeleteByPattern(_ context.Context, pattern string) error {
	if pattern == suggestionKeyPattern {
		f.entries = make(map[string][]byte)
	}
	return nil
}

func TestSuggestionUsecase_SuggestForEvent_EventNotFound(t *testing.T) {
	uc := NewSuggestionUsecase(
		mockPhaseRepo{eventIDs: map[uuid.UUID][]event.Phase{}},
		mockDemandRepo{},
		mockEmployeeRepo{},
		newFakeSuggestionCache(),
	)

	_, err := uc.SuggestForEvent(context.Background(), uuid.New())
	if !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestSuggestionUsecase_SuggestForEvent_ShortlistCapped(t *testing.T) {
	eventID := uuid.New()
	riggingID := uuid.New()

	pool := make([]employee.Employee, 0, 8)
	for i := 0; i < 8; i++ {
		pool = append(pool, employee.Employee{
			ID:     uuid.New(),
			Name:   fmt.Sprintf("Crew %d", i),
			Active: true,
			Grants: []employee.SkillGrant{{
				SkillID:   riggingID,
				SkillName: "Rigging",
				Level:     skill.ProficiencyIntermediate,
			}},
		})
	}

	cache := newFakeSuggestionCache()
	uc := NewSuggestionUsecase(
		mockPhaseRepo{eventIDs: map[uuid.UUID][]event.Phase{eventID: {}}},
		mockDemandRepo{demand: []staffing.DemandEntry{{SkillID: riggingID, SkillName: "Rigging"}}},
		mockEmployeeRepo{active: pool},
		cache,
	)

	got, err := uc.SuggestForEvent(context.Background(), eventID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.EventID != eventID {
		t.Fatalf("expected event id %s, got %s", eventID, got.EventID)
	}
	if len(got.Candidates) != staffing.ShortlistLimit {
		t.Fatalf("expected shortlist of %d, got %d", staffing.ShortlistLimit, len(got.Candidates))
	}
	// Equal scores keep pool order, so the first five employees make the cut.
	for i, c := range got.Candidates {
		if c.EmployeeID != pool[i].ID {
			t.Fatalf("candidate %d: expected %s, got %s", i, pool[i].Name, c.EmployeeName)
		}
		if c.Score != 20 {
			t.Fatalf("candidate %d: expected score 20, got %d", i, c.Score)
		}
	}
	if cache.sets != 1 {
		t.Fatalf("expected shortlist to be cached once, got %d sets", cache.sets)
	}
}

func TestSuggestionUsecase_SuggestForEvent_CacheHit(t *testing.T) {
	eventID := uuid.New()
	cached := EventSuggestions{
		EventID: eventID,
		Candidates: []staffing.CandidateScore{{
			EmployeeID:   uuid.New(),
			EmployeeName: "Cached Crew",
			Score:        40,
			Reason:       "Skills: Rigging",
		}},
	}

	cache := newFakeSuggestionCache()
	if err := cache.SetJSON(context.Background(), suggestionCacheKey(eventID), cached, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	cache.sets = 0

	// A demand repo that errors proves the cached copy short-circuits scoring.
	uc := NewSuggestionUsecase(
		mockPhaseRepo{eventIDs: map[uuid.UUID][]event.Phase{eventID: {}}},
		mockDemandRepo{err: errors.New("boom")},
		mockEmployeeRepo{},
		cache,
	)

	got, err := uc.SuggestForEvent(context.Background(), eventID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.Candidates) != 1 || got.Candidates[0].EmployeeName != "Cached Crew" {
		t.Fatalf("expected cached candidates, got %+v", got.Candidates)
	}
	if cache.sets != 0 {
		t.Fatalf("cache hit must not rewrite the entry")
	}
}

func TestSuggestionUsecase_SuggestForEvent_GrantMutationInvalidates(t *testing.T) {
	eventID := uuid.New()
	cache := newFakeSuggestionCache()
	if err := cache.SetJSON(context.Background(), suggestionCacheKey(eventID), EventSuggestions{EventID: eventID}, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	if err := cache.DeleteByPattern(context.Background(), suggestionKeyPattern); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	var out EventSuggestions
	hit, err := cache.GetJSON(context.Background(), suggestionCacheKey(eventID), &out)
	if err != nil {
		t.Fatalf("get after invalidate: %v", err)
	}
	if hit {
		t.Fatalf("expected invalidation to drop the cached shortlist")
	}
}
