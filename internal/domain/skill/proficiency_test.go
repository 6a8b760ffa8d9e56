package skill

import (
	"errors"
	"testing"
)

func TestProficiencyRank_Order(t *testing.T) {
	levels := []ProficiencyLevel{ProficiencyBasic, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert}
	for i, lvl := range levels {
		r, err := lvl.Rank()
		if err != nil {
			t.Fatalf("rank %s: %v", lvl, err)
		}
		if r != i {
			t.Fatalf("rank %s: expected %d, got %d", lvl, i, r)
		}
	}
}

func TestProficiencyRank_Unknown(t *testing.T) {
	for _, raw := range []string{"", "Basic", "EXPERT", "guru", "intermediate "} {
		if _, err := ProficiencyLevel(raw).Rank(); !errors.Is(err, ErrInvalidProficiencyLevel) {
			t.Fatalf("rank %q: expected ErrInvalidProficiencyLevel, got %v", raw, err)
		}
	}
}

func TestProficiencyMeets(t *testing.T) {
	levels := []ProficiencyLevel{ProficiencyBasic, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert}
	for _, a := range levels {
		for _, b := range levels {
			got, err := a.Meets(b)
			if err != nil {
				t.Fatalf("meets(%s, %s): %v", a, b, err)
			}
			ra, _ := a.Rank()
			rb, _ := b.Rank()
			if got != (ra >= rb) {
				t.Fatalf("meets(%s, %s): expected %v, got %v", a, b, ra >= rb, got)
			}
		}
	}

	if ok, _ := ProficiencyExpert.Meets(ProficiencyBasic); !ok {
		t.Fatalf("expected expert to meet basic")
	}
	if ok, _ := ProficiencyBasic.Meets(ProficiencyExpert); ok {
		t.Fatalf("expected basic not to meet expert")
	}
	if ok, _ := ProficiencyIntermediate.Meets(ProficiencyIntermediate); !ok {
		t.Fatalf("expected intermediate to meet intermediate")
	}
}

func TestProficiencyMeets_InvalidInput(t *testing.T) {
	if _, err := ProficiencyLevel("novice").Meets(ProficiencyBasic); !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
	if _, err := ProficiencyBasic.Meets(ProficiencyLevel("novice")); !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
}

func TestParseProficiencyLevel(t *testing.T) {
	p, err := ParseProficiencyLevel("advanced")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p != ProficiencyAdvanced {
		t.Fatalf("expected advanced, got %s", p)
	}
	if _, err := ParseProficiencyLevel("ninja"); !errors.Is(err, ErrInvalidProficiencyLevel) {
		t.Fatalf("expected ErrInvalidProficiencyLevel, got %v", err)
	}
}
