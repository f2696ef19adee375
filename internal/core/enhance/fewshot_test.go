package enhance

import (
	"strings"
	"testing"
)

func TestSelectFewShotPrefersIndustryMatches(t *testing.T) {
	selected := SelectFewShot("professional", "dental", 3)
	if len(selected) == 0 {
		t.Fatal("expected examples for professional/dental")
	}
	if selected[0].Industry != "dental" {
		t.Fatalf("industry-specific examples must come first, got industry %q", selected[0].Industry)
	}
	for _, e := range selected {
		if e.Personality != "professional" {
			t.Fatalf("selected example with wrong personality %q", e.Personality)
		}
		if e.Industry != "" && e.Industry != "dental" {
			t.Fatalf("selected example tagged for foreign industry %q", e.Industry)
		}
	}
}

func TestSelectFewShotRespectsMax(t *testing.T) {
	if got := SelectFewShot("friendly", "other", 1); len(got) > 1 {
		t.Fatalf("expected at most 1 example, got %d", len(got))
	}
	if got := SelectFewShot("friendly", "other", 0); got != nil {
		t.Fatalf("max=0 must select nothing, got %d", len(got))
	}
}

func TestSelectFewShotFallsBackToGeneral(t *testing.T) {
	// No industry-tagged examples exist for this key, so selection must come
	// from the personality's general pool.
	selected := SelectFewShot("casual", "accounting", 3)
	if len(selected) == 0 {
		t.Fatal("expected general examples for casual personality")
	}
	for _, e := range selected {
		if e.Industry != "" {
			t.Fatalf("expected general examples only, got industry %q", e.Industry)
		}
	}
}

func TestSelectFewShotDeterministic(t *testing.T) {
	first := SelectFewShot("professional", "dental", 3)
	second := SelectFewShot("professional", "dental", 3)
	if len(first) != len(second) {
		t.Fatalf("selection size changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("selection order changed at index %d", i)
		}
	}
}

func TestFewShotRender(t *testing.T) {
	e := &FewShotExample{
		Category:    "booking",
		Personality: "professional",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "I need an appointment."},
			{Speaker: "Agent", Text: "Of course. What day works best for you?"},
		},
	}

	out := e.Render()
	if !strings.HasPrefix(out, "Example (booking):") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "Caller: I need an appointment.") {
		t.Fatalf("missing caller turn: %q", out)
	}
	if !strings.Contains(out, "Agent: Of course.") {
		t.Fatalf("missing agent turn: %q", out)
	}
}

func TestFewShotLibraryWellFormed(t *testing.T) {
	for i, e := range fewShotLibrary {
		if e.Category == "" {
			t.Fatalf("example %d has no category", i)
		}
		if e.Personality != "professional" && e.Personality != "friendly" && e.Personality != "casual" {
			t.Fatalf("example %d has unknown personality %q", i, e.Personality)
		}
		if len(e.Turns) < 2 {
			t.Fatalf("example %d has fewer than 2 turns", i)
		}
	}
}
