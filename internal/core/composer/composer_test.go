package composer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/frontdeskai/receptionist-core/internal/core/assembler"
	"github.com/frontdeskai/receptionist-core/internal/core/enhance"
	"github.com/frontdeskai/receptionist-core/internal/models"
)

func fullContext() *assembler.PromptContext {
	hours := map[string]assembler.DayHours{}
	for _, key := range assembler.WeekdayKeys {
		hours[key] = assembler.DayHours{Open: "09:00", Close: "17:00"}
	}
	hours["sunday"] = assembler.DayHours{}

	return &assembler.PromptContext{
		BusinessID:      "b-1",
		BusinessName:    "Sunrise Dental",
		BusinessType:    "Dental Clinic",
		ServiceArea:     "Austin, TX",
		Differentiators: []string{"same-day appointments"},
		NeverSay:        []string{"we guarantee results"},
		Hours:           hours,
		Services: []assembler.Service{
			{Name: "Cleaning", DurationMinutes: 45, Price: "85.00"},
		},
		FAQs: []assembler.FAQ{
			{Question: "Do you take insurance?", Answer: "Yes, most PPO plans."},
		},
		Knowledge: []string{"Parking is behind the building."},
		Offers: []assembler.Offer{
			{Kind: "bundle", Title: "Whitening + cleaning", Details: `{"discount":"15%"}`},
		},
		AgentName:      "Maya",
		Personality:    models.PersonalityFriendly,
		SpanishEnabled: true,
		LanguageMode:   models.LanguageModeAuto,
		TransferNumber: "+15125550100",
		BookingEnabled: true,
		Enhancements: models.EnhancementSettings{
			IndustryEnhancements:    true,
			FewShotExamplesEnabled:  true,
			SentimentDetectionLevel: models.SentimentDetectionAdvanced,
			CallerContextEnabled:    true,
			ToneIntensity:           3,
			PersonalityAwareErrors:  true,
			MaxFewShotExamples:      3,
		},
	}
}

var fixedSections = []string{
	"# Personality", "# Environment", "# Tone", "# Goal",
	"# Guardrails", "# Sentiment", "# Tools", "# Character Normalization",
}

func TestComposeNoResidualPlaceholders(t *testing.T) {
	for _, lang := range []string{enhance.LangEN, enhance.LangES} {
		out, err := Compose(fullContext(), lang)
		if err != nil {
			t.Fatalf("Compose(%s) error: %v", lang, err)
		}
		if strings.Contains(out, "{{") || strings.Contains(out, "}}") {
			t.Fatalf("Compose(%s) left placeholder syntax in output", lang)
		}
		if strings.Contains(out, "\n\n\n") {
			t.Fatalf("Compose(%s) left triple blank lines", lang)
		}
	}
}

func TestComposeSectionOrderParity(t *testing.T) {
	en, err := Compose(fullContext(), enhance.LangEN)
	if err != nil {
		t.Fatalf("EN compose error: %v", err)
	}
	es, err := Compose(fullContext(), enhance.LangES)
	if err != nil {
		t.Fatalf("ES compose error: %v", err)
	}

	for _, out := range []string{en, es} {
		last := -1
		for _, section := range fixedSections {
			idx := strings.Index(out, section+"\n")
			if idx < 0 {
				t.Fatalf("missing section %q", section)
			}
			if idx < last {
				t.Fatalf("section %q out of order", section)
			}
			last = idx
		}
	}
}

func TestComposeIncludesBusinessData(t *testing.T) {
	out, err := Compose(fullContext(), enhance.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Sunrise Dental",
		"Maya",
		"Austin, TX",
		"same-day appointments",
		"Cleaning: 45 minutes, $85.00",
		"Do you take insurance?",
		"Parking is behind the building.",
		"Whitening + cleaning",
		`Never say: "we guarantee results"`,
		"Monday: 09:00 - 17:00",
		"Sunday: Closed",
		"+15125550100",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestComposeOptionalSectionsToggle(t *testing.T) {
	pctx := fullContext()
	pctx.Enhancements.IndustryEnhancements = false
	pctx.Enhancements.FewShotExamplesEnabled = false
	pctx.Enhancements.PersonalityAwareErrors = false
	pctx.Enhancements.CallerContextEnabled = false

	out, err := Compose(pctx, enhance.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, header := range []string{"# Industry Context", "# Example Conversations", "# Error Handling", "# Caller Context"} {
		if strings.Contains(out, header) {
			t.Fatalf("disabled section %q still rendered", header)
		}
	}

	enabled, err := Compose(fullContext(), enhance.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, header := range []string{"# Industry Context", "# Example Conversations", "# Error Handling", "# Caller Context"} {
		if !strings.Contains(enabled, header) {
			t.Fatalf("enabled section %q not rendered", header)
		}
	}
}

func TestComposeFAQCap(t *testing.T) {
	pctx := fullContext()
	pctx.FAQs = nil
	for i := 0; i < 15; i++ {
		pctx.FAQs = append(pctx.FAQs, assembler.FAQ{
			Question: fmt.Sprintf("Question %d?", i),
			Answer:   fmt.Sprintf("Answer %d.", i),
		})
	}

	out, err := Compose(pctx, enhance.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(out, "\nQ: "); got != maxFAQEntries {
		t.Fatalf("expected %d FAQ entries inlined, got %d", maxFAQEntries, got)
	}
	if strings.Contains(out, "Question 10?") {
		t.Fatal("entries beyond the cap must not render")
	}
}

func TestComposeSentimentLevels(t *testing.T) {
	pctx := fullContext()
	pctx.Enhancements.SentimentDetectionLevel = models.SentimentDetectionNone
	none, err := Compose(pctx, enhance.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(none, "angry (negative)") {
		t.Fatal("sentiment none should not enumerate levels")
	}

	pctx.Enhancements.SentimentDetectionLevel = models.SentimentDetectionAdvanced
	advanced, err := Compose(pctx, enhance.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, level := range enhance.SentimentLevels() {
		if !strings.Contains(advanced, fmt.Sprintf("- %s (%s):", level.Name, level.Category)) {
			t.Fatalf("advanced mode missing level %q", level.Name)
		}
	}

	pctx.Enhancements.SentimentDetectionLevel = models.SentimentDetectionBasic
	basic, err := Compose(pctx, enhance.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(basic, "- confused (neutral):") {
		t.Fatal("basic mode should omit non-escalation neutral levels")
	}
	if !strings.Contains(basic, "- angry (negative):") {
		t.Fatal("basic mode must keep escalation-worthy levels")
	}
}

func TestComposeSpanishUsesSpanishProse(t *testing.T) {
	out, err := Compose(fullContext(), enhance.LangES)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Horario de atención:") {
		t.Fatal("Spanish output missing Spanish hours heading")
	}
	if !strings.Contains(out, "Lunes: 09:00 - 17:00") {
		t.Fatal("Spanish output missing Spanish weekday names")
	}
	if strings.Contains(out, "Business hours:") {
		t.Fatal("Spanish output leaked English template prose")
	}
}

func TestComposeDefaultGreeting(t *testing.T) {
	pctx := fullContext()
	pctx.GreetingEN = ""
	out, err := Compose(pctx, enhance.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Thank you for calling Sunrise Dental, this is Maya.") {
		t.Fatal("default greeting not generated")
	}

	pctx.GreetingEN = "Hi, you've reached Sunrise Dental!"
	out, err = Compose(pctx, enhance.LangEN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Hi, you've reached Sunrise Dental!") {
		t.Fatal("custom greeting not used")
	}
}
