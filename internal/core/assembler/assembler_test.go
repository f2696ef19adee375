package assembler

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/frontdeskai/receptionist-core/internal/models"
)

func validRaw() RawBusinessData {
	return RawBusinessData{
		Business: models.Business{
			ID:           uuid.New(),
			Name:         "Sunrise Dental",
			BusinessType: "Dental Clinic",
			ServiceArea:  "Austin, TX",
		},
		Persona: models.PersonaConfig{
			DisplayName: "Maya",
			Personality: models.PersonalityFriendly,
		},
		Language: models.LanguageSettings{
			SpanishEnabled: true,
			LanguageMode:   models.LanguageModeAuto,
		},
		CallSettings: models.CallSettings{
			BookingEnabled: true,
		},
	}
}

func TestAssembleValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RawBusinessData)
		field  string
	}{
		{
			name:   "missing business name",
			mutate: func(r *RawBusinessData) { r.Business.Name = "   " },
			field:  "business name",
		},
		{
			name:   "missing business type",
			mutate: func(r *RawBusinessData) { r.Business.BusinessType = "" },
			field:  "business type",
		},
		{
			name:   "unknown personality",
			mutate: func(r *RawBusinessData) { r.Persona.Personality = "sassy" },
			field:  "personality",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			_, err := Assemble(raw)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Fatalf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestAssembleDefaults(t *testing.T) {
	raw := validRaw()
	raw.Persona.DisplayName = ""
	raw.Language.LanguageMode = ""

	ctx, err := Assemble(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.AgentName != "the receptionist" {
		t.Fatalf("expected default agent name, got %q", ctx.AgentName)
	}
	if ctx.LanguageMode != models.LanguageModeAuto {
		t.Fatalf("expected default language mode auto, got %q", ctx.LanguageMode)
	}
}

func TestAssembleFiltersInactiveRows(t *testing.T) {
	raw := validRaw()
	raw.Services = []models.ServiceItem{
		{Name: "Cleaning", DurationMinutes: 45, PriceCents: 8500, IsActive: true},
		{Name: "Retired", DurationMinutes: 30, PriceCents: 5000, IsActive: false},
	}
	raw.FAQs = []models.FAQEntry{
		{Question: "Do you take insurance?", Answer: "Yes, most PPO plans.", IsActive: true},
		{Question: "Old question", Answer: "Old answer", IsActive: false},
	}
	raw.Knowledge = []models.KnowledgeEntry{
		{Content: "Parking is behind the building.", IsActive: true},
		{Content: "   ", IsActive: true},
		{Content: "stale", IsActive: false},
	}

	ctx, err := Assemble(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ctx.Services) != 1 || ctx.Services[0].Name != "Cleaning" {
		t.Fatalf("expected 1 active service, got %+v", ctx.Services)
	}
	if ctx.Services[0].Price != "85.00" {
		t.Fatalf("expected price 85.00, got %q", ctx.Services[0].Price)
	}
	if len(ctx.FAQs) != 1 {
		t.Fatalf("expected 1 active FAQ, got %d", len(ctx.FAQs))
	}
	if len(ctx.Knowledge) != 1 {
		t.Fatalf("expected 1 knowledge entry, got %+v", ctx.Knowledge)
	}
}

func TestAssembleHoursAllWeekdaysPresent(t *testing.T) {
	raw := validRaw()
	raw.Hours = []models.BusinessHours{
		{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "17:00"},
		{DayOfWeek: 6, OpenTime: "10:00", CloseTime: "14:00"},
		{DayOfWeek: 3, OpenTime: "09:00", CloseTime: "17:00", IsClosed: true},
	}

	ctx, err := Assemble(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ctx.Hours) != 7 {
		t.Fatalf("expected 7 weekday entries, got %d", len(ctx.Hours))
	}
	for _, key := range WeekdayKeys {
		if _, ok := ctx.Hours[key]; !ok {
			t.Fatalf("missing weekday %q", key)
		}
	}
	if ctx.Hours["monday"].Closed() {
		t.Fatal("monday should be open")
	}
	if ctx.Hours["monday"].Open != "09:00" || ctx.Hours["monday"].Close != "17:00" {
		t.Fatalf("unexpected monday hours: %+v", ctx.Hours["monday"])
	}
	if !ctx.Hours["wednesday"].Closed() {
		t.Fatal("wednesday is marked closed, row should be ignored")
	}
	if !ctx.Hours["sunday"].Closed() {
		t.Fatal("sunday has no row, should be closed")
	}
	if ctx.Hours["saturday"].Open != "10:00" {
		t.Fatalf("saturday should map day index 6, got %+v", ctx.Hours["saturday"])
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{100, "1.00"},
		{8550, "85.50"},
		{129999, "1299.99"},
		{-250, "-2.50"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.cents); got != tt.want {
			t.Fatalf("FormatPrice(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestAssembleTrimsWhitespace(t *testing.T) {
	raw := validRaw()
	raw.Business.Name = "  Sunrise Dental  "
	raw.Persona.GreetingEN = " Hi there! "

	ctx, err := Assemble(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.BusinessName != "Sunrise Dental" {
		t.Fatalf("name not trimmed: %q", ctx.BusinessName)
	}
	if strings.HasPrefix(ctx.GreetingEN, " ") || strings.HasSuffix(ctx.GreetingEN, " ") {
		t.Fatalf("greeting not trimmed: %q", ctx.GreetingEN)
	}
}
