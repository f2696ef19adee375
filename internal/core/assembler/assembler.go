package assembler

import (
	"fmt"
	"strings"

	"github.com/frontdeskai/receptionist-core/internal/models"
)

// ValidationError marks malformed input. It is the only hard-fail point in
// the pipeline; everything downstream assumes a valid PromptContext.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid business data: %s %s", e.Field, e.Msg)
}

// RawBusinessData is the unnormalized row set loaded by the repositories.
type RawBusinessData struct {
	Business     models.Business
	Hours        []models.BusinessHours
	Services     []models.ServiceItem
	FAQs         []models.FAQEntry
	Knowledge    []models.KnowledgeEntry
	Persona      models.PersonaConfig
	Language     models.LanguageSettings
	CallSettings models.CallSettings
	Offers       []models.CommercialOffer
	Enhancements models.EnhancementSettings
}

// DayHours is the normalized opening hours for one weekday.
// Open == "" means closed that day.
type DayHours struct {
	Open  string
	Close string
}

// Closed reports whether the day has no opening hours.
func (d DayHours) Closed() bool {
	return d.Open == ""
}

// Service is a normalized bookable service with a display-ready price.
type Service struct {
	Name            string
	DurationMinutes int
	Price           string // "85.00", already in major units
}

// FAQ is a normalized question/answer pair.
type FAQ struct {
	Question string
	Answer   string
}

// Offer is a normalized commercial offer rendered verbatim downstream.
type Offer struct {
	Kind    string
	Title   string
	Details string
}

// PromptContext is the single normalized input the composer consumes.
type PromptContext struct {
	BusinessID      string
	BusinessName    string
	BusinessType    string
	ServiceArea     string
	Differentiators []string
	NeverSay        []string

	Hours map[string]DayHours // keyed by weekday name, all seven present

	Services  []Service
	FAQs      []FAQ
	Knowledge []string
	Offers    []Offer

	AgentName   string
	Personality string
	GreetingEN  string
	GreetingES  string

	SpanishEnabled bool
	LanguageMode   string

	TransferNumber   string
	TransferRules    string
	AfterHoursRules  string
	BookingEnabled   bool
	BookingRules     string
	MinutesExhausted bool

	Enhancements models.EnhancementSettings
}

// WeekdayKeys lists the canonical weekday names in render order.
var WeekdayKeys = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// weekday index as stored (0 = Sunday .. 6 = Saturday) to canonical key.
var weekdayByIndex = map[int]string{
	0: "sunday",
	1: "monday",
	2: "tuesday",
	3: "wednesday",
	4: "thursday",
	5: "friday",
	6: "saturday",
}

// Assemble normalizes raw business rows into a PromptContext.
// Pure transform: no I/O, no side effects.
func Assemble(raw RawBusinessData) (*PromptContext, error) {
	if strings.TrimSpace(raw.Business.Name) == "" {
		return nil, &ValidationError{Field: "business name", Msg: "is required"}
	}
	if strings.TrimSpace(raw.Business.BusinessType) == "" {
		return nil, &ValidationError{Field: "business type", Msg: "is required"}
	}
	if !models.ValidPersonality(raw.Persona.Personality) {
		return nil, &ValidationError{Field: "personality", Msg: fmt.Sprintf("%q is not recognized", raw.Persona.Personality)}
	}

	ctx := &PromptContext{
		BusinessID:       raw.Business.ID.String(),
		BusinessName:     strings.TrimSpace(raw.Business.Name),
		BusinessType:     strings.TrimSpace(raw.Business.BusinessType),
		ServiceArea:      strings.TrimSpace(raw.Business.ServiceArea),
		Differentiators:  raw.Business.Differentiators,
		NeverSay:         raw.Business.NeverSay,
		Hours:            assembleHours(raw.Hours),
		AgentName:        strings.TrimSpace(raw.Persona.DisplayName),
		Personality:      raw.Persona.Personality,
		GreetingEN:       strings.TrimSpace(raw.Persona.GreetingEN),
		GreetingES:       strings.TrimSpace(raw.Persona.GreetingES),
		SpanishEnabled:   raw.Language.SpanishEnabled,
		LanguageMode:     raw.Language.LanguageMode,
		TransferNumber:   raw.CallSettings.TransferNumber,
		TransferRules:    raw.CallSettings.TransferRules,
		AfterHoursRules:  raw.CallSettings.AfterHoursRules,
		BookingEnabled:   raw.CallSettings.BookingEnabled,
		BookingRules:     raw.CallSettings.BookingRules,
		MinutesExhausted: raw.CallSettings.MinutesExhausted,
		Enhancements:     raw.Enhancements,
	}

	if ctx.AgentName == "" {
		ctx.AgentName = "the receptionist"
	}
	if ctx.LanguageMode == "" {
		ctx.LanguageMode = models.LanguageModeAuto
	}

	for _, s := range raw.Services {
		if !s.IsActive {
			continue
		}
		ctx.Services = append(ctx.Services, Service{
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           FormatPrice(s.PriceCents),
		})
	}

	for _, f := range raw.FAQs {
		if !f.IsActive {
			continue
		}
		ctx.FAQs = append(ctx.FAQs, FAQ{Question: f.Question, Answer: f.Answer})
	}

	for _, k := range raw.Knowledge {
		if !k.IsActive {
			continue
		}
		if text := strings.TrimSpace(k.Content); text != "" {
			ctx.Knowledge = append(ctx.Knowledge, text)
		}
	}

	for _, o := range raw.Offers {
		if !o.IsActive {
			continue
		}
		ctx.Offers = append(ctx.Offers, Offer{
			Kind:    o.Kind,
			Title:   o.Title,
			Details: string(o.Details),
		})
	}

	return ctx, nil
}

// assembleHours converts day-index rows into a map over all seven weekday
// keys. Days without a row, or marked closed, get the null-hours marker.
func assembleHours(rows []models.BusinessHours) map[string]DayHours {
	hours := make(map[string]DayHours, len(WeekdayKeys))
	for _, key := range WeekdayKeys {
		hours[key] = DayHours{}
	}
	for _, row := range rows {
		key, ok := weekdayByIndex[row.DayOfWeek]
		if !ok || row.IsClosed || row.OpenTime == "" || row.CloseTime == "" {
			continue
		}
		hours[key] = DayHours{Open: row.OpenTime, Close: row.CloseTime}
	}
	return hours
}

// FormatPrice converts minor-currency cents into a fixed two-decimal major
// unit string. All arithmetic stays in integers so there is no float drift.
func FormatPrice(cents int64) string {
	neg := ""
	if cents < 0 {
		neg = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", neg, cents/100, cents%100)
}
