package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Business is the root configuration row for one client company.
type Business struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name            string         `gorm:"type:text;not null" json:"name"`
	BusinessType    string         `gorm:"type:text;not null" json:"business_type"` // free text, classified by the industry registry
	ServiceArea     string         `gorm:"type:text" json:"service_area"`
	Differentiators pq.StringArray `gorm:"type:text[]" json:"differentiators"`
	NeverSay        pq.StringArray `gorm:"type:text[]" json:"never_say"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Business) TableName() string {
	return "businesses"
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// BusinessHours is one weekday row. DayOfWeek is 0 (Sunday) through 6 (Saturday).
// A missing row or IsClosed=true means the business is closed that day.
type BusinessHours struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	DayOfWeek  int       `gorm:"not null" json:"day_of_week"`
	OpenTime   string    `gorm:"type:varchar(8)" json:"open_time"`  // "09:00"
	CloseTime  string    `gorm:"type:varchar(8)" json:"close_time"` // "17:30"
	IsClosed   bool      `gorm:"default:false" json:"is_closed"`
}

func (BusinessHours) TableName() string {
	return "business_hours"
}

// ServiceItem is a bookable service. Price is stored in minor currency units
// (cents) so arithmetic stays integer-safe.
type ServiceItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	Name            string    `gorm:"type:text;not null" json:"name"`
	DurationMinutes int       `gorm:"not null;default:30" json:"duration_minutes"`
	PriceCents      int64     `gorm:"not null;default:0" json:"price_cents"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ServiceItem) TableName() string {
	return "services"
}

// FAQEntry is a question/answer pair rendered verbatim into the prompt.
type FAQEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	Question   string    `gorm:"type:text;not null" json:"question"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
}

func (FAQEntry) TableName() string {
	return "faqs"
}

// KnowledgeEntry is free-text knowledge the owner typed in.
type KnowledgeEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index" json:"business_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
}

func (KnowledgeEntry) TableName() string {
	return "knowledge_entries"
}

// Personality values accepted by the pipeline.
const (
	PersonalityProfessional = "professional"
	PersonalityFriendly     = "friendly"
	PersonalityCasual       = "casual"
)

// ValidPersonality reports whether p is one of the three supported personalities.
func ValidPersonality(p string) bool {
	switch p {
	case PersonalityProfessional, PersonalityFriendly, PersonalityCasual:
		return true
	}
	return false
}

// PersonaConfig holds the AI receptionist persona for a business.
type PersonaConfig struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"business_id"`
	DisplayName     string    `gorm:"type:text;not null" json:"display_name"`
	Personality     string    `gorm:"type:varchar(20);not null;default:'professional'" json:"personality"`
	GreetingEN      string    `gorm:"type:text" json:"greeting_en"`
	GreetingES      string    `gorm:"type:text" json:"greeting_es"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PersonaConfig) TableName() string {
	return "persona_configs"
}

// Language modes for bilingual call handling.
const (
	LanguageModeAuto           = "auto"
	LanguageModeAsk            = "ask"
	LanguageModeSpanishDefault = "spanish_default"
)

// LanguageSettings controls bilingual output for a business.
type LanguageSettings struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"business_id"`
	SpanishEnabled bool      `gorm:"default:false" json:"spanish_enabled"`
	LanguageMode   string    `gorm:"type:varchar(20);not null;default:'auto'" json:"language_mode"`
}

func (LanguageSettings) TableName() string {
	return "language_settings"
}

// CallSettings holds transfer, after-hours and booking rules plus the usage flags.
type CallSettings struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"business_id"`
	TransferNumber   string    `gorm:"type:varchar(30)" json:"transfer_number"`
	TransferRules    string    `gorm:"type:text" json:"transfer_rules"`
	AfterHoursRules  string    `gorm:"type:text" json:"after_hours_rules"`
	BookingEnabled   bool      `gorm:"default:true" json:"booking_enabled"`
	BookingRules     string    `gorm:"type:text" json:"booking_rules"`
	MinutesRemaining int       `gorm:"default:0" json:"minutes_remaining"`
	MinutesExhausted bool      `gorm:"default:false" json:"minutes_exhausted"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CallSettings) TableName() string {
	return "call_settings"
}

// Offer kinds rendered verbatim into the prompt.
const (
	OfferKindUpsell     = "upsell"
	OfferKindBundle     = "bundle"
	OfferKindPackage    = "package"
	OfferKindMembership = "membership"
)

// CommercialOffer is pure data: the composer renders Details verbatim.
type CommercialOffer struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID uuid.UUID      `gorm:"type:uuid;not null;index" json:"business_id"`
	Kind       string         `gorm:"type:varchar(20);not null" json:"kind"`
	Title      string         `gorm:"type:text;not null" json:"title"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
}

func (CommercialOffer) TableName() string {
	return "commercial_offers"
}

// Sentiment detection levels for EnhancementSettings.
const (
	SentimentDetectionNone     = "none"
	SentimentDetectionBasic    = "basic"
	SentimentDetectionAdvanced = "advanced"
)

// EnhancementSettings toggles the optional knowledge modules per business.
type EnhancementSettings struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"business_id"`
	IndustryEnhancements    bool      `gorm:"default:true" json:"industry_enhancements"`
	FewShotExamplesEnabled  bool      `gorm:"default:true" json:"few_shot_examples_enabled"`
	SentimentDetectionLevel string    `gorm:"type:varchar(20);not null;default:'basic'" json:"sentiment_detection_level"`
	CallerContextEnabled    bool      `gorm:"default:true" json:"caller_context_enabled"`
	ToneIntensity           int       `gorm:"default:3" json:"tone_intensity"` // 1..5
	PersonalityAwareErrors  bool      `gorm:"default:true" json:"personality_aware_errors"`
	MaxFewShotExamples      int       `gorm:"default:3" json:"max_few_shot_examples"`
	UpdatedAt               time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EnhancementSettings) TableName() string {
	return "enhancement_settings"
}
