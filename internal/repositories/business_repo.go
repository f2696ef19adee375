package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frontdeskai/receptionist-core/internal/core/assembler"
	"github.com/frontdeskai/receptionist-core/internal/models"
)

// BusinessRepository loads the configuration rows the pipeline consumes.
// The persistent store itself is an external collaborator; this interface
// is the boundary.
type BusinessRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	LoadRawData(ctx context.Context, id uuid.UUID) (*assembler.RawBusinessData, error)
}

type businessRepo struct {
	db *gorm.DB
}

func NewBusinessRepo(db *gorm.DB) BusinessRepository {
	return &businessRepo{db: db}
}

func (r *businessRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	var b models.Business
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load business %s: %w", id, err)
	}
	return &b, nil
}

// LoadRawData gathers every configuration row for one business. Missing
// optional rows (persona, language, call settings, enhancements) come back
// as zero values with defaults the assembler understands; a missing
// business row is an error.
func (r *businessRepo) LoadRawData(ctx context.Context, id uuid.UUID) (*assembler.RawBusinessData, error) {
	raw := &assembler.RawBusinessData{}
	db := r.db.WithContext(ctx)

	if err := db.First(&raw.Business, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load business %s: %w", id, err)
	}

	if err := db.Where("business_id = ?", id).Order("day_of_week ASC").Find(&raw.Hours).Error; err != nil {
		return nil, fmt.Errorf("failed to load hours: %w", err)
	}
	if err := db.Where("business_id = ? AND is_active = ?", id, true).Order("created_at ASC").Find(&raw.Services).Error; err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	if err := db.Where("business_id = ? AND is_active = ?", id, true).Find(&raw.FAQs).Error; err != nil {
		return nil, fmt.Errorf("failed to load faqs: %w", err)
	}
	if err := db.Where("business_id = ? AND is_active = ?", id, true).Find(&raw.Knowledge).Error; err != nil {
		return nil, fmt.Errorf("failed to load knowledge: %w", err)
	}
	if err := db.Where("business_id = ? AND is_active = ?", id, true).Find(&raw.Offers).Error; err != nil {
		return nil, fmt.Errorf("failed to load offers: %w", err)
	}

	if err := firstOrDefault(db, &raw.Persona, id); err != nil {
		return nil, fmt.Errorf("failed to load persona config: %w", err)
	}
	if err := firstOrDefault(db, &raw.Language, id); err != nil {
		return nil, fmt.Errorf("failed to load language settings: %w", err)
	}
	if err := firstOrDefault(db, &raw.CallSettings, id); err != nil {
		return nil, fmt.Errorf("failed to load call settings: %w", err)
	}
	if err := firstOrDefault(db, &raw.Enhancements, id); err != nil {
		return nil, fmt.Errorf("failed to load enhancement settings: %w", err)
	}
	applySettingsDefaults(raw)

	return raw, nil
}

// firstOrDefault loads the single settings row for a business, leaving the
// destination zero-valued when no row exists yet.
func firstOrDefault(db *gorm.DB, dest interface{}, businessID uuid.UUID) error {
	err := db.Where("business_id = ?", businessID).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// applySettingsDefaults fills the defaults the database would have set, for
// businesses that have no settings rows yet.
func applySettingsDefaults(raw *assembler.RawBusinessData) {
	if raw.Persona.Personality == "" {
		raw.Persona.Personality = models.PersonalityProfessional
	}
	if raw.Language.LanguageMode == "" {
		raw.Language.LanguageMode = models.LanguageModeAuto
	}
	if raw.Enhancements.ID == uuid.Nil {
		raw.Enhancements = models.EnhancementSettings{
			IndustryEnhancements:    true,
			FewShotExamplesEnabled:  true,
			SentimentDetectionLevel: models.SentimentDetectionBasic,
			CallerContextEnabled:    true,
			ToneIntensity:           3,
			PersonalityAwareErrors:  true,
			MaxFewShotExamples:      3,
		}
	}
	if raw.CallSettings.ID == uuid.Nil {
		raw.CallSettings.BookingEnabled = true
	}
}
