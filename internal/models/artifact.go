package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromptArtifact is one generated operating script for a business.
// Artifacts are immutable: a regeneration inserts a new row with the next
// version and flips IsActive — it never updates a stored text.
type PromptArtifact struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;index:idx_artifact_business" json:"business_id"`
	Version     int       `gorm:"not null" json:"version"`
	EnglishText string    `gorm:"type:text;not null" json:"english_text"`
	SpanishText string    `gorm:"type:text" json:"spanish_text"`
	TokensEN    int       `gorm:"not null;default:0" json:"tokens_en"`
	TokensES    int       `gorm:"not null;default:0" json:"tokens_es"`
	Mock        bool      `gorm:"default:false" json:"mock"`
	IsActive    bool      `gorm:"default:false;index:idx_artifact_business" json:"is_active"`
	GeneratedAt time.Time `gorm:"not null" json:"generated_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PromptArtifact) TableName() string {
	return "prompt_artifacts"
}

func (a *PromptArtifact) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
