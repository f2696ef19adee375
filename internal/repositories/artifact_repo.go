package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frontdeskai/receptionist-core/internal/models"
)

// ErrNoActiveArtifact is returned when a business has no generated prompt yet.
var ErrNoActiveArtifact = errors.New("no active prompt artifact")

// PromptArtifactRepository stores versioned generated prompts. Artifacts are
// append-only: Create inserts the next version and retires the current one
// in the same transaction, so exactly one artifact stays active per business
// and versions strictly increase even under concurrent writers.
type PromptArtifactRepository interface {
	Create(ctx context.Context, artifact *models.PromptArtifact) error
	GetActive(ctx context.Context, businessID uuid.UUID) (*models.PromptArtifact, error)
	ListVersions(ctx context.Context, businessID uuid.UUID, limit int) ([]models.PromptArtifact, error)
}

type artifactRepo struct {
	db *gorm.DB
}

func NewArtifactRepo(db *gorm.DB) PromptArtifactRepository {
	return &artifactRepo{db: db}
}

// Create assigns the next version and activates the artifact atomically.
// The version read and both writes share one transaction: two concurrent
// regenerations for the same business serialize at the database instead of
// clobbering each other's version numbers.
func (r *artifactRepo) Create(ctx context.Context, artifact *models.PromptArtifact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxVersion int
		err := tx.Model(&models.PromptArtifact{}).
			Where("business_id = ?", artifact.BusinessID).
			Select("COALESCE(MAX(version), 0)").
			Scan(&maxVersion).Error
		if err != nil {
			return fmt.Errorf("failed to read current version: %w", err)
		}

		if err := tx.Model(&models.PromptArtifact{}).
			Where("business_id = ? AND is_active = ?", artifact.BusinessID, true).
			Update("is_active", false).Error; err != nil {
			return fmt.Errorf("failed to retire active artifact: %w", err)
		}

		artifact.Version = maxVersion + 1
		artifact.IsActive = true

		if err := tx.Create(artifact).Error; err != nil {
			return fmt.Errorf("failed to insert artifact: %w", err)
		}
		return nil
	})
}

func (r *artifactRepo) GetActive(ctx context.Context, businessID uuid.UUID) (*models.PromptArtifact, error) {
	var artifact models.PromptArtifact
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND is_active = ?", businessID, true).
		First(&artifact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveArtifact
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load active artifact: %w", err)
	}
	return &artifact, nil
}

func (r *artifactRepo) ListVersions(ctx context.Context, businessID uuid.UUID, limit int) ([]models.PromptArtifact, error) {
	query := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("version DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var artifacts []models.PromptArtifact
	if err := query.Find(&artifacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list artifact versions: %w", err)
	}
	return artifacts, nil
}
