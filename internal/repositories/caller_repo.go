package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frontdeskai/receptionist-core/internal/models"
)

// CallerProfileRepository reads and upserts caller profiles. The row set is
// owned by the external call store; this core only needs phone-keyed lookup
// for the caller-context module and an upsert after calls.
type CallerProfileRepository interface {
	GetByPhone(ctx context.Context, businessID uuid.UUID, phone string) (*models.CallerProfile, error)
	Upsert(ctx context.Context, profile *models.CallerProfile) error
	RecordCall(ctx context.Context, businessID uuid.UUID, phone, outcome string) error
}

type callerRepo struct {
	db *gorm.DB
}

func NewCallerRepo(db *gorm.DB) CallerProfileRepository {
	return &callerRepo{db: db}
}

// GetByPhone returns nil without error for an unknown caller; the
// caller-context module treats nil as a first-time caller.
func (r *callerRepo) GetByPhone(ctx context.Context, businessID uuid.UUID, phone string) (*models.CallerProfile, error) {
	var profile models.CallerProfile
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND phone = ?", businessID, phone).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load caller profile: %w", err)
	}
	return &profile, nil
}

// Upsert inserts or updates on the (business_id, phone) key.
func (r *callerRepo) Upsert(ctx context.Context, profile *models.CallerProfile) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "business_id"}, {Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "email", "preferences", "call_count", "appointment_count",
				"last_call_outcome", "last_appointment_at", "next_appointment_at",
				"negative_experience", "last_seen_at", "updated_at",
			}),
		}).
		Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert caller profile: %w", err)
	}
	return nil
}

// RecordCall bumps the call counter and outcome after a completed call,
// creating the profile on first contact.
func (r *callerRepo) RecordCall(ctx context.Context, businessID uuid.UUID, phone, outcome string) error {
	now := time.Now()

	existing, err := r.GetByPhone(ctx, businessID, phone)
	if err != nil {
		return err
	}

	if existing == nil {
		profile := &models.CallerProfile{
			BusinessID:      businessID,
			Phone:           phone,
			CallCount:       1,
			LastCallOutcome: outcome,
			LastSeenAt:      &now,
		}
		return r.Upsert(ctx, profile)
	}

	return r.db.WithContext(ctx).Model(&models.CallerProfile{}).
		Where("business_id = ? AND phone = ?", businessID, phone).
		Updates(map[string]interface{}{
			"call_count":        gorm.Expr("call_count + 1"),
			"last_call_outcome": outcome,
			"last_seen_at":      now,
		}).Error
}
