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

// RegenerationQueueRepository persists regeneration jobs.
//
// Enqueue idempotency is enforced at the storage layer: the pending_key
// column holds the business ID only while a job is pending, and carries a
// unique index. A concurrent duplicate insert hits ON CONFLICT DO NOTHING
// instead of racing an application-level check-then-insert.
type RegenerationQueueRepository interface {
	Enqueue(ctx context.Context, businessID uuid.UUID, reason models.TriggerReason) (*models.RegenerationJob, bool, error)
	ClaimNext(ctx context.Context) (*models.RegenerationJob, error)
	MarkCompleted(ctx context.Context, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, jobID uuid.UUID, jobErr error) error
	CancelPending(ctx context.Context, businessID uuid.UUID) (bool, error)
	PendingCount(ctx context.Context) (int64, error)
	GetPending(ctx context.Context, businessID uuid.UUID) (*models.RegenerationJob, error)
}

type regenRepo struct {
	db *gorm.DB
}

func NewRegenRepo(db *gorm.DB) RegenerationQueueRepository {
	return &regenRepo{db: db}
}

// Enqueue inserts a pending job unless one already exists for the business.
// The bool result reports whether a new row was inserted; false with a nil
// error means an equivalent pending job was already queued, which callers
// treat as success. Enqueue always returns a job or an error: if the
// conflicting job is claimed between the insert and the follow-up lookup,
// the insert is retried against the now-free pending slot.
func (r *regenRepo) Enqueue(ctx context.Context, businessID uuid.UUID, reason models.TriggerReason) (*models.RegenerationJob, bool, error) {
	if !models.ValidTriggerReason(reason) {
		return nil, false, fmt.Errorf("unknown trigger reason: %s", reason)
	}

	for attempt := 0; attempt < 3; attempt++ {
		key := businessID
		job := &models.RegenerationJob{
			BusinessID: businessID,
			PendingKey: &key,
			Reason:     reason,
			Status:     models.JobPending,
		}

		result := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "pending_key"}},
				DoNothing: true,
			}).
			Create(job)
		if result.Error != nil {
			return nil, false, fmt.Errorf("failed to enqueue regeneration job: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			return job, true, nil
		}

		existing, err := r.GetPending(ctx, businessID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, false, nil
		}
	}

	return nil, false, fmt.Errorf("failed to enqueue regeneration job for business %s: pending slot kept conflicting", businessID)
}

// ClaimNext atomically takes the oldest pending job and marks it processing.
// Returns nil when the queue is empty.
func (r *regenRepo) ClaimNext(ctx context.Context) (*models.RegenerationJob, error) {
	var job models.RegenerationJob

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("status = ?", models.JobPending).
			Order("created_at ASC").
			First(&job).Error
		if err != nil {
			return err
		}

		now := time.Now()
		job.Status = models.JobProcessing
		job.PendingKey = nil
		job.StartedAt = &now
		job.Attempts++

		return tx.Save(&job).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to claim regeneration job: %w", err)
	}
	return &job, nil
}

func (r *regenRepo) MarkCompleted(ctx context.Context, jobID uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&models.RegenerationJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":       models.JobCompleted,
			"completed_at": now,
			"pending_key":  nil,
		}).Error
}

func (r *regenRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, jobErr error) error {
	now := time.Now()
	msg := ""
	if jobErr != nil {
		msg = jobErr.Error()
	}
	return r.db.WithContext(ctx).Model(&models.RegenerationJob{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":       models.JobFailed,
			"completed_at": now,
			"pending_key":  nil,
			"error":        msg,
		}).Error
}

// CancelPending drops the queued job for a business, if any. Used after a
// successful synchronous regeneration so the queue does not redo work and
// clobber the fresh artifact.
func (r *regenRepo) CancelPending(ctx context.Context, businessID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.RegenerationJob{}).
		Where("business_id = ? AND status = ?", businessID, models.JobPending).
		Updates(map[string]interface{}{
			"status":      models.JobCancelled,
			"pending_key": nil,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to cancel pending job: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *regenRepo) PendingCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RegenerationJob{}).
		Where("status = ?", models.JobPending).
		Count(&count).Error
	return count, err
}

func (r *regenRepo) GetPending(ctx context.Context, businessID uuid.UUID) (*models.RegenerationJob, error) {
	var job models.RegenerationJob
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND status = ?", businessID, models.JobPending).
		First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pending job: %w", err)
	}
	return &job, nil
}
