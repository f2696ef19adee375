package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/frontdeskai/receptionist-core/internal/models"
)

func TestEnqueueIdempotent(t *testing.T) {
	repo := NewRegenRepo(testDB(t))
	ctx := context.Background()
	businessID := uuid.New()

	first, inserted, err := repo.Enqueue(ctx, businessID, models.TriggerServicesUpdate)
	if err != nil {
		t.Fatalf("first enqueue failed: %v", err)
	}
	if !inserted {
		t.Fatal("first enqueue must insert")
	}

	second, inserted, err := repo.Enqueue(ctx, businessID, models.TriggerFAQsUpdate)
	if err != nil {
		t.Fatalf("duplicate enqueue must not error: %v", err)
	}
	if inserted {
		t.Fatal("duplicate enqueue must not insert a second row")
	}
	if second == nil || second.ID != first.ID {
		t.Fatalf("duplicate enqueue must return the existing pending job, got %+v", second)
	}

	count, err := repo.PendingCount(ctx)
	if err != nil {
		t.Fatalf("pending count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 pending job, got %d", count)
	}
}

func TestEnqueueRejectsUnknownReason(t *testing.T) {
	repo := NewRegenRepo(testDB(t))

	_, _, err := repo.Enqueue(context.Background(), uuid.New(), models.TriggerReason("cosmic_rays"))
	if err == nil {
		t.Fatal("unknown trigger reason must be rejected")
	}
}

func TestEnqueueAllowsNewJobAfterCompletion(t *testing.T) {
	repo := NewRegenRepo(testDB(t))
	ctx := context.Background()
	businessID := uuid.New()

	job, _, err := repo.Enqueue(ctx, businessID, models.TriggerSettingsUpdate)
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	claimed, err := repo.ClaimNext(ctx)
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if claimed == nil || claimed.ID != job.ID {
		t.Fatalf("expected to claim the queued job, got %+v", claimed)
	}
	if err := repo.MarkCompleted(ctx, claimed.ID); err != nil {
		t.Fatalf("mark completed failed: %v", err)
	}

	// The pending slot is free again: a new enqueue must insert.
	_, inserted, err := repo.Enqueue(ctx, businessID, models.TriggerSettingsUpdate)
	if err != nil {
		t.Fatalf("re-enqueue failed: %v", err)
	}
	if !inserted {
		t.Fatal("enqueue after completion must insert a fresh job")
	}
}

func TestEnqueueConflictAlwaysReturnsJobOrError(t *testing.T) {
	db := testDB(t)
	repo := NewRegenRepo(db)
	ctx := context.Background()
	businessID := uuid.New()

	// A row holding the pending key while no longer pending mirrors the
	// window where a claim is in flight: the insert conflicts, but the
	// follow-up pending lookup finds nothing.
	key := businessID
	stuck := &models.RegenerationJob{
		BusinessID: businessID,
		PendingKey: &key,
		Reason:     models.TriggerServicesUpdate,
		Status:     models.JobProcessing,
	}
	if err := db.Create(stuck).Error; err != nil {
		t.Fatalf("failed to seed conflicting job: %v", err)
	}

	job, inserted, err := repo.Enqueue(ctx, businessID, models.TriggerServicesUpdate)
	if job == nil && err == nil {
		t.Fatal("enqueue must return a job or an error, never neither")
	}
	if err == nil {
		t.Fatalf("expected an error while the pending slot stays conflicted, got job %+v (inserted=%v)", job, inserted)
	}
}

func TestClaimNextLifecycle(t *testing.T) {
	repo := NewRegenRepo(testDB(t))
	ctx := context.Background()

	// Empty queue claims nothing.
	job, err := repo.ClaimNext(ctx)
	if err != nil {
		t.Fatalf("claim on empty queue errored: %v", err)
	}
	if job != nil {
		t.Fatalf("empty queue must claim nil, got %+v", job)
	}

	businessA := uuid.New()
	businessB := uuid.New()
	first, _, err := repo.Enqueue(ctx, businessA, models.TriggerServicesUpdate)
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	if _, _, err := repo.Enqueue(ctx, businessB, models.TriggerFAQsUpdate); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	claimed, err := repo.ClaimNext(ctx)
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if claimed.ID != first.ID {
		t.Fatal("claim must take the oldest pending job")
	}
	if claimed.Status != models.JobProcessing {
		t.Fatalf("claimed job status = %s, want processing", claimed.Status)
	}
	if claimed.PendingKey != nil {
		t.Fatal("claimed job must release the pending key")
	}
	if claimed.Attempts != 1 {
		t.Fatalf("claimed job attempts = %d, want 1", claimed.Attempts)
	}
	if claimed.StartedAt == nil {
		t.Fatal("claimed job must record started_at")
	}
}

func TestMarkFailedRecordsError(t *testing.T) {
	repo := NewRegenRepo(testDB(t))
	ctx := context.Background()

	job, _, err := repo.Enqueue(ctx, uuid.New(), models.TriggerKnowledgeUpdate)
	if err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	claimed, err := repo.ClaimNext(ctx)
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	if err := repo.MarkFailed(ctx, claimed.ID, errors.New("backend unavailable")); err != nil {
		t.Fatalf("mark failed errored: %v", err)
	}

	pending, err := repo.GetPending(ctx, job.BusinessID)
	if err != nil {
		t.Fatalf("get pending failed: %v", err)
	}
	if pending != nil {
		t.Fatal("failed job must not stay pending")
	}
}

func TestCancelPending(t *testing.T) {
	repo := NewRegenRepo(testDB(t))
	ctx := context.Background()
	businessID := uuid.New()

	if _, _, err := repo.Enqueue(ctx, businessID, models.TriggerLanguageUpdate); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}

	cancelled, err := repo.CancelPending(ctx, businessID)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if !cancelled {
		t.Fatal("expected a pending job to be cancelled")
	}

	pending, err := repo.GetPending(ctx, businessID)
	if err != nil {
		t.Fatalf("get pending failed: %v", err)
	}
	if pending != nil {
		t.Fatal("cancelled job must not stay pending")
	}

	// Nothing left to cancel.
	cancelled, err = repo.CancelPending(ctx, businessID)
	if err != nil {
		t.Fatalf("second cancel errored: %v", err)
	}
	if cancelled {
		t.Fatal("second cancel must report nothing cancelled")
	}
}
