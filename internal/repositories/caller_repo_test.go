package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestGetByPhoneUnknownCaller(t *testing.T) {
	repo := NewCallerRepo(testDB(t))

	profile, err := repo.GetByPhone(context.Background(), uuid.New(), "+15550000000")
	if err != nil {
		t.Fatalf("unknown caller must not error: %v", err)
	}
	if profile != nil {
		t.Fatalf("unknown caller must return nil profile, got %+v", profile)
	}
}

func TestRecordCallCreatesAndIncrements(t *testing.T) {
	repo := NewCallerRepo(testDB(t))
	ctx := context.Background()
	businessID := uuid.New()
	phone := "+15125550123"

	if err := repo.RecordCall(ctx, businessID, phone, "message_taken"); err != nil {
		t.Fatalf("first record call failed: %v", err)
	}

	profile, err := repo.GetByPhone(ctx, businessID, phone)
	if err != nil {
		t.Fatalf("get by phone failed: %v", err)
	}
	if profile == nil {
		t.Fatal("first call must create the profile")
	}
	if profile.CallCount != 1 {
		t.Fatalf("call count = %d, want 1", profile.CallCount)
	}
	if profile.LastCallOutcome != "message_taken" {
		t.Fatalf("outcome = %q, want message_taken", profile.LastCallOutcome)
	}

	if err := repo.RecordCall(ctx, businessID, phone, "appointment_booked"); err != nil {
		t.Fatalf("second record call failed: %v", err)
	}

	profile, err = repo.GetByPhone(ctx, businessID, phone)
	if err != nil {
		t.Fatalf("get by phone failed: %v", err)
	}
	if profile.CallCount != 2 {
		t.Fatalf("call count = %d, want 2", profile.CallCount)
	}
	if profile.LastCallOutcome != "appointment_booked" {
		t.Fatalf("outcome = %q, want appointment_booked", profile.LastCallOutcome)
	}
}

func TestRecordCallScopedToBusiness(t *testing.T) {
	repo := NewCallerRepo(testDB(t))
	ctx := context.Background()
	phone := "+15125550123"
	businessA := uuid.New()
	businessB := uuid.New()

	if err := repo.RecordCall(ctx, businessA, phone, "message_taken"); err != nil {
		t.Fatalf("record call failed: %v", err)
	}

	profile, err := repo.GetByPhone(ctx, businessB, phone)
	if err != nil {
		t.Fatalf("get by phone failed: %v", err)
	}
	if profile != nil {
		t.Fatal("the same phone at another business is a different caller")
	}
}
