package enhance

import (
	"strings"
	"testing"
	"time"

	"github.com/frontdeskai/receptionist-core/internal/models"
)

var testNow = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

func TestBuildCallerContextNewCaller(t *testing.T) {
	for _, profile := range []*models.CallerProfile{nil, {CallCount: 0}} {
		cc := BuildCallerContext(profile, testNow)
		if cc.IsRepeat {
			t.Fatal("caller with no prior calls must not be a repeat caller")
		}
		if cc.IsVIP {
			t.Fatal("new caller cannot be VIP")
		}
		if !strings.Contains(cc.Fragment, "first-time caller") {
			t.Fatalf("unexpected fragment: %q", cc.Fragment)
		}
		if cc.GreetingHint != "" {
			t.Fatalf("new caller should have no greeting hint, got %q", cc.GreetingHint)
		}
	}
}

func TestBuildCallerContextRepeatCaller(t *testing.T) {
	cc := BuildCallerContext(&models.CallerProfile{
		Name:            "Jordan",
		CallCount:       2,
		LastCallOutcome: "appointment_booked",
		Preferences:     []string{"prefers mornings"},
	}, testNow)

	if !cc.IsRepeat {
		t.Fatal("expected repeat caller")
	}
	if cc.IsVIP {
		t.Fatal("2 calls should not qualify as VIP")
	}
	if !strings.Contains(cc.Fragment, "Jordan") {
		t.Fatalf("fragment should name the caller: %q", cc.Fragment)
	}
	if !strings.Contains(cc.Fragment, "appointment_booked") {
		t.Fatalf("fragment should carry last outcome: %q", cc.Fragment)
	}
	if !strings.Contains(cc.Fragment, "prefers mornings") {
		t.Fatalf("fragment should carry preferences: %q", cc.Fragment)
	}
	if !strings.Contains(cc.GreetingHint, "Jordan") {
		t.Fatalf("greeting hint should use the name: %q", cc.GreetingHint)
	}
}

func TestBuildCallerContextVIPThresholds(t *testing.T) {
	tests := []struct {
		name    string
		profile models.CallerProfile
		vip     bool
	}{
		{"five calls", models.CallerProfile{CallCount: 5}, true},
		{"four calls", models.CallerProfile{CallCount: 4}, false},
		{"three appointments", models.CallerProfile{CallCount: 1, AppointmentCount: 3}, true},
		{"two appointments", models.CallerProfile{CallCount: 1, AppointmentCount: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := BuildCallerContext(&tt.profile, testNow)
			if cc.IsVIP != tt.vip {
				t.Fatalf("IsVIP = %v, want %v", cc.IsVIP, tt.vip)
			}
		})
	}
}

func TestFollowUpHintPriority(t *testing.T) {
	upcoming := testNow.Add(48 * time.Hour)
	recent := testNow.Add(-3 * 24 * time.Hour)

	// Upcoming appointment wins over recent visit.
	cc := BuildCallerContext(&models.CallerProfile{
		CallCount:         3,
		NextAppointmentAt: &upcoming,
		LastAppointmentAt: &recent,
	}, testNow)
	if len(cc.FollowUpHints) != 1 || !strings.Contains(cc.FollowUpHints[0], "upcoming appointment") {
		t.Fatalf("expected upcoming-appointment hint, got %v", cc.FollowUpHints)
	}

	// Recent visit hint when no upcoming appointment.
	cc = BuildCallerContext(&models.CallerProfile{
		CallCount:         3,
		LastAppointmentAt: &recent,
	}, testNow)
	if len(cc.FollowUpHints) != 1 || !strings.Contains(cc.FollowUpHints[0], "last week") {
		t.Fatalf("expected recent-visit hint, got %v", cc.FollowUpHints)
	}

	// Visits older than the window produce no hint.
	stale := testNow.Add(-10 * 24 * time.Hour)
	cc = BuildCallerContext(&models.CallerProfile{
		CallCount:         3,
		LastAppointmentAt: &stale,
	}, testNow)
	if len(cc.FollowUpHints) != 0 {
		t.Fatalf("expected no hints for stale visit, got %v", cc.FollowUpHints)
	}
}

func TestFollowUpHintNegativeExperienceFirst(t *testing.T) {
	upcoming := testNow.Add(24 * time.Hour)
	cc := BuildCallerContext(&models.CallerProfile{
		CallCount:          3,
		NegativeExperience: true,
		NextAppointmentAt:  &upcoming,
	}, testNow)

	if len(cc.FollowUpHints) != 2 {
		t.Fatalf("expected caution plus appointment hint, got %v", cc.FollowUpHints)
	}
	if !strings.Contains(cc.FollowUpHints[0], "negative experience") {
		t.Fatalf("caution hint must come first, got %q", cc.FollowUpHints[0])
	}
}
