package enhance

import (
	"fmt"
	"strings"
	"time"

	"github.com/frontdeskai/receptionist-core/internal/models"
)

// VIP thresholds: a caller qualifies with either prior-call volume or
// appointment history.
const (
	vipCallThreshold        = 5
	vipAppointmentThreshold = 3
	recentVisitWindow       = 7 * 24 * time.Hour
)

// CallerContext is the rendered personalization packet for one caller.
type CallerContext struct {
	IsRepeat      bool
	IsVIP         bool
	Fragment      string // "new caller" or "repeat caller" prose block
	GreetingHint  string // personalized greeting override, empty for new callers
	FollowUpHints []string
}

// BuildCallerContext renders a caller-context fragment from a profile
// lookup. A nil profile means a first-time caller. Pure function of the
// profile and "now"; the clock is injected so recency rules are testable.
func BuildCallerContext(profile *models.CallerProfile, now time.Time) CallerContext {
	if profile == nil || profile.CallCount == 0 {
		return CallerContext{
			IsRepeat: false,
			Fragment: "This is a first-time caller. Make a strong first impression: introduce the business naturally, " +
				"ask how you can help, and collect their name early in the conversation.",
		}
	}

	cc := CallerContext{IsRepeat: true}
	cc.IsVIP = profile.CallCount >= vipCallThreshold || profile.AppointmentCount >= vipAppointmentThreshold

	var sb strings.Builder
	name := strings.TrimSpace(profile.Name)
	if name != "" {
		fmt.Fprintf(&sb, "This is a repeat caller named %s", name)
	} else {
		sb.WriteString("This is a repeat caller")
	}
	fmt.Fprintf(&sb, " (%d prior calls", profile.CallCount)
	if profile.AppointmentCount > 0 {
		fmt.Fprintf(&sb, ", %d appointments on record", profile.AppointmentCount)
	}
	sb.WriteString("). Do not re-ask for information already on file.")
	if profile.LastCallOutcome != "" {
		fmt.Fprintf(&sb, " Last call outcome: %s.", profile.LastCallOutcome)
	}
	if len(profile.Preferences) > 0 {
		fmt.Fprintf(&sb, " Known preferences: %s.", strings.Join(profile.Preferences, "; "))
	}
	if cc.IsVIP {
		sb.WriteString(" This is a VIP caller: prioritize their requests and offer the best available options first.")
	}
	cc.Fragment = sb.String()

	if name != "" {
		cc.GreetingHint = fmt.Sprintf("Greet the caller by name: welcome back %s.", name)
	} else {
		cc.GreetingHint = "Acknowledge that they have called before and welcome them back."
	}

	cc.FollowUpHints = followUpHints(profile, now)
	return cc
}

// followUpHints applies the recency rules. A recorded negative experience
// always produces a caution hint and takes priority over the others.
func followUpHints(profile *models.CallerProfile, now time.Time) []string {
	var hints []string

	if profile.NegativeExperience {
		hints = append(hints, "Caution: this caller had a negative experience previously. "+
			"Be extra attentive, apologize if they bring it up, and offer escalation to the owner readily.")
	}

	if profile.NextAppointmentAt != nil && profile.NextAppointmentAt.After(now) {
		hints = append(hints, fmt.Sprintf("They have an upcoming appointment on %s. "+
			"Ask if the call is about it before assuming a new booking.",
			profile.NextAppointmentAt.Format("Monday, January 2")))
	} else if profile.LastAppointmentAt != nil && now.Sub(*profile.LastAppointmentAt) <= recentVisitWindow && profile.LastAppointmentAt.Before(now) {
		hints = append(hints, "They visited within the last week. "+
			"Ask how their recent visit went before moving to the new request.")
	}

	return hints
}
