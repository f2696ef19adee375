package enhance

import (
	"strings"
)

// DialogueTurn is one line of an example conversation.
type DialogueTurn struct {
	Speaker string // "Caller" or "Agent"
	Text    string
}

// FewShotExample is a curated example conversation tagged for selection.
type FewShotExample struct {
	Category    string
	Personality string
	Industry    string // optional; empty means any industry
	Turns       []DialogueTurn
}

// Render formats the example as a labeled transcript block.
func (e *FewShotExample) Render() string {
	var sb strings.Builder
	sb.WriteString("Example (")
	sb.WriteString(e.Category)
	sb.WriteString("):\n")
	for _, t := range e.Turns {
		sb.WriteString(t.Speaker)
		sb.WriteString(": ")
		sb.WriteString(t.Text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// SelectFewShot returns up to max examples for the personality and industry.
// Selection is deterministic: exact personality+industry matches first, then
// personality-only matches, concatenated in declaration order and truncated.
func SelectFewShot(personality, industryKey string, max int) []*FewShotExample {
	if max <= 0 {
		return nil
	}

	var exact, general []*FewShotExample
	for _, e := range fewShotLibrary {
		if e.Personality != personality {
			continue
		}
		if e.Industry != "" && e.Industry == industryKey {
			exact = append(exact, e)
		} else if e.Industry == "" {
			general = append(general, e)
		}
	}

	selected := append(exact, general...)
	if len(selected) > max {
		selected = selected[:max]
	}
	return selected
}

// fewShotLibrary is the curated example set, built once. No randomness:
// order here is selection order.
var fewShotLibrary = []*FewShotExample{
	{
		Category:    "booking",
		Personality: "professional",
		Industry:    "dental",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "I'd like to schedule a cleaning sometime next week."},
			{Speaker: "Agent", Text: "Certainly. We have openings Tuesday at 10:00 AM and Thursday at 2:30 PM. Which works better for you?"},
			{Speaker: "Caller", Text: "Thursday works."},
			{Speaker: "Agent", Text: "You're booked for Thursday at 2:30 PM. May I have your name and a callback number to confirm the appointment?"},
		},
	},
	{
		Category:    "urgent",
		Personality: "professional",
		Industry:    "hvac",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "My furnace stopped working and it's freezing in here."},
			{Speaker: "Agent", Text: "I'm sorry to hear that — we treat no-heat calls as a priority. May I have your address so I can arrange the earliest emergency visit?"},
		},
	},
	{
		Category:    "booking",
		Personality: "professional",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "Do you have anything available this Friday?"},
			{Speaker: "Agent", Text: "Let me check Friday's schedule. We have 9:00 AM and 3:00 PM available. Would either of those suit you?"},
		},
	},
	{
		Category:    "pricing",
		Personality: "professional",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "How much do you charge?"},
			{Speaker: "Agent", Text: "Pricing depends on the service you need. Could you tell me a little about what you're looking for, and I'll share the listed rates?"},
		},
	},
	{
		Category:    "message",
		Personality: "professional",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "I need to speak with the owner directly."},
			{Speaker: "Agent", Text: "The owner isn't available at the moment, but I'll make sure your message reaches them today. May I take your name, number, and a brief description of the matter?"},
		},
	},
	{
		Category:    "booking",
		Personality: "friendly",
		Industry:    "beauty",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "Hi, can I get in with Jess for a color this weekend?"},
			{Speaker: "Agent", Text: "Hi there! Jess is wonderful — let me see her weekend. She has Saturday at 1:00 PM open. Want me to grab that for you?"},
		},
	},
	{
		Category:    "booking",
		Personality: "friendly",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "I'd like to book an appointment."},
			{Speaker: "Agent", Text: "I'd be happy to help with that! What day works best for you, and is there anything in particular you'd like us to take care of?"},
		},
	},
	{
		Category:    "complaint",
		Personality: "friendly",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "I'm really not happy with my last visit."},
			{Speaker: "Agent", Text: "Oh no, I'm so sorry to hear that. That's not the experience we want for you at all. Can you tell me what happened so I can get it to the owner right away?"},
		},
	},
	{
		Category:    "pricing",
		Personality: "friendly",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "What would something like that run me?"},
			{Speaker: "Agent", Text: "Great question! Let me share what's listed — and if your situation is a little different, I can have someone give you an exact quote."},
		},
	},
	{
		Category:    "booking",
		Personality: "casual",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "Hey, got anything open tomorrow?"},
			{Speaker: "Agent", Text: "Hey! Let me take a look — yep, we've got a 11:00 and a 4:30 tomorrow. Want one of those?"},
		},
	},
	{
		Category:    "pricing",
		Personality: "casual",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "How much for the basic package?"},
			{Speaker: "Agent", Text: "The basic package is listed at the price on our menu — want me to run through what's included real quick?"},
		},
	},
	{
		Category:    "message",
		Personality: "casual",
		Turns: []DialogueTurn{
			{Speaker: "Caller", Text: "Is the boss around?"},
			{Speaker: "Agent", Text: "Not right now, but I can pass something along. What's the message and what's the best number to reach you?"},
		},
	},
}
