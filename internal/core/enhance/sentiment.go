package enhance

import (
	"strings"
)

// SentimentCategory groups levels into positive/neutral/negative.
type SentimentCategory string

const (
	SentimentPositive SentimentCategory = "positive"
	SentimentNeutral  SentimentCategory = "neutral"
	SentimentNegative SentimentCategory = "negative"
)

// SentimentLevel is one detectable caller mood. Levels are declared in
// priority order: when scores tie, the earlier declaration wins.
type SentimentLevel struct {
	Name                string
	Category            SentimentCategory
	EscalationThreshold int // 1..5; >= 4 is escalation-worthy
	Keywords            []string
	Phrases             []string
	Responses           map[string]string // keyed by personality
}

// EscalationWorthy reports whether this level should trigger escalation.
func (l *SentimentLevel) EscalationWorthy() bool {
	return l.EscalationThreshold >= escalationCutoff
}

const escalationCutoff = 4

// ResponseFor returns the personality-specific response guidance.
func (l *SentimentLevel) ResponseFor(personality string) string {
	if r, ok := l.Responses[personality]; ok && r != "" {
		return r
	}
	return l.Responses["professional"]
}

// sentimentLevels is the ordered registry, built once. Keyword match scores
// +1, phrase match scores +2, highest cumulative score wins.
var sentimentLevels = []*SentimentLevel{
	{
		Name:                "pleased",
		Category:            SentimentPositive,
		EscalationThreshold: 1,
		Keywords:            []string{"great", "wonderful", "perfect", "awesome", "excellent", "fantastic", "love"},
		Phrases:             []string{"thank you so much", "you've been helpful", "i appreciate it", "that was easy"},
		Responses: map[string]string{
			"professional": "Acknowledge the caller's satisfaction graciously and keep the momentum: confirm next steps clearly.",
			"friendly":     "Match their positivity! Thank them warmly and make the rest of the call just as pleasant.",
			"casual":       "Ride the good vibe — thank them and wrap up whatever they need without fuss.",
		},
	},
	{
		Name:                "neutral",
		Category:            SentimentNeutral,
		EscalationThreshold: 1,
		Keywords:            []string{"okay", "fine", "sure", "alright"},
		Phrases:             []string{"i just need", "i'm calling about", "i wanted to ask"},
		Responses: map[string]string{
			"professional": "Proceed efficiently. Answer the question asked and offer the logical next step.",
			"friendly":     "Stay warm and attentive; a neutral caller is an opportunity to make a good impression.",
			"casual":       "Keep things easy and conversational while handling the request.",
		},
	},
	{
		Name:                "confused",
		Category:            SentimentNeutral,
		EscalationThreshold: 2,
		Keywords:            []string{"confused", "unclear", "lost", "complicated"},
		Phrases:             []string{"i don't understand", "what do you mean", "can you explain", "i'm not sure what"},
		Responses: map[string]string{
			"professional": "Slow down and restate the information in simpler terms. Confirm understanding before moving on.",
			"friendly":     "Reassure them it's a common question, then walk through it step by step.",
			"casual":       "No worries — break it down in plain words and check they're with you.",
		},
	},
	{
		Name:                "impatient",
		Category:            SentimentNegative,
		EscalationThreshold: 3,
		Keywords:            []string{"hurry", "quickly", "waiting", "slow", "finally"},
		Phrases:             []string{"i don't have time", "can we speed this up", "how long is this going to take", "just get to the point"},
		Responses: map[string]string{
			"professional": "Trim the pleasantries. Answer directly and state exactly what you need from them, nothing more.",
			"friendly":     "Acknowledge their time is valuable and move briskly; save the warmth for the goodbye.",
			"casual":       "Got it — cut to the chase and keep every answer short.",
		},
	},
	{
		Name:                "frustrated",
		Category:            SentimentNegative,
		EscalationThreshold: 4,
		Keywords:            []string{"frustrated", "annoying", "ridiculous", "again", "still"},
		Phrases:             []string{"this is frustrating", "i already told", "why is this so hard", "nobody called me back"},
		Responses: map[string]string{
			"professional": "Acknowledge the frustration explicitly, apologize once, and take ownership of resolving it on this call.",
			"friendly":     "Empathize genuinely before anything else, then show them you're personally getting it sorted.",
			"casual":       "Own it — say that's fair, apologize, and fix what you can right now.",
		},
	},
	{
		Name:                "upset",
		Category:            SentimentNegative,
		EscalationThreshold: 4,
		Keywords:            []string{"upset", "unhappy", "disappointed", "terrible", "awful"},
		Phrases:             []string{"this is unacceptable", "i'm very disappointed", "you ruined", "worst experience"},
		Responses: map[string]string{
			"professional": "Apologize sincerely, do not defend or explain, and offer to involve the owner or manager immediately.",
			"friendly":     "Lead with a heartfelt apology and let them finish before responding. Offer escalation without being asked.",
			"casual":       "Drop the casual tone. Apologize plainly and offer to get the owner involved.",
		},
	},
	{
		Name:                "angry",
		Category:            SentimentNegative,
		EscalationThreshold: 5,
		Keywords:            []string{"angry", "furious", "outraged", "lawsuit", "lawyer", "refund"},
		Phrases:             []string{"i demand", "this is outrageous", "i will never", "i'm going to report", "let me speak to the owner"},
		Responses: map[string]string{
			"professional": "Stay composed, never match the energy. Apologize, capture the complaint verbatim, and escalate to a human immediately.",
			"friendly":     "Stay soft-spoken and let them vent fully. Promise a callback from the owner and collect the best number.",
			"casual":       "Go formal. Apologize, take down every detail, and escalate — do not attempt humor.",
		},
	},
}

// SentimentLevels exposes the ordered registry for composition and tests.
func SentimentLevels() []*SentimentLevel {
	return sentimentLevels
}

// ClassifySentiment scores the text against every level and returns the
// winner. Keyword hit = +1, phrase hit = +2, ties resolve in declaration
// order, and text with no matches classifies as "neutral".
func ClassifySentiment(text string) *SentimentLevel {
	lowered := strings.ToLower(text)

	var best *SentimentLevel
	bestScore := 0
	for _, level := range sentimentLevels {
		score := 0
		for _, kw := range level.Keywords {
			if strings.Contains(lowered, kw) {
				score++
			}
		}
		for _, ph := range level.Phrases {
			if strings.Contains(lowered, ph) {
				score += 2
			}
		}
		if score > bestScore {
			best = level
			bestScore = score
		}
	}

	if best == nil {
		return levelByName("neutral")
	}
	return best
}

func levelByName(name string) *SentimentLevel {
	for _, l := range sentimentLevels {
		if l.Name == name {
			return l
		}
	}
	return nil
}
