package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/frontdeskai/receptionist-core/internal/models"
)

// EstimateTokens approximates the token count of a text as
// ceil(len/4). Display and monitoring only; it is not the backend's real
// tokenizer and must never gate a hard limit.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return (len(text) + 3) / 4
}

// Language-switching instruction fragments, one per language mode. Appended
// to the English text only when bilingual output is enabled; the Spanish
// text is never modified.
var languageSwitchFragments = map[string]string{
	models.LanguageModeAuto: "\n\n# Language Switching\n\n" +
		"This business serves Spanish-speaking callers. If the caller speaks Spanish, switch to your Spanish operating script immediately and continue the entire call in Spanish.",
	models.LanguageModeAsk: "\n\n# Language Switching\n\n" +
		"This business serves Spanish-speaking callers. After your greeting, ask whether the caller prefers English or Spanish, then continue the call in the chosen language using the matching operating script.",
	models.LanguageModeSpanishDefault: "\n\n# Language Switching\n\n" +
		"This business primarily serves Spanish-speaking callers. Open the call in Spanish using your Spanish operating script, and switch to English only if the caller speaks English.",
}

// PackageArtifact bundles the generated texts into an unversioned artifact.
// The repository assigns the version at store time, inside the same
// transaction that retires the previous artifact.
func PackageArtifact(businessID uuid.UUID, englishText, spanishText string, spanishEnabled bool, languageMode string, mock bool, now time.Time) *models.PromptArtifact {
	if spanishEnabled && spanishText != "" {
		fragment, ok := languageSwitchFragments[languageMode]
		if !ok {
			fragment = languageSwitchFragments[models.LanguageModeAuto]
		}
		englishText += fragment
	} else {
		spanishText = ""
	}

	return &models.PromptArtifact{
		BusinessID:  businessID,
		EnglishText: englishText,
		SpanishText: spanishText,
		TokensEN:    EstimateTokens(englishText),
		TokensES:    EstimateTokens(spanishText),
		Mock:        mock,
		GeneratedAt: now,
	}
}
