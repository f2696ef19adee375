package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/frontdeskai/receptionist-core/internal/models"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{1, 1},
		{4, 1},
		{5, 2},
		{400, 100},
		{401, 101},
	}
	for _, tt := range tests {
		text := strings.Repeat("a", tt.length)
		if got := EstimateTokens(text); got != tt.want {
			t.Fatalf("EstimateTokens(len=%d) = %d, want %d", tt.length, got, tt.want)
		}
	}
}

func TestPackageArtifactBilingual(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	artifact := PackageArtifact(id, "english script", "spanish script", true, models.LanguageModeAuto, false, now)

	if artifact.BusinessID != id {
		t.Fatal("business id not carried")
	}
	if !strings.Contains(artifact.EnglishText, "# Language Switching") {
		t.Fatal("bilingual artifact must append the language-switch fragment to English")
	}
	if strings.Contains(artifact.SpanishText, "# Language Switching") {
		t.Fatal("Spanish text must never be modified")
	}
	if artifact.SpanishText != "spanish script" {
		t.Fatalf("spanish text altered: %q", artifact.SpanishText)
	}
	if artifact.TokensEN == 0 || artifact.TokensES == 0 {
		t.Fatal("token estimates missing")
	}
	if artifact.Version != 0 {
		t.Fatal("packager must leave version assignment to the repository")
	}
	if !artifact.GeneratedAt.Equal(now) {
		t.Fatal("generated-at timestamp not carried")
	}
}

func TestPackageArtifactEnglishOnly(t *testing.T) {
	artifact := PackageArtifact(uuid.New(), "english script", "stray spanish", false, models.LanguageModeAuto, true, time.Now())

	if strings.Contains(artifact.EnglishText, "# Language Switching") {
		t.Fatal("monolingual artifact must not carry a language-switch fragment")
	}
	if artifact.SpanishText != "" {
		t.Fatal("spanish text must be dropped when Spanish is disabled")
	}
	if artifact.TokensES != 0 {
		t.Fatalf("expected zero Spanish tokens, got %d", artifact.TokensES)
	}
	if !artifact.Mock {
		t.Fatal("mock flag not carried")
	}
}

func TestPackageArtifactLanguageModes(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{models.LanguageModeAuto, "switch to your Spanish operating script immediately"},
		{models.LanguageModeAsk, "ask whether the caller prefers English or Spanish"},
		{models.LanguageModeSpanishDefault, "Open the call in Spanish"},
		{"unknown_mode", "switch to your Spanish operating script immediately"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			artifact := PackageArtifact(uuid.New(), "en", "es", true, tt.mode, false, time.Now())
			if !strings.Contains(artifact.EnglishText, tt.want) {
				t.Fatalf("mode %s: fragment missing %q", tt.mode, tt.want)
			}
		})
	}
}
