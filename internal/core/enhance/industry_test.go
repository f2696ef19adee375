package enhance

import "testing"

func TestLookupIndustryClassification(t *testing.T) {
	tests := []struct {
		businessType string
		want         string
	}{
		{"Dental Clinic", "dental"},
		{"dentist office", "dental"},
		{"HVAC", "hvac"},
		{"Heating & Cooling", "hvac"},
		{"Plumbing Services", "plumbing"},
		{"Law Firm", "legal"},
		{"Hair Salon", "beauty"},
		{"Auto Repair Shop", "automotive"},
		{"Real Estate Agency", "realestate"},
		{"Veterinary Hospital", "veterinary"},
		{"Underwater Basket Weaving", "other"},
		{"", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.businessType, func(t *testing.T) {
			profile := LookupIndustry(tt.businessType)
			if profile == nil {
				t.Fatal("LookupIndustry returned nil, fallback must always resolve")
			}
			if profile.Key != tt.want {
				t.Fatalf("LookupIndustry(%q) = %q, want %q", tt.businessType, profile.Key, tt.want)
			}
		})
	}
}

func TestLookupIndustryStableForMultiKeyInput(t *testing.T) {
	// The normalized form contains both "dental" and "cleaning"; the scan
	// must resolve it the same way on every call, and the earlier-declared
	// profile wins.
	const businessType = "Dental Cleaning Specialists"

	first := LookupIndustry(businessType)
	if first.Key != "dental" {
		t.Fatalf("LookupIndustry(%q) = %q, want dental", businessType, first.Key)
	}
	for i := 0; i < 200; i++ {
		if got := LookupIndustry(businessType); got.Key != first.Key {
			t.Fatalf("LookupIndustry(%q) flipped from %q to %q on call %d", businessType, first.Key, got.Key, i)
		}
	}
}

func TestNormalizeIndustry(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dental Clinic", "dentalclinic"},
		{"real-estate", "realestate"},
		{"Heating & Cooling", "heatingandcooling"},
		{"  spa_and.wellness ", "spaandwellness"},
	}
	for _, tt := range tests {
		if got := NormalizeIndustry(tt.in); got != tt.want {
			t.Fatalf("NormalizeIndustry(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIndustryProfilesComplete(t *testing.T) {
	keys := IndustryKeys()
	if len(keys) < 15 {
		t.Fatalf("expected at least 15 industry profiles, got %d", len(keys))
	}

	for _, key := range keys {
		profile := LookupIndustry(key)
		if profile == nil {
			t.Fatalf("registry key %q does not resolve", key)
		}
		if profile.DisplayName == "" {
			t.Fatalf("industry %q has no display name", key)
		}
		for _, personality := range Personalities {
			if tone := profile.ToneFor(personality); tone == "" {
				t.Fatalf("industry %q has empty tone for personality %q", key, personality)
			}
		}
		if len(profile.Guardrails) == 0 {
			t.Fatalf("industry %q has no guardrails", key)
		}
	}
}

func TestToneForFallsBackToProfessional(t *testing.T) {
	profile := LookupIndustry("dental")
	got := profile.ToneFor("nonexistent")
	want := profile.ToneFor("professional")
	if got != want || got == "" {
		t.Fatalf("unknown personality should fall back to professional tone, got %q", got)
	}
}
