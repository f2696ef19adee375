package enhance

import (
	"strings"
	"testing"
)

func TestErrorTemplateTableComplete(t *testing.T) {
	langs := []string{LangEN, LangES}

	for _, kind := range ErrorKinds {
		for _, personality := range Personalities {
			for _, lang := range langs {
				tmpl, ok := LookupErrorTemplate(kind, personality, lang)
				if !ok {
					t.Fatalf("missing template for %s/%s/%s", kind, personality, lang)
				}
				if tmpl.Initial == "" {
					t.Fatalf("empty initial response for %s/%s/%s", kind, personality, lang)
				}
				if tmpl.FollowUp == "" {
					t.Fatalf("empty follow-up for %s/%s/%s", kind, personality, lang)
				}
				if tmpl.Recovery == "" {
					t.Fatalf("empty recovery for %s/%s/%s", kind, personality, lang)
				}
			}
		}
	}
}

func TestLookupErrorTemplateFallbacks(t *testing.T) {
	base, ok := LookupErrorTemplate(ErrDidNotUnderstand, "professional", LangEN)
	if !ok {
		t.Fatal("baseline template missing")
	}

	// Unknown personality falls back to professional.
	got, ok := LookupErrorTemplate(ErrDidNotUnderstand, "robotic", LangEN)
	if !ok || got.Initial != base.Initial {
		t.Fatalf("unknown personality should fall back to professional, got %+v", got)
	}

	// Unknown language falls back to English.
	got, ok = LookupErrorTemplate(ErrDidNotUnderstand, "professional", "fr")
	if !ok || got.Initial != base.Initial {
		t.Fatalf("unknown language should fall back to English, got %+v", got)
	}

	// Unknown kind reports not found.
	if _, ok := LookupErrorTemplate(ErrorKind("mystery"), "professional", LangEN); ok {
		t.Fatal("unknown kind should not resolve")
	}
}

func TestErrorTemplateRenderSubstitutesField(t *testing.T) {
	tmpl := ErrorTemplate{
		Initial:  "Could you repeat your {field}?",
		FollowUp: "I still did not catch the {field}.",
		Recovery: "Let me note the {field} down for a callback.",
	}

	rendered := tmpl.Render("phone number")
	for _, text := range []string{rendered.Initial, rendered.FollowUp, rendered.Recovery} {
		if strings.Contains(text, "{field}") {
			t.Fatalf("unsubstituted placeholder in %q", text)
		}
		if !strings.Contains(text, "phone number") {
			t.Fatalf("field value missing in %q", text)
		}
	}
}

func TestErrorTemplatesSpanishParity(t *testing.T) {
	for _, kind := range ErrorKinds {
		for _, personality := range Personalities {
			en, okEN := LookupErrorTemplate(kind, personality, LangEN)
			es, okES := LookupErrorTemplate(kind, personality, LangES)
			if !okEN || !okES {
				t.Fatalf("missing language pair for %s/%s", kind, personality)
			}
			if en.Initial == es.Initial {
				t.Fatalf("Spanish initial for %s/%s is identical to English", kind, personality)
			}
		}
	}
}
