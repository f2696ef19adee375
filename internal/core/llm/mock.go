package llm

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

// MockProvider is the local deterministic generator used when no backend
// credential is configured. It makes zero network calls and produces a
// structurally valid script: the same section list as the instruction
// document, with phrase-bank sourced body text. Output is a pure function
// of the instruction, so repeated runs are identical.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Name() string {
	return "mock"
}

// phraseBank supplies deterministic body sentences, cycled by a hash of
// the section title and the instruction.
var phraseBank = []string{
	"Follow this section exactly as written during every call.",
	"Apply these rules consistently from greeting to goodbye.",
	"Use the details above as the single source of truth.",
	"Keep responses grounded in this information at all times.",
	"Refer back to this guidance whenever the conversation drifts.",
	"Treat every instruction here as binding for the whole call.",
}

func (p *MockProvider) Generate(ctx context.Context, instruction string, maxTokens int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	seed := fnv.New64a()
	seed.Write([]byte(instruction))
	base := seed.Sum64()

	var sb strings.Builder
	sb.WriteString("[MOCK GENERATION] This script was produced locally without a generative backend.\n\n")

	sections := extractSections(instruction)
	for i, section := range sections {
		fmt.Fprintf(&sb, "# %s\n\n", section.title)
		// Keep the composed facts: the mock cannot paraphrase, so it
		// carries the section body through and appends a phrase-bank line.
		if body := strings.TrimSpace(section.body); body != "" {
			sb.WriteString(body)
			sb.WriteString("\n")
		}
		sb.WriteString(phraseBank[(base+uint64(i))%uint64(len(phraseBank))])
		sb.WriteString("\n\n")
	}

	return strings.TrimSpace(sb.String()), nil
}

type mockSection struct {
	title string
	body  string
}

// extractSections splits the instruction on "# " headings so the mock
// output mirrors the instruction's section list and order.
func extractSections(instruction string) []mockSection {
	var sections []mockSection
	var current *mockSection

	for _, line := range strings.Split(instruction, "\n") {
		if strings.HasPrefix(line, "# ") {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &mockSection{title: strings.TrimPrefix(line, "# ")}
			continue
		}
		if current != nil {
			current.body += line + "\n"
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	if len(sections) == 0 {
		sections = append(sections, mockSection{title: "Script", body: instruction})
	}
	return sections
}
