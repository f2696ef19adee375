package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// systemInstruction frames every generation request: the backend's job is
// to turn the composed meta-prompt into the receptionist's operating script.
const systemInstruction = "You are an expert prompt engineer for conversational voice agents. " +
	"Given a structured instruction document describing a business and its AI phone receptionist, " +
	"produce the complete operating script the voice agent will follow. Keep every section from the " +
	"instruction document, preserve all business facts exactly, and write in the requested personality. " +
	"Output only the script text."

type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAIProvider(apiKey, model string, temperature float32) *OpenAIProvider {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if temperature == 0 {
		temperature = 0.7
	}

	return &OpenAIProvider{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: temperature,
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Generate(ctx context.Context, instruction string, maxTokens int) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: instruction},
		},
		Temperature: p.temperature,
		MaxTokens:   maxTokens,
	})

	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoText
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrNoText
	}

	return text, nil
}
