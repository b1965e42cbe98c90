package transcript

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the LLM client the generator needs
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator produces podcast transcripts with an LLM and validates the result
type Generator struct {
	client ChatCompleter
	model  string
	logger zerolog.Logger
}

// NewGenerator creates a transcript generator backed by an OpenAI-compatible
// chat completion API.
func NewGenerator(apiKey, model string, logger zerolog.Logger) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("LLM API key is required for transcript generation")
	}
	return &Generator{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: logger,
	}, nil
}

// NewGeneratorWithClient creates a generator with an injected client
func NewGeneratorWithClient(client ChatCompleter, model string, logger zerolog.Logger) *Generator {
	return &Generator{client: client, model: model, logger: logger}
}

// Generate produces a validated transcript for the requested concept
func (g *Generator) Generate(ctx context.Context, req ConceptRequest) (string, error) {
	if len(req.CharacterNames) != req.NumSpeakers {
		return "", fmt.Errorf("number of speakers (%d) must match number of character names (%d)",
			req.NumSpeakers, len(req.CharacterNames))
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		MaxTokens: 8192,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(req)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("transcript generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no transcript generated")
	}

	text := resp.Choices[0].Message.Content
	if err := Validate(text, req.CharacterNames); err != nil {
		g.logger.Warn().Err(err).Str("topic", req.Topic).Msg("generated transcript failed validation")
		return "", err
	}

	g.logger.Info().Str("topic", req.Topic).Int("speakers", req.NumSpeakers).Msg("transcript generated")
	return text, nil
}

// EditResult is the outcome of processing a hand-edited transcript
type EditResult struct {
	Transcript string   `json:"transcript"`
	Characters []string `json:"characters"`
}

// Edit re-parses an edited transcript and extracts its speaker set
func Edit(raw string) (*EditResult, error) {
	turns, err := Segment(raw)
	if err != nil {
		return nil, err
	}
	return &EditResult{
		Transcript: raw,
		Characters: Speakers(turns),
	}, nil
}
