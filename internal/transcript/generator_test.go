package transcript

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

type fakeCompleter struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if len(req.Messages) > 0 {
		f.prompts = append(f.prompts, req.Messages[0].Content)
	}
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.response}},
		},
	}, nil
}

func conceptRequest() ConceptRequest {
	return ConceptRequest{
		Topic:           "the history of radio",
		NumSpeakers:     2,
		CharacterNames:  []string{"John", "Sarah"},
		ExpertiseLevel:  "beginner",
		DurationMinutes: 10,
		FormatStyle:     "casual",
	}
}

func TestGenerate(t *testing.T) {
	fake := &fakeCompleter{response: "John: Welcome to the show.\nSarah: Glad to be here.\nJohn: Let's talk radio."}
	g := NewGeneratorWithClient(fake, "gpt-4o", zerolog.Nop())

	text, err := g.Generate(context.Background(), conceptRequest())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(text, "Sarah:") {
		t.Errorf("Unexpected transcript: %q", text)
	}
	if len(fake.prompts) != 1 || !strings.Contains(fake.prompts[0], "the history of radio") {
		t.Error("Prompt did not carry the requested topic")
	}
}

func TestGenerate_SpeakerCountMismatch(t *testing.T) {
	g := NewGeneratorWithClient(&fakeCompleter{}, "gpt-4o", zerolog.Nop())

	req := conceptRequest()
	req.NumSpeakers = 3
	if _, err := g.Generate(context.Background(), req); err == nil {
		t.Error("Expected error for speaker count mismatch")
	}
}

func TestGenerate_LLMError(t *testing.T) {
	g := NewGeneratorWithClient(&fakeCompleter{err: errors.New("rate limit")}, "gpt-4o", zerolog.Nop())

	if _, err := g.Generate(context.Background(), conceptRequest()); err == nil {
		t.Error("Expected error from LLM failure")
	}
}

func TestGenerate_InvalidTranscriptRejected(t *testing.T) {
	fake := &fakeCompleter{response: "Narrator: Somebody else entirely."}
	g := NewGeneratorWithClient(fake, "gpt-4o", zerolog.Nop())

	if _, err := g.Generate(context.Background(), conceptRequest()); err == nil {
		t.Error("Expected validation error for transcript with unknown speakers")
	}
}

func TestEdit(t *testing.T) {
	result, err := Edit("Ann: hello\nBen: hi\nAnn: bye")
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if len(result.Characters) != 2 {
		t.Fatalf("Expected 2 characters, got %v", result.Characters)
	}
	if result.Characters[0] != "Ann" || result.Characters[1] != "Ben" {
		t.Errorf("Expected [Ann Ben], got %v", result.Characters)
	}
}

func TestEdit_Empty(t *testing.T) {
	if _, err := Edit("nothing here"); err == nil {
		t.Error("Expected error for transcript without turns")
	}
}

func TestBuildPrompt_UnknownValuesFallBack(t *testing.T) {
	req := conceptRequest()
	req.ExpertiseLevel = "galactic"
	req.FormatStyle = "opera"

	prompt := BuildPrompt(req)
	if !strings.Contains(prompt, "varying the complexity") {
		t.Error("Expected fallback expertise description")
	}
	if !strings.Contains(prompt, "relaxed, conversational") {
		t.Error("Expected fallback format description")
	}
}
