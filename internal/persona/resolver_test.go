package persona

import (
	"errors"
	"strings"
	"testing"
)

func testConfig() SpeakerConfig {
	return SpeakerConfig{
		Name:       "Alice",
		Age:        34,
		Gender:     "female",
		Persona:    "Podcast Host",
		Background: "Professional broadcaster",
		VoiceTone:  "warm",
		Accent:     "british",
		SpeakingRate: SpeakingRate{
			Normal:     150,
			Excited:    180,
			Analytical: 120,
		},
		VoiceCharacteristics: VoiceCharacteristics{
			PitchRange:       "wide",
			Resonance:        "chest",
			Breathiness:      "low",
			VocalEnergy:      "high",
			PausePattern:     "natural",
			EmphasisPattern:  "balanced",
			EmotionalRange:   "expressive",
			BreathingPattern: "relaxed",
		},
		SpeechPatterns: SpeechPatterns{
			Phrasing:     "flowing",
			Rhythm:       "varied",
			Articulation: "clear",
			Modulation:   "moderate",
		},
	}
}

func TestResolve(t *testing.T) {
	mappings := map[string]VoiceMapping{
		"Alice": {Voice: "Aoede", Config: testConfig()},
	}

	resolved, err := Resolve("Alice", mappings)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if resolved.VoiceID != "Aoede" {
		t.Errorf("Expected voice 'Aoede', got '%s'", resolved.VoiceID)
	}
	if resolved.Speaker != "Alice" {
		t.Errorf("Expected speaker 'Alice', got '%s'", resolved.Speaker)
	}
}

func TestResolve_UnmappedSpeaker(t *testing.T) {
	mappings := map[string]VoiceMapping{
		"Alice": {Voice: "Aoede", Config: testConfig()},
	}

	_, err := Resolve("Bob", mappings)
	var unmapped *UnmappedSpeakerError
	if !errors.As(err, &unmapped) {
		t.Fatalf("Expected UnmappedSpeakerError, got %v", err)
	}
	if unmapped.Speaker != "Bob" {
		t.Errorf("Expected speaker 'Bob' in error, got '%s'", unmapped.Speaker)
	}
}

func TestResolve_CaseSensitive(t *testing.T) {
	mappings := map[string]VoiceMapping{
		"Alice": {Voice: "Aoede", Config: testConfig()},
	}

	_, err := Resolve("alice", mappings)
	if err == nil {
		t.Error("Expected case-sensitive lookup to fail for 'alice'")
	}
}

func TestResolve_DefaultVoice(t *testing.T) {
	mappings := map[string]VoiceMapping{
		"Alice": {Config: testConfig()},
	}

	resolved, err := Resolve("Alice", mappings)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.VoiceID != DefaultVoice {
		t.Errorf("Expected default voice '%s', got '%s'", DefaultVoice, resolved.VoiceID)
	}
}

func TestRenderStylePrompt_ContainsAllFields(t *testing.T) {
	prompt := RenderStylePrompt(testConfig())

	wantFragments := []string{
		"female speaker aged 34",
		"warm voice",
		"Your accent is british",
		"Podcast Host",
		"Professional broadcaster",
		"150 words/min normally",
		"180 words/min when excited",
		"120 words/min during analysis",
		"Pitch range: wide",
		"Resonance: chest",
		"Breathiness: low",
		"Vocal energy: high",
		"Pausing: natural",
		"Emphasis: balanced",
		"Emotional range: expressive",
		"Breathing: relaxed",
		"Phrasing: flowing",
		"Rhythm: varied",
		"Articulation: clear",
		"Modulation: moderate",
	}

	for _, fragment := range wantFragments {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("Style prompt missing %q", fragment)
		}
	}
}

func TestVoices_HaveMetadata(t *testing.T) {
	for name, meta := range Voices() {
		if meta.Description == "" {
			t.Errorf("Voice %s missing description", name)
		}
		if !strings.HasPrefix(meta.Color, "#") {
			t.Errorf("Voice %s has malformed color %q", name, meta.Color)
		}
	}
}
