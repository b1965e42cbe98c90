package persona

import (
	"fmt"
	"strings"
)

// DefaultVoice is used when a mapping carries no explicit voice identifier.
const DefaultVoice = "Puck"

// Resolved is the synthesis-ready rendering of one speaker's persona
type Resolved struct {
	Speaker     string
	VoiceID     string
	StylePrompt string
}

// Resolve looks up a speaker in the configured mappings and renders the
// persona descriptor into a style prompt. Speaker names match case-sensitively;
// an unknown speaker fails with UnmappedSpeakerError.
func Resolve(speaker string, mappings map[string]VoiceMapping) (*Resolved, error) {
	mapping, ok := mappings[speaker]
	if !ok {
		return nil, &UnmappedSpeakerError{Speaker: speaker}
	}

	voice := mapping.Voice
	if voice == "" {
		voice = DefaultVoice
	}

	return &Resolved{
		Speaker:     speaker,
		VoiceID:     voice,
		StylePrompt: RenderStylePrompt(mapping.Config),
	}, nil
}

// RenderStylePrompt linearizes every descriptor field into natural-language
// direction for the speech model.
func RenderStylePrompt(cfg SpeakerConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a %s speaker aged %d with a %s voice.\n", cfg.Gender, cfg.Age, cfg.VoiceTone)
	fmt.Fprintf(&b, "Your accent is %s.\n", cfg.Accent)
	fmt.Fprintf(&b, "You are %s with %s.\n", cfg.Persona, cfg.Background)

	fmt.Fprintf(&b,
		"Your speaking rate varies: %d words/min normally, %d words/min when excited, and %d words/min during analysis.\n",
		cfg.SpeakingRate.Normal, cfg.SpeakingRate.Excited, cfg.SpeakingRate.Analytical)

	vc := cfg.VoiceCharacteristics
	b.WriteString("Voice characteristics:\n")
	fmt.Fprintf(&b, "- Pitch range: %s\n", vc.PitchRange)
	fmt.Fprintf(&b, "- Resonance: %s\n", vc.Resonance)
	fmt.Fprintf(&b, "- Breathiness: %s\n", vc.Breathiness)
	fmt.Fprintf(&b, "- Vocal energy: %s\n", vc.VocalEnergy)
	fmt.Fprintf(&b, "- Pausing: %s\n", vc.PausePattern)
	fmt.Fprintf(&b, "- Emphasis: %s\n", vc.EmphasisPattern)
	fmt.Fprintf(&b, "- Emotional range: %s\n", vc.EmotionalRange)
	fmt.Fprintf(&b, "- Breathing: %s\n", vc.BreathingPattern)

	sp := cfg.SpeechPatterns
	b.WriteString("Speech patterns:\n")
	fmt.Fprintf(&b, "- Phrasing: %s\n", sp.Phrasing)
	fmt.Fprintf(&b, "- Rhythm: %s\n", sp.Rhythm)
	fmt.Fprintf(&b, "- Articulation: %s\n", sp.Articulation)
	fmt.Fprintf(&b, "- Modulation: %s", sp.Modulation)

	return b.String()
}
