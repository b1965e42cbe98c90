package persona

import "fmt"

// SpeakingRate holds words-per-minute figures for different delivery modes
type SpeakingRate struct {
	Normal     int `json:"normal"`
	Excited    int `json:"excited"`
	Analytical int `json:"analytical"`
}

// VoiceCharacteristics describes the physical qualities of a voice
type VoiceCharacteristics struct {
	PitchRange       string `json:"pitch_range"`
	Resonance        string `json:"resonance"`
	Breathiness      string `json:"breathiness"`
	VocalEnergy      string `json:"vocal_energy"`
	PausePattern     string `json:"pause_pattern"`
	EmphasisPattern  string `json:"emphasis_pattern"`
	EmotionalRange   string `json:"emotional_range"`
	BreathingPattern string `json:"breathing_pattern"`
}

// SpeechPatterns describes the delivery style of a speaker
type SpeechPatterns struct {
	Phrasing     string `json:"phrasing"`
	Rhythm       string `json:"rhythm"`
	Articulation string `json:"articulation"`
	Modulation   string `json:"modulation"`
}

// SpeakerConfig is the fully-resolved persona descriptor for one speaker.
// It is supplied by the caller and never mutated by the pipeline.
type SpeakerConfig struct {
	Name                 string               `json:"name"`
	Age                  int                  `json:"age"`
	Gender               string               `json:"gender"`
	Persona              string               `json:"persona"`
	Background           string               `json:"background"`
	VoiceTone            string               `json:"voice_tone"`
	Accent               string               `json:"accent"`
	SpeakingRate         SpeakingRate         `json:"speaking_rate"`
	VoiceCharacteristics VoiceCharacteristics `json:"voice_characteristics"`
	SpeechPatterns       SpeechPatterns       `json:"speech_patterns"`
}

// VoiceMapping binds a provider voice identifier to a persona descriptor
type VoiceMapping struct {
	Voice  string        `json:"voice"`
	Config SpeakerConfig `json:"config"`
}

// UnmappedSpeakerError indicates a transcript turn whose speaker has no
// configured voice mapping. It aborts the whole batch.
type UnmappedSpeakerError struct {
	Speaker string
}

func (e *UnmappedSpeakerError) Error() string {
	return fmt.Sprintf("no voice mapping found for speaker: %s", e.Speaker)
}
