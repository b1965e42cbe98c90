package persona

// VoiceMetadata carries UI-facing metadata for a prebuilt provider voice
type VoiceMetadata struct {
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Voices lists the prebuilt provider voices with display metadata
func Voices() map[string]VoiceMetadata {
	return map[string]VoiceMetadata{
		"Puck": {
			Icon:        "🌟",
			Color:       "#FF6B6B",
			Description: "Playful and energetic voice perfect for dynamic content",
		},
		"Charon": {
			Icon:        "🌌",
			Color:       "#4A90E2",
			Description: "Deep and mysterious voice ideal for serious topics",
		},
		"Aoede": {
			Icon:        "🎵",
			Color:       "#F39C12",
			Description: "Melodic and musical voice for engaging storytelling",
		},
		"Zephyr": {
			Icon:        "🌪️",
			Color:       "#3498DB",
			Description: "Swift and airy voice for energetic content",
		},
		"Fenrir": {
			Icon:        "🐺",
			Color:       "#9B59B6",
			Description: "Strong and powerful voice for authoritative content",
		},
		"Leda": {
			Icon:        "🌙",
			Color:       "#E74C3C",
			Description: "Graceful and elegant voice for refined delivery",
		},
		"Orus": {
			Icon:        "☀️",
			Color:       "#2ECC71",
			Description: "Bright and clear voice for educational content",
		},
		"Kore": {
			Icon:        "🌸",
			Color:       "#50E3C2",
			Description: "Soft and gentle voice for calming content",
		},
	}
}

// ConfigOptions enumerates the values accepted for each speaker config field
type ConfigOptions struct {
	AgeRange             [2]int              `json:"age_range"`
	Genders              []string            `json:"genders"`
	VoiceTones           []string            `json:"voice_tones"`
	Accents              []string            `json:"accents"`
	SpeakingRateRanges   map[string][2]int   `json:"speaking_rate_ranges"`
	VoiceCharacteristics map[string][]string `json:"voice_characteristics"`
	SpeechPatterns       map[string][]string `json:"speech_patterns"`
	Personas             []string            `json:"personas"`
	Backgrounds          []string            `json:"backgrounds"`
}

// Options returns the speaker configuration catalog served by the config API
func Options() ConfigOptions {
	return ConfigOptions{
		AgeRange:   [2]int{20, 70},
		Genders:    []string{"male", "female", "neutral"},
		VoiceTones: []string{"warm", "professional", "energetic", "calm", "authoritative"},
		Accents:    []string{"neutral", "british", "american", "australian", "indian"},
		SpeakingRateRanges: map[string][2]int{
			"normal":     {100, 200},
			"excited":    {120, 220},
			"analytical": {80, 180},
		},
		VoiceCharacteristics: map[string][]string{
			"pitch_range":       {"narrow", "medium", "wide"},
			"resonance":         {"chest", "head", "mixed"},
			"breathiness":       {"low", "medium", "high"},
			"vocal_energy":      {"low", "moderate", "high"},
			"pause_pattern":     {"natural", "dramatic", "minimal"},
			"emphasis_pattern":  {"balanced", "strong", "subtle"},
			"emotional_range":   {"neutral", "expressive", "highly-expressive"},
			"breathing_pattern": {"relaxed", "controlled", "dynamic"},
		},
		SpeechPatterns: map[string][]string{
			"phrasing":     {"natural", "structured", "flowing"},
			"rhythm":       {"regular", "varied", "dynamic"},
			"articulation": {"clear", "precise", "relaxed"},
			"modulation":   {"subtle", "moderate", "dramatic"},
		},
		Personas: []string{
			"Podcast Host",
			"Expert Speaker",
			"Storyteller",
			"News Anchor",
			"Teacher",
			"Conversational Speaker",
		},
		Backgrounds: []string{
			"Experienced in the topic",
			"Subject matter expert",
			"Professional broadcaster",
			"Industry specialist",
			"Casual enthusiast",
		},
	}
}
