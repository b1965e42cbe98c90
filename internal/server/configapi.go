package server

import (
	"net/http"
	"sort"

	"github.com/castforge/podcast-engine/internal/persona"
	"github.com/castforge/podcast-engine/internal/transcript"
)

type podcastOptionsResponse struct {
	DurationOptions []int    `json:"duration_options"`
	SpeakerOptions  []int    `json:"speaker_options"`
	ExpertiseLevels []string `json:"expertise_levels"`
	FormatStyles    []string `json:"format_styles"`
}

type voiceOptionsResponse struct {
	persona.ConfigOptions
	Voices []string `json:"voices"`
}

// handleConfig serves the podcast-level generation options
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, podcastOptionsResponse{
		DurationOptions: []int{5, 10, 15, 20, 30},
		SpeakerOptions:  []int{2, 3, 4},
		ExpertiseLevels: transcript.ExpertiseLevels(),
		FormatStyles:    transcript.FormatStyles(),
	})
}

// handleVoiceConfig serves the speaker persona option catalog
func (s *Server) handleVoiceConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	names := make([]string, 0, len(persona.Voices()))
	for name := range persona.Voices() {
		names = append(names, name)
	}
	sort.Strings(names)

	writeJSON(w, http.StatusOK, voiceOptionsResponse{
		ConfigOptions: persona.Options(),
		Voices:        names,
	})
}

// handleVoiceMetadata serves display metadata for each prebuilt voice
func (s *Server) handleVoiceMetadata(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, persona.Voices())
}
