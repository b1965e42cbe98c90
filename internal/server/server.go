package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/castforge/podcast-engine/internal/config"
	"github.com/castforge/podcast-engine/internal/pipeline"
	"github.com/castforge/podcast-engine/internal/transcript"
)

// Server exposes the audio pipeline and transcript tooling over HTTP
type Server struct {
	cfg          *config.Config
	orchestrator *pipeline.Orchestrator
	generator    *transcript.Generator // nil when no LLM key is configured
	logger       zerolog.Logger
}

// New creates the HTTP layer over an orchestrator. generator may be nil; the
// transcript endpoints then report an error instead of calling out.
func New(cfg *config.Config, orchestrator *pipeline.Orchestrator, generator *transcript.Generator, logger zerolog.Logger) *Server {
	return &Server{
		cfg:          cfg,
		orchestrator: orchestrator,
		generator:    generator,
		logger:       logger,
	}
}

// Register attaches all API routes to the mux
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/generate-audio", s.withCORS(s.handleGenerateAudio))
	mux.HandleFunc("/api/generate-segment", s.withCORS(s.handleGenerateSegment))
	mux.HandleFunc("/api/config", s.withCORS(s.handleConfig))
	mux.HandleFunc("/api/config/voice", s.withCORS(s.handleVoiceConfig))
	mux.HandleFunc("/api/config/voice/metadata", s.withCORS(s.handleVoiceMetadata))
	mux.HandleFunc("/ws", s.handleWS)

	prefix := s.cfg.AudioURLPrefix + "/"
	files := http.StripPrefix(prefix, http.FileServer(http.Dir(s.cfg.AudioDir)))
	mux.Handle(prefix, s.withCORS(files.ServeHTTP))
}

// withCORS applies the configured origin allowlist and answers preflights
func (s *Server) withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.cfg.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
