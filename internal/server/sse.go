package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/castforge/podcast-engine/internal/pipeline"
)

// handleGenerateAudio runs the full transcript-to-audio pipeline and streams
// progress as server-sent events until the terminal event.
func (s *Server) handleGenerateAudio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req pipeline.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	s.streamEvents(w, r, s.orchestrator.Generate(r.Context(), req))
}

// handleGenerateSegment regenerates one utterance, streaming the same event
// shape as a full run.
func (s *Server) handleGenerateSegment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req pipeline.SegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Speaker == "" || req.Text == "" {
		writeError(w, http.StatusBadRequest, "speaker and text are required")
		return
	}

	s.streamEvents(w, r, s.orchestrator.GenerateSegment(r.Context(), req))
}

func (s *Server) streamEvents(w http.ResponseWriter, r *http.Request, events <-chan pipeline.Event) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for ev := range events {
		data, err := json.Marshal(ev)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to marshal event")
			continue
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
		flusher.Flush()
	}
}
