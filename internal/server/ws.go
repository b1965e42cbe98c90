package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/castforge/podcast-engine/internal/transcript"
)

// wsMessage is the envelope for both directions of the transcript socket
type wsMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type wsReply struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type editRequest struct {
	Transcript string `json:"transcript"`
}

// handleWS serves the transcript generation socket. Clients send
// generate_transcript and edit_transcript messages and receive
// transcript_generated / transcript_edited / error replies.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || s.originAllowed(origin)
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	s.logger.Info().Str("remote", r.RemoteAddr).Msg("transcript socket connected")

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn().Err(err).Msg("websocket read error")
			}
			return
		}

		reply := s.dispatchWS(r, msg)
		if err := conn.WriteJSON(reply); err != nil {
			s.logger.Warn().Err(err).Msg("websocket write error")
			return
		}
	}
}

func (s *Server) dispatchWS(r *http.Request, msg wsMessage) wsReply {
	switch msg.Type {
	case "generate_transcript":
		if s.generator == nil {
			return wsReply{Type: "error", Payload: "transcript generation is not configured"}
		}
		var req transcript.ConceptRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return wsReply{Type: "error", Payload: err.Error()}
		}
		text, err := s.generator.Generate(r.Context(), req)
		if err != nil {
			return wsReply{Type: "error", Payload: err.Error()}
		}
		return wsReply{Type: "transcript_generated", Payload: text}

	case "edit_transcript":
		var req editRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return wsReply{Type: "error", Payload: err.Error()}
		}
		result, err := transcript.Edit(req.Transcript)
		if err != nil {
			return wsReply{Type: "error", Payload: err.Error()}
		}
		return wsReply{Type: "transcript_edited", Payload: result}

	default:
		return wsReply{Type: "error", Payload: "unknown message type: " + msg.Type}
	}
}
