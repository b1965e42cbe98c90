package provider

import "context"

// Request is one synthesis call against the speech provider
type Request struct {
	StylePrompt string // Natural-language voice direction
	Text        string // Utterance to speak
	VoiceID     string // Prebuilt voice identifier
}

// Candidate is one audio result offered by the provider
type Candidate struct {
	Payload  []byte // Raw audio bytes
	Encoding string // Declared encoding tag (MIME type, possibly with parameters)
}

// Response is the provider's answer to a synthesis request. An empty
// candidate list means "no result this attempt" and is retryable.
type Response struct {
	Candidates []Candidate
}

// Client is the interface to the remote speech-generation service
type Client interface {
	// GenerateSpeech synthesizes audio for one request
	GenerateSpeech(ctx context.Context, req Request) (*Response, error)
}
