package audio

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// DefaultPCMRate is assumed for PCM payloads whose encoding tag carries no
// rate parameter.
const DefaultPCMRate = 24000

// UnsupportedEncodingError indicates a provider payload whose encoding tag is
// unknown and could not be decoded by any available decoder. It is never
// retried.
type UnsupportedEncodingError struct {
	Tag string
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("unsupported audio encoding %q", e.Tag)
}

// Decode converts a provider audio payload into a Buffer based on its
// declared encoding tag (a MIME type, possibly with parameters).
//
// Three cases are distinguished:
//   - raw 16-bit little-endian PCM ("audio/L16", rate taken from the tag's
//     rate parameter, defaulting to 24000 Hz mono)
//   - container formats (WAV, MP3) handled by their decoders
//   - anything else: sniff the payload for a known container, otherwise fail
//     with UnsupportedEncodingError
func Decode(payload []byte, encoding string) (*Buffer, error) {
	return DecodeWithDefaultRate(payload, encoding, DefaultPCMRate)
}

// DecodeWithDefaultRate decodes like Decode but assumes fallbackRate for PCM
// payloads whose encoding tag carries no rate parameter.
func DecodeWithDefaultRate(payload []byte, encoding string, fallbackRate int) (*Buffer, error) {
	if fallbackRate <= 0 {
		fallbackRate = DefaultPCMRate
	}

	tag := strings.ToLower(strings.TrimSpace(encoding))
	mediaType := tag
	if idx := strings.Index(tag, ";"); idx >= 0 {
		mediaType = strings.TrimSpace(tag[:idx])
	}

	switch {
	case mediaType == "audio/l16" || strings.HasPrefix(mediaType, "audio/pcm"):
		rate := parseRateParam(tag, fallbackRate)
		return DecodePCM16(payload, rate, 1)

	case mediaType == "audio/wav" || mediaType == "audio/x-wav" || mediaType == "audio/wave":
		return DecodeWAV(bytes.NewReader(payload))

	case mediaType == "audio/mp3" || mediaType == "audio/mpeg":
		return DecodeMP3(bytes.NewReader(payload))

	default:
		return decodeSniffed(payload, encoding)
	}
}

// DecodePCM16 builds a buffer directly from raw little-endian 16-bit samples
func DecodePCM16(payload []byte, sampleRate, channels int) (*Buffer, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("empty PCM payload")
	}
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("PCM payload length %d is not 16-bit aligned", len(payload))
	}

	samples := make([]int16, len(payload)/2)
	for i := range samples {
		samples[i] = int16(payload[i*2]) | int16(payload[i*2+1])<<8
	}
	return NewBuffer(samples, sampleRate, channels), nil
}

// decodeSniffed attempts a best-effort decode of a payload with an
// unrecognized encoding tag by inspecting its leading bytes.
func decodeSniffed(payload []byte, tag string) (*Buffer, error) {
	if len(payload) >= 12 && bytes.Equal(payload[:4], []byte("RIFF")) && bytes.Equal(payload[8:12], []byte("WAVE")) {
		if buf, err := DecodeWAV(bytes.NewReader(payload)); err == nil {
			return buf, nil
		}
	}
	if len(payload) >= 3 && (bytes.Equal(payload[:3], []byte("ID3")) || (payload[0] == 0xFF && payload[1]&0xE0 == 0xE0)) {
		if buf, err := DecodeMP3(bytes.NewReader(payload)); err == nil {
			return buf, nil
		}
	}
	return nil, &UnsupportedEncodingError{Tag: tag}
}

// parseRateParam extracts a "rate=<hz>" parameter from a MIME-style tag,
// e.g. "audio/l16;codec=pcm;rate=24000".
func parseRateParam(tag string, fallback int) int {
	for _, part := range strings.Split(tag, ";") {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(part, "rate=") {
			continue
		}
		if rate, err := strconv.Atoi(strings.TrimPrefix(part, "rate=")); err == nil && rate > 0 {
			return rate
		}
	}
	return fallback
}
