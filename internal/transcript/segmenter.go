package transcript

import (
	"errors"
	"strings"
)

// ErrEmptyTranscript is returned when a transcript contains no speaker turns.
var ErrEmptyTranscript = errors.New("transcript contains no speaker turns")

// Turn is one speaker's contiguous utterance, in transcript order
type Turn struct {
	Index   int    // Ordinal position in the transcript
	Speaker string // Speaker identifier, matched case-sensitively
	Text    string // Utterance text with continuation lines joined
}

// Segment parses a raw transcript into ordered turns. A line of the form
// "Speaker: text" starts a new turn; lines without a delimiter continue the
// current turn and are joined with a space. Blank lines are skipped and do
// not terminate a turn.
func Segment(raw string) ([]Turn, error) {
	var turns []Turn
	var speaker string
	var parts []string

	flush := func() {
		if speaker == "" || len(parts) == 0 {
			return
		}
		turns = append(turns, Turn{
			Index:   len(turns),
			Speaker: speaker,
			Text:    strings.Join(parts, " "),
		})
		parts = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if name, rest, ok := splitSpeakerLine(trimmed); ok {
			flush()
			speaker = name
			parts = []string{rest}
			continue
		}

		// Continuation of the current turn; text before the first speaker
		// line has no owner and is dropped.
		if speaker != "" {
			parts = append(parts, trimmed)
		}
	}
	flush()

	if len(turns) == 0 {
		return nil, ErrEmptyTranscript
	}
	return turns, nil
}

// Speakers returns the distinct speaker names of a transcript, in order of
// first appearance.
func Speakers(turns []Turn) []string {
	seen := make(map[string]bool)
	var names []string
	for _, turn := range turns {
		if !seen[turn.Speaker] {
			seen[turn.Speaker] = true
			names = append(names, turn.Speaker)
		}
	}
	return names
}

// splitSpeakerLine splits "Name: text" into its parts. The name must be
// non-empty after trimming; lines whose colon has no preceding name are
// treated as continuations.
func splitSpeakerLine(line string) (speaker, text string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	speaker = strings.TrimSpace(line[:idx])
	if speaker == "" {
		return "", "", false
	}
	return speaker, strings.TrimSpace(line[idx+1:]), true
}
