package transcript

import (
	"fmt"
	"strings"
)

// balanceTolerance is the allowed spread in speaker participation: the most
// active speaker may have at most this many times the turns of the least
// active one.
const balanceTolerance = 2

// Validate checks a generated transcript against the requested speaker list.
// Speaker names match case-sensitively. It enforces that every non-blank line
// belongs to a known speaker turn, that all requested speakers appear, and
// that participation stays within the balance tolerance.
func Validate(raw string, speakers []string) error {
	turns, err := Segment(raw)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(speakers))
	for _, name := range speakers {
		known[name] = true
	}

	counts := make(map[string]int)
	var invalid []string
	for _, turn := range turns {
		if !known[turn.Speaker] {
			invalid = append(invalid, turn.Speaker)
			continue
		}
		counts[turn.Speaker]++
	}
	if len(invalid) > 0 {
		if len(invalid) > 3 {
			invalid = invalid[:3]
		}
		return fmt.Errorf("transcript contains unknown speakers: %s", strings.Join(invalid, ", "))
	}

	var missing []string
	for _, name := range speakers {
		if counts[name] == 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("speakers missing from the transcript: %s", strings.Join(missing, ", "))
	}

	minCount, maxCount := -1, 0
	for _, name := range speakers {
		c := counts[name]
		if minCount < 0 || c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount > minCount*balanceTolerance {
		return fmt.Errorf("speaker participation is too unbalanced: %d vs %d turns", maxCount, minCount)
	}

	return nil
}
