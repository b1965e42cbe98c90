package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/castforge/podcast-engine/internal/audio"
)

const segmentsDir = "segments"

// Store persists run artifacts under a single audio root directory.
// Filenames are namespaced by run identifier so concurrent runs never
// collide; all returned paths are relative to the root.
type Store struct {
	root string
}

// NewStore creates the audio root and its segments/ subdirectory
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, segmentsDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directories: %w", err)
	}
	return &Store{root: root}, nil
}

// Root returns the absolute base directory of the store
func (s *Store) Root() string {
	return s.root
}

// SaveSegment writes one turn's audio as a WAV file under segments/. The
// filename combines the run identifier, the speaker name, and a random token.
// It returns the path relative to the store root and the bytes written.
func (s *Store) SaveSegment(runID, speaker string, buf *audio.Buffer) (string, int64, error) {
	name := fmt.Sprintf("%s_%s_%s.wav", runID, sanitizeFilename(speaker), uuid.NewString())
	rel := filepath.ToSlash(filepath.Join(segmentsDir, name))

	n, err := audio.WriteWAVFile(filepath.Join(s.root, segmentsDir, name), buf)
	if err != nil {
		return "", 0, fmt.Errorf("failed to persist segment for %s: %w", speaker, err)
	}
	return rel, n, nil
}

// SaveTrack writes the assembled full episode at the store root
func (s *Store) SaveTrack(runID string, buf *audio.Buffer) (string, int64, error) {
	name := fmt.Sprintf("%s_podcast.wav", runID)

	n, err := audio.WriteWAVFile(filepath.Join(s.root, name), buf)
	if err != nil {
		return "", 0, fmt.Errorf("failed to persist assembled track: %w", err)
	}
	return name, n, nil
}

// sanitizeFilename replaces characters that are unsafe in filenames
func sanitizeFilename(name string) string {
	const invalid = `<>:"/\|?* `
	out := strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalid, r) {
			return '_'
		}
		return r
	}, strings.Trim(name, ". "))

	if out == "" {
		out = "unnamed"
	}
	return out
}
