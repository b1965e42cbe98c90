package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/castforge/podcast-engine/internal/audio"
)

func testBuffer() *audio.Buffer {
	samples := make([]int16, 2400)
	for i := range samples {
		samples[i] = 4096
	}
	return audio.NewBuffer(samples, 24000, 1)
}

func TestStore_SaveSegment(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	rel, n, err := store.SaveSegment("azure-swift-nova-20250101-000000", "Alice", testBuffer())
	if err != nil {
		t.Fatalf("SaveSegment failed: %v", err)
	}
	if n <= 0 {
		t.Error("Expected positive byte count")
	}
	if !strings.HasPrefix(rel, "segments/") {
		t.Errorf("Segment path should live under segments/, got %q", rel)
	}
	if !strings.Contains(rel, "azure-swift-nova-20250101-000000_Alice_") {
		t.Errorf("Filename should carry run id and speaker, got %q", rel)
	}

	// Persisted file round-trips through our own decoder
	f, err := os.Open(filepath.Join(store.Root(), rel))
	if err != nil {
		t.Fatalf("Segment file missing: %v", err)
	}
	defer f.Close()

	decoded, err := audio.DecodeWAV(f)
	if err != nil {
		t.Fatalf("DecodeWAV failed: %v", err)
	}
	if decoded.SampleRate != 24000 || decoded.Frames() != 2400 {
		t.Errorf("Round-trip mismatch: rate=%d frames=%d", decoded.SampleRate, decoded.Frames())
	}
}

func TestStore_SaveSegment_UniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	a, _, err := store.SaveSegment("run", "Alice", testBuffer())
	if err != nil {
		t.Fatalf("SaveSegment failed: %v", err)
	}
	b, _, err := store.SaveSegment("run", "Alice", testBuffer())
	if err != nil {
		t.Fatalf("SaveSegment failed: %v", err)
	}
	if a == b {
		t.Errorf("Same run and speaker must still produce unique filenames: %q", a)
	}
}

func TestStore_SaveTrack(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	rel, _, err := store.SaveTrack("run-20250101-000000", testBuffer())
	if err != nil {
		t.Fatalf("SaveTrack failed: %v", err)
	}
	if rel != "run-20250101-000000_podcast.wav" {
		t.Errorf("Unexpected track path %q", rel)
	}
	if _, err := os.Stat(filepath.Join(store.Root(), rel)); err != nil {
		t.Errorf("Track file missing: %v", err)
	}
}
