package audio

import (
	"errors"
	"math"
	"testing"
	"time"
)

func sine(amplitude float64, frames, rate int) *Buffer {
	samples := make([]int16, frames)
	for i := range samples {
		samples[i] = int16(amplitude * 32767 * math.Sin(2*math.Pi*440*float64(i)/float64(rate)))
	}
	return NewBuffer(samples, rate, 1)
}

func TestNormalize_ReachesTarget(t *testing.T) {
	buf := sine(0.25, 24000, 24000)

	out := Normalize(buf, -20.0)
	got := out.PeakDBFS()
	if math.Abs(got-(-20.0)) > 0.1 {
		t.Errorf("Expected peak near -20 dBFS, got %f", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	buf := sine(0.5, 24000, 24000)

	once := Normalize(buf, -20.0)
	twice := Normalize(once, -20.0)

	if math.Abs(once.PeakDBFS()-twice.PeakDBFS()) > 0.1 {
		t.Errorf("Normalization not idempotent: %f vs %f", once.PeakDBFS(), twice.PeakDBFS())
	}
}

func TestNormalize_Silence(t *testing.T) {
	buf := Silence(100*time.Millisecond, 24000, 1)
	out := Normalize(buf, -20.0)

	for _, s := range out.Samples {
		if s != 0 {
			t.Fatal("Normalizing silence should leave zero samples")
		}
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	buf := sine(0.1, 1000, 24000)
	before := append([]int16(nil), buf.Samples...)

	Normalize(buf, -6.0)

	for i := range before {
		if buf.Samples[i] != before[i] {
			t.Fatal("Normalize mutated its input buffer")
		}
	}
}

func TestAssemble_Empty(t *testing.T) {
	_, err := Assemble(nil, 500*time.Millisecond, time.Second)
	if !errors.Is(err, ErrEmptyAssembly) {
		t.Errorf("Expected ErrEmptyAssembly, got %v", err)
	}
}

func TestAssemble_Single(t *testing.T) {
	seg := sine(0.5, 24000, 24000)
	out, err := Assemble([]*Buffer{seg}, 500*time.Millisecond, time.Second)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(out.Samples) != len(seg.Samples) {
		t.Errorf("Single-segment assembly changed length: %d != %d", len(out.Samples), len(seg.Samples))
	}
}

func TestAssemble_DurationBounds(t *testing.T) {
	silence := 500 * time.Millisecond
	crossfade := 1 * time.Second

	tests := []struct {
		name string
		segs []*Buffer
	}{
		{"two segments", []*Buffer{sine(0.5, 24000, 24000), sine(0.5, 48000, 24000)}},
		{"three segments", []*Buffer{sine(0.5, 24000, 24000), sine(0.5, 12000, 24000), sine(0.5, 24000, 24000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := 0.0
			for _, s := range tt.segs {
				sum += s.Seconds()
			}
			n := len(tt.segs)

			out, err := Assemble(tt.segs, silence, crossfade)
			if err != nil {
				t.Fatalf("Assemble failed: %v", err)
			}

			total := out.Seconds()
			naive := sum + float64(n-1)*silence.Seconds()
			if total < sum-0.001 {
				t.Errorf("Total %f below sum of segments %f", total, sum)
			}
			if total > naive+0.001 {
				t.Errorf("Total %f above naive bound %f", total, naive)
			}
			if total >= naive-0.001 {
				t.Errorf("Total %f should be strictly below naive bound %f (crossfades overlap)", total, naive)
			}
		})
	}
}

func TestAssemble_ShortCrossfadeLeavesSilence(t *testing.T) {
	segs := []*Buffer{sine(0.5, 24000, 24000), sine(0.5, 24000, 24000)}

	out, err := Assemble(segs, 500*time.Millisecond, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	// 400ms of pure silence remains after the 100ms blend
	expected := 2.0 + 0.4
	if math.Abs(out.Seconds()-expected) > 0.01 {
		t.Errorf("Expected %fs total, got %f", expected, out.Seconds())
	}
}

func TestAssemble_MixedRates(t *testing.T) {
	segs := []*Buffer{sine(0.5, 24000, 24000), sine(0.5, 16000, 16000)}

	out, err := Assemble(segs, 0, 0)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if out.SampleRate != 24000 {
		t.Errorf("Expected output at first segment's rate 24000, got %d", out.SampleRate)
	}
	// Both segments are 1s long regardless of rate
	if math.Abs(out.Seconds()-2.0) > 0.01 {
		t.Errorf("Expected 2s total, got %f", out.Seconds())
	}
}
