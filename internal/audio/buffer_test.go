package audio

import (
	"math"
	"testing"
	"time"
)

func TestBuffer_Duration(t *testing.T) {
	buf := NewBuffer(make([]int16, 24000), 24000, 1)
	if buf.Duration() != time.Second {
		t.Errorf("Expected 1s duration, got %v", buf.Duration())
	}
	if buf.Seconds() != 1.0 {
		t.Errorf("Expected 1.0s, got %f", buf.Seconds())
	}
}

func TestBuffer_DurationStereo(t *testing.T) {
	buf := NewBuffer(make([]int16, 48000), 24000, 2)
	if buf.Duration() != time.Second {
		t.Errorf("Expected 1s duration for stereo, got %v", buf.Duration())
	}
}

func TestBuffer_PeakDBFS(t *testing.T) {
	tests := []struct {
		name     string
		peak     int16
		expected float64
	}{
		{"full scale", -32768, 0.0},
		{"half scale", 16384, -6.02},
		{"quarter scale", 8192, -12.04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBuffer([]int16{0, tt.peak, 0}, 24000, 1)
			got := buf.PeakDBFS()
			if math.Abs(got-tt.expected) > 0.01 {
				t.Errorf("Expected %f dBFS, got %f", tt.expected, got)
			}
		})
	}
}

func TestBuffer_PeakDBFS_Silence(t *testing.T) {
	buf := NewBuffer(make([]int16, 100), 24000, 1)
	if !math.IsInf(buf.PeakDBFS(), -1) {
		t.Errorf("Expected -Inf for silence, got %f", buf.PeakDBFS())
	}
}

func TestBuffer_ToMono(t *testing.T) {
	stereo := NewBuffer([]int16{100, 200, -100, -200}, 24000, 2)
	mono := stereo.ToMono()

	if mono.Channels != 1 {
		t.Fatalf("Expected 1 channel, got %d", mono.Channels)
	}
	if len(mono.Samples) != 2 {
		t.Fatalf("Expected 2 samples, got %d", len(mono.Samples))
	}
	if mono.Samples[0] != 150 || mono.Samples[1] != -150 {
		t.Errorf("Expected averaged samples [150 -150], got %v", mono.Samples)
	}
}

func TestBuffer_ToMono_AlreadyMono(t *testing.T) {
	mono := NewBuffer([]int16{1, 2, 3}, 24000, 1)
	if mono.ToMono() != mono {
		t.Error("Expected mono buffer to be returned unchanged")
	}
}

func TestBuffer_Resample(t *testing.T) {
	buf := NewBuffer(make([]int16, 24000), 24000, 1)
	out := buf.Resample(8000)

	if out.SampleRate != 8000 {
		t.Errorf("Expected rate 8000, got %d", out.SampleRate)
	}
	if len(out.Samples) != 8000 {
		t.Errorf("Expected 8000 samples, got %d", len(out.Samples))
	}
}

func TestBuffer_Resample_SameRate(t *testing.T) {
	buf := NewBuffer([]int16{1, 2, 3}, 24000, 1)
	if buf.Resample(24000) != buf {
		t.Error("Expected same-rate resample to be a no-op")
	}
}

func TestSilence(t *testing.T) {
	buf := Silence(500*time.Millisecond, 24000, 1)
	if len(buf.Samples) != 12000 {
		t.Errorf("Expected 12000 samples, got %d", len(buf.Samples))
	}
	for i, s := range buf.Samples {
		if s != 0 {
			t.Fatalf("Expected zero sample at %d, got %d", i, s)
		}
	}
}

func TestBuffer_Clone(t *testing.T) {
	buf := NewBuffer([]int16{1, 2, 3}, 24000, 1)
	clone := buf.Clone()

	clone.Samples[0] = 99
	if buf.Samples[0] != 1 {
		t.Error("Clone shares underlying samples with original")
	}
}
