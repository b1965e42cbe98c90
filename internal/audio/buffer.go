package audio

import (
	"math"
	"time"
)

// fullScale is the magnitude treated as 0 dBFS for 16-bit PCM.
const fullScale = 32768.0

// Buffer holds decoded PCM audio. Each transform produces a new Buffer; a
// buffer has exactly one owner at a time as it moves through the pipeline.
type Buffer struct {
	Samples    []int16 // Interleaved 16-bit signed PCM
	SampleRate int     // Samples per second per channel
	Channels   int     // Number of interleaved channels
}

// NewBuffer wraps samples in a Buffer
func NewBuffer(samples []int16, sampleRate, channels int) *Buffer {
	if channels < 1 {
		channels = 1
	}
	return &Buffer{Samples: samples, SampleRate: sampleRate, Channels: channels}
}

// Silence returns a buffer of zero samples covering d
func Silence(d time.Duration, sampleRate, channels int) *Buffer {
	n := int(float64(sampleRate)*d.Seconds()) * channels
	if n < 0 {
		n = 0
	}
	return NewBuffer(make([]int16, n), sampleRate, channels)
}

// Frames returns the number of sample frames (samples per channel)
func (b *Buffer) Frames() int {
	if b.Channels == 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Duration returns the playback duration of the buffer
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate == 0 {
		return 0
	}
	return time.Duration(float64(b.Frames()) / float64(b.SampleRate) * float64(time.Second))
}

// Seconds returns the playback duration in seconds
func (b *Buffer) Seconds() float64 {
	if b.SampleRate == 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.SampleRate)
}

// Clone returns a deep copy of the buffer
func (b *Buffer) Clone() *Buffer {
	samples := make([]int16, len(b.Samples))
	copy(samples, b.Samples)
	return NewBuffer(samples, b.SampleRate, b.Channels)
}

// PeakDBFS returns the peak loudness of the buffer in dB relative to full
// scale. A silent buffer returns -Inf.
func (b *Buffer) PeakDBFS() float64 {
	peak := 0
	for _, s := range b.Samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(float64(peak)/fullScale)
}

// RMS returns the root mean square level of the samples
func (b *Buffer) RMS() float64 {
	if len(b.Samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range b.Samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(b.Samples)))
}

// ToMono downmixes the buffer to a single channel by averaging frames.
// Mono buffers are returned unchanged.
func (b *Buffer) ToMono() *Buffer {
	if b.Channels <= 1 {
		return b
	}
	frames := b.Frames()
	mono := make([]int16, frames)
	for i := 0; i < frames; i++ {
		sum := 0
		for c := 0; c < b.Channels; c++ {
			sum += int(b.Samples[i*b.Channels+c])
		}
		mono[i] = int16(sum / b.Channels)
	}
	return NewBuffer(mono, b.SampleRate, 1)
}

// Resample returns a new buffer converted to targetRate using linear
// interpolation. Only mono buffers are resampled; callers downmix first.
func (b *Buffer) Resample(targetRate int) *Buffer {
	if b.SampleRate == targetRate || len(b.Samples) == 0 {
		return b
	}

	ratio := float64(targetRate) / float64(b.SampleRate)
	outputLength := int(float64(len(b.Samples)) * ratio)
	output := make([]int16, outputLength)

	for i := 0; i < outputLength; i++ {
		srcPos := float64(i) / ratio

		idx0 := int(srcPos)
		idx1 := idx0 + 1
		if idx1 >= len(b.Samples) {
			idx1 = len(b.Samples) - 1
		}

		fraction := srcPos - float64(idx0)
		output[i] = int16(float64(b.Samples[idx0])*(1.0-fraction) + float64(b.Samples[idx1])*fraction)
	}

	return NewBuffer(output, targetRate, b.Channels)
}
