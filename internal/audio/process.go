package audio

import (
	"errors"
	"math"
	"time"
)

// ErrEmptyAssembly is returned when Assemble is given zero segments.
var ErrEmptyAssembly = errors.New("no audio segments to assemble")

// Normalize returns a new buffer whose peak loudness equals targetDBFS.
// The transform is a uniform gain: target minus measured peak, applied to
// every sample with a clipping guard. Silent buffers are returned as copies.
func Normalize(b *Buffer, targetDBFS float64) *Buffer {
	measured := b.PeakDBFS()
	if math.IsInf(measured, -1) {
		return b.Clone()
	}

	gain := math.Pow(10, (targetDBFS-measured)/20)
	out := make([]int16, len(b.Samples))
	for i, s := range b.Samples {
		v := float64(s) * gain
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		out[i] = int16(v)
	}
	return NewBuffer(out, b.SampleRate, b.Channels)
}

// Assemble concatenates normalized segments in order into a single track.
// Between every adjacent pair a silence gap is inserted, and the join is
// blended: the preceding segment fades out into the gap and the following
// segment fades in out of it, over the crossfade duration (bounded by the
// gap). With a crossfade at least as long as the gap the blend spans the
// whole gap and the track duration equals the sum of the segment durations;
// shorter crossfades leave pure silence in between.
//
// Segments are aligned to the first segment's sample rate and downmixed to
// mono before joining.
func Assemble(segments []*Buffer, silence, crossfade time.Duration) (*Buffer, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyAssembly
	}

	rate := segments[0].SampleRate
	aligned := make([]*Buffer, len(segments))
	for i, seg := range segments {
		aligned[i] = seg.ToMono().Resample(rate)
	}

	if len(aligned) == 1 {
		return aligned[0].Clone(), nil
	}

	gapFrames := int(float64(rate) * silence.Seconds())
	blendFrames := int(float64(rate) * crossfade.Seconds())
	if blendFrames > gapFrames {
		blendFrames = gapFrames
	}

	out := append([]int16(nil), aligned[0].Samples...)
	for _, seg := range aligned[1:] {
		// Fade the accumulated tail out into the gap
		fadeOut := blendFrames
		if fadeOut > len(out) {
			fadeOut = len(out)
		}
		for i := 0; i < fadeOut; i++ {
			idx := len(out) - fadeOut + i
			g := 1.0 - float64(i+1)/float64(fadeOut)
			out[idx] = int16(float64(out[idx]) * g)
		}

		// Remaining pure silence after the blended portion of the gap
		out = append(out, make([]int16, gapFrames-blendFrames)...)

		// Fade the next segment in from the gap
		next := append([]int16(nil), seg.Samples...)
		fadeIn := blendFrames
		if fadeIn > len(next) {
			fadeIn = len(next)
		}
		for i := 0; i < fadeIn; i++ {
			g := float64(i+1) / float64(fadeIn)
			next[i] = int16(float64(next[i]) * g)
		}
		out = append(out, next...)
	}

	return NewBuffer(out, rate, 1), nil
}
