package audio

import (
	"fmt"
	"io"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// DecodeWAV parses a RIFF/WAVE payload into a Buffer
func DecodeWAV(r io.ReadSeeker) (*Buffer, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV payload")
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode WAV payload: %w", err)
	}
	if pcm.Format == nil || pcm.Format.SampleRate == 0 {
		return nil, fmt.Errorf("WAV payload missing format header")
	}

	shift := uint(0)
	if pcm.SourceBitDepth > 16 {
		shift = uint(pcm.SourceBitDepth - 16)
	}

	samples := make([]int16, len(pcm.Data))
	for i, v := range pcm.Data {
		samples[i] = int16(v >> shift)
	}

	return NewBuffer(samples, pcm.Format.SampleRate, pcm.Format.NumChannels), nil
}

// DecodeMP3 parses an MP3 payload into a mono Buffer. go-mp3 always emits
// 16-bit stereo frames, which are downmixed here.
func DecodeMP3(r io.Reader) (*Buffer, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("decode MP3 payload: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("read MP3 stream: %w", err)
	}

	stereo, err := DecodePCM16(raw, dec.SampleRate(), 2)
	if err != nil {
		return nil, err
	}
	return stereo.ToMono(), nil
}

// WriteWAVFile persists a buffer as a 16-bit PCM WAV file and returns the
// number of bytes written.
func WriteWAVFile(path string, buf *Buffer) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, buf.SampleRate, 16, buf.Channels, 1)

	data := make([]int, len(buf.Samples))
	for i, s := range buf.Samples {
		data[i] = int(s)
	}
	pcm := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: buf.Channels, SampleRate: buf.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(pcm); err != nil {
		return 0, fmt.Errorf("write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("finalize WAV file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		return 0, nil
	}
	return info.Size(), nil
}
