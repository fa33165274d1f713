package wav

import (
	"fmt"
	"os"

	gowav "github.com/go-audio/wav"
)

// Analysis format required by the segmentation engine.
const (
	SampleRate = 16000
	Channels   = 1
	BitDepth   = 16
)

// ReadMono16 decodes a WAV file that must already be mono, 16 kHz, 16-bit
// PCM (the shape ffmpeg produces for the analysis pass) and returns its
// samples. Any other format is rejected rather than resampled here.
func ReadMono16(path string) ([]int16, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open wav: %w", err)
	}
	defer file.Close()

	decoder := gowav.NewDecoder(file)
	decoder.ReadInfo()
	if err := decoder.Err(); err != nil {
		return nil, fmt.Errorf("read wav header: %w", err)
	}
	if decoder.SampleRate != SampleRate || decoder.NumChans != Channels || decoder.BitDepth != BitDepth {
		return nil, fmt.Errorf("wav format %d Hz/%d ch/%d bit does not match analysis format %d Hz/%d ch/%d bit",
			decoder.SampleRate, decoder.NumChans, decoder.BitDepth, SampleRate, Channels, BitDepth)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}

	samples := make([]int16, len(buf.Data))
	for i, sample := range buf.Data {
		samples[i] = int16(sample)
	}
	return samples, nil
}
