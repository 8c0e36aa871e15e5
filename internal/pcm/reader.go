// Package pcm loads raw PCM sample streams into float64 signals. Only
// headerless sample plumbing lives here; codec decoding and resampling
// belong to external tools (e.g. ffmpeg -f s16le piping into stdin).
package pcm

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"
)

// Signal holds a decoded mono signal and its sample rate.
type Signal struct {
	Samples    []float64     `json:"-"`
	SampleRate int           `json:"sample_rate"`
	Duration   time.Duration `json:"duration"`
}

// ReadS16LE reads signed 16-bit little-endian mono samples until EOF,
// scaling them into [-1, 1).
func ReadS16LE(r io.Reader, sampleRate int) (*Signal, error) {
	if sampleRate < 1 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}

	br := bufio.NewReader(r)
	samples := make([]float64, 0, 1<<16)
	for {
		var s int16
		if err := binary.Read(br, binary.LittleEndian, &s); err != nil {
			if err == io.EOF {
				break
			}
			if err == io.ErrUnexpectedEOF {
				return nil, fmt.Errorf("truncated sample at offset %d", len(samples)*2)
			}
			return nil, fmt.Errorf("failed to read PCM samples: %w", err)
		}
		samples = append(samples, float64(s)/32768.0)
	}

	return &Signal{
		Samples:    samples,
		SampleRate: sampleRate,
		Duration:   time.Duration(float64(len(samples)) / float64(sampleRate) * float64(time.Second)),
	}, nil
}

// ReadFile reads an entire raw s16le PCM file. An input of "-" reads
// from stdin.
func ReadFile(path string, sampleRate int) (*Signal, error) {
	if path == "-" {
		return ReadS16LE(os.Stdin, sampleRate)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PCM input: %w", err)
	}
	defer f.Close()
	return ReadS16LE(f, sampleRate)
}

// WriteS16LE writes a float64 signal as signed 16-bit little-endian
// samples, clipping to the representable range.
func WriteS16LE(w io.Writer, samples []float64) error {
	bw := bufio.NewWriter(w)
	for _, sample := range samples {
		if sample > 1.0 {
			sample = 1.0
		} else if sample < -1.0 {
			sample = -1.0
		}
		if err := binary.Write(bw, binary.LittleEndian, int16(sample*32767)); err != nil {
			return fmt.Errorf("failed to write PCM samples: %w", err)
		}
	}
	return bw.Flush()
}
