// SPDX-License-Identifier: EPL-2.0

package tfw

import (
	"io"

	"github.com/ik5/afgtfw/audio"
	"github.com/ik5/afgtfw/utils"
)

// DefaultSampleRate is used when a Decoder has no SampleRate set.
const DefaultSampleRate = 44100

// source plays one cycle of DAC codes as a mono audio stream.
type source struct {
	codes      []uint16
	pos        int
	sampleRate int
}

// NewSource wraps DAC codes as a mono audio.Source. Codes are masked and
// mapped linearly so that 0 plays as -1 and 16382 as +1.
func NewSource(codes []uint16, sampleRate int) audio.Source {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	return &source{codes: codes, sampleRate: sampleRate}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 1 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.codes) {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	n := copyCodes(dst, s.codes[s.pos:])
	s.pos += n

	if s.pos >= len(s.codes) {
		return n, io.EOF
	}

	return n, nil
}

func copyCodes(dst []float32, codes []uint16) int {
	n := min(len(dst), len(codes))
	for i := range n {
		dst[i] = utils.DACToFloat32(codes[i])
	}

	return n
}

// Decoder adapts TFW files to the audio pipeline.
type Decoder struct {
	// SampleRate the single cycle is played back at. Zero means DefaultSampleRate.
	SampleRate int
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	codes, err := Read(r)
	if err != nil {
		return nil, err
	}

	return NewSource(codes, d.SampleRate), nil
}
