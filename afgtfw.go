// SPDX-License-Identifier: EPL-2.0

package afgtfw

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/afgtfw/audio"
	"github.com/ik5/afgtfw/formats/tfw"
	"github.com/ik5/afgtfw/formats/wav"
	"github.com/ik5/afgtfw/utils"
)

// Import turns an audio source into DAC codes ready for tfw.Write.
//
// Multi-channel sources are mixed down to mono and the whole stream is read.
// When points is positive the signal is resampled to exactly that many
// values; zero keeps every sample. The result spans 0..utils.DefaultUpper.
//
// Import does not close src.
func Import(src audio.Source, points int) ([]uint16, error) {
	if points < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPoints, points)
	}

	samples, err := audio.ReadAll(audio.NewMonoMixer(src))
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, audio.ErrNoSamples
	}

	if points > 0 {
		samples = audio.Fit(samples, points)
	}

	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = float64(s)
	}

	codes, err := utils.Normalize(values)
	if err != nil {
		return nil, fmt.Errorf("normalizing shape: %w", err)
	}

	return codes, nil
}

// Export plays a TFW shape cycles times at sampleRate and writes the result
// as a mono 16-bit WAV. A zero sampleRate means tfw.DefaultSampleRate.
func Export(w io.WriteSeeker, samples []uint16, sampleRate, cycles int) error {
	if len(samples) == 0 {
		return tfw.ErrNoSamples
	}
	if cycles < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCycles, cycles)
	}

	src := tfw.NewSource(samples, sampleRate)
	cycle, err := audio.ReadAll(src)
	if err != nil {
		return err
	}

	pcm := make([]int16, 0, len(cycle)*cycles)
	for range cycles {
		for _, s := range cycle {
			pcm = append(pcm, utils.Float32ToInt16(s))
		}
	}

	return wav.WriteWAV16(w, src.SampleRate(), pcm)
}

// DemoShape returns a windowed sine burst of points values with cycles full
// periods: sin(pi*t/N) * sin(2*pi*t/N*cycles).
func DemoShape(points, cycles int) []float64 {
	if points <= 0 {
		return nil
	}

	n := float64(points)
	out := make([]float64, points)
	for t := range out {
		x := float64(t)
		out[t] = math.Sin(math.Pi*x/n) * math.Sin(2*math.Pi*x/n*float64(cycles))
	}

	return out
}
