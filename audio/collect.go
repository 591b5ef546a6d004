// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/afgtfw/utils"
)

const (
	readChunk = 4096

	// maxEmptyReads guards against sources that keep returning (0, nil).
	maxEmptyReads = 100
)

// ReadAll drains src and returns every interleaved sample it produced.
// io.EOF ends the stream and is not returned as an error.
func ReadAll(src Source) ([]float32, error) {
	channels := max(src.Channels(), 1)
	buf := make([]float32, readChunk*channels)
	out := make([]float32, 0, len(buf))

	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return nil, io.ErrNoProgress
		}
	}
}

// Fit resamples a mono sequence to exactly points values with Catmull-Rom
// interpolation. The first and last input samples are kept as the first and
// last outputs. Fit returns nil when there is nothing to fit.
func Fit(samples []float32, points int) []float32 {
	if len(samples) == 0 || points <= 0 {
		return nil
	}

	out := make([]float32, points)
	if points == len(samples) {
		copy(out, samples)
		return out
	}
	if len(samples) == 1 || points == 1 {
		for i := range out {
			out[i] = samples[0]
		}
		return out
	}

	// Neighbours past either end are extended linearly so ramps stay ramps.
	last := len(samples) - 1
	at := func(i int) float32 {
		switch {
		case i < 0:
			return samples[0] + float32(i)*(samples[1]-samples[0])
		case i > last:
			return samples[last] + float32(i-last)*(samples[last]-samples[last-1])
		}
		return samples[i]
	}

	for i := range out {
		pos := float64(i*last) / float64(points-1)
		idx := min(int(pos), last)
		frac := float32(pos - float64(idx))

		out[i] = utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
	}

	return out
}
