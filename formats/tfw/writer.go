// SPDX-License-Identifier: EPL-2.0

package tfw

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Write encodes samples as a TFW stream with the envelope flag set.
// Each sample is masked to its low 14 bits; samples itself is left untouched.
func Write(w io.Writer, samples []uint16) error {
	return write(w, samples, true)
}

// WriteWithoutEnvelope is like Write but leaves the envelope region zeroed
// and the flag cleared. The envelope is never computed.
func WriteWithoutEnvelope(w io.Writer, samples []uint16) error {
	return write(w, samples, false)
}

// WriteFile creates (or truncates) path and writes samples with Write.
// On failure the partial file is removed.
func WriteFile(path string, samples []uint16) error {
	return writeFile(path, samples, true)
}

// WriteFileWithoutEnvelope creates (or truncates) path and writes samples
// with WriteWithoutEnvelope. On failure the partial file is removed.
func WriteFileWithoutEnvelope(path string, samples []uint16) error {
	return writeFile(path, samples, false)
}

func write(w io.Writer, samples []uint16, withEnvelope bool) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if uint64(len(samples)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d", ErrTooManySamples, len(samples))
	}

	masked := make([]uint16, len(samples))
	for i, s := range samples {
		masked[i] = s & SampleMask
	}

	h := &Header{
		Version:     Version,
		SampleCount: uint32(len(masked)),
	}
	if withEnvelope {
		h.EnvelopeFlag = envelopePresent
		copy(h.Envelope[:], Envelope(masked))
	}

	header, err := h.MarshalBinary()
	if err != nil {
		return err
	}

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	buf := make([]byte, 2*min(len(masked), chunkSamples))
	for i := 0; i < len(masked); i += chunkSamples {
		chunk := masked[i:min(i+chunkSamples, len(masked))]
		out := buf[:2*len(chunk)]

		for j, s := range chunk {
			binary.BigEndian.PutUint16(out[2*j:2*j+2], s)
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing samples: %w", err)
		}
	}

	return nil
}

func writeFile(path string, samples []uint16, withEnvelope bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", path, cerr))
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return write(f, samples, withEnvelope)
}
