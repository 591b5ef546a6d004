// SPDX-License-Identifier: EPL-2.0

package tfw

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// chunkSamples bounds how many cells are read or written per I/O call.
const chunkSamples = 4096

// ReadHeader reads and validates the 512 byte header from r.
func ReadHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, HeaderSize)

	n, err := io.ReadFull(r, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: got %d header bytes", ErrTooSmall, n)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	h := &Header{}
	if err := h.UnmarshalBinary(buf); err != nil {
		return nil, err
	}

	return h, nil
}

// Read decodes a TFW stream into raw DAC cells. Cells are returned as
// stored; the two high bits are not masked.
//
// A payload shorter than the declared sample count is not an error: Read
// returns every complete cell it found and drops a dangling odd byte.
// Compare len(result) with the header's SampleCount to detect truncation.
func Read(r io.Reader) ([]uint16, error) {
	_, samples, err := ReadWithHeader(r)
	return samples, err
}

// ReadWithHeader is like Read but also returns the parsed header.
func ReadWithHeader(r io.Reader) (*Header, []uint16, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, nil, err
	}

	samples, err := readPayload(r, uint64(h.SampleCount))
	if err != nil {
		return nil, nil, err
	}

	return h, samples, nil
}

// readPayload reads up to count big-endian cells in bounded chunks so a
// forged count cannot force a huge allocation up front.
// count stays unsigned so a large header value cannot overflow int on
// 32-bit targets.
func readPayload(r io.Reader, count uint64) ([]uint16, error) {
	first := int(min(count, chunkSamples))
	samples := make([]uint16, 0, first)
	buf := make([]byte, 2*first)

	for uint64(len(samples)) < count {
		want := int(min(count-uint64(len(samples)), chunkSamples))

		n, err := io.ReadFull(r, buf[:2*want])
		for i := range n / 2 {
			samples = append(samples, binary.BigEndian.Uint16(buf[2*i:2*i+2]))
		}

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	return samples, nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) ([]uint16, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// ReadFileHeader opens path and decodes only its header.
func ReadFileHeader(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadHeader(f)
}
