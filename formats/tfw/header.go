// SPDX-License-Identifier: EPL-2.0

package tfw

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the fixed size of a TFW header in bytes.
	HeaderSize = 512

	// Magic identifies a TFW file.
	Magic = "TEKAFG3000"

	// Version is the only format version AFG instruments write.
	Version uint32 = 20050114

	// EnvelopeOffset is where the envelope payload starts inside the header.
	EnvelopeOffset = 28

	// EnvelopePairs is the maximum number of (lower, upper) envelope pairs.
	EnvelopePairs = 206

	// EnvelopeSize is the size of the envelope region in bytes.
	EnvelopeSize = EnvelopePairs * 2

	// SampleMask keeps the 14 significant bits of a DAC code.
	SampleMask uint16 = 0x3FFF

	// MaxCode is the largest value a masked DAC code can hold.
	MaxCode = 16383
)

const (
	magicEnd        = len(Magic)
	versionOffset   = 16
	samplesOffset   = 20
	envFlagOffset   = 24
	envelopeEnd     = EnvelopeOffset + EnvelopeSize
	envelopePresent = 1
)

// Header is the decoded form of the 512 byte TFW header.
type Header struct {
	Version     uint32
	SampleCount uint32
	// EnvelopeFlag is kept raw; writers only ever store 0 or 1.
	EnvelopeFlag uint32
	Envelope     [EnvelopeSize]byte
}

// HasEnvelope reports whether the envelope region carries data.
func (h *Header) HasEnvelope() bool { return h.EnvelopeFlag == envelopePresent }

// EnvelopeLen returns how many bytes of the envelope region are meaningful.
func (h *Header) EnvelopeLen() int {
	if !h.HasEnvelope() {
		return 0
	}

	return 2 * int(min(h.SampleCount, EnvelopePairs))
}

// MarshalBinary packs the header into its on-disk layout.
// Magic is always written; reserved and unused bytes stay zero.
func (h *Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)

	copy(buf[:magicEnd], Magic)
	binary.BigEndian.PutUint32(buf[versionOffset:samplesOffset], h.Version)
	binary.BigEndian.PutUint32(buf[samplesOffset:envFlagOffset], h.SampleCount)
	binary.BigEndian.PutUint32(buf[envFlagOffset:EnvelopeOffset], h.EnvelopeFlag)
	copy(buf[EnvelopeOffset:envelopeEnd], h.Envelope[:])

	return buf, nil
}

// UnmarshalBinary parses and validates a header. data must hold at least
// HeaderSize bytes; anything past that is ignored.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: got %d header bytes", ErrTooSmall, len(data))
	}

	if string(data[:magicEnd]) != Magic {
		return fmt.Errorf("%w: %q", ErrBadMagic, data[:magicEnd])
	}

	version := binary.BigEndian.Uint32(data[versionOffset:samplesOffset])
	if version != Version {
		return fmt.Errorf("%w: %d", ErrBadVersion, version)
	}

	h.Version = version
	h.SampleCount = binary.BigEndian.Uint32(data[samplesOffset:envFlagOffset])
	h.EnvelopeFlag = binary.BigEndian.Uint32(data[envFlagOffset:EnvelopeOffset])
	copy(h.Envelope[:], data[EnvelopeOffset:envelopeEnd])

	return nil
}
