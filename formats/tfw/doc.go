// SPDX-License-Identifier: EPL-2.0

// Package tfw reads and writes TFW arbitrary waveform files.
//
// TFW is the shape format of the AFG1000, AFG2000 and AFG3000 function
// generators. A file only carries shape data; amplitude, offset and timing
// are applied by the instrument at run time.
//
// # File Format
//
// All integers are big-endian:
//
//	offset  size     field
//	0       10       magic "TEKAFG3000"
//	10      6        reserved, zero
//	16      4        version, always 20050114
//	20      4        sample count
//	24      4        envelope flag, 0 or 1
//	28      412      envelope, 206 (lower, upper) byte pairs
//	512     2*count  samples, uint16 DAC codes (14 significant bits)
//
// # Reading
//
//	codes, err := tfw.ReadFile("shape.tfw")
//	if errors.Is(err, tfw.ErrFormat) {
//	    // not a TFW file
//	}
//
// Read does not mask the returned cells. A payload shorter than the declared
// count yields the complete cells available without an error.
//
// # Writing
//
//	err := tfw.WriteFile("shape.tfw", codes)
//
// Writers mask every code to 14 bits and store the envelope used by the
// instrument's waveform preview. WriteWithoutEnvelope skips it.
//
// # Audio Pipeline
//
// Decoder turns a TFW file into an audio.Source that plays one cycle of the
// shape, so waveforms can be previewed with the other format packages.
package tfw
