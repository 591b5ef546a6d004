// SPDX-License-Identifier: EPL-2.0

package tfw

// envelopeShift drops the 6 low bits of a 14 bit code, leaving 8 bits.
const envelopeShift = 6

// Envelope computes the min/max summary the instrument uses to plot a
// waveform. The result holds 2*min(len(samples), EnvelopePairs) bytes laid
// out as lower0, upper0, lower1, upper1, ...
//
// Samples are expected to be masked already. Waveforms of up to
// EnvelopePairs samples get one (v, v) pair per sample. Longer waveforms are
// split into EnvelopePairs contiguous segments whose sizes differ by at most
// one, with the longer segments first.
func Envelope(samples []uint16) []byte {
	n := len(samples)
	if n <= EnvelopePairs {
		env := make([]byte, 2*n)
		for i, s := range samples {
			v := reduce(s)
			env[2*i] = v
			env[2*i+1] = v
		}
		return env
	}

	env := make([]byte, EnvelopeSize)
	base := n / EnvelopePairs
	extra := n % EnvelopePairs

	start := 0
	for seg := range EnvelopePairs {
		size := base
		if seg < extra {
			size++
		}

		lower, upper := segmentRange(samples[start : start+size])
		env[2*seg] = lower
		env[2*seg+1] = upper

		start += size
	}

	return env
}

// segmentRange returns the smallest and largest reduced value of a
// non-empty segment.
func segmentRange(seg []uint16) (lower, upper byte) {
	lower = reduce(seg[0])
	upper = lower
	for _, s := range seg[1:] {
		v := reduce(s)
		if v < lower {
			lower = v
		}
		if v > upper {
			upper = v
		}
	}

	return lower, upper
}

func reduce(s uint16) byte { return byte(s >> envelopeShift) }
