// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level pipeline used to turn recordings
// into waveform shapes and back.
//
// This package contains:
//   - Source interface for audio input
//   - Decoder interface and a Registry keyed by file extension
//   - MonoMixer for channel mixing
//   - ReadAll to drain a source and Fit to stretch or shrink one cycle
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// Samples are float32 in [-1.0, 1.0], interleaved by channel. io.EOF marks
// the end of a stream and may be returned together with the final samples.
//
// # Fitting a Cycle
//
// An arbitrary waveform has no sample rate of its own, only a point count.
// Fit maps a whole mono recording onto exactly that many points:
//
//	mono := audio.NewMonoMixer(src)
//	all, err := audio.ReadAll(mono)
//	shape := audio.Fit(all, 4096)
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("input.WAV")
package audio
