// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM 16-bit WAV files on top of
// github.com/go-audio/wav.
//
// WAV is the usual way to bring a recorded shape into a TFW file and the
// easiest way to listen to one afterwards.
//
// # Decoding
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("capture.wav")
//	source, err := decoder.Decode(file)
//
// Inputs that cannot seek are buffered in memory first.
//
// # Writing
//
//	file, _ := os.Create("preview.wav")
//	err := wav.WriteWAV16(file, 44100, samples)
//
// WriteWAV16 needs an io.WriteSeeker because chunk sizes are patched after
// the samples are written.
package wav
