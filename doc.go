// SPDX-License-Identifier: EPL-2.0

// Package afgtfw converts between TFW arbitrary-waveform files and audio.
//
// A TFW file holds one cycle of a waveform as 14-bit DAC codes together with
// a coarse min/max envelope used for previews. The codec lives in
// formats/tfw; this package connects it to ordinary audio files.
//
// # Writing a shape
//
//	shape := afgtfw.DemoShape(1200, 32)
//	codes, _ := utils.Normalize(shape)
//	err := tfw.WriteFile("example.tfw", codes)
//
// # Importing audio
//
// Any decoder from the formats subpackages can feed Import:
//
//	file, _ := os.Open("capture.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//	codes, err := afgtfw.Import(src, 4096)
//
// Import mixes to mono, resamples to the requested point count with cubic
// interpolation and scales the result to the full code range.
//
// # Listening to a shape
//
//	codes, _ := tfw.ReadFile("example.tfw")
//	out, _ := os.Create("preview.wav")
//	err := afgtfw.Export(out, codes, 44100, 100)
//
// # Supported Formats
//
//   - TFW via formats/tfw
//   - WAV (PCM 16-bit) via formats/wav, which can also write
//   - AIFF (PCM 16-bit) via formats/aiff
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//
// The tfwtool command in cmd/tfwtool exposes all of this on the command line.
package afgtfw
