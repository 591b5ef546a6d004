// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into an audio.Source using
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields interleaved stereo; wrap the source in
// audio.NewMonoMixer before turning it into a waveform shape.
//
//	file, _ := os.Open("sweep.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(source)
package mp3
