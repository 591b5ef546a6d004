// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into an audio.Source using
// github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("shape.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//
// Samples come straight from the decoder, already in [-1, 1].
package vorbis
