// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes 16-bit PCM AIFF files into an audio.Source using
// github.com/go-audio/aiff.
//
//	file, _ := os.Open("shape.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
//
// Samples are scaled to [-1, 1]. Other bit depths return
// ErrOnlyPCM16bitSupported.
package aiff
