// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"github.com/ik5/afgtfw/audio"
	"github.com/ik5/afgtfw/formats/aiff"
	"github.com/ik5/afgtfw/formats/mp3"
	"github.com/ik5/afgtfw/formats/tfw"
	"github.com/ik5/afgtfw/formats/vorbis"
	"github.com/ik5/afgtfw/formats/wav"
)

// newRegistry maps input file extensions to decoders.
func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("tfw", tfw.Decoder{})

	return reg
}
