// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/ik5/afgtfw"
	"github.com/ik5/afgtfw/formats/tfw"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type importOptions struct {
	points     int
	out        string
	noEnvelope bool
}

func newImportCommand() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <audio_file>",
		Short: "Convert an audio file into a TFW shape",
		Long: `Decode an audio file, mix it to mono, resample it to the requested number
of points and scale it to the full DAC code range.

Examples:
  # Keep every sample
  tfwtool import capture.wav

  # Resample to 4096 points
  tfwtool import sweep.mp3 --points 4096 --out sweep.tfw

Supported Input Formats:
  WAV:    .wav (16-bit PCM)
  AIFF:   .aiff, .aif (16-bit PCM)
  MP3:    .mp3
  Vorbis: .ogg
  TFW:    .tfw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.points, "points", "n", 0, "Number of points in the shape (0 keeps the input length)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output TFW file path (default: input name with .tfw)")
	cmd.Flags().BoolVar(&opts.noEnvelope, "no-envelope", false, "Leave the preview envelope empty")

	return cmd
}

func runImport(opts *importOptions, inPath string) error {
	dec, err := newRegistry().ForPath(inPath)
	if err != nil {
		return err
	}

	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	defer src.Close()

	log.Debug().
		Str("path", inPath).
		Int("sample_rate", src.SampleRate()).
		Int("channels", src.Channels()).
		Msg("Decoded input")

	codes, err := afgtfw.Import(src, opts.points)
	if err != nil {
		return fmt.Errorf("importing %s: %w", inPath, err)
	}

	out := opts.out
	if out == "" {
		out = replaceExt(inPath, ".tfw")
	}

	write := tfw.WriteFile
	if opts.noEnvelope {
		write = tfw.WriteFileWithoutEnvelope
	}
	if err := write(out, codes); err != nil {
		return err
	}

	log.Info().
		Str("input", inPath).
		Str("output", out).
		Int("samples", len(codes)).
		Bool("envelope", !opts.noEnvelope).
		Msg("Wrote TFW file")

	return nil
}
