// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"os"

	"github.com/ik5/afgtfw"
	"github.com/ik5/afgtfw/formats/tfw"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	rate   int
	cycles int
	out    string
}

func newExportCommand() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export <file.tfw>",
		Short: "Render a TFW shape as a WAV file",
		Long: `Play the shape stored in a TFW file a number of times and write the result
as a mono 16-bit PCM WAV file.

Examples:
  # One second of a 1200 point shape at 44.1kHz
  tfwtool export example.tfw --cycles 37 --out example.wav`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.rate, "rate", "r", tfw.DefaultSampleRate, "Output sample rate in Hz")
	cmd.Flags().IntVarP(&opts.cycles, "cycles", "c", 1, "Number of times the shape is repeated")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output WAV file path (default: input name with .wav)")

	return cmd
}

func runExport(opts *exportOptions, inPath string) (err error) {
	codes, err := tfw.ReadFile(inPath)
	if err != nil {
		return err
	}

	out := opts.out
	if out == "" {
		out = replaceExt(inPath, ".wav")
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			_ = os.Remove(out)
		}
	}()

	if err := afgtfw.Export(f, codes, opts.rate, opts.cycles); err != nil {
		return err
	}

	log.Info().
		Str("input", inPath).
		Str("output", out).
		Int("rate", opts.rate).
		Int("cycles", opts.cycles).
		Int("samples", len(codes)*opts.cycles).
		Msg("Wrote WAV file")

	return nil
}
