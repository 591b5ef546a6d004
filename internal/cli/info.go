// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/ik5/afgtfw/formats/tfw"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.tfw>",
		Short: "Show the header and code range of a TFW file",
		Long: `Print the header fields of a TFW file, the number of samples actually
present in the payload and the lowest and highest DAC code.

A payload shorter than the declared sample count is reported, not rejected.

Examples:
  tfwtool info example.tfw`,
		Args: cobra.ExactArgs(1),
		RunE: runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	hdr, samples, err := tfw.ReadWithHeader(f)
	if err != nil {
		return err
	}

	log.Debug().Str("path", path).Int("samples", len(samples)).Msg("Read TFW file")
	if uint64(len(samples)) != uint64(hdr.SampleCount) {
		log.Warn().
			Uint32("declared", hdr.SampleCount).
			Int("read", len(samples)).
			Msg("Payload shorter than declared sample count")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:          %s\n", path)
	fmt.Fprintf(out, "Version:       %d\n", hdr.Version)
	fmt.Fprintf(out, "Samples:       %d declared, %d read\n", hdr.SampleCount, len(samples))
	fmt.Fprintf(out, "Envelope flag: %d\n", hdr.EnvelopeFlag)

	if len(samples) > 0 {
		fmt.Fprintf(out, "Code range:    %d..%d\n", slices.Min(samples), slices.Max(samples))
	}

	return nil
}
