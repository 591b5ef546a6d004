// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"github.com/ik5/afgtfw"
	"github.com/ik5/afgtfw/formats/tfw"
	"github.com/ik5/afgtfw/utils"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type demoOptions struct {
	points int
	cycles int
	out    string
}

func newDemoCommand() *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a windowed sine burst as a TFW file",
		Long: `Generate sin(pi*t/N) * sin(2*pi*t/N*cycles) over N points, scale it to the
DAC code range and write it as a TFW file.

Examples:
  tfwtool demo
  tfwtool demo --points 4096 --cycles 8 --out burst.tfw`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runDemo(opts)
		},
	}

	cmd.Flags().IntVarP(&opts.points, "points", "n", 1200, "Number of points in the shape")
	cmd.Flags().IntVarP(&opts.cycles, "cycles", "c", 32, "Sine periods inside the window")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "example.tfw", "Output TFW file path")

	return cmd
}

func runDemo(opts *demoOptions) error {
	codes, err := utils.Normalize(afgtfw.DemoShape(opts.points, opts.cycles))
	if err != nil {
		return err
	}

	if err := tfw.WriteFile(opts.out, codes); err != nil {
		return err
	}

	log.Info().
		Str("output", opts.out).
		Int("points", opts.points).
		Int("cycles", opts.cycles).
		Msg("Wrote demo shape")

	return nil
}
