package cmd

import (
	"github.com/mohammadtauchid/pagesim/engine"
	"github.com/mohammadtauchid/pagesim/report"
	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	var frames int

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Run FIFO, LRU and Optimal on the same references and compare them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			refs, err := a.references(cmd)
			if err != nil {
				return err
			}

			results, err := engine.Compare(a.frames(cmd, frames), refs)
			if err != nil {
				return err
			}

			w, closeReport, err := a.writer(cmd, "compare")
			if err != nil {
				return err
			}
			defer closeReport()

			return report.WriteComparison(w, results)
		},
	}

	compareCmd.Flags().IntVarP(&frames, "frames", "f", 0, "number of frames (env PAGESIM_FRAMES)")

	return compareCmd
}
