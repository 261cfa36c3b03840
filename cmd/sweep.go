package cmd

import (
	"github.com/mohammadtauchid/pagesim/engine"
	"github.com/mohammadtauchid/pagesim/report"
	"github.com/mohammadtauchid/pagesim/simulator"
	"github.com/spf13/cobra"
)

func newSweepCmd(a *app) *cobra.Command {
	var (
		policyName string
		frames     []int
	)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one policy over several frame counts and look for Belady's anomaly.",
		Example: `  pagesim sweep --policy fifo --frames 3,4 --refs "1,2,3,4,1,2,5,1,2,3,4,5"
  pagesim sweep --policy lru --frames 1000 --frames 2000 --file resource/trace.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := a.cfg.Policy
			if cmd.Flags().Changed("policy") {
				p, err := simulator.ParsePolicyType(policyName)
				if err != nil {
					return err
				}
				policy = p
			}

			counts := frames
			if !cmd.Flags().Changed("frames") {
				counts = []int{a.cfg.Frames}
			}

			refs, err := a.references(cmd)
			if err != nil {
				return err
			}

			results, err := engine.Sweep(policy, counts, refs)
			if err != nil {
				return err
			}

			w, closeReport, err := a.writer(cmd, policy.String())
			if err != nil {
				return err
			}
			defer closeReport()

			return report.WriteSweep(w, results)
		},
	}

	sweepCmd.Flags().StringVarP(&policyName, "policy", "p", "", "FIFO, LRU or Optimal (env PAGESIM_POLICY)")
	sweepCmd.Flags().IntSliceVarP(&frames, "frames", "f", nil, "frame counts to try, repeatable or comma separated")

	return sweepCmd
}
