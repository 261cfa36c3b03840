package cmd

import (
	"github.com/mohammadtauchid/pagesim/engine"
	"github.com/mohammadtauchid/pagesim/report"
	"github.com/mohammadtauchid/pagesim/simulator"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		policyName string
		frames     int
		noTrace    bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run one replacement policy and print its step trace.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := a.cfg.Policy
			if cmd.Flags().Changed("policy") {
				p, err := simulator.ParsePolicyType(policyName)
				if err != nil {
					return err
				}
				policy = p
			}

			refs, err := a.references(cmd)
			if err != nil {
				return err
			}

			result, err := engine.Simulate(policy, a.frames(cmd, frames), refs)
			if err != nil {
				return err
			}

			w, closeReport, err := a.writer(cmd, policy.String())
			if err != nil {
				return err
			}
			defer closeReport()

			if err := report.WriteResult(w, result); err != nil {
				return err
			}
			if noTrace {
				return nil
			}

			return report.WriteTrace(w, result)
		},
	}

	runCmd.Flags().StringVarP(&policyName, "policy", "p", "", "FIFO, LRU or Optimal (env PAGESIM_POLICY)")
	runCmd.Flags().IntVarP(&frames, "frames", "f", 0, "number of frames (env PAGESIM_FRAMES)")
	runCmd.Flags().BoolVar(&noTrace, "no-trace", false, "print only the counters")

	return runCmd
}
