package cmd

import (
	"fmt"

	"github.com/geange/fsmbin"
	"github.com/spf13/cobra"
)

func newCmpCommand() *cobra.Command {
	cmpCmd := &cobra.Command{
		Use:   "cmp [flags] fsm_file fsm_file",
		Short: "Compare two state machines.",
		Long: `Compare the reachable parts of two state machines. By default the state
graphs must match exactly; with --behavior both machines are minimized first
so only their predictions have to agree.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			a, err := readFSM(cfg, args[0])
			if err != nil {
				return err
			}
			b, err := readFSM(cfg, args[1])
			if err != nil {
				return err
			}

			var result *fsmbin.Comparison
			if getFlag(cmd, "behavior") {
				if result, err = fsmbin.CompareBehavior(a, b); err != nil {
					return err
				}
			} else {
				result = fsmbin.Compare(a, b)
			}

			out := cmd.OutOrStdout()
			if result.UnreachableA.Size() > 0 {
				fmt.Fprintf(out, "%s: unreachable states %s\n", args[0], result.UnreachableA)
			}
			if result.UnreachableB.Size() > 0 {
				fmt.Fprintf(out, "%s: unreachable states %s\n", args[1], result.UnreachableB)
			}
			fmt.Fprintln(out, result)
			return result.Err()
		},
	}
	cmpCmd.Flags().Bool("behavior", false, "compare minimized machines")
	return cmpCmd
}
