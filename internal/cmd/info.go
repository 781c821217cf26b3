package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/geange/fsmbin"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [flags] fsm_file",
		Short: "Summarize a state machine.",
		Long: `Report state and probability ranges of the reachable states and the
expected entropy per bit of the source the machine implies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			m, err := readFSM(cfg, args[0])
			if err != nil {
				return err
			}
			stats, err := fsmbin.ComputeStats(m, cfg.StatsOptions()...)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), m, stats)
			return nil
		},
	}
}

func printStats(w io.Writer, m *fsmbin.FSM, stats *fsmbin.Stats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"property", "value"})
	table.AppendBulk([][]string{
		{"states", strconv.Itoa(m.NumStates())},
		{"reachable states", strconv.Itoa(stats.States)},
		{"unreachable states", strconv.Itoa(stats.Unreachable)},
		{"self-referential states", strconv.Itoa(stats.SelfReferential)},
		{"initial state", strconv.Itoa(m.Initial())},
		{"min state", strconv.Itoa(stats.MinState)},
		{"max state", strconv.Itoa(stats.MaxState)},
		{"scale", strconv.Itoa(m.Scale())},
		{"min probability", strconv.Itoa(stats.MinProb)},
		{"max probability", strconv.Itoa(stats.MaxProb)},
		{"mean probability", fmt.Sprintf("%.2f", stats.MeanProb)},
		{"entropy (bits/bit)", fmt.Sprintf("%.6f", stats.Entropy)},
		{"iterations", strconv.Itoa(stats.Iterations)},
		{"converged", strconv.FormatBool(stats.Converged)},
	})
	table.Render()
}
