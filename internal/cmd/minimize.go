package cmd

import (
	"github.com/geange/fsmbin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMinimizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "minimize [flags] fsm_file output_file",
		Short: "Merge states that predict identically for every bit sequence.",
		Long: `Trim a state machine, then merge every group of states that predict the
same probabilities for all future bit sequences into a single state.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			m, err := readFSM(cfg, args[0])
			if err != nil {
				return err
			}
			reduced, err := fsmbin.Minimize(m)
			if err != nil {
				return err
			}
			log.Infof("minimized %d states to %d", m.NumStates(), reduced.NumStates())
			return fsmbin.WriteFile(args[1], reduced)
		},
	}
}
