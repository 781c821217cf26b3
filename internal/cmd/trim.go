package cmd

import (
	"github.com/geange/fsmbin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTrimCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trim [flags] fsm_file output_file",
		Short: "Remove the states unreachable from the initial state.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			m, err := readFSM(cfg, args[0])
			if err != nil {
				return err
			}
			unreachable := fsmbin.Unreachable(m)
			if unreachable.Size() > 0 {
				log.Infof("unreachable states: %s", unreachable)
			}
			t, err := fsmbin.Trim(m)
			if err != nil {
				return err
			}
			log.Infof("trimmed %d states to %d", m.NumStates(), t.NumStates())
			return fsmbin.WriteFile(args[1], t)
		},
	}
}
