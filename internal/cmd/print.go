package cmd

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/geange/fsmbin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newPrintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "print [flags] fsm_file dot_file",
		Short: "Render a state machine as a DOT graph.",
		Long: `Render a state machine as a DOT graph. The initial state and the
self-referential states are drawn as double circles.`,
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
			if err := writeDotFile(args[1], m); err != nil {
				return err
			}
			log.Infof("To make an svg use: dot %s -Tsvg > graph.svg", args[1])
			return nil
		},
	}
}

// Write the DOT graph whatever the extension of the output file.
func writeDotFile(path string, m *fsmbin.FSM) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()
	return fsmbin.WriteDot(f, m, fsmbin.GraphName(path))
}
