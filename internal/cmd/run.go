package cmd

import (
	"fmt"
	"strings"

	"github.com/geange/fsmbin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [flags] fsm_file bits_file",
		Short: "Emulate a state machine over a bitstream.",
		Long: `Feed the bits of a file through a state machine from its initial state.
Bits are read as ASCII 0/1 characters, or with --encoding=binary as the
bits of each byte, most significant first. With --strip the machine
restricted to the states this run visited is written out.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("encoding") {
				cfg.Encoding = getString(cmd, "encoding")
			}
			enc, err := fsmbin.ParseBitEncoding(cfg.Encoding)
			if err != nil {
				return err
			}
			m, err := readFSM(cfg, args[0])
			if err != nil {
				return err
			}
			bits, err := fsmbin.ReadBitsFile(args[1], enc)
			if err != nil {
				return err
			}

			var trace *fsmbin.Trace
			strip := getString(cmd, "strip")
			if strip != "" {
				var stripped *fsmbin.FSM
				if trace, stripped, err = fsmbin.RunStrip(m, bits); err != nil {
					return err
				}
				log.Infof("run visited %d of %d states", stripped.NumStates(), m.NumStates())
				if err := fsmbin.WriteFile(strip, stripped); err != nil {
					return err
				}
			} else if trace, err = fsmbin.Run(m, bits); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if getFlag(cmd, "trace") {
				visited := make([]string, len(trace.Visited))
				for i, s := range trace.Visited {
					visited[i] = fmt.Sprint(s)
				}
				fmt.Fprintf(out, "visited: %s\n", strings.Join(visited, " "))
			}
			fmt.Fprintf(out, "[step=%d] state=%d\n", trace.Steps, trace.Final)
			return nil
		},
	}
	runCmd.Flags().String("encoding", "text", "bit encoding of the input: text or binary")
	runCmd.Flags().String("strip", "", "write the machine restricted to visited states to this file")
	runCmd.Flags().Bool("trace", false, "print every visited state")
	return runCmd
}
