package cmd

import (
	"github.com/geange/fsmbin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newConvCommand() *cobra.Command {
	convCmd := &cobra.Command{
		Use:   "conv [flags] input_file output_file",
		Short: "Convert a state machine between formats and probability scales.",
		Long: `Convert a state machine between the table, YAML and DOT formats (chosen by
file extension), optionally mapping its probabilities onto a new scale.`,
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
			if scale := getInt(cmd, "to-scale"); scale != 0 && scale != m.Scale() {
				from := m.Scale()
				if m, err = fsmbin.Rescale(m, scale); err != nil {
					return err
				}
				log.Infof("rescaled probabilities from %d to %d", from, scale)
			}
			return fsmbin.WriteFile(args[1], m)
		},
	}
	convCmd.Flags().Int("to-scale", 0, "map probabilities onto this scale")
	return convCmd
}
