package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/geange/fsmbin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// NewRootCommand Returns the fsmbin command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fsmbin",
		Short: "Tools for binary state machine predictors.",
		Long: `Inspect, reduce, compare and emulate the binary state machines used as
bit predictors by context-mixing compressors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure log level
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if getFlag(cmd, "version") {
				fmt.Fprintln(cmd.OutOrStdout(), "fsmbin "+version())
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("config", "", "read settings from a YAML config file")
	rootCmd.PersistentFlags().Int("scale", fsmbin.DefaultScale, "probability scale (P_max) of table files")

	rootCmd.AddCommand(
		newPrintCommand(),
		newTrimCommand(),
		newMinimizeCommand(),
		newCmpCommand(),
		newInfoCommand(),
		newRunCommand(),
		newConvCommand(),
	)
	return rootCmd
}

// Execute runs the root command; this is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func version() string {
	if Version != "" {
		// Built via "make"
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		return info.Main.Version
	}
	// Unknown, perhaps "go run"
	return "(unknown version)"
}
