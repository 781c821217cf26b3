package cmd

import (
	"fmt"
	"os"

	"github.com/geange/fsmbin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or exit if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected int flag, or exit if an error arises.
func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Load the config named by --config, if any, and apply flag overrides.
func loadConfig(cmd *cobra.Command) (fsmbin.Config, error) {
	cfg := fsmbin.DefaultConfig()
	if path := getString(cmd, "config"); path != "" {
		var err error
		if cfg, err = fsmbin.LoadConfig(path); err != nil {
			return cfg, err
		}
		log.Debugf("loaded config %s", path)
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = getInt(cmd, "scale")
	}
	return cfg, cfg.Validate()
}

// Read a machine file using the configured probability scale.
func readFSM(cfg fsmbin.Config, path string) (*fsmbin.FSM, error) {
	m, err := fsmbin.ReadFile(path, cfg.ModelOptions()...)
	if err != nil {
		return nil, err
	}
	log.Debugf("read %s: %d states, initial state %d", path, m.NumStates(), m.Initial())
	return m, nil
}
