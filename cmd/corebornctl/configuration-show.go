package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Torxed/coreborn-api/pkg/config"
)

// configurationShowCmd represents the configuration show command
var configurationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show Coreborn configuration attributes and their sources",
	Long: `Show Coreborn configuration attributes and their sources.

The values displayed by this command reflect the current state of the
configuration sources: the environment variables and the config file.
These may not reflect the values used by an already running server.

Config file location: /etc/coreborn/coreborn.yml (or COREBORN_CONFIG_PATH)

Example:
  corebornctl configuration show`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(cfg.FormatText())
	},
}

func init() {
	configurationCmd.AddCommand(configurationShowCmd)
}
