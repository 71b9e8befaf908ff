package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "corebornctl",
	Short: "Coreborn map API server and tooling",
	Long:  `Run and operate the Coreborn community map API: server, database migrations, catalog and configuration management.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	Execute()
}
