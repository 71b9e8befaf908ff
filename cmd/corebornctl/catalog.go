package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Torxed/coreborn-api/pkg/catalog"
	"github.com/Torxed/coreborn-api/pkg/config"
	"github.com/Torxed/coreborn-api/pkg/db"
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the resource catalog",
	Long:  `Manage the resource catalog that defines valid map resources and categories.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'catalog' requires a subcommand (show, sync)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active resource catalog",
	Long:  `Show the resource catalog the server would use: the compiled-in default, or the configured catalog file.`,
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := catalog.Load(config.Get().CatalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
			os.Exit(1)
		}

		for _, category := range cat.Categories() {
			fmt.Println(category + ":")
			for _, res := range cat.ResourcesIn(category) {
				visibility := ""
				if !res.Visible {
					visibility = " (hidden)"
				}
				fmt.Printf("  %-15s %s%s\n", res.Name, res.Color, visibility)
			}
		}
	},
}

var catalogSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror the catalog into the resources table",
	Long: `Mirror the catalog into the resources table.

Rows already present are left untouched so position attribution survives
catalog changes.

Example:
  corebornctl catalog sync`,
	Run: func(cmd *cobra.Command, args []string) {
		cat, err := catalog.Load(config.Get().CatalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
			os.Exit(1)
		}

		gormDB, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		if err := cat.Sync(gormDB); err != nil {
			fmt.Fprintf(os.Stderr, "Catalog sync failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Synced %d catalog resources\n", cat.Len())
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogSyncCmd)
}
