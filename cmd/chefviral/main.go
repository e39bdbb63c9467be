package main

import (
	"os"

	"github.com/spf13/cobra"

	"chefviral/internal/interfaces/cli/migrate"
	"chefviral/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chefviral",
		Short: "Chef Viral - digital menu and marketing engine for small food businesses",
		Long:  `Chef Viral serves public digital menus, generates social media campaigns and tracks customer engagement for small food businesses.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
