package main

import (
	"os"

	"github.com/spf13/cobra"

	"rannaghore/internal/interfaces/cli/migrate"
	"rannaghore/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rannaghore",
		Short: "Rannaghore Protidin - home-cooked food storefront",
		Long:  `Rannaghore Protidin is an online storefront for daily home-cooked Bengali food, with catalog, cart, checkout, and customer support.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
