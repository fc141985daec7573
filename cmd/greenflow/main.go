package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/greenflow-inc/greenflow/internal/interfaces/cli/migrate"
	"github.com/greenflow-inc/greenflow/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "greenflow",
		Short: "GreenFlow - hydroponics subscription service",
		Long:  `GreenFlow runs the hydroponics catalog, garden tracking and consultation booking service.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
