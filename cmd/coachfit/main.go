package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/coachfit-inc/coachfit/internal/interfaces/cli/migrate"
	"github.com/coachfit-inc/coachfit/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coachfit",
		Short: "CoachFit - coaching program checkout and subscription service",
		Long:  `CoachFit serves the coaching program catalog, the Toss Payments checkout flow, and coach dashboards, with built-in migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
