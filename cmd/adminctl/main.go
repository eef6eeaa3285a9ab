package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RaikyD/charms-admin/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Operate the charms shop admin consoles from a terminal",
	Long: `adminctl talks to the shop backend through the same consoles the admin
web page uses. Configuration is read from the environment (and .env).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	rootCmd.AddCommand(ordersCmd, revenueCmd, stockCmd, reviewsCmd, charmsCmd)
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
