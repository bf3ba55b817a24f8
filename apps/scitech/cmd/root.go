package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scitech",
	Short: "SciTech machine dashboard server",
	Long:  `Serves the machine dashboard API: login, machine listing and updates, and live temperature pushes.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
