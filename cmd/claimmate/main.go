package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claimmate/claimmate/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "claimmate",
	Short: "Insurance claims chat assistant",
	Long:  "ClaimMate answers claims questions over chat webhooks and tracks policy uploads and claim progress.",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook and claims HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Version)
	},
}

func main() {
	rootCmd.AddCommand(serveCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
