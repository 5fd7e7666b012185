package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atrium",
		Short: "Landing pages and app shells with live data",
		Long: `Atrium is a toolkit for landing pages and app shells.

Pages are composed in Go, async data flows through resources with
explicit loading and error states, and broken sections are confined
by error boundaries. The demo site shows an async metrics strip with
live WebSocket updates, a theme toggle, feature flags with targeting
rules, and static export to a directory or S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "atrium:", err)
		os.Exit(1)
	}
}
