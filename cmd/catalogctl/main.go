// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command catalogctl is the curator's offline toolbox: it derives slugs,
// image keys and year ranges exactly as the API does, and drives schema
// migrations by hand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/moneta/internal/platform/constants"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Moneta catalog tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		slugCmd(),
		extractIDCmd(),
		imageIDCmd(),
		imageIDsCmd(),
		parseImageIDCmd(),
		yearsCmd(),
		migrateCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "catalogctl %s\n", constants.AppVersion)
			},
		},
	)

	return cmd
}
