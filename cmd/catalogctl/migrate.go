// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/moneta/internal/platform/migration"
)

func migrateCmd() *cobra.Command {
	var databaseURL, path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or inspect schema migrations",
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL DSN (defaults to $DATABASE_URL)")
	flags.StringVar(&path, "path", "./data/migrations", "Migrations directory")

	withRunner := func(run func(cmd *cobra.Command, runner *migration.Runner, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return errors.New("--database-url or DATABASE_URL is required")
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			runner, err := migration.NewRunner(databaseURL, path, logger)
			if err != nil {
				return err
			}
			defer runner.Close()

			return run(cmd, runner, args)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: withRunner(func(cmd *cobra.Command, runner *migration.Runner, args []string) error {
				return runner.Up()
			}),
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Roll back migrations (one step by default)",
			Args:  cobra.MaximumNArgs(1),
			RunE: withRunner(func(cmd *cobra.Command, runner *migration.Runner, args []string) error {
				steps := 1
				if len(args) == 1 {
					parsed, err := strconv.Atoi(args[0])
					if err != nil || parsed < 1 {
						return fmt.Errorf("steps must be a positive integer, got %q", args[0])
					}
					steps = parsed
				}
				return runner.Down(steps)
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: withRunner(func(cmd *cobra.Command, runner *migration.Runner, args []string) error {
				version, err := runner.Version()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), version)
				return nil
			}),
		},
	)

	return cmd
}
