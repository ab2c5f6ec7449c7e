// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taibuivan/moneta/internal/core/coin"
	"github.com/taibuivan/moneta/pkg/imageid"
	"github.com/taibuivan/moneta/pkg/slug"
	"github.com/taibuivan/moneta/pkg/yearrange"
)

func slugCmd() *cobra.Command {
	var base, scope string

	cmd := &cobra.Command{
		Use:   "slug <id> <label>",
		Short: "Build the catalog slug for an id and label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("id must be an integer: %w", err)
			}

			result := slug.Make(id, args[1], base)
			if scope != "" {
				result = slug.MakeScoped(scope, id, args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&base, "base", slug.DefaultBase, "Base path, e.g. /deity")
	cmd.Flags().StringVar(&scope, "set", "", "Scope the slug to a set slug (overrides --base)")
	return cmd
}

func extractIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract-id <slug>",
		Short: "Print the id encoded in a catalog slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := slug.ExtractID(args[0])
			if id == 0 {
				return fmt.Errorf("%q does not encode an id", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func imageIDCmd() *cobra.Command {
	var input imageid.Input
	var view string

	cmd := &cobra.Command{
		Use:   "image-id",
		Short: "Derive the image key of one coin photograph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input.View = imageid.View(view)

			preview := coin.PreviewImageID(input)
			if !preview.Valid {
				return fmt.Errorf("%s: missing %s", preview.Hint, strings.Join(preview.Missing, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), preview.ID)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Nickname, "nickname", "", "Coin nickname")
	flags.StringVar(&input.Denomination, "denomination", "", "Denomination")
	flags.StringVar(&input.AcquisitionDate, "date", "", "Acquisition date (YYYY-MM-DD)")
	flags.StringVar(&input.Vendor, "vendor", "", "Vendor the coin was bought from")
	flags.StringVar(&view, "view", string(imageid.ViewObverse), "Photographed view")
	flags.BoolVar(&input.PhotographedByCurator, "curator", false, "Photographed by the curator")
	return cmd
}

func parseImageIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-image-id <key>",
		Short: "Split an image key into its segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, ok := imageid.Parse(args[0])
			if !ok {
				return fmt.Errorf("%q is not a valid image key", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "acquisition: %s\n", parts.Acquisition)
			fmt.Fprintf(out, "root: %s\n", parts.Root)
			fmt.Fprintf(out, "view: %s\n", parts.View)
			fmt.Fprintf(out, "source: %s\n", parts.Source)
			fmt.Fprintf(out, "curator: %t\n", parts.CuratorPhotographed())
			return nil
		},
	}
}

// yearsCmd disables flag parsing so BCE years ("-27") are read as arguments.
// A single year is printed with its era.
func yearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "years <earliest> [latest]",
		Short:              "Format a year or a dating range, negative years being BCE",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return errors.New("years takes one or two arguments")
			}

			bounds := make([]int, len(args))
			for i, arg := range args {
				year, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("year %q is not an integer", arg)
				}
				bounds[i] = year
			}

			if len(bounds) == 1 {
				fmt.Fprintln(cmd.OutOrStdout(), yearrange.FormatYear(&bounds[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), yearrange.Format(&bounds[0], &bounds[1]))
			return nil
		},
	}
}
