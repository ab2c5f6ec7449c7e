// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/taibuivan/moneta/internal/core/coin"
	"github.com/taibuivan/moneta/pkg/imageid"
)

// Manifest lists the photographs of a shooting session.
//
//	photos:
//	  - nickname: Hadrian
//	    denomination: Denarius
//	    acquisition_date: 2024-03-05
//	    vendor: CNG
//	    view: o
type Manifest struct {
	Photos []ManifestEntry `yaml:"photos"`
}

// ManifestEntry mirrors [imageid.Input].
type ManifestEntry struct {
	Nickname              string `yaml:"nickname"`
	Denomination          string `yaml:"denomination"`
	AcquisitionDate       string `yaml:"acquisition_date"`
	Vendor                string `yaml:"vendor"`
	View                  string `yaml:"view"`
	PhotographedByCurator bool   `yaml:"photographed_by_curator"`
}

func (entry ManifestEntry) input() imageid.Input {
	return imageid.Input{
		Nickname:              entry.Nickname,
		Denomination:          entry.Denomination,
		AcquisitionDate:       entry.AcquisitionDate,
		Vendor:                entry.Vendor,
		View:                  imageid.View(entry.View),
		PhotographedByCurator: entry.PhotographedByCurator,
	}
}

// LoadManifest decodes a manifest, rejecting unknown keys.
func LoadManifest(reader io.Reader) (*Manifest, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	manifest := &Manifest{}
	if err := decoder.Decode(manifest); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return manifest, nil
}

// writeImageIDs prints one line per entry: the key, or an empty key followed
// by the reason as a comment. It returns the number of underivable entries.
func writeImageIDs(writer io.Writer, manifest *Manifest) int {
	failures := 0
	for i, entry := range manifest.Photos {
		preview := coin.PreviewImageID(entry.input())
		if preview.Valid {
			fmt.Fprintln(writer, preview.ID)
			continue
		}

		failures++
		fmt.Fprintf(writer, "# entry %d: %s (missing %s)\n", i+1, preview.Hint, strings.Join(preview.Missing, ", "))
	}
	return failures
}

func imageIDsCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "image-ids",
		Short: "Derive the image keys of every photograph in a YAML manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(manifestPath)
			if err != nil {
				return err
			}
			defer file.Close()

			manifest, err := LoadManifest(file)
			if err != nil {
				return err
			}

			if failures := writeImageIDs(cmd.OutOrStdout(), manifest); failures > 0 {
				return fmt.Errorf("%d of %d entries have no image id", failures, len(manifest.Photos))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to the YAML manifest")
	_ = cmd.MarkFlagRequired("manifest")
	return cmd
}
