// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package imageid derives the lookup keys under which coin photographs are kept
in the image asset store.

A key has four segments joined by a double underscore:

	20240305__marcus-aurelius-denarius-denarius__o__src-cng
	│         │                                  │  └ provenance
	│         │                                  └ view
	│         └ root (nickname + denomination)
	└ acquisition date

Segments may contain single hyphens, so "__" is the only safe split point.

Derivation never fails loudly. When the inputs are not enough to build a
meaningful key (no date, no name, no provenance) [Make] returns "". That is
the normal state of a record still being filled in, not an error.
*/
package imageid

import (
	"strings"
	"time"

	"github.com/taibuivan/moneta/pkg/slug"
)

// Delimiter separates the four segments of an image key.
const Delimiter = "__"

const (
	// ProvenancePrefix starts every vendor provenance token.
	ProvenancePrefix = "src-"

	// CuratorToken is the provenance of every curator-photographed image.
	// It carries no prefix, so no vendor name can produce it.
	CuratorToken = "curator"
)

// # View

// View is the angle or rendition an image shows.
type View string

const (
	ViewObverse       View = "o"
	ViewReverse       View = "r"
	ViewSketchObverse View = "sketch-o"
	ViewSketchReverse View = "sketch-r"
	ViewZoomObverse   View = "zoom-o"
	ViewZoomReverse   View = "zoom-r"
)

// Views returns every valid [View] in display order.
func Views() []View {
	return []View{
		ViewObverse,
		ViewReverse,
		ViewSketchObverse,
		ViewSketchReverse,
		ViewZoomObverse,
		ViewZoomReverse,
	}
}

// IsValid reports whether v is one of the six recognised views.
func (v View) IsValid() bool {
	switch v {
	case
		ViewObverse,
		ViewReverse,
		ViewSketchObverse,
		ViewSketchReverse,
		ViewZoomObverse,
		ViewZoomReverse:
		return true
	}
	return false
}

// ParseView converts s into a [View]. ok is false for anything outside the
// closed set, including case variants.
func ParseView(s string) (view View, ok bool) {
	view = View(s)
	if !view.IsValid() {
		return "", false
	}
	return view, true
}

// # Key Derivation

// Input holds the catalog fields an image key is derived from.
type Input struct {
	Nickname              string
	Denomination          string
	AcquisitionDate       string
	Vendor                string
	View                  View
	PhotographedByCurator bool
}

// dateLayouts are the date forms accepted for the acquisition date.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// AcquisitionToken renders date as YYYYMMDD using the date's own calendar
// fields. It returns "" for an empty or unparseable date.
func AcquisitionToken(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, date); err == nil {
			return parsed.Format("20060102")
		}
	}
	return ""
}

// ProvenanceToken names who produced the source image. Curator photographs
// share [CuratorToken] whatever the vendor; otherwise the vendor is sanitized
// and prefixed with [ProvenancePrefix].
//
// An empty vendor yields the bare prefix. Check [HasValidSource] before
// trusting the token.
func ProvenanceToken(vendor string, photographedByCurator bool) string {
	if photographedByCurator {
		return CuratorToken
	}
	return ProvenancePrefix + slug.Sanitize(vendor)
}

// HasValidSource reports whether the image has a known provenance.
func HasValidSource(vendor string, photographedByCurator bool) bool {
	return photographedByCurator || strings.TrimSpace(vendor) != ""
}

// RootToken is the item identity segment: the sanitized nickname followed by
// the denomination. A denomination already present in the nickname is kept
// twice.
func RootToken(nickname, denomination string) string {
	return slug.Sanitize(nickname + " " + denomination)
}

// Make derives the image key for in, or "" when the acquisition date, the
// root identity, the view or the provenance is missing.
func Make(in Input) string {
	acquisition := AcquisitionToken(in.AcquisitionDate)
	root := RootToken(in.Nickname, in.Denomination)
	source := ProvenanceToken(in.Vendor, in.PhotographedByCurator)

	if acquisition == "" || root == "" || !in.View.IsValid() || !HasValidSource(in.Vendor, in.PhotographedByCurator) {
		return ""
	}

	return strings.Join([]string{acquisition, root, string(in.View), source}, Delimiter)
}

// # Key Parsing

// Parts is an image key split into its segments.
type Parts struct {
	Acquisition string
	Root        string
	View        View
	Source      string
}

// Parse splits a key produced by [Make]. ok is false if key does not have
// exactly four non-empty segments or the view is unknown.
func Parse(key string) (parts Parts, ok bool) {
	segments := strings.Split(key, Delimiter)
	if len(segments) != 4 {
		return Parts{}, false
	}

	for _, segment := range segments {
		if segment == "" {
			return Parts{}, false
		}
	}

	view, ok := ParseView(segments[2])
	if !ok {
		return Parts{}, false
	}

	return Parts{
		Acquisition: segments[0],
		Root:        segments[1],
		View:        view,
		Source:      segments[3],
	}, true
}

// CuratorPhotographed reports whether the key's provenance is the curator.
func (p Parts) CuratorPhotographed() bool {
	return p.Source == CuratorToken
}
