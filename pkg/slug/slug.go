// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives URL slugs for catalog items and parses them back.
//
// # Usage
//
// A catalog slug joins the database id and a sanitized label, e.g.
// "/coin/123-marcus-aurelius-denarius". The id is always recoverable with
// [ExtractID], which is how routing resolves a detail page without a lookup
// by name.
//
//	path := slug.Make(123, "Marcus Aurelius Denarius") // "/coin/123-marcus-aurelius-denarius"
//	id := slug.ExtractID(path)                         // 123
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultBase is the base path used by [Make] when none is given.
const DefaultBase = "/coin"

// SetsBase is the base path of themed collections (see [MakeScoped]).
const SetsBase = "/sets"

var (
	// disallowed matches every rune that cannot survive sanitization.
	disallowed = regexp.MustCompile(`[^a-z0-9\s\p{Zs}-]+`)
	// whitespace matches runs of whitespace, replaced by a single hyphen.
	whitespace = regexp.MustCompile(`[\s\p{Zs}]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
	// leadingID matches the id prefix of a catalog slug segment.
	leadingID = regexp.MustCompile(`^(\d+)-`)
)

// Sanitize converts an arbitrary human label into a lowercase,
// hyphen-separated token containing only [a-z0-9-].
//
// # Transformation Pipeline
//
// 1. Normalizes to NFKD and removes combining marks ("Hadrián" → "Hadrian",
// "ﬁ" → "fi").
// 2. Converts to lowercase.
// 3. Strips everything that is not a letter, digit, whitespace or hyphen.
// 4. Replaces whitespace runs with a hyphen and collapses hyphen runs.
// 5. Trims leading/trailing hyphens.
//
// The result is empty only if the label had no alphanumeric characters.
// Sanitize is idempotent.
func Sanitize(label string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFKD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, label)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Strip punctuation, symbols and non-latin letters
	result = disallowed.ReplaceAllString(result, "")

	// 4. Hyphenate
	result = whitespace.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")

	// 5. Trim
	return strings.Trim(result, "-")
}

// Make builds "{basePath}/{id}-{Sanitize(label)}". basePath defaults to
// [DefaultBase]; a trailing slash on it is ignored.
//
// The id is assigned by storage; Make does not check it.
func Make(id int, label string, basePath ...string) string {
	base := DefaultBase
	if len(basePath) > 0 {
		base = strings.TrimSuffix(basePath[0], "/")
	}
	return base + "/" + Segment(id, label)
}

// MakeScoped builds a slug nested under a named collection:
// "/sets/{scope}/{id}-{Sanitize(label)}".
func MakeScoped(scope string, id int, label string) string {
	return Make(id, label, SetsBase+"/"+scope)
}

// Segment returns the "{id}-{label}" path segment without any base path.
func Segment(id int, label string) string {
	return strconv.Itoa(id) + "-" + Sanitize(label)
}

// ExtractID returns the id encoded at the start of the slug's final path
// segment, or 0 when the segment does not begin with digits followed by a
// hyphen. 0 is never an assigned id, so callers treat it as "not found".
func ExtractID(s string) int {
	match := leadingID.FindStringSubmatch(lastSegment(s))
	if match == nil {
		return 0
	}

	id, err := strconv.Atoi(match[1])
	if err != nil {
		// Out of range for int.
		return 0
	}
	return id
}

// IsCatalogSlug reports whether the slug's final segment starts with an id
// ("123-marcus-aurelius") rather than being a named collection slug
// ("severan-dynasty").
func IsCatalogSlug(s string) bool {
	return leadingID.MatchString(lastSegment(s))
}

// lastSegment returns the part of s after its final slash.
func lastSegment(s string) string {
	s = strings.TrimSuffix(s, "/")
	return s[strings.LastIndexByte(s, '/')+1:]
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
