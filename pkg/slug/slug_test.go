// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/moneta/pkg/slug"
)

var sanitizedCharset = regexp.MustCompile(`^[a-z0-9-]*$`)

// labels exercises punctuation, accents, whitespace and non-latin scripts.
var labels = []string{
	"Marcus Aurelius",
	"  Septimius   Severus  ",
	"Antoninianus (Gallienus), 260–268 AD",
	"Hadrián's \"Wall\" denarius",
	"--already-hyphenated--",
	"snake_case_label",
	"ΑΘΗΝΑΙΩΝ tetradrachm",
	"Æ As",
	"!!!",
	"",
	"a - b -- c",
	"Tab\tand\nnewline",
}

/*
TestSanitize covers the transformation pipeline on representative labels.
*/
func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"simple_words", "Marcus Aurelius", "marcus-aurelius"},
		{"collapses_whitespace", "  Septimius   Severus  ", "septimius-severus"},
		{"strips_punctuation", "Antoninianus (Gallienus), 260 AD", "antoninianus-gallienus-260-ad"},
		{"removes_accents", "Hadrián", "hadrian"},
		{"drops_apostrophe", "Hadrian's Wall", "hadrians-wall"},
		{"keeps_hyphens", "Julia Domna - Augusta", "julia-domna-augusta"},
		{"trims_hyphens", "--Nerva--", "nerva"},
		{"drops_underscores", "snake_case", "snakecase"},
		{"drops_non_latin", "ΑΘΗΝΑΙΩΝ tetradrachm", "tetradrachm"},
		{"expands_ligatures", "ﬁne Ⅳ", "fine-iv"},
		{"fullwidth_digits", "Denarius ２", "denarius-2"},
		{"only_symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Sanitize(tt.label))
		})
	}
}

/*
TestSanitize_Idempotent checks that sanitizing twice changes nothing.
*/
func TestSanitize_Idempotent(t *testing.T) {
	for _, label := range labels {
		once := slug.Sanitize(label)
		assert.Equal(t, once, slug.Sanitize(once), "label %q", label)
	}
}

/*
TestSanitize_Charset checks the output alphabet and hyphen placement.
*/
func TestSanitize_Charset(t *testing.T) {
	for _, label := range labels {
		got := slug.Sanitize(label)

		assert.Regexp(t, sanitizedCharset, got, "label %q", label)
		assert.False(t, strings.HasPrefix(got, "-"), "label %q", label)
		assert.False(t, strings.HasSuffix(got, "-"), "label %q", label)
		assert.NotContains(t, got, "--", "label %q", label)
	}
}

/*
TestMake verifies base path handling.
*/
func TestMake(t *testing.T) {
	assert.Equal(t, "/coin/123-marcus-aurelius", slug.Make(123, "Marcus Aurelius"))
	assert.Equal(t, "/mints/7-lugdunum", slug.Make(7, "Lugdunum", "/mints"))
	assert.Equal(t, "/mints/7-lugdunum", slug.Make(7, "Lugdunum", "/mints/"))
	assert.Equal(t, "/coin/9-", slug.Make(9, "???"))
}

/*
TestMakeScoped nests the item under its collection.
*/
func TestMakeScoped(t *testing.T) {
	got := slug.MakeScoped("severan-dynasty", 42, "Caracalla Antoninianus")
	assert.Equal(t, "/sets/severan-dynasty/42-caracalla-antoninianus", got)
	assert.Equal(t, 42, slug.ExtractID(got))
}

/*
TestExtractID covers the parse rules and the 0 fallback.
*/
func TestExtractID(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want int
	}{
		{"bare_segment", "123-marcus-aurelius", 123},
		{"full_path", "/coin/123-marcus-aurelius", 123},
		{"trailing_slash", "/coin/55-nerva/", 55},
		{"empty_label", "/coin/9-", 9},
		{"no_hyphen", "/coin/123", 0},
		{"named_collection", "severan-dynasty", 0},
		{"digits_later", "coin-123-x", 0},
		{"id_in_parent_only", "/sets/12-x/severan", 0},
		{"overflow", "99999999999999999999999-x", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.ExtractID(tt.slug))
		})
	}
}

/*
TestExtractID_RoundTrip checks that every generated slug yields its id back.
*/
func TestExtractID_RoundTrip(t *testing.T) {
	ids := []int{1, 2, 10, 161, 99999, 1 << 30}

	for _, id := range ids {
		for _, label := range labels {
			assert.Equal(t, id, slug.ExtractID(slug.Make(id, label)), "id %d label %q", id, label)
			assert.Equal(t, id, slug.ExtractID(slug.MakeScoped("set", id, label)), "id %d label %q", id, label)
		}
	}
}

/*
TestIsCatalogSlug distinguishes item slugs from collection slugs.
*/
func TestIsCatalogSlug(t *testing.T) {
	assert.True(t, slug.IsCatalogSlug("123-marcus-aurelius"))
	assert.True(t, slug.IsCatalogSlug("/sets/severan-dynasty/5-geta"))
	assert.False(t, slug.IsCatalogSlug("severan-dynasty"))
	assert.False(t, slug.IsCatalogSlug("123"))
	assert.False(t, slug.IsCatalogSlug(""))
}

/*
TestMemo matches the plain functions under concurrent use.
*/
func TestMemo(t *testing.T) {
	var memo slug.Memo
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, label := range labels {
				assert.Equal(t, slug.Sanitize(label), memo.Sanitize(label))
				assert.Equal(t, slug.Make(3, label, "/deities"), memo.Make(3, label, "/deities"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, "/coin/3-nerva", memo.Make(3, "Nerva"))
	assert.Equal(t, len(labels)+1, memo.Len())
}

/*
TestMemo_Bounded empties the cache once it reaches its size.
*/
func TestMemo_Bounded(t *testing.T) {
	memo := slug.Memo{Size: 100}

	for i := range 1000 {
		label := "search query " + strconv.Itoa(i)
		assert.Equal(t, "search-query-"+strconv.Itoa(i), memo.Sanitize(label))
		assert.LessOrEqual(t, memo.Len(), 100)
	}

	memo.Sanitize("Nerva")
	memo.Sanitize("Nerva")
	assert.LessOrEqual(t, memo.Len(), 100)
}
