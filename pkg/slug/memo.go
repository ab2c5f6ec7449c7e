// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// DefaultMemoSize is the entry cap of a zero-value [Memo].
const DefaultMemoSize = 10000

// Memo caches [Sanitize] results for catalog labels.
//
// Inputs are immutable strings, so entries never need invalidation. Once the
// cache holds Size entries it is emptied and starts over. The zero value is
// ready to use and safe for concurrent use.
type Memo struct {
	// Size caps the number of cached labels; 0 means [DefaultMemoSize].
	Size int

	cache   sync.Map
	entries atomic.Int64
}

// Sanitize returns the memoized [Sanitize] result for label.
func (m *Memo) Sanitize(label string) string {
	if cached, ok := m.cache.Load(label); ok {
		return cached.(string)
	}

	result := Sanitize(label)
	if _, loaded := m.cache.LoadOrStore(label, result); !loaded {
		if m.entries.Add(1) > int64(m.limit()) {
			m.cache.Clear()
			m.entries.Store(0)
		}
	}
	return result
}

// Len reports the number of cached labels.
func (m *Memo) Len() int {
	return int(m.entries.Load())
}

func (m *Memo) limit() int {
	if m.Size > 0 {
		return m.Size
	}
	return DefaultMemoSize
}

// Make is [Make] with a memoized label.
func (m *Memo) Make(id int, label string, basePath ...string) string {
	base := DefaultBase
	if len(basePath) > 0 {
		base = strings.TrimSuffix(basePath[0], "/")
	}
	return base + "/" + strconv.Itoa(id) + "-" + m.Sanitize(label)
}
