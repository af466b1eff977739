package sample

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/llehouerou/broadlist/item"
)

// nameSource is a fuzzy.Source over the lowercased record names.
type nameSource []string

func (n nameSource) String(i int) string { return n[i] }
func (n nameSource) Len() int            { return len(n) }

func nameIndex(records []item.Record) nameSource {
	idx := make(nameSource, len(records))
	for i, r := range records {
		switch r := r.(type) {
		case *Contact:
			idx[i] = strings.ToLower(r.Name)
		case *Title:
			idx[i] = strings.ToLower(r.Name)
		}
	}
	return idx
}

// find returns the position of the best fuzzy match for query, preferring
// the first one at or after from when scores tie. It returns -1 when
// nothing matches.
func find(records []item.Record, query string, from int) int {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return -1
	}
	matches := fuzzy.FindFrom(query, nameIndex(records))
	if len(matches) == 0 {
		return -1
	}
	top := matches[0].Score
	for _, m := range matches[1:] {
		top = max(top, m.Score)
	}
	first, after := -1, -1
	for _, m := range matches {
		if m.Score != top {
			continue
		}
		if first < 0 || m.Index < first {
			first = m.Index
		}
		if m.Index >= from && (after < 0 || m.Index < after) {
			after = m.Index
		}
	}
	if after >= 0 {
		return after
	}
	return first
}
