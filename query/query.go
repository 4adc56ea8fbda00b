// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package query

import (
	"errors"
	"sort"

	"github.com/danielhkuo/question-mark/models"
)

// ErrInvalidFilter is returned for filter values outside the enum sets.
var ErrInvalidFilter = errors.New("Filtre invalide.")

// Result-size caps, applied after filtering.
const (
	PublicLimit = 500
	AdminLimit  = 1000
)

// Filter narrows a listing. Empty fields mean "no filter"; both filters
// combine with AND.
type Filter struct {
	Target string
	Belief string
}

// ValidateFilter rejects filter values outside the enums. Unknown values
// are an error, never silently ignored.
func ValidateFilter(f Filter) error {
	if f.Target != "" && !models.IsAllowedTarget(f.Target) {
		return ErrInvalidFilter
	}
	if f.Belief != "" && !models.IsAllowedBelief(f.Belief) {
		return ErrInvalidFilter
	}
	return nil
}

// Apply orders, filters and caps a backend listing. Both storage backends
// go through this single implementation so their query semantics cannot
// drift apart. It returns the capped rows, the filtered size before the cap
// (matched) and the unfiltered total.
func Apply(entries []models.Question, f Filter, limit int) (rows []models.Question, matched, total int) {
	total = len(entries)

	ordered := make([]models.Question, len(entries))
	copy(ordered, entries)
	Sort(ordered)

	rows = make([]models.Question, 0, len(ordered))
	for _, q := range ordered {
		if f.Target != "" && q.Target != f.Target {
			continue
		}
		if f.Belief != "" && q.Belief != f.Belief {
			continue
		}
		rows = append(rows, q)
	}

	matched = len(rows)
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, matched, total
}

// Sort orders questions newest first: createdAt descending, then id
// descending lexicographically. Timestamps are fixed-width UTC strings, so
// string comparison is chronological; the id tie-break makes the order
// total even when records share a timestamp.
func Sort(entries []models.Question) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt != entries[j].CreatedAt {
			return entries[i].CreatedAt > entries[j].CreatedAt
		}
		return entries[i].ID > entries[j].ID
	})
}
