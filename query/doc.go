// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package query applies the directory semantics on top of a store listing:
validate filters, order newest first, filter by target and belief, cap the
result.

	f := query.Filter{Target: "god"}
	if err := query.ValidateFilter(f); err != nil { ... }
	rows, matched, total := query.Apply(entries, f, query.PublicLimit)

Ordering is createdAt descending with a lexicographic id descending
tie-break, giving a deterministic total order even when timestamps collide.
Caps apply after filtering; matched is the filtered size before the cap and
total is always the unfiltered collection size.

Both storage backends share this one implementation.
*/
package query
