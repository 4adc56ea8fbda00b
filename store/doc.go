// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists question records behind a single interface with two
interchangeable backends.

# Backends

SQLStore keeps one relational table (see the db package for the schema) and
works against SQLite (modernc.org/sqlite, the default) or PostgreSQL
(lib/pq). Ids are auto-increment integers rendered as decimal strings.

BlobStore keeps each record as a standalone JSON object in a Badger
key-value database, keyed "q:<uuid>". It has no native ordering or
filtering; listing enumerates the full q: prefix in bounded pages.

# Contract

	rec, err := st.Create(newQuestion)   // assigns id and createdAt
	entries, err := st.ListAll()         // unordered, full enumeration
	err = st.DeleteByID(id)              // no-op for absent ids

ListAll returns the same logical shape from both backends and neither one
sorts: the query package owns ordering, filtering and capping so the two
backends cannot drift apart.

Creation timestamps are app-assigned fixed-width UTC strings
(models.CreatedAtLayout) rather than store defaults, which keeps the
sortable representation identical across backends.
*/
package store
