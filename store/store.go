// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "github.com/danielhkuo/question-mark/models"

// Store is the persistence abstraction for question records. Both backends
// return the same logical shape from ListAll; neither orders its listing.
// Ordering, filtering and capping live in the query package so the two
// backends cannot diverge.
type Store interface {
	// Create persists a validated submission and returns the stored record
	// with its assigned id and creation timestamp.
	Create(q models.NewQuestion) (models.Question, error)

	// ListAll enumerates every stored record, in no particular order.
	ListAll() ([]models.Question, error)

	// DeleteByID removes a record. Deleting an absent id is a no-op, not
	// an error.
	DeleteByID(id string) error

	Close() error
}

var (
	_ Store = (*SQLStore)(nil)
	_ Store = (*BlobStore)(nil)
)
