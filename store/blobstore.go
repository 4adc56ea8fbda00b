// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/danielhkuo/question-mark/models"
)

// keyPrefix namespaces question records inside the key-value store.
const keyPrefix = "q:"

// listPageSize bounds how many records a single read transaction walks.
const listPageSize = 100

// BlobStore is the key-object backend. Each record is a standalone JSON
// object keyed by "q:<uuid>". The store has no native ordering or filtering;
// listing enumerates the full prefix and leaves the rest to the query
// package.
type BlobStore struct {
	db *badger.DB
}

// OpenBlob opens (or creates) a Badger database at path.
func OpenBlob(path string) (*BlobStore, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open blob store: %w", err)
	}
	return &BlobStore{db: db}, nil
}

// OpenBlobInMemory opens a Badger database with no disk persistence.
// Used by tests.
func OpenBlobInMemory() (*BlobStore, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory blob store: %w", err)
	}
	return &BlobStore{db: db}, nil
}

func (s *BlobStore) Create(q models.NewQuestion) (models.Question, error) {
	rec := models.Question{
		ID:           uuid.NewString(),
		Target:       q.Target,
		Name:         q.Name,
		Age:          q.Age,
		Belief:       q.Belief,
		QuestionText: q.QuestionText,
		CreatedAt:    time.Now().UTC().Format(models.CreatedAtLayout),
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to encode question: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+rec.ID), payload)
	})
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to store question: %w", err)
	}

	return rec, nil
}

// ListAll walks the q: prefix in pages of listPageSize keys, resuming each
// page just past the last key of the previous one. The loop terminates when
// a page comes back shorter than the page size. Values that fail to decode
// are skipped rather than failing the whole listing.
func (s *BlobStore) ListAll() ([]models.Question, error) {
	prefix := []byte(keyPrefix)
	entries := []models.Question{}
	seek := prefix

	for {
		var (
			pageLen int
			lastKey []byte
		)

		err := s.db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = prefix
			it := txn.NewIterator(opts)
			defer it.Close()

			for it.Seek(seek); it.ValidForPrefix(prefix) && pageLen < listPageSize; it.Next() {
				item := it.Item()
				lastKey = item.KeyCopy(nil)
				pageLen++

				var q models.Question
				err := item.Value(func(val []byte) error {
					return json.Unmarshal(val, &q)
				})
				if err != nil {
					continue
				}
				entries = append(entries, q)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list questions: %w", err)
		}

		if pageLen < listPageSize {
			return entries, nil
		}
		// Smallest key strictly greater than lastKey.
		seek = append(lastKey, 0)
	}
}

func (s *BlobStore) DeleteByID(id string) error {
	// Badger's Delete is already a no-op for absent keys.
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}

func (s *BlobStore) Close() error {
	return s.db.Close()
}
