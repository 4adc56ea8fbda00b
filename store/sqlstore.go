// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/danielhkuo/question-mark/models"
)

// SQLStore is the relational backend. It works against PostgreSQL (lib/pq)
// and SQLite (modernc.org/sqlite): both parse $1 placeholders and support
// INSERT ... RETURNING.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Create(q models.NewQuestion) (models.Question, error) {
	createdAt := time.Now().UTC().Format(models.CreatedAtLayout)

	var id int64
	err := s.db.QueryRow(`
		INSERT INTO questions (target, name, age, belief, question_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, q.Target, q.Name, q.Age, q.Belief, q.QuestionText, createdAt).Scan(&id)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}

	return models.Question{
		ID:           strconv.FormatInt(id, 10),
		Target:       q.Target,
		Name:         q.Name,
		Age:          q.Age,
		Belief:       q.Belief,
		QuestionText: q.QuestionText,
		CreatedAt:    createdAt,
	}, nil
}

func (s *SQLStore) ListAll() ([]models.Question, error) {
	rows, err := s.db.Query(`
		SELECT id, target, name, age, belief, question_text, created_at
		FROM questions
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	entries := []models.Question{}
	for rows.Next() {
		var (
			id   int64
			q    models.Question
			name sql.NullString
			age  sql.NullInt64
		)
		if err := rows.Scan(&id, &q.Target, &name, &age, &q.Belief, &q.QuestionText, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.ID = strconv.FormatInt(id, 10)
		if name.Valid {
			q.Name = &name.String
		}
		if age.Valid {
			n := int(age.Int64)
			q.Age = &n
		}
		entries = append(entries, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}

	return entries, nil
}

func (s *SQLStore) DeleteByID(id string) error {
	// Non-numeric ids cannot exist in this backend; deleting one is the
	// same no-op as deleting any other absent id.
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil
	}

	if _, err := s.db.Exec(`DELETE FROM questions WHERE id = $1`, n); err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
