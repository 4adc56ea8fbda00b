// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/question-mark/models"
)

// Validation errors. Messages are the exact strings sent to clients.
var (
	ErrInvalidTarget   = errors.New("Cible invalide.")
	ErrInvalidBelief   = errors.New("Croyance invalide.")
	ErrMissingQuestion = errors.New("La question est requise.")
	ErrInvalidLength   = errors.New("La question doit contenir entre 8 et 1200 caracteres.")
	ErrInvalidAge      = errors.New("Age invalide.")
)

const (
	MinQuestionLen = 8
	MaxQuestionLen = 1200
	MaxNameLen     = 80
	MinAge         = 5
	MaxAge         = 120
)

// Question checks a raw submission against the validation rules, in order,
// stopping at the first failure. On success it returns the normalized
// record: question text trimmed, name trimmed and truncated (nil when empty
// or not a string), age parsed (nil when absent).
func Question(raw models.SubmitRequest) (models.NewQuestion, error) {
	if !models.IsAllowedTarget(raw.Target) {
		return models.NewQuestion{}, ErrInvalidTarget
	}

	if !models.IsAllowedBelief(raw.Belief) {
		return models.NewQuestion{}, ErrInvalidBelief
	}

	text, ok := raw.QuestionText.(string)
	if !ok {
		return models.NewQuestion{}, ErrMissingQuestion
	}

	text = strings.TrimSpace(text)
	if n := utf8.RuneCountInString(text); n < MinQuestionLen || n > MaxQuestionLen {
		return models.NewQuestion{}, ErrInvalidLength
	}

	age, err := parseAge(raw.Age)
	if err != nil {
		return models.NewQuestion{}, err
	}

	return models.NewQuestion{
		Target:       raw.Target,
		Name:         cleanName(raw.Name),
		Age:          age,
		Belief:       raw.Belief,
		QuestionText: text,
	}, nil
}

// parseAge accepts nil and "" as "unspecified". JSON numbers arrive as
// float64 and must be whole; strings must parse as integers.
func parseAge(v any) (*int, error) {
	switch age := v.(type) {
	case nil:
		return nil, nil
	case float64:
		if age != math.Trunc(age) {
			return nil, ErrInvalidAge
		}
		return checkAgeRange(int(age))
	case string:
		if age == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(age))
		if err != nil {
			return nil, ErrInvalidAge
		}
		return checkAgeRange(n)
	default:
		return nil, ErrInvalidAge
	}
}

func checkAgeRange(n int) (*int, error) {
	if n < MinAge || n > MaxAge {
		return nil, ErrInvalidAge
	}
	return &n, nil
}

// cleanName trims and truncates a name. Anything that is not a non-empty
// string normalizes to nil (anonymous), never to an error.
func cleanName(v any) *string {
	name, ok := v.(string)
	if !ok {
		return nil
	}
	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > MaxNameLen {
		name = string(runes[:MaxNameLen])
	}
	if name == "" {
		return nil
	}
	return &name
}
