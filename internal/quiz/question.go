package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBank    = errors.New("question bank is empty")
	ErrDuplicateID  = errors.New("duplicate question id")
	ErrCorrectIndex = errors.New("correct index out of range")
	ErrInvalidRules = errors.New("invalid quiz rules")
)

// Question is one multiple-choice entry of a bank. Options order is fixed.
type Question struct {
	ID           int      `yaml:"id" validate:"gt=0"`
	Title        string   `yaml:"title" validate:"required"`
	Options      []string `yaml:"options" validate:"min=2,dive,required"`
	CorrectIndex int      `yaml:"correct_index" validate:"gte=0"`
}

func (q Question) clone() Question {
	options := make([]string, len(q.Options))
	copy(options, q.Options)
	q.Options = options
	return q
}

// ValidateBank checks the invariants every seeded bank must satisfy.
func ValidateBank(bank []Question) error {
	if len(bank) == 0 {
		return ErrEmptyBank
	}

	seen := make(map[int]bool, len(bank))
	for i, q := range bank {
		if q.ID <= 0 {
			return fmt.Errorf("question #%d: id must be positive, got %d", i, q.ID)
		}
		if seen[q.ID] {
			return fmt.Errorf("question #%d: %w: %d", i, ErrDuplicateID, q.ID)
		}
		seen[q.ID] = true

		if q.Title == "" {
			return fmt.Errorf("question %d: empty title", q.ID)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d: need at least 2 options, got %d", q.ID, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("question %d: %w: %d of %d", q.ID, ErrCorrectIndex, q.CorrectIndex, len(q.Options))
		}
	}

	return nil
}

func cloneBank(bank []Question) []Question {
	out := make([]Question, len(bank))
	for i, q := range bank {
		out[i] = q.clone()
	}
	return out
}
