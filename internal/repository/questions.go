package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/triviabot/internal/models"
)

type QuestionsR struct {
	db QueryI
}

func NewQuestionsRepository(db QueryI) *QuestionsR {
	return &QuestionsR{
		db: db,
	}
}

// Questions returns the stored bank in display order.
func (r *QuestionsR) Questions(ctx context.Context) ([]models.QuestionRow, error) {
	query := `SELECT id, title, options, correct_index
	FROM trivia_questions
	ORDER BY sort_order, id`

	var rows []models.QuestionRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to select questions: %w", err)
	}

	return rows, nil
}
