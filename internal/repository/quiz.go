package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/triviabot/internal/models"
)

type QuizR struct {
	db QueryI
}

func NewQuizRepository(db QueryI) *QuizR {
	return &QuizR{
		db: db,
	}
}

func (q *QuizR) AddQuizResult(ctx context.Context, result models.QuizResult) error {
	query := `
        INSERT INTO trivia_results (attempt_id, user_id, score, max_score, lives_left, answered, total, finished_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (attempt_id) DO NOTHING
    `

	_, err := q.db.ExecContext(ctx, query,
		result.AttemptID, result.UserID, result.Score, result.MaxScore,
		result.LivesLeft, result.Answered, result.Total, result.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quiz result: %w", err)
	}

	return nil
}

func (q *QuizR) QuizStats(ctx context.Context, userID int64) (models.QuizStats, error) {
	query := `SELECT
		COUNT(*) AS total_count,
		COALESCE(MAX(score), 0) AS best_score,
		COALESCE(SUM(CASE WHEN score = max_score THEN 1 ELSE 0 END), 0) AS perfect_count,
		COALESCE(SUM(CASE WHEN lives_left <= 0 THEN 1 ELSE 0 END), 0) AS lost_count
	FROM trivia_results
	WHERE user_id = $1`

	var stats models.QuizStats
	err := q.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		return models.QuizStats{}, err
	}

	return stats, nil
}
