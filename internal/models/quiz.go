package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type QuizResult struct {
	AttemptID  uuid.UUID `db:"attempt_id"`
	UserID     int64     `db:"user_id"`
	Score      int       `db:"score"`
	MaxScore   int       `db:"max_score"`
	LivesLeft  int       `db:"lives_left"`
	Answered   int       `db:"answered"`
	Total      int       `db:"total"`
	FinishedAt time.Time `db:"finished_at"`
}

type QuizStats struct {
	TotalCount   int `db:"total_count"`
	BestScore    int `db:"best_score"`
	PerfectCount int `db:"perfect_count"`
	LostCount    int `db:"lost_count"`
}

type QuestionRow struct {
	ID           int            `db:"id"`
	Title        string         `db:"title"`
	Options      pq.StringArray `db:"options"`
	CorrectIndex int            `db:"correct_index"`
}
