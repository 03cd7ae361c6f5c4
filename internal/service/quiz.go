package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/triviabot/internal/config"
	"github.com/DanRulev/triviabot/internal/models"
	"github.com/DanRulev/triviabot/internal/quiz"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	SourceSeed   = "seed"
	SourceFile   = "file"
	SourceDB     = "db"
	SourceRemote = "remote"
)

type QuizRI interface {
	AddQuizResult(ctx context.Context, result models.QuizResult) error
	QuizStats(ctx context.Context, userID int64) (models.QuizStats, error)
}

// Attempt is one running quiz owned by a user.
type Attempt struct {
	ID     uuid.UUID
	UserID int64
	Engine *quiz.Engine
}

type QuizS struct {
	trivia    TriviaAPII
	questions QuestionRI
	repo      QuizRI
	cfg       config.QuizConfig
	loadFile  func(path string) ([]quiz.Question, error)
	log       *zap.Logger
}

func NewQuizService(api APII, repo QuizRI, questions QuestionRI, cfg config.QuizConfig, log *zap.Logger) *QuizS {
	return &QuizS{
		trivia:    api,
		questions: questions,
		repo:      repo,
		cfg:       cfg,
		loadFile:  quiz.LoadBank,
		log:       log,
	}
}

func (q *QuizS) rules() quiz.Rules {
	rules := quiz.DefaultRules
	if q.cfg.Lives > 0 {
		rules.Lives = q.cfg.Lives
	}
	if q.cfg.PointsPerCorrect > 0 {
		rules.PointsPerCorrect = q.cfg.PointsPerCorrect
	}
	return rules
}

// StartQuiz builds a bank from the configured source and a fresh engine on top of it.
func (q *QuizS) StartQuiz(ctx context.Context, userID int64) (Attempt, error) {
	bank := q.Bank(ctx)

	engine, err := quiz.NewEngine(bank, quiz.WithRules(q.rules()))
	if err != nil {
		q.log.Error("failed to create quiz engine", zap.Int64("user_id", userID), zap.Error(err))
		return Attempt{}, fmt.Errorf("failed to create quiz engine: %w", err)
	}

	attempt := Attempt{
		ID:     uuid.New(),
		UserID: userID,
		Engine: engine,
	}

	q.log.Info("quiz started",
		zap.Int64("user_id", userID),
		zap.String("attempt_id", attempt.ID.String()),
		zap.String("source", q.cfg.Source),
		zap.Int("questions", len(bank)),
	)

	return attempt, nil
}

// Bank returns the configured bank, or the seed bank if that source fails.
func (q *QuizS) Bank(ctx context.Context) []quiz.Question {
	var (
		bank []quiz.Question
		err  error
	)

	switch q.cfg.Source {
	case SourceFile:
		bank, err = q.loadFile(q.cfg.File)
	case SourceDB:
		bank, err = q.bankFromDB(ctx)
	case SourceRemote:
		bank, err = q.trivia.TriviaQuestions(ctx, q.cfg.RemoteAmount, q.cfg.RemoteCategory)
	default:
		return quiz.SeedQuestions()
	}

	if err == nil {
		err = quiz.ValidateBank(bank)
	}
	if err != nil {
		q.log.Warn("failed to load question bank, using seed questions",
			zap.String("source", q.cfg.Source), zap.Error(err))
		return quiz.SeedQuestions()
	}

	return bank
}

func (q *QuizS) bankFromDB(ctx context.Context) ([]quiz.Question, error) {
	rows, err := q.questions.Questions(ctx)
	if err != nil {
		return nil, err
	}

	bank := make([]quiz.Question, 0, len(rows))
	for _, r := range rows {
		bank = append(bank, quiz.Question{
			ID:           r.ID,
			Title:        r.Title,
			Options:      []string(r.Options),
			CorrectIndex: r.CorrectIndex,
		})
	}

	return bank, nil
}

// ResultOf converts a finished attempt snapshot into a storable result.
func ResultOf(attempt Attempt, state quiz.State, finishedAt time.Time) models.QuizResult {
	answered := state.CurrentIndex() + 1
	if answered > state.QuestionCount() {
		answered = state.QuestionCount()
	}

	return models.QuizResult{
		AttemptID:  attempt.ID,
		UserID:     attempt.UserID,
		Score:      state.Score(),
		MaxScore:   state.MaxScore(),
		LivesLeft:  state.Lives(),
		Answered:   answered,
		Total:      state.QuestionCount(),
		FinishedAt: finishedAt,
	}
}

func (q *QuizS) AddQuizResult(ctx context.Context, result models.QuizResult) error {
	if err := q.repo.AddQuizResult(ctx, result); err != nil {
		q.log.Warn("failed to save quiz result",
			zap.Int64("user_id", result.UserID),
			zap.String("attempt_id", result.AttemptID.String()),
			zap.Error(err))
		return err
	}
	return nil
}

func (q *QuizS) QuizStats(ctx context.Context, userID int64) (string, error) {
	stats, err := q.repo.QuizStats(ctx, userID)
	if err != nil {
		q.log.Warn("failed to get quiz stats", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}

	return quizStatsFormat(stats), nil
}

func quizStatsFormat(stats models.QuizStats) string {
	var sb strings.Builder

	sb.WriteString("🧠 *Attempts*: ")
	sb.WriteString(strconv.Itoa(stats.TotalCount))
	sb.WriteString("\n\n")

	sb.WriteString("🏆 *Best score*: ")
	sb.WriteString(strconv.Itoa(stats.BestScore))
	sb.WriteString("\n\n")

	sb.WriteString("💯 *Perfect runs*: ")
	sb.WriteString(strconv.Itoa(stats.PerfectCount))
	sb.WriteString("\n\n")

	sb.WriteString("💔 *Out of lives*: ")
	sb.WriteString(strconv.Itoa(stats.LostCount))

	return sb.String()
}
