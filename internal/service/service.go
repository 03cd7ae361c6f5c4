package service

import (
	"context"

	"github.com/DanRulev/triviabot/internal/config"
	"github.com/DanRulev/triviabot/internal/models"
	"github.com/DanRulev/triviabot/internal/quiz"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

type TriviaAPII interface {
	TriviaQuestions(ctx context.Context, amount, category int) ([]quiz.Question, error)
}

type APII interface {
	TriviaAPII
}

type QuestionRI interface {
	Questions(ctx context.Context) ([]models.QuestionRow, error)
}

type RepositoryI interface {
	QuizRI
	QuestionRI
}

type Service struct {
	*QuizS
}

func InitServices(api APII, repo RepositoryI, cfg config.QuizConfig, log *zap.Logger) *Service {
	return &Service{
		QuizS: NewQuizService(api, repo, repo, cfg, log),
	}
}
