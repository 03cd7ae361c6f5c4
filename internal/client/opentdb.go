package client

import (
	"context"
	crypto "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"math/big"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DanRulev/triviabot/internal/models"
	"github.com/DanRulev/triviabot/internal/quiz"
)

const openTDBURL = "https://opentdb.com/api.php"

var ErrNoQuestions = errors.New("opentdb returned no questions")

type OpenTDBAPI struct {
	baseURL string
	client  *http.Client
}

func NewOpenTDBAPI() *OpenTDBAPI {
	return &OpenTDBAPI{
		baseURL: openTDBURL,
		client:  http.DefaultClient,
	}
}

// TriviaQuestions fetches amount multiple-choice questions. Category 0 means any.
func (o *OpenTDBAPI) TriviaQuestions(ctx context.Context, amount, category int) ([]quiz.Question, error) {
	params := url.Values{}
	params.Set("amount", strconv.Itoa(amount))
	params.Set("type", "multiple")
	if category > 0 {
		params.Set("category", strconv.Itoa(category))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opentdb: unexpected status %d", resp.StatusCode)
	}

	var data models.OpenTDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode opentdb response: %w", err)
	}

	if data.ResponseCode != 0 {
		return nil, fmt.Errorf("opentdb response code %d: %w", data.ResponseCode, ErrNoQuestions)
	}
	if len(data.Results) == 0 {
		return nil, ErrNoQuestions
	}

	questions := make([]quiz.Question, 0, len(data.Results))
	for i, r := range data.Results {
		correct, err := randomPosition(int64(len(r.IncorrectAnswers) + 1))
		if err != nil {
			return nil, err
		}

		options := make([]string, 0, len(r.IncorrectAnswers)+1)
		for _, a := range r.IncorrectAnswers {
			options = append(options, html.UnescapeString(a))
		}
		options = append(options, "")
		copy(options[correct+1:], options[correct:])
		options[correct] = html.UnescapeString(r.CorrectAnswer)

		questions = append(questions, quiz.Question{
			ID:           i + 1,
			Title:        html.UnescapeString(r.Question),
			Options:      options,
			CorrectIndex: correct,
		})
	}

	return questions, nil
}

func randomPosition(max int64) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be greater than 0")
	}

	n, err := crypto.Int(crypto.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}

	return int(n.Int64()), nil
}
