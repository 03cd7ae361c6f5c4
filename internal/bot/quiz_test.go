package bot

import (
	"context"
	"strconv"
	"testing"

	mock_bot "github.com/DanRulev/triviabot/internal/bot/mock"
	"github.com/DanRulev/triviabot/internal/models"
	"github.com/DanRulev/triviabot/internal/quiz"
	"github.com/DanRulev/triviabot/internal/service"
	"github.com/DanRulev/triviabot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testUserID    int64 = 456
	testChatID    int64 = 123
	testMessageID       = 100
)

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) *QuizT {
	mockService := mock_bot.NewMockServiceI(ctrl)
	cache := cache.NewCache()
	mockBot := &mock_bot.MockBot{MessageID: testMessageID}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewQuizTAPI(mockBot, cache, mockService, zap.NewNop())
}

func newAttempt(t *testing.T, bank []quiz.Question) service.Attempt {
	t.Helper()

	engine, err := quiz.NewEngine(bank)
	require.NoError(t, err)

	return service.Attempt{ID: uuid.New(), UserID: testUserID, Engine: engine}
}

func quizMessage() *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: testChatID},
		From: &tgbotapi.User{ID: testUserID},
	}
}

func callback(data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "query",
		From: &tgbotapi.User{ID: testUserID},
		Message: &tgbotapi.Message{
			MessageID: testMessageID,
			Chat:      &tgbotapi.Chat{ID: testChatID},
		},
		Data: data,
	}
}

func lastEdit(t *testing.T, mb *mock_bot.MockBot) tgbotapi.EditMessageTextConfig {
	t.Helper()

	require.NotEmpty(t, mb.SentMessages)
	edit, ok := mb.SentMessages[len(mb.SentMessages)-1].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	return edit
}

func TestQuizT_sendNewQuiz(t *testing.T) {
	t.Parallel()

	type args struct {
		message *tgbotapi.Message
		userID  int64
	}
	tests := []struct {
		name       string
		args       args
		f          func(*testing.T, *mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *QuizT, *mock_bot.MockBot)
	}{
		{
			name: "success: sends first question",
			args: args{
				message: quizMessage(),
				userID:  testUserID,
			},
			f: func(t *testing.T, ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), testUserID).Return(newAttempt(t, quiz.SeedQuestions()), nil)
			},
			assertFunc: func(t *testing.T, qt *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "❓ Question 1/4")
				assert.Contains(t, msg.Text, quiz.SeedQuestions()[0].Title)

				keyboard, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				require.Len(t, keyboard.InlineKeyboard, 4)
				assert.Equal(t, "var", keyboard.InlineKeyboard[0][0].Text)
				assert.Equal(t, "quiz_opt_3", *keyboard.InlineKeyboard[3][0].CallbackData)

				session, ok := qt.cache.GetSession(testUserID)
				require.True(t, ok)
				assert.Equal(t, testMessageID, session.MessageID)
				assert.Equal(t, testChatID, session.ChatID)
			},
		},
		{
			name: "error: StartQuiz fails",
			args: args{
				message: quizMessage(),
				userID:  testUserID,
			},
			f: func(t *testing.T, ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), testUserID).Return(service.Attempt{}, assert.AnError)
			},
			assertFunc: func(t *testing.T, qt *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Could not start the quiz. Try again later.", msg.Text)

				_, ok := qt.cache.GetSession(testUserID)
				assert.False(t, ok)
			},
		},
		{
			name: "error: send fails, no session kept",
			args: args{
				message: quizMessage(),
				userID:  testUserID,
			},
			f: func(t *testing.T, ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				mb.SendErr = assert.AnError
				ms.EXPECT().StartQuiz(gomock.Any(), testUserID).Return(newAttempt(t, quiz.SeedQuestions()), nil)
			},
			assertFunc: func(t *testing.T, qt *QuizT, mb *mock_bot.MockBot) {
				_, ok := qt.cache.GetSession(testUserID)
				assert.False(t, ok)
			},
		},
		{
			name: "sender comes from the caller, not the chat message",
			args: args{
				message: &tgbotapi.Message{
					Chat: &tgbotapi.Chat{ID: testChatID},
					From: nil,
				},
				userID: testUserID,
			},
			f: func(t *testing.T, ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), testUserID).Return(newAttempt(t, quiz.SeedQuestions()), nil)
			},
			assertFunc: func(t *testing.T, qt *QuizT, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				_, ok := qt.cache.GetSession(testUserID)
				assert.True(t, ok)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				if tt.f != nil {
					tt.f(t, ms, mb)
				}
			})
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			quizT.sendNewQuiz(tt.args.message, tt.args.userID)

			if tt.assertFunc != nil {
				tt.assertFunc(t, quizT, mb)
			}
		})
	}
}

func TestQuizT_playAllCorrect(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bank := quiz.SeedQuestions()
	attempt := newAttempt(t, bank)

	var saved []models.QuizResult
	quizT := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().StartQuiz(gomock.Any(), testUserID).Return(attempt, nil)
		ms.EXPECT().AddQuizResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, result models.QuizResult) error {
				saved = append(saved, result)
				return nil
			},
		).Times(1)
	})
	mb, _ := quizT.bot.(*mock_bot.MockBot)

	quizT.sendNewQuiz(quizMessage(), testUserID)

	for i, q := range bank {
		quizT.handleQuizCallbackQuery(callback("quiz_opt_" + strconv.Itoa(q.CorrectIndex)))
		edit := lastEdit(t, mb)
		assert.Contains(t, edit.Text, "Question")
		assert.Equal(t, "🔘 "+q.Options[q.CorrectIndex], edit.ReplyMarkup.InlineKeyboard[q.CorrectIndex][0].Text)
		assert.Equal(t, "✔️ Confirm", edit.ReplyMarkup.InlineKeyboard[len(q.Options)][0].Text)

		quizT.handleQuizCallbackQuery(callback("quiz_confirm"))
		edit = lastEdit(t, mb)
		assert.Contains(t, edit.Text, "✅ Correct! +100")
		if i == len(bank)-1 {
			assert.Equal(t, "🏁 Finish", edit.ReplyMarkup.InlineKeyboard[len(q.Options)][0].Text)
		} else {
			assert.Equal(t, "➡️ Next", edit.ReplyMarkup.InlineKeyboard[len(q.Options)][0].Text)
		}

		quizT.handleQuizCallbackQuery(callback("quiz_next"))
	}

	edit := lastEdit(t, mb)
	assert.Contains(t, edit.Text, "🏁 Quiz finished!")
	assert.Contains(t, edit.Text, "⭐ Score: 400 / 400")
	assert.Contains(t, edit.Text, "Lives left: 3")
	assert.Equal(t, testMessageID, edit.MessageID)

	require.Len(t, saved, 1)
	assert.Equal(t, attempt.ID, saved[0].AttemptID)
	assert.Equal(t, 400, saved[0].Score)
	assert.Equal(t, 3, saved[0].LivesLeft)
	assert.Equal(t, 4, saved[0].Answered)

	sent := len(mb.SentMessages)
	quizT.handleQuizCallbackQuery(callback("quiz_next"))
	assert.Len(t, mb.SentMessages, sent, "finished quiz must not redraw")
}

func TestQuizT_outOfLivesAndRestart(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	attempt := newAttempt(t, quiz.SeedQuestions())

	var saved []models.QuizResult
	quizT := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().StartQuiz(gomock.Any(), testUserID).Return(attempt, nil)
		ms.EXPECT().AddQuizResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, result models.QuizResult) error {
				saved = append(saved, result)
				return nil
			},
		).Times(2)
	})
	mb, _ := quizT.bot.(*mock_bot.MockBot)

	quizT.sendNewQuiz(quizMessage(), testUserID)

	answerWrong := func() {
		q, ok := attempt.Engine.State().CurrentQuestion()
		require.True(t, ok)
		wrong := (q.CorrectIndex + 1) % len(q.Options)
		quizT.handleQuizCallbackQuery(callback("quiz_opt_" + strconv.Itoa(wrong)))
		quizT.handleQuizCallbackQuery(callback("quiz_confirm"))
	}

	answerWrong()
	edit := lastEdit(t, mb)
	assert.Contains(t, edit.Text, "❌ Wrong. The answer is: val")
	assert.Contains(t, edit.Text, "❤️❤️🖤")
	quizT.handleQuizCallbackQuery(callback("quiz_next"))

	answerWrong()
	quizT.handleQuizCallbackQuery(callback("quiz_next"))
	answerWrong()
	edit = lastEdit(t, mb)
	assert.Equal(t, "🏁 Finish", edit.ReplyMarkup.InlineKeyboard[4][0].Text)
	quizT.handleQuizCallbackQuery(callback("quiz_next"))

	edit = lastEdit(t, mb)
	assert.Contains(t, edit.Text, "💔 Out of lives")
	require.Len(t, saved, 1)
	assert.Equal(t, 0, saved[0].LivesLeft)
	assert.Equal(t, 3, saved[0].Answered)

	quizT.handleQuizCallbackQuery(callback("quiz_restart"))
	edit = lastEdit(t, mb)
	assert.Contains(t, edit.Text, "❓ Question 1/4")

	session, ok := quizT.cache.GetSession(testUserID)
	require.True(t, ok)
	assert.NotEqual(t, saved[0].AttemptID, session.Attempt.ID)
	assert.False(t, session.Recorded)

	answerWrong()
	quizT.handleQuizCallbackQuery(callback("quiz_next"))
	answerWrong()
	quizT.handleQuizCallbackQuery(callback("quiz_next"))
	answerWrong()
	quizT.handleQuizCallbackQuery(callback("quiz_next"))

	require.Len(t, saved, 2)
	assert.Equal(t, session.Attempt.ID, saved[1].AttemptID)
}

func TestQuizT_handleQuizCallbackQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      *tgbotapi.CallbackQuery
		withQuiz   bool
		f          func(*testing.T, *mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:  "new_quiz: triggers sendNewQuiz",
			query: callback("new_quiz"),
			f: func(t *testing.T, ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), testUserID).Return(newAttempt(t, quiz.SeedQuestions()), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "❓ Question 1/4")
			},
		},
		{
			name: "new_quiz from a bot message uses the pressing user",
			query: func() *tgbotapi.CallbackQuery {
				q := callback("new_quiz")
				q.Message.From = &tgbotapi.User{ID: 1, IsBot: true}
				return q
			}(),
			f: func(t *testing.T, ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().StartQuiz(gomock.Any(), testUserID).Return(newAttempt(t, quiz.SeedQuestions()), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
			},
		},
		{
			name:  "no active quiz",
			query: callback("quiz_confirm"),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ No active quiz. Press 🧠 Trivia to start one.", msg.Text)
			},
		},
		{
			name: "outdated quiz message",
			query: func() *tgbotapi.CallbackQuery {
				q := callback("quiz_opt_1")
				q.Message.MessageID = 7
				return q
			}(),
			withQuiz: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "⌛ This quiz is outdated, use the latest one.", msg.Text)
			},
		},
		{
			name:     "option out of range is ignored",
			query:    callback("quiz_opt_9"),
			withQuiz: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
		{
			name:     "malformed option is ignored",
			query:    callback("quiz_opt_x"),
			withQuiz: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
		{
			name:     "confirm without selection does nothing",
			query:    callback("quiz_confirm"),
			withQuiz: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
		{
			name:     "unknown quiz command",
			query:    callback("quiz_unknown"),
			withQuiz: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Unknown command", msg.Text)
			},
		},
		{
			name: "callback without message",
			query: &tgbotapi.CallbackQuery{
				ID:   "query",
				From: &tgbotapi.User{ID: testUserID},
				Data: "quiz_confirm",
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				if tt.withQuiz {
					ms.EXPECT().StartQuiz(gomock.Any(), testUserID).Return(newAttempt(t, quiz.SeedQuestions()), nil)
				}
				if tt.f != nil {
					tt.f(t, ms, mb)
				}
			})
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			if tt.withQuiz {
				quizT.sendNewQuiz(quizMessage(), testUserID)
			}

			mock_bot.ClearSentMessages(mb)
			quizT.handleQuizCallbackQuery(tt.query)

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestQuizT_sendNewQuizReplacesSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := newAttempt(t, quiz.SeedQuestions())
	second := newAttempt(t, quiz.SeedQuestions())

	quizT := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		gomock.InOrder(
			ms.EXPECT().StartQuiz(gomock.Any(), testUserID).Return(first, nil),
			ms.EXPECT().StartQuiz(gomock.Any(), testUserID).Return(second, nil),
		)
	})
	mb, _ := quizT.bot.(*mock_bot.MockBot)

	quizT.sendNewQuiz(quizMessage(), testUserID)
	quizT.sendNewQuiz(quizMessage(), testUserID)

	session, ok := quizT.cache.GetSession(testUserID)
	require.True(t, ok)
	assert.Equal(t, second.ID, session.Attempt.ID)

	mock_bot.ClearSentMessages(mb)
	first.Engine.SelectOption(1)
	assert.Empty(t, mb.SentMessages, "replaced attempt must not redraw")
}

func TestQuizT_sendQuizStats(t *testing.T) {
	t.Parallel()

	message := quizMessage()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "success: sends stats",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().QuizStats(gomock.Any(), testUserID).Return("🧠 *Attempts*: 2", nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "🧠 *Attempts*: 2", msg.Text)
				assert.Equal(t, "markdown", msg.ParseMode)
			},
		},
		{
			name: "error: failed to get stats",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().QuizStats(gomock.Any(), testUserID).Return("", assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Could not load your progress", msg.Text)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(t, ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.sendQuizStats(message)

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestRenderState(t *testing.T) {
	t.Parallel()

	engine, err := quiz.NewEngine(quiz.SeedQuestions()[:1])
	require.NoError(t, err)

	text, keyboard := renderState(engine.State())
	assert.Contains(t, text, "❓ Question 1/1")
	assert.Contains(t, text, "❤️❤️❤️  ⭐ 0")
	assert.Len(t, keyboard.InlineKeyboard, 4)

	engine.SelectOption(2)
	engine.ConfirmAnswer()
	text, keyboard = renderState(engine.State())
	assert.Contains(t, text, "❌ Wrong. The answer is: val")
	assert.Equal(t, "✅ val", keyboard.InlineKeyboard[1][0].Text)
	assert.Equal(t, "❌ let", keyboard.InlineKeyboard[2][0].Text)
	assert.Equal(t, "🏁 Finish", keyboard.InlineKeyboard[4][0].Text)

	engine.NextQuestion()
	text, keyboard = renderState(engine.State())
	assert.Contains(t, text, "⭐ Score: 0 / 100")
	assert.Contains(t, text, "Lives left: 2")
	assert.Equal(t, "quiz_restart", *keyboard.InlineKeyboard[0][0].CallbackData)
}
