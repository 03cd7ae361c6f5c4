package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/triviabot/internal/models"
	"github.com/DanRulev/triviabot/internal/quiz"
	"github.com/DanRulev/triviabot/internal/service"
	"github.com/DanRulev/triviabot/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	callbackPrefix  = "quiz_"
	callbackOption  = "quiz_opt_"
	callbackConfirm = "quiz_confirm"
	callbackNext    = "quiz_next"
	callbackRestart = "quiz_restart"
	callbackNewQuiz = "new_quiz"
	callbackMenu    = "main_menu"

	heartFull = "❤️"
	heartLost = "🖤"
)

type QuizSI interface {
	StartQuiz(ctx context.Context, userID int64) (service.Attempt, error)
	AddQuizResult(ctx context.Context, result models.QuizResult) error
	QuizStats(ctx context.Context, userID int64) (string, error)
}

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service QuizSI
	log     *zap.Logger
	now     func() time.Time
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
		log:     log,
		now:     time.Now,
	}
}

// sendNewQuiz starts a quiz for userID in message's chat. Callers check the sender.
func (t *QuizT) sendNewQuiz(message *tgbotapi.Message, userID int64) {
	ctx, canceled := context.WithTimeout(context.Background(), 10*time.Second)
	defer canceled()

	attempt, err := t.service.StartQuiz(ctx, userID)
	if err != nil {
		t.log.Error("failed to start quiz", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Could not start the quiz. Try again later.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	text, keyboard := renderState(attempt.Engine.State())
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyMarkup = keyboard

	sent, ok := sendMessage(t.bot, t.log, msg)
	if !ok {
		return
	}

	session := &cache.Session{
		Attempt:   attempt,
		ChatID:    message.Chat.ID,
		MessageID: sent.MessageID,
	}
	session.Unsubscribe = attempt.Engine.Subscribe(func(s quiz.State) {
		t.onStateChange(session, s)
	})

	if prev, replaced := t.cache.SetSession(userID, session); replaced && prev.Unsubscribe != nil {
		prev.Unsubscribe()
	}
}

// onStateChange redraws the quiz message and records the attempt once it ends.
func (t *QuizT) onStateChange(session *cache.Session, s quiz.State) {
	text, keyboard := renderState(s)
	edit := tgbotapi.NewEditMessageTextAndMarkup(session.ChatID, session.MessageID, text, keyboard)
	sendMessage(t.bot, t.log, edit)

	if !s.IsFinished() {
		session.Recorded = false
		return
	}
	if session.Recorded {
		return
	}
	session.Recorded = true

	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	result := service.ResultOf(session.Attempt, s, t.now())
	if err := t.service.AddQuizResult(ctx, result); err != nil {
		t.log.Error("failed to save quiz result",
			zap.Int64("user_id", session.Attempt.UserID),
			zap.String("attempt_id", session.Attempt.ID.String()),
			zap.Error(err))
	}
}

func (t *QuizT) sendQuizStats(message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID
	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	stats, err := t.service.QuizStats(ctx, userID)
	if err != nil {
		t.log.Error("failed to get quiz stats", zap.Int64("user_id", userID), zap.Error(err))
		msg := tgbotapi.NewMessage(chatID, "❌ Could not load your progress")
		sendMessage(t.bot, t.log, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, stats)
	msg.ParseMode = "markdown"

	sendMessage(t.bot, t.log, msg)
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback query without message", zap.String("query_id", query.ID))
		return
	}

	if query.Data == callbackNewQuiz {
		t.sendNewQuiz(query.Message, query.From.ID)
		return
	}

	session, exists := t.cache.GetSession(query.From.ID)
	if !exists {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ No active quiz. Press "+ButtonQuiz+" to start one.")
		sendMessage(t.bot, t.log, msg)
		return
	}
	if session.MessageID != query.Message.MessageID {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "⌛ This quiz is outdated, use the latest one.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	engine := session.Attempt.Engine

	switch data := query.Data; {
	case strings.HasPrefix(data, callbackOption):
		index, ok := parseOption(data, engine.State())
		if !ok {
			t.log.Warn("invalid option callback", zap.String("data", data), zap.Int64("user_id", query.From.ID))
			return
		}
		engine.SelectOption(index)
	case data == callbackConfirm:
		engine.ConfirmAnswer()
	case data == callbackNext:
		engine.NextQuestion()
	case data == callbackRestart:
		session.Attempt.ID = uuid.New()
		engine.Restart()
	default:
		t.log.Warn("unknown quiz callback", zap.String("data", data))
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Unknown command")
		sendMessage(t.bot, t.log, msg)
	}
}

func parseOption(data string, s quiz.State) (int, bool) {
	index, err := strconv.Atoi(strings.TrimPrefix(data, callbackOption))
	if err != nil {
		return 0, false
	}

	q, ok := s.CurrentQuestion()
	if !ok || index < 0 || index >= len(q.Options) {
		return 0, false
	}

	return index, true
}

func renderState(s quiz.State) (string, tgbotapi.InlineKeyboardMarkup) {
	if s.IsFinished() {
		return renderFinished(s)
	}

	q, ok := s.CurrentQuestion()
	if !ok {
		return "❌ No question available", tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔁 Restart", callbackRestart)),
		)
	}

	selected, hasSelected := s.Selected()
	feedback, hasFeedback := s.Feedback()

	var sb strings.Builder
	fmt.Fprintf(&sb, "❓ Question %d/%d\n", s.CurrentIndex()+1, s.QuestionCount())
	fmt.Fprintf(&sb, "%s  ⭐ %d\n\n", hearts(s), s.Score())
	sb.WriteString(q.Title)

	if hasFeedback {
		switch feedback {
		case quiz.FeedbackCorrect:
			fmt.Fprintf(&sb, "\n\n✅ Correct! +%d", s.Rules().PointsPerCorrect)
		case quiz.FeedbackIncorrect:
			sb.WriteString("\n\n❌ Wrong. The answer is: " + q.Options[q.CorrectIndex])
		}
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options)+1)
	for i, option := range q.Options {
		label := option
		switch {
		case hasFeedback && i == q.CorrectIndex:
			label = "✅ " + option
		case hasFeedback && hasSelected && i == selected:
			label = "❌ " + option
		case hasSelected && i == selected:
			label = "🔘 " + option
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, callbackOption+strconv.Itoa(i)),
		))
	}

	switch {
	case hasFeedback && (s.IsLastQuestion() || s.Lives() <= 0):
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🏁 Finish", callbackNext)))
	case hasFeedback:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➡️ Next", callbackNext)))
	case hasSelected:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("✔️ Confirm", callbackConfirm)))
	}

	return sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func renderFinished(s quiz.State) (string, tgbotapi.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString("🏁 Quiz finished!\n\n")
	fmt.Fprintf(&sb, "⭐ Score: %d / %d\n", s.Score(), s.MaxScore())
	if s.Lives() > 0 {
		fmt.Fprintf(&sb, "%s Lives left: %d", heartFull, s.Lives())
	} else {
		sb.WriteString("💔 Out of lives")
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Play again", callbackRestart),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Menu", callbackMenu),
		),
	)

	return sb.String(), keyboard
}

func hearts(s quiz.State) string {
	lives := s.Lives()
	if lives < 0 {
		lives = 0
	}
	lost := s.Rules().Lives - lives
	if lost < 0 {
		lost = 0
	}
	return strings.Repeat(heartFull, lives) + strings.Repeat(heartLost, lost)
}
