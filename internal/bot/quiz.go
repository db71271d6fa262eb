package bot

import (
	"errors"
	"fmt"
	"log"

	"github.com/Olgakatash/polish-trainer-bot/internal/models"
	"github.com/Olgakatash/polish-trainer-bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type QuizSI interface {
	Start(userID int64, categories []string, length int, direction models.Direction) (models.Question, error)
	SubmitAnswer(userID int64, input string) (models.GradeResult, error)
	SkipCurrent(userID int64) (models.GradeResult, error)
	EndEarly(userID int64) error
}

type QuizT struct {
	bot     BotSender
	service QuizSI
	length  int
}

func NewQuizTAPI(bot BotSender, service QuizSI, length int) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
		length:  length,
	}
}

func (t *QuizT) sendDirectionChoice(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇵🇱 → 🇬🇧 Polish to English", DirectionPrefix+"forward"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇬🇧 → 🇵🇱 English to Polish", DirectionPrefix+"reverse"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Back", CallbackMainMenu),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "🎯 <b>Quiz</b>\n\nPick a direction:")
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) startQuiz(chatID, userID int64, direction string) {
	dir := models.Forward
	if direction == "reverse" {
		dir = models.Reverse
	}

	question, err := t.service.Start(userID, nil, t.length, dir)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPool) {
			msg := tgbotapi.NewMessage(chatID, "❌ Nothing to practice yet. Load some vocabulary first.")
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to start quiz for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Could not start the quiz. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	t.askQuestion(chatID, question)
}

func (t *QuizT) askQuestion(chatID int64, question models.Question) {
	askFor := "in English"
	if question.Direction == models.Reverse {
		askFor = "in Polish"
	}

	text := fmt.Sprintf(
		"🎯 <b>Quiz Question %d/%d</b>\n\nWhat is '<code>%s</code>' %s?\n\nType your answer:",
		question.Number, question.Total, question.Prompt, askFor,
	)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏭️ Skip", CallbackSkip),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ End Quiz", CallbackEndQuiz),
		),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

// handleAnswer feeds a plain text message into the active quiz. Reports
// false when the user has no session so the caller can fall back to the menu.
func (t *QuizT) handleAnswer(message *tgbotapi.Message) bool {
	userID := message.From.ID
	chatID := message.Chat.ID

	result, err := t.service.SubmitAnswer(userID, message.Text)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			return false
		}
		log.Printf("failed to grade answer for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Something went wrong. Start a new quiz.")
		sendMessage(t.bot, msg)
		return true
	}

	var feedback string
	if result.Correct {
		feedback = "✅ <b>Correct!</b> Świetnie! (Great!)"
	} else {
		feedback = fmt.Sprintf("❌ <b>Wrong.</b> The correct answer is: <b>%s</b>", result.Expected)
	}

	msg := tgbotapi.NewMessage(chatID, feedback)
	msg.ParseMode = "HTML"
	sendMessage(t.bot, msg)

	t.continueOrFinish(chatID, result)
	return true
}

func (t *QuizT) skipQuestion(chatID, userID int64) {
	result, err := t.service.SkipCurrent(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			msg := tgbotapi.NewMessage(chatID, "❌ No quiz is running. Start a new one.")
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to skip question for user %d: %v", userID, err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "⏭️ Question skipped!")
	sendMessage(t.bot, msg)

	t.continueOrFinish(chatID, result)
}

func (t *QuizT) continueOrFinish(chatID int64, result models.GradeResult) {
	if result.Finished {
		t.sendSummary(chatID, *result.Summary)
		return
	}
	if result.Next != nil {
		t.askQuestion(chatID, *result.Next)
	}
}

func (t *QuizT) endQuiz(chatID, userID int64) {
	err := t.service.EndEarly(userID)
	if err != nil && !errors.Is(err, service.ErrNoActiveSession) {
		log.Printf("failed to end quiz for user %d: %v", userID, err)
	}

	msg := tgbotapi.NewMessage(chatID, "❌ Quiz ended.")
	msg.ReplyMarkup = mainMenuKeyboard()
	sendMessage(t.bot, msg)
}

func (t *QuizT) sendSummary(chatID int64, summary models.QuizSummary) {
	text := fmt.Sprintf("🎉 <b>Quiz Complete!</b>\n\nScore: %d/%d (%.1f%%)\n\n",
		summary.Score, summary.Length, summary.Percentage)

	switch {
	case summary.Percentage >= 80:
		text += "🌟 Excellent work! Doskonale!"
	case summary.Percentage >= 60:
		text += "👍 Good job! Dobrze!"
	default:
		text += "📚 Keep studying! Ucz się dalej!"
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 New Quiz", CallbackNewQuiz),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Main Menu", CallbackMainMenu),
		),
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}
