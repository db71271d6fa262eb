package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Olgakatash/polish-trainer-bot/internal/models"
	"github.com/Olgakatash/polish-trainer-bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type WordSI interface {
	RandomWord() (models.VocabPair, error)
	CategoryWords(category string) ([]models.VocabPair, error)
	AllWords() ([]models.VocabPair, error)
	Categories() []string
	Progress(userID int64) models.ProgressReport
}

type WordT struct {
	bot     BotSender
	service WordSI
}

func NewWordTAPI(bot BotSender, service WordSI) *WordT {
	return &WordT{
		bot:     bot,
		service: service,
	}
}

var categoryEmoji = map[string]string{
	"greetings": "👋",
	"family":    "👨‍👩‍👧‍👦",
	"numbers":   "🔢",
	"colors":    "🎨",
	"food":      "🍞",
	"phrases":   "💬",
}

var titleCaser = cases.Title(language.English)

func (t *WordT) showCategories(chatID int64) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, category := range t.service.Categories() {
		emoji, ok := categoryEmoji[category]
		if !ok {
			emoji = "📚"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(emoji+" "+titleCaser.String(category), CategoryPrefix+category),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("📚 All Words", CallbackAllWords),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Back", CallbackMainMenu),
	))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	msg := tgbotapi.NewMessage(chatID, "📖 <b>Study Vocabulary</b>\n\nSelect a category to study:")
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *WordT) showCategoryWords(chatID int64, category string) {
	var (
		pairs []models.VocabPair
		title string
		err   error
	)

	if category == "all" {
		pairs, err = t.service.AllWords()
		title = "All Vocabulary"
	} else {
		pairs, err = t.service.CategoryWords(category)
		title = titleCaser.String(category)
	}

	if err != nil {
		if errors.Is(err, service.ErrEmptyCategory) || errors.Is(err, service.ErrEmptyVocabulary) {
			msg := tgbotapi.NewMessage(chatID, "❌ No words found in this category.")
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("failed to list words for category %q: %v", category, err)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📚 <b>%s</b>\n\n", title)
	for _, pair := range pairs {
		fmt.Fprintf(&sb, "🇵🇱 <code>%s</code> → %s\n", pair.Term, pair.Translation)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔙 Back to Categories", CallbackStudy),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Main Menu", CallbackMainMenu),
		),
	)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *WordT) sendRandomWord(chatID int64) {
	pair, err := t.service.RandomWord()
	if err != nil {
		log.Printf("failed to pick random word: %v", err)
		msg := tgbotapi.NewMessage(chatID, "❌ No vocabulary loaded yet.")
		sendMessage(t.bot, msg)
		return
	}

	text := fmt.Sprintf("🎲 <b>Random Word</b>\n\n🇵🇱 <code>%s</code>\n→ %s", pair.Term, pair.Translation)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Another Word", CallbackRandom),
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

func (t *WordT) sendProgress(chatID, userID int64) {
	report := t.service.Progress(userID)

	var sb strings.Builder
	sb.WriteString("📊 <b>Your Progress</b>\n\n")

	if report.Stats.TotalQuestions > 0 {
		fmt.Fprintf(&sb, "Questions answered: %d\n", report.Stats.TotalQuestions)
		fmt.Fprintf(&sb, "Correct answers: %d\n", report.Stats.CorrectAnswers)
		fmt.Fprintf(&sb, "Accuracy: %.1f%%\n", report.Accuracy)
		fmt.Fprintf(&sb, "Quizzes taken: %d\n\n", report.Stats.QuizCount)

		switch {
		case report.Accuracy >= 90:
			sb.WriteString("🏆 You're a Polish language champion!")
		case report.Accuracy >= 70:
			sb.WriteString("🎖️ You're doing great!")
		case report.Accuracy >= 50:
			sb.WriteString("📈 Keep up the good work!")
		default:
			sb.WriteString("💪 Practice makes perfect!")
		}
	} else {
		sb.WriteString("No quiz attempts yet.\nTake a quiz to see your progress!")
	}

	fmt.Fprintf(&sb, "\n\nTotal vocabulary available: %d words", report.VocabSize)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Main Menu", CallbackMainMenu),
		),
	)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}
