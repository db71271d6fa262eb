package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CallbackStudy      = "study"
	CallbackQuiz       = "quiz"
	CallbackRandom     = "random"
	CallbackProgress   = "progress"
	CallbackMainMenu   = "back_to_menu"
	CallbackSkip       = "skip_question"
	CallbackEndQuiz    = "end_quiz"
	CallbackNewQuiz    = "new_quiz"
	CategoryPrefix     = "cat_"
	DirectionPrefix    = "dir_"
	CallbackAllWords   = "cat_all"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Try /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🇵🇱 <b>Witaj w Polish Trainer Bot!</b> 🇵🇱\n\n" +
		"Welcome to your Polish language trainer!\n" +
		"Learn vocabulary, practice phrases, and test your knowledge.\n\n" +
		"Choose an option below to get started:"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = mainMenuKeyboard()

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Available commands:
/start — open the main menu
/help — this message

🎯 Use the buttons:
• "Study Vocabulary" — browse words by category
• "Take Quiz" — answer questions by typing the translation
• "Random Word" — a random word with its meaning
• "Progress" — your score so far
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

// handleMessage routes free text. During a quiz any plain message is an
// answer attempt; outside one we point the user back at the menu.
func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	if t.quiz.handleAnswer(message) {
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "No quiz is running. Use the menu below.")
	msg.ReplyMarkup = mainMenuKeyboard()
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	data := query.Data

	switch {
	case data == CallbackStudy:
		t.word.showCategories(query.Message.Chat.ID)

	case strings.HasPrefix(data, CategoryPrefix):
		t.word.showCategoryWords(query.Message.Chat.ID, strings.TrimPrefix(data, CategoryPrefix))

	case data == CallbackQuiz || data == CallbackNewQuiz:
		t.quiz.sendDirectionChoice(query.Message.Chat.ID)

	case strings.HasPrefix(data, DirectionPrefix):
		t.quiz.startQuiz(query.Message.Chat.ID, query.From.ID, strings.TrimPrefix(data, DirectionPrefix))

	case data == CallbackSkip:
		t.quiz.skipQuestion(query.Message.Chat.ID, query.From.ID)

	case data == CallbackEndQuiz:
		t.quiz.endQuiz(query.Message.Chat.ID, query.From.ID)

	case data == CallbackRandom:
		t.word.sendRandomWord(query.Message.Chat.ID)

	case data == CallbackProgress:
		t.word.sendProgress(query.Message.Chat.ID, query.From.ID)

	case data == CallbackMainMenu:
		t.showMainMenu(query.Message.Chat.ID)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}

func (t *TelegramAPI) showMainMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "🇵🇱 <b>Polish Trainer Bot</b> 🇵🇱\n\nChoose an option:")
	msg.ParseMode = "HTML"
	msg.ReplyMarkup = mainMenuKeyboard()
	sendMessage(t.bot, msg)
}

func mainMenuKeyboard() *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📖 Study Vocabulary", CallbackStudy),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎯 Take Quiz", CallbackQuiz),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎲 Random Word", CallbackRandom),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Progress", CallbackProgress),
		),
	)
	return &keyboard
}
