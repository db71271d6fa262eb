package bot

import (
	"testing"

	mock_bot "github.com/Olgakatash/polish-trainer-bot/internal/bot/mock"
	"github.com/Olgakatash/polish-trainer-bot/internal/models"
	"github.com/Olgakatash/polish-trainer-bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) (*QuizT, *mock_bot.MockBot) {
	t.Helper()

	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService)
	}

	return NewQuizTAPI(mockBot, mockService, 5), mockBot
}

func TestQuizT_startQuiz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		direction  string
		f          func(*mock_bot.MockServiceI)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:      "success: sends first question",
			direction: "forward",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Start(int64(456), gomock.Nil(), 5, models.Forward).Return(models.Question{
					Prompt:    "jeden",
					Number:    1,
					Total:     3,
					Direction: models.Forward,
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "Quiz Question 1/3")
				assert.Contains(t, msg.Text, "jeden")
				assert.Contains(t, msg.Text, "in English")
				assert.Equal(t, "HTML", msg.ParseMode)
				assert.NotNil(t, msg.ReplyMarkup)
			},
		},
		{
			name:      "reverse direction asks in Polish",
			direction: "reverse",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Start(int64(456), gomock.Nil(), 5, models.Reverse).Return(models.Question{
					Prompt:    "one",
					Number:    1,
					Total:     3,
					Direction: models.Reverse,
				}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "in Polish")
			},
		},
		{
			name:      "empty pool",
			direction: "forward",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Start(int64(456), gomock.Nil(), 5, models.Forward).Return(models.Question{}, service.ErrEmptyPool)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Nothing to practice")
			},
		},
		{
			name:      "service error",
			direction: "forward",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Start(int64(456), gomock.Nil(), 5, models.Forward).Return(models.Question{}, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Could not start the quiz")
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT, mb := newQuizTMock(t, ctrl, tt.f)

			quizT.startQuiz(123, 456, tt.direction)
			tt.assertFunc(t, mb)
		})
	}
}

func TestQuizT_handleAnswer(t *testing.T) {
	t.Parallel()

	message := func(text string) *tgbotapi.Message {
		return &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 123},
			From: &tgbotapi.User{ID: 456},
			Text: text,
		}
	}

	tests := []struct {
		name        string
		text        string
		f           func(*mock_bot.MockServiceI)
		wantHandled bool
		assertFunc  func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "correct answer shows feedback and next question",
			text: "one",
			f: func(ms *mock_bot.MockServiceI) {
				next := models.Question{Prompt: "dwa", Number: 2, Total: 3}
				ms.EXPECT().SubmitAnswer(int64(456), "one").Return(models.GradeResult{
					Correct: true,
					Next:    &next,
				}, nil)
			},
			wantHandled: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages))
				feedback := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, feedback.Text, "Correct!")
				question := mb.SentMessages[1].(tgbotapi.MessageConfig)
				assert.Contains(t, question.Text, "Quiz Question 2/3")
			},
		},
		{
			name: "wrong answer reveals the expected translation",
			text: "banana",
			f: func(ms *mock_bot.MockServiceI) {
				next := models.Question{Prompt: "trzy", Number: 3, Total: 3}
				ms.EXPECT().SubmitAnswer(int64(456), "banana").Return(models.GradeResult{
					Correct:  false,
					Expected: "two",
					Next:     &next,
				}, nil)
			},
			wantHandled: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages))
				feedback := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, feedback.Text, "Wrong.")
				assert.Contains(t, feedback.Text, "two")
			},
		},
		{
			name: "final answer shows the summary",
			text: "three",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().SubmitAnswer(int64(456), "three").Return(models.GradeResult{
					Correct:  true,
					Finished: true,
					Summary:  &models.QuizSummary{Score: 2, Length: 3, Percentage: 66.7},
				}, nil)
			},
			wantHandled: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages))
				summary := mb.SentMessages[1].(tgbotapi.MessageConfig)
				assert.Contains(t, summary.Text, "Quiz Complete!")
				assert.Contains(t, summary.Text, "2/3")
				assert.Contains(t, summary.Text, "Good job! Dobrze!")
			},
		},
		{
			name: "no active session falls through to the menu",
			text: "hello",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().SubmitAnswer(int64(456), "hello").Return(models.GradeResult{}, service.ErrNoActiveSession)
			},
			wantHandled: false,
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

			quizT, mb := newQuizTMock(t, ctrl, tt.f)

			handled := quizT.handleAnswer(message(tt.text))
			assert.Equal(t, tt.wantHandled, handled)
			tt.assertFunc(t, mb)
		})
	}
}

func TestQuizT_startThenAnswer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := models.Question{Prompt: "dwa", Number: 2, Total: 3}
	quizT, mb := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().Start(int64(456), gomock.Nil(), 5, models.Forward).Return(models.Question{
			Prompt: "jeden",
			Number: 1,
			Total:  3,
		}, nil)
		ms.EXPECT().SubmitAnswer(int64(456), "one").Return(models.GradeResult{
			Correct: true,
			Next:    &next,
		}, nil)
	})

	quizT.startQuiz(123, 456, "forward")
	require.Equal(t, 1, len(mb.SentMessages))
	question := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Contains(t, question.Text, "Quiz Question 1/3")

	mock_bot.ClearSentMessages(mb)

	handled := quizT.handleAnswer(&tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456},
		Text: "one",
	})
	require.True(t, handled)
	require.Equal(t, 2, len(mb.SentMessages))
	feedback := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Contains(t, feedback.Text, "Correct!")
	question = mb.SentMessages[1].(tgbotapi.MessageConfig)
	assert.Contains(t, question.Text, "Quiz Question 2/3")
}

func TestQuizT_skipQuestion(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	next := models.Question{Prompt: "dwa", Number: 2, Total: 3}
	quizT, mb := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().SkipCurrent(int64(456)).Return(models.GradeResult{
			Skipped: true,
			Next:    &next,
		}, nil)
	})

	quizT.skipQuestion(123, 456)

	require.Equal(t, 2, len(mb.SentMessages))
	skipped := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Contains(t, skipped.Text, "skipped")
	question := mb.SentMessages[1].(tgbotapi.MessageConfig)
	assert.Contains(t, question.Text, "Quiz Question 2/3")
}

func TestQuizT_endQuiz(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT, mb := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		ms.EXPECT().EndEarly(int64(456)).Return(nil)
	})

	quizT.endQuiz(123, 456)

	require.Equal(t, 1, len(mb.SentMessages))
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Contains(t, msg.Text, "Quiz ended")
	assert.NotNil(t, msg.ReplyMarkup)
}
