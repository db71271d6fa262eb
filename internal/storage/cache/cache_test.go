package cache

import (
	"sync"
	"testing"

	"github.com/Olgakatash/polish-trainer-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(userID int64) *models.QuizSession {
	return &models.QuizSession{
		UserID: userID,
		Words: []models.VocabPair{
			{Term: "kot", Translation: "cat"},
			{Term: "pies", Translation: "dog"},
		},
		State: models.StateAwaitingAnswer,
	}
}

func TestSessionStore_SetGetDelete(t *testing.T) {
	t.Parallel()

	store := NewSessionStore()

	_, exists := store.Get(1)
	assert.False(t, exists)

	store.Set(1, testSession(1))
	session, exists := store.Get(1)
	require.True(t, exists)
	assert.Equal(t, int64(1), session.UserID)

	// replacing is silent
	replacement := testSession(1)
	replacement.Score = 1
	store.Set(1, replacement)
	session, _ = store.Get(1)
	assert.Equal(t, 1, session.Score)

	store.Delete(1)
	_, exists = store.Get(1)
	assert.False(t, exists)
}

func TestSessionStore_Update(t *testing.T) {
	t.Parallel()

	store := NewSessionStore()

	err := store.Update(1, func(s *models.QuizSession) error { return nil })
	assert.ErrorIs(t, err, ErrNoSession)

	store.Set(1, testSession(1))

	err = store.Update(1, func(s *models.QuizSession) error {
		s.Index++
		return nil
	})
	require.NoError(t, err)

	session, exists := store.Get(1)
	require.True(t, exists)
	assert.Equal(t, 1, session.Index)

	// a session left in a terminal state is dropped
	err = store.Update(1, func(s *models.QuizSession) error {
		s.State = models.StateAborted
		return nil
	})
	require.NoError(t, err)

	_, exists = store.Get(1)
	assert.False(t, exists)
}

func TestSessionStore_UpdateSerializes(t *testing.T) {
	t.Parallel()

	store := NewSessionStore()
	session := testSession(1)
	session.Words = make([]models.VocabPair, 100)
	store.Set(1, session)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update(1, func(s *models.QuizSession) error {
				s.Index++
				return nil
			})
		}()
	}
	wg.Wait()

	got, exists := store.Get(1)
	require.True(t, exists)
	assert.Equal(t, 50, got.Index)
}

func TestStatsStore(t *testing.T) {
	t.Parallel()

	store := NewStatsStore()

	assert.Equal(t, models.UserStats{}, store.Get(1), "unseen user reads as zero")
	assert.Empty(t, store.Users())

	store.RecordAnswer(1, true)
	store.RecordAnswer(1, false)
	store.RecordAnswer(1, true)
	store.RecordQuiz(1)

	stats := store.Get(1)
	assert.Equal(t, 3, stats.TotalQuestions)
	assert.Equal(t, 2, stats.CorrectAnswers)
	assert.Equal(t, 1, stats.QuizCount)

	store.RecordAnswer(2, false)
	assert.ElementsMatch(t, []int64{1, 2}, store.Users())
}
