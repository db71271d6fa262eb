// Package cache keeps per-user volatile state: active quiz sessions and
// lifetime stats. Everything here is lost on restart.
package cache

import (
	"errors"
	"sync"

	"github.com/Olgakatash/polish-trainer-bot/internal/models"
)

var ErrNoSession = errors.New("no session")

// SessionStore holds at most one quiz session per user.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*models.QuizSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*models.QuizSession),
	}
}

// Set stores the user's session, replacing any previous one.
func (s *SessionStore) Set(userID int64, session *models.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = session
}

// Get returns a copy of the user's session. Mutation goes through Update.
func (s *SessionStore) Get(userID int64) (models.QuizSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[userID]
	if !exists {
		return models.QuizSession{}, false
	}
	return *session, true
}

// Update runs fn on the user's session while holding the store lock, so two
// concurrent submissions for one user can never both grade the same
// question. A session left in a terminal state is dropped. Returns
// ErrNoSession when the user has none.
func (s *SessionStore) Update(userID int64, fn func(*models.QuizSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, exists := s.sessions[userID]
	if !exists {
		return ErrNoSession
	}

	if err := fn(session); err != nil {
		return err
	}

	if session.State != models.StateAwaitingAnswer {
		delete(s.sessions, userID)
	}
	return nil
}

func (s *SessionStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// StatsStore accumulates per-user quiz stats for the process lifetime.
// Counters only ever grow.
type StatsStore struct {
	mu    sync.Mutex
	stats map[int64]*models.UserStats
}

func NewStatsStore() *StatsStore {
	return &StatsStore{
		stats: make(map[int64]*models.UserStats),
	}
}

func (s *StatsStore) get(userID int64) *models.UserStats {
	stats, exists := s.stats[userID]
	if !exists {
		stats = &models.UserStats{}
		s.stats[userID] = stats
	}
	return stats
}

// RecordAnswer counts one graded question.
func (s *StatsStore) RecordAnswer(userID int64, correct bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.get(userID)
	stats.TotalQuestions++
	if correct {
		stats.CorrectAnswers++
	}
}

// RecordQuiz counts one completed quiz.
func (s *StatsStore) RecordQuiz(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).QuizCount++
}

// Get returns the user's stats, zero-valued for users never seen.
func (s *StatsStore) Get(userID int64) models.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, exists := s.stats[userID]
	if !exists {
		return models.UserStats{}
	}
	return *stats
}

// Users lists every user the store has seen, for reminder broadcasts.
func (s *StatsStore) Users() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int64, 0, len(s.stats))
	for userID := range s.stats {
		out = append(out, userID)
	}
	return out
}
