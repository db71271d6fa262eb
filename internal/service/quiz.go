package service

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/Olgakatash/polish-trainer-bot/internal/answer"
	"github.com/Olgakatash/polish-trainer-bot/internal/models"
	"github.com/Olgakatash/polish-trainer-bot/internal/storage/cache"
	"go.uber.org/zap"
)

var (
	// ErrEmptyPool means the requested category selection has no usable terms.
	ErrEmptyPool = errors.New("empty word pool")
	// ErrNoActiveSession means the user has no quiz awaiting an answer.
	ErrNoActiveSession = errors.New("no active quiz session")
)

// DefaultQuizLength matches the original trainer's five questions per quiz.
const DefaultQuizLength = 5

// QuizS runs bounded question/answer sessions, one per user at a time.
type QuizS struct {
	vocab    VocabI
	sessions *cache.SessionStore
	stats    *cache.StatsStore
	log      *zap.Logger

	randMu sync.Mutex
	// shuffle permutes the pool at session start. Tests replace it to pin
	// question order.
	shuffle func(n int, swap func(i, j int))
}

func NewQuizService(vocab VocabI, sessions *cache.SessionStore, stats *cache.StatsStore, rng *rand.Rand, log *zap.Logger) *QuizS {
	return &QuizS{
		vocab:    vocab,
		sessions: sessions,
		stats:    stats,
		log:      log,
		shuffle:  rng.Shuffle,
	}
}

// Start creates a fresh session for the user, silently replacing any session
// already in flight, and returns the first question. The word list is a
// uniform random draw of min(length, pool size) pairs, fixed for the whole
// session. Returns ErrEmptyPool when the category selection yields nothing.
func (q *QuizS) Start(userID int64, categories []string, length int, direction models.Direction) (models.Question, error) {
	pool := q.vocab.Pool(categories...)
	if len(pool) == 0 {
		q.log.Warn("quiz start with empty pool",
			zap.Int64("user_id", userID),
			zap.Strings("categories", categories))
		return models.Question{}, ErrEmptyPool
	}

	if length < 1 {
		length = DefaultQuizLength
	}
	if length > len(pool) {
		length = len(pool)
	}

	words := make([]models.VocabPair, len(pool))
	copy(words, pool)

	q.randMu.Lock()
	q.shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	q.randMu.Unlock()

	session := &models.QuizSession{
		UserID:    userID,
		Words:     words[:length],
		Direction: direction,
		State:     models.StateAwaitingAnswer,
	}
	session.Accepted = answer.Accepted(expectedFor(session.Words[0], direction))

	q.sessions.Set(userID, session)

	q.log.Info("quiz started",
		zap.Int64("user_id", userID),
		zap.Int("length", length),
		zap.String("direction", direction.String()))

	return questionAt(session), nil
}

// CurrentQuestion returns the question for the session's current index.
func (q *QuizS) CurrentQuestion(userID int64) (models.Question, error) {
	session, exists := q.sessions.Get(userID)
	if !exists || session.State != models.StateAwaitingAnswer {
		return models.Question{}, ErrNoActiveSession
	}
	return questionAt(&session), nil
}

// SubmitAnswer grades the user's input against the current question and
// advances the session. It always advances, right or wrong; re-prompting is
// the presentation layer's call.
func (q *QuizS) SubmitAnswer(userID int64, input string) (models.GradeResult, error) {
	return q.advance(userID, input, false)
}

// SkipCurrent advances past the current question without scoring it.
func (q *QuizS) SkipCurrent(userID int64) (models.GradeResult, error) {
	return q.advance(userID, "", true)
}

func (q *QuizS) advance(userID int64, input string, skipped bool) (models.GradeResult, error) {
	var result models.GradeResult

	err := q.sessions.Update(userID, func(session *models.QuizSession) error {
		pair := session.Words[session.Index]
		expected := expectedFor(pair, session.Direction)

		accepted := session.Accepted
		if len(accepted) == 0 {
			accepted = answer.Accepted(expected)
		}

		correct := !skipped && answer.Acceptable(input, accepted)

		q.stats.RecordAnswer(userID, correct)
		if correct {
			session.Score++
		}
		session.Index++

		result = models.GradeResult{
			Correct:  correct,
			Skipped:  skipped,
			Expected: expected,
			Accepted: accepted,
		}

		if session.Index == len(session.Words) {
			session.State = models.StateFinished
			q.stats.RecordQuiz(userID)

			result.Finished = true
			result.Summary = &models.QuizSummary{
				Score:      session.Score,
				Length:     len(session.Words),
				Percentage: float64(session.Score) / float64(len(session.Words)) * 100,
			}
			return nil
		}

		session.Accepted = answer.Accepted(expectedFor(session.Words[session.Index], session.Direction))
		next := questionAt(session)
		result.Next = &next
		return nil
	})
	if err != nil {
		if errors.Is(err, cache.ErrNoSession) {
			return models.GradeResult{}, ErrNoActiveSession
		}
		return models.GradeResult{}, err
	}

	if result.Finished {
		q.log.Info("quiz finished",
			zap.Int64("user_id", userID),
			zap.Int("score", result.Summary.Score),
			zap.Int("length", result.Summary.Length))
	}

	return result, nil
}

// EndEarly aborts the user's session. Stats already recorded per answered
// question stay; no summary is produced.
func (q *QuizS) EndEarly(userID int64) error {
	err := q.sessions.Update(userID, func(session *models.QuizSession) error {
		session.State = models.StateAborted
		return nil
	})
	if errors.Is(err, cache.ErrNoSession) {
		return ErrNoActiveSession
	}
	if err != nil {
		return err
	}

	q.log.Info("quiz ended early", zap.Int64("user_id", userID))
	return nil
}

func questionAt(session *models.QuizSession) models.Question {
	return models.Question{
		Prompt:    promptFor(session.Words[session.Index], session.Direction),
		Number:    session.Index + 1,
		Total:     len(session.Words),
		Direction: session.Direction,
	}
}

func promptFor(pair models.VocabPair, direction models.Direction) string {
	if direction == models.Reverse {
		return pair.Translation
	}
	return pair.Term
}

func expectedFor(pair models.VocabPair, direction models.Direction) string {
	if direction == models.Reverse {
		return pair.Term
	}
	return pair.Translation
}
