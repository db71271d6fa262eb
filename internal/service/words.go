package service

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/Olgakatash/polish-trainer-bot/internal/models"
	"github.com/Olgakatash/polish-trainer-bot/internal/storage/cache"
	"go.uber.org/zap"
)

var (
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
	ErrEmptyCategory   = errors.New("no words in category")
)

// WordS serves the study screens: category listings, the random-word lookup
// and the per-user progress report.
type WordS struct {
	vocab VocabI
	stats *cache.StatsStore
	log   *zap.Logger

	randMu sync.Mutex
	rng    *rand.Rand
}

func NewWordService(vocab VocabI, stats *cache.StatsStore, rng *rand.Rand, log *zap.Logger) *WordS {
	return &WordS{
		vocab: vocab,
		stats: stats,
		rng:   rng,
		log:   log,
	}
}

// RandomWord picks a uniform random entry from the whole vocabulary.
func (w *WordS) RandomWord() (models.VocabPair, error) {
	pairs := w.vocab.AllPairs()
	if len(pairs) == 0 {
		return models.VocabPair{}, ErrEmptyVocabulary
	}

	w.randMu.Lock()
	i := w.rng.Intn(len(pairs))
	w.randMu.Unlock()

	return pairs[i], nil
}

// CategoryWords lists a category's pairs in insertion order. Terms the
// category references but the mapping lacks are excluded.
func (w *WordS) CategoryWords(category string) ([]models.VocabPair, error) {
	terms := w.vocab.CategoryTerms(category)

	out := make([]models.VocabPair, 0, len(terms))
	for _, term := range terms {
		translation, err := w.vocab.Translation(term)
		if err != nil {
			w.log.Warn("category references unknown term",
				zap.String("category", category),
				zap.String("term", term))
			continue
		}
		out = append(out, models.VocabPair{Term: term, Translation: translation})
	}

	if len(out) == 0 {
		return nil, ErrEmptyCategory
	}
	return out, nil
}

// AllWords lists the whole vocabulary for the "all words" study screen.
func (w *WordS) AllWords() ([]models.VocabPair, error) {
	pairs := w.vocab.AllPairs()
	if len(pairs) == 0 {
		return nil, ErrEmptyVocabulary
	}
	return pairs, nil
}

// Categories returns category names in their load order.
func (w *WordS) Categories() []string {
	return w.vocab.Categories()
}

// Progress builds the user's progress report. Accuracy is zero until the
// first answered question.
func (w *WordS) Progress(userID int64) models.ProgressReport {
	stats := w.stats.Get(userID)

	var accuracy float64
	if stats.TotalQuestions > 0 {
		accuracy = float64(stats.CorrectAnswers) / float64(stats.TotalQuestions) * 100
	}

	return models.ProgressReport{
		Stats:     stats,
		Accuracy:  accuracy,
		VocabSize: w.vocab.Len(),
	}
}
