package service

import (
	"math/rand"

	"github.com/Olgakatash/polish-trainer-bot/internal/models"
	"github.com/Olgakatash/polish-trainer-bot/internal/storage/cache"
	"go.uber.org/zap"
)

// VocabI is what the services need from the vocabulary store.
type VocabI interface {
	Translation(term string) (string, error)
	CategoryTerms(category string) []string
	Categories() []string
	AllPairs() []models.VocabPair
	Pool(categories ...string) []models.VocabPair
	Len() int
}

type Service struct {
	*WordS
	*QuizS
}

func InitServices(vocab VocabI, sessions *cache.SessionStore, stats *cache.StatsStore, rng *rand.Rand, log *zap.Logger) *Service {
	// Each service gets its own generator. rand.Rand is not safe for
	// concurrent use and every service guards only its own instance.
	return &Service{
		WordS: NewWordService(vocab, stats, rand.New(rand.NewSource(rng.Int63())), log),
		QuizS: NewQuizService(vocab, sessions, stats, rand.New(rand.NewSource(rng.Int63())), log),
	}
}
