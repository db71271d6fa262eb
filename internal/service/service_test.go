package service

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/Olgakatash/polish-trainer-bot/internal/models"
	"github.com/Olgakatash/polish-trainer-bot/internal/storage/cache"
	"github.com/Olgakatash/polish-trainer-bot/internal/vocab"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Random word lookups and quiz starts may run concurrently; the services
// must not share generator state. Run with -race.
func TestInitServices_ConcurrentRandomUse(t *testing.T) {
	t.Parallel()

	services := InitServices(
		vocab.Default(),
		cache.NewSessionStore(),
		cache.NewStatsStore(),
		rand.New(rand.NewSource(1)),
		zap.NewNop(),
	)

	const goroutines = 100

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)
	for i := 0; i < goroutines; i++ {
		userID := int64(i + 1)
		go func() {
			defer wg.Done()
			_, err := services.RandomWord()
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := services.Start(userID, nil, 3, models.Forward)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
