package orders

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// NotifiedStore pamti intent-e za koje su notifikacije već poslate, da ponovljen
// Confirm ne bi duplirao mejlove. MarkNotified vraća true samo prvom pozivaocu.
type NotifiedStore interface {
	MarkNotified(ctx context.Context, intentID string) (bool, error)
}

// notifiedTTL — koliko dugo pamtimo da je intent obrađen. Stripe intent-i su
// odavno završeni pre isteka.
const notifiedTTL = 30 * 24 * time.Hour

type redisNotifiedStore struct {
	client *redis.Client
}

// NewRedisNotifiedStore pravi dedup store nad Redis-om (SETNX, first-wins).
func NewRedisNotifiedStore(client *redis.Client) NotifiedStore {
	return &redisNotifiedStore{client: client}
}

func (s *redisNotifiedStore) MarkNotified(ctx context.Context, intentID string) (bool, error) {
	return s.client.SetNX(ctx, "notified:"+intentID, "1", notifiedTTL).Result()
}

type memoryNotifiedStore struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewMemoryNotifiedStore pravi in-memory dedup store — koristi se kada Redis
// nije konfigurisan. Ne preživljava restart procesa.
func NewMemoryNotifiedStore() NotifiedStore {
	return &memoryNotifiedStore{seen: make(map[string]struct{})}
}

func (s *memoryNotifiedStore) MarkNotified(_ context.Context, intentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[intentID]; ok {
		return false, nil
	}
	s.seen[intentID] = struct{}{}
	return true, nil
}
