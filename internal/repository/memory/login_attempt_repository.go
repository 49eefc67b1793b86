package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const maxAttempts = 5

// LoginAttemptRepository tracks failed admin logins per email with a sliding
// TTL, backed by an in-memory cache.
type LoginAttemptRepository struct {
	cache *cache.Cache
}

func NewLoginAttemptRepository() *LoginAttemptRepository {
	// Attempts expire after 15 minutes, purged every 5
	c := cache.New(15*time.Minute, 5*time.Minute)
	return &LoginAttemptRepository{
		cache: c,
	}
}

func (r *LoginAttemptRepository) RecordFailure(email string) {
	if x, found := r.cache.Get(email); found {
		r.cache.Set(email, x.(int)+1, cache.DefaultExpiration)
		return
	}
	r.cache.Set(email, 1, cache.DefaultExpiration)
}

func (r *LoginAttemptRepository) IsBlocked(email string) bool {
	if x, found := r.cache.Get(email); found {
		return x.(int) >= maxAttempts
	}
	return false
}

func (r *LoginAttemptRepository) Reset(email string) {
	r.cache.Delete(email)
}
