// Package cache provides the auth-guard token cache: a short-lived
// token-to-user mapping that saves a store round trip on every guarded
// request. Entries are dropped on login and logout so invalidation is
// bounded by the TTL only for reads, never for writes.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/Ezhilarasu1330/React-Todo-App/internal/core/domain"
)

type TokenCache interface {
	Get(ctx context.Context, token string) (domain.User, bool)
	Set(ctx context.Context, token string, user domain.User)
	Delete(ctx context.Context, token string)
}

// MemoryTokenCache is the default in-process backend.
type MemoryTokenCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewMemoryTokenCache(ttl time.Duration) *MemoryTokenCache {
	return &MemoryTokenCache{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (m *MemoryTokenCache) Get(ctx context.Context, token string) (domain.User, bool) {
	entry, found := m.cache.Get(token)

	if !found {
		return domain.User{}, false
	}

	user, ok := entry.(domain.User)

	return user, ok
}

func (m *MemoryTokenCache) Set(ctx context.Context, token string, user domain.User) {
	m.cache.Set(token, user, m.ttl)
}

func (m *MemoryTokenCache) Delete(ctx context.Context, token string) {
	m.cache.Delete(token)
}
