package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/Bhargav-sunil/TaskManagement/internal/cache"
	"github.com/Bhargav-sunil/TaskManagement/internal/model"
)

const (
	identityKeyPrefix = "identity:"
	identityTTL       = 5 * time.Minute
)

// IdentityCache keeps resolved identities in Redis so the per-request lookup
// does not hit the store every time. Entries are invalidated whenever the
// user row is mutated or deleted.
type IdentityCache struct {
	cache *cache.Client
}

// NewIdentityCache creates a new identity cache.
func NewIdentityCache(cache *cache.Client) *IdentityCache {
	return &IdentityCache{cache: cache}
}

func identityKey(id uint) string {
	return fmt.Sprintf("%s%d", identityKeyPrefix, id)
}

// Get returns the cached identity for id, if present.
func (s *IdentityCache) Get(ctx context.Context, id uint) (*model.User, bool) {
	var user model.User
	if !s.cache.GetJSON(ctx, identityKey(id), &user) {
		return nil, false
	}
	user.PasswordHash = ""
	return &user, true
}

// Set stores the identity with a short TTL. The password hash is stripped
// before caching.
func (s *IdentityCache) Set(ctx context.Context, user *model.User) {
	entry := *user
	entry.PasswordHash = ""
	s.cache.SetJSON(ctx, identityKey(user.ID), &entry, identityTTL)
}

// Invalidate drops the cached identity for id.
func (s *IdentityCache) Invalidate(ctx context.Context, id uint) {
	_ = s.cache.Delete(ctx, identityKey(id))
}
