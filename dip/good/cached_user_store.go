package good

import (
	"context"

	"github.com/google/uuid"
)

// CachedUserStore is an in-memory StoresUsers with a read cache.
// Lookups are cached; every insert clears the cache.
type CachedUserStore struct {
	users  map[uuid.UUID]User
	cache  map[uuid.UUID]User
	hits   int
	logger Logger
}

// CachedUserStoreOption configures a CachedUserStore.
type CachedUserStoreOption func(*CachedUserStore)

// WithCacheLogger sets the logger for the CachedUserStore.
func WithCacheLogger(logger Logger) CachedUserStoreOption {
	return func(s *CachedUserStore) {
		s.logger = logger
	}
}

// NewCachedUserStore creates an empty store.
func NewCachedUserStore(options ...CachedUserStoreOption) *CachedUserStore {
	s := &CachedUserStore{
		users: make(map[uuid.UUID]User),
		cache: make(map[uuid.UUID]User),
	}

	for _, option := range options {
		option(s)
	}

	return s
}

func (s *CachedUserStore) InsertUser(_ context.Context, user User) error {
	s.users[user.ID] = user
	clear(s.cache)

	if s.logger != nil {
		s.logger.Debug(logMsgUserInserted, logAttrUserID, user.ID.String())
	}

	return nil
}

func (s *CachedUserStore) FindUser(_ context.Context, id uuid.UUID) (User, error) {
	if user, ok := s.cache[id]; ok {
		s.hits++
		return user, nil
	}

	user, ok := s.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}

	s.cache[id] = user

	return user, nil
}

// CacheHits returns how many lookups were served from the cache.
func (s *CachedUserStore) CacheHits() int {
	return s.hits
}
