package good

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user store has no user with the requested ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrNilUserStore is returned when a UserPersistenceService is created without a store.
	ErrNilUserStore = errors.New("user store must not be nil")
)

// User is the entity persisted by UserPersistenceService.
type User struct {
	ID       uuid.UUID
	Name     string
	LastName string
}

// BuildUser is a factory method for User.
func BuildUser(id uuid.UUID, name string, lastName string) User {
	return User{ID: id, Name: name, LastName: lastName}
}

// StoresUsers is the abstraction UserPersistenceService depends on.
// CachedUserStore and PostgresUserStore are the low-level modules implementing it.
type StoresUsers interface {
	InsertUser(ctx context.Context, user User) error
	FindUser(ctx context.Context, id uuid.UUID) (User, error)
}

// UserPersistenceService is the high-level module. It never sees SQL or a concrete connection.
type UserPersistenceService struct {
	store      StoresUsers
	savedUsers []User
}

// NewUserPersistenceService creates a service backed by store.
func NewUserPersistenceService(store StoresUsers) (*UserPersistenceService, error) {
	if store == nil {
		return nil, ErrNilUserStore
	}

	return &UserPersistenceService{store: store, savedUsers: make([]User, 0)}, nil
}

// SaveUser inserts the user and remembers it as saved.
func (s *UserPersistenceService) SaveUser(ctx context.Context, user User) error {
	if err := s.store.InsertUser(ctx, user); err != nil {
		return err
	}

	s.savedUsers = append(s.savedUsers, user)

	return nil
}

// GetUser loads a user by ID.
func (s *UserPersistenceService) GetUser(ctx context.Context, id uuid.UUID) (User, error) {
	return s.store.FindUser(ctx, id)
}

// SavedUsers returns a copy of the users saved through this service, in save order.
func (s *UserPersistenceService) SavedUsers() []User {
	return slices.Clone(s.savedUsers)
}
