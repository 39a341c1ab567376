// Package task is a dependency inversion exercise: refactor the code below so that
// UserPersistenceService no longer depends on a concrete database connection.
package task

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

const dummyResult = "dummy result"

// CachedSQLDatabaseConnection is a concrete, low-level connection with a naive query cache.
type CachedSQLDatabaseConnection struct {
	cachedQueries map[string]string
	out           io.Writer
}

// NewCachedSQLDatabaseConnection creates a connection narrating its statements to out.
func NewCachedSQLDatabaseConnection(out io.Writer) *CachedSQLDatabaseConnection {
	return &CachedSQLDatabaseConnection{
		cachedQueries: make(map[string]string),
		out:           out,
	}
}

// DoSelect caches the query and returns the previously cached result, "" on a cache miss.
func (c *CachedSQLDatabaseConnection) DoSelect(sqlString string) string {
	_, _ = fmt.Fprintf(c.out, "Selecting from DB. SQL String: %s\n", sqlString)

	previous, ok := c.cachedQueries[sqlString]
	if !ok {
		c.cachedQueries[sqlString] = "dummy select result"
	}

	return previous
}

func (c *CachedSQLDatabaseConnection) DoDelete(sqlString string) string {
	_, _ = fmt.Fprintf(c.out, "Deleting from DB. SQL String: %s\n", sqlString)
	clear(c.cachedQueries)

	return dummyResult
}

func (c *CachedSQLDatabaseConnection) DoInsert(sqlString string) string {
	_, _ = fmt.Fprintf(c.out, "Inserting into DB. SQL String: %s\n", sqlString)
	clear(c.cachedQueries)

	return dummyResult
}

func (c *CachedSQLDatabaseConnection) DoUpdate(sqlString string) string {
	_, _ = fmt.Fprintf(c.out, "Updating DB. SQL String: %s\n", sqlString)
	clear(c.cachedQueries)

	return dummyResult
}

// CachedQueries exposes the cache.
func (c *CachedSQLDatabaseConnection) CachedQueries() map[string]string {
	return c.cachedQueries
}

type User struct {
	ID       uuid.UUID
	Name     string
	LastName string
}

func (u User) String() string {
	return fmt.Sprintf("User{id=%s, name=%s, lastName=%s}", u.ID, u.Name, u.LastName)
}

// UserPersistenceService depends directly on the concrete connection type.
type UserPersistenceService struct {
	databaseConnection *CachedSQLDatabaseConnection
	savedUsers         []User
}

func NewUserPersistenceService(databaseConnection *CachedSQLDatabaseConnection) *UserPersistenceService {
	return &UserPersistenceService{databaseConnection: databaseConnection}
}

func (s *UserPersistenceService) SaveUser(user User) {
	s.databaseConnection.DoInsert(user.String())
	s.savedUsers = append(s.savedUsers, user)
}

func (s *UserPersistenceService) GetUser(user User) string {
	return s.databaseConnection.DoSelect(user.String())
}

func (s *UserPersistenceService) SavedUsers() []User {
	return s.savedUsers
}
