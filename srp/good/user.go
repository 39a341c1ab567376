package good

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"slices"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
)

const (
	defaultUsersTableName = "users"
	dialectPostgres       = "postgres"
)

var (
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")
	ErrSerializingUserFailed = errors.New("serializing user failed")
	ErrWritingUserFailed     = errors.New("writing user failed")
	ErrBuildingQueryFailed   = errors.New("building query failed")
	ErrUserNotFound          = errors.New("user not found")
	ErrReadingUserFailed     = errors.New("reading user failed")
)

// User is the data carried between the serializer, the file writer and the repository.
type User struct {
	ID       uuid.UUID `json:"id"        db:"id"`
	Name     string    `json:"name"      db:"name"`
	LastName string    `json:"last_name" db:"last_name"`
}

// UserSerializer turns users into bytes and back. It does no I/O.
type UserSerializer struct {
	api jsoniter.API
}

// NewUserSerializer creates a UserSerializer producing standard JSON.
func NewUserSerializer() *UserSerializer {
	return &UserSerializer{api: jsoniter.ConfigCompatibleWithStandardLibrary}
}

// Serialize encodes user as JSON.
func (s *UserSerializer) Serialize(user User) ([]byte, error) {
	data, err := s.api.Marshal(user)
	if err != nil {
		return nil, errors.Join(ErrSerializingUserFailed, err)
	}

	return data, nil
}

// Deserialize decodes a user from JSON.
func (s *UserSerializer) Deserialize(data []byte) (User, error) {
	var user User
	if err := s.api.Unmarshal(data, &user); err != nil {
		return User{}, errors.Join(ErrSerializingUserFailed, err)
	}

	return user, nil
}

// UserFileWriter appends already serialized users to a file, one per line.
type UserFileWriter struct{}

// NewUserFileWriter creates a UserFileWriter.
func NewUserFileWriter() *UserFileWriter {
	return &UserFileWriter{}
}

// Append writes data plus a newline at the end of filename, creating the file if needed.
func (w *UserFileWriter) Append(filename string, data []byte) (err error) {
	f, openErr := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePermissions)
	if openErr != nil {
		return errors.Join(ErrWritingUserFailed, openErr)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Join(ErrWritingUserFailed, closeErr)
		}
	}()

	if _, writeErr := f.Write(append(slices.Clip(data), '\n')); writeErr != nil {
		return errors.Join(ErrWritingUserFailed, writeErr)
	}

	return nil
}

// UserRepository reads users from PostgreSQL. It neither serializes nor writes files.
type UserRepository struct {
	db        *sqlx.DB
	tableName string
}

// NewUserRepository creates a UserRepository reading from the "users" table.
func NewUserRepository(db *sqlx.DB) (*UserRepository, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return &UserRepository{db: db, tableName: defaultUsersTableName}, nil
}

// FindFirst returns the first user in the table.
func (r *UserRepository) FindFirst(ctx context.Context) (User, error) {
	query, err := BuildSelectFirstUserQuery(r.tableName)
	if err != nil {
		return User{}, err
	}

	var user User
	if err = r.db.GetContext(ctx, &user, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}

		return User{}, errors.Join(ErrReadingUserFailed, err)
	}

	return user, nil
}

// BuildSelectFirstUserQuery builds the SQL used by FindFirst.
func BuildSelectFirstUserQuery(tableName string) (string, error) {
	sqlQuery, _, err := goqu.Dialect(dialectPostgres).
		From(tableName).
		Select("id", "name", "last_name").
		Limit(1).
		ToSQL()
	if err != nil {
		return "", errors.Join(ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}
