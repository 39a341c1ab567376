package good

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/solid-principles-go/dip/good/internal/adapters"
)

const (
	defaultUsersTableName = "users"
	dialectPostgres       = "postgres"
	colID                 = "id"
	colName               = "name"
	colLastName           = "last_name"
)

var (
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")
	ErrEmptyTableName        = errors.New("table name must not be empty")
	ErrBuildingQueryFailed   = errors.New("building query failed")
	ErrQueryingUserFailed    = errors.New("querying user failed")
	ErrInsertingUserFailed   = errors.New("inserting user failed")
)

// PostgresUserStore is a StoresUsers backed by PostgreSQL through pgx, database/sql or sqlx.
type PostgresUserStore struct {
	db        adapters.DBAdapter
	tableName string
	logger    Logger
}

// PostgresOption defines a functional option for configuring PostgresUserStore.
type PostgresOption func(*PostgresUserStore) error

// WithTableName sets the users table name.
func WithTableName(tableName string) PostgresOption {
	return func(s *PostgresUserStore) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		s.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the PostgresUserStore.
// Debug level receives the executed SQL, Error level receives failures.
func WithLogger(logger Logger) PostgresOption {
	return func(s *PostgresUserStore) error {
		s.logger = logger
		return nil
	}
}

// NewPostgresUserStoreFromPGXPool creates a store using a pgx Pool.
func NewPostgresUserStoreFromPGXPool(db *pgxpool.Pool, options ...PostgresOption) (*PostgresUserStore, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newPostgresUserStore(adapters.NewPGXAdapter(db), options...)
}

// NewPostgresUserStoreFromSQLDB creates a store using a sql.DB.
func NewPostgresUserStoreFromSQLDB(db *sql.DB, options ...PostgresOption) (*PostgresUserStore, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newPostgresUserStore(adapters.NewSQLAdapter(db), options...)
}

// NewPostgresUserStoreFromSQLX creates a store using a sqlx.DB.
func NewPostgresUserStoreFromSQLX(db *sqlx.DB, options ...PostgresOption) (*PostgresUserStore, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newPostgresUserStore(adapters.NewSQLXAdapter(db), options...)
}

func newPostgresUserStore(db adapters.DBAdapter, options ...PostgresOption) (*PostgresUserStore, error) {
	s := &PostgresUserStore{
		db:        db,
		tableName: defaultUsersTableName,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// InsertUser inserts exactly one row.
func (s *PostgresUserStore) InsertUser(ctx context.Context, user User) error {
	sqlQuery, buildErr := BuildInsertUserQuery(s.tableName, user)
	if buildErr != nil {
		s.logError(logMsgBuildQueryFailed, buildErr, "")
		return buildErr
	}

	s.logDebugSQL(sqlQuery)

	rowsAffected, execErr := s.db.Exec(ctx, sqlQuery)
	if execErr != nil {
		s.logError(logMsgDBExecFailed, execErr, sqlQuery)
		return errors.Join(ErrInsertingUserFailed, execErr)
	}

	if rowsAffected != 1 {
		if s.logger != nil {
			s.logger.Error(logMsgUnexpectedRowsCount, logAttrRowsAffected, rowsAffected, logAttrUserID, user.ID.String())
		}

		return ErrInsertingUserFailed
	}

	if s.logger != nil {
		s.logger.Info(logMsgUserInserted, logAttrUserID, user.ID.String())
	}

	return nil
}

// FindUser loads one user by ID.
func (s *PostgresUserStore) FindUser(ctx context.Context, id uuid.UUID) (User, error) {
	sqlQuery, buildErr := BuildSelectUserQuery(s.tableName, id)
	if buildErr != nil {
		s.logError(logMsgBuildQueryFailed, buildErr, "")
		return User{}, buildErr
	}

	s.logDebugSQL(sqlQuery)

	var rawID, name, lastName string

	scanErr := s.db.QueryRow(ctx, sqlQuery).Scan(&rawID, &name, &lastName)
	if errors.Is(scanErr, adapters.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if scanErr != nil {
		s.logError(logMsgDBQueryFailed, scanErr, sqlQuery)
		return User{}, errors.Join(ErrQueryingUserFailed, scanErr)
	}

	userID, parseErr := uuid.Parse(rawID)
	if parseErr != nil {
		return User{}, errors.Join(ErrQueryingUserFailed, parseErr)
	}

	if s.logger != nil {
		s.logger.Info(logMsgUserLoaded, logAttrUserID, rawID)
	}

	return BuildUser(userID, name, lastName), nil
}

// BuildInsertUserQuery renders the INSERT statement for one user.
func BuildInsertUserQuery(tableName string, user User) (string, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(tableName).
		Rows(goqu.Record{
			colID:       user.ID.String(),
			colName:     user.Name,
			colLastName: user.LastName,
		})

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// BuildSelectUserQuery renders the SELECT statement loading one user by ID.
func BuildSelectUserQuery(tableName string, id uuid.UUID) (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(tableName).
		Select(colID, colName, colLastName).
		Where(goqu.C(colID).Eq(id.String()))

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (s *PostgresUserStore) logDebugSQL(sqlQuery string) {
	if s.logger != nil {
		s.logger.Debug(logMsgExecutedSQL, logAttrQuery, sqlQuery)
	}
}

func (s *PostgresUserStore) logError(msg string, err error, sqlQuery string) {
	if s.logger == nil {
		return
	}

	if sqlQuery == "" {
		s.logger.Error(msg, logAttrError, err.Error())
		return
	}

	s.logger.Error(msg, logAttrError, err.Error(), logAttrQuery, sqlQuery)
}
