package good_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/solid-principles-go/dip/good"
)

func Test_NewPostgresUserStore_RejectsNilConnections(t *testing.T) {
	_, pgxErr := good.NewPostgresUserStoreFromPGXPool(nil)
	assert.ErrorIs(t, pgxErr, good.ErrNilDatabaseConnection)

	_, sqlErr := good.NewPostgresUserStoreFromSQLDB(nil)
	assert.ErrorIs(t, sqlErr, good.ErrNilDatabaseConnection)

	_, sqlxErr := good.NewPostgresUserStoreFromSQLX(nil)
	assert.ErrorIs(t, sqlxErr, good.ErrNilDatabaseConnection)
}

func Test_BuildInsertUserQuery(t *testing.T) {
	// arrange
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	// act
	sqlQuery, err := good.BuildInsertUserQuery("users", good.BuildUser(id, "John", "Doe"))

	// assert
	require.NoError(t, err)
	assert.Equal(
		t,
		`INSERT INTO "users" ("id", "last_name", "name") VALUES ('6ba7b810-9dad-11d1-80b4-00c04fd430c8', 'Doe', 'John')`,
		sqlQuery,
	)
}

func Test_BuildSelectUserQuery(t *testing.T) {
	// arrange
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	// act
	sqlQuery, err := good.BuildSelectUserQuery("users", id)

	// assert
	require.NoError(t, err)
	assert.Equal(
		t,
		`SELECT "id", "name", "last_name" FROM "users" WHERE ("id" = '6ba7b810-9dad-11d1-80b4-00c04fd430c8')`,
		sqlQuery,
	)
}

func Test_BuildInsertUserQuery_EscapesQuotes(t *testing.T) {
	sqlQuery, err := good.BuildInsertUserQuery("users", good.BuildUser(uuid.New(), "Shaquille", "O'Neal"))

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `'O''Neal'`)
}
