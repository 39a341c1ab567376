package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/solid-principles-go/config"
	"github.com/AntonStoeckl/solid-principles-go/dip"
	dipbad "github.com/AntonStoeckl/solid-principles-go/dip/bad"
	dipgood "github.com/AntonStoeckl/solid-principles-go/dip/good"
)

const (
	driverPGX  = "pgx"
	driverSQL  = "sql"
	driverSQLX = "sqlx"
)

// ErrUnknownDriver is returned for a --driver value other than pgx, sql or sqlx.
var ErrUnknownDriver = errors.New("unknown database driver")

func dipCmd(a *app) *cobra.Command {
	var dsn, driver string

	cmd := &cobra.Command{
		Use:   "dip",
		Short: "Dependency inversion: research over relationships, user persistence",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			runRelationshipResearch(out)

			store, closeStore, err := userStore(cmd, a, driver, dsn)
			if err != nil {
				return err
			}
			defer closeStore()

			return runUserPersistence(cmd, out, store)
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "PostgreSQL DSN; the in-memory store is used when empty")
	cmd.Flags().StringVar(&driver, "driver", driverPGX, "database driver used with --dsn (pgx, sql, sqlx)")

	return cmd
}

func runRelationshipResearch(out io.Writer) {
	parent := dip.NewPerson("John")
	child1 := dip.NewPerson("Chris")
	child2 := dip.NewPerson("Matt")

	relationships := dipbad.NewRelationships()
	relationships.AddParentAndChild(parent, child1)
	relationships.AddParentAndChild(parent, child2)
	_, _ = fmt.Fprintln(out, "Research on the concrete store:")
	dipbad.Research(relationships, parent.Name, out)

	browser := dipgood.NewBetterRelationships()
	browser.AddParentAndChild(parent, child1)
	browser.AddParentAndChild(parent, child2)
	_, _ = fmt.Fprintln(out, "Research on the RelationshipBrowser abstraction:")
	dipgood.BetterResearch(browser, parent.Name, out)
}

func userStore(cmd *cobra.Command, a *app, driver, dsn string) (dipgood.StoresUsers, func(), error) {
	if dsn == "" {
		return dipgood.NewCachedUserStore(dipgood.WithCacheLogger(a.logger)), func() {}, nil
	}

	ctx := cmd.Context()
	options := []dipgood.PostgresOption{dipgood.WithLogger(a.logger)}

	switch driver {
	case driverPGX:
		pool, err := config.ConnectPostgresPGXPool(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}

		store, err := dipgood.NewPostgresUserStoreFromPGXPool(pool, options...)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}

		return store, pool.Close, nil

	case driverSQL:
		db, err := config.OpenPostgresSQLDB(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}

		store, err := dipgood.NewPostgresUserStoreFromSQLDB(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return store, func() { _ = db.Close() }, nil

	case driverSQLX:
		db, err := config.OpenPostgresSQLX(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}

		store, err := dipgood.NewPostgresUserStoreFromSQLX(db, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return store, func() { _ = db.Close() }, nil

	default:
		return nil, nil, errors.Join(ErrUnknownDriver, errors.New(driver))
	}
}

func runUserPersistence(cmd *cobra.Command, out io.Writer, store dipgood.StoresUsers) error {
	service, err := dipgood.NewUserPersistenceService(store)
	if err != nil {
		return err
	}

	user := dipgood.BuildUser(uuid.New(), "John", "Doe")
	if err = service.SaveUser(cmd.Context(), user); err != nil {
		return err
	}

	found, err := service.GetUser(cmd.Context(), user.ID)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Saved and loaded user %s %s (%s)\n", found.Name, found.LastName, found.ID)

	return nil
}
