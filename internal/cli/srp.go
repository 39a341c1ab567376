package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/solid-principles-go/config"
	srpgood "github.com/AntonStoeckl/solid-principles-go/srp/good"
)

func srpCmd(a *app) *cobra.Command {
	var (
		filename  string
		overwrite bool
		usersFile string
		dsn       string
	)

	cmd := &cobra.Command{
		Use:   "srp",
		Short: "Single responsibility: journal, persistence and the user split",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			journal := srpgood.NewJournal()
			journal.AddEntry("I cried today")
			journal.AddEntry("I ate a bug")
			_, _ = fmt.Fprintln(out, journal)

			persistence := srpgood.NewPersistence[*srpgood.Journal](srpgood.WithLogger(a.logger))
			if err := persistence.SaveToFile(journal, filename, overwrite); err != nil {
				return err
			}

			user, err := loadUser(cmd.Context(), dsn)
			if err != nil {
				return err
			}

			data, err := srpgood.NewUserSerializer().Serialize(user)
			if err != nil {
				return err
			}

			if err = srpgood.NewUserFileWriter().Append(usersFile, data); err != nil {
				return err
			}

			a.logger.Info("user appended", "file", usersFile, "user_id", user.ID.String())
			_, _ = fmt.Fprintf(out, "Serialized user: %s\n", data)

			return nil
		},
	}

	cmd.Flags().StringVar(&filename, "file", filepath.Join(os.TempDir(), "journal.txt"), "file the journal is saved to")
	cmd.Flags().BoolVar(&overwrite, "overwrite", true, "overwrite the file if it exists")
	cmd.Flags().StringVar(&usersFile, "users-file", filepath.Join(os.TempDir(), "users.jsonl"), "file serialized users are appended to")
	cmd.Flags().StringVar(&dsn, "dsn", "", "PostgreSQL DSN to read the first user from; a sample user is used when empty")

	return cmd
}

// loadUser reads the first user through the sqlx repository, or builds a sample user without a DSN.
func loadUser(ctx context.Context, dsn string) (srpgood.User, error) {
	if dsn == "" {
		return srpgood.User{ID: uuid.New(), Name: "John", LastName: "Doe"}, nil
	}

	db, err := config.OpenPostgresSQLX(ctx, dsn)
	if err != nil {
		return srpgood.User{}, err
	}
	defer func() { _ = db.Close() }()

	repository, err := srpgood.NewUserRepository(db)
	if err != nil {
		return srpgood.User{}, err
	}

	return repository.FindFirst(ctx)
}
