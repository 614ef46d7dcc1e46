package migration

import (
	"database/sql"
	"os"
	"path/filepath"

	"aushealthsim/internal/pkg/exceptions"

	migrate "github.com/rubenv/sql-migrate"
)

const dialect = "mssql"

// Run applies the SQL migrations in dir and returns how many were
// applied. With drop set, every down migration runs first so the
// schema is rebuilt from scratch.
func Run(db *sql.DB, dir string, drop bool) (int, error) {
	if !filepath.IsAbs(dir) {
		wd, err := os.Getwd()
		if err != nil {
			return 0, exceptions.ErrDatabaseMigration(err)
		}
		dir = filepath.Join(wd, dir)
	}

	migrations := &migrate.FileMigrationSource{
		Dir: dir,
	}

	if drop {
		if _, err := migrate.ExecMax(db, dialect, migrations, migrate.Down, 0); err != nil {
			return 0, exceptions.ErrDatabaseMigration(err)
		}
	}

	n, err := migrate.Exec(db, dialect, migrations, migrate.Up)
	if err != nil {
		return 0, exceptions.ErrDatabaseMigration(err)
	}
	return n, nil
}
