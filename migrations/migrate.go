package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/portfolio-server/internal/logger"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// gooseLogger sends goose output to the application log.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Migrate applies the embedded migrations for dialect ("postgres" or "sqlite3").
// A nil log falls back to a discarding logger.
func Migrate(db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, gooseDialect, err := migrationsFor(dialect)
	if err != nil {
		return err
	}

	if log == nil {
		log = logger.Nop()
	}
	child := log.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("component", "goose")
	})
	goose.SetLogger(gooseLogger{log: child})
	goose.SetBaseFS(embedMigrations)

	if err = goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsFor(dialect string) (dir string, gooseDialect string, err error) {
	switch dialect {
	case "postgres", "pgx":
		return "postgres", "pgx", nil
	case "sqlite3", "sqlite":
		return "sqlite", "sqlite3", nil
	}
	return "", "", fmt.Errorf("migration error: unsupported dialect %q", dialect)
}
