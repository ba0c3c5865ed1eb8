package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/uptrace/bun/driver/pgdriver"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func NewPostgres(url, host string) (*sql.DB, error) {
	var connector *pgdriver.Connector
	if url != "" {
		connector = pgdriver.NewConnector(pgdriver.WithDSN(url))
	} else {
		connector = pgdriver.NewConnector(
			pgdriver.WithAddr(host),
			pgdriver.WithUser("postgres"),
			pgdriver.WithPassword("postgres"),
			pgdriver.WithDatabase("postgres"),
			pgdriver.WithInsecure(true),
		)
	}

	db := sql.OpenDB(connector)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging db: %w", err)
	}

	if err := applyMigrations(db); err != nil {
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	return db, nil
}

func applyMigrations(db *sql.DB) error {
	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return err
	}

	slog.Info("database migrations applied", "count", n)
	return nil
}
