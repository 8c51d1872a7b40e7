// Package migrations применяет схему БД, встроенную в бинарник
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

const migrationsDir = "sql"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator обёртка над goose
type Migrator struct {
	db     *sql.DB
	logger Logger
}

// NewMigrator создаёт новый мигратор
func NewMigrator(db *sql.DB, logger Logger) (*Migrator, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	goose.SetBaseFS(migrationsFS)

	return &Migrator{db: db, logger: logger}, nil
}

// Up применяет все pending миграции
func (m *Migrator) Up(ctx context.Context) error {
	m.logger.Info("Applying database migrations...")

	if err := goose.UpContext(ctx, m.db, migrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := m.Version(ctx)
	if err != nil {
		return err
	}

	m.logger.Info("Migrations applied, schema version %d", version)
	return nil
}

// Version показывает текущую версию миграций
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	version, err := goose.GetDBVersionContext(ctx, m.db)
	if err != nil {
		return 0, fmt.Errorf("get version: %w", err)
	}
	return version, nil
}
