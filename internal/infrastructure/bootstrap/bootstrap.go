// Package bootstrap provisions the application database on first start.
// It creates the database when missing and brings the schema to the
// current migration version. Both steps are idempotent, so running them
// on every start is safe.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/flowershop/backend/internal/infrastructure/config"
	"github.com/flowershop/backend/internal/infrastructure/migration"
)

// identifierPattern matches database names safe to splice into CREATE DATABASE.
// The statement cannot be parameterized, so the name is validated instead.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// EnsureDatabase creates the named database if it does not exist.
// The connection must point at a maintenance database such as postgres,
// since a database cannot be created from a connection into itself.
func EnsureDatabase(ctx context.Context, adminDB *sql.DB, name string, logger *zap.Logger) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("invalid database name %q", name)
	}

	var exists int
	err := adminDB.QueryRowContext(ctx, "SELECT 1 FROM pg_database WHERE datname = $1", name).Scan(&exists)
	if err == nil {
		logger.Info("Database already exists", zap.String("database", name))
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check for database %s: %w", name, err)
	}

	logger.Info("Creating database", zap.String("database", name))
	if _, err := adminDB.ExecContext(ctx, fmt.Sprintf(`CREATE DATABASE "%s"`, name)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", name, err)
	}

	logger.Info("Database created", zap.String("database", name))
	return nil
}

// Run provisions the database and applies all pending migrations
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	adminDB, err := sql.Open("postgres", cfg.Database.AdminDSN(cfg.Bootstrap.AdminDBName))
	if err != nil {
		return fmt.Errorf("failed to open admin connection: %w", err)
	}
	defer adminDB.Close()

	if err := adminDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database server: %w", err)
	}

	if err := EnsureDatabase(ctx, adminDB, cfg.Database.DBName, logger); err != nil {
		return err
	}

	migrator, err := migration.NewFromURL(cfg.Database.DSN(), cfg.Bootstrap.MigrationsPath, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}
	defer migrator.Close()

	return migrator.Up()
}
