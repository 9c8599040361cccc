package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/pflag"
)

const (
	dsnFlag        = "dsn"
	migrationsFlag = "migrations-path"

	defaultMigrationsPath = "migrations"
)

func main() {
	dsn, migrationsPath := getFlagsValues()

	if dsn == "" {
		slog.Error(fmt.Sprintf("--%s flag: required", dsnFlag))
		fallDown()
	}

	applyCardsSchema(dsn, migrationsPath)
}

type MigrationLogger struct {
	logger  *slog.Logger
	verbose bool
}

func NewMigrationLogger() *MigrationLogger {
	return &MigrationLogger{
		logger:  slog.Default(),
		verbose: true,
	}
}

func (ml *MigrationLogger) Printf(format string, v ...any) {
	ml.logger.Info(fmt.Sprintf(format, v...))
}

func (ml *MigrationLogger) Verbose() bool {
	return ml.verbose
}

func getFlagsValues() (dsn, migrations string) {
	dsnValue := pflag.StringP(
		dsnFlag, "d", "", "postgres DSN of the storefront cards database",
	)
	migrationsValue := pflag.StringP(
		migrationsFlag, "m", defaultMigrationsPath,
		"path to the cards schema migration files",
	)
	pflag.Parse()
	return *dsnValue, *migrationsValue
}

func applyCardsSchema(dsn, migrationsPath string) {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		fmt.Sprintf("pgx5://%s", dsn),
	)
	if err != nil {
		slog.Error("failed to init cards schema migration", "err", err)
		fallDown()
	}

	m.Log = NewMigrationLogger()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.Log.Printf("cards schema is up to date")
			return
		}
		slog.Error("failed to apply cards schema migration", "err", err)
		fallDown()
	}
	m.Log.Printf("cards schema migration applied")
}

func fallDown() {
	os.Exit(2)
}
