package database

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hashicorp/go-multierror"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Bento is the shared database handle; every dbhelper query goes through it.
var Bento *sqlx.DB

func ConnectAndMigrate(host, port, databaseName, user, password, sslMode, migrationPath string) error {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, databaseName, sslMode)

	db, err := sqlx.Open("postgres", connStr)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	Bento = db
	return migrateUp(db, migrationPath)
}

func migrateUp(db *sqlx.DB, migrationPath string) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationPath), "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Tx runs fn inside a transaction so the statements either commit together
// or fail together.
func Tx(fn func(tx *sql.Tx) error) error {
	tx, err := Bento.Begin()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return multierror.Append(err, rollbackErr)
		}
		return err
	}

	return tx.Commit()
}

func ShutdownDatabase() error {
	return Bento.Close()
}
