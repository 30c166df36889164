package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sqlite handle and owns all persistence operations.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (or creates) the database file, verifies the connection and
// ensures the schema exists. Safe to call on every startup.
func Open(ctx context.Context, path string) (*Database, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database %s: %w", path, err)
	}
	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	d.migrate(ctx)
	return d, nil
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	return d.DB.Close()
}

// Path returns the database file path.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) createTables(ctx context.Context) error {
	// Date columns are TEXT, not DATE: the driver converts DATE-typed
	// columns to time.Time and the ISO strings would not round-trip.
	queries := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			product TEXT,
			business_owner TEXT,
			scrum_master TEXT,
			platforms TEXT,
			planned_go_live TEXT,
			status TEXT,
			delivery_month TEXT,
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS milestones (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			milestone_type TEXT NOT NULL,
			planned_date TEXT,
			revised_date TEXT,
			delay_reason TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects (id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS resources (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			person_name TEXT NOT NULL,
			role TEXT NOT NULL,
			phase TEXT NOT NULL,
			allocation_pct INTEGER,
			end_rule TEXT DEFAULT 'Till Go-Live',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects (id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// migrate applies additive column migrations for databases created by older
// builds. Errors are ignored: the column already existing is the normal case.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE projects ADD COLUMN scrum_master TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE projects ADD COLUMN platforms TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE projects ADD COLUMN delivery_month TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE projects ADD COLUMN notes TEXT")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE resources ADD COLUMN end_rule TEXT DEFAULT 'Till Go-Live'")
}

// WithTx runs fn inside a transaction, rolling back on error.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
