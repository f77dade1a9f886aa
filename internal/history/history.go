// Package history records which recipes were planned on which dates in a
// local SQLite database, powering the stats command. The history is an
// append-only ledger; plan construction itself never reads it.
package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/papapumpkin/averse/internal/mealplan"
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS plan_events (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    plan_start  TEXT NOT NULL,
    meal_date   TEXT NOT NULL,
    recipe      TEXT NOT NULL,
    recorded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_plan_events_recipe ON plan_events(recipe);
`

// Store is a SQLite-backed usage-history ledger in WAL mode.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the history database at dbPath, enables WAL mode
// and busy timeout, and creates the schema if it does not exist.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	// One connection: SQLite has a single writer, and a lone pooled
	// connection avoids SQLITE_BUSY between connections that each need
	// their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordPlan appends one event per plan assignment in a single transaction.
// Re-planning the same start date replaces that plan's previous events so
// the ledger reflects the plan actually on disk.
func (s *Store) RecordPlan(ctx context.Context, p *mealplan.Plan) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("history: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM plan_events WHERE plan_start = ?", p.Start.String()); err != nil {
		return fmt.Errorf("history: clear previous events for %s: %w", p.Start, err)
	}

	const q = `INSERT INTO plan_events (plan_start, meal_date, recipe) VALUES (?, ?, ?)`
	for _, a := range p.Assignments {
		if _, err := tx.ExecContext(ctx, q, p.Start.String(), a.Date.String(), a.Recipe); err != nil {
			return fmt.Errorf("history: record %q on %s: %w", a.Recipe, a.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("history: commit: %w", err)
	}
	return nil
}

// Usage summarizes how often a recipe has been planned.
type Usage struct {
	Recipe    string
	TimesUsed int
	LastDate  string // YYYY-MM-DD of the most recent assignment
}

// RecipeUsage returns per-recipe usage counts, most-used first, ties by
// recipe name.
func (s *Store) RecipeUsage(ctx context.Context) ([]Usage, error) {
	const q = `
		SELECT recipe, COUNT(*), MAX(meal_date)
		FROM plan_events
		GROUP BY recipe
		ORDER BY COUNT(*) DESC, recipe ASC`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("history: query usage: %w", err)
	}
	defer rows.Close()

	var out []Usage
	for rows.Next() {
		var u Usage
		if err := rows.Scan(&u.Recipe, &u.TimesUsed, &u.LastDate); err != nil {
			return nil, fmt.Errorf("history: scan usage row: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate usage rows: %w", err)
	}
	return out, nil
}
