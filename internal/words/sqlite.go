// internal/words/sqlite.go
//
// SQLite-backed word source.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Creating the two word tables (idempotent).
//   - Reading and importing the answer/allowed lists.
//
// Only dictionaries live here; game sessions are never written to disk.

package words

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed schema.sql
var schemaSQL string

// openDB opens (and creates if missing) a SQLite database file.
// The parent directory is created for relative paths like ./data/words.db.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func readSQLite(ctx context.Context, dsn string) (answers, allowed []string, err error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	if err := ensureSchema(ctx, db); err != nil {
		return nil, nil, err
	}
	if answers, err = queryWords(ctx, db, `SELECT word FROM answers ORDER BY word`); err != nil {
		return nil, nil, fmt.Errorf("query answers: %w", err)
	}
	if allowed, err = queryWords(ctx, db, `SELECT word FROM allowed ORDER BY word`); err != nil {
		return nil, nil, fmt.Errorf("query allowed: %w", err)
	}
	return answers, allowed, nil
}

func queryWords(ctx context.Context, db *sql.DB, q string) ([]string, error) {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// ImportSQLite writes both lists into the database at dsn in one
// transaction. Existing words are kept; duplicates are ignored.
// It returns how many new rows were inserted.
func ImportSQLite(ctx context.Context, dsn string, answers, allowed []string) (int, error) {
	db, err := openDB(dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if err := ensureSchema(ctx, db); err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	for _, set := range []struct {
		table string
		words []string
	}{{"answers", answers}, {"allowed", allowed}} {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO `+set.table+`(word) VALUES (?)`)
		if err != nil {
			return 0, fmt.Errorf("prepare %s: %w", set.table, err)
		}
		for _, w := range set.words {
			res, err := stmt.ExecContext(ctx, w)
			if err != nil {
				stmt.Close()
				return 0, fmt.Errorf("insert %s %q: %w", set.table, w, err)
			}
			c, _ := res.RowsAffected()
			n += int(c)
		}
		stmt.Close()
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	log.Info().Str("db", dsn).Int("inserted", n).Msg("words imported")
	return n, nil
}
