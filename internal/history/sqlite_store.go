package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	// Pure Go SQLite driver, registers as "sqlite".
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS history (
	seq          INTEGER PRIMARY KEY AUTOINCREMENT,
	id           TEXT NOT NULL,
	timestamp    TEXT NOT NULL,
	original     TEXT NOT NULL,
	reformulated TEXT NOT NULL,
	tone         TEXT NOT NULL DEFAULT '',
	format       TEXT NOT NULL DEFAULT '',
	length       TEXT NOT NULL DEFAULT ''
)`

// SQLiteStore keeps the history in a SQLite table, trimming old rows on every
// append.
type SQLiteStore struct {
	db    *sql.DB
	limit int
}

func NewSQLiteStore(path string, limit int) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history path must be provided")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create history directory")
	}

	// modernc.org/sqlite expects each pragma prefixed with _pragma=.
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, errors.Wrapf(err, "open history db %s", path)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create history table")
	}

	return &SQLiteStore{db: db, limit: limit}, nil
}

func (s *SQLiteStore) Append(ctx context.Context, entry Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin history append")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO history (id, timestamp, original, reformulated, tone, format, length) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Timestamp, entry.Original, entry.Reformulated,
		entry.Parameters.Tone, entry.Parameters.Format, entry.Parameters.Length,
	)
	if err != nil {
		return errors.Wrap(err, "insert history entry")
	}

	if s.limit > 0 {
		_, err = tx.ExecContext(ctx,
			`DELETE FROM history WHERE seq NOT IN (SELECT seq FROM history ORDER BY seq DESC LIMIT ?)`,
			s.limit,
		)
		if err != nil {
			return errors.Wrap(err, "trim history")
		}
	}

	return errors.Wrap(tx.Commit(), "commit history append")
}

func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, timestamp, original, reformulated, tone, format, length FROM (
			SELECT * FROM history ORDER BY seq DESC LIMIT ?
		) ORDER BY seq ASC`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query history")
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Original, &e.Reformulated,
			&e.Parameters.Tone, &e.Parameters.Format, &e.Parameters.Length); err != nil {
			return nil, errors.Wrap(err, "scan history entry")
		}
		entries = append(entries, e)
	}
	return entries, errors.Wrap(rows.Err(), "iterate history")
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM history`)
	return errors.Wrap(err, "clear history")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Store = (*SQLiteStore)(nil)
