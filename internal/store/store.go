// Package store handles SQLite persistence of progress and answers.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/coucou/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for progress and answer history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// OpenOrReset opens the database at path. A file that cannot be opened as a
// database is moved aside and replaced by a fresh one; the returned path is
// where the old file went.
func OpenOrReset(path string) (*Store, string, error) {
	st, err := Open(path)
	if err == nil {
		return st, "", nil
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return nil, "", err
	}
	moved := fmt.Sprintf("%s.corrupt-%d", path, time.Now().Unix())
	if rerr := os.Rename(path, moved); rerr != nil {
		return nil, "", fmt.Errorf("failed to move unreadable db aside: %w", errors.Join(err, rerr))
	}
	st, err = Open(path)
	if err != nil {
		return nil, moved, err
	}
	return st, moved, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS earned (
			category TEXT NOT NULL,
			threshold INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			PRIMARY KEY (category, threshold)
		);`,
		`CREATE TABLE IF NOT EXISTS counters (
			category TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS unlocked_rewards (
			seq INTEGER PRIMARY KEY,
			asset TEXT NOT NULL,
			description TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS answers (
			id INTEGER PRIMARY KEY,
			session_id TEXT NOT NULL,
			answered_at TEXT NOT NULL,
			verb TEXT NOT NULL,
			mood TEXT NOT NULL,
			tense TEXT NOT NULL,
			subject TEXT NOT NULL,
			reflexive INTEGER NOT NULL,
			expected TEXT NOT NULL,
			given TEXT NOT NULL,
			correct INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_answers_answered_at ON answers(answered_at);`,
		`CREATE INDEX IF NOT EXISTS idx_answers_session ON answers(session_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveProgress overwrites the stored progress in one transaction.
func (s *Store) SaveProgress(ctx context.Context, p model.Progress) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for _, stmt := range []string{`DELETE FROM earned`, `DELETE FROM counters`, `DELETE FROM unlocked_rewards`} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	for i, e := range p.Earned {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO earned (category, threshold, seq) VALUES (?, ?, ?)`,
			e.Category, e.Threshold, i); err != nil {
			return err
		}
	}
	for category, value := range p.Counters {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO counters (category, value) VALUES (?, ?)`,
			category, value); err != nil {
			return err
		}
	}
	for i, u := range p.Unlocked {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO unlocked_rewards (seq, asset, description) VALUES (?, ?, ?)`,
			i, u.Asset, u.Description); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// InsertAnswer appends a submitted answer to the answer log.
func (s *Store) InsertAnswer(ctx context.Context, a model.Answer) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO answers (session_id, answered_at, verb, mood, tense, subject, reflexive, expected, given, correct)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.SessionID,
		a.AnsweredAt.UTC().Format(timeLayout),
		a.Verb,
		a.Mood,
		a.Tense,
		a.Subject,
		boolToInt(a.Reflexive),
		a.Expected,
		a.Given,
		boolToInt(a.Correct),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListSessions returns session aggregates ordered by end time.
func (s *Store) ListSessions(ctx context.Context, cfg model.StatsConfig) ([]model.SessionAggregate, error) {
	where, args := sinceClause(cfg)
	query := fmt.Sprintf(`SELECT session_id, MIN(answered_at), MAX(answered_at),
		SUM(correct), SUM(1 - correct)
		FROM answers
		WHERE %s
		GROUP BY session_id
		ORDER BY MAX(answered_at) ASC`, where)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionAggregate
	for rows.Next() {
		var agg model.SessionAggregate
		var startedAt, endedAt string
		if err := rows.Scan(&agg.SessionID, &startedAt, &endedAt, &agg.Correct, &agg.Incorrect); err != nil {
			return nil, err
		}
		if agg.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
			return nil, err
		}
		if agg.EndedAt, err = time.Parse(timeLayout, endedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// TenseAggregates aggregates answers per (mood, tense) for the given sessions.
// An empty session list aggregates every answer.
func (s *Store) TenseAggregates(ctx context.Context, sessionIDs []string) ([]model.TenseAggregate, error) {
	where, args := sessionClause(sessionIDs)
	query := fmt.Sprintf(`SELECT mood, tense, SUM(correct), SUM(1 - correct)
		FROM answers
		WHERE %s
		GROUP BY mood, tense`, where)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.TenseAggregate
	for rows.Next() {
		var agg model.TenseAggregate
		if err := rows.Scan(&agg.Mood, &agg.Tense, &agg.Correct, &agg.Incorrect); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// VerbAggregates aggregates answers per verb for the given sessions.
func (s *Store) VerbAggregates(ctx context.Context, sessionIDs []string) ([]model.VerbAggregate, error) {
	where, args := sessionClause(sessionIDs)
	query := fmt.Sprintf(`SELECT verb, SUM(correct), SUM(1 - correct)
		FROM answers
		WHERE %s
		GROUP BY verb`, where)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.VerbAggregate
	for rows.Next() {
		var agg model.VerbAggregate
		if err := rows.Scan(&agg.Verb, &agg.Correct, &agg.Incorrect); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ClearAnswers deletes the answer log.
func (s *Store) ClearAnswers(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM answers`)
	return err
}

func sinceClause(cfg model.StatsConfig) (string, []any) {
	if cfg.Since == nil {
		return "1=1", nil
	}
	return "answered_at >= ?", []any{cfg.Since.UTC().Format(timeLayout)}
}

func sessionClause(sessionIDs []string) (string, []any) {
	if len(sessionIDs) == 0 {
		return "1=1", nil
	}
	placeholders := make([]string, len(sessionIDs))
	args := make([]any, len(sessionIDs))
	for i, id := range sessionIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	return fmt.Sprintf("session_id IN (%s)", strings.Join(placeholders, ",")), args
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
