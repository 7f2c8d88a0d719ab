package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/verte-zerg/coucou/internal/model"
)

// LoadStatus describes how progress was obtained.
type LoadStatus int

// Load outcomes.
const (
	// LoadOK means stored progress was read and validated.
	LoadOK LoadStatus = iota
	// LoadEmpty means nothing was stored yet.
	LoadEmpty
	// LoadReset means stored progress was unreadable and defaults apply.
	LoadReset
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadEmpty:
		return "empty"
	case LoadReset:
		return "reset"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// PersistenceError reports stored progress that failed to load.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("progress %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// LoadResult is the outcome of LoadProgress. Progress is always usable:
// it holds empty defaults unless Status is LoadOK.
type LoadResult struct {
	Progress model.Progress
	Status   LoadStatus
	Err      *PersistenceError
}

// LoadProgress reads and validates stored progress.
func (s *Store) LoadProgress(ctx context.Context) LoadResult {
	p, err := s.readProgress(ctx)
	if err != nil {
		return LoadResult{Progress: model.EmptyProgress(), Status: LoadReset, Err: &PersistenceError{Op: "read", Err: err}}
	}
	if err := p.Validate(); err != nil {
		return LoadResult{Progress: model.EmptyProgress(), Status: LoadReset, Err: &PersistenceError{Op: "validate", Err: err}}
	}
	if len(p.Earned) == 0 && len(p.Counters) == 0 && len(p.Unlocked) == 0 {
		return LoadResult{Progress: model.EmptyProgress(), Status: LoadEmpty}
	}
	return LoadResult{Progress: p, Status: LoadOK}
}

func (s *Store) readProgress(ctx context.Context) (model.Progress, error) {
	p := model.EmptyProgress()

	rows, err := s.db.QueryContext(ctx, `SELECT category, threshold FROM earned ORDER BY seq ASC`)
	if err != nil {
		return p, err
	}
	for rows.Next() {
		var e model.Earned
		if err := rows.Scan(&e.Category, &e.Threshold); err != nil {
			_ = rows.Close()
			return p, err
		}
		p.Earned = append(p.Earned, e)
	}
	if err := closeRows(rows); err != nil {
		return p, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT category, value FROM counters`)
	if err != nil {
		return p, err
	}
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			_ = rows.Close()
			return p, err
		}
		p.Counters[key] = value
	}
	if err := closeRows(rows); err != nil {
		return p, err
	}

	rows, err = s.db.QueryContext(ctx, `SELECT asset, description FROM unlocked_rewards ORDER BY seq ASC`)
	if err != nil {
		return p, err
	}
	for rows.Next() {
		var u model.Unlocked
		if err := rows.Scan(&u.Asset, &u.Description); err != nil {
			_ = rows.Close()
			return p, err
		}
		p.Unlocked = append(p.Unlocked, u)
	}
	if err := closeRows(rows); err != nil {
		return p, err
	}
	return p, nil
}

func closeRows(rows *sql.Rows) error {
	err := rows.Err()
	if cerr := rows.Close(); err == nil {
		err = cerr
	}
	return err
}

// ResetProgress deletes all stored progress.
func (s *Store) ResetProgress(ctx context.Context) error {
	return s.SaveProgress(ctx, model.EmptyProgress())
}
