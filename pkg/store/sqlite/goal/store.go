package goal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fin-tools/finsight/pkg/models/store"
	"github.com/fin-tools/finsight/pkg/store/sqlite"
)

// Store provides read and write access to savings goals. List preserves
// insertion order; the suggestion engine relies on it for tie-breaking.
type Store interface {
	List(ctx context.Context) ([]store.Goal, error)
	Add(ctx context.Context, g store.Goal) (int64, error)
	AddProgress(ctx context.Context, id int64, increment float64) error
	Delete(ctx context.Context, id int64) error
}

type goalStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &goalStore{db: db}, nil
}

func (s *goalStore) List(ctx context.Context) ([]store.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, target, current FROM goals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	records := make([]store.Goal, 0)
	for rows.Next() {
		var g store.Goal
		if err := rows.Scan(&g.ID, &g.Name, &g.Target, &g.Current); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		records = append(records, g)
	}
	return records, rows.Err()
}

func (s *goalStore) Add(ctx context.Context, g store.Goal) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO goals (name, target, current) VALUES (?, ?, ?)`,
		g.Name, g.Target, g.Current)
	if err != nil {
		return 0, fmt.Errorf("insert goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("goal id: %w", err)
	}
	return id, nil
}

func (s *goalStore) AddProgress(ctx context.Context, id int64, increment float64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE goals SET current = current + ? WHERE id = ?`, increment, id)
	if err != nil {
		return fmt.Errorf("update goal progress: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update goal progress: %w", err)
	}
	if affected == 0 {
		return sqlite.ErrNotFound
	}
	return nil
}

func (s *goalStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if affected == 0 {
		return sqlite.ErrNotFound
	}
	return nil
}
