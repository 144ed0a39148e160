package budget

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fin-tools/finsight/pkg/models/store"
	"github.com/fin-tools/finsight/pkg/store/sqlite"
)

// Store provides read and write access to monthly category budgets.
type Store interface {
	List(ctx context.Context) ([]store.Budget, error)
	Add(ctx context.Context, b store.Budget) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type budgetStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &budgetStore{db: db}, nil
}

func (s *budgetStore) List(ctx context.Context) ([]store.Budget, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, category, amount, month FROM budgets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	records := make([]store.Budget, 0)
	for rows.Next() {
		var b store.Budget
		if err := rows.Scan(&b.ID, &b.Category, &b.Amount, &b.Month); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		records = append(records, b)
	}
	return records, rows.Err()
}

func (s *budgetStore) Add(ctx context.Context, b store.Budget) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO budgets (category, amount, month) VALUES (?, ?, ?)`,
		b.Category, b.Amount, b.Month)
	if err != nil {
		return 0, fmt.Errorf("insert budget: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("budget id: %w", err)
	}
	return id, nil
}

func (s *budgetStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	if affected == 0 {
		return sqlite.ErrNotFound
	}
	return nil
}
