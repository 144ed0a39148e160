package transaction

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fin-tools/finsight/pkg/models/store"
	"github.com/fin-tools/finsight/pkg/store/sqlite"
)

// Store provides read and write access to transaction records.
type Store interface {
	List(ctx context.Context) ([]store.Transaction, error)
	Add(ctx context.Context, t store.Transaction) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type transactionStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &transactionStore{db: db}, nil
}

func (s *transactionStore) List(ctx context.Context) ([]store.Transaction, error) {
	query := `
		SELECT id, date, description, amount, type, category
		FROM transactions
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	records := make([]store.Transaction, 0)
	for rows.Next() {
		var t store.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.Amount, &t.Type, &t.Category); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		records = append(records, t)
	}
	return records, rows.Err()
}

func (s *transactionStore) Add(ctx context.Context, t store.Transaction) (int64, error) {
	query := `
		INSERT INTO transactions (date, description, amount, type, category)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := s.db.ExecContext(ctx, query, t.Date, t.Description, t.Amount, t.Type, t.Category)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("transaction id: %w", err)
	}
	return id, nil
}

func (s *transactionStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if affected == 0 {
		return sqlite.ErrNotFound
	}
	return nil
}
