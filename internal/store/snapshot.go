// Package store provides a SQLite-backed snapshot of the last successful
// backend fetch, serving read-only screens when the backend is unreachable.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/balaji-matta18/spendbuddy/internal/api"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Snapshot is the offline cache database.
type Snapshot struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*Snapshot, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Snapshot{db: db}, nil
}

// Close closes the snapshot database.
func (s *Snapshot) Close() error {
	return s.db.Close()
}

// SaveExpenses replaces the cached expense rows with the given fetch result.
func (s *Snapshot) SaveExpenses(txs []api.Expense) error {
	return s.replace("expenses", func(tx *sql.Tx) error {
		for _, e := range txs {
			_, err := tx.Exec(`INSERT INTO expenses
				(id, title, amount, category, subcategory, payment_type, type, date)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				e.ID, e.Title, e.Amount, e.Category, e.Subcategory, e.PaymentType, e.Type, e.Date,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadExpenses reads all cached expenses, most recent date first.
func (s *Snapshot) LoadExpenses() ([]api.Expense, error) {
	rows, err := s.db.Query(`SELECT id, title, amount, category, subcategory, payment_type, type, date
		FROM expenses ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []api.Expense
	for rows.Next() {
		var e api.Expense
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.Category, &e.Subcategory,
			&e.PaymentType, &e.Type, &e.Date); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SaveCategories replaces the cached category rows.
func (s *Snapshot) SaveCategories(cats []api.Category) error {
	return s.replace("categories", func(tx *sql.Tx) error {
		for _, c := range cats {
			if _, err := tx.Exec(`INSERT INTO categories (id, name, description) VALUES (?, ?, ?)`,
				c.ID, c.Name, c.Description); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadCategories reads all cached categories.
func (s *Snapshot) LoadCategories() ([]api.Category, error) {
	rows, err := s.db.Query(`SELECT id, name, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []api.Category
	for rows.Next() {
		var c api.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SaveBudgets replaces the cached budget rows.
func (s *Snapshot) SaveBudgets(budgets []api.Budget) error {
	return s.replace("budgets", func(tx *sql.Tx) error {
		for _, b := range budgets {
			if _, err := tx.Exec(`INSERT INTO budgets (id, category, budget_amount, month) VALUES (?, ?, ?, ?)`,
				b.ID, b.Category, b.BudgetAmount, b.Month); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadBudgets reads all cached budgets.
func (s *Snapshot) LoadBudgets() ([]api.Budget, error) {
	rows, err := s.db.Query(`SELECT id, category, budget_amount, month FROM budgets ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []api.Budget
	for rows.Next() {
		var b api.Budget
		if err := rows.Scan(&b.ID, &b.Category, &b.BudgetAmount, &b.Month); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// FetchedAt returns when the named table was last refreshed.
func (s *Snapshot) FetchedAt(table string) (time.Time, bool) {
	var ts string
	err := s.db.QueryRow(`SELECT fetched_at FROM snapshot_meta WHERE table_name = ?`, table).Scan(&ts)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// replace wipes one table and refills it inside a transaction, stamping
// snapshot_meta on commit.
func (s *Snapshot) replace(table string, fill func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return err
	}
	if err := fill(tx); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.Exec(`INSERT OR REPLACE INTO snapshot_meta (table_name, fetched_at) VALUES (?, ?)`,
		table, now); err != nil {
		return err
	}

	return tx.Commit()
}
