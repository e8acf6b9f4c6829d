// Package ledger provides the SQLite-backed transaction store.
package ledger

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/perdiem/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store holds the transaction ledger and the budget settings blob.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the ledger database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append stores a transaction. Appending an id that already exists
// replaces the row, which gives merges id-based deduplication for free.
func (s *Store) Append(tx model.Transaction) error {
	var raw any
	if tx.RawNotification != "" {
		raw = tx.RawNotification
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO transactions
		(id, timestamp, amount, type, description, source, raw_notification, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.Timestamp, tx.Amount, string(tx.Type), tx.Description,
		string(tx.Source), raw, time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Transactions returns the full ledger, newest first.
func (s *Store) Transactions() ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT id, timestamp, amount, type, description, source, raw_notification
		FROM transactions ORDER BY timestamp DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txs []model.Transaction
	for rows.Next() {
		var tx model.Transaction
		var typ, source string
		var raw sql.NullString
		if err := rows.Scan(&tx.ID, &tx.Timestamp, &tx.Amount, &typ, &tx.Description, &source, &raw); err != nil {
			return nil, err
		}
		tx.Type = model.TransactionType(typ)
		tx.Source = model.Source(source)
		if raw.Valid {
			tx.RawNotification = raw.String
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// Update edits the amount and/or description of one transaction.
// Nil fields are left untouched; amounts are folded to magnitudes.
func (s *Store) Update(id string, amount *float64, description *string) error {
	if amount == nil && description == nil {
		return nil
	}
	if amount != nil {
		abs := math.Abs(*amount)
		if _, err := s.db.Exec("UPDATE transactions SET amount = ? WHERE id = ?", abs, id); err != nil {
			return err
		}
	}
	if description != nil {
		if _, err := s.db.Exec("UPDATE transactions SET description = ? WHERE id = ?", *description, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes one transaction by id.
func (s *Store) Delete(id string) error {
	_, err := s.db.Exec("DELETE FROM transactions WHERE id = ?", id)
	return err
}

// Clear removes every transaction, keeping the budget settings.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM transactions")
	return err
}

// Count returns the number of ledger entries.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}

// SaveSettings replaces the budget settings wholesale.
func (s *Store) SaveSettings(settings model.BudgetSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	_, err = s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`,
		settingsKeyBudget, string(data))
	return err
}

// Settings returns the budget settings, or nil when none are saved yet.
func (s *Store) Settings() (*model.BudgetSettings, error) {
	var data string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", settingsKeyBudget).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var settings model.BudgetSettings
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return &settings, nil
}
