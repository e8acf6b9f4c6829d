package ledger

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/theirongolddev/perdiem/internal/model"
)

// Export writes the full ledger to a JSON file, newest first.
func (s *Store) Export(path string) error {
	txs, err := s.Transactions()
	if err != nil {
		return fmt.Errorf("reading ledger: %w", err)
	}
	data, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Import merges transactions from a JSON file into the ledger,
// skipping ids that already exist. Returns the number added.
func (s *Store) Import(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	var incoming []struct {
		ID          string  `json:"id"`
		Timestamp   string  `json:"timestamp"`
		Amount      float64 `json:"amount"`
		Type        string  `json:"type"`
		Description string  `json:"description"`
		Source      string  `json:"source"`
	}
	if err := json.Unmarshal(data, &incoming); err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	existing, err := s.Transactions()
	if err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, tx := range existing {
		seen[tx.ID] = struct{}{}
	}

	added := 0
	for _, in := range incoming {
		if in.ID == "" {
			continue
		}
		if _, dup := seen[in.ID]; dup {
			continue
		}
		tx := importedTransaction(in.ID, in.Timestamp, in.Amount, in.Type, in.Description, in.Source)
		if err := s.Append(tx); err != nil {
			return added, err
		}
		seen[in.ID] = struct{}{}
		added++
	}
	return added, nil
}

// importedTransaction sanitizes one imported record: unknown types
// become expenses, amounts become magnitudes, blanks get defaults.
func importedTransaction(id, timestamp string, amount float64, typ, description, source string) model.Transaction {
	txType := model.TransactionType(typ)
	if !txType.Valid() {
		txType = model.TypeExpense
	}
	txSource := model.Source(source)
	if txSource != model.SourceManual && txSource != model.SourceAuto {
		txSource = model.SourceManual
	}
	if description == "" {
		description = "Unknown"
	}
	return model.Transaction{
		ID:          id,
		Timestamp:   timestamp,
		Amount:      math.Abs(amount),
		Type:        txType,
		Description: description,
		Source:      txSource,
	}
}
