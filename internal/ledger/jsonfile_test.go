package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/perdiem/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := newTestStore(t)

	entries := []model.Transaction{
		sample("a", "2024-03-15T12:00:00Z", 12.5, model.TypeAutoPayment),
		sample("b", "2024-03-16T09:00:00Z", 50, model.TypeIncome),
	}
	for _, tx := range entries {
		if err := src.Append(tx); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	path := filepath.Join(dir, "export.json")
	if err := src.Export(path); err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := newTestStore(t)
	added, err := dst.Import(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if added != 2 {
		t.Fatalf("added = %d, want 2", added)
	}

	txs, _ := dst.Transactions()
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	for _, tx := range txs {
		if tx.Type != model.TypeAutoPayment && tx.Type != model.TypeIncome {
			t.Errorf("type %q not preserved", tx.Type)
		}
	}
}

func TestImportSkipsDuplicates(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t)
	if err := store.Append(sample("a", "2024-03-15T12:00:00Z", 12.5, model.TypeExpense)); err != nil {
		t.Fatalf("append: %v", err)
	}

	data := `[
		{"id":"a","timestamp":"2024-03-15T12:00:00Z","amount":999,"type":"expense","description":"dup","source":"manual"},
		{"id":"c","timestamp":"2024-03-17T12:00:00Z","amount":7,"type":"expense","description":"new","source":"manual"},
		{"id":"","timestamp":"2024-03-18T12:00:00Z","amount":1,"type":"expense","description":"no id","source":"manual"}
	]`
	path := filepath.Join(dir, "merge.json")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	added, err := store.Import(path)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if added != 1 {
		t.Fatalf("added = %d, want 1 (duplicate and blank ids skipped)", added)
	}

	txs, _ := store.Transactions()
	for _, tx := range txs {
		if tx.ID == "a" && tx.Amount != 12.5 {
			t.Errorf("existing entry overwritten by import: %+v", tx)
		}
	}
}

func TestImportSanitizes(t *testing.T) {
	dir := t.TempDir()
	store := newTestStore(t)

	data := `[{"id":"x","timestamp":"2024-03-15T12:00:00Z","amount":-20,"type":"refund","description":"","source":"cloud"}]`
	path := filepath.Join(dir, "dirty.json")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Import(path); err != nil {
		t.Fatalf("import: %v", err)
	}

	txs, _ := store.Transactions()
	if len(txs) != 1 {
		t.Fatalf("got %d transactions, want 1", len(txs))
	}
	got := txs[0]
	if got.Amount != 20 {
		t.Errorf("amount = %v, want magnitude 20", got.Amount)
	}
	if got.Type != model.TypeExpense {
		t.Errorf("type = %q, want unknown types folded to expense", got.Type)
	}
	if got.Source != model.SourceManual {
		t.Errorf("source = %q, want unknown sources folded to manual", got.Source)
	}
	if got.Description != "Unknown" {
		t.Errorf("description = %q, want %q", got.Description, "Unknown")
	}
}

func TestImportBadFile(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Import(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("importing a missing file must fail")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Import(path); err == nil {
		t.Error("importing malformed JSON must fail")
	}
}
