// Package model defines domain types for the perdiem ledger and budget.
package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TransactionType determines how a transaction affects the budget.
// Income adds to the available budget, everything else deducts.
type TransactionType string

const (
	TypeExpense     TransactionType = "expense"
	TypeIncome      TransactionType = "income"
	TypeAutoPayment TransactionType = "auto_payment"
)

// Deducts reports whether this type reduces the available budget.
func (t TransactionType) Deducts() bool {
	return t != TypeIncome
}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeExpense, TypeIncome, TypeAutoPayment:
		return true
	}
	return false
}

// Source records how a transaction entered the ledger.
type Source string

const (
	SourceManual Source = "manual"
	SourceAuto   Source = "auto"
)

// Transaction is one immutable ledger entry. Amount is always a
// non-negative magnitude; direction comes from Type alone.
type Transaction struct {
	ID          string          `json:"id"`
	Timestamp   string          `json:"timestamp"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Source      Source          `json:"source"`

	// RawNotification holds the original notification payload for
	// auto-captured entries. Diagnostics only, never used in arithmetic.
	RawNotification string `json:"rawNotification,omitempty"`
}

// NewManual builds a user-entered transaction. Negative amounts are
// folded to their magnitude; an empty description gets a type default.
func NewManual(amount float64, typ TransactionType, description string, now time.Time) Transaction {
	if description == "" {
		if typ == TypeIncome {
			description = "Income"
		} else {
			description = "Expense"
		}
	}
	return Transaction{
		ID:          "manual_" + uuid.NewString(),
		Timestamp:   now.UTC().Format(time.RFC3339),
		Amount:      math.Abs(amount),
		Type:        typ,
		Description: description,
		Source:      SourceManual,
	}
}

// BudgetSettings is the singleton budget configuration. StartDate is
// informational; the accrual always runs per calendar month.
type BudgetSettings struct {
	MonthlyBudget float64 `json:"monthlyBudget"`
	StartDate     string  `json:"startDate"`
}

// BudgetStatus is the derived state of the budget for "today".
// Recomputed on every read, never persisted.
type BudgetStatus struct {
	AvailableBudget        float64 `json:"availableBudget"`
	DailyAllowance         float64 `json:"dailyAllowance"`
	TotalSpent             float64 `json:"totalSpent"`
	TotalIncome            float64 `json:"totalIncome"`
	TotalBudgetAccumulated float64 `json:"totalBudgetAccumulated"`
	DaysElapsed            int     `json:"daysElapsed"`
	DaysRemaining          int     `json:"daysRemaining"`
	DaysInMonth            int     `json:"daysInMonth"`
}

// MonthProjection estimates where the month lands if spending stays
// on its current pace.
type MonthProjection struct {
	ProjectedEndBalance float64 `json:"projectedEndBalance"`
	SavingsRate         float64 `json:"savingsRate"`
}
