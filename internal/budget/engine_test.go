package budget

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/theirongolddev/perdiem/internal/model"
)

const eps = 1e-9

func tx(ts string, amount float64, typ model.TransactionType) model.Transaction {
	return model.Transaction{
		ID:          ts,
		Timestamp:   ts,
		Amount:      amount,
		Type:        typ,
		Description: "test",
		Source:      model.SourceManual,
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2023, time.February, 28},
		{2024, time.February, 29},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2024, time.April, 30},
		{2024, time.January, 31},
		{2024, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDailyAllowance_February(t *testing.T) {
	now := time.Date(2023, time.February, 1, 10, 0, 0, 0, time.UTC)
	got := DailyAllowance(310, now)
	want := 310.0 / 28.0
	if math.Abs(got-want) > eps {
		t.Errorf("DailyAllowance(310, feb) = %v, want %v", got, want)
	}
}

// Summing the allowance over every day of the month reconstructs the
// monthly budget, whatever the month length.
func TestDailyAllowance_SumsToBudget(t *testing.T) {
	months := []time.Time{
		time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, now := range months {
		days := DaysInMonth(now.Year(), now.Month())
		total := DailyAllowance(500, now) * float64(days)
		if math.Abs(total-500) > 1e-6 {
			t.Errorf("%v: allowance*%d = %v, want 500", now.Month(), days, total)
		}
	}
}

func TestDaysRemaining(t *testing.T) {
	tests := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC), 30},
		{time.Date(2024, time.April, 10, 12, 0, 0, 0, time.UTC), 21},
		{time.Date(2024, time.April, 30, 23, 59, 0, 0, time.UTC), 1},
		{time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), 1},
	}
	for _, tt := range tests {
		if got := DaysRemaining(tt.now); got != tt.want {
			t.Errorf("DaysRemaining(%v) = %d, want %d", tt.now, got, tt.want)
		}
	}
}

func TestCalculate_MidMonth(t *testing.T) {
	// Day 10 of a 30-day month, budget 300: 100 accrued, 30 spent,
	// 50 income.
	now := time.Date(2024, time.April, 10, 18, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		tx("2024-04-05T12:00:00Z", 30, model.TypeExpense),
		tx("2024-04-07T09:00:00Z", 50, model.TypeIncome),
	}

	status := Calculate(transactions, 300, now)

	if math.Abs(status.AvailableBudget-120) > eps {
		t.Errorf("available = %v, want 120", status.AvailableBudget)
	}
	if math.Abs(status.DailyAllowance-10) > eps {
		t.Errorf("allowance = %v, want 10", status.DailyAllowance)
	}
	if math.Abs(status.TotalBudgetAccumulated-100) > eps {
		t.Errorf("accumulated = %v, want 100", status.TotalBudgetAccumulated)
	}
	if status.TotalSpent != 30 || status.TotalIncome != 50 {
		t.Errorf("spent/income = %v/%v, want 30/50", status.TotalSpent, status.TotalIncome)
	}
	if status.DaysElapsed != 10 || status.DaysRemaining != 21 || status.DaysInMonth != 30 {
		t.Errorf("days = %d/%d/%d, want 10/21/30",
			status.DaysElapsed, status.DaysRemaining, status.DaysInMonth)
	}
}

func TestCalculate_FirstOfFebruary(t *testing.T) {
	now := time.Date(2023, time.February, 1, 8, 0, 0, 0, time.UTC)
	status := Calculate(nil, 310, now)

	want := 310.0 / 28.0
	if math.Abs(status.DailyAllowance-want) > eps {
		t.Errorf("allowance = %v, want %v", status.DailyAllowance, want)
	}
	// One day has accrued, nothing spent.
	if math.Abs(status.AvailableBudget-want) > eps {
		t.Errorf("available = %v, want %v", status.AvailableBudget, want)
	}
	if status.DaysRemaining != 28 {
		t.Errorf("days remaining = %d, want 28", status.DaysRemaining)
	}
}

func TestCalculate_Overspend(t *testing.T) {
	// Spending past the accrual drives the available budget negative.
	now := time.Date(2024, time.April, 1, 20, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		tx("2024-04-01T10:00:00Z", 45, model.TypeAutoPayment),
	}

	status := Calculate(transactions, 300, now)
	if math.Abs(status.AvailableBudget-(-35)) > eps {
		t.Errorf("available = %v, want -35", status.AvailableBudget)
	}
}

func TestCalculate_AutoPaymentDeducts(t *testing.T) {
	now := time.Date(2024, time.April, 10, 18, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		tx("2024-04-05T12:00:00Z", 25, model.TypeAutoPayment),
	}
	status := Calculate(transactions, 300, now)
	if status.TotalSpent != 25 {
		t.Errorf("auto payments must deduct: spent = %v, want 25", status.TotalSpent)
	}
}

func TestCalculate_ExcludesOutOfRange(t *testing.T) {
	now := time.Date(2024, time.April, 10, 18, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		tx("2024-03-31T23:59:00Z", 999, model.TypeExpense), // previous month
		tx("2024-04-11T00:00:00Z", 999, model.TypeExpense), // in the future
		tx("2024-04-05T12:00:00Z", 30, model.TypeExpense),
	}
	status := Calculate(transactions, 300, now)
	if status.TotalSpent != 30 {
		t.Errorf("spent = %v, want 30 (out-of-range entries must be excluded)", status.TotalSpent)
	}
}

func TestCalculate_SkipsInvalidTimestamps(t *testing.T) {
	now := time.Date(2024, time.April, 10, 18, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		tx("not-a-timestamp", 999, model.TypeExpense),
		tx("", 999, model.TypeExpense),
		tx("2024-04-05T12:00:00Z", 30, model.TypeExpense),
	}
	status := Calculate(transactions, 300, now)
	if status.TotalSpent != 30 {
		t.Errorf("spent = %v, want 30 (unparseable timestamps must be skipped)", status.TotalSpent)
	}
}

// The status is a pure fold over the ledger: transaction order must not
// change the result.
func TestCalculate_OrderIndependent(t *testing.T) {
	now := time.Date(2024, time.April, 20, 18, 0, 0, 0, time.UTC)
	transactions := []model.Transaction{
		tx("2024-04-02T10:00:00Z", 12.5, model.TypeExpense),
		tx("2024-04-05T10:00:00Z", 7.3, model.TypeAutoPayment),
		tx("2024-04-08T10:00:00Z", 100, model.TypeIncome),
		tx("2024-04-12T10:00:00Z", 42, model.TypeExpense),
		tx("2024-04-15T10:00:00Z", 3.99, model.TypeAutoPayment),
	}

	want := Calculate(transactions, 300, now)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]model.Transaction, len(transactions))
		copy(shuffled, transactions)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := Calculate(shuffled, 300, now)
		if math.Abs(got.AvailableBudget-want.AvailableBudget) > eps {
			t.Fatalf("shuffle %d: available = %v, want %v", i, got.AvailableBudget, want.AvailableBudget)
		}
	}
}

func TestProjection(t *testing.T) {
	now := time.Date(2024, time.April, 10, 18, 0, 0, 0, time.UTC)
	status := Calculate([]model.Transaction{
		tx("2024-04-05T12:00:00Z", 30, model.TypeExpense),
		tx("2024-04-07T09:00:00Z", 50, model.TypeIncome),
	}, 300, now)

	proj := Projection(status, 300)

	// 120 available + 20 remaining whole days * 10 allowance.
	if math.Abs(proj.ProjectedEndBalance-320) > eps {
		t.Errorf("projected = %v, want 320", proj.ProjectedEndBalance)
	}
	want := 320.0 / 300.0 * 100
	if math.Abs(proj.SavingsRate-want) > eps {
		t.Errorf("savings rate = %v, want %v", proj.SavingsRate, want)
	}
}

func TestProjection_RateFloorsAtZero(t *testing.T) {
	status := model.BudgetStatus{
		AvailableBudget: -500,
		DailyAllowance:  10,
		DaysRemaining:   3,
	}
	proj := Projection(status, 300)
	if proj.ProjectedEndBalance != -480 {
		t.Errorf("projected = %v, want -480", proj.ProjectedEndBalance)
	}
	if proj.SavingsRate != 0 {
		t.Errorf("savings rate = %v, want 0 for a projected deficit", proj.SavingsRate)
	}
}

func TestProjection_ZeroBudget(t *testing.T) {
	proj := Projection(model.BudgetStatus{AvailableBudget: 10, DaysRemaining: 1}, 0)
	if proj.SavingsRate != 0 {
		t.Errorf("savings rate = %v, want 0 when no budget is set", proj.SavingsRate)
	}
}

func TestGroupByDay(t *testing.T) {
	transactions := []model.Transaction{
		tx("2024-04-05T08:00:00Z", 1, model.TypeExpense),
		tx("2024-04-05T19:00:00Z", 2, model.TypeExpense),
		tx("2024-04-07T09:00:00Z", 3, model.TypeIncome),
		tx("garbage", 4, model.TypeExpense),
	}

	groups := GroupByDay(transactions)
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	if total != 3 {
		t.Errorf("grouped %d transactions, want 3 (invalid timestamp dropped)", total)
	}

	// Every grouped transaction must sit under its own day key.
	for key, g := range groups {
		for _, entry := range g {
			want, ok := DayKey(entry)
			if !ok || want != key {
				t.Errorf("transaction %s filed under %q, want %q", entry.ID, key, want)
			}
		}
	}

	keys := SortedDayKeys(groups)
	if len(keys) != len(groups) {
		t.Fatalf("got %d day keys for %d groups", len(keys), len(groups))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] < keys[i] {
			t.Errorf("keys %v not sorted newest first", keys)
		}
	}
}
