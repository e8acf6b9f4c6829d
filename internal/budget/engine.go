// Package budget implements the day-accrual budget model: each day of
// the month releases one daily allowance, spending draws against what
// has accrued so far.
package budget

import (
	"math"
	"time"

	"github.com/theirongolddev/perdiem/internal/model"
)

// DaysInMonth returns the length of the given month, leap years included.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthStart returns day 1 at midnight of now's month, in now's location.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// DaysRemaining counts the days left in now's month, today included.
func DaysRemaining(now time.Time) int {
	return DaysInMonth(now.Year(), now.Month()) - now.Day() + 1
}

// DailyAllowance is the per-day share of the monthly budget for now's
// month. Used both for the live calculation and as a setup preview, so
// the two always agree.
func DailyAllowance(monthlyBudget float64, now time.Time) float64 {
	return monthlyBudget / float64(DaysInMonth(now.Year(), now.Month()))
}

// Calculate derives the budget status for "today" from the full ledger
// and the monthly budget. Pure: the clock is the now parameter, and
// transactions outside [monthStart, now] or with unparseable
// timestamps are silently excluded.
//
// By day 1 only one allowance has accrued, so spending ahead of the
// accrual legitimately drives the available budget negative; that is
// the overspend signal, not an error.
func Calculate(transactions []model.Transaction, monthlyBudget float64, now time.Time) model.BudgetStatus {
	monthStart := MonthStart(now)
	daysElapsed := now.Day()
	allowance := DailyAllowance(monthlyBudget, now)
	accumulated := allowance * float64(daysElapsed)

	var totalSpent, totalIncome float64
	for _, tx := range transactions {
		ts, ok := model.ParseTimestamp(tx.Timestamp)
		if !ok {
			continue
		}
		if ts.Before(monthStart) || ts.After(now) {
			continue
		}
		if tx.Type == model.TypeIncome {
			totalIncome += tx.Amount
		} else {
			totalSpent += tx.Amount
		}
	}

	return model.BudgetStatus{
		AvailableBudget:        accumulated - totalSpent + totalIncome,
		DailyAllowance:         allowance,
		TotalSpent:             totalSpent,
		TotalIncome:            totalIncome,
		TotalBudgetAccumulated: accumulated,
		DaysElapsed:            daysElapsed,
		DaysRemaining:          DaysRemaining(now),
		DaysInMonth:            DaysInMonth(now.Year(), now.Month()),
	}
}

// Projection extrapolates the current balance to month end by adding
// the allowances for the remaining whole days (today's is already in
// the accrual). SavingsRate is the projected share of the monthly
// budget left over, floored at zero.
func Projection(status model.BudgetStatus, monthlyBudget float64) model.MonthProjection {
	projected := status.AvailableBudget + status.DailyAllowance*float64(status.DaysRemaining-1)

	var rate float64
	if monthlyBudget > 0 {
		rate = math.Max(0, projected/monthlyBudget) * 100
	}

	return model.MonthProjection{
		ProjectedEndBalance: projected,
		SavingsRate:         rate,
	}
}
