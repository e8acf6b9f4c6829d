// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders amounts as localized currency text.
type CurrencyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewCurrencyFormatter builds a formatter for the given BCP 47 locale
// and ISO 4217 code, falling back to fi-FI / EUR on bad input.
func NewCurrencyFormatter(locale, code string) *CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Finnish
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.EUR
	}
	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

// Format renders the magnitude of amount with the currency symbol.
// Sign presentation is the caller's concern, matching how the widget
// shows overspend in color rather than with a minus.
func (f *CurrencyFormatter) Format(amount float64) string {
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(math.Abs(amount))))
}

// FormatSigned renders amount with an explicit minus for negatives.
func (f *CurrencyFormatter) FormatSigned(amount float64) string {
	if amount < 0 {
		return "-" + f.Format(amount)
	}
	return f.Format(amount)
}

// FormatTime renders a transaction instant for list display.
func FormatTime(ts time.Time) string {
	return ts.Local().Format("15:04")
}

// FormatDayHeading renders a YYYY-MM-DD group key as a list heading.
func FormatDayHeading(key string) string {
	ts, err := time.ParseInLocation("2006-01-02", key, time.Local)
	if err != nil {
		return key
	}
	return ts.Format("Mon 2 Jan 2006")
}

// FormatPercent formats a 0-100 percentage value.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
