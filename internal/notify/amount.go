package notify

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Currency markers recognized adjacent to a numeral. The table is data:
// adding a market means adding a symbol or code here, nothing else.
var (
	currencySymbols = []string{
		"€", "$", "£", "¥", "₹", "₽", "zł", "Kč", "Ft", "lei",
		"лв", "kn", "kr", "Fr", "R$", "₩", "NT$",
	}
	currencyCodes = []string{
		"EUR", "USD", "GBP", "JPY", "AUD", "CAD", "CHF", "SEK", "NOK",
		"DKK", "PLN", "CZK", "HUF", "RON", "BGN", "HRK", "INR", "SGD",
		"HKD", "NZD", "MXN", "BRL", "KRW", "TWD", "RUB", "TRY", "ZAR",
		"THB", "PHP", "IDR",
	}
)

// amountPatterns matches a numeral with a currency marker before or
// after it, with optional whitespace between. First match wins.
var amountPatterns = buildAmountPatterns()

func buildAmountPatterns() []*regexp.Regexp {
	quoted := make([]string, len(currencySymbols))
	for i, s := range currencySymbols {
		quoted[i] = regexp.QuoteMeta(s)
	}
	symbolAlt := strings.Join(quoted, "|")
	codeAlt := strings.Join(currencyCodes, "|")

	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:` + symbolAlt + `)\s*([\d\s,.]+)`),
		regexp.MustCompile(`(?i)([\d\s,.]+)\s*(?:` + symbolAlt + `)`),
		regexp.MustCompile(`(?i)(?:` + codeAlt + `)\s*([\d\s,.]+)`),
		regexp.MustCompile(`(?i)([\d\s,.]+)\s*(?:` + codeAlt + `)`),
	}
}

// ParseAmount extracts a positive monetary amount from free text.
// Returns false when no currency-adjacent numeral is present, which is
// the normal outcome for most notifications.
func ParseAmount(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	for _, pat := range amountPatterns {
		m := pat.FindStringSubmatch(text)
		if m == nil || m[1] == "" {
			continue
		}
		if amount, ok := normalizeAmount(m[1]); ok && amount > 0 {
			return amount, true
		}
	}
	return 0, false
}

// normalizeAmount converts a matched numeral to a float, handling both
// "1.234,56" and "1,234.56" styles. The rightmost separator is the
// decimal separator, except that a lone separator followed by exactly
// three digits is a group separator ("1,234" is 1234, "12,50" is 12.5).
func normalizeAmount(numeral string) (float64, bool) {
	var b strings.Builder
	for _, r := range numeral {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	sepIdx := lastComma
	if lastDot > sepIdx {
		sepIdx = lastDot
	}

	var normalized string
	switch {
	case sepIdx == -1:
		// Whole number, common for JPY and KRW.
		normalized = cleaned
	case strings.Count(cleaned, ",")+strings.Count(cleaned, ".") == 1 &&
		len(cleaned)-sepIdx-1 == 3:
		normalized = cleaned[:sepIdx] + cleaned[sepIdx+1:]
	default:
		intPart := strings.NewReplacer(",", "", ".", "").Replace(cleaned[:sepIdx])
		normalized = intPart + "." + cleaned[sepIdx+1:]
	}

	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}
