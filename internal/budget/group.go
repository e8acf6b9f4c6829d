package budget

import (
	"sort"

	"github.com/theirongolddev/perdiem/internal/model"
)

// DayKey formats a transaction timestamp as a local-calendar-day key.
// Returns false for unparseable timestamps.
func DayKey(tx model.Transaction) (string, bool) {
	ts, ok := model.ParseTimestamp(tx.Timestamp)
	if !ok {
		return "", false
	}
	return ts.Local().Format("2006-01-02"), true
}

// GroupByDay buckets transactions by local calendar day, keyed
// YYYY-MM-DD. Display ordering only; the arithmetic never uses it.
func GroupByDay(transactions []model.Transaction) map[string][]model.Transaction {
	groups := make(map[string][]model.Transaction)
	for _, tx := range transactions {
		key, ok := DayKey(tx)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], tx)
	}
	return groups
}

// SortedDayKeys returns the group keys newest first.
func SortedDayKeys(groups map[string][]model.Transaction) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
