package model

import (
	"strconv"
	"time"
)

// Timestamp layouts accepted on read, tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp resolves a stored timestamp into an absolute instant.
// Accepts ISO-8601/RFC3339 strings and epoch-millisecond values
// (plain numbers arrive as numeric strings). Anything else is invalid;
// callers must not default invalid timestamps to the current time.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts, true
		}
	}
	if millis, err := strconv.ParseFloat(s, 64); err == nil {
		return time.UnixMilli(int64(millis)), true
	}
	return time.Time{}, false
}
