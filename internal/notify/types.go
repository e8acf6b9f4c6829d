package notify

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Payload is the notification shape delivered by the OS listener bridge.
// Every text field may be absent; Text/BigText carry the body and
// Title/TitleBig the heading.
type Payload struct {
	App      string      `json:"app"`
	Title    string      `json:"title,omitempty"`
	TitleBig string      `json:"titleBig,omitempty"`
	Text     string      `json:"text,omitempty"`
	BigText  string      `json:"bigText,omitempty"`
	Time     EpochMillis `json:"time,omitempty"`
}

// EpochMillis decodes a notification time that arrives as either a JSON
// number or a numeric string. A missing or non-numeric value leaves
// Valid false; the parser then falls back to its own clock.
type EpochMillis struct {
	Millis int64
	Valid  bool
}

// UnmarshalJSON accepts a number, a numeric string, or null.
func (e *EpochMillis) UnmarshalJSON(data []byte) error {
	e.Valid = false
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return err
		}
		s = unquoted
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Non-numeric time is treated as absent, not as a bad payload.
		return nil
	}
	e.Millis = int64(f)
	e.Valid = true
	return nil
}

// MarshalJSON emits the raw millisecond value, or null when absent.
func (e EpochMillis) MarshalJSON() ([]byte, error) {
	if !e.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(e.Millis, 10)), nil
}
