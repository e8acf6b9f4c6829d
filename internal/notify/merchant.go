package notify

import (
	"regexp"
	"strings"
)

// Prepositional patterns marking the counterparty in payment text.
// "maksu"/"maksettiin" cover the Finnish-localized notifications.
var merchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:at|@)\s+(.+?)(?:\s+for|\s+€|$)`),
	regexp.MustCompile(`(?i)(?:to|maksu)\s+(.+?)(?:\s+for|\s+€|$)`),
	regexp.MustCompile(`(?i)(?:paid|maksettiin)\s+(?:.*?)\s+(?:at|@)\s+(.+)`),
}

// Titles that are just the provider's own label, useless as a merchant.
var genericTitles = []string{"google pay", "google wallet"}

// ParseMerchant extracts a merchant or counterparty name from the
// notification text. Falls back to the title when it is not a generic
// provider label, then to "Unknown".
func ParseMerchant(text, title string) string {
	if text == "" && title == "" {
		return "Unknown"
	}

	combined := title + " " + text
	for _, pat := range merchantPatterns {
		if m := pat.FindStringSubmatch(combined); m != nil && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
	}

	if title != "" && !isGenericTitle(title) {
		return strings.TrimSpace(title)
	}
	return "Unknown"
}

func isGenericTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, g := range genericTitles {
		if strings.Contains(lower, g) {
			return true
		}
	}
	return false
}
