// Package notify classifies payment-app notifications and turns them
// into ledger transactions.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/theirongolddev/perdiem/internal/model"
)

// WalletPackages is the allow-list of payment-app package ids.
// walletnfcrel is Google Wallet (Europe/US tap-to-pay), nbu.paisa.user
// is Google Pay (India, Singapore, US and others).
var WalletPackages = []string{
	"com.google.android.apps.walletnfcrel",
	"com.google.android.apps.nbu.paisa.user",
}

// Outcome classifies a parsed notification. Everything except Payment
// is an expected drop, not an error.
type Outcome int

const (
	// Payment means a transaction was extracted.
	Payment Outcome = iota
	// UnknownApp means the app id is not on the allow-list.
	UnknownApp
	// NoAmount means the app matched but no currency-adjacent numeral
	// was found in any text field.
	NoAmount
	// BadPayload means the raw input was not decodable at all.
	BadPayload
)

func (o Outcome) String() string {
	switch o {
	case Payment:
		return "payment"
	case UnknownApp:
		return "unknown app"
	case NoAmount:
		return "no amount"
	case BadPayload:
		return "bad payload"
	}
	return "unknown"
}

// Result is the parser output: an outcome and, for Payment only, the
// extracted transaction.
type Result struct {
	Outcome     Outcome
	Transaction *model.Transaction
}

// Parser turns notification payloads into transactions.
type Parser struct {
	apps map[string]struct{}

	// Now is the clock used for fallback timestamps and id generation.
	// Injectable so captures are reproducible in tests.
	Now func() time.Time
}

// New returns a Parser recognizing the built-in wallet packages plus
// any extra app ids from configuration.
func New(extraApps ...string) *Parser {
	apps := make(map[string]struct{}, len(WalletPackages)+len(extraApps))
	for _, a := range WalletPackages {
		apps[a] = struct{}{}
	}
	for _, a := range extraApps {
		if a != "" {
			apps[a] = struct{}{}
		}
	}
	return &Parser{apps: apps, Now: time.Now}
}

// ParseJSON decodes a JSON-encoded payload and parses it. Malformed
// JSON yields BadPayload; it never propagates a decode error.
func (p *Parser) ParseJSON(raw []byte) Result {
	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Result{Outcome: BadPayload}
	}
	return p.Parse(payload)
}

// Parse classifies a payload and, for recognized payments, builds the
// auto-captured transaction.
func (p *Parser) Parse(n Payload) Result {
	if _, ok := p.apps[n.App]; !ok {
		return Result{Outcome: UnknownApp}
	}

	text := n.Text
	if text == "" {
		text = n.BigText
	}
	title := n.Title
	if title == "" {
		title = n.TitleBig
	}

	amount, ok := ParseAmount(text)
	if !ok {
		amount, ok = ParseAmount(title)
	}
	if !ok {
		// Most notifications from the wallet apps are not payments;
		// dropping them here is the expected path.
		return Result{Outcome: NoAmount}
	}

	now := p.Now()
	timestamp := now
	eventMillis := now.UnixMilli()
	if n.Time.Valid {
		timestamp = time.UnixMilli(n.Time.Millis)
		eventMillis = n.Time.Millis
	}

	raw, _ := json.Marshal(n)

	// The id pairs the event's native time with the processing time.
	// It is not content-addressed: the same real-world payment
	// delivered twice by the OS will produce two ledger entries.
	tx := model.Transaction{
		ID:              fmt.Sprintf("%d_%d", eventMillis, now.UnixMilli()),
		Timestamp:       timestamp.UTC().Format(time.RFC3339),
		Amount:          amount,
		Type:            model.TypeAutoPayment,
		Description:     ParseMerchant(text, title),
		Source:          model.SourceAuto,
		RawNotification: string(raw),
	}
	return Result{Outcome: Payment, Transaction: &tx}
}
