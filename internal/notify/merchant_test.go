package notify

import "testing"

func TestParseMerchant(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		title string
		want  string
	}{
		{"at pattern", "Payment of €12,50 at Store Name", "", "Store Name"},
		{"finnish maksu", "12,50 € maksu Kauppa", "", "Kauppa"},
		{"to pattern", "Sent €5 to Alice", "", "Alice"},
		{"paid then at", "maksettiin €8,20 @ Kahvila Aalto", "", "Kahvila Aalto"},
		{"at stops before for", "Charged €3 at Kiosk for snacks", "", "Kiosk"},
		{"title fallback", "Your card was charged", "Kauppa Oy", "Kauppa Oy"},
		{"generic title rejected", "", "Google Pay", "Unknown"},
		{"generic wallet title rejected", "", "Google Wallet · card ending 1234", "Unknown"},
		{"all empty", "", "", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseMerchant(tt.text, tt.title); got != tt.want {
				t.Errorf("ParseMerchant(%q, %q) = %q, want %q", tt.text, tt.title, got, tt.want)
			}
		})
	}
}
