package phone

import "testing"

func TestNormalizeE164Region(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		region string
		want   string
	}{
		{"local number gets country prefix", "0771234567", "LK", "+94771234567"},
		{"already E164 unchanged", "+94771234567", "LK", "+94771234567"},
		{"foreign prefix kept", "+31612345678", "LK", "+31612345678"},
		{"unparseable input returned trimmed", " not-a-number ", "LK", "not-a-number"},
		{"empty input", "", "LK", ""},
		{"empty region falls back to default", "0771234567", "", "+94771234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeE164Region(tt.input, tt.region)
			if got != tt.want {
				t.Fatalf("NormalizeE164Region(%q, %q) = %q, want %q", tt.input, tt.region, got, tt.want)
			}
		})
	}
}
