package service

import "testing"

func TestResolveYearKey(t *testing.T) {
	keys := []string{"2019 Jan", "2019 Oct", "2020 Jun", "2021"}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact match", "2019 Jan", "2019 Jan"},
		{"exact match case insensitive", "2019 jan", "2019 Jan"},
		{"exact match with whitespace", "  2019 Oct  ", "2019 Oct"},
		{"full month name substituted", "2020 June", "2020 Jun"},
		{"full month name reordered", "january 2019", "2019 Jan"},
		{"year and month tokens reordered", "Jan 2019", "2019 Jan"},
		{"month word inside longer phrase", "the 2020 jun papers", "2020 Jun"},
		{"year and full month inside sentence", "in 2019, january sitting", "2019 Jan"},
		{"plain year key", "2021", "2021"},
		{"no match", "2018", ""},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveYearKey(tt.input, keys)
			if got != tt.want {
				t.Fatalf("ResolveYearKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveYearKeyFirstCandidateWins(t *testing.T) {
	// Both keys share the year token; the input mentions both months but the
	// earlier key in the list is checked first.
	keys := []string{"2019 Jan", "2019 Oct"}
	got := ResolveYearKey("2019 jan or oct", keys)
	if got != "2019 Jan" {
		t.Fatalf("ResolveYearKey() = %q, want %q", got, "2019 Jan")
	}
}

func TestResolveYearKeyFullMonthAgainstShortKey(t *testing.T) {
	keys := []string{"2020 Dec"}
	got := ResolveYearKey("2020 December", keys)
	if got != "2020 Dec" {
		t.Fatalf("ResolveYearKey() = %q, want %q", got, "2020 Dec")
	}
}
