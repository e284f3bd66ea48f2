package service

import "testing"

func TestTotalPrice(t *testing.T) {
	years := map[string]int{
		"2021": 40,
		"2022": 35,
		"2023": 42,
		"2024": 38,
	}

	tests := []struct {
		name       string
		designType string
		selected   []string
		want       float64
	}{
		{
			name:       "normal cover full range",
			designType: "Normal",
			selected:   []string{"2021", "2022", "2023", "2024"},
			want:       (40+35+42+38)*5 + 400 + 200,
		},
		{
			name:       "custom cover single year",
			designType: "custom",
			selected:   []string{"2023"},
			want:       42*5 + 400 + 500,
		},
		{
			name:       "minimalistic cover",
			designType: "Minimalistic",
			selected:   []string{"2021", "2022"},
			want:       (40+35)*5 + 400 + 80,
		},
		{
			name:       "unknown cover falls back to normal",
			designType: "hardcover",
			selected:   []string{"2021"},
			want:       40*5 + 400 + 200,
		},
		{
			name:       "missing year keys are skipped",
			designType: "normal",
			selected:   []string{"2021", "1999"},
			want:       40*5 + 400 + 200,
		},
		{
			name:       "empty selection still charges binding and cover",
			designType: "normal",
			selected:   nil,
			want:       400 + 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalPrice(years, tt.designType, tt.selected)
			if got != tt.want {
				t.Fatalf("TotalPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalPriceNegativePagesSkipped(t *testing.T) {
	years := map[string]int{"2021": -10, "2022": 20}
	got := TotalPrice(years, "normal", []string{"2021", "2022"})
	want := 20*5.0 + 400 + 200
	if got != want {
		t.Fatalf("TotalPrice() = %v, want %v", got, want)
	}
}
