package service

import (
	"testing"

	cartrepo "papergenius_backend/internal/cart/repository"
)

func fptr(v float64) *float64 { return &v }

func TestSummarizeEntries(t *testing.T) {
	entries := []cartrepo.Entry{
		{
			Name:          "Physics Past Papers",
			DesignType:    "Custom",
			SelectedYears: []string{"2021", "2022", "2023"},
		},
		{
			Name:          "Chemistry Model Papers",
			DesignType:    "Normal",
			SelectedYears: []string{"2020"},
		},
	}

	got := SummarizeEntries(entries)
	want := "Physics Past Papers [Custom] (2021 - 2023)\nChemistry Model Papers [Normal] (2020)"
	if got != want {
		t.Fatalf("SummarizeEntries() = %q, want %q", got, want)
	}
}

func TestSummarizeEntriesEmptySelection(t *testing.T) {
	entries := []cartrepo.Entry{{Name: "Biology", DesignType: "Normal"}}
	got := SummarizeEntries(entries)
	want := "Biology [Normal] ()"
	if got != want {
		t.Fatalf("SummarizeEntries() = %q, want %q", got, want)
	}
}

func TestTotalOf(t *testing.T) {
	entries := []cartrepo.Entry{
		{Price: fptr(1500)},
		{Price: nil},
		{Price: fptr(780.5)},
	}

	got := TotalOf(entries)
	if got != 2280.5 {
		t.Fatalf("TotalOf() = %v, want 2280.5", got)
	}
}
