package service

import (
	"reflect"
	"testing"

	"papergenius_backend/platform/apperr"
)

func TestSortedYearKeys(t *testing.T) {
	years := map[string]int{
		"2020 Jun": 42,
		"2019 Oct": 35,
		"2019 Jan": 40,
		"2021":     30,
	}

	got := SortedYearKeys(years)
	want := []string{"2019 Jan", "2019 Oct", "2020 Jun", "2021"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SortedYearKeys() = %v, want %v", got, want)
	}
}

func TestSortedYearKeysLexicographic(t *testing.T) {
	// String ordering, not calendar ordering: "2019 Dec" sorts before
	// "2019 Jan". Range selection relies on exactly this order.
	years := map[string]int{"2019 Jan": 30, "2019 Dec": 28}

	got := SortedYearKeys(years)
	want := []string{"2019 Dec", "2019 Jan"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SortedYearKeys() = %v, want %v", got, want)
	}
}

func TestCleanYears(t *testing.T) {
	got, err := cleanYears(map[string]int{
		"  2019 Jan ": 40,
		"":            10,
		"   ":         12,
		"2020":        0,
	})
	if err != nil {
		t.Fatalf("cleanYears() error = %v", err)
	}

	want := map[string]int{"2019 Jan": 40, "2020": 0}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cleanYears() = %v, want %v", got, want)
	}
}

func TestCleanYearsNegativePages(t *testing.T) {
	_, err := cleanYears(map[string]int{"2019": -1})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("cleanYears() error = %v, want validation error", err)
	}
}

func TestCleanYearsAllBlank(t *testing.T) {
	_, err := cleanYears(map[string]int{" ": 5})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("cleanYears() error = %v, want validation error", err)
	}
}
