package service

import (
	"reflect"
	"testing"
)

func TestSliceInclusive(t *testing.T) {
	keys := []string{"2020", "2021", "2022", "2023"}

	tests := []struct {
		name     string
		startIdx int
		endIdx   int
		want     []string
	}{
		{"forward range", 0, 2, []string{"2020", "2021", "2022"}},
		{"single element", 1, 1, []string{"2021"}},
		{"reversed endpoints are swapped", 3, 1, []string{"2021", "2022", "2023"}},
		{"full range", 0, 3, keys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SliceInclusive(keys, tt.startIdx, tt.endIdx)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SliceInclusive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectRange(t *testing.T) {
	keys := []string{"2019 Dec", "2019 Jan", "2020", "2021"}

	got, err := SelectRange(keys, "2019 Jan", "2021")
	if err != nil {
		t.Fatalf("SelectRange() error = %v", err)
	}
	want := []string{"2019 Jan", "2020", "2021"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SelectRange() = %v, want %v", got, want)
	}

	if _, err := SelectRange(keys, "2018", "2021"); err == nil {
		t.Fatal("SelectRange() expected error for unknown start year")
	}
	if _, err := SelectRange(keys, "2020", "2025"); err == nil {
		t.Fatal("SelectRange() expected error for unknown end year")
	}
}
