package service

import (
	"strings"
	"testing"
)

func TestBuildInventoryContext(t *testing.T) {
	items := []Item{
		{ID: 1, Name: "Pure Maths 1", YearsAvailable: map[string]int{"2020 Oct": 40, "2019 Jan": 38}},
		{ID: 2, Name: "Statistics", YearsAvailable: nil},
	}

	context, nameMap := BuildInventoryContext(items)

	want := "CURRENT SHOP INVENTORY:\n" +
		"- Item: 'Pure Maths 1'\n" +
		"  * Years: ['2019 Jan', '2020 Oct']\n" +
		"- Item: 'Statistics' (Out of Stock)\n"
	if context != want {
		t.Fatalf("BuildInventoryContext() = %q, want %q", context, want)
	}

	if id := nameMap["pure maths 1"]; id != 1 {
		t.Fatalf("nameMap[pure maths 1] = %d, want 1", id)
	}
	if id := nameMap["statistics"]; id != 2 {
		t.Fatalf("nameMap[statistics] = %d, want 2", id)
	}
}

func TestBuildInventoryContextYearsSortedLexicographically(t *testing.T) {
	// "2019 Dec" sorts before "2019 Jan" as strings. The ordering is pinned
	// because range selection depends on it.
	items := []Item{
		{ID: 1, Name: "Mechanics", YearsAvailable: map[string]int{"2019 Jan": 30, "2019 Dec": 30}},
	}

	context, _ := BuildInventoryContext(items)
	if !strings.Contains(context, "['2019 Dec', '2019 Jan']") {
		t.Fatalf("years not in lexicographic order: %q", context)
	}
}

func TestBuildSystemInstruction(t *testing.T) {
	instruction := BuildSystemInstruction("Amal", true, "CURRENT SHOP INVENTORY:\n")

	for _, fragment := range []string{
		"You are 'Genius AI', speaking to: Amal.",
		"CURRENT SHOP INVENTORY:",
		"Formula: (Total Pages * 5) + 400 + CoverCost",
		"Cover Costs: Normal(200), Custom(500), Minimalistic(80)",
		"User Logged In: true",
		"Format: ||ADD_CART:ItemName|StartYear|EndYear|CoverType||",
	} {
		if !strings.Contains(instruction, fragment) {
			t.Fatalf("instruction missing %q:\n%s", fragment, instruction)
		}
	}
}

func TestBuildSystemInstructionGuest(t *testing.T) {
	instruction := BuildSystemInstruction("Guest", false, "Inventory database is offline.")

	if !strings.Contains(instruction, "speaking to: Guest.") {
		t.Fatalf("instruction missing guest name:\n%s", instruction)
	}
	if !strings.Contains(instruction, "User Logged In: false") {
		t.Fatalf("instruction missing logged-in flag:\n%s", instruction)
	}
	if !strings.Contains(instruction, "Inventory database is offline.") {
		t.Fatalf("instruction missing offline context:\n%s", instruction)
	}
}
