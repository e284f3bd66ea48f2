package service

import (
	"fmt"
	"sort"
	"strings"
)

// inventoryOfflineContext replaces the inventory block when the catalog
// cannot be read. The chat keeps working; the model just knows stock is
// unavailable.
const inventoryOfflineContext = "Inventory database is offline."

// BuildInventoryContext renders the shop inventory block for the system
// instruction and returns the lowercased name to id lookup used to resolve
// directives. Year keys are listed in sorted order.
func BuildInventoryContext(items []Item) (string, map[string]int64) {
	nameMap := make(map[string]int64, len(items))

	var b strings.Builder
	b.WriteString("CURRENT SHOP INVENTORY:\n")

	for _, item := range items {
		nameMap[strings.ToLower(item.Name)] = item.ID

		if len(item.YearsAvailable) == 0 {
			fmt.Fprintf(&b, "- Item: '%s' (Out of Stock)\n", item.Name)
			continue
		}

		years := make([]string, 0, len(item.YearsAvailable))
		for year := range item.YearsAvailable {
			years = append(years, year)
		}
		sort.Strings(years)

		fmt.Fprintf(&b, "- Item: '%s'\n  * Years: %s\n", item.Name, formatYearList(years))
	}

	return b.String(), nameMap
}

// formatYearList renders year keys as a quoted list, e.g. ['2019 Jan', '2020'].
func formatYearList(years []string) string {
	quoted := make([]string, len(years))
	for i, year := range years {
		quoted[i] = "'" + year + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// BuildSystemInstruction assembles the full system instruction: persona,
// inventory, pricing rules, and the hidden add-to-cart command protocol.
func BuildSystemInstruction(userName string, loggedIn bool, inventoryContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are 'Genius AI', speaking to: %s.\n", userName)
	b.WriteString("SCOPE: Selling Edexcel papers. You cannot checkout, only add to cart.\n\n")
	b.WriteString(inventoryContext)
	b.WriteString("\n\n")
	b.WriteString("--- PRICING ---\n")
	b.WriteString("Formula: (Total Pages * 5) + 400 + CoverCost\n")
	b.WriteString("Cover Costs: Normal(200), Custom(500), Minimalistic(80)\n\n")
	b.WriteString("--- ADD TO CART PROTOCOL ---\n")
	fmt.Fprintf(&b, "User Logged In: %t\n", loggedIn)
	b.WriteString("1. IF NOT LOGGED IN: Refuse to add to cart.\n")
	b.WriteString("2. IF LOGGED IN: If user confirms to buy, output a HIDDEN COMMAND.\n")
	b.WriteString("   Format: ||ADD_CART:ItemName|StartYear|EndYear|CoverType||\n\n")
	b.WriteString("   Example: ||ADD_CART:Pure Maths 1|2019 Jan|2020 Oct|Normal||\n")
	return b.String()
}
