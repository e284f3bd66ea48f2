package service

import "strings"

// Pricing constants for printed papers, in LKR.
const (
	pricePerPage = 5.0
	bindingPrice = 400.0
)

// coverCosts maps a lowercased cover type to its surcharge. Unrecognized
// cover types fall back to the normal cost.
var coverCosts = map[string]float64{
	"normal":       200,
	"custom":       500,
	"minimalistic": 80,
}

// TotalPrice computes the price of a selection: total pages across the
// selected year keys times the per-page rate, plus the binding cost and the
// cover surcharge. Year keys missing from the availability map are skipped
// rather than failing the whole calculation.
func TotalPrice(yearsAvailable map[string]int, designType string, selectedYears []string) float64 {
	totalPages := 0
	for _, year := range selectedYears {
		pages, ok := yearsAvailable[year]
		if !ok || pages < 0 {
			continue
		}
		totalPages += pages
	}

	designCost, ok := coverCosts[strings.ToLower(designType)]
	if !ok {
		designCost = coverCosts["normal"]
	}

	return float64(totalPages)*pricePerPage + designCost + bindingPrice
}
