package service

import "strings"

// monthSubstitution maps full month names to the short forms used in year
// keys. Order matters: substitutions are tried in calendar order and each is
// applied to a fresh copy of the input.
var monthSubstitutions = []struct {
	full  string
	short string
}{
	{"january", "jan"},
	{"february", "feb"},
	{"march", "mar"},
	{"april", "apr"},
	{"may", "may"},
	{"june", "jun"},
	{"july", "jul"},
	{"august", "aug"},
	{"september", "sep"},
	{"october", "oct"},
	{"november", "nov"},
	{"december", "dec"},
}

// ResolveYearKey matches free-form model output against the item's exact year
// keys. Candidates are tried in order and the first one satisfying any rule
// wins:
//
//  1. exact match after trimming and lowercasing,
//  2. exact match after substituting a full month name with its short form,
//  3. for multi-token keys, both the year part and the month part appear as
//     substrings of the input.
//
// Returns the original key casing, or "" when nothing matches.
func ResolveYearKey(input string, validKeys []string) string {
	if input == "" {
		return ""
	}

	cleanInput := strings.ToLower(strings.TrimSpace(input))
	if cleanInput == "" {
		return ""
	}

	for _, key := range validKeys {
		cleanKey := strings.ToLower(key)

		if cleanInput == cleanKey {
			return key
		}

		for _, sub := range monthSubstitutions {
			if strings.Contains(cleanInput, sub.full) {
				normalized := strings.ReplaceAll(cleanInput, sub.full, sub.short)
				if normalized == cleanKey {
					return key
				}
			}
		}

		parts := strings.Fields(cleanKey)
		if len(parts) > 1 {
			dbYear, dbMonth := parts[0], parts[1]
			if strings.Contains(cleanInput, dbYear) && strings.Contains(cleanInput, dbMonth) {
				return key
			}
		}
	}

	return ""
}
