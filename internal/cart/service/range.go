package service

import (
	"papergenius_backend/platform/apperr"
)

// SliceInclusive returns the contiguous sub-list of keys between the two
// indexes, inclusive, swapping the endpoints when they arrive out of order.
func SliceInclusive(sortedKeys []string, startIdx, endIdx int) []string {
	if startIdx > endIdx {
		startIdx, endIdx = endIdx, startIdx
	}
	return sortedKeys[startIdx : endIdx+1]
}

// SelectRange resolves two exact year keys against the sorted key list and
// returns the inclusive range between them. The storefront form posts keys
// verbatim, so anything that does not match exactly is a bad request.
func SelectRange(sortedKeys []string, startYear, endYear string) ([]string, error) {
	startIdx := indexOf(sortedKeys, startYear)
	endIdx := indexOf(sortedKeys, endYear)
	if startIdx < 0 || endIdx < 0 {
		return nil, apperr.Validation("selected years are not available for this item")
	}
	return SliceInclusive(sortedKeys, startIdx, endIdx), nil
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}
