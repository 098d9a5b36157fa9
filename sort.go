package ksuid

import "slices"

// Sort orders ids in place, oldest first.
func Sort(ids []KSUID) {
	slices.SortFunc(ids, Compare)
}

// IsSorted reports whether ids are in ascending order.
func IsSorted(ids []KSUID) bool {
	return slices.IsSortedFunc(ids, Compare)
}
