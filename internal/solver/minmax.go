package solver

import "golang.org/x/exp/constraints"

// minBy returns the item with the smallest key, keeping the earliest
// item on ties. ok is false for an empty slice.
func minBy[T any, K constraints.Ordered](items []T, key func(T) K) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	bestKey := key(best)
	for _, it := range items[1:] {
		if k := key(it); k < bestKey {
			best, bestKey = it, k
		}
	}
	return best, true
}

// maxBy returns the item with the largest key, keeping the earliest
// item on ties. ok is false for an empty slice.
func maxBy[T any, K constraints.Ordered](items []T, key func(T) K) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	bestKey := key(best)
	for _, it := range items[1:] {
		if k := key(it); k > bestKey {
			best, bestKey = it, k
		}
	}
	return best, true
}
