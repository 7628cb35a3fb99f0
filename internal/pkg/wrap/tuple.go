package wrap

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Entry is one key/value pair of a map, for fanning maps out to workers.
type Entry[K constraints.Ordered, V any] struct {
	Key K
	Val V
}

// Entries lists m ordered by key, so that work derived from a map is scheduled and
// logged in a stable order.
func Entries[K constraints.Ordered, V any](m map[K]V) []Entry[K, V] {
	res := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		res = append(res, Entry[K, V]{Key: k, Val: v})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Key < res[j].Key })
	return res
}

// Collect builds a map back from entries. Later entries win on duplicate keys.
func Collect[K constraints.Ordered, V any](entries []Entry[K, V]) map[K]V {
	res := make(map[K]V, len(entries))
	for _, e := range entries {
		res[e.Key] = e.Val
	}
	return res
}
