package dataprocessing

import (
	"sort"
	"strings"
)

// KeySeparator joins composite group-key parts. It is the ASCII unit separator,
// which never occurs in CSV text.
const KeySeparator = "\x1f"

// JoinKey builds a composite key from its parts
func JoinKey(parts ...string) string {
	return strings.Join(parts, KeySeparator)
}

// Group is the ordered set of items sharing one composite key
type Group[T any] struct {
	Key   string
	Parts []string
	Items []T
}

// Groups keeps groups in first-seen key order
type Groups[T any] struct {
	order []*Group[T]
	index map[string]*Group[T]
}

// GroupBy partitions items by the composite key keyFn returns. Items keep
// their input order inside each group.
func GroupBy[T any](items []T, keyFn func(T) []string) *Groups[T] {
	g := &Groups[T]{index: make(map[string]*Group[T])}
	for _, item := range items {
		parts := keyFn(item)
		key := JoinKey(parts...)
		grp, ok := g.index[key]
		if !ok {
			grp = &Group[T]{Key: key, Parts: parts}
			g.index[key] = grp
			g.order = append(g.order, grp)
		}
		grp.Items = append(grp.Items, item)
	}
	return g
}

// Len returns the number of distinct keys
func (g *Groups[T]) Len() int {
	return len(g.order)
}

// All returns the groups in first-seen order
func (g *Groups[T]) All() []*Group[T] {
	return g.order
}

// Project maps items to a numeric series
func Project[T any](items []T, fn func(T) float64) []float64 {
	out := make([]float64, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// Sum adds values in order
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Mean is the arithmetic mean, 0 for no values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Median sorts a copy of values; even counts average the two middle values. 0 for no values.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// Count returns the number of items
func Count[T any](items []T) int {
	return len(items)
}

// Percentage is 100 x matching / total, 0 for no items
func Percentage[T any](items []T, pred func(T) bool) float64 {
	if len(items) == 0 {
		return 0
	}
	matches := 0
	for _, item := range items {
		if pred(item) {
			matches++
		}
	}
	return float64(matches) / float64(len(items)) * 100
}

// Distinct counts unique non-empty values returned by fn
func Distinct[T any](items []T, fn func(T) string) int {
	seen := make(map[string]struct{})
	for _, item := range items {
		if v := fn(item); v != "" {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
