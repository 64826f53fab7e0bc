// Package aggregate combines independently loaded collections into the
// derived values the dashboard renders: cross-referenced lookups, dependent
// selector options, status buckets and predicate-gated aggregates. Nothing
// here is persisted; every value is recomputed from its source collections
// on each call.
package aggregate

// Lookup finds the record whose key equals id. The second return value
// reports whether a match was found; an unmatched id is not an error.
func Lookup[T any](items []T, id string, key func(T) string) (T, bool) {
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// LookupLabel resolves a foreign key to a display label, returning fallback
// when no record matches.
func LookupLabel[T any](items []T, id string, key func(T) string, label func(T) string, fallback string) string {
	item, ok := Lookup(items, id, key)
	if !ok {
		return fallback
	}
	return label(item)
}

// OptionSet is the result of dependent filtering. When the parent selection
// is unset the selector must be disabled, not merely unfiltered, so Disabled
// is an explicit flag rather than an inference from an empty Items slice.
type OptionSet[T any] struct {
	Disabled bool `json:"disabled"`
	Items    []T  `json:"items"`
}

// DependentOptions returns the candidate records whose foreign key matches
// the parent selection. An empty parent yields a disabled set with zero
// options.
func DependentOptions[T any](items []T, parentID string, fk func(T) string) OptionSet[T] {
	if parentID == "" {
		return OptionSet[T]{Disabled: true, Items: []T{}}
	}
	filtered := make([]T, 0)
	for _, item := range items {
		if fk(item) == parentID {
			filtered = append(filtered, item)
		}
	}
	return OptionSet[T]{Items: filtered}
}

// PartitionByStatus splits items into disjoint buckets per known status
// value. A record whose status is not in known falls into defaultBucket,
// never dropped, so bucket sizes always sum to len(items).
func PartitionByStatus[T any](items []T, status func(T) string, known []string, defaultBucket string) map[string][]T {
	buckets := make(map[string][]T, len(known))
	for _, s := range known {
		buckets[s] = []T{}
	}
	if _, ok := buckets[defaultBucket]; !ok {
		buckets[defaultBucket] = []T{}
	}
	for _, item := range items {
		s := status(item)
		if _, ok := buckets[s]; !ok || s == "" {
			s = defaultBucket
		}
		buckets[s] = append(buckets[s], item)
	}
	return buckets
}

// SumWhere totals value over the items matching pred. An empty or fully
// filtered-out collection sums to zero.
func SumWhere[T any](items []T, pred func(T) bool, value func(T) float64) float64 {
	var total float64
	for _, item := range items {
		if pred(item) {
			total += value(item)
		}
	}
	return total
}

// CountWhere counts the items matching pred.
func CountWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// MeterUsage derives consumption from a pair of meter readings. The stored
// total cost is never recomputed from this value; the server's figure at
// recording time is the value of record.
func MeterUsage(currentReading, previousReading float64) float64 {
	return currentReading - previousReading
}

// OccupancyRate returns occupied over total as a percentage, rounded to two
// decimals. Zero rooms yields zero, not a division error.
func OccupancyRate(occupied, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(occupied) / float64(total) * 100
	return float64(int64(rate*100+0.5)) / 100
}
