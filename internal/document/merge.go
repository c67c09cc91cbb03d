package document

import "sort"

// Merge reconciles the local collection with a freshly pulled remote one.
// Every local document seeds the result; every pulled document then
// overwrites (or inserts) under the same id. A pulled copy always replaces
// the local copy regardless of which UpdatedAt is newer: last-writer-wins
// by source, not by timestamp. This is a deliberate simplification carried
// over from the client behavior; do not "fix" it with a timestamp compare,
// user-visible results must match.
//
// The output is sorted by UpdatedAt descending so the most recently touched
// document surfaces first.
func Merge(local, pulled []Document) []Document {
	merged := make(map[string]Document, len(local)+len(pulled))
	order := make([]string, 0, len(local)+len(pulled))

	for _, d := range local {
		if _, ok := merged[d.ID]; !ok {
			order = append(order, d.ID)
		}
		merged[d.ID] = d
	}
	for _, d := range pulled {
		if _, ok := merged[d.ID]; !ok {
			order = append(order, d.ID)
		}
		merged[d.ID] = d
	}

	out := make([]Document, 0, len(merged))
	for _, id := range order {
		out = append(out, merged[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt > out[j].UpdatedAt
	})
	return out
}
