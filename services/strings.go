package services

import "strings"

// UniqueStrings normalizes a list field: entries are whitespace-trimmed,
// empties dropped, and duplicates removed keeping first-occurrence order.
// Comparison is case sensitive; "Node" and "node" stay distinct. The result
// is never nil. Idempotent.
func UniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// MergeStrings reconciles a stored list with a submitted one under PATCH
// semantics: every stored entry is kept in place, then new unique normalized
// entries are appended. Merging is additive only; removal requires a full
// replace.
func MergeStrings(existing, incoming []string) []string {
	out := make([]string, 0, len(existing)+len(incoming))
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	for _, v := range existing {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range UniqueStrings(incoming) {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
