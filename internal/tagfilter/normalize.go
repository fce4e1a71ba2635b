// Package tagfilter counts tag usage and applies the status and tag filters
// shared by the calendar and history views.
package tagfilter

import "strings"

// NormalizeTag trims and lower-cases a single tag.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// Normalize returns tags trimmed, lower-cased and de-duplicated, keeping the
// first occurrence order. Empty tags are dropped.
func Normalize(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		n := NormalizeTag(tag)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Merge appends to vocabulary every tag it does not already contain and
// reports which tags were new.
func Merge(vocabulary, tags []string) (merged []string, added []string) {
	known := make(map[string]struct{}, len(vocabulary))
	for _, v := range vocabulary {
		known[v] = struct{}{}
	}
	merged = append(make([]string, 0, len(vocabulary)+len(tags)), vocabulary...)
	for _, tag := range Normalize(tags) {
		if _, ok := known[tag]; ok {
			continue
		}
		known[tag] = struct{}{}
		merged = append(merged, tag)
		added = append(added, tag)
	}
	return merged, added
}
