package tagfilter

import "strings"

// DefaultSuggestLimit is how many suggestions the tag input shows.
const DefaultSuggestLimit = 5

// Suggest returns up to limit vocabulary tags not already in current that
// contain the typed fragment. An empty fragment matches everything.
func Suggest(vocabulary, current []string, input string, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	input = NormalizeTag(input)

	taken := make(map[string]struct{}, len(current))
	for _, c := range current {
		taken[NormalizeTag(c)] = struct{}{}
	}

	out := make([]string, 0, limit)
	for _, tag := range vocabulary {
		if _, ok := taken[tag]; ok {
			continue
		}
		if input != "" && !strings.Contains(tag, input) {
			continue
		}
		out = append(out, tag)
		if len(out) == limit {
			break
		}
	}
	return out
}
