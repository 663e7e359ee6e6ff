package surfacelist

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// matchEntries returns the indices of entries matching query, in append
// order, or nil when query is blank. Titles and author names are both
// searched. A query with no fuzzy hits falls back to a plain substring test.
func matchEntries(entries []*ItemEntry, query string) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	labels := make([]string, len(entries))
	for i, entry := range entries {
		labels[i] = filterLabel(entry)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	matches := make([]int, 0, len(ranks))
	for _, rank := range ranks {
		matches = append(matches, rank.OriginalIndex)
	}
	if len(matches) == 0 {
		lower := strings.ToLower(trimmed)
		for i, label := range labels {
			if strings.Contains(strings.ToLower(label), lower) {
				matches = append(matches, i)
			}
		}
	}
	sort.Ints(matches)
	return matches
}

func filterLabel(entry *ItemEntry) string {
	s := entry.surface
	if names := s.AuthorNames(); names != "" {
		return s.Title + " " + names
	}
	return s.Title
}
