package main

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggest returns the candidate closest to input, or "" when nothing is
// plausibly close.
func suggest(input string, candidates []string) string {
	ranks := fuzzy.RankFindNormalizedFold(input, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
