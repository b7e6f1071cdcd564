package command

import (
	"sort"
	"strings"
)

const maxSuggestDistance = 3

// levenshtein returns the case-insensitive edit distance between a and b.
func levenshtein(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Suggest returns up to maxResults registered commands close to input,
// nearest first.
func (r *Registry) Suggest(input string, maxResults int) []string {
	type candidate struct {
		name     string
		distance int
	}

	var found []candidate
	for _, name := range r.Commands() {
		if d := levenshtein(input, name); d > 0 && d <= maxSuggestDistance {
			found = append(found, candidate{name: name, distance: d})
		}
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].distance != found[j].distance {
			return found[i].distance < found[j].distance
		}
		return found[i].name < found[j].name
	})
	if len(found) > maxResults {
		found = found[:maxResults]
	}

	out := make([]string, len(found))
	for i, c := range found {
		out[i] = c.name
	}
	return out
}
