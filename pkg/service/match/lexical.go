package match

import (
	"sort"
	"strings"
)

// Candidate is a scorable piece of reference text with an opaque payload
type Candidate struct {
	Text    string
	Payload any
}

// Scored is a candidate selected by a lexical scan
type Scored struct {
	Candidate Candidate
	Score     int
}

// BestMatch scans all candidates and returns the one whose reference text
// shares the most words with the query.
//
// Scoring is deliberately asymmetric: the candidate text (the short,
// canonical side, such as a FAQ question or keyword phrase) is split
// into words, and each word that occurs as a substring of the lowercased
// query counts one point. Short trigger phrases are matched inside longer
// free-form user text, not the other way around.
//
// Only a strictly higher score replaces the current best, so ties resolve
// to the candidate encountered first. A score of zero is never a match.
func BestMatch(query string, candidates []Candidate) (Scored, bool) {
	normalized := strings.ToLower(query)
	if strings.TrimSpace(normalized) == "" {
		return Scored{}, false
	}

	var best Scored
	for _, c := range candidates {
		score := 0
		for _, word := range strings.Fields(strings.ToLower(c.Text)) {
			if strings.Contains(normalized, word) {
				score++
			}
		}
		if score > best.Score {
			best = Scored{Candidate: c, Score: score}
		}
	}

	if best.Score == 0 {
		return Scored{}, false
	}
	return best, true
}

// TopCandidates scores every candidate the same way BestMatch does and
// returns at most k candidates with a nonzero score, highest first.
// Exact ties keep their original order.
func TopCandidates(query string, candidates []Candidate, k int) []Scored {
	normalized := strings.ToLower(query)
	if k <= 0 || strings.TrimSpace(normalized) == "" {
		return nil
	}

	scored := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		score := 0
		for _, word := range strings.Fields(strings.ToLower(c.Text)) {
			if strings.Contains(normalized, word) {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, Scored{Candidate: c, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

// FirstMatch returns the first candidate whose whole text occurs as a
// substring of the lowercased query, in candidate iteration order. Unlike
// BestMatch it short-circuits and does not compare scores across
// candidates; the two scans have different tie-break semantics and are
// used by different lookups.
func FirstMatch(query string, candidates []Candidate) (Candidate, bool) {
	normalized := strings.ToLower(query)
	if strings.TrimSpace(normalized) == "" {
		return Candidate{}, false
	}

	for _, c := range candidates {
		keyword := strings.ToLower(c.Text)
		if keyword == "" {
			continue
		}
		if strings.Contains(normalized, keyword) {
			return c, true
		}
	}

	return Candidate{}, false
}
