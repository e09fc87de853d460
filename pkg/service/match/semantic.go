package match

import (
	"math"
	"sort"
)

// Vector is an embedded candidate for semantic scoring
type Vector struct {
	ID        string
	Embedding []float32
	Payload   any
}

// Match is a candidate selected by semantic scoring
type Match struct {
	Vector     Vector
	Similarity float64
}

// CosineSimilarity returns dot(a,b) / (|a|*|b|). It returns 0 when the
// lengths differ or either operand has zero norm, never NaN.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	return dot / denom
}

// TopMatches scores candidates against the query vector by cosine
// similarity and returns at most k results, each with similarity >=
// threshold. Candidates are sorted by similarity descending with a stable
// sort, so exact ties keep their original order. The list is truncated to
// k before the threshold filter runs: the result can hold fewer than k
// items, but never a low-similarity item padded in to reach k.
func TopMatches(query []float32, candidates []Vector, k int, threshold float64) []Match {
	if k <= 0 || len(candidates) == 0 {
		return nil
	}

	scored := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, Match{
			Vector:     c,
			Similarity: CosineSimilarity(query, c.Embedding),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})

	if len(scored) > k {
		scored = scored[:k]
	}

	result := make([]Match, 0, len(scored))
	for _, m := range scored {
		if m.Similarity >= threshold {
			result = append(result, m)
		}
	}

	return result
}
