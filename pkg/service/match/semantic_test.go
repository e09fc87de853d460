package match_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/startupsole/solechat/pkg/service/match"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical non-zero vectors score 1", func(t *testing.T) {
		v := []float32{0.3, 0.5, 0.2}
		got := match.CosineSimilarity(v, v)
		gt.Number(t, math.Abs(got-1.0)).Less(1e-9)
	})

	t.Run("zero vector scores 0, not NaN", func(t *testing.T) {
		v := []float32{0.3, 0.5, 0.2}
		zero := []float32{0, 0, 0}

		gt.Number(t, match.CosineSimilarity(v, zero)).Equal(0)
		gt.Number(t, match.CosineSimilarity(zero, v)).Equal(0)
		gt.Number(t, match.CosineSimilarity(zero, zero)).Equal(0)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		got := match.CosineSimilarity([]float32{1, 0}, []float32{0, 1})
		gt.Number(t, math.Abs(got)).Less(1e-9)
	})

	t.Run("mismatched lengths score 0", func(t *testing.T) {
		gt.Number(t, match.CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3})).Equal(0)
	})
}

func TestTopMatches(t *testing.T) {
	query := []float32{1, 0}
	candidates := []match.Vector{
		{ID: "a", Embedding: []float32{1, 0}},       // similarity 1.0
		{ID: "b", Embedding: []float32{0.9, 0.1}},   // high
		{ID: "c", Embedding: []float32{0.1, 0.9}},   // low
		{ID: "d", Embedding: []float32{0, 1}},       // 0
		{ID: "e", Embedding: []float32{0.95, 0.05}}, // high
	}

	t.Run("never returns more than k", func(t *testing.T) {
		got := match.TopMatches(query, candidates, 2, 0)
		gt.Array(t, got).Length(2)
		gt.Value(t, got[0].Vector.ID).Equal("a")
	})

	t.Run("every result meets the threshold", func(t *testing.T) {
		got := match.TopMatches(query, candidates, 5, 0.5)
		for _, m := range got {
			gt.Number(t, m.Similarity).GreaterOrEqual(0.5)
		}
	})

	t.Run("threshold filters after truncation", func(t *testing.T) {
		// k=2 selects a and e; the threshold then drops nothing, but a
		// high threshold must not pull in lower-ranked candidates.
		got := match.TopMatches(query, candidates, 2, 0.999)
		gt.Array(t, got).Length(1)
		gt.Value(t, got[0].Vector.ID).Equal("a")
	})

	t.Run("stable on exact ties", func(t *testing.T) {
		tied := []match.Vector{
			{ID: "first", Embedding: []float32{2, 0}},
			{ID: "second", Embedding: []float32{3, 0}},
		}
		got := match.TopMatches(query, tied, 2, 0)
		gt.Array(t, got).Length(2)
		gt.Value(t, got[0].Vector.ID).Equal("first")
		gt.Value(t, got[1].Vector.ID).Equal("second")
	})

	t.Run("empty inputs yield nil", func(t *testing.T) {
		gt.Array(t, match.TopMatches(query, nil, 2, 0)).Length(0)
		gt.Array(t, match.TopMatches(query, candidates, 0, 0)).Length(0)
	})
}
