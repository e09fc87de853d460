package match_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/startupsole/solechat/pkg/service/match"
)

func TestBestMatch(t *testing.T) {
	t.Run("matches FAQ question words inside user message", func(t *testing.T) {
		candidates := []match.Candidate{
			{Text: "LLC Nedir?", Payload: "llc"},
			{Text: "EIN Nedir?", Payload: "ein"},
			{Text: "Vergi beyannamesi nasıl verilir?", Payload: "tax"},
		}

		scored, ok := match.BestMatch("What is an EIN?", candidates)
		gt.Value(t, ok).Equal(true)
		gt.Value(t, scored.Candidate.Payload).Equal("ein")
		gt.Number(t, scored.Score).Greater(0)
	})

	t.Run("zero score is no match", func(t *testing.T) {
		candidates := []match.Candidate{
			{Text: "şirket kuruluşu", Payload: 1},
		}

		_, ok := match.BestMatch("totally unrelated", candidates)
		gt.Value(t, ok).Equal(false)
	})

	t.Run("ties resolve to first candidate", func(t *testing.T) {
		candidates := []match.Candidate{
			{Text: "ein basvurusu", Payload: "first"},
			{Text: "ein numarasi", Payload: "second"},
		}

		scored, ok := match.BestMatch("ein hakkında bilgi", candidates)
		gt.Value(t, ok).Equal(true)
		gt.Value(t, scored.Candidate.Payload).Equal("first")
	})

	t.Run("deterministic for same query and order", func(t *testing.T) {
		candidates := []match.Candidate{
			{Text: "amazon fba nedir", Payload: "a"},
			{Text: "fba deposu nedir", Payload: "b"},
		}

		first, ok := match.BestMatch("amazon fba nedir merak ediyorum", candidates)
		gt.Value(t, ok).Equal(true)
		for i := 0; i < 10; i++ {
			again, ok := match.BestMatch("amazon fba nedir merak ediyorum", candidates)
			gt.Value(t, ok).Equal(true)
			gt.Value(t, again.Candidate.Payload).Equal(first.Candidate.Payload)
		}
	})

	t.Run("empty query yields no match", func(t *testing.T) {
		candidates := []match.Candidate{{Text: "anything", Payload: 1}}
		_, ok := match.BestMatch("", candidates)
		gt.Value(t, ok).Equal(false)

		_, ok = match.BestMatch("   ", candidates)
		gt.Value(t, ok).Equal(false)
	})

	t.Run("empty candidate list yields no match", func(t *testing.T) {
		_, ok := match.BestMatch("some question", nil)
		gt.Value(t, ok).Equal(false)
	})
}

func TestTopCandidates(t *testing.T) {
	t.Run("returns at most k results ordered by score", func(t *testing.T) {
		candidates := []match.Candidate{
			{Text: "kargo ücretleri", Payload: "shipping"},
			{Text: "amazon fba kargo süreci", Payload: "fba"},
			{Text: "vergi beyannamesi", Payload: "tax"},
		}

		scored := match.TopCandidates("amazon fba kargo hakkında soru", candidates, 2)
		gt.Array(t, scored).Length(2)
		gt.Value(t, scored[0].Candidate.Payload).Equal("fba")
		gt.Value(t, scored[1].Candidate.Payload).Equal("shipping")
	})

	t.Run("zero-score candidates are dropped", func(t *testing.T) {
		candidates := []match.Candidate{
			{Text: "şirket kuruluşu", Payload: 1},
			{Text: "ein numarası", Payload: 2},
		}

		scored := match.TopCandidates("ein nedir", candidates, 5)
		gt.Array(t, scored).Length(1)
		gt.Value(t, scored[0].Candidate.Payload).Equal(2)
	})

	t.Run("ties keep candidate order", func(t *testing.T) {
		candidates := []match.Candidate{
			{Text: "ein basvurusu", Payload: "first"},
			{Text: "ein numarasi", Payload: "second"},
		}

		scored := match.TopCandidates("ein hakkında", candidates, 2)
		gt.Array(t, scored).Length(2)
		gt.Value(t, scored[0].Candidate.Payload).Equal("first")
		gt.Value(t, scored[1].Candidate.Payload).Equal("second")
	})

	t.Run("empty query or non-positive k yields nothing", func(t *testing.T) {
		candidates := []match.Candidate{{Text: "ein", Payload: 1}}

		gt.Array(t, match.TopCandidates("", candidates, 3)).Length(0)
		gt.Array(t, match.TopCandidates("ein", candidates, 0)).Length(0)
	})
}

func TestFirstMatch(t *testing.T) {
	t.Run("returns first keyword found in query", func(t *testing.T) {
		candidates := []match.Candidate{
			{Text: "LLC", Payload: "llc-link"},
			{Text: "EIN", Payload: "ein-link"},
		}

		c, ok := match.FirstMatch("ein ve llc arasındaki fark nedir", candidates)
		gt.Value(t, ok).Equal(true)
		gt.Value(t, c.Payload).Equal("llc-link")
	})

	t.Run("whole keyword must appear as substring", func(t *testing.T) {
		candidates := []match.Candidate{
			{Text: "stripe atlas", Payload: 1},
		}

		_, ok := match.FirstMatch("stripe hesabı açmak istiyorum", candidates)
		gt.Value(t, ok).Equal(false)
	})

	t.Run("case insensitive", func(t *testing.T) {
		candidates := []match.Candidate{
			{Text: "EIN", Payload: "ein"},
		}

		c, ok := match.FirstMatch("What is an ein number?", candidates)
		gt.Value(t, ok).Equal(true)
		gt.Value(t, c.Payload).Equal("ein")
	})

	t.Run("empty query or candidates yields no match", func(t *testing.T) {
		_, ok := match.FirstMatch("", []match.Candidate{{Text: "x"}})
		gt.Value(t, ok).Equal(false)

		_, ok = match.FirstMatch("query", nil)
		gt.Value(t, ok).Equal(false)
	})
}
