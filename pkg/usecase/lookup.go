package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/startupsole/solechat/pkg/domain/interfaces"
	"github.com/startupsole/solechat/pkg/domain/model"
	"github.com/startupsole/solechat/pkg/domain/model/config"
	"github.com/startupsole/solechat/pkg/service/embedding"
	"github.com/startupsole/solechat/pkg/service/match"
	"github.com/startupsole/solechat/pkg/utils/logging"
)

// LookupUseCase answers a single utterance from one reference source.
// Every lookup returns a user-visible message: a reply template filled
// with the match, or the source's not-found text. Only infrastructure
// failures surface as errors.
type LookupUseCase struct {
	repo     interfaces.Repository
	embedder embedding.Service
	cfg      *config.ChatConfig
}

// NewLookupUseCase creates a new LookupUseCase. embedder may be nil, in
// which case the blog lookup reports no match instead of scoring
// semantically.
func NewLookupUseCase(repo interfaces.Repository, embedder embedding.Service, cfg *config.ChatConfig) *LookupUseCase {
	if cfg == nil {
		cfg = config.Default()
	}
	return &LookupUseCase{
		repo:     repo,
		embedder: embedder,
		cfg:      cfg,
	}
}

// FAQ returns the best-matching FAQ entry as a canned reply
func (uc *LookupUseCase) FAQ(ctx context.Context, query string) (string, error) {
	faqs, err := uc.repo.FAQ().List(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to list FAQs")
	}

	candidates := make([]match.Candidate, 0, len(faqs))
	for _, f := range faqs {
		candidates = append(candidates, match.Candidate{Text: f.Question, Payload: f})
	}

	scored, ok := match.BestMatch(query, candidates)
	if !ok {
		return uc.cfg.Messages.FAQNotFound, nil
	}

	faq := scored.Candidate.Payload.(*model.FAQ)
	logging.From(ctx).Info("FAQ match", "question", faq.Question, "score", scored.Score)

	return fmt.Sprintf(uc.cfg.Messages.FAQReply, faq.Question, faq.Answer), nil
}

// Keyword returns the first keyword found inside the utterance
func (uc *LookupUseCase) Keyword(ctx context.Context, query string) (string, error) {
	keywords, err := uc.repo.Keyword().List(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to list keywords")
	}

	candidates := make([]match.Candidate, 0, len(keywords))
	for _, k := range keywords {
		candidates = append(candidates, match.Candidate{Text: k.Keyword, Payload: k})
	}

	found, ok := match.FirstMatch(query, candidates)
	if !ok {
		return uc.cfg.Messages.KeywordNotFound, nil
	}

	kw := found.Payload.(*model.Keyword)
	logging.From(ctx).Info("keyword match", "keyword", kw.Keyword)

	return fmt.Sprintf(uc.cfg.Messages.KeywordReply, kw.Keyword, kw.Keyword, kw.Link), nil
}

// Blog scores articles against the utterance by embedding cosine
// similarity. Articles without a cached embedding get one computed and
// written back, so later requests reuse the vector without another
// inference call. When the query itself cannot be embedded the lookup
// degrades to a clarification reply instead of failing the request.
func (uc *LookupUseCase) Blog(ctx context.Context, query string) (string, error) {
	if uc.embedder == nil {
		return uc.cfg.Messages.BlogNotFound, nil
	}

	logger := logging.From(ctx)

	queryVec, err := uc.embedder.Embed(ctx, query)
	if err != nil {
		if errors.Is(err, embedding.ErrEmptyText) {
			return uc.cfg.Messages.Clarification, nil
		}
		logger.Warn("failed to embed query, asking for clarification", "error", err.Error())
		return uc.cfg.Messages.Clarification, nil
	}

	articles, err := uc.repo.Article().List(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to list articles")
	}

	vectors := make([]match.Vector, 0, len(articles))
	for _, a := range articles {
		vec := a.Embedding
		if len(vec) == 0 {
			computed, err := uc.embedder.EmbedArticle(ctx, a)
			if err != nil {
				logger.Warn("failed to embed article, skipping",
					"articleID", a.ID,
					"title", a.Title,
					"error", err.Error(),
				)
				continue
			}
			if err := uc.repo.Article().UpdateEmbedding(ctx, a.ID, computed); err != nil {
				logger.Warn("failed to cache article embedding",
					"articleID", a.ID,
					"error", err.Error(),
				)
			}
			vec = computed
		}
		vectors = append(vectors, match.Vector{
			ID:        string(a.ID),
			Embedding: vec,
			Payload:   a,
		})
	}

	matches := match.TopMatches(queryVec, vectors, uc.cfg.TopK, uc.cfg.SimilarityThreshold)
	if len(matches) == 0 {
		return uc.cfg.Messages.BlogNotFound, nil
	}

	best := matches[0].Vector.Payload.(*model.Article)
	logger.Info("blog match", "title", best.Title, "similarity", matches[0].Similarity)

	return fmt.Sprintf(uc.cfg.Messages.BlogReply, best.Title, best.Link), nil
}

// containsNotFoundMarker reports whether the reply is a templated
// non-answer that should fall through to the next source
func (uc *LookupUseCase) containsNotFoundMarker(reply string) bool {
	for _, marker := range uc.cfg.NotFoundMarkers {
		if marker != "" && strings.Contains(reply, marker) {
			return true
		}
	}
	return false
}
