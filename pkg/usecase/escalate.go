package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/startupsole/solechat/pkg/domain/model/config"
	"github.com/startupsole/solechat/pkg/utils/logging"
)

// Strategy is one lookup source in the escalation chain
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, query string) (string, error)
}

type keywordStrategy struct{ uc *LookupUseCase }

func (s *keywordStrategy) Name() string { return config.SourceKeyword }
func (s *keywordStrategy) Attempt(ctx context.Context, query string) (string, error) {
	return s.uc.Keyword(ctx, query)
}

type faqStrategy struct{ uc *LookupUseCase }

func (s *faqStrategy) Name() string { return config.SourceFAQ }
func (s *faqStrategy) Attempt(ctx context.Context, query string) (string, error) {
	return s.uc.FAQ(ctx, query)
}

type blogStrategy struct{ uc *LookupUseCase }

func (s *blogStrategy) Name() string { return config.SourceBlog }
func (s *blogStrategy) Attempt(ctx context.Context, query string) (string, error) {
	return s.uc.Blog(ctx, query)
}

func (uc *LookupUseCase) strategy(name string) (Strategy, error) {
	switch name {
	case config.SourceKeyword:
		return &keywordStrategy{uc: uc}, nil
	case config.SourceFAQ:
		return &faqStrategy{uc: uc}, nil
	case config.SourceBlog:
		return &blogStrategy{uc: uc}, nil
	default:
		return nil, goerr.New("unknown lookup source", goerr.V("source", name))
	}
}

// Ask walks the configured escalation chain and returns the first reply
// that is not a templated non-answer. Sources that yield nothing or only
// a not-found text fall through to the next one; when every source is
// exhausted the configured decline message is the terminal reply.
func (uc *LookupUseCase) Ask(ctx context.Context, query string) (string, error) {
	logger := logging.From(ctx)

	for _, name := range uc.cfg.EscalationOrder {
		strat, err := uc.strategy(name)
		if err != nil {
			return "", err
		}

		reply, err := strat.Attempt(ctx, query)
		if err != nil {
			return "", goerr.Wrap(err, "lookup source failed", goerr.V("source", name))
		}

		if reply == "" || uc.containsNotFoundMarker(reply) {
			logger.Info("no answer from source, escalating", "source", name)
			continue
		}

		return reply, nil
	}

	return uc.cfg.Messages.Decline, nil
}
