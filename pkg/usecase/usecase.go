package usecase

import (
	"github.com/m-mizutani/gollem"
	"github.com/startupsole/solechat/pkg/domain/interfaces"
	"github.com/startupsole/solechat/pkg/domain/model/config"
	"github.com/startupsole/solechat/pkg/service/embedding"
)

type UseCases struct {
	repo      interfaces.Repository
	llmClient gollem.LLMClient
	embedder  embedding.Service
	chatCfg   *config.ChatConfig

	Lookup   *LookupUseCase
	Chat     *ChatUseCase
	Sessions *SessionManager
}

type Option func(*UseCases)

// WithLLMClient enables the embedding-backed blog lookup and the
// LLM-grounded chat endpoint
func WithLLMClient(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.llmClient = client
	}
}

func WithChatConfig(cfg *config.ChatConfig) Option {
	return func(uc *UseCases) {
		uc.chatCfg = cfg
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.chatCfg == nil {
		uc.chatCfg = config.Default()
	}
	uc.embedder = embedding.New(uc.llmClient)

	uc.Sessions = NewSessionManager(repo, uc.chatCfg.HistoryWindow)
	uc.Lookup = NewLookupUseCase(repo, uc.embedder, uc.chatCfg)
	uc.Chat = NewChatUseCase(repo, uc.llmClient, uc.Sessions, uc.chatCfg)

	return uc
}
