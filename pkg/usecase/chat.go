package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/startupsole/solechat/pkg/domain/interfaces"
	"github.com/startupsole/solechat/pkg/domain/model"
	"github.com/startupsole/solechat/pkg/domain/model/config"
	"github.com/startupsole/solechat/pkg/domain/types"
	"github.com/startupsole/solechat/pkg/service/match"
	"github.com/startupsole/solechat/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

//go:embed prompt/chat_system.md
var chatSystemPromptTmpl string

var chatSystemPrompt = template.Must(template.New("chat_system").Parse(chatSystemPromptTmpl))

// excerptLimit caps the article excerpt length inside the prompt
const excerptLimit = 200

// ChatUseCase answers an utterance with one LLM call grounded on the
// best-matching FAQ and blog context, carrying the session history
// across calls
type ChatUseCase struct {
	repo      interfaces.Repository
	llmClient gollem.LLMClient
	sessions  *SessionManager
	cfg       *config.ChatConfig
}

// NewChatUseCase creates a new ChatUseCase. llmClient may be nil, in
// which case Chat fails with ErrChatDisabled.
func NewChatUseCase(repo interfaces.Repository, llmClient gollem.LLMClient, sessions *SessionManager, cfg *config.ChatConfig) *ChatUseCase {
	if cfg == nil {
		cfg = config.Default()
	}
	if sessions == nil {
		sessions = NewSessionManager(repo, cfg.HistoryWindow)
	}
	return &ChatUseCase{
		repo:      repo,
		llmClient: llmClient,
		sessions:  sessions,
		cfg:       cfg,
	}
}

// ChatOutput is the result of one chat turn. Messages is the session
// window after the new user and assistant turns were appended.
type ChatOutput struct {
	SessionID model.SessionID
	Messages  []model.Message
}

// Chat runs one grounded conversation turn. A blank sessionID starts a
// fresh session; the effective ID is always part of the output so the
// caller can carry it into the next request.
func (uc *ChatUseCase) Chat(ctx context.Context, sessionID model.SessionID, userMessage string) (*ChatOutput, error) {
	if uc.llmClient == nil {
		return nil, goerr.Wrap(ErrChatDisabled, "cannot handle chat request")
	}

	if sessionID == "" {
		sessionID = model.NewSessionID()
	}

	session, err := uc.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// FAQ and blog fetches are read-only and independent
	var faqs []*model.FAQ
	var articles []*model.Article
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		faqs, err = uc.repo.FAQ().List(egCtx)
		return err
	})
	eg.Go(func() error {
		var err error
		articles, err = uc.repo.Article().List(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch reference data")
	}

	systemPrompt, err := uc.buildSystemPrompt(userMessage, session.Messages, faqs, articles)
	if err != nil {
		return nil, err
	}

	llmSession, err := uc.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := llmSession.GenerateContent(ctx, gollem.Text(userMessage))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate chat completion")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.Wrap(ErrEmptyCompletion, "chat completion has no text")
	}
	reply := strings.Join(resp.Texts, "\n")

	logging.From(ctx).Info("chat turn",
		"sessionID", sessionID,
		"historyLen", len(session.Messages),
		"faqCount", len(faqs),
		"articleCount", len(articles),
	)

	session.Messages = AppendTurn(session.Messages, model.Message{Role: types.RoleUser, Content: userMessage})
	session.Messages = AppendTurn(session.Messages, model.Message{Role: types.RoleAssistant, Content: reply})

	saved, err := uc.sessions.Save(ctx, session)
	if err != nil {
		return nil, err
	}

	return &ChatOutput{
		SessionID: sessionID,
		Messages:  saved.Messages,
	}, nil
}

// chatPromptFAQ is a FAQ entry for the system prompt template
type chatPromptFAQ struct {
	Question string
	Answer   string
}

// chatPromptArticle is a blog article for the system prompt template
type chatPromptArticle struct {
	Title   string
	Excerpt string
	Link    string
}

// chatPromptMessage is a prior conversation turn for the template
type chatPromptMessage struct {
	Role    string
	Content string
}

// chatPromptData holds all data for the chat system prompt template
type chatPromptData struct {
	NoData   string
	FAQs     []chatPromptFAQ
	Articles []chatPromptArticle
	History  []chatPromptMessage
}

// buildSystemPrompt selects the top-K FAQ and blog candidates for the
// utterance and renders them, with the prior session turns, into the
// grounding prompt
func (uc *ChatUseCase) buildSystemPrompt(userMessage string, history []model.Message, faqs []*model.FAQ, articles []*model.Article) (string, error) {
	data := chatPromptData{
		NoData: uc.cfg.Messages.Decline,
	}

	faqCandidates := make([]match.Candidate, 0, len(faqs))
	for _, f := range faqs {
		faqCandidates = append(faqCandidates, match.Candidate{Text: f.Question, Payload: f})
	}
	for _, scored := range match.TopCandidates(userMessage, faqCandidates, uc.cfg.TopK) {
		f := scored.Candidate.Payload.(*model.FAQ)
		data.FAQs = append(data.FAQs, chatPromptFAQ{
			Question: f.Question,
			Answer:   f.Answer,
		})
	}

	articleCandidates := make([]match.Candidate, 0, len(articles))
	for _, a := range articles {
		articleCandidates = append(articleCandidates, match.Candidate{Text: a.Title, Payload: a})
	}
	for _, scored := range match.TopCandidates(userMessage, articleCandidates, uc.cfg.TopK) {
		a := scored.Candidate.Payload.(*model.Article)
		excerpt := a.Excerpt
		if excerpt == "" {
			excerpt = a.Content
		}
		if runes := []rune(excerpt); len(runes) > excerptLimit {
			excerpt = string(runes[:excerptLimit])
		}
		data.Articles = append(data.Articles, chatPromptArticle{
			Title:   a.Title,
			Excerpt: excerpt,
			Link:    a.Link,
		})
	}

	for _, m := range history {
		data.History = append(data.History, chatPromptMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	var buf bytes.Buffer
	if err := chatSystemPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute chat system prompt template")
	}

	return buf.String(), nil
}
