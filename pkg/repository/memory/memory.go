package memory

import (
	"github.com/startupsole/solechat/pkg/domain/interfaces"
)

// Memory is an in-memory implementation of interfaces.Repository used for
// development and tests
type Memory struct {
	faq     *faqRepository
	article *articleRepository
	keyword *keywordRepository
	session *sessionRepository
}

var _ interfaces.Repository = &Memory{}

// New creates a new in-memory repository
func New() *Memory {
	return &Memory{
		faq:     newFAQRepository(),
		article: newArticleRepository(),
		keyword: newKeywordRepository(),
		session: newSessionRepository(),
	}
}

func (m *Memory) FAQ() interfaces.FAQRepository {
	return m.faq
}

func (m *Memory) Article() interfaces.ArticleRepository {
	return m.article
}

func (m *Memory) Keyword() interfaces.KeywordRepository {
	return m.keyword
}

func (m *Memory) Session() interfaces.SessionRepository {
	return m.session
}

func (m *Memory) Close() error {
	return nil
}
