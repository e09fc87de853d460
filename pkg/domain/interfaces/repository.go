package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	FAQ() FAQRepository
	Article() ArticleRepository
	Keyword() KeywordRepository
	Session() SessionRepository

	Close() error
}
