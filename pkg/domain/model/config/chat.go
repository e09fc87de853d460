package config

import (
	"github.com/m-mizutani/goerr/v2"
)

// Lookup source names usable in ChatConfig.EscalationOrder
const (
	SourceKeyword = "keyword"
	SourceFAQ     = "faq"
	SourceBlog    = "blog"
)

// Messages holds the user-visible reply texts. Defaults are the Turkish
// strings of the startupsole.com deployment; all of them are overridable
// via the TOML chat config.
type Messages struct {
	FAQReply        string `toml:"faq_reply"`
	FAQNotFound     string `toml:"faq_not_found"`
	BlogReply       string `toml:"blog_reply"`
	BlogNotFound    string `toml:"blog_not_found"`
	KeywordReply    string `toml:"keyword_reply"`
	KeywordNotFound string `toml:"keyword_not_found"`
	Decline         string `toml:"decline"`
	Clarification   string `toml:"clarification"`
}

// ChatConfig holds the matching and escalation tunables
type ChatConfig struct {
	// EscalationOrder is the lookup source sequence of the ask endpoint
	EscalationOrder []string `toml:"escalation_order"`

	// NotFoundMarkers detect templated non-answers during escalation.
	// A reply containing any marker falls through to the next source.
	NotFoundMarkers []string `toml:"not_found_markers"`

	// TopK and SimilarityThreshold bound the semantic match result
	TopK                int     `toml:"top_k"`
	SimilarityThreshold float64 `toml:"similarity_threshold"`

	// HistoryWindow is the number of session messages kept and re-read
	HistoryWindow int `toml:"history_window"`

	Messages Messages `toml:"messages"`
}

// Default returns the configuration matching the original deployment
func Default() *ChatConfig {
	return &ChatConfig{
		EscalationOrder:     []string{SourceKeyword, SourceFAQ, SourceBlog},
		NotFoundMarkers:     []string{"bulunamadı"},
		TopK:                2,
		SimilarityThreshold: 0.3,
		HistoryWindow:       10,
		Messages: Messages{
			FAQReply:        `Kullanıcıların sıkça sorduğu bir soru: "%s". Cevap: "%s"`,
			FAQNotFound:     "Maalesef bu konuda Sıkça Sorulan Sorular arasında bir bilgi bulunamadı.",
			BlogReply:       `Kullanıcıların merak ettiği konuda faydalı bir makalemiz var: "%s". Daha fazla bilgi almak için lütfen [buraya tıklayın](%s).`,
			BlogNotFound:    "Maalesef bu konuda blog makaleleri arasında bir bilgi bulunamadı.",
			KeywordReply:    `"%s" hakkında kısaca bilgi vereyim: %s Amerika'da yaygın olarak kullanılan bir terimdir. Daha fazla bilgi için lütfen [buraya tıklayın](%s).`,
			KeywordNotFound: "Maalesef bu konuda popüler bir anahtar kelime bulunamadı.",
			Decline:         "Üzgünüm, bu konuda yardımcı olamıyorum.",
			Clarification:   "Sorunuzu biraz daha açabilir misiniz? Size daha iyi yardımcı olabilmem için ek bilgiye ihtiyacım var.",
		},
	}
}

// Validate checks if the ChatConfig is valid
func (c *ChatConfig) Validate() error {
	if len(c.EscalationOrder) == 0 {
		return goerr.New("escalation order must list at least one source")
	}
	for _, src := range c.EscalationOrder {
		switch src {
		case SourceKeyword, SourceFAQ, SourceBlog:
		default:
			return goerr.New("unknown escalation source", goerr.V("source", src))
		}
	}
	if c.TopK < 1 {
		return goerr.New("top_k must be at least 1", goerr.V("top_k", c.TopK))
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return goerr.New("similarity_threshold must be within [0, 1]",
			goerr.V("similarity_threshold", c.SimilarityThreshold))
	}
	if c.HistoryWindow < 1 {
		return goerr.New("history_window must be at least 1",
			goerr.V("history_window", c.HistoryWindow))
	}
	if c.Messages.Decline == "" {
		return goerr.New("decline message is required")
	}
	return nil
}
