package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/startupsole/solechat/pkg/cli/config"
	chatconfig "github.com/startupsole/solechat/pkg/domain/model/config"
	"github.com/urfave/cli/v3"
)

func runChatCommand(t *testing.T, chat *config.Chat, args ...string) error {
	t.Helper()

	cmd := &cli.Command{
		Name:  "test",
		Flags: chat.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	return cmd.Run(context.Background(), append([]string{"test"}, args...))
}

func TestChatConfigDefaults(t *testing.T) {
	var chat config.Chat
	gt.NoError(t, runChatCommand(t, &chat)).Required()

	cfg, err := chat.Configure()
	gt.NoError(t, err).Required()
	gt.Value(t, cfg.TopK).Equal(2)
	gt.Value(t, cfg.SimilarityThreshold).Equal(0.3)
	gt.Value(t, cfg.HistoryWindow).Equal(10)
	gt.Array(t, cfg.EscalationOrder).Equal([]string{
		chatconfig.SourceKeyword, chatconfig.SourceFAQ, chatconfig.SourceBlog,
	})
	gt.Value(t, cfg.Messages.Decline).Equal("Üzgünüm, bu konuda yardımcı olamıyorum.")
}

func TestChatConfigFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.toml")
	body := `
escalation_order = ["faq", "blog"]
top_k = 3
similarity_threshold = 0.5

[messages]
decline = "Bu konuda yardımcı olamıyorum."
`
	gt.NoError(t, os.WriteFile(path, []byte(body), 0644)).Required()

	var chat config.Chat
	gt.NoError(t, runChatCommand(t, &chat, "--chat-config", path)).Required()

	cfg, err := chat.Configure()
	gt.NoError(t, err).Required()
	gt.Array(t, cfg.EscalationOrder).Equal([]string{"faq", "blog"})
	gt.Value(t, cfg.TopK).Equal(3)
	gt.Value(t, cfg.SimilarityThreshold).Equal(0.5)
	gt.Value(t, cfg.Messages.Decline).Equal("Bu konuda yardımcı olamıyorum.")

	// Fields absent from the file keep their defaults
	gt.Value(t, cfg.HistoryWindow).Equal(10)
	gt.Value(t, cfg.Messages.FAQNotFound).
		Equal("Maalesef bu konuda Sıkça Sorulan Sorular arasında bir bilgi bulunamadı.")
}

func TestChatConfigInvalidFile(t *testing.T) {
	t.Run("unknown escalation source", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chat.toml")
		gt.NoError(t, os.WriteFile(path, []byte(`escalation_order = ["slack"]`), 0644)).Required()

		var chat config.Chat
		gt.NoError(t, runChatCommand(t, &chat, "--chat-config", path)).Required()

		_, err := chat.Configure()
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		var chat config.Chat
		gt.NoError(t, runChatCommand(t, &chat, "--chat-config", "/no/such/file.toml")).Required()

		_, err := chat.Configure()
		gt.Error(t, err)
	})
}
