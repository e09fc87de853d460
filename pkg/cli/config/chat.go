package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	toml "github.com/pelletier/go-toml/v2"
	chatconfig "github.com/startupsole/solechat/pkg/domain/model/config"
	"github.com/urfave/cli/v3"
)

// Chat holds CLI flags for the chat behavior configuration
type Chat struct {
	configPath string
}

// Flags returns CLI flags for chat configuration
func (c *Chat) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "chat-config",
			Usage:       "Path to a TOML file overriding the chat defaults",
			Sources:     cli.EnvVars("SOLECHAT_CHAT_CONFIG"),
			Destination: &c.configPath,
		},
	}
}

// Configure loads the chat configuration. Without a config file the
// built-in defaults are used; a file overrides defaults field by field.
func (c *Chat) Configure() (*chatconfig.ChatConfig, error) {
	cfg := chatconfig.Default()

	if c.configPath != "" {
		raw, err := os.ReadFile(c.configPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read chat config file",
				goerr.V("path", c.configPath))
		}
		if err := toml.Unmarshal(raw, cfg); err != nil {
			return nil, goerr.Wrap(err, "failed to parse chat config file",
				goerr.V("path", c.configPath))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid chat config",
			goerr.V("path", c.configPath))
	}

	return cfg, nil
}
