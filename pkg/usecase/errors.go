package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the lookup and chat pipelines
var (
	ErrChatDisabled    = goerr.New("chat is disabled: no LLM client configured")
	ErrEmptyCompletion = goerr.New("LLM returned an empty completion")
)
