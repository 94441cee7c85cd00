package chat

import (
	_ "embed"
	"strings"
)

//go:embed system_prompt.txt
var systemPrompt string

// SystemPrompt is the fixed context sent ahead of every visitor message.
func SystemPrompt() string {
	return strings.TrimSpace(systemPrompt)
}

// Sampling parameters for every completion request. They are not exposed to
// visitors.
const (
	DefaultModel     = "gpt-4"
	MaxTokens        = 500
	Temperature      = 0.7
	TopP             = 1.0
	FrequencyPenalty = 0.0
	PresencePenalty  = 0.0
)
