package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"deals-backend/config"
	"deals-backend/prompts"

	openai "github.com/sashabaranov/go-openai"
)

// LLMService generates short highlight blurbs for deal detail views.
// Entirely optional: when disabled (or on any provider error) it yields
// an empty highlight and the response simply omits the field.
type LLMService struct {
	client         *openai.Client
	cfg            *config.Config
	highlightCache sync.Map
}

// NewLLMService creates a new LLM service instance. Returns a disabled
// service when LLM support is off in config.
func NewLLMService(cfg *config.Config) *LLMService {
	s := &LLMService{cfg: cfg}
	if !cfg.LLMEnabled {
		return s
	}

	switch cfg.LLMProvider {
	case "openai":
		s.client = openai.NewClientWithConfig(openai.DefaultConfig(cfg.OpenAIKey))
	case "groq":
		clientConfig := openai.DefaultConfig(cfg.GroqKey)
		clientConfig.BaseURL = cfg.LLMBaseURL
		s.client = openai.NewClientWithConfig(clientConfig)
	default:
		log.Printf("Unknown LLM provider %q, highlights disabled", cfg.LLMProvider)
	}
	return s
}

// Enabled reports whether highlight generation is available.
func (s *LLMService) Enabled() bool {
	return s.client != nil
}

// GenerateHighlight produces a one-line highlight for a deal, cached by
// deal ID. Returns "" when disabled, on error, or for thin descriptions.
func (s *LLMService) GenerateHighlight(dealID, title, description string) string {
	if s.client == nil {
		return ""
	}
	if cached, ok := s.highlightCache.Load(dealID); ok {
		return cached.(string)
	}
	if len(strings.TrimSpace(description)) < 20 {
		return ""
	}

	resp, err := s.client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
		Model: s.cfg.HighlightModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: "system", Content: prompts.HighlightPrompt},
			{Role: "user", Content: title + "\n" + description},
		},
		MaxTokens: 60,
	})
	if err != nil {
		log.Printf("LLM highlight error for deal %s: %v", dealID, err)
		return ""
	}
	if len(resp.Choices) == 0 {
		log.Printf("LLM returned no choices for deal %s", dealID)
		return ""
	}

	highlight := strings.TrimSpace(resp.Choices[0].Message.Content)
	s.highlightCache.Store(dealID, highlight)
	return highlight
}
