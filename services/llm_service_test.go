package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"deals-backend/config"
)

func TestGenerateHighlightDisabled(t *testing.T) {
	svc := NewLLMService(&config.Config{LLMEnabled: false})
	if svc.Enabled() {
		t.Fatal("Service must be disabled when LLM support is off")
	}
	if got := svc.GenerateHighlight("d1", "Title", "A description well past the minimum length."); got != "" {
		t.Errorf("Disabled service must return an empty highlight, got %q", got)
	}
}

func TestGenerateHighlightNoChoices(t *testing.T) {
	// A provider may answer 200 with an empty choices array; that must
	// yield an empty highlight, not a panic.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cmpl-1","object":"chat.completion","choices":[]}`)
	}))
	defer ts.Close()

	cfg := &config.Config{
		LLMEnabled:     true,
		LLMProvider:    "groq",
		GroqKey:        "test-key",
		LLMBaseURL:     ts.URL,
		HighlightModel: "test-model",
	}
	svc := NewLLMService(cfg)
	if !svc.Enabled() {
		t.Fatal("Service should be enabled with a groq config")
	}

	got := svc.GenerateHighlight("d1", "Half-price pizza", "Wood-fired pizzas at half price every weekday afternoon.")
	if got != "" {
		t.Errorf("Expected empty highlight for an empty choices response, got %q", got)
	}
}
