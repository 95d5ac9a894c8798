package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Error("Expected error without API key")
	}
}

func TestOpenAIProvider_Answer_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}

		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		messages := req["messages"].([]interface{})
		if len(messages) != 2 {
			t.Fatalf("Expected system + user messages, got %d", len(messages))
		}
		user := messages[1].(map[string]interface{})
		if !strings.Contains(user["content"].(string), "Who founded the university?") {
			t.Errorf("Expected question in user message, got %v", user["content"])
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"model":   "gpt-4o-mini",
			"choices": []map[string]interface{}{
				{
					"index": 0,
					"message": map[string]string{
						"role":    "assistant",
						"content": " Andrew Carnegie ",
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]int{
				"prompt_tokens":     30,
				"completion_tokens": 3,
				"total_tokens":      33,
			},
		})
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}

	resp, err := provider.Answer(context.Background(), AnswerRequest{
		Question: "Who founded the university?",
	})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if resp.Answer != "Andrew Carnegie" {
		t.Errorf("Expected trimmed answer, got %q", resp.Answer)
	}
	if resp.TokensUsed != 33 {
		t.Errorf("Expected 33 tokens, got %d", resp.TokensUsed)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("Where is the Cathedral of Learning?", "")

	if !strings.Contains(prompt, "Question: Where is the Cathedral of Learning?") {
		t.Error("Expected question in prompt")
	}
	if !strings.HasSuffix(prompt, "Answer:") {
		t.Error("Expected prompt to end with answer cue")
	}
	if strings.Contains(prompt, "Context:") {
		t.Error("Did not expect a context block without context")
	}
}

func TestBuildPrompt_WithContext(t *testing.T) {
	prompt := BuildPrompt("Where is it?", "The Cathedral of Learning stands in Oakland.")

	if !strings.Contains(prompt, "Context:\nThe Cathedral of Learning stands in Oakland.") {
		t.Error("Expected context block in prompt")
	}
}

func TestNewProvider_Factory(t *testing.T) {
	tests := []struct {
		provider string
		apiKey   string
		wantErr  bool
		wantNil  bool
	}{
		{"openai", "key", false, false},
		{"anthropic", "key", false, false},
		{"claude", "key", false, false},
		{"ollama", "", false, false},
		{"", "", false, true},
		{"unknown", "", true, false},
	}

	for _, tt := range tests {
		p, err := NewProvider(Config{Provider: tt.provider, APIKey: tt.apiKey})
		if tt.wantErr {
			if err == nil {
				t.Errorf("provider %q: expected error", tt.provider)
			}
			continue
		}
		if err != nil {
			t.Errorf("provider %q: unexpected error: %v", tt.provider, err)
			continue
		}
		if tt.wantNil != (p == nil) {
			t.Errorf("provider %q: nil = %v, want %v", tt.provider, p == nil, tt.wantNil)
		}
	}
}
