package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCompletePrompt(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody struct {
		Model    string        `json:"model"`
		Messages []ChatMessage `json:"messages"`
		Stream   bool          `json:"stream"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"stay hydrated"}}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL + "/", APIKey: "k-123", Model: "gemini-1.5-flash"})

	got, err := client.CompletePrompt(context.Background(), "what helps a cold?")
	if err != nil {
		t.Fatalf("CompletePrompt err: %v", err)
	}
	if got != "stay hydrated" {
		t.Fatalf("content: got %q", got)
	}

	if gotAuth != "Bearer k-123" {
		t.Fatalf("auth header: %q", gotAuth)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("path: %q", gotPath)
	}
	if gotBody.Model != "gemini-1.5-flash" || gotBody.Stream {
		t.Fatalf("request body: %+v", gotBody)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" {
		t.Fatalf("messages: %+v", gotBody.Messages)
	}
}

func TestCompleteErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "k", Model: "m"})

	_, err := client.CompletePrompt(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "k", Model: "m"})

	if _, err := client.CompletePrompt(context.Background(), "hi"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
