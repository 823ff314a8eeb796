package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOllamaGeneratorGenerate(t *testing.T) {
	var gotReq ollamaChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(ollamaChatResponse{
			Message: ollamaChatMessage{Role: "assistant", Content: "  A gifted playmaker.  "},
		})
	}))
	defer server.Close()

	gen := NewOllamaGenerator(NewOllamaClient(server.URL), "llama3.2")
	got, err := gen.Generate(context.Background(), GenerateRequest{
		Prompt:       "Describe a football player.",
		SystemPrompt: "Be concise.",
		Temperature:  0.8,
		MaxTokens:    150,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "A gifted playmaker." {
		t.Fatalf("unexpected text: %q", got)
	}

	if gotReq.Model != "llama3.2" || gotReq.Stream {
		t.Fatalf("unexpected request: %+v", gotReq)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages: %+v", gotReq.Messages)
	}
	if gotReq.Options.Temperature != 0.8 || gotReq.Options.NumPredict != 150 {
		t.Fatalf("unexpected options: %+v", gotReq.Options)
	}
}

func TestOllamaGeneratorSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "model not found"})
	}))
	defer server.Close()

	gen := NewOllamaGenerator(NewOllamaClient(server.URL), "missing-model")
	_, err := gen.Generate(context.Background(), GenerateRequest{Prompt: "hi"})
	if err == nil || !strings.Contains(err.Error(), "model not found") {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestOllamaGeneratorRejectsEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ollamaChatResponse{})
	}))
	defer server.Close()

	gen := NewOllamaGenerator(NewOllamaClient(server.URL), "llama3.2")
	if _, err := gen.Generate(context.Background(), GenerateRequest{Prompt: "hi"}); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestOllamaGeneratorValidatesInputs(t *testing.T) {
	gen := NewOllamaGenerator(NewOllamaClient(""), "")
	if _, err := gen.Generate(context.Background(), GenerateRequest{Prompt: "hi"}); err == nil {
		t.Fatal("expected error for missing model")
	}
	gen = NewOllamaGenerator(NewOllamaClient(""), "llama3.2")
	if _, err := gen.Generate(context.Background(), GenerateRequest{}); err == nil {
		t.Fatal("expected error for missing prompt")
	}
}
