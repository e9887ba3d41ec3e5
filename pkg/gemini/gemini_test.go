package gemini_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rental-support-chatbot/pkg/gemini"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.Contains(r.URL.Path, "broken-model"):
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":400,"message":"model not found","status":"INVALID_ARGUMENT"}}`))
		case strings.Contains(r.URL.Path, "silent-model"):
			w.Write([]byte(`{"candidates":[]}`))
		case strings.Contains(string(body), "Hello"):
			w.Write([]byte(`{
				"candidates": [
					{
						"content": {
							"parts": [{"text": "**Hi** from "}, {"text": "the model"}],
							"role": "model"
						}
					}
				]
			}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
}

func TestNew_MissingAPIKey(t *testing.T) {
	_, err := gemini.New(context.Background(), gemini.Config{})
	if !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestGenerateText(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	client, err := gemini.New(context.Background(), gemini.Config{
		APIKey:     "test-api-key",
		BaseURL:    ts.URL,
		HTTPClient: ts.Client(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		text, err := client.GenerateText(context.Background(), "gemini-test", "Hello world")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "**Hi** from the model" {
			t.Errorf("unexpected text: %q", text)
		}
	})

	t.Run("API Error Flow", func(t *testing.T) {
		if _, err := client.GenerateText(context.Background(), "broken-model", "Hello world"); err == nil {
			t.Fatal("expected error from 400 response")
		}
	})

	t.Run("Empty Response Flow", func(t *testing.T) {
		_, err := client.GenerateText(context.Background(), "silent-model", "Hello world")
		if !errors.Is(err, gemini.ErrEmptyResponse) {
			t.Fatalf("expected ErrEmptyResponse, got %v", err)
		}
	})
}
