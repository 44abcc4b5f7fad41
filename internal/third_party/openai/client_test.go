package translator_openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"translator-backend/pkg/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewOpenAIClient(types.OpenAIConfig{
		APIKey:             "sk-test",
		BaseURL:            server.URL + "/v1",
		ChatModel:          "gpt-4o-mini",
		TranscriptionModel: "gpt-4o-transcribe",
	})
}

func TestClient_Complete(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","created":0,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Bonjour"}}]}`))
	})

	text, err := client.Complete(context.Background(), "You are a translation engine.", "Translate Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Bonjour" {
		t.Errorf("expected Bonjour, got %q", text)
	}

	if body["model"] != "gpt-4o-mini" {
		t.Errorf("expected model gpt-4o-mini, got %v", body["model"])
	}
	if temp, ok := body["temperature"]; !ok || temp != float64(0) {
		t.Errorf("expected temperature 0, got %v (present=%v)", temp, ok)
	}
	messages, _ := body["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	first, _ := messages[0].(map[string]any)
	second, _ := messages[1].(map[string]any)
	if first["role"] != "system" || first["content"] != "You are a translation engine." {
		t.Errorf("unexpected system message: %v", first)
	}
	if second["role"] != "user" || second["content"] != "Translate Hello" {
		t.Errorf("unexpected user message: %v", second)
	}
}

func TestClient_Complete_NoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","created":0,"model":"gpt-4o-mini","choices":[]}`))
	})

	_, err := client.Complete(context.Background(), "system", "user")
	if !errors.Is(err, errNoChoices) {
		t.Errorf("expected errNoChoices, got %v", err)
	}
}

func TestClient_Complete_ProviderErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"upstream exploded","type":"server_error"}}`))
	})

	_, err := client.Complete(context.Background(), "system", "user")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("expected exactly 1 request, got %d", got)
	}
}

func TestClient_Transcribe(t *testing.T) {
	audio := []byte("fake m4a payload")
	path := filepath.Join(t.TempDir(), "upload-123.m4a")
	if err := os.WriteFile(path, audio, 0o600); err != nil {
		t.Fatalf("failed to write audio: %v", err)
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.FormValue("model"); got != "gpt-4o-transcribe" {
			t.Errorf("expected model gpt-4o-transcribe, got %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file part: %v", err)
		} else {
			defer file.Close()
			if header.Filename != "upload-123.m4a" {
				t.Errorf("expected filename upload-123.m4a, got %q", header.Filename)
			}
			data, _ := io.ReadAll(file)
			if string(data) != string(audio) {
				t.Errorf("unexpected audio payload %q", data)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"  hola mundo "}`))
	})

	text, err := client.Transcribe(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "  hola mundo " {
		t.Errorf("expected raw transcript, got %q", text)
	}
}

func TestClient_Transcribe_MissingFile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected when the audio file is missing")
	})

	_, err := client.Transcribe(context.Background(), filepath.Join(t.TempDir(), "nope.m4a"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestClient_Name(t *testing.T) {
	client := NewOpenAIClient(types.OpenAIConfig{APIKey: "sk-test"})
	if client.Name() != "openai" {
		t.Errorf("expected 'openai', got %q", client.Name())
	}
}
