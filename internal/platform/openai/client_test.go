package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yungbote/roadmap-backend/internal/platform/logger"
)

type payload struct {
	Title string `json:"title"`
}

func newTestClient(t *testing.T, url, key string) Client {
	t.Helper()
	c, err := NewClient(logger.NewNop(), Config{BaseURL: url, APIKey: key, Temperature: 0.3, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestGenerateJSONSendsRequestAndDecodesContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path=%s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization=%q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Temperature != 0.3 || req.MaxTokens != 1000 || req.ResponseFormat["type"] != "json_object" {
			t.Errorf("unexpected request: %+v", req)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"title\":\"Go Plan\"}"}}]}`))
	}))
	defer srv.Close()

	var out payload
	if err := newTestClient(t, srv.URL, "test-key").GenerateJSON(context.Background(), "sys", "user", &out); err != nil {
		t.Fatalf("GenerateJSON: %v", err)
	}
	if out.Title != "Go Plan" {
		t.Fatalf("title=%q", out.Title)
	}
}

func TestGenerateJSONFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "non_2xx", status: http.StatusTooManyRequests, body: `{"error":"rate"}`},
		{name: "no_choices", status: http.StatusOK, body: `{"choices":[]}`},
		{name: "bad_content", status: http.StatusOK, body: `{"choices":[{"message":{"content":"not json"}}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()
			var out payload
			if err := newTestClient(t, srv.URL, "k").GenerateJSON(context.Background(), "s", "u", &out); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestGenerateJSONWithoutKey(t *testing.T) {
	c := newTestClient(t, "http://127.0.0.1:1", "")
	if c.Configured() {
		t.Fatalf("client without key should not be configured")
	}
	var out payload
	if err := c.GenerateJSON(context.Background(), "s", "u", &out); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("err=%v, want ErrMissingAPIKey", err)
	}
}

func TestStripCodeFence(t *testing.T) {
	if got := stripCodeFence("```json\n{\"a\":1}\n```"); got != `{"a":1}` {
		t.Fatalf("got %q", got)
	}
	if got := stripCodeFence(` {"a":1} `); got != `{"a":1}` {
		t.Fatalf("got %q", got)
	}
}
