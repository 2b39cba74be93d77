package summarize_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nota-music/nota-pipeline/internal/common"
	"github.com/nota-music/nota-pipeline/internal/summarize"
)

func chatReply(t *testing.T, w http.ResponseWriter, content string) {
	t.Helper()
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.Fatalf("encode reply: %v", err)
	}
}

const goodSummary = `{"summary":"A gentle beginner piece in G major.","difficulty":"beginner","highlights":["simple melody","steady rhythm"]}`

func testRequest() summarize.Request {
	return summarize.Request{
		Title:    "Minuet in G",
		Composer: "Petzold",
		Lyrics:   []string{"la la la"},
	}
}

func TestSummarizeSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		chatReply(t, w, goodSummary)
	}))
	defer srv.Close()

	c := summarize.NewClient(common.SummarizerConfig{APIKey: "sk-test", BaseURL: srv.URL, Model: "test-model"}, nil)
	sum, raw, err := c.Summarize(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if sum.Difficulty != "beginner" {
		t.Errorf("Difficulty = %q", sum.Difficulty)
	}
	if len(sum.Highlights) != 2 {
		t.Errorf("Highlights = %v", sum.Highlights)
	}
	if string(raw) != goodSummary {
		t.Errorf("raw = %s", raw)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody["model"] != "test-model" {
		t.Errorf("model = %v", gotBody["model"])
	}
	if _, ok := gotBody["response_format"]; !ok {
		t.Error("request must pin the response format to JSON")
	}
}

func TestSummarizeRetriesOnServerError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "upstream busy", http.StatusServiceUnavailable)
			return
		}
		chatReply(t, w, goodSummary)
	}))
	defer srv.Close()

	c := summarize.NewClient(common.SummarizerConfig{APIKey: "sk-test", BaseURL: srv.URL}, nil)
	sum, _, err := c.Summarize(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Summarize failed after retry: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	if sum.Summary == "" {
		t.Fatal("empty summary")
	}
}

func TestSummarizeDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := summarize.NewClient(common.SummarizerConfig{APIKey: "sk-test", BaseURL: srv.URL}, nil)
	_, _, err := c.Summarize(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1 (no retry on 4xx)", calls)
	}
}

func TestSummarizeWithoutAPIKey(t *testing.T) {
	c := summarize.NewClient(common.SummarizerConfig{}, nil)
	_, _, err := c.Summarize(context.Background(), testRequest())
	if !errors.Is(err, summarize.ErrNoAPIKey) {
		t.Fatalf("err = %v, want ErrNoAPIKey", err)
	}
}

func TestSummarizeRejectsInvalidReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// difficulty outside the enum
		chatReply(t, w, `{"summary":"ok","difficulty":"impossible"}`)
	}))
	defer srv.Close()

	c := summarize.NewClient(common.SummarizerConfig{APIKey: "sk-test", BaseURL: srv.URL}, nil)
	_, raw, err := c.Summarize(context.Background(), testRequest())
	if err == nil || !strings.Contains(err.Error(), "schema validation") {
		t.Fatalf("err = %v, want schema validation failure", err)
	}
	if len(raw) == 0 {
		t.Fatal("raw content should be returned for debugging")
	}
}
