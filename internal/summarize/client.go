package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nota-music/nota-pipeline/internal/common"
)

// ErrNoAPIKey means the summarizer is not configured; the pipeline
// treats this as a skip rather than a failure.
var ErrNoAPIKey = errors.New("summarizer api key not configured")

// Client implements Summarizer against an OpenAI-compatible
// chat/completions endpoint.
type Client struct {
	cfg  common.SummarizerConfig
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg common.SummarizerConfig, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

// Summarize sends one chat request and validates the JSON reply against
// the summary schema. Transient upstream errors (429, 5xx, network) get
// exactly one retry; everything else fails immediately.
func (c *Client) Summarize(ctx context.Context, req Request) (Summary, []byte, error) {
	if c.cfg.APIKey == "" {
		return Summary{}, nil, ErrNoAPIKey
	}

	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("summarize.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"title", req.Title,
		"lyric_lines", len(req.Lyrics),
	)

	schema := BuildSummaryJSONSchema()
	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": buildUserPrompt(req) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		if !isRetryable(err) || ctx.Err() != nil {
			c.log.Error("summarize.http_error",
				"req_id", rid, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return Summary{}, nil, err
		}
		c.log.Warn("summarize.retry", "req_id", rid, "error", err)
		raw, err = c.post(ctx, endpoint, body)
		if err != nil {
			c.log.Error("summarize.http_error",
				"req_id", rid, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return Summary{}, nil, err
		}
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("summarize.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
		)
		return Summary{}, raw, fmt.Errorf("decode chat response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("summarize.no_choices", "req_id", rid, "raw", string(raw))
		return Summary{}, raw, fmt.Errorf("no choices in chat response")
	}

	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))
	if err := ValidateJSONAgainstSchema(schema, content); err != nil {
		c.log.Error("summarize.schema_validation_failed",
			"req_id", rid, "error", err, "content", string(content),
		)
		return Summary{}, content, fmt.Errorf("schema validation failed: %w", err)
	}

	var out Summary
	if err := json.Unmarshal(content, &out); err != nil {
		return Summary{}, content, fmt.Errorf("unmarshal summary: %w", err)
	}

	c.log.Info("summarize.ok",
		"req_id", rid,
		"difficulty", out.Difficulty,
		"highlights", len(out.Highlights),
		"summary_len", len(out.Summary),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, content, nil
}

// statusError carries the HTTP status so the caller can decide whether
// a second attempt is worth it.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("chat status %d: %s", e.code, e.body)
}

func isRetryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	// network-level failures are worth one retry
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat http error: %w", err)
	}
	defer func(rc io.ReadCloser) {
		if cerr := rc.Close(); cerr != nil {
			c.log.Warn("summarize.response_body_close_error", "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode, body: string(raw)}
	}
	return raw, nil
}

func mustJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
