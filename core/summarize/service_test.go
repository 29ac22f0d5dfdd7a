package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"

	coreerrors "cardforge-api/core/errors"
)

// mockTextGenerator is a mock implementation of TextGenerator
type mockTextGenerator struct {
	completeFunc func(ctx context.Context, prompt string) (string, error)
	lastPrompt   string
}

func (m *mockTextGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	if m.completeFunc != nil {
		return m.completeFunc(ctx, prompt)
	}
	return "{}", nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

const validReply = "```json\n{\"title\": \"AI Shift\", \"summary\": \"It changes everything.\", \"hook\": \"The platform shift is here\", \"imagePrompt\": \"abstract neural waves\"}\n```"

func TestSummarize_ParsesFencedJSON(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return validReply, nil
		},
	}
	service := NewService(gen, nopLogger{}, false)

	result, err := service.Summarize(context.Background(), "Original Title", "some extracted content")
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if result.Title != "AI Shift" {
		t.Errorf("Title = %q", result.Title)
	}
	if result.Hook != "The platform shift is here" {
		t.Errorf("Hook = %q", result.Hook)
	}
	if result.ImagePrompt != "abstract neural waves" {
		t.Errorf("ImagePrompt = %q", result.ImagePrompt)
	}
}

func TestSummarize_PromptIncludesTitleAndContent(t *testing.T) {
	gen := &mockTextGenerator{}
	service := NewService(gen, nopLogger{}, false)

	_, err := service.Summarize(context.Background(), "Breaking News", "the page body text")
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}

	if !strings.Contains(gen.lastPrompt, "Breaking News") {
		t.Error("prompt should include the extracted title")
	}
	if !strings.Contains(gen.lastPrompt, "the page body text") {
		t.Error("prompt should include the extracted content")
	}
}

func TestSummarize_MalformedJSON_Lenient(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "Sorry, I cannot produce JSON today.", nil
		},
	}
	service := NewService(gen, nopLogger{}, false)

	result, err := service.Summarize(context.Background(), "T", "content")
	if err != nil {
		t.Fatalf("lenient mode should not fail on malformed JSON: %v", err)
	}
	if result.Title != "" || result.Summary != "" || result.Hook != "" || result.ImagePrompt != "" {
		t.Errorf("lenient mode should yield a zero-value result, got %+v", result)
	}
}

func TestSummarize_MalformedJSON_Strict(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "not json at all", nil
		},
	}
	service := NewService(gen, nopLogger{}, true)

	_, err := service.Summarize(context.Background(), "T", "content")
	if err == nil {
		t.Fatal("strict mode should fail on malformed JSON")
	}
	if !coreerrors.IsUpstreamService(err) {
		t.Fatalf("error = %T, want *UpstreamServiceError", err)
	}
}

func TestSummarize_EmptyReplyBecomesEmptyObject(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "```json\n```", nil
		},
	}
	service := NewService(gen, nopLogger{}, false)

	result, err := service.Summarize(context.Background(), "T", "content")
	if err != nil {
		t.Fatalf("Summarize returned error: %v", err)
	}
	if result.Title != "" {
		t.Errorf("empty reply should parse as empty object, got %+v", result)
	}
}

func TestSummarize_BackendFailurePropagates(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", &coreerrors.UpstreamServiceError{Service: "summarizer", StatusCode: 429, Message: "rate limited"}
		},
	}
	service := NewService(gen, nopLogger{}, false)

	_, err := service.Summarize(context.Background(), "T", "content")
	if err == nil {
		t.Fatal("backend failure should abort the request")
	}

	var upstreamErr *coreerrors.UpstreamServiceError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("error = %T, want *UpstreamServiceError", err)
	}
	if upstreamErr.StatusCode != 429 {
		t.Errorf("StatusCode = %d, want upstream status preserved", upstreamErr.StatusCode)
	}
}

func TestSummarize_GenericBackendErrorDefaultsTo500(t *testing.T) {
	gen := &mockTextGenerator{
		completeFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("dial tcp: connection refused")
		},
	}
	service := NewService(gen, nopLogger{}, false)

	_, err := service.Summarize(context.Background(), "T", "content")

	var upstreamErr *coreerrors.UpstreamServiceError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("error = %T, want *UpstreamServiceError", err)
	}
	if upstreamErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want default 500", upstreamErr.StatusCode)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"bare fence", "```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"no fence", "{\"a\":1}", "{\"a\":1}"},
		{"empty", "", "{}"},
		{"whitespace only", "  \n ", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
