package card

import (
	"context"
	"errors"
	"sync"
	"time"

	"cardforge-api/core/domain"
	"cardforge-api/core/interfaces"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// mockFetcher is a mock implementation of PageFetcher
type mockFetcher struct {
	fetchFunc func(ctx context.Context, url string) (string, error)
	calls     int
}

func (m *mockFetcher) FetchPage(ctx context.Context, url string) (string, error) {
	m.calls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return "<html></html>", nil
}

// mockExtractor is a mock implementation of ContentExtractor
type mockExtractor struct {
	extractFunc func(html, url string) (*domain.ExtractionResult, error)
	calls       int
}

func (m *mockExtractor) Extract(html, url string) (*domain.ExtractionResult, error) {
	m.calls++
	if m.extractFunc != nil {
		return m.extractFunc(html, url)
	}
	return &domain.ExtractionResult{Title: "Page Title", Domain: "example.com", Content: "content"}, nil
}

// mockSummarizer is a mock implementation of Summarizer
type mockSummarizer struct {
	summarizeFunc func(ctx context.Context, title, content string) (*interfaces.SummaryResult, error)
}

func (m *mockSummarizer) Summarize(ctx context.Context, title, content string) (*interfaces.SummaryResult, error) {
	if m.summarizeFunc != nil {
		return m.summarizeFunc(ctx, title, content)
	}
	return &interfaces.SummaryResult{}, nil
}

// mockBackground is a mock implementation of BackgroundGenerator
type mockBackground struct {
	generateFunc func(ctx context.Context, req interfaces.BackgroundRequest) *string
	lastRequest  *interfaces.BackgroundRequest
}

func (m *mockBackground) GenerateBackground(ctx context.Context, req interfaces.BackgroundRequest) *string {
	m.lastRequest = &req
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return nil
}

// mockStorage is a mock implementation of CardStorage
type mockStorage struct {
	saveFunc       func(ctx context.Context, card *domain.Card) error
	getFunc        func(ctx context.Context, id string) (*domain.Card, error)
	listFunc       func(ctx context.Context, ownerID string) ([]*domain.Card, error)
	deleteFunc     func(ctx context.Context, id string) error
	viewIncrements int
	shareIncrements int
}

func (m *mockStorage) Save(ctx context.Context, card *domain.Card) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, card)
	}
	return nil
}

func (m *mockStorage) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStorage) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Card, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockStorage) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockStorage) IncrementViewCount(ctx context.Context, id string) error {
	m.viewIncrements++
	return nil
}

func (m *mockStorage) IncrementShareCount(ctx context.Context, id string) error {
	m.shareIncrements++
	return nil
}

// mockCache is an in-memory Cache for tests
type mockCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{items: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if data, ok := m.items[key]; ok {
		return data, nil
	}
	return nil, errors.New("key not found")
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
