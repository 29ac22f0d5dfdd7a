// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the card generation pipeline stages

package interfaces

import (
	"context"

	"cardforge-api/core/domain"
)

// PageFetcher retrieves raw HTML for a URL
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (string, error)
}

// ContentExtractor turns raw HTML into a bounded text payload
type ContentExtractor interface {
	Extract(html, url string) (*domain.ExtractionResult, error)
}

// SummaryResult is the structured output of the summarizer
type SummaryResult struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Hook        string `json:"hook"`
	ImagePrompt string `json:"imagePrompt"`
}

// Summarizer asks a text model for a card summary
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) (*SummaryResult, error)
}

// BackgroundRequest carries the contextual fields for background generation
type BackgroundRequest struct {
	ImagePrompt string
	Title       string
	Domain      string
	Summary     string
	Hook        string
}

// BackgroundGenerator renders a card background image. Returns nil when
// generation fails or produces no image; it never returns an error.
type BackgroundGenerator interface {
	GenerateBackground(ctx context.Context, req BackgroundRequest) *string
}
