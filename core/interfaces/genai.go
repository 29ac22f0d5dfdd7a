// ABOUTME: Generative AI client interfaces for text and image backends
// ABOUTME: Minimal contracts so any OpenAI-compatible or local backend can be adapted

package interfaces

import "context"

// TextGenerator is the minimal interface needed to ask a chat model for a
// completion. It intentionally mirrors a single-turn chat call so that any
// OpenAI-compatible backend can be adapted.
type TextGenerator interface {
	// Complete sends a single prompt and returns the model's raw text output.
	Complete(ctx context.Context, prompt string) (string, error)
}

// ImageRequest describes one image generation call
type ImageRequest struct {
	// Prompt is the full textual prompt for the image model
	Prompt string

	// AspectRatio is the requested aspect ratio, e.g. "9:16"
	AspectRatio string
}

// ImageGenerator produces one raster image for a prompt
type ImageGenerator interface {
	// Generate returns the base64-encoded image bytes (no data-URL prefix),
	// or an error when the backend fails or returns no image.
	Generate(ctx context.Context, req ImageRequest) (string, error)
}
