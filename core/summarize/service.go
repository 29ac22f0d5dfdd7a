// ABOUTME: Summarizer service asking a text model for card title, summary, hook and image prompt
// ABOUTME: Parses the fenced JSON reply; malformed output degrades or fails depending on strict mode

package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	coreerrors "cardforge-api/core/errors"
	"cardforge-api/core/interfaces"
)

const serviceName = "summarizer"

// promptTemplate instructs the model to answer with a single JSON object.
// The contract mirrors the card fields: rewritten short title, multi-line
// summary, one-line hook, and an English image prompt.
const promptTemplate = `You are a social media (Instagram, Threads, Twitter) editor.
Read the provided content ("%s") and respond with a JSON object.

You must follow this exact format:
{
  "title": "Rewrite the content title for social media: more impactful and short (under 20 characters). Do not reuse the original title verbatim.",
  "summary": "Summarize the key points in 3-4 sentences. Use line breaks (\n) between sentences for readability. Use emojis sparingly to keep it visually engaging.",
  "hook": "Write one highly clickable line that captures the essence of the content. (max 50 characters)",
  "imagePrompt": "A creative, abstract art prompt describing the core theme of this content. Suitable for a background image. Do not mention text."
}

Content:
%s`

// Service produces structured summaries through a text generation backend
type Service struct {
	textGen interfaces.TextGenerator
	logger  interfaces.Logger
	strict  bool
}

// NewService creates a new summarizer. When strict is true, malformed model
// output fails the request instead of degrading to an empty result.
func NewService(textGen interfaces.TextGenerator, logger interfaces.Logger, strict bool) *Service {
	return &Service{
		textGen: textGen,
		logger:  logger,
		strict:  strict,
	}
}

// Summarize sends the extracted content to the text backend and parses the
// structured result. Backend failures abort the request; parse failures
// return a zero-value result unless strict mode is on.
func (s *Service) Summarize(ctx context.Context, title, content string) (*interfaces.SummaryResult, error) {
	prompt := fmt.Sprintf(promptTemplate, title, content)

	raw, err := s.textGen.Complete(ctx, prompt)
	if err != nil {
		if coreerrors.IsUpstreamService(err) {
			return nil, err
		}
		return nil, &coreerrors.UpstreamServiceError{
			Service:    serviceName,
			StatusCode: 500,
			Message:    err.Error(),
		}
	}

	cleaned := stripFences(raw)

	var result interfaces.SummaryResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		if s.strict {
			return nil, &coreerrors.UpstreamServiceError{
				Service:    serviceName,
				StatusCode: 500,
				Message:    fmt.Sprintf("malformed model output: %v", err),
			}
		}
		s.logger.Warn("Summarizer returned malformed JSON, proceeding with empty result", map[string]interface{}{
			"error":  err.Error(),
			"output": truncateForLog(raw),
		})
		return &interfaces.SummaryResult{}, nil
	}

	return &result, nil
}

// stripFences removes markdown code-fence markers around the model's JSON
// reply and substitutes an empty object for blank output.
func stripFences(raw string) string {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "{}"
	}
	return cleaned
}

func truncateForLog(s string) string {
	if len(s) > 200 {
		return s[:200]
	}
	return s
}
