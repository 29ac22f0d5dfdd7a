// ABOUTME: Background image service rendering a card background from the summarizer's prompt
// ABOUTME: Best-effort by contract; any failure yields nil instead of an error

package imagegen

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"cardforge-api/core/interfaces"
)

// cardAspectRatio is the fixed portrait ratio for card backgrounds
const cardAspectRatio = "9:16"

// enhancedPromptTemplate wraps the model-suggested prompt in a fixed
// editorial-photography style so backgrounds stay visually consistent.
const enhancedPromptTemplate = `Professional editorial photography of %s,
photorealistic, realistic and authentic, high-end magazine photography style,
cinematic lighting with dramatic shadows, shallow depth of field,
shot with professional DSLR camera, 85mm lens, f/1.8 aperture,
natural colors with subtle enhancement, sophisticated composition,
dark moody atmosphere, content-related subject matter,
high quality, sharp focus, professional grade, vertical portrait orientation 9:16 aspect ratio,
editorial photography, professional camera work`

var whitespaceRe = regexp.MustCompile(`\s+`)

// Service renders card backgrounds through an image generation backend
type Service struct {
	imageGen interfaces.ImageGenerator
	logger   interfaces.Logger
}

// NewService creates a new background image service
func NewService(imageGen interfaces.ImageGenerator, logger interfaces.Logger) *Service {
	return &Service{
		imageGen: imageGen,
		logger:   logger,
	}
}

// GenerateBackground requests one 9:16 background image and returns it as a
// PNG data URL. Returns nil when the request has no image prompt, the
// backend fails, or no image comes back; the card is produced without a
// background in all of those cases.
func (s *Service) GenerateBackground(ctx context.Context, req interfaces.BackgroundRequest) *string {
	if req.ImagePrompt == "" {
		return nil
	}

	prompt := buildPrompt(req.ImagePrompt)

	encoded, err := s.imageGen.Generate(ctx, interfaces.ImageRequest{
		Prompt:      prompt,
		AspectRatio: cardAspectRatio,
	})
	if err != nil {
		s.logger.Warn("Image generation failed, continuing without background", map[string]interface{}{
			"title": req.Title,
			"error": err.Error(),
		})
		return nil
	}
	if encoded == "" {
		s.logger.Warn("Image backend returned no image, continuing without background", map[string]interface{}{
			"title": req.Title,
		})
		return nil
	}

	dataURL := fmt.Sprintf("data:image/png;base64,%s", encoded)
	return &dataURL
}

// buildPrompt expands the enhanced template and collapses whitespace runs to
// single spaces.
func buildPrompt(imagePrompt string) string {
	prompt := fmt.Sprintf(enhancedPromptTemplate, imagePrompt)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(prompt, " "))
}
