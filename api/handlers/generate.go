// ABOUTME: Generation handler for the Huma API
// ABOUTME: Exposes the URL-to-card pipeline as a single POST endpoint

package handlers

import (
	"context"
	"net/http"

	"cardforge-api/api/dto/requests"
	"cardforge-api/api/dto/responses"
	"cardforge-api/core/card"
	"cardforge-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// CardService is the card service surface the handlers depend on
type CardService interface {
	GenerateCard(ctx context.Context, url string) (*card.GeneratedCard, error)
	SaveCard(ctx context.Context, ownerID string, req card.SaveCardRequest) (*domain.Card, error)
	ListCards(ctx context.Context, ownerID string) ([]*domain.Card, error)
	GetCard(ctx context.Context, id string) (*domain.Card, error)
	ShareCard(ctx context.Context, id string) (*domain.Card, error)
	DeleteCard(ctx context.Context, id, ownerID string) error
}

// GenerateHandler handles card generation requests
type GenerateHandler struct {
	service CardService
}

// NewGenerateHandler creates a new generation handler
func NewGenerateHandler(service CardService) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// RegisterRoutes registers the generation route
func (h *GenerateHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generateCard",
		Method:      http.MethodPost,
		Path:        "/cards/generate",
		Summary:     "Generate a card from a URL",
		Description: "Fetches the page, extracts its content, summarizes it and renders a background image",
		Tags:        []string{"Cards"},
	}, h.GenerateCard)
}

// GenerateCardInput defines the input for the GenerateCard operation
type GenerateCardInput struct {
	Body requests.GenerateCardRequest
}

// GenerateCardOutput defines the output for the GenerateCard operation
type GenerateCardOutput struct {
	Body responses.GeneratedCardResponse
}

// GenerateCard handles card generation
func (h *GenerateHandler) GenerateCard(ctx context.Context, input *GenerateCardInput) (*GenerateCardOutput, error) {
	generated, err := h.service.GenerateCard(ctx, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GenerateCardOutput{
		Body: responses.FromGeneratedCard(generated),
	}, nil
}
