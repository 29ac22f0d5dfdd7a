// ABOUTME: Card persistence handlers for the Huma API
// ABOUTME: Save, list, view, share and delete endpoints scoped to an owner

package handlers

import (
	"context"
	"net/http"

	"cardforge-api/api/dto/requests"
	"cardforge-api/api/dto/responses"
	"cardforge-api/core/card"

	"github.com/danielgtaylor/huma/v2"
)

// defaultOwnerID is used when no X-Owner-ID header is supplied
const defaultOwnerID = "guest"

// CardsHandler handles card persistence requests
type CardsHandler struct {
	service CardService
}

// NewCardsHandler creates a new cards handler
func NewCardsHandler(service CardService) *CardsHandler {
	return &CardsHandler{service: service}
}

// RegisterRoutes registers all card persistence routes
func (h *CardsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "saveCard",
		Method:        http.MethodPost,
		Path:          "/cards",
		Summary:       "Save a card",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusCreated,
	}, h.SaveCard)

	huma.Register(api, huma.Operation{
		OperationID: "listCards",
		Method:      http.MethodGet,
		Path:        "/cards",
		Summary:     "List the owner's cards, newest first",
		Tags:        []string{"Cards"},
	}, h.ListCards)

	huma.Register(api, huma.Operation{
		OperationID: "getCard",
		Method:      http.MethodGet,
		Path:        "/cards/{id}",
		Summary:     "Get a card by ID",
		Description: "Returns the card and records the view",
		Tags:        []string{"Cards"},
	}, h.GetCard)

	huma.Register(api, huma.Operation{
		OperationID: "shareCard",
		Method:      http.MethodPost,
		Path:        "/cards/{id}/share",
		Summary:     "Record a card share",
		Tags:        []string{"Cards"},
	}, h.ShareCard)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteCard",
		Method:        http.MethodDelete,
		Path:          "/cards/{id}",
		Summary:       "Delete a card",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteCard)
}

// ownerOrDefault resolves the effective owner for a request
func ownerOrDefault(ownerID string) string {
	if ownerID == "" {
		return defaultOwnerID
	}
	return ownerID
}

// SaveCardInput defines the input for the SaveCard operation
type SaveCardInput struct {
	OwnerID string `header:"X-Owner-ID" doc:"Owning account, defaults to guest"`
	Body    requests.SaveCardRequest
}

// SaveCardOutput defines the output for the SaveCard operation
type SaveCardOutput struct {
	Body responses.SaveCardResponse
}

// SaveCard persists a card for the requesting owner
func (h *CardsHandler) SaveCard(ctx context.Context, input *SaveCardInput) (*SaveCardOutput, error) {
	saved, err := h.service.SaveCard(ctx, ownerOrDefault(input.OwnerID), card.SaveCardRequest{
		Title:           input.Body.Title,
		Hook:            input.Body.Hook,
		Summary:         input.Body.Summary,
		SourceURL:       input.Body.SourceURL,
		Domain:          input.Body.Domain,
		Tone:            input.Body.Tone,
		TemplateID:      input.Body.TemplateID,
		BackgroundImage: input.Body.BackgroundImage,
		Visibility:      input.Body.Visibility,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SaveCardOutput{
		Body: responses.SaveCardResponse{ID: saved.ID},
	}, nil
}

// ListCardsInput defines the input for the ListCards operation
type ListCardsInput struct {
	OwnerID string `header:"X-Owner-ID" doc:"Owning account, defaults to guest"`
}

// ListCardsOutput defines the output for the ListCards operation
type ListCardsOutput struct {
	Body responses.CardListResponse
}

// ListCards returns the owner's cards newest first
func (h *CardsHandler) ListCards(ctx context.Context, input *ListCardsInput) (*ListCardsOutput, error) {
	cards, err := h.service.ListCards(ctx, ownerOrDefault(input.OwnerID))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListCardsOutput{
		Body: responses.CardListResponse{Cards: responses.FromCards(cards)},
	}, nil
}

// GetCardInput defines the input for the GetCard operation
type GetCardInput struct {
	ID string `path:"id" doc:"Card identifier"`
}

// GetCardOutput defines the output for the GetCard operation
type GetCardOutput struct {
	Body responses.CardResponse
}

// GetCard returns a card by ID
func (h *CardsHandler) GetCard(ctx context.Context, input *GetCardInput) (*GetCardOutput, error) {
	found, err := h.service.GetCard(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetCardOutput{
		Body: responses.FromCard(found),
	}, nil
}

// ShareCardInput defines the input for the ShareCard operation
type ShareCardInput struct {
	ID string `path:"id" doc:"Card identifier"`
}

// ShareCardOutput defines the output for the ShareCard operation
type ShareCardOutput struct {
	Body responses.ShareCardResponse
}

// ShareCard records a share and returns the updated counter
func (h *CardsHandler) ShareCard(ctx context.Context, input *ShareCardInput) (*ShareCardOutput, error) {
	shared, err := h.service.ShareCard(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ShareCardOutput{
		Body: responses.ShareCardResponse{ShareCount: shared.ShareCount},
	}, nil
}

// DeleteCardInput defines the input for the DeleteCard operation
type DeleteCardInput struct {
	ID      string `path:"id" doc:"Card identifier"`
	OwnerID string `header:"X-Owner-ID" doc:"Owning account, defaults to guest"`
}

// DeleteCardOutput defines the output for the DeleteCard operation
type DeleteCardOutput struct{}

// DeleteCard removes a card after an ownership check
func (h *CardsHandler) DeleteCard(ctx context.Context, input *DeleteCardInput) (*DeleteCardOutput, error) {
	if err := h.service.DeleteCard(ctx, input.ID, ownerOrDefault(input.OwnerID)); err != nil {
		return nil, toHumaError(err)
	}

	return &DeleteCardOutput{}, nil
}
