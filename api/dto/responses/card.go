// ABOUTME: Response DTOs for card-related API endpoints
// ABOUTME: Maps domain entities to the JSON shapes the client consumes

package responses

import (
	"time"

	"cardforge-api/core/card"
	"cardforge-api/core/domain"
)

// GeneratedCardResponse is the result of the generation pipeline
type GeneratedCardResponse struct {
	Title           string    `json:"title" doc:"Card title"`
	Domain          string    `json:"domain" doc:"Source hostname"`
	Summary         string    `json:"summary" doc:"Content summary"`
	Hook            string    `json:"hook" doc:"Attention-grabbing tagline"`
	Tone            string    `json:"tone" doc:"Editorial tone"`
	BackgroundImage *string   `json:"backgroundImage" doc:"Background image data URL, null when generation failed"`
	AccentColor     *RGBColor `json:"accentColor,omitempty" doc:"Dominant color of the background image"`
}

// RGBColor is an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// SourceMeta holds source page metadata on a saved card
type SourceMeta struct {
	Title        string `json:"title,omitempty"`
	Domain       string `json:"domain,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	FaviconURL   string `json:"faviconUrl,omitempty"`
}

// CardResponse is a persisted card
type CardResponse struct {
	ID              string      `json:"id" doc:"Card identifier"`
	OwnerID         string      `json:"ownerId" doc:"Owning account"`
	Title           string      `json:"title"`
	Hook            string      `json:"hook"`
	Summary         string      `json:"summary"`
	SourceType      string      `json:"sourceType"`
	SourceURL       string      `json:"sourceUrl,omitempty"`
	SourceMeta      *SourceMeta `json:"sourceMeta,omitempty"`
	Tone            string      `json:"tone"`
	TemplateID      string      `json:"templateId"`
	BackgroundImage string      `json:"backgroundImage,omitempty"`
	AccentColor     *RGBColor   `json:"accentColor,omitempty"`
	Visibility      string      `json:"visibility"`
	ViewCount       int         `json:"viewCount"`
	ShareCount      int         `json:"shareCount"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// SaveCardResponse carries the identifier of a newly saved card
type SaveCardResponse struct {
	ID string `json:"id" doc:"Identifier of the saved card"`
}

// CardListResponse is an owner's card collection, newest first
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

// ShareCardResponse carries the updated share counter
type ShareCardResponse struct {
	ShareCount int `json:"shareCount" doc:"Share count after recording this share"`
}

// FromGeneratedCard maps a pipeline result to its response shape
func FromGeneratedCard(generated *card.GeneratedCard) GeneratedCardResponse {
	return GeneratedCardResponse{
		Title:           generated.Title,
		Domain:          generated.Domain,
		Summary:         generated.Summary,
		Hook:            generated.Hook,
		Tone:            generated.Tone,
		BackgroundImage: generated.BackgroundImage,
		AccentColor:     fromRGBColor(generated.AccentColor),
	}
}

// FromCard maps a domain card to its response shape
func FromCard(c *domain.Card) CardResponse {
	resp := CardResponse{
		ID:              c.ID,
		OwnerID:         c.OwnerID,
		Title:           c.Title,
		Hook:            c.Hook,
		Summary:         c.Summary,
		SourceType:      c.SourceType,
		SourceURL:       c.SourceURL,
		Tone:            c.Tone,
		TemplateID:      c.TemplateID,
		BackgroundImage: c.BackgroundImage,
		AccentColor:     fromRGBColor(c.AccentColor),
		Visibility:      c.Visibility,
		ViewCount:       c.ViewCount,
		ShareCount:      c.ShareCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}

	if c.SourceMeta != nil {
		resp.SourceMeta = &SourceMeta{
			Title:        c.SourceMeta.Title,
			Domain:       c.SourceMeta.Domain,
			ThumbnailURL: c.SourceMeta.ThumbnailURL,
			FaviconURL:   c.SourceMeta.FaviconURL,
		}
	}

	return resp
}

// FromCards maps a card list, preserving order
func FromCards(cards []*domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, FromCard(c))
	}
	return out
}

func fromRGBColor(c *domain.RGBColor) *RGBColor {
	if c == nil {
		return nil
	}
	return &RGBColor{R: c.R, G: c.G, B: c.B}
}
