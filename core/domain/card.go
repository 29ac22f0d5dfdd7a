// ABOUTME: Card domain model represents a generated summary card for a source URL
// ABOUTME: Provides validation and defaulting for persisted cards

package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Card visibility levels
const (
	VisibilityPublic   = "public"
	VisibilityUnlisted = "unlisted"
	VisibilityPrivate  = "private"
)

// Card tones
const (
	ToneFriendly     = "friendly"
	ToneProfessional = "professional"
	ToneInvestor     = "investor"
	ToneStudent      = "student"
)

// Card templates
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
	TemplateBold    = "bold"
	TemplateMinimal = "minimal"
)

// Source types for a card
const (
	SourceTypeURL  = "url"
	SourceTypeText = "text"
)

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// SourceMeta holds metadata about the card's source page
type SourceMeta struct {
	// Title is the original page title
	Title string `json:"title,omitempty"`

	// Domain is the source hostname with a leading "www." stripped
	Domain string `json:"domain,omitempty"`

	// ThumbnailURL is an optional preview image for the source
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	// FaviconURL is the favicon for the source domain
	FaviconURL string `json:"favicon_url,omitempty"`
}

// Card represents a generated, shareable summary card
type Card struct {
	// ID is the unique identifier (UUID) for the card
	ID string `json:"id"`

	// OwnerID identifies the account the card belongs to
	OwnerID string `json:"owner_id"`

	// Title is the display title (summarizer rewrite or page title)
	Title string `json:"title"`

	// Hook is the short attention-grabbing tagline
	Hook string `json:"hook"`

	// Summary is the multi-line content summary
	Summary string `json:"summary"`

	// SourceType is "url" or "text"
	SourceType string `json:"source_type"`

	// SourceURL is the original page URL for url-sourced cards
	SourceURL string `json:"source_url,omitempty"`

	// SourceMeta holds source page metadata
	SourceMeta *SourceMeta `json:"source_meta,omitempty"`

	// Tone is the editorial tone of the card
	Tone string `json:"tone"`

	// TemplateID selects the visual template
	TemplateID string `json:"template_id"`

	// BackgroundImage is a data URL with the generated background, if any
	BackgroundImage string `json:"background_image,omitempty"`

	// AccentColor is the dominant color derived from the background image
	AccentColor *RGBColor `json:"accent_color,omitempty"`

	// Visibility controls who can see the card
	Visibility string `json:"visibility"`

	// ViewCount is the number of times the card was viewed
	ViewCount int `json:"view_count"`

	// ShareCount is the number of times the card was shared
	ShareCount int `json:"share_count"`

	// CreatedAt is when the card was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the card was last modified
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCard creates a new Card instance with validation and defaults
func NewCard(ownerID, title, hook, summary string) (*Card, error) {
	if ownerID == "" {
		return nil, errors.New("owner ID cannot be empty")
	}
	if title == "" {
		return nil, errors.New("card title cannot be empty")
	}
	if hook == "" {
		return nil, errors.New("card hook cannot be empty")
	}
	if summary == "" {
		return nil, errors.New("card summary cannot be empty")
	}

	now := time.Now()
	card := &Card{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Title:      title,
		Hook:       hook,
		Summary:    summary,
		SourceType: SourceTypeURL,
		Tone:       ToneProfessional,
		TemplateID: TemplateModern,
		Visibility: VisibilityPrivate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return card, nil
}

// FaviconURL returns the favicon lookup URL for a source domain
func FaviconURL(domain string) string {
	if domain == "" {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=128", domain)
}
