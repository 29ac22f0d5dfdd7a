// ABOUTME: Request DTOs for card-related API endpoints
// ABOUTME: Defines the generate and save request bodies

package requests

// GenerateCardRequest represents the request body for generating a card.
// The URL is validated in the handler so a missing value maps to a 400
// with a stable message rather than a schema error.
type GenerateCardRequest struct {
	// URL is the source page to turn into a card
	URL string `json:"url,omitempty" doc:"Source page URL to turn into a card"`
}

// SaveCardRequest represents the request body for persisting a card
type SaveCardRequest struct {
	// Title is the card display title
	Title string `json:"title,omitempty" doc:"Card display title"`

	// Hook is the short attention-grabbing tagline
	Hook string `json:"hook,omitempty" doc:"Short attention-grabbing tagline"`

	// Summary is the multi-line content summary
	Summary string `json:"summary,omitempty" doc:"Multi-line content summary"`

	// SourceURL is the original page URL
	SourceURL string `json:"sourceUrl,omitempty" format:"uri" doc:"Original page URL"`

	// Domain is the source hostname
	Domain string `json:"domain,omitempty" doc:"Source hostname"`

	// Tone is the editorial tone of the card
	Tone string `json:"tone,omitempty" enum:"friendly,professional,investor,student" doc:"Editorial tone"`

	// TemplateID selects the visual template
	TemplateID string `json:"templateId,omitempty" enum:"classic,modern,bold,minimal" doc:"Visual template"`

	// BackgroundImage is the generated background as a data URL
	BackgroundImage string `json:"backgroundImage,omitempty" doc:"Background image data URL"`

	// Visibility controls who can see the card
	Visibility string `json:"visibility,omitempty" enum:"public,unlisted,private" doc:"Card visibility"`
}
