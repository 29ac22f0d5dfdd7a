// ABOUTME: Card service orchestrates the generation pipeline and card persistence
// ABOUTME: Runs fetch -> extract -> summarize -> best-effort background -> assemble

package card

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"cardforge-api/core/domain"
	coreerrors "cardforge-api/core/errors"
	"cardforge-api/core/interfaces"
)

// extractionCacheTTL bounds how long an extraction result is reused per URL
const extractionCacheTTL = 1 * time.Hour

// GeneratedCard is the assembled output of the generation pipeline. It is
// not persisted; the caller decides whether to save it as a Card.
type GeneratedCard struct {
	Title           string
	Domain          string
	Summary         string
	Hook            string
	Tone            string
	BackgroundImage *string
	AccentColor     *domain.RGBColor
}

// SaveCardRequest carries the fields for persisting a generated card
type SaveCardRequest struct {
	Title           string
	Hook            string
	Summary         string
	SourceURL       string
	Domain          string
	Tone            string
	TemplateID      string
	BackgroundImage string
	Visibility      string
}

// Service handles card generation and persistence
type Service struct {
	deps       interfaces.Dependencies
	fetcher    interfaces.PageFetcher
	extractor  interfaces.ContentExtractor
	summarizer interfaces.Summarizer
	background interfaces.BackgroundGenerator
	storage    interfaces.CardStorage
}

// NewService creates a new card service
func NewService(
	deps interfaces.Dependencies,
	fetcher interfaces.PageFetcher,
	extractor interfaces.ContentExtractor,
	summarizer interfaces.Summarizer,
	background interfaces.BackgroundGenerator,
	storage interfaces.CardStorage,
) *Service {
	return &Service{
		deps:       deps,
		fetcher:    fetcher,
		extractor:  extractor,
		summarizer: summarizer,
		background: background,
		storage:    storage,
	}
}

// GenerateCard runs the full pipeline for a source URL. Fetch, extraction and
// summarization failures abort the request; a missing background does not.
func (s *Service) GenerateCard(ctx context.Context, url string) (*GeneratedCard, error) {
	if url == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "URL is required"}
	}

	extraction, err := s.extractWithCache(ctx, url)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarizer.Summarize(ctx, extraction.Title, extraction.Content)
	if err != nil {
		return nil, err
	}

	title := summary.Title
	if title == "" {
		title = extraction.Title
	}

	backgroundImage := s.background.GenerateBackground(ctx, interfaces.BackgroundRequest{
		ImagePrompt: summary.ImagePrompt,
		Title:       title,
		Domain:      extraction.Domain,
		Summary:     summary.Summary,
		Hook:        summary.Hook,
	})

	card := &GeneratedCard{
		Title:           title,
		Domain:          extraction.Domain,
		Summary:         summary.Summary,
		Hook:            summary.Hook,
		Tone:            domain.ToneProfessional,
		BackgroundImage: backgroundImage,
	}

	if backgroundImage != nil {
		card.AccentColor = s.accentColor(*backgroundImage)
	}

	return card, nil
}

// cachedExtraction is the serializable subset of an extraction result
type cachedExtraction struct {
	Title   string `json:"title"`
	Domain  string `json:"domain"`
	Content string `json:"content"`
}

// extractWithCache fetches and extracts a page, reusing a recent extraction
// for the same URL when one is cached.
func (s *Service) extractWithCache(ctx context.Context, url string) (*cachedExtraction, error) {
	cacheKey := "extract:" + url

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached cachedExtraction
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	html, err := s.fetcher.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}

	result, err := s.extractor.Extract(html, url)
	if err != nil {
		return nil, err
	}

	extraction := &cachedExtraction{
		Title:   result.Title,
		Domain:  result.Domain,
		Content: result.Content,
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(extraction); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, extractionCacheTTL)
		}
	}

	return extraction, nil
}

// SaveCard validates and persists a card for an owner, returning the stored card
func (s *Service) SaveCard(ctx context.Context, ownerID string, req SaveCardRequest) (*domain.Card, error) {
	card, err := domain.NewCard(ownerID, req.Title, req.Hook, req.Summary)
	if err != nil {
		return nil, &coreerrors.ValidationError{Field: "card", Message: err.Error()}
	}

	if req.SourceURL != "" {
		card.SourceURL = req.SourceURL
	}
	if req.Domain != "" {
		card.SourceMeta = &domain.SourceMeta{
			Domain:     req.Domain,
			FaviconURL: domain.FaviconURL(req.Domain),
		}
	}
	if req.Tone != "" {
		card.Tone = req.Tone
	}
	if req.TemplateID != "" {
		card.TemplateID = req.TemplateID
	}
	if req.Visibility != "" {
		card.Visibility = req.Visibility
	}
	if req.BackgroundImage != "" {
		card.BackgroundImage = req.BackgroundImage
		card.AccentColor = s.accentColor(req.BackgroundImage)
	}

	if err := s.storage.Save(ctx, card); err != nil {
		return nil, coreerrors.WrapError(err, "failed to save card")
	}

	return card, nil
}

// ListCards returns an owner's cards newest first. When the backend cannot
// order server-side it returns ErrUnordered with the rows; re-sort here.
func (s *Service) ListCards(ctx context.Context, ownerID string) ([]*domain.Card, error) {
	cards, err := s.storage.ListByOwner(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, interfaces.ErrUnordered) {
			return nil, err
		}
		s.deps.Logger.Warn("Storage returned unordered cards, sorting client-side", map[string]interface{}{
			"owner_id": ownerID,
		})
		sort.Slice(cards, func(i, j int) bool {
			return cards[i].CreatedAt.After(cards[j].CreatedAt)
		})
	}

	return cards, nil
}

// GetCard retrieves a card by ID and records the view. The counter bump is
// best-effort and reflected in the returned card.
func (s *Service) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	card, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, &coreerrors.NotFoundError{Resource: "card", ID: id}
	}

	if err := s.storage.IncrementViewCount(ctx, id); err != nil {
		s.deps.Logger.Warn("Failed to record card view", map[string]interface{}{
			"card_id": id,
			"error":   err.Error(),
		})
	} else {
		card.ViewCount++
	}

	return card, nil
}

// ShareCard records a share and returns the card with the updated counter
func (s *Service) ShareCard(ctx context.Context, id string) (*domain.Card, error) {
	card, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, &coreerrors.NotFoundError{Resource: "card", ID: id}
	}

	if err := s.storage.IncrementShareCount(ctx, id); err != nil {
		return nil, coreerrors.WrapError(err, "failed to record share")
	}
	card.ShareCount++

	return card, nil
}

// DeleteCard removes a card after verifying ownership
func (s *Service) DeleteCard(ctx context.Context, id, ownerID string) error {
	card, err := s.storage.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if card == nil {
		return &coreerrors.NotFoundError{Resource: "card", ID: id}
	}
	if card.OwnerID != ownerID {
		return &coreerrors.ForbiddenError{Resource: "card", ID: id}
	}

	return s.storage.Delete(ctx, id)
}
