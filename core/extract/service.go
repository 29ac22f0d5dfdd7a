// ABOUTME: Content extraction service turning raw HTML into a bounded text payload
// ABOUTME: Implements the structural/body/minimal fallback cascade with positional dedup

package extract

import (
	"net/url"
	"strings"

	"cardforge-api/core/domain"
	coreerrors "cardforge-api/core/errors"
	"cardforge-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
)

const (
	// untitledPlaceholder is used when the page has no usable <title>
	untitledPlaceholder = "Untitled Page"

	// minFragmentLength is the strict lower bound for kept text fragments
	minFragmentLength = 20

	// structuralSufficientLength skips the body fallback when Stage A met it
	structuralSufficientLength = 200

	// minimalTriggerLength triggers the minimal-content fallback below it
	minimalTriggerLength = 50

	// bodyFallbackMaxLength bounds the body-fallback content
	bodyFallbackMaxLength = 15000

	// bodySnippetLength is the last-resort slice of body text
	bodySnippetLength = 500

	// minContentLength is the final validation gate
	minContentLength = 10

	// similarityThreshold is the positional match percentage above which a
	// line counts as a duplicate of an earlier kept line
	similarityThreshold = 80.0
)

// structuralSelectors are the candidate main-content containers. Each is
// evaluated independently; the longest single result wins.
var structuralSelectors = []string{
	"article",
	"main",
	".content",
	"#content",
	".article",
	".post",
	".entry",
	"[role='main']",
}

// textBearingSelector matches the block elements collected inside a container
const textBearingSelector = "p, h1, h2, h3, h4, h5, h6, li, blockquote, div"

// sanitizeSelector matches elements removed before any text extraction
const sanitizeSelector = "script, style, nav, footer, header"

// Service extracts readable content from fetched pages
type Service struct {
	logger interfaces.Logger
}

// NewService creates a new extraction service
func NewService(logger interfaces.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Extract produces an ExtractionResult from raw HTML and the source URL.
// The cascade runs structural extraction first, falls back to deduplicated
// body text below 200 characters, and to title/meta content below 50. It
// fails when fewer than 10 trimmed characters remain after all stages.
func (s *Service) Extract(html, rawURL string) (*domain.ExtractionResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, coreerrors.WrapError(err, "failed to parse HTML")
	}

	doc.Find(sanitizeSelector).Remove()

	result := &domain.ExtractionResult{
		Title:  pageTitle(doc),
		Domain: normalizeDomain(rawURL),
	}

	content := s.extractStructural(doc)
	result.RecordStage(domain.StageStructural)

	if runeLen(content) < structuralSufficientLength {
		result.RecordStage(domain.StageBody)
		if body := s.extractBodyFallback(doc); runeLen(body) > runeLen(content) {
			content = body
		}
	}

	if runeLen(content) < minimalTriggerLength {
		result.RecordStage(domain.StageMinimal)
		content = s.extractMinimal(doc, result.Title)
	}

	if strings.TrimSpace(content) == "" || runeLen(strings.TrimSpace(content)) < minContentLength {
		if s.logger != nil {
			s.logger.Error("Content extraction failed", map[string]interface{}{
				"url":            rawURL,
				"title":          result.Title,
				"content_length": runeLen(content),
			})
		}
		return nil, &coreerrors.ExtractionError{
			URL:           rawURL,
			ContentLength: runeLen(content),
		}
	}

	result.Content = content
	return result, nil
}

// extractStructural collects text from candidate main-content containers and
// keeps the longest single-selector result (Stage A).
func (s *Service) extractStructural(doc *goquery.Document) string {
	var content string

	for _, selector := range structuralSelectors {
		var fragments []string
		doc.Find(selector).Find(textBearingSelector).Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if runeLen(text) > minFragmentLength {
				fragments = append(fragments, text)
			}
		})

		extracted := strings.Join(fragments, "\n")
		if runeLen(extracted) > runeLen(content) {
			content = extracted
		}
	}

	return content
}

// extractBodyFallback takes raw body text, keeps lines over the fragment
// bound, drops near-duplicates of earlier kept lines, and truncates the
// joined result (Stage B).
func (s *Service) extractBodyFallback(doc *goquery.Document) string {
	bodyText := doc.Find("body").Text()

	lines := strings.FieldsFunc(bodyText, func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	var kept []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if runeLen(line) <= minFragmentLength {
			continue
		}
		if isDuplicateOfKept(line, kept) {
			continue
		}
		kept = append(kept, line)
	}

	return truncateRunes(strings.Join(kept, "\n"), bodyFallbackMaxLength)
}

// extractMinimal joins title and meta descriptions, falling back to the first
// 500 characters of body text or the title alone (Stage C).
func (s *Service) extractMinimal(doc *goquery.Document, title string) string {
	metaDescription, _ := doc.Find(`meta[name="description"]`).Attr("content")
	ogDescription, _ := doc.Find(`meta[property="og:description"]`).Attr("content")

	var parts []string
	for _, part := range []string{title, metaDescription, ogDescription} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	content := strings.Join(parts, "\n")

	if runeLen(content) < minimalTriggerLength {
		fallback := truncateRunes(strings.TrimSpace(doc.Find("body").Text()), bodySnippetLength)
		if fallback != "" {
			return fallback
		}
		return title
	}

	return content
}

// isDuplicateOfKept reports whether any earlier kept line matches the
// candidate above the similarity threshold.
func isDuplicateOfKept(line string, kept []string) bool {
	for _, prev := range kept {
		if positionalSimilarity(line, prev) > similarityThreshold {
			return true
		}
	}
	return false
}

// positionalSimilarity is the percentage of character positions where both
// strings carry the same rune, over the longer string's length. This is a
// literal positional match, not an edit distance.
func positionalSimilarity(a, b string) float64 {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return 0
	}

	matches := 0
	for i := 0; i < len(ar) && i < len(br); i++ {
		if ar[i] == br[i] {
			matches++
		}
	}

	longest := len(ar)
	if len(br) > longest {
		longest = len(br)
	}

	return float64(matches) / float64(longest) * 100
}

// pageTitle returns the trimmed <title> text or the placeholder
func pageTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").Text())
	if title == "" {
		return untitledPlaceholder
	}
	return title
}

// normalizeDomain returns the lowercase hostname with one leading "www."
// prefix stripped. A malformed URL yields an empty domain rather than an
// error; extraction only fails on missing content.
func normalizeDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}

func runeLen(s string) int {
	return len([]rune(s))
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
