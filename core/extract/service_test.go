package extract

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"cardforge-api/core/domain"
	coreerrors "cardforge-api/core/errors"
)

func newTestService() *Service {
	return NewService(nil)
}

func TestExtract_SanitizationRemovesNonContentElements(t *testing.T) {
	html := `<html><head><title>Test</title><style>body { color: SECRETSTYLE; }</style></head><body>
		<script>var SECRETSCRIPT = "should not appear in output";</script>
		<nav>SECRETNAV navigation links that are long enough to pass filters</nav>
		<header>SECRETHEADER banner text that is long enough to pass filters</header>
		<footer>SECRETFOOTER copyright text that is long enough to pass filters</footer>
		<article><p>This is the actual article body and it is clearly long enough to keep.</p></article>
	</body></html>`

	result, err := newTestService().Extract(html, "https://example.com/post")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	for _, marker := range []string{"SECRETSCRIPT", "SECRETSTYLE", "SECRETNAV", "SECRETHEADER", "SECRETFOOTER"} {
		if strings.Contains(result.Content, marker) {
			t.Errorf("content contains sanitized element text %q", marker)
		}
	}
	if !strings.Contains(result.Content, "actual article body") {
		t.Errorf("content missing article text: %q", result.Content)
	}
}

func TestExtract_DomainNormalization(t *testing.T) {
	html := `<html><head><title>T</title></head><body><article><p>Some article content that is long enough to pass every filter in place.</p></article></body></html>`

	tests := []struct {
		url  string
		want string
	}{
		{"https://www.example.com/a", "example.com"},
		{"https://example.com/a", "example.com"},
		{"https://www.www.example.com/a", "www.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result, err := newTestService().Extract(html, tt.url)
			if err != nil {
				t.Fatalf("Extract returned error: %v", err)
			}
			if result.Domain != tt.want {
				t.Errorf("Domain = %q, want %q", result.Domain, tt.want)
			}
		})
	}
}

func TestExtract_TitleDefaultsToPlaceholder(t *testing.T) {
	html := `<html><head></head><body><p>Body content long enough to survive the fragment filter easily.</p></body></html>`

	result, err := newTestService().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if result.Title != "Untitled Page" {
		t.Errorf("Title = %q, want %q", result.Title, "Untitled Page")
	}
}

func TestExtract_MinimumLengthGate(t *testing.T) {
	// Sanitized text across all stages stays under 10 characters.
	html := `<html><head><title>Hi</title></head><body>ok</body></html>`

	_, err := newTestService().Extract(html, "https://example.com")
	if err == nil {
		t.Fatal("Extract should fail below the minimum content length")
	}

	var extractionErr *coreerrors.ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("error = %T, want *ExtractionError", err)
	}
	if !strings.Contains(extractionErr.Details(), "Extracted 2 characters") {
		t.Errorf("Details() = %q, want extracted character count", extractionErr.Details())
	}
}

func TestExtract_MinimumLengthGate_ExactBoundary(t *testing.T) {
	// Title alone carries the content via the minimal fallback; 10 trimmed
	// characters is the lowest accepted length.
	html := `<html><head><title>exactly10!</title></head><body></body></html>`

	result, err := newTestService().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("Extract returned error at the 10-character boundary: %v", err)
	}
	if result.Content != "exactly10!" {
		t.Errorf("Content = %q, want title fallback", result.Content)
	}
}

func TestExtract_StagePrecedenceByLength(t *testing.T) {
	// Stage A yields ~150 characters from the article; the body holds more
	// distinct long lines, so the body fallback result is longer and wins.
	articleSentence := "Article paragraph text padded to roughly one hundred and fifty characters so the structural stage output stays below the two hundred gate."
	bodyLines := []string{
		"First body line with completely distinct wording number one here today.",
		"Second line speaking about an entirely different topic altogether now.",
		"Third line describing yet another unrelated subject in other words.",
		"Fourth line carrying its own unique phrasing and separate vocabulary.",
	}

	html := fmt.Sprintf(`<html><head><title>T</title></head><body>
		<article><p>%s</p></article>
		%s
	</body></html>`, articleSentence, "<div>"+strings.Join(bodyLines, "</div>\n<div>")+"</div>")

	result, err := newTestService().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if !result.RanStage(domain.StageBody) {
		t.Fatal("body fallback stage should have run for short structural content")
	}
	if len([]rune(result.Content)) <= len([]rune(articleSentence)) {
		t.Errorf("content length = %d, want body fallback to override shorter Stage A", len(result.Content))
	}
	for _, line := range bodyLines {
		if !strings.Contains(result.Content, line) {
			t.Errorf("content missing body line %q", line)
		}
	}
}

func TestExtract_BodyFallbackSkippedWhenStructuralSufficient(t *testing.T) {
	var sentences []string
	for i := 0; i < 5; i++ {
		sentences = append(sentences, fmt.Sprintf("Structural sentence number %d is distinct and well above the length gate.", i))
	}
	html := `<html><head><title>T</title></head><body><article><p>` +
		strings.Join(sentences, "</p><p>") + `</p></article></body></html>`

	result, err := newTestService().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if result.RanStage(domain.StageBody) {
		t.Error("body fallback should not run when structural content is at least 200 characters")
	}
	if result.RanStage(domain.StageMinimal) {
		t.Error("minimal fallback should not run for sufficient structural content")
	}
}

func TestPositionalSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "abcd", "abcd", 100},
		{"disjoint", "aaaa", "bbbb", 0},
		{"half match same length", "aabb", "aacc", 50},
		{"length mismatch divides by longer", "aaaa", "aaaaaaaa", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := positionalSimilarity(tt.a, tt.b); got != tt.want {
				t.Errorf("positionalSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestExtract_DuplicateLineSuppression(t *testing.T) {
	// 40-character lines differing in 2 positions: 95% similar, second dropped.
	lineA := "The quick brown fox jumps over lazy dogs"
	lineB := "The quick brown fox jumps over lazy dogz"
	// 40-character lines differing in 10 positions: 75% similar, both kept.
	lineC := "The quick brown fox jumps over lazy dogs"
	lineD := "The quick brown cat sleeps atop lazy logs"

	t.Run("near duplicate dropped", func(t *testing.T) {
		html := fmt.Sprintf(`<html><head><title>T</title></head><body>%s
%s</body></html>`, lineA, lineB)

		result, err := newTestService().Extract(html, "https://example.com")
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		if strings.Contains(result.Content, "dogz") {
			t.Errorf("near-duplicate line should be dropped, content = %q", result.Content)
		}
		if !strings.Contains(result.Content, lineA) {
			t.Errorf("first line should be kept, content = %q", result.Content)
		}
	})

	t.Run("dissimilar lines both kept", func(t *testing.T) {
		if sim := positionalSimilarity(lineD, lineC); sim > 80 {
			t.Fatalf("test fixture invalid: similarity = %v", sim)
		}

		html := fmt.Sprintf(`<html><head><title>T</title></head><body>%s
%s</body></html>`, lineC, lineD)

		result, err := newTestService().Extract(html, "https://example.com")
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		if !strings.Contains(result.Content, lineC) || !strings.Contains(result.Content, lineD) {
			t.Errorf("both dissimilar lines should be kept, content = %q", result.Content)
		}
	})
}

func TestExtract_FragmentFilterBoundary(t *testing.T) {
	exactly20 := strings.Repeat("x", 20)
	exactly21 := strings.Repeat("y", 21)

	html := fmt.Sprintf(`<html><head><title>T</title></head><body><article>
		<p>%s</p>
		<p>%s</p>
		<p>This longer paragraph keeps the final content above the validation gate.</p>
	</article></body></html>`, exactly20, exactly21)

	result, err := newTestService().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if strings.Contains(result.Content, exactly20) {
		t.Error("fragments of exactly 20 characters should be discarded")
	}
	if !strings.Contains(result.Content, exactly21) {
		t.Error("fragments of 21 characters should be kept")
	}
}

func TestExtract_BodyFallbackTruncation(t *testing.T) {
	// Lines built from distinct character pairs so positional similarity
	// between any two stays at 50% and the dedup filter keeps all of them.
	var lines []string
	for i := 0; i < 400; i++ {
		pair := string(rune('a'+i/26)) + string(rune('a'+i%26))
		lines = append(lines, strings.Repeat(pair, 30))
	}
	html := `<html><head><title>T</title></head><body>` + strings.Join(lines, "\n") + `</body></html>`

	result, err := newTestService().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if got := len([]rune(result.Content)); got != 15000 {
		t.Errorf("content length = %d, want exactly 15000", got)
	}
}

func TestExtract_MinimalFallbackOrdering(t *testing.T) {
	html := `<html><head>
		<title>Short Title</title>
		<meta name="description" content="A meta description for the page.">
	</head><body></body></html>`

	result, err := newTestService().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	want := "Short Title\nA meta description for the page."
	if result.Content != want {
		t.Errorf("Content = %q, want %q", result.Content, want)
	}
	if !result.RanStage(domain.StageMinimal) {
		t.Error("minimal stage should be recorded")
	}
}

func TestExtract_MinimalFallbackIncludesOGDescription(t *testing.T) {
	html := `<html><head>
		<title>T2</title>
		<meta name="description" content="Plain description text.">
		<meta property="og:description" content="Open graph description text.">
	</head><body></body></html>`

	result, err := newTestService().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	want := "T2\nPlain description text.\nOpen graph description text."
	if result.Content != want {
		t.Errorf("Content = %q, want %q", result.Content, want)
	}
}

func TestExtract_MinimalFallbackBodySnippet(t *testing.T) {
	// Every body line is at or under 20 characters, so the body fallback
	// keeps nothing; with no meta tags the minimal stage slices the first
	// 500 characters of raw body text.
	line := "short words here" // 16 chars, dropped by the line filter
	bodyText := strings.TrimSuffix(strings.Repeat(line+"\n", 100), "\n")
	html := `<html><head><title>T</title></head><body>` + bodyText + `</body></html>`

	result, err := newTestService().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if got := len([]rune(result.Content)); got != 500 {
		t.Errorf("content length = %d, want body snippet of 500", got)
	}
	if !strings.HasPrefix(result.Content, line) {
		t.Errorf("content should start with body text, got %q", result.Content[:30])
	}
	if !result.RanStage(domain.StageMinimal) {
		t.Error("minimal stage should be recorded")
	}
}

func TestExtract_EndToEnd(t *testing.T) {
	var sentences []string
	for i := 0; i < 25; i++ {
		sentences = append(sentences, fmt.Sprintf("Distinct sentence number %02d covering its own particular topic %c.", i, 'a'+i))
	}

	html := `<html><head><title>Breaking News</title></head><body><article><p>` +
		strings.Join(sentences, "</p><p>") + `</p></article></body></html>`

	result, err := newTestService().Extract(html, "https://www.News.Example.com/story")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if result.Domain != "news.example.com" {
		t.Errorf("Domain = %q, want %q", result.Domain, "news.example.com")
	}
	if result.Title != "Breaking News" {
		t.Errorf("Title = %q, want %q", result.Title, "Breaking News")
	}
	want := strings.Join(sentences, "\n")
	if result.Content != want {
		t.Errorf("Content mismatch:\ngot  %q\nwant %q", result.Content, want)
	}
	if result.RanStage(domain.StageBody) || result.RanStage(domain.StageMinimal) {
		t.Errorf("only the structural stage should run, got %v", result.StagesRun())
	}
}

func TestExtract_StructuralPicksLongestSingleSelector(t *testing.T) {
	// article and .content both match; results must not be merged.
	html := `<html><head><title>T</title></head><body>
		<article><p>Shorter article container text above the fragment filter.</p></article>
		<div class="content">
			<p>Longer content container first paragraph with plenty of characters.</p>
			<p>Longer content container second paragraph with plenty of characters.</p>
			<p>Longer content container third paragraph with plenty of characters.</p>
		</div>
	</body></html>`

	result, err := newTestService().Extract(html, "https://example.com")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if strings.Contains(result.Content, "Shorter article container") {
		t.Errorf("selector results should not be merged, content = %q", result.Content)
	}
	if !strings.Contains(result.Content, "third paragraph") {
		t.Errorf("longest selector result should win, content = %q", result.Content)
	}
}

func TestExtract_InvalidURLYieldsEmptyDomain(t *testing.T) {
	html := `<html><head><title>T</title></head><body><p>Content long enough to pass the final validation gate here.</p></body></html>`

	result, err := newTestService().Extract(html, "://not-a-url")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if result.Domain != "" {
		t.Errorf("Domain = %q, want empty for malformed URL", result.Domain)
	}
}
