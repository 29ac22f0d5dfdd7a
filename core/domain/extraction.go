// ABOUTME: ExtractionResult domain model for content extracted from a web page
// ABOUTME: Tracks which fallback stages ran so callers and tests can inspect the cascade

package domain

// Extraction stage names recorded on an ExtractionResult
const (
	StageStructural = "structural"
	StageBody       = "body"
	StageMinimal    = "minimal"
)

// ExtractionResult holds the text content extracted from a page.
// It is built fresh per request and discarded once the summarizer consumes it.
type ExtractionResult struct {
	// Title is the page title, or "Untitled Page" when absent
	Title string

	// Domain is the source hostname with one leading "www." stripped
	Domain string

	// Content is the newline-separated extracted text
	Content string

	stagesRun []string
}

// RecordStage appends a stage name to the list of stages that ran
func (r *ExtractionResult) RecordStage(stage string) {
	r.stagesRun = append(r.stagesRun, stage)
}

// StagesRun returns the extraction stages that ran, in order
func (r *ExtractionResult) StagesRun() []string {
	return r.stagesRun
}

// RanStage reports whether the named stage ran
func (r *ExtractionResult) RanStage(stage string) bool {
	for _, s := range r.stagesRun {
		if s == stage {
			return true
		}
	}
	return false
}
