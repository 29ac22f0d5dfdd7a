// Package core contains the business logic for the CardForge API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Card, ExtractionResult, etc.)
// - fetch: Source page retrieval with a browser-like identity
// - extract: Layered content extraction from raw HTML
// - summarize: Structured summarization via a text model
// - imagegen: Best-effort background image generation
// - card: Pipeline orchestration and card persistence
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "cardforge-api/core/card"
//	    "cardforge-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	cardService := card.NewService(deps, fetcher, extractor, summarizer, background, storage)
//
//	// Generate a card
//	generated, err := cardService.GenerateCard(ctx, "https://example.com/story")
package core
