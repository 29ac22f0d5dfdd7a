// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, persistence, HTTP communication, generative backends and
// logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation on patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - storage/sqlite: SQLite-backed card persistence
// - http/standard: Standard library HTTP client for page fetching
// - logger/logrus: Structured logger implementation on logrus
// - genai/openai: Text and image generation over an OpenAI-compatible API
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client performs single-attempt GETs with caller-supplied headers:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com", map[string]string{
//	    "User-Agent": "Mozilla/5.0 ...",
//	})
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger("info")
//	logger.Info("Processing request", map[string]interface{}{
//	    "card_id": "123",
//	    "action":  "generate",
//	})
package infrastructure
