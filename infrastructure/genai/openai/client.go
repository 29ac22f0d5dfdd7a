// ABOUTME: Generative AI adapters backed by an OpenAI-compatible API
// ABOUTME: Provides chat completion and image generation behind the core interfaces

package openai

import (
	"context"
	"errors"
	"net/http"
	"time"

	coreerrors "cardforge-api/core/errors"
	"cardforge-api/core/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

// Config carries the connection settings for an OpenAI-compatible backend
type Config struct {
	// BaseURL overrides the API endpoint; empty uses the OpenAI default
	BaseURL string

	// APIKey authenticates against the backend
	APIKey string

	// TextModel is the chat model used for summaries
	TextModel string

	// ImageModel is the model used for background images
	ImageModel string

	// TextTimeout bounds a single chat completion call
	TextTimeout time.Duration

	// ImageTimeout bounds a single image generation call
	ImageTimeout time.Duration
}

// NewClient creates the underlying go-openai client for the given config
func NewClient(cfg Config) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}

// TextClient implements TextGenerator on an OpenAI-compatible chat endpoint
type TextClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  interfaces.Logger
}

// NewTextClient creates a text generation adapter
func NewTextClient(client *openai.Client, cfg Config, logger interfaces.Logger) *TextClient {
	return &TextClient{
		client:  client,
		model:   cfg.TextModel,
		timeout: cfg.TextTimeout,
		logger:  logger,
	}
}

// Complete sends a single-turn prompt and returns the model's raw reply
func (c *TextClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.Debug("Requesting chat completion", map[string]interface{}{
		"model":         c.model,
		"prompt_length": len(prompt),
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", upstreamError("text generation", err)
	}

	if len(resp.Choices) == 0 {
		return "", &coreerrors.UpstreamServiceError{
			Service:    "text generation",
			StatusCode: http.StatusBadGateway,
			Message:    "backend returned no choices",
		}
	}

	return resp.Choices[0].Message.Content, nil
}

// ImageClient implements ImageGenerator on an OpenAI-compatible image endpoint
type ImageClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  interfaces.Logger
}

// NewImageClient creates an image generation adapter
func NewImageClient(client *openai.Client, cfg Config, logger interfaces.Logger) *ImageClient {
	return &ImageClient{
		client:  client,
		model:   cfg.ImageModel,
		timeout: cfg.ImageTimeout,
		logger:  logger,
	}
}

// Generate requests one image and returns its base64 payload
func (c *ImageClient) Generate(ctx context.Context, req interfaces.ImageRequest) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.Debug("Requesting image generation", map[string]interface{}{
		"model": c.model,
		"size":  imageSize(req.AspectRatio),
	})

	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Prompt,
		Model:          c.model,
		N:              1,
		Size:           imageSize(req.AspectRatio),
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return "", upstreamError("image generation", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", &coreerrors.UpstreamServiceError{
			Service:    "image generation",
			StatusCode: http.StatusBadGateway,
			Message:    "backend returned no image data",
		}
	}

	return resp.Data[0].B64JSON, nil
}

// imageSize maps an aspect ratio to the closest supported output size
func imageSize(aspectRatio string) string {
	switch aspectRatio {
	case "9:16":
		return openai.CreateImageSize1024x1792
	case "16:9":
		return openai.CreateImageSize1792x1024
	default:
		return openai.CreateImageSize1024x1024
	}
}

// upstreamError converts go-openai errors to UpstreamServiceError, keeping
// the backend's HTTP status when one is available
func upstreamError(service string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &coreerrors.UpstreamServiceError{
			Service:    service,
			StatusCode: apiErr.HTTPStatusCode,
			Message:    apiErr.Message,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &coreerrors.UpstreamServiceError{
			Service:    service,
			StatusCode: reqErr.HTTPStatusCode,
			Message:    reqErr.Error(),
		}
	}

	return &coreerrors.UpstreamServiceError{
		Service:    service,
		StatusCode: http.StatusInternalServerError,
		Message:    err.Error(),
	}
}
