// Package llm wraps the generative text backend behind a small Client
// interface. The backend is treated as untrusted and fallible: one call per
// turn, no retries, failures mapped to sentinel errors for the caller to
// translate into a user-facing message.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// GenerateRequest holds the parameters for one generation call.
type GenerateRequest struct {
	SystemPrompt string
	UserPrompt   string
}

// GenerateResponse holds the result of one generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to a language model for text generation.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// openAIClient implements Client using the OpenAI chat completions API.
type openAIClient struct {
	cfg      Config
	client   openai.Client
	observer Observer
}

// NewOpenAIClient creates a Client backed by the OpenAI API. Retries are
// disabled at the SDK level; a failed call is reported once per turn.
func NewOpenAIClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &openAIClient{
		cfg:      cfg,
		client:   openai.NewClient(opts...),
		observer: observer,
	}
}

func (c *openAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
		MaxTokens:   openai.Int(int64(c.cfg.MaxTokens)),
		Temperature: openai.Float(c.cfg.Temperature),
	})

	latency := time.Since(start).Milliseconds()

	if err != nil {
		mapped := c.mapError(ctx, err)
		c.observer.OnCallComplete(CallEvent{
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(mapped),
		})
		return nil, mapped
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		c.observer.OnCallComplete(CallEvent{
			Model:     c.cfg.Model,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(ErrInvalidOutput),
		})
		return nil, ErrInvalidOutput
	}

	c.observer.OnCallComplete(CallEvent{
		Model:     resp.Model,
		LatencyMs: latency,
		Success:   true,
	})

	return &GenerateResponse{
		Text:      strings.TrimSpace(resp.Choices[0].Message.Content),
		Model:     resp.Model,
		LatencyMs: latency,
	}, nil
}

func (c *openAIClient) mapError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrBackendUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
