package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mintmate/internal/logger"

	"github.com/sashabaranov/go-openai"
)

const (
	GroqBaseUrl      = "https://api.groq.com/openai/v1"
	DefaultGroqModel = "meta-llama/llama-4-scout-17b-16e-instruct"

	defaultLlmTimeout    = 30 * time.Second
	defaultLlmMaxRetries = 2
	defaultLlmRetryDelay = time.Second
)

var (
	ErrLlmInvalidPrompt = errors.New("invalid prompt: must be a non-empty string")
	ErrLlmAuth          = errors.New("authentication failed: invalid API key")
	ErrLlmRateLimited   = errors.New("rate limit exceeded: please try again later")
	ErrLlmServer        = errors.New("server error: please try again later")
	ErrLlmEmptyResponse = errors.New("no content in AI response")
)

type LlmRepository interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithRetry(ctx context.Context, prompt string) (string, error)
	Model() string
}

type LlmConfig struct {
	ApiKey     string
	BaseUrl    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

type llmRepositoryHandler struct {
	Client     *openai.Client
	model      string
	MaxRetries int
	RetryDelay time.Duration
}

// NewLlmRepository talks to Groq through its OpenAI compatible endpoint.
func NewLlmRepository(cfg LlmConfig) LlmRepository {
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = GroqBaseUrl
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGroqModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultLlmTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = defaultLlmMaxRetries
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultLlmRetryDelay
	}

	clientConfig := openai.DefaultConfig(cfg.ApiKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.BaseUrl, "/")
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return llmRepositoryHandler{
		Client:     openai.NewClientWithConfig(clientConfig),
		model:      cfg.Model,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	}
}

func (h llmRepositoryHandler) Model() string {
	return h.model
}

func (h llmRepositoryHandler) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrLlmInvalidPrompt
	}

	log := logger.FromContext(ctx)
	log.Infow("sending request to groq", "model", h.model, "promptLength", len(prompt))

	response, err := h.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: h.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   2048,
		TopP:        1,
	})
	if err != nil {
		return "", classifyLlmError(err)
	}

	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return "", ErrLlmEmptyResponse
	}

	log.Infow("groq response received", "responseLength", len(response.Choices[0].Message.Content), "totalTokens", response.Usage.TotalTokens)

	return response.Choices[0].Message.Content, nil
}

// CompleteWithRetry retries with a linearly growing delay. Authentication
// failures and invalid prompts are returned immediately.
func (h llmRepositoryHandler) CompleteWithRetry(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= h.MaxRetries; attempt++ {
		out, err := h.Complete(ctx, prompt)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if errors.Is(err, ErrLlmAuth) || errors.Is(err, ErrLlmInvalidPrompt) {
			return "", err
		}

		if attempt < h.MaxRetries {
			log.Warnw("groq request failed, retrying", "attempt", attempt+1, "maxRetries", h.MaxRetries, "error", err.Error())
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(h.RetryDelay * time.Duration(attempt+1)):
			}
		}
	}

	log.Errorw("all groq retry attempts failed", "maxRetries", h.MaxRetries, "error", lastErr.Error())
	return "", lastErr
}

func classifyLlmError(err error) error {
	statusCode := 0

	apiErr := &openai.APIError{}
	reqErr := &openai.RequestError{}
	if errors.As(err, &apiErr) {
		statusCode = apiErr.HTTPStatusCode
	} else if errors.As(err, &reqErr) {
		statusCode = reqErr.HTTPStatusCode
	}

	switch {
	case statusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrLlmAuth, err.Error())
	case statusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrLlmRateLimited, err.Error())
	case statusCode >= 500:
		return fmt.Errorf("%w: %s", ErrLlmServer, err.Error())
	case statusCode > 0:
		return fmt.Errorf("API request failed with status %d: %w", statusCode, err)
	default:
		return fmt.Errorf("request failed: %w", err)
	}
}
