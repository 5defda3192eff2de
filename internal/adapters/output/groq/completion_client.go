package groq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"mindspace-api/configs"
	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/output"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure CompletionClientAdapter implements CompletionClient interface
var _ output.CompletionClient = (*CompletionClientAdapter)(nil)

// DefaultBaseURL is Groq's OpenAI-compatible endpoint
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Retry configuration constants
const (
	defaultMaxAttempts = 3
	initialDelay       = 500 * time.Millisecond
	maxDelay           = 4 * time.Second
	backoffMultiplier  = 2
)

// CompletionClientAdapter struct - Output adapter for an OpenAI-compatible chat completion API
type CompletionClientAdapter struct {
	client      *openai.Client
	baseURL     string
	configModel string
	timeout     time.Duration
	maxAttempts int
	retryDelay  time.Duration

	// Model caching
	cachedModel string
	modelMu     sync.RWMutex
}

// NewCompletionClientAdapter func - Creates new completion client adapter
func NewCompletionClientAdapter(config configs.Groq) (*CompletionClientAdapter, error) {
	if config.APIKey == "" {
		return nil, errors.New("groq api key is required")
	}

	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 60 * time.Second
	}

	maxAttempts := config.MaxRetries
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = baseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &CompletionClientAdapter{
		client:      openai.NewClientWithConfig(clientConfig),
		baseURL:     baseURL,
		configModel: config.Model,
		timeout:     timeout,
		maxAttempts: maxAttempts,
		retryDelay:  initialDelay,
	}

	logrus.Infof("Completion client initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return adapter, nil
}

// retryWithBackoff executes an operation with exponential backoff retry logic
func (a *CompletionClientAdapter) retryWithBackoff(ctx context.Context, operation func() error) error {
	var lastErr error
	delay := a.retryDelay

	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		if status := statusCode(err); status >= 400 && status < 500 && status != http.StatusTooManyRequests {
			return fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
		}
		if !a.isTransientError(err) {
			return err
		}

		lastErr = err
		if attempt < a.maxAttempts {
			logrus.Warnf("Completion request attempt %d/%d failed: %v, retrying in %v", attempt, a.maxAttempts, err, delay)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}

			delay = delay * backoffMultiplier
			if delay > maxDelay {
				delay = maxDelay
			}
		}
	}

	return fmt.Errorf("%w: %v after %d attempts", domain.ErrCompletionUnavailable, lastErr, a.maxAttempts)
}

// statusCode extracts the HTTP status from go-openai errors, 0 if none
func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

// isTransientError determines if an error is transient and should be retried
func (a *CompletionClientAdapter) isTransientError(err error) bool {
	status := statusCode(err)
	if status >= 500 || status == http.StatusTooManyRequests {
		return true
	}
	if status >= 400 {
		return false
	}

	// Check for network-related errors
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	for _, pattern := range []string{"connection refused", "connection reset", "no such host", "i/o timeout"} {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}

// ListModels returns the ids of the models the provider serves
func (a *CompletionClientAdapter) ListModels(ctx context.Context) ([]string, error) {
	var list openai.ModelsList
	err := a.retryWithBackoff(ctx, func() error {
		var err error
		list, err = a.client.ListModels(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	models := make([]string, len(list.Models))
	for i, m := range list.Models {
		models[i] = m.ID
	}

	logrus.Infof("Listed %d models from completion service", len(models))

	return models, nil
}

// getModel returns the model to use for requests, with caching
func (a *CompletionClientAdapter) getModel(ctx context.Context) (string, error) {
	a.modelMu.RLock()
	if a.cachedModel != "" {
		model := a.cachedModel
		a.modelMu.RUnlock()
		return model, nil
	}
	a.modelMu.RUnlock()

	a.modelMu.Lock()
	defer a.modelMu.Unlock()

	// Double-check after acquiring write lock
	if a.cachedModel != "" {
		return a.cachedModel, nil
	}

	if a.configModel != "" {
		a.cachedModel = a.configModel
		logrus.Infof("Using configured model: %s", a.cachedModel)
		return a.cachedModel, nil
	}

	models, err := a.ListModels(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get models for selection: %w", err)
	}
	if len(models) == 0 {
		return "", fmt.Errorf("%w: no models available", domain.ErrCompletionUnavailable)
	}

	a.cachedModel = models[0]
	logrus.Infof("Selected first available model: %s", a.cachedModel)

	return a.cachedModel, nil
}

// ChatCompletion sends a non-streaming chat completion request
func (a *CompletionClientAdapter) ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error) {
	model, err := a.getModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get model: %w", err)
	}

	// Override model if specified in request
	if request.Model != nil && *request.Model != "" {
		model = *request.Model
	}

	reqBody := openai.ChatCompletionRequest{
		Model:    model,
		Messages: make([]openai.ChatCompletionMessage, len(request.Messages)),
	}
	for i, msg := range request.Messages {
		if !msg.Role.Valid() {
			return nil, fmt.Errorf("%w: unsupported role %q", domain.ErrInvalidRequest, msg.Role)
		}
		reqBody.Messages[i] = openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	if request.Temperature != nil {
		reqBody.Temperature = *request.Temperature
	}
	if request.MaxTokens != nil {
		reqBody.MaxTokens = *request.MaxTokens
	}

	var apiResp openai.ChatCompletionResponse
	err = a.retryWithBackoff(ctx, func() error {
		var err error
		apiResp, err = a.client.CreateChatCompletion(ctx, reqBody)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send chat completion request: %w", err)
	}

	if len(apiResp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	response := &domain.ChatCompletionResponse{
		Content:          apiResp.Choices[0].Message.Content,
		Model:            apiResp.Model,
		PromptTokens:     apiResp.Usage.PromptTokens,
		CompletionTokens: apiResp.Usage.CompletionTokens,
		TotalTokens:      apiResp.Usage.TotalTokens,
	}

	logrus.Debugf("Chat completion successful, model: %s, tokens: %d", response.Model, response.TotalTokens)

	return response, nil
}
