package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mindspace-api/internal/domain"
	"mindspace-api/internal/ports/input"
	"mindspace-api/internal/ports/output"
	"mindspace-api/pkg/metrics"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure ChatService implements ChatService interface
var _ input.ChatService = (*ChatService)(nil)

// ChatService struct - Application service relaying chat turns to the completion service
type ChatService struct {
	store      output.ConversationStore
	completion output.CompletionClient
	model      string
}

// NewChatService func - an empty model lets the completion client pick its configured one
func NewChatService(store output.ConversationStore, completion output.CompletionClient, model string) *ChatService {
	return &ChatService{
		store:      store,
		completion: completion,
		model:      model,
	}
}

// HandleChatTurn func - Use case: one user message in, one assistant reply out
func (s *ChatService) HandleChatTurn(ctx context.Context, userID, userInput string) (string, error) {
	if strings.TrimSpace(userInput) == "" {
		return "", domain.ErrEmptyChatInput
	}

	var reply string
	err := s.store.WithEntry(userID, func(entry *domain.ConversationEntry) error {
		// the user message stays recorded even if the completion fails
		entry.Append(domain.ChatMessage{Role: domain.ChatMessageRoleUser, Content: userInput})

		request := domain.ChatCompletionRequest{
			Messages:    entry.GetHistory(),
			Temperature: floatPtr(domain.DefaultTemperature),
			MaxTokens:   intPtr(domain.DefaultMaxTokens),
		}
		if s.model != "" {
			request.Model = &s.model
		}

		start := time.Now()
		resp, err := s.completion.ChatCompletion(ctx, request)
		metrics.CompletionLatency.Observe(time.Since(start).Seconds())
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrCompletionFailure, err)
		}
		if resp == nil || strings.TrimSpace(resp.Content) == "" {
			return fmt.Errorf("%w: empty response", domain.ErrCompletionFailure)
		}

		entry.Append(domain.ChatMessage{Role: domain.ChatMessageRoleAssistant, Content: resp.Content})
		reply = resp.Content
		return nil
	})
	if err != nil {
		metrics.ChatTurns.WithLabelValues(metrics.OutcomeFailure).Inc()
		logrus.WithField("userId", userID).Errorf("Chat turn failed: %v", err)
		return "", err
	}

	metrics.ChatTurns.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return reply, nil
}

func floatPtr(f float32) *float32 { return &f }
func intPtr(i int) *int           { return &i }
