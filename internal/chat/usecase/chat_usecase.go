package usecase

import (
	"context"
	"fmt"
	"log"

	"portfolio-backend/pkg/openai"
)

// CompletionService is the interface to the chat completion provider.
type CompletionService interface {
	CreateChatCompletion(ctx context.Context, messages []openai.Message) (string, error)
}

// ChatUsecase forwards one visitor message, plus the conversation so far, to
// the completion provider under a fixed persona prompt. Stateless: the client
// carries the history.
type ChatUsecase interface {
	Chat(ctx context.Context, message string, history []openai.Message) (string, []openai.Message, error)
}

type chatUsecase struct {
	completions CompletionService
}

func NewChatUsecase(completions CompletionService) ChatUsecase {
	return &chatUsecase{completions: completions}
}

func (u *chatUsecase) Chat(ctx context.Context, message string, history []openai.Message) (string, []openai.Message, error) {
	messages := make([]openai.Message, 0, len(history)+2)
	messages = append(messages, openai.Message{Role: "system", Content: personaContext})
	messages = append(messages, history...)
	messages = append(messages, openai.Message{Role: "user", Content: message})

	reply, err := u.completions.CreateChatCompletion(ctx, messages)
	if err != nil {
		log.Printf("[Chat] completion request failed: %v", err)
		return "", nil, fmt.Errorf("failed to process chat message: %w", err)
	}
	if reply == "" {
		reply = "Sorry, I could not generate a response."
	}

	newHistory := append(history,
		openai.Message{Role: "user", Content: message},
		openai.Message{Role: "assistant", Content: reply},
	)
	return reply, newHistory, nil
}
