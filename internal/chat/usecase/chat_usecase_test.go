package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/pkg/openai"
)

type fakeCompletions struct {
	reply string
	err   error
	got   []openai.Message
}

func (f *fakeCompletions) CreateChatCompletion(ctx context.Context, messages []openai.Message) (string, error) {
	f.got = messages
	return f.reply, f.err
}

func TestChatBuildsConversation(t *testing.T) {
	completions := &fakeCompletions{reply: "He works at Sandlot PH."}
	uc := NewChatUsecase(completions)

	history := []openai.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello!"},
	}
	reply, newHistory, err := uc.Chat(context.Background(), "where does he work?", history)
	require.NoError(t, err)

	require.Len(t, completions.got, 4)
	assert.Equal(t, "system", completions.got[0].Role)
	assert.NotEmpty(t, completions.got[0].Content)
	assert.Equal(t, history[0], completions.got[1])
	assert.Equal(t, history[1], completions.got[2])
	assert.Equal(t, openai.Message{Role: "user", Content: "where does he work?"}, completions.got[3])

	assert.Equal(t, "He works at Sandlot PH.", reply)
	require.Len(t, newHistory, 4)
	assert.Equal(t, "assistant", newHistory[3].Role)
	assert.Equal(t, reply, newHistory[3].Content)
}

func TestChatEmptyReplyFallsBack(t *testing.T) {
	uc := NewChatUsecase(&fakeCompletions{reply: ""})

	reply, _, err := uc.Chat(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I could not generate a response.", reply)
}

func TestChatProviderError(t *testing.T) {
	uc := NewChatUsecase(&fakeCompletions{err: errors.New("rate limited")})

	_, _, err := uc.Chat(context.Background(), "hello", nil)
	assert.Error(t, err)
}
