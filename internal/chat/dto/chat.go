package dto

import "portfolio-backend/pkg/openai"

type ChatRequest struct {
	Message             string           `json:"message"`
	ConversationHistory []openai.Message `json:"conversationHistory"`
}

type ChatResponse struct {
	Message             string           `json:"message"`
	ConversationHistory []openai.Message `json:"conversationHistory"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
