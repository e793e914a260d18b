package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chatdto "portfolio-backend/internal/chat/dto"
	"portfolio-backend/internal/chat/usecase"
)

type ChatHandler struct {
	chatUsecase usecase.ChatUsecase // nil when no API key is configured
}

func NewChatHandler(chatUsecase usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
	}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, chatdto.ErrorResponse{Error: "Message is required"})
		return
	}

	if h.chatUsecase == nil {
		c.JSON(http.StatusInternalServerError, chatdto.ErrorResponse{Error: "OpenAI API key is not configured"})
		return
	}

	reply, history, err := h.chatUsecase.Chat(c.Request.Context(), req.Message, req.ConversationHistory)
	if err != nil {
		c.JSON(http.StatusInternalServerError, chatdto.ErrorResponse{Error: "Failed to process chat message"})
		return
	}

	c.JSON(http.StatusOK, chatdto.ChatResponse{
		Message:             reply,
		ConversationHistory: history,
	})
}
