package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chatDelivery "portfolio-backend/internal/chat/delivery"
	contactDelivery "portfolio-backend/internal/contact/delivery"
)

func SetupRoutes(r *gin.Engine, contactHandler *contactDelivery.ContactHandler, chatHandler *chatDelivery.ChatHandler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Contact form submission
		api.POST("/contact", contactHandler.Submit)

		// Portfolio assistant
		api.POST("/chat", chatHandler.Chat)
	}
}
