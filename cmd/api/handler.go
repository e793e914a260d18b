package api

import (
	"log"

	"github.com/gin-gonic/gin"

	chatDelivery "portfolio-backend/internal/chat/delivery"
	chatUsecasePkg "portfolio-backend/internal/chat/usecase"
	contactDelivery "portfolio-backend/internal/contact/delivery"
	contactRepo "portfolio-backend/internal/contact/repository"
	contactUsecasePkg "portfolio-backend/internal/contact/usecase"
	"portfolio-backend/pkg/config"
	"portfolio-backend/pkg/mailer"
	"portfolio-backend/pkg/openai"
	"portfolio-backend/pkg/recaptcha"
)

type Handler struct {
	contactUsecase contactUsecasePkg.ContactUsecase
	config         *config.Config
	contactHandler *contactDelivery.ContactHandler
	chatHandler    *chatDelivery.ChatHandler
}

func NewHandler(inquiryRepo contactRepo.InquiryRepository, cfg *config.Config) *Handler {
	// Verification client: only when a secret is configured. A nil verifier
	// makes the contact pipeline pass submissions through unverified.
	var verifier contactUsecasePkg.Verifier
	if cfg.RecaptchaSecret != "" {
		verifier = recaptcha.NewClient(cfg.RecaptchaSecret)
		log.Println("reCAPTCHA verification enabled")
	} else {
		log.Println("Warning: RECAPTCHA_SECRET_KEY not set. Submissions will not be verified.")
	}

	// Notification service: best-effort, needs both an API key and a recipient.
	var notifier contactUsecasePkg.Notifier
	if cfg.ResendAPIKey != "" && cfg.ContactRecipient != "" {
		notifier = mailer.NewService(cfg.ResendAPIKey, cfg.ContactFrom, cfg.ContactRecipient)
		log.Println("Contact notifications enabled")
	} else {
		log.Println("Warning: RESEND_API_KEY or CONTACT_RECIPIENT not set. Notifications disabled.")
	}

	contactUsecase := contactUsecasePkg.NewContactUsecase(verifier, inquiryRepo, notifier, cfg.RecaptchaScoreThreshold)
	contactHandler := contactDelivery.NewContactHandler(contactUsecase)

	// Chat assistant: the handler answers with a configuration error when no
	// API key is available.
	var chatUsecase chatUsecasePkg.ChatUsecase
	if cfg.OpenAIAPIKey != "" {
		chatUsecase = chatUsecasePkg.NewChatUsecase(openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel))
		log.Printf("Chat assistant enabled with model: %s", cfg.OpenAIModel)
	} else {
		log.Println("Warning: OPENAI_API_KEY not set. Chat assistant disabled.")
	}
	chatHandler := chatDelivery.NewChatHandler(chatUsecase)

	return &Handler{
		contactUsecase: contactUsecase,
		config:         cfg,
		contactHandler: contactHandler,
		chatHandler:    chatHandler,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.contactHandler, h.chatHandler)

	return r.Run(addr)
}

// WaitForNotifications drains in-flight notification dispatches; called on
// shutdown.
func (h *Handler) WaitForNotifications() {
	h.contactUsecase.WaitForNotifications()
}
