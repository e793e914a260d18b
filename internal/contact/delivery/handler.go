package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	contactdto "portfolio-backend/internal/contact/dto"
	"portfolio-backend/internal/contact/usecase"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
}

func NewContactHandler(contactUsecase usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactdto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, contactdto.ErrorResponse{Error: "Missing required fields"})
		return
	}

	_, err := h.contactUsecase.Submit(c.Request.Context(), req.Email, req.Description, req.RecaptchaToken)
	if err == nil {
		c.JSON(http.StatusOK, contactdto.SubmitResponse{Message: "Message sent successfully"})
		return
	}

	var verErr *usecase.VerificationError
	switch {
	case errors.Is(err, usecase.ErrMissingFields):
		c.JSON(http.StatusBadRequest, contactdto.ErrorResponse{Error: "Missing required fields"})
	case errors.As(err, &verErr):
		if verErr.Suspicious {
			c.JSON(http.StatusBadRequest, contactdto.ErrorResponse{
				Error: "reCAPTCHA verification failed - suspicious activity detected",
			})
			return
		}
		c.JSON(http.StatusBadRequest, contactdto.ErrorResponse{
			Error:   "reCAPTCHA verification failed",
			Details: verErr.ErrorCodes,
		})
	case errors.Is(err, usecase.ErrStorageUnavailable), errors.Is(err, usecase.ErrStorageWriteFailed):
		c.JSON(http.StatusInternalServerError, contactdto.ErrorResponse{
			Error: "Failed to save your message. Please try again later.",
		})
	default:
		c.JSON(http.StatusInternalServerError, contactdto.ErrorResponse{Error: "Internal server error"})
	}
}
