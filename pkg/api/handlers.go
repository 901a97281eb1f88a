package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"media-buyer-intake/pkg/middleware"
	"media-buyer-intake/pkg/models"
	"media-buyer-intake/pkg/services"
)

const submitSuccessMessage = "Form submitted successfully"

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.FormSubmissionService
	logger            *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.FormSubmissionService, logger *zap.Logger) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes attaches the API routes to the router
func (h *Handlers) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.HealthCheck)
	router.POST("/api/submit-form", h.HandleSubmitForm)
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// HandleSubmitForm appends one application to the intake sheet.
// Every failure, including an unreadable body, is answered with 500.
func (h *Handlers) HandleSubmitForm(c *gin.Context) {
	logger := h.logger.With(zap.String("request_id", middleware.GetRequestID(c)))

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Error("Error reading request body", zap.Error(err))
		h.fail(c, "Error reading request")
		return
	}

	logger.Debug("Received submission body", zap.ByteString("body", body))

	var formData models.FormData
	if err := json.Unmarshal(body, &formData); err != nil {
		logger.Error("Error parsing JSON", zap.Error(err))
		h.fail(c, "Invalid JSON format")
		return
	}

	if err := h.submissionService.ProcessFormSubmission(c.Request.Context(), formData); err != nil {
		logger.Error("Form submission error", zap.Error(err))
		h.fail(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, models.SubmitResponse{
		Success: true,
		Message: submitSuccessMessage,
	})
}

func (h *Handlers) fail(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, models.SubmitResponse{
		Success: false,
		Message: message,
	})
}
