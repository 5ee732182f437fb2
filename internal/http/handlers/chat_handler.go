// Chatbot HTTP handler and handler wiring.
//
// This file declares the service contracts the handlers depend on, the
// Handlers aggregate, and the chatbot endpoint:
//   - POST /api/chatbot   (answer a message, optionally with health context)
//
// Handlers are transport-thin: they bind and validate input, call application
// services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/holistiq/internal/assistant"
	"github.com/tbourn/holistiq/internal/calc"
	"github.com/tbourn/holistiq/internal/domain"
	"github.com/tbourn/holistiq/internal/export"
	"github.com/tbourn/holistiq/internal/services"
)

//
// Service contracts (context-aware)
//

// TrackingService records activity and serves the reports view.
type TrackingService interface {
	CalculateBMI(ctx context.Context, in services.BMIInput) (calc.BMIResult, error)
	SaveWorkout(ctx context.Context, exerciseType string, duration int) (domain.ID, error)
	SaveMeditation(ctx context.Context, meditationType string, duration int) (domain.ID, error)
	ReportsData(ctx context.Context, limit int) (*services.ReportsData, error)
	SaveHealthData(ctx context.Context, in services.HealthDataInput) (*domain.HealthSnapshot, error)
	LatestHealthData(ctx context.Context) (*domain.HealthSnapshot, error)
}

// ChatService answers chatbot messages.
type ChatService interface {
	Ask(ctx context.Context, req assistant.Request) (*services.ChatResult, error)
}

// AssessmentService serves and scores questionnaires.
type AssessmentService interface {
	Definition(kind string) (domain.Assessment, error)
	Submit(ctx context.Context, kind string, responses []int, submitter string) (*domain.AssessmentResult, error)
}

// HealthReportService builds and loads personal health reports.
type HealthReportService interface {
	Generate(ctx context.Context, in services.HealthReportInput) (*domain.HealthReport, error)
	Get(ctx context.Context, id domain.ID) (*domain.HealthReport, error)
}

// Exporter renders downloadable reports.
type Exporter interface {
	Render(ctx context.Context, format string) (*export.Document, error)
}

//
// Handler wiring
//

// Handlers groups the JSON API endpoints. It depends on abstract service
// interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	tracking TrackingService
	chat     ChatService
	assess   AssessmentService
	reports  HealthReportService
	exporter Exporter
}

// New constructs a Handlers instance bound to the given services.
func New(tracking TrackingService, chat ChatService, assess AssessmentService, reports HealthReportService, exp Exporter) *Handlers {
	return &Handlers{
		tracking: tracking,
		chat:     chat,
		assess:   assess,
		reports:  reports,
		exporter: exp,
	}
}

// userID returns the optional caller id from the X-User-ID header (or a
// value set upstream in the Gin context).
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return strings.TrimSpace(c.GetHeader("X-User-ID"))
}

//
// DTOs
//

// ChatbotRequest is the chatbot payload. The health fields are optional and
// only used by remote assistant backends.
type ChatbotRequest struct {
	Message   string `json:"message" example:"How often should I exercise?"`
	SessionID string `json:"session_id,omitempty" example:"b7c1e0c2"`
	assistant.HealthContext
}

// ChatbotResponse carries the assistant reply.
type ChatbotResponse struct {
	Success   bool             `json:"success" example:"true"`
	Response  string           `json:"response"`
	Timestamp domain.Timestamp `json:"timestamp" swaggertype:"string" example:"2024-05-01 09:00:00"`
	SessionID string           `json:"session_id" example:"default"`
	Provider  string           `json:"provider" example:"rules"`
	Fallback  bool             `json:"fallback,omitempty"`
}

// Chatbot godoc
// @ID          chatbot
// @Summary     Ask the wellness assistant
// @Description Returns a reply from the configured assistant backend. Remote backends
// @Description receive the optional health context; provider failures yield a fixed apology.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.ChatbotRequest   true  "Message and optional health context"
// @Success     200   {object}  handlers.ChatbotResponse
// @Failure     400   {object}  handlers.ErrorResponse  "Empty or oversized message"
// @Failure     503   {object}  handlers.ErrorResponse  "Assistant not configured"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /api/chatbot [post]
func (h *Handlers) Chatbot(c *gin.Context) {
	var req ChatbotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	res, err := h.chat.Ask(c.Request.Context(), assistant.Request{
		Message:   req.Message,
		SessionID: req.SessionID,
		Health:    req.HealthContext,
	})
	if err != nil {
		mapError(c, err, ErrCodeChatFailed)
		return
	}

	ok(c, http.StatusOK, ChatbotResponse{
		Success:   true,
		Response:  res.Reply.Text,
		Timestamp: res.Timestamp,
		SessionID: res.SessionID,
		Provider:  res.Reply.Provider,
		Fallback:  res.Reply.Fallback,
	})
}
