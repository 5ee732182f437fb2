// Assessment and health report HTTP handlers.
//
//   - GET  /api/assessments/{type}
//   - POST /api/assessments/{type}/submit
//   - POST /api/health-report
//   - GET  /api/health-report/{id}
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/holistiq/internal/domain"
	"github.com/tbourn/holistiq/internal/services"
)

// AssessmentResponse wraps a questionnaire definition.
type AssessmentResponse struct {
	Success    bool              `json:"success" example:"true"`
	Assessment domain.Assessment `json:"assessment"`
}

// SubmitAssessmentRequest holds one answer value per item, in item order.
type SubmitAssessmentRequest struct {
	Responses []int `json:"responses" binding:"required" example:"0,1,2,1,0,0,1,2,0"`
}

// SubmitAssessmentResponse is the scored result.
type SubmitAssessmentResponse struct {
	Success  bool      `json:"success" example:"true"`
	ResultID domain.ID `json:"result_id" swaggertype:"string" example:"665f1b2c9d3e4a0012345678"`
	Score    int       `json:"score" example:"7"`
	MaxScore int       `json:"max_score" example:"27"`
	Severity string    `json:"severity" example:"Mild"`
	Advice   string    `json:"advice,omitempty"`
}

// HealthReportRequest holds the inputs of a personal health report.
// BirthDate is YYYY-MM-DD; a malformed value yields age 0.
type HealthReportRequest struct {
	Height        *float64 `json:"height" binding:"required" example:"175"`
	Weight        *float64 `json:"weight" binding:"required" example:"70"`
	BirthDate     string   `json:"birthdate" example:"1994-01-10"`
	Gender        string   `json:"gender" example:"male"`
	ActivityLevel string   `json:"activity_level" example:"moderate" enums:"sedentary,light,moderate,active,extra"`
	Unit          string   `json:"unit,omitempty" example:"metric" enums:"metric,imperial"`
}

// HealthReportResponse wraps a stored report.
type HealthReportResponse struct {
	Success bool                 `json:"success" example:"true"`
	Report  *domain.HealthReport `json:"report"`
}

// GetAssessment godoc
// @ID          getAssessment
// @Summary     Questionnaire definition
// @Tags        Assessments
// @Produce     json
// @Param       type  path      string  true  "Assessment type"  Enums(phq9, gad7, wellness)
// @Success     200   {object}  handlers.AssessmentResponse
// @Failure     404   {object}  handlers.ErrorResponse  "Unknown assessment"
// @Router      /api/assessments/{type} [get]
func (h *Handlers) GetAssessment(c *gin.Context) {
	a, err := h.assess.Definition(c.Param("type"))
	if err != nil {
		mapError(c, err, ErrCodeInternal)
		return
	}
	ok(c, http.StatusOK, AssessmentResponse{Success: true, Assessment: a})
}

// SubmitAssessment godoc
// @ID          submitAssessment
// @Summary     Score a questionnaire
// @Description Sums the responses, assigns a severity band and records the result.
// @Tags        Assessments
// @Accept      json
// @Produce     json
// @Param       X-User-ID  header    string                            false  "Optional submitter id"
// @Param       type       path      string                            true   "Assessment type"  Enums(phq9, gad7, wellness)
// @Param       body       body      handlers.SubmitAssessmentRequest  true   "Responses"
// @Success     200        {object}  handlers.SubmitAssessmentResponse
// @Failure     400        {object}  handlers.ErrorResponse  "Wrong number of responses or invalid value"
// @Failure     404        {object}  handlers.ErrorResponse  "Unknown assessment"
// @Router      /api/assessments/{type}/submit [post]
func (h *Handlers) SubmitAssessment(c *gin.Context) {
	kind := c.Param("type")
	var req SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "responses must be a list of integers")
		return
	}
	res, err := h.assess.Submit(c.Request.Context(), kind, req.Responses, userID(c))
	if err != nil {
		mapError(c, err, ErrCodeSaveFailed)
		return
	}

	out := SubmitAssessmentResponse{
		Success:  true,
		ResultID: res.ID,
		Score:    res.Score,
		MaxScore: res.MaxScore,
		Severity: res.Severity,
	}
	if a, err := h.assess.Definition(kind); err == nil {
		out.Advice = a.Band(res.Score).Advice
	}
	ok(c, http.StatusOK, out)
}

// CreateHealthReport godoc
// @ID          createHealthReport
// @Summary     Generate a health report
// @Description Computes BMI, BMR (Mifflin-St Jeor) and daily calorie need, and stores the report.
// @Tags        Reports
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.HealthReportRequest  true  "Measurements"
// @Success     200   {object}  handlers.HealthReportResponse
// @Failure     400   {object}  handlers.ErrorResponse
// @Router      /api/health-report [post]
func (h *Handlers) CreateHealthReport(c *gin.Context) {
	var req HealthReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "height and weight are required numbers")
		return
	}
	rep, err := h.reports.Generate(c.Request.Context(), services.HealthReportInput{
		Height:        *req.Height,
		Weight:        *req.Weight,
		BirthDate:     req.BirthDate,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Unit:          req.Unit,
	})
	if err != nil {
		mapError(c, err, ErrCodeSaveFailed)
		return
	}
	ok(c, http.StatusOK, HealthReportResponse{Success: true, Report: rep})
}

// GetHealthReport godoc
// @ID          getHealthReport
// @Summary     Load a stored health report
// @Tags        Reports
// @Produce     json
// @Param       id   path      string  true  "Report id"
// @Success     200  {object}  handlers.HealthReportResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Report not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Database not available"
// @Router      /api/health-report/{id} [get]
func (h *Handlers) GetHealthReport(c *gin.Context) {
	id := domain.ID(strings.TrimSpace(c.Param("id")))
	rep, err := h.reports.Get(c.Request.Context(), id)
	if err != nil {
		mapError(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, HealthReportResponse{Success: true, Report: rep})
}
