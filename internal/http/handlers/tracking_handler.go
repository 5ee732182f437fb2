// Tracking HTTP handlers.
//
// This file exposes the activity endpoints used by the dashboard pages:
//   - POST /api/calculate-bmi (alias /api/bmi)
//   - POST /api/save-workout
//   - POST /api/save-meditation
//   - GET  /api/reports-data
//   - POST /api/health-data, GET /api/health-data
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/holistiq/internal/domain"
	"github.com/tbourn/holistiq/internal/services"
	"github.com/tbourn/holistiq/internal/utils"
)

const maxReportLimit = 100

//
// DTOs
//

// BMIRequest is the BMI calculator payload. Unit is "metric" (kg, cm; the
// default) or "imperial" (lb, in).
type BMIRequest struct {
	Weight *float64 `json:"weight" binding:"required" example:"70"`
	Height *float64 `json:"height" binding:"required" example:"175"`
	Unit   string   `json:"unit,omitempty" example:"metric" enums:"metric,imperial"`
}

// BMIResponse is the calculator result. Color is a UI severity tag.
type BMIResponse struct {
	Success  bool    `json:"success" example:"true"`
	BMI      float64 `json:"bmi" example:"22.86"`
	Category string  `json:"category" example:"Normal weight"`
	Color    string  `json:"color" example:"success"`
}

// WorkoutRequest records a finished workout; Duration is minutes.
type WorkoutRequest struct {
	ExerciseType string `json:"exercise_type" example:"Push-ups"`
	Duration     int    `json:"duration" example:"15"`
}

// MeditationRequest records a finished meditation; Duration is minutes.
type MeditationRequest struct {
	MeditationType string `json:"meditation_type" example:"Breathing"`
	Duration       int    `json:"duration" example:"10"`
}

// ReportsResponse lists the newest records of each category.
type ReportsResponse struct {
	Success           bool                     `json:"success" example:"true"`
	BMIRecords        []domain.BMIReading      `json:"bmi_records"`
	WorkoutRecords    []domain.WorkoutEntry    `json:"workout_records"`
	MeditationRecords []domain.MeditationEntry `json:"meditation_records"`
}

// HealthDataRequest is a dashboard check-in. MentalScore is 0..10.
type HealthDataRequest struct {
	Weight      *float64 `json:"weight" binding:"required" example:"70"`
	Height      *float64 `json:"height" binding:"required" example:"175"`
	MentalScore *int     `json:"mental_score" binding:"required" example:"7"`
}

// HealthDataResponse summarizes a check-in.
type HealthDataResponse struct {
	Success         bool     `json:"success" example:"true"`
	BMI             float64  `json:"bmi" example:"22.86"`
	Category        string   `json:"category" example:"Normal weight"`
	MentalStatus    string   `json:"mental_status" example:"Moderate"`
	Recommendations []string `json:"recommendations"`
}

// LatestHealthDataResponse wraps the most recent check-in.
type LatestHealthDataResponse struct {
	Success bool                   `json:"success" example:"true"`
	Data    *domain.HealthSnapshot `json:"data"`
}

//
// Handlers
//

// CalculateBMI godoc
// @ID          calculateBMI
// @Summary     Calculate body mass index
// @Description Computes BMI (rounded to 2 decimals), its category and a color tag, and records the reading.
// @Tags        Tracking
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.BMIRequest  true  "Measurements"
// @Success     200   {object}  handlers.BMIResponse
// @Failure     400   {object}  handlers.ErrorResponse  "Missing or non-positive measurement"
// @Router      /api/calculate-bmi [post]
func (h *Handlers) CalculateBMI(c *gin.Context) {
	var req BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "weight and height are required numbers")
		return
	}
	res, err := h.tracking.CalculateBMI(c.Request.Context(), services.BMIInput{
		Weight: *req.Weight,
		Height: *req.Height,
		Unit:   req.Unit,
	})
	if err != nil {
		mapError(c, err, ErrCodeInternal)
		return
	}
	ok(c, http.StatusOK, BMIResponse{Success: true, BMI: res.BMI, Category: res.Category, Color: res.Color})
}

// SaveWorkout godoc
// @ID          saveWorkout
// @Summary     Record a workout
// @Description Persistence is best effort: the call succeeds even when no database is attached.
// @Tags        Tracking
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.WorkoutRequest  true  "Workout"
// @Success     200   {object}  handlers.MessageResponse
// @Failure     400   {object}  handlers.ErrorResponse
// @Router      /api/save-workout [post]
func (h *Handlers) SaveWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if _, err := h.tracking.SaveWorkout(c.Request.Context(), req.ExerciseType, req.Duration); err != nil {
		mapError(c, err, ErrCodeSaveFailed)
		return
	}
	ok(c, http.StatusOK, MessageResponse{Success: true, Message: "Workout saved successfully"})
}

// SaveMeditation godoc
// @ID          saveMeditation
// @Summary     Record a meditation session
// @Description Persistence is best effort: the call succeeds even when no database is attached.
// @Tags        Tracking
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.MeditationRequest  true  "Meditation session"
// @Success     200   {object}  handlers.MessageResponse
// @Failure     400   {object}  handlers.ErrorResponse
// @Router      /api/save-meditation [post]
func (h *Handlers) SaveMeditation(c *gin.Context) {
	var req MeditationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if _, err := h.tracking.SaveMeditation(c.Request.Context(), req.MeditationType, req.Duration); err != nil {
		mapError(c, err, ErrCodeSaveFailed)
		return
	}
	ok(c, http.StatusOK, MessageResponse{Success: true, Message: "Meditation saved successfully"})
}

// ReportsData godoc
// @ID          reportsData
// @Summary     Recent records
// @Description Newest records per category (default 10, max 100).
// @Tags        Tracking
// @Produce     json
// @Param       limit  query     int  false  "Records per category"  minimum(1) maximum(100) default(10)
// @Success     200    {object}  handlers.ReportsResponse
// @Failure     500    {object}  handlers.ErrorResponse  "Database not available"
// @Router      /api/reports-data [get]
func (h *Handlers) ReportsData(c *gin.Context) {
	limit := utils.ClampLimit(c.Query("limit"), services.DefaultReportLimit, maxReportLimit)
	data, err := h.tracking.ReportsData(c.Request.Context(), limit)
	if err != nil {
		mapError(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, ReportsResponse{
		Success:           true,
		BMIRecords:        data.BMI,
		WorkoutRecords:    data.Workouts,
		MeditationRecords: data.Meditations,
	})
}

// SaveHealthData godoc
// @ID          saveHealthData
// @Summary     Record a health check-in
// @Description Computes BMI, a mental wellness status and two suggestions, and records the check-in.
// @Tags        Tracking
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.HealthDataRequest  true  "Check-in"
// @Success     200   {object}  handlers.HealthDataResponse
// @Failure     400   {object}  handlers.ErrorResponse
// @Router      /api/health-data [post]
func (h *Handlers) SaveHealthData(c *gin.Context) {
	var req HealthDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "weight, height and mental_score are required")
		return
	}
	snap, err := h.tracking.SaveHealthData(c.Request.Context(), services.HealthDataInput{
		Weight:      *req.Weight,
		Height:      *req.Height,
		MentalScore: *req.MentalScore,
	})
	if err != nil {
		mapError(c, err, ErrCodeSaveFailed)
		return
	}
	ok(c, http.StatusOK, HealthDataResponse{
		Success:         true,
		BMI:             snap.BMI,
		Category:        snap.Category,
		MentalStatus:    snap.MentalStatus,
		Recommendations: snap.Recommendations,
	})
}

// LatestHealthData godoc
// @ID          latestHealthData
// @Summary     Latest health check-in
// @Tags        Tracking
// @Produce     json
// @Success     200  {object}  handlers.LatestHealthDataResponse
// @Failure     404  {object}  handlers.ErrorResponse  "No check-in yet"
// @Failure     500  {object}  handlers.ErrorResponse  "Database not available"
// @Router      /api/health-data [get]
func (h *Handlers) LatestHealthData(c *gin.Context) {
	snap, err := h.tracking.LatestHealthData(c.Request.Context())
	if err != nil {
		mapError(c, err, ErrCodeListFailed)
		return
	}
	ok(c, http.StatusOK, LatestHealthDataResponse{Success: true, Data: snap})
}
