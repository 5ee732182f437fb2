package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/holistiq/internal/assistant"
	"github.com/tbourn/holistiq/internal/calc"
	"github.com/tbourn/holistiq/internal/domain"
	"github.com/tbourn/holistiq/internal/export"
	"github.com/tbourn/holistiq/internal/services"
)

// ---------- service fakes ----------

type fakeTracking struct {
	bmi        func(services.BMIInput) (calc.BMIResult, error)
	workouts   []string
	meditation []string
	saveErr    error
	limit      int
	reports    *services.ReportsData
	reportsErr error
	health     func(services.HealthDataInput) (*domain.HealthSnapshot, error)
	latest     *domain.HealthSnapshot
	latestErr  error
}

func (f *fakeTracking) CalculateBMI(_ context.Context, in services.BMIInput) (calc.BMIResult, error) {
	return f.bmi(in)
}

func (f *fakeTracking) SaveWorkout(_ context.Context, kind string, d int) (domain.ID, error) {
	f.workouts = append(f.workouts, kind)
	return "w1", f.saveErr
}

func (f *fakeTracking) SaveMeditation(_ context.Context, kind string, d int) (domain.ID, error) {
	f.meditation = append(f.meditation, kind)
	return "m1", f.saveErr
}

func (f *fakeTracking) ReportsData(_ context.Context, limit int) (*services.ReportsData, error) {
	f.limit = limit
	return f.reports, f.reportsErr
}

func (f *fakeTracking) SaveHealthData(_ context.Context, in services.HealthDataInput) (*domain.HealthSnapshot, error) {
	return f.health(in)
}

func (f *fakeTracking) LatestHealthData(context.Context) (*domain.HealthSnapshot, error) {
	return f.latest, f.latestErr
}

type fakeChat struct {
	got assistant.Request
	res *services.ChatResult
	err error
}

func (f *fakeChat) Ask(_ context.Context, req assistant.Request) (*services.ChatResult, error) {
	f.got = req
	return f.res, f.err
}

type fakeAssess struct {
	submitter string
	responses []int
	res       *domain.AssessmentResult
	err       error
}

func (f *fakeAssess) Definition(kind string) (domain.Assessment, error) {
	a, ok := domain.LookupAssessment(kind)
	if !ok {
		return domain.Assessment{}, services.ErrUnknownAssessment
	}
	return a, nil
}

func (f *fakeAssess) Submit(_ context.Context, kind string, responses []int, submitter string) (*domain.AssessmentResult, error) {
	f.submitter, f.responses = submitter, responses
	if _, err := f.Definition(kind); err != nil {
		return nil, err
	}
	return f.res, f.err
}

type fakeReports struct {
	in     services.HealthReportInput
	rep    *domain.HealthReport
	err    error
	gotID  domain.ID
	getErr error
}

func (f *fakeReports) Generate(_ context.Context, in services.HealthReportInput) (*domain.HealthReport, error) {
	f.in = in
	return f.rep, f.err
}

func (f *fakeReports) Get(_ context.Context, id domain.ID) (*domain.HealthReport, error) {
	f.gotID = id
	return f.rep, f.getErr
}

type fakeExporter struct {
	format string
	doc    *export.Document
	err    error
}

func (f *fakeExporter) Render(_ context.Context, format string) (*export.Document, error) {
	f.format = format
	return f.doc, f.err
}

// ---------- harness ----------

type deps struct {
	tracking *fakeTracking
	chat     *fakeChat
	assess   *fakeAssess
	reports  *fakeReports
	exporter *fakeExporter
}

func newDeps() *deps {
	return &deps{
		tracking: &fakeTracking{},
		chat:     &fakeChat{},
		assess:   &fakeAssess{},
		reports:  &fakeReports{},
		exporter: &fakeExporter{},
	}
}

func (d *deps) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(d.tracking, d.chat, d.assess, d.reports, d.exporter)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-test")
		c.Next()
	})
	api := r.Group("/api")
	api.POST("/chatbot", h.Chatbot)
	api.POST("/calculate-bmi", h.CalculateBMI)
	api.POST("/save-workout", h.SaveWorkout)
	api.POST("/save-meditation", h.SaveMeditation)
	api.GET("/reports-data", h.ReportsData)
	api.POST("/health-data", h.SaveHealthData)
	api.GET("/health-data", h.LatestHealthData)
	api.GET("/assessments/:type", h.GetAssessment)
	api.POST("/assessments/:type/submit", h.SubmitAssessment)
	api.POST("/health-report", h.CreateHealthReport)
	api.GET("/health-report/:id", h.GetHealthReport)
	api.GET("/export-json", h.ExportJSON)
	api.GET("/export-yaml", h.ExportYAML)
	api.GET("/export-pdf", h.ExportPDF)
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string, hdr ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("json: %v (%s)", err, w.Body.String())
	}
	return v
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) ErrorResponse {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d; want %d (%s)", w.Code, status, w.Body.String())
	}
	er := decode[ErrorResponse](t, w)
	if er.Success || er.Code != code || er.RequestID != "rid-test" {
		t.Fatalf("unexpected error body: %+v", er)
	}
	return er
}
