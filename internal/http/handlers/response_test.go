package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tbourn/holistiq/internal/assistant"
	"github.com/tbourn/holistiq/internal/repo"
	"github.com/tbourn/holistiq/internal/services"
)

func Test_fail_500_LogsAndBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("X-Request-ID", "rid-500")
		c.Set("logger", &logger)
		c.Next()
	})
	r.GET("/boom", func(c *gin.Context) {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d", w.Code)
	}
	resp := decode[ErrorResponse](t, w)
	if resp.Success || resp.RequestID != "rid-500" || resp.Code != ErrCodeInternal || resp.Error != "kaboom" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if !strings.Contains(buf.String(), `"level":"error"`) {
		t.Fatalf("expected error log, got: %s", buf.String())
	}
}

func Test_Fail_4xx_NotLogged(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r.Use(func(c *gin.Context) {
		c.Set("logger", &logger)
		c.Next()
	})
	r.GET("/missing", func(c *gin.Context) {
		Fail(c, http.StatusNotFound, ErrCodeNotFound, "nope")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d", w.Code)
	}
	if buf.Len() != 0 {
		t.Fatalf("4xx should not be logged: %s", buf.String())
	}
	if strings.Contains(w.Body.String(), "request_id") {
		t.Fatalf("empty request id should be omitted: %s", w.Body.String())
	}
}

func Test_mapError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{services.ErrEmptyMessage, http.StatusBadRequest, ErrCodeBadRequest},
		{fmt.Errorf("wrap: %w", services.ErrValidation), http.StatusBadRequest, ErrCodeBadRequest},
		{services.ErrUnknownAssessment, http.StatusNotFound, ErrCodeNotFound},
		{services.ErrReportNotFound, http.StatusNotFound, ErrCodeNotFound},
		{services.ErrNoHealthData, http.StatusNotFound, ErrCodeNotFound},
		{assistant.ErrNotConfigured, http.StatusServiceUnavailable, ErrCodeAssistantUnavailable},
		{repo.ErrStoreUnavailable, http.StatusInternalServerError, ErrCodeStoreUnavailable},
		{errors.New("disk on fire"), http.StatusInternalServerError, ErrCodeSaveFailed},
	}
	gin.SetMode(gin.TestMode)
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			r := gin.New()
			r.Use(func(c *gin.Context) {
				c.Writer.Header().Set("X-Request-ID", "rid-test")
				c.Next()
			})
			r.GET("/x", func(c *gin.Context) { mapError(c, tt.err, ErrCodeSaveFailed) })
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			er := expectError(t, w, tt.status, tt.code)
			if er.Error != tt.err.Error() {
				t.Fatalf("error text = %q", er.Error)
			}
		})
	}
}
