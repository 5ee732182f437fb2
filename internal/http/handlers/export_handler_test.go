package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/tbourn/holistiq/internal/export"
	"github.com/tbourn/holistiq/internal/repo"
)

func TestExport_Downloads(t *testing.T) {
	tests := []struct {
		path, format, ctype string
	}{
		{"/api/export-json", "json", export.ContentTypeJSON},
		{"/api/export-yaml", "yaml", export.ContentTypeYAML},
		{"/api/export-pdf", "pdf", export.ContentTypePDF},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			d := newDeps()
			name := "health_report_20240309_140507." + tt.format
			d.exporter.doc = &export.Document{Name: name, ContentType: tt.ctype, Body: []byte("payload")}

			w := do(t, d.router(), http.MethodGet, tt.path, "")
			if w.Code != http.StatusOK {
				t.Fatalf("status=%d", w.Code)
			}
			if d.exporter.format != tt.format {
				t.Fatalf("format = %q", d.exporter.format)
			}
			if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="`+name+`"` {
				t.Fatalf("Content-Disposition = %q", got)
			}
			if w.Header().Get("Content-Type") != tt.ctype || w.Body.String() != "payload" {
				t.Fatalf("unexpected response: %q %q", w.Header().Get("Content-Type"), w.Body.String())
			}
		})
	}
}

func TestExport_Errors(t *testing.T) {
	d := newDeps()
	d.exporter.err = repo.ErrStoreUnavailable
	expectError(t, do(t, d.router(), http.MethodGet, "/api/export-pdf", ""), http.StatusInternalServerError, ErrCodeStoreUnavailable)

	d.exporter.err = errors.New("render")
	expectError(t, do(t, d.router(), http.MethodGet, "/api/export-json", ""), http.StatusInternalServerError, ErrCodeExportFailed)
}
