// Export HTTP handlers: JSON, YAML and PDF downloads of the tracked records.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) exportAs(c *gin.Context, format string) {
	doc, err := h.exporter.Render(c.Request.Context(), format)
	if err != nil {
		mapError(c, err, ErrCodeExportFailed)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Name))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

// ExportJSON godoc
// @ID          exportJSON
// @Summary     Download all records as JSON
// @Tags        Export
// @Produce     json
// @Success     200  {file}    file  "health_report_YYYYMMDD_HHMMSS.json"
// @Failure     500  {object}  handlers.ErrorResponse  "Database not available"
// @Router      /api/export-json [get]
func (h *Handlers) ExportJSON(c *gin.Context) { h.exportAs(c, "json") }

// ExportYAML godoc
// @ID          exportYAML
// @Summary     Download all records as YAML
// @Tags        Export
// @Produce     application/x-yaml
// @Success     200  {file}    file  "health_report_YYYYMMDD_HHMMSS.yaml"
// @Failure     500  {object}  handlers.ErrorResponse  "Database not available"
// @Router      /api/export-yaml [get]
func (h *Handlers) ExportYAML(c *gin.Context) { h.exportAs(c, "yaml") }

// ExportPDF godoc
// @ID          exportPDF
// @Summary     Download a PDF report
// @Description The newest 20 records per category, one table per non-empty category.
// @Tags        Export
// @Produce     application/pdf
// @Success     200  {file}    file  "health_report_YYYYMMDD_HHMMSS.pdf"
// @Failure     500  {object}  handlers.ErrorResponse  "Database not available"
// @Router      /api/export-pdf [get]
func (h *Handlers) ExportPDF(c *gin.Context) { h.exportAs(c, "pdf") }
