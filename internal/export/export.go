// Package export renders the tracked wellness records as downloadable
// documents: an indented JSON snapshot, a YAML snapshot and a tabular PDF
// report.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	"github.com/tbourn/holistiq/internal/domain"
)

// PDFLimit caps rows per section in the PDF report. JSON and YAML exports
// are unlimited.
const PDFLimit = 20

// Content types of the produced documents.
const (
	ContentTypeJSON = "application/json"
	ContentTypeYAML = "application/x-yaml"
	ContentTypePDF  = "application/pdf"
)

// RecordSource reads the newest records per category. limit <= 0 means all.
// *repo.Store satisfies it.
type RecordSource interface {
	RecentBMI(ctx context.Context, limit int) ([]domain.BMIReading, error)
	RecentWorkouts(ctx context.Context, limit int) ([]domain.WorkoutEntry, error)
	RecentMeditations(ctx context.Context, limit int) ([]domain.MeditationEntry, error)
}

// Snapshot is the exported document body.
type Snapshot struct {
	ExportDate        domain.Timestamp         `json:"export_date"        yaml:"export_date"`
	BMIRecords        []domain.BMIReading      `json:"bmi_records"        yaml:"bmi_records"`
	WorkoutRecords    []domain.WorkoutEntry    `json:"workout_records"    yaml:"workout_records"`
	MeditationRecords []domain.MeditationEntry `json:"meditation_records" yaml:"meditation_records"`
}

// Document is a rendered export ready to be served as an attachment.
type Document struct {
	Name        string
	ContentType string
	Body        []byte
}

// Exporter builds documents from a RecordSource.
type Exporter struct {
	// Source provides the records.
	Source RecordSource
	// Now is the clock used for export_date and file names.
	Now func() time.Time
	// Compress toggles PDF stream compression.
	Compress bool
}

// New returns an Exporter over src using the wall clock.
func New(src RecordSource) *Exporter {
	return &Exporter{Source: src, Now: time.Now, Compress: true}
}

// now reads the clock once per export in UTC, the zone of every stored
// timestamp.
func (e *Exporter) now() time.Time {
	if e.Now == nil {
		return time.Now().UTC()
	}
	return e.Now().UTC()
}

// Collect reads up to limit records of each category, newest first.
func (e *Exporter) Collect(ctx context.Context, limit int) (*Snapshot, error) {
	bmi, err := e.Source.RecentBMI(ctx, limit)
	if err != nil {
		return nil, err
	}
	workouts, err := e.Source.RecentWorkouts(ctx, limit)
	if err != nil {
		return nil, err
	}
	meditations, err := e.Source.RecentMeditations(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		ExportDate:        domain.NewTimestamp(e.now()),
		BMIRecords:        bmi,
		WorkoutRecords:    workouts,
		MeditationRecords: meditations,
	}, nil
}

// JSON exports every record as 2-space indented JSON.
func (e *Exporter) JSON(ctx context.Context) (*Document, error) {
	ctx, span := startSpan(ctx, "JSON")
	defer span.End()

	snap, err := e.Collect(ctx, 0)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json export: %w", err)
	}
	return &Document{Name: FileName(snap.ExportDate.Time, "json"), ContentType: ContentTypeJSON, Body: b}, nil
}

// YAML exports every record as YAML.
func (e *Exporter) YAML(ctx context.Context) (*Document, error) {
	ctx, span := startSpan(ctx, "YAML")
	defer span.End()

	snap, err := e.Collect(ctx, 0)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	b, err := yaml.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode yaml export: %w", err)
	}
	return &Document{Name: FileName(snap.ExportDate.Time, "yaml"), ContentType: ContentTypeYAML, Body: b}, nil
}

// PDF renders the newest PDFLimit records of each category as tables.
func (e *Exporter) PDF(ctx context.Context) (*Document, error) {
	ctx, span := startSpan(ctx, "PDF")
	defer span.End()

	snap, err := e.Collect(ctx, PDFLimit)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	b, err := renderPDF(snap, snap.ExportDate.Time, e.Compress)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("export.bytes", len(b)))
	return &Document{Name: FileName(snap.ExportDate.Time, "pdf"), ContentType: ContentTypePDF, Body: b}, nil
}

// Render dispatches on format: json, yaml (or yml) and pdf.
func (e *Exporter) Render(ctx context.Context, format string) (*Document, error) {
	switch format {
	case "json":
		return e.JSON(ctx)
	case "yaml", "yml":
		return e.YAML(ctx)
	case "pdf":
		return e.PDF(ctx)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// FileName is health_report_<YYYYMMDD_HHMMSS>.<ext>.
func FileName(t time.Time, ext string) string {
	return fmt.Sprintf("health_report_%s.%s", t.Format("20060102_150405"), ext)
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer("export/Exporter").Start(ctx, name,
		trace.WithAttributes(attribute.String("export.format", name)),
	)
}
