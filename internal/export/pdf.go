package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/tbourn/holistiq/internal/calc"
)

const (
	pageMargin = 20.0 // mm
	rowHeight  = 8.0
	dateLayout = "2006-01-02 15:04"
)

// Inches, in mm, so column widths read like the printed layout.
const (
	in2   = 50.8
	in1_5 = 38.1
)

type rgb struct{ r, g, b int }

var (
	titleColor   = rgb{0x2c, 0x3e, 0x50}
	bmiColor     = rgb{0x34, 0x98, 0xdb}
	workoutColor = rgb{0x2e, 0xcc, 0x71}
	mindColor    = rgb{0x9b, 0x59, 0xb6}
	shadeColor   = rgb{245, 245, 220} // beige
)

type table struct {
	title  string
	header []string
	widths []float64
	color  rgb
	rows   [][]string
}

func renderPDF(s *Snapshot, generated time.Time, compress bool) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetCompression(compress)
	pdf.SetCreationDate(generated)
	pdf.SetTitle("Health Toolkit Report", false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(titleColor.r, titleColor.g, titleColor.b)
	pdf.CellFormat(0, 14, "Health Toolkit Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, "Generated on: "+generated.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	for _, t := range tables(s) {
		if len(t.rows) == 0 {
			continue
		}
		drawTable(pdf, tr, t)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func tables(s *Snapshot) []table {
	bmi := table{
		title:  "BMI Records",
		header: []string{"Date", "BMI", "Category"},
		widths: []float64{in2, in1_5, in2},
		color:  bmiColor,
	}
	for _, r := range s.BMIRecords {
		bmi.rows = append(bmi.rows, []string{
			r.Timestamp.Format(dateLayout),
			strconv.FormatFloat(calc.Round2(r.BMI), 'f', -1, 64),
			r.Category,
		})
	}

	workouts := table{
		title:  "Workout Records",
		header: []string{"Date", "Exercise Type", "Duration (min)"},
		widths: []float64{in2, in2, in1_5},
		color:  workoutColor,
	}
	for _, r := range s.WorkoutRecords {
		workouts.rows = append(workouts.rows, []string{
			r.Timestamp.Format(dateLayout), r.ExerciseType, strconv.Itoa(r.Duration),
		})
	}

	meditations := table{
		title:  "Meditation Records",
		header: []string{"Date", "Meditation Type", "Duration (min)"},
		widths: []float64{in2, in2, in1_5},
		color:  mindColor,
	}
	for _, r := range s.MeditationRecords {
		meditations.rows = append(meditations.rows, []string{
			r.Timestamp.Format(dateLayout), r.MeditationType, strconv.Itoa(r.Duration),
		})
	}
	return []table{bmi, workouts, meditations}
}

// drawTable writes a heading and a centered grid. The header row repeats
// after each page break.
func drawTable(pdf *gofpdf.Fpdf, tr func(string) string, t table) {
	pageW, pageH := pdf.GetPageSize()
	var total float64
	for _, w := range t.widths {
		total += w
	}
	left := (pageW - total) / 2

	ensureRoom := func(h float64) bool {
		if pdf.GetY()+h > pageH-pageMargin {
			pdf.AddPage()
			return true
		}
		return false
	}

	header := func() {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(t.color.r, t.color.g, t.color.b)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetX(left)
		for i, h := range t.header {
			pdf.CellFormat(t.widths[i], rowHeight+2, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
	}

	// heading plus header plus one row stay together
	ensureRoom(12 + 2*rowHeight + 2)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(titleColor.r, titleColor.g, titleColor.b)
	pdf.CellFormat(0, 10, t.title, "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	for n, row := range t.rows {
		if ensureRoom(rowHeight) {
			header()
		}
		if n%2 == 0 {
			pdf.SetFillColor(shadeColor.r, shadeColor.g, shadeColor.b)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		pdf.SetX(left)
		for i, cell := range row {
			pdf.CellFormat(t.widths[i], rowHeight, tr(cell), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(8)
}
