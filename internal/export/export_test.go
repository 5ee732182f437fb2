package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tbourn/holistiq/internal/domain"
	"github.com/tbourn/holistiq/internal/repo"
	"github.com/tbourn/holistiq/internal/services"
)

type fakeSource struct {
	bmi         []domain.BMIReading
	workouts    []domain.WorkoutEntry
	meditations []domain.MeditationEntry
	err         error
	limits      []int
}

func clip[T any](in []T, limit int) []T {
	if limit > 0 && len(in) > limit {
		return in[:limit]
	}
	return in
}

func (f *fakeSource) RecentBMI(_ context.Context, limit int) ([]domain.BMIReading, error) {
	f.limits = append(f.limits, limit)
	return clip(f.bmi, limit), f.err
}

func (f *fakeSource) RecentWorkouts(_ context.Context, limit int) ([]domain.WorkoutEntry, error) {
	f.limits = append(f.limits, limit)
	return clip(f.workouts, limit), f.err
}

func (f *fakeSource) RecentMeditations(_ context.Context, limit int) ([]domain.MeditationEntry, error) {
	f.limits = append(f.limits, limit)
	return clip(f.meditations, limit), f.err
}

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func newTestExporter(src RecordSource) *Exporter {
	e := New(src)
	e.Now = func() time.Time { return fixedNow }
	e.Compress = false
	return e
}

func sampleSource() *fakeSource {
	ts := domain.NewTimestamp(time.Date(2024, 3, 8, 7, 30, 0, 0, time.UTC))
	return &fakeSource{
		bmi: []domain.BMIReading{
			{ID: "b1", Weight: 70, Height: 175, Unit: "metric", BMI: 22.86, Category: "Normal weight", Timestamp: ts},
		},
		workouts: []domain.WorkoutEntry{
			{ID: "w1", ExerciseType: "Push-ups", Duration: 15, Timestamp: ts},
		},
		meditations: []domain.MeditationEntry{},
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "health_report_20240309_140507.json", FileName(fixedNow, "json"))
	assert.Equal(t, "health_report_20240309_140507.pdf", FileName(fixedNow, "pdf"))
}

func TestJSON_ShapeAndUnlimited(t *testing.T) {
	src := sampleSource()
	doc, err := newTestExporter(src).JSON(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ContentTypeJSON, doc.ContentType)
	assert.Equal(t, "health_report_20240309_140507.json", doc.Name)
	assert.Equal(t, []int{0, 0, 0}, src.limits)
	assert.Contains(t, string(doc.Body), "\n  \"bmi_records\": [")

	var got map[string]any
	require.NoError(t, json.Unmarshal(doc.Body, &got))
	assert.Equal(t, "2024-03-09 14:05:07", got["export_date"])
	bmi := got["bmi_records"].([]any)
	require.Len(t, bmi, 1)
	first := bmi[0].(map[string]any)
	assert.Equal(t, "b1", first["_id"])
	assert.Equal(t, "2024-03-08 07:30:00", first["timestamp"])
	assert.Equal(t, []any{}, got["meditation_records"])
}

func TestYAML(t *testing.T) {
	doc, err := newTestExporter(sampleSource()).YAML(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ContentTypeYAML, doc.ContentType)
	assert.True(t, strings.HasSuffix(doc.Name, ".yaml"))

	var got struct {
		ExportDate string           `yaml:"export_date"`
		Workouts   []map[string]any `yaml:"workout_records"`
	}
	require.NoError(t, yaml.Unmarshal(doc.Body, &got))
	assert.Equal(t, "2024-03-09 14:05:07", got.ExportDate)
	require.Len(t, got.Workouts, 1)
	assert.Equal(t, "Push-ups", got.Workouts[0]["exercise_type"])
	assert.Equal(t, "2024-03-08 07:30:00", got.Workouts[0]["timestamp"])
}

func TestPDF_SectionsAndLimit(t *testing.T) {
	src := sampleSource()
	for i := 0; i < 30; i++ {
		src.bmi = append(src.bmi, src.bmi[0])
	}
	doc, err := newTestExporter(src).PDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ContentTypePDF, doc.ContentType)
	assert.Equal(t, "health_report_20240309_140507.pdf", doc.Name)
	assert.Equal(t, []int{PDFLimit, PDFLimit, PDFLimit}, src.limits)

	body := doc.Body
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
	assert.Contains(t, string(body), "Generated on: 2024-03-09 14:05:07")
	assert.Contains(t, string(body), "BMI Records")
	assert.Contains(t, string(body), "Workout Records")
	assert.Contains(t, string(body), "Exercise Type")
	assert.Contains(t, string(body), "Push-ups")
	assert.Contains(t, string(body), "22.86")
	// empty sections are omitted
	assert.NotContains(t, string(body), "Meditation Records")
}

func TestPDF_EmptyStoreStillRenders(t *testing.T) {
	doc, err := newTestExporter(&fakeSource{}).PDF(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(doc.Body), "Health Toolkit Report")
	assert.NotContains(t, string(doc.Body), "BMI Records")
}

func TestExport_StoreUnavailable(t *testing.T) {
	e := newTestExporter(repo.NewStore(nil, 0))
	for _, format := range []string{"json", "yaml", "pdf"} {
		_, err := e.Render(context.Background(), format)
		assert.ErrorIs(t, err, repo.ErrStoreUnavailable, format)
	}
	_, err := e.Render(context.Background(), "docx")
	assert.Error(t, err)
}

func newSQLiteStore(t *testing.T) *repo.Store {
	t.Helper()
	db, err := repo.OpenSQLite(fmt.Sprintf("file:export_%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, repo.AutoMigrate(db))
	store := repo.NewStore(repo.NewSQLBackend(db), time.Second)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func TestJSON_RoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)
	recorded := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	tracking := services.NewTrackingService(store)
	tracking.Now = func() time.Time { return recorded }

	res, err := tracking.CalculateBMI(ctx, services.BMIInput{Weight: 70, Height: 175, Unit: "metric"})
	require.NoError(t, err)
	workoutID, err := tracking.SaveWorkout(ctx, "Push-ups", 15)
	require.NoError(t, err)
	store.Wait()

	doc, err := newTestExporter(store).JSON(ctx)
	require.NoError(t, err)

	var wire struct {
		ExportDate string           `json:"export_date"`
		BMI        []map[string]any `json:"bmi_records"`
		Workouts   []map[string]any `json:"workout_records"`
		Meditation []map[string]any `json:"meditation_records"`
	}
	require.NoError(t, json.Unmarshal(doc.Body, &wire))
	assert.Equal(t, "2024-03-09 14:05:07", wire.ExportDate)
	assert.Empty(t, wire.Meditation)

	require.Len(t, wire.BMI, 1)
	bmi := wire.BMI[0]
	id, ok := bmi["_id"].(string)
	require.True(t, ok, "bmi _id must be a string: %#v", bmi["_id"])
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, 70.0, bmi["weight"])
	assert.Equal(t, 175.0, bmi["height"])
	assert.Equal(t, "metric", bmi["unit"])
	assert.Equal(t, res.BMI, bmi["bmi"])
	assert.Equal(t, "Normal weight", bmi["category"])
	assert.Equal(t, "2024-05-01 09:00:00", bmi["timestamp"])

	require.Len(t, wire.Workouts, 1)
	w := wire.Workouts[0]
	assert.Equal(t, string(workoutID), w["_id"])
	assert.Equal(t, "Push-ups", w["exercise_type"])
	assert.Equal(t, 15.0, w["duration"])
	assert.Equal(t, "2024-05-01 09:00:00", w["timestamp"])

	// The typed snapshot decodes back to the inserted values.
	var snap Snapshot
	require.NoError(t, json.Unmarshal(doc.Body, &snap))
	require.Len(t, snap.WorkoutRecords, 1)
	assert.Equal(t, workoutID, snap.WorkoutRecords[0].ID)
	assert.True(t, snap.WorkoutRecords[0].Timestamp.Equal(recorded))
}

func TestExport_TimesShareOneUTCClock(t *testing.T) {
	athens := time.FixedZone("EEST", 3*60*60)
	e := New(sampleSource())
	e.Compress = false
	e.Now = func() time.Time { return time.Date(2024, 3, 9, 17, 5, 7, 0, athens) }

	doc, err := e.JSON(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "health_report_20240309_140507.json", doc.Name)
	assert.Contains(t, string(doc.Body), `"export_date": "2024-03-09 14:05:07"`)

	pdf, err := e.PDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "health_report_20240309_140507.pdf", pdf.Name)
	assert.Contains(t, string(pdf.Body), "Generated on: 2024-03-09 14:05:07")
}
