package handlers

import (
	"net/http"
	"testing"

	"github.com/tbourn/holistiq/internal/calc"
	"github.com/tbourn/holistiq/internal/domain"
	"github.com/tbourn/holistiq/internal/repo"
	"github.com/tbourn/holistiq/internal/services"
)

func TestCalculateBMI(t *testing.T) {
	d := newDeps()
	var seen services.BMIInput
	d.tracking.bmi = func(in services.BMIInput) (calc.BMIResult, error) {
		seen = in
		return calc.BMIResult{BMI: 22.86, Category: "Normal weight", Color: "success"}, nil
	}
	r := d.router()

	w := do(t, r, http.MethodPost, "/api/calculate-bmi", `{"weight":70,"height":175,"unit":"metric"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	resp := decode[BMIResponse](t, w)
	if !resp.Success || resp.BMI != 22.86 || resp.Category != "Normal weight" || resp.Color != "success" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if seen.Weight != 70 || seen.Height != 175 || seen.Unit != "metric" {
		t.Fatalf("input = %+v", seen)
	}
}

func TestCalculateBMI_Errors(t *testing.T) {
	d := newDeps()
	d.tracking.bmi = func(services.BMIInput) (calc.BMIResult, error) {
		return calc.BMIResult{}, services.ErrValidation
	}
	r := d.router()

	expectError(t, do(t, r, http.MethodPost, "/api/calculate-bmi", `{"weight":70}`), http.StatusBadRequest, ErrCodeBadRequest)
	expectError(t, do(t, r, http.MethodPost, "/api/calculate-bmi", `{"weight":"x","height":1}`), http.StatusBadRequest, ErrCodeBadRequest)
	expectError(t, do(t, r, http.MethodPost, "/api/calculate-bmi", `{"weight":0,"height":0}`), http.StatusBadRequest, ErrCodeBadRequest)
}

func TestSaveWorkoutAndMeditation(t *testing.T) {
	d := newDeps()
	r := d.router()

	w := do(t, r, http.MethodPost, "/api/save-workout", `{"exercise_type":"Push-ups","duration":15}`)
	if resp := decode[MessageResponse](t, w); w.Code != http.StatusOK || resp.Message != "Workout saved successfully" {
		t.Fatalf("workout: %d %+v", w.Code, resp)
	}
	w = do(t, r, http.MethodPost, "/api/save-meditation", `{"meditation_type":"Breathing","duration":5}`)
	if resp := decode[MessageResponse](t, w); w.Code != http.StatusOK || resp.Message != "Meditation saved successfully" {
		t.Fatalf("meditation: %d %+v", w.Code, resp)
	}
	if len(d.tracking.workouts) != 1 || d.tracking.workouts[0] != "Push-ups" || d.tracking.meditation[0] != "Breathing" {
		t.Fatalf("calls: %v %v", d.tracking.workouts, d.tracking.meditation)
	}

	d.tracking.saveErr = services.ErrValidation
	expectError(t, do(t, r, http.MethodPost, "/api/save-workout", `{"duration":15}`), http.StatusBadRequest, ErrCodeBadRequest)
	expectError(t, do(t, r, http.MethodPost, "/api/save-meditation", `[`), http.StatusBadRequest, ErrCodeBadRequest)
}

func TestReportsData(t *testing.T) {
	d := newDeps()
	d.tracking.reports = &services.ReportsData{
		BMI:         []domain.BMIReading{{ID: "b1", BMI: 22.86}},
		Workouts:    []domain.WorkoutEntry{},
		Meditations: []domain.MeditationEntry{{ID: "m1", MeditationType: "Body scan", Duration: 10}},
	}
	r := d.router()

	tests := []struct {
		query string
		limit int
	}{
		{"", services.DefaultReportLimit},
		{"?limit=5", 5},
		{"?limit=1000", maxReportLimit},
		{"?limit=abc", services.DefaultReportLimit},
		{"?limit=-3", services.DefaultReportLimit},
	}
	for _, tt := range tests {
		w := do(t, r, http.MethodGet, "/api/reports-data"+tt.query, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%q: status=%d", tt.query, w.Code)
		}
		if d.tracking.limit != tt.limit {
			t.Fatalf("%q: limit=%d; want %d", tt.query, d.tracking.limit, tt.limit)
		}
	}

	w := do(t, r, http.MethodGet, "/api/reports-data", "")
	resp := decode[map[string]any](t, w)
	if resp["success"] != true || len(resp["bmi_records"].([]any)) != 1 || len(resp["workout_records"].([]any)) != 0 {
		t.Fatalf("unexpected body: %v", resp)
	}
	med := resp["meditation_records"].([]any)[0].(map[string]any)
	if med["_id"] != "m1" || med["meditation_type"] != "Body scan" {
		t.Fatalf("meditation record = %v", med)
	}
}

func TestReportsData_StoreUnavailable(t *testing.T) {
	d := newDeps()
	d.tracking.reportsErr = repo.ErrStoreUnavailable
	er := expectError(t, do(t, d.router(), http.MethodGet, "/api/reports-data", ""), http.StatusInternalServerError, ErrCodeStoreUnavailable)
	if er.Error != "database not available" {
		t.Fatalf("error = %q", er.Error)
	}
}

func TestHealthData(t *testing.T) {
	d := newDeps()
	var seen services.HealthDataInput
	d.tracking.health = func(in services.HealthDataInput) (*domain.HealthSnapshot, error) {
		seen = in
		return &domain.HealthSnapshot{
			BMI: 22.86, Category: "Normal weight", MentalStatus: "Good",
			Recommendations: []string{"a", "b"},
		}, nil
	}
	r := d.router()

	w := do(t, r, http.MethodPost, "/api/health-data", `{"weight":70,"height":175,"mental_score":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	resp := decode[HealthDataResponse](t, w)
	if resp.MentalStatus != "Good" || len(resp.Recommendations) != 2 {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if seen.MentalScore != 0 || seen.Weight != 70 {
		t.Fatalf("input = %+v", seen)
	}

	expectError(t, do(t, r, http.MethodPost, "/api/health-data", `{"weight":70,"height":175}`), http.StatusBadRequest, ErrCodeBadRequest)
}

func TestLatestHealthData(t *testing.T) {
	d := newDeps()
	d.tracking.latest = &domain.HealthSnapshot{ID: "h1", MentalScore: 7}
	w := do(t, d.router(), http.MethodGet, "/api/health-data", "")
	resp := decode[map[string]any](t, w)
	if w.Code != http.StatusOK || resp["data"].(map[string]any)["_id"] != "h1" {
		t.Fatalf("status=%d body=%v", w.Code, resp)
	}

	d = newDeps()
	d.tracking.latestErr = services.ErrNoHealthData
	expectError(t, do(t, d.router(), http.MethodGet, "/api/health-data", ""), http.StatusNotFound, ErrCodeNotFound)
}
