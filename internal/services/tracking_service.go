// Package services – TrackingService
//
// TrackingService covers the activity log behind the dashboard: BMI
// calculations, workout and meditation sessions, the daily health check-in
// and the "recent records" view. Writes go through the store's
// fire-and-forget Insert, so a degraded store never fails a request that
// only records something.
package services

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/holistiq/internal/calc"
	"github.com/tbourn/holistiq/internal/domain"
	"github.com/tbourn/holistiq/internal/repo"
)

// DefaultReportLimit is how many records per category the reports view shows.
const DefaultReportLimit = 10

// BMIInput is a BMI calculation request. Unit is "metric" (default) or
// "imperial".
type BMIInput struct {
	Weight float64
	Height float64
	Unit   string
}

// HealthDataInput is a dashboard check-in. MentalScore is 0..10.
type HealthDataInput struct {
	Weight      float64
	Height      float64
	MentalScore int
}

// ReportsData groups the newest records of each category.
type ReportsData struct {
	BMI         []domain.BMIReading
	Workouts    []domain.WorkoutEntry
	Meditations []domain.MeditationEntry
}

// TrackingService records and lists activity.
type TrackingService struct {
	// Store persists records; it may be in degraded mode.
	Store *repo.Store
	// Now is the clock used for record timestamps.
	Now func() time.Time
}

// NewTrackingService constructs a TrackingService using the wall clock.
func NewTrackingService(store *repo.Store) *TrackingService {
	return &TrackingService{Store: store, Now: time.Now}
}

func (s *TrackingService) now() domain.Timestamp {
	if s.Now == nil {
		return domain.Now()
	}
	return domain.NewTimestamp(s.Now())
}

// CalculateBMI computes the BMI and records the reading.
func (s *TrackingService) CalculateBMI(ctx context.Context, in BMIInput) (calc.BMIResult, error) {
	ctx, span := otel.Tracer("services/TrackingService").Start(ctx, "CalculateBMI")
	defer span.End()

	unit := calc.ParseUnit(in.Unit)
	res, err := calc.ComputeBMI(in.Weight, in.Height, unit)
	if err != nil {
		return calc.BMIResult{}, invalid(err.Error())
	}
	span.SetAttributes(attribute.String("bmi.category", res.Category))

	s.Store.Insert(ctx, &domain.BMIReading{
		Weight:    calc.Round2(res.WeightKg),
		Height:    calc.Round2(res.HeightCm),
		Unit:      string(unit),
		BMI:       res.BMI,
		Category:  res.Category,
		Timestamp: s.now(),
	})
	return res, nil
}

// SaveWorkout records a finished workout. Duration is in minutes.
func (s *TrackingService) SaveWorkout(ctx context.Context, exerciseType string, duration int) (domain.ID, error) {
	exerciseType = strings.TrimSpace(exerciseType)
	if exerciseType == "" {
		return "", invalid("exercise_type is required")
	}
	if duration < 0 {
		return "", invalid("duration must not be negative")
	}
	return s.Store.Insert(ctx, &domain.WorkoutEntry{
		ExerciseType: exerciseType,
		Duration:     duration,
		Timestamp:    s.now(),
	}), nil
}

// SaveMeditation records a finished meditation session. Duration is in minutes.
func (s *TrackingService) SaveMeditation(ctx context.Context, meditationType string, duration int) (domain.ID, error) {
	meditationType = strings.TrimSpace(meditationType)
	if meditationType == "" {
		return "", invalid("meditation_type is required")
	}
	if duration < 0 {
		return "", invalid("duration must not be negative")
	}
	return s.Store.Insert(ctx, &domain.MeditationEntry{
		MeditationType: meditationType,
		Duration:       duration,
		Timestamp:      s.now(),
	}), nil
}

// ReportsData returns up to limit records per category, newest first.
// A non-positive limit means DefaultReportLimit.
func (s *TrackingService) ReportsData(ctx context.Context, limit int) (*ReportsData, error) {
	ctx, span := otel.Tracer("services/TrackingService").Start(ctx, "ReportsData",
		trace.WithAttributes(attribute.Int("limit", limit)),
	)
	defer span.End()

	if limit <= 0 {
		limit = DefaultReportLimit
	}
	bmi, err := s.Store.RecentBMI(ctx, limit)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	workouts, err := s.Store.RecentWorkouts(ctx, limit)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	meditations, err := s.Store.RecentMeditations(ctx, limit)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &ReportsData{BMI: bmi, Workouts: workouts, Meditations: meditations}, nil
}

// SaveHealthData computes BMI, mental status and suggestions for a
// check-in and records it.
func (s *TrackingService) SaveHealthData(ctx context.Context, in HealthDataInput) (*domain.HealthSnapshot, error) {
	res, err := calc.ComputeBMI(in.Weight, in.Height, calc.Metric)
	if err != nil {
		return nil, invalid(err.Error())
	}
	if in.MentalScore < 0 || in.MentalScore > calc.MaxMentalPoints {
		return nil, invalid("mental_score must be between 0 and 10")
	}
	snap := &domain.HealthSnapshot{
		Weight:          in.Weight,
		Height:          in.Height,
		BMI:             res.BMI,
		Category:        res.Category,
		MentalScore:     in.MentalScore,
		MentalStatus:    calc.MentalStatus(in.MentalScore),
		Recommendations: calc.Suggestions(res.Category, in.MentalScore),
		Timestamp:       s.now(),
	}
	s.Store.Insert(ctx, snap)
	return snap, nil
}

// LatestHealthData returns the most recent check-in.
func (s *TrackingService) LatestHealthData(ctx context.Context) (*domain.HealthSnapshot, error) {
	recs, err := repo.FindRecent[domain.HealthSnapshot](ctx, s.Store, domain.CollectionHealthData, 1)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNoHealthData
	}
	return &recs[0], nil
}
