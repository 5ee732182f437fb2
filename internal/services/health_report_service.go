// Package services – HealthReportService
//
// HealthReportService turns body measurements and a birth date into a
// personal metrics report (BMI, BMR and daily calorie need) and stores it so
// it can be fetched again by id.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tbourn/holistiq/internal/calc"
	"github.com/tbourn/holistiq/internal/domain"
	"github.com/tbourn/holistiq/internal/repo"
)

// HealthReportInput holds the measurements for a report. BirthDate is
// YYYY-MM-DD; an unparseable value yields age 0 rather than an error.
type HealthReportInput struct {
	Height        float64
	Weight        float64
	BirthDate     string
	Gender        string
	ActivityLevel string
	Unit          string
}

// HealthReportService builds and retrieves health reports.
type HealthReportService struct {
	Store *repo.Store
	Now   func() time.Time
}

func NewHealthReportService(store *repo.Store) *HealthReportService {
	return &HealthReportService{Store: store, Now: time.Now}
}

// Generate computes and records a report.
func (s *HealthReportService) Generate(ctx context.Context, in HealthReportInput) (*domain.HealthReport, error) {
	ctx, span := otel.Tracer("services/HealthReportService").Start(ctx, "Generate")
	defer span.End()

	res, err := calc.ComputeBMI(in.Weight, in.Height, calc.ParseUnit(in.Unit))
	if err != nil {
		return nil, invalid(err.Error())
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	age := calc.AgeFromBirthDate(in.BirthDate, now)
	bmr := calc.ComputeBMR(res.WeightKg, res.HeightCm, age, in.Gender)
	level := strings.ToLower(strings.TrimSpace(in.ActivityLevel))

	rep := &domain.HealthReport{
		Weight:        calc.Round2(res.WeightKg),
		Height:        calc.Round2(res.HeightCm),
		BirthDate:     strings.TrimSpace(in.BirthDate),
		Gender:        strings.ToLower(strings.TrimSpace(in.Gender)),
		ActivityLevel: level,
		Age:           age,
		BMI:           res.BMI,
		Category:      res.Category,
		BMR:           calc.Round2(bmr),
		DailyCalories: calc.DailyCalories(bmr, level),
		Timestamp:     domain.NewTimestamp(now),
	}
	s.Store.Insert(ctx, rep)
	span.SetAttributes(attribute.Int("report.age", age))
	return rep, nil
}

// Get loads a stored report.
func (s *HealthReportService) Get(ctx context.Context, id domain.ID) (*domain.HealthReport, error) {
	if id.IsZero() {
		return nil, ErrReportNotFound
	}
	rep, err := repo.FindByID[domain.HealthReport](ctx, s.Store, domain.CollectionReports, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrReportNotFound
	}
	return rep, err
}
