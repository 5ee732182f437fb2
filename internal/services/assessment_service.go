// Package services – AssessmentService
//
// AssessmentService serves the questionnaire definitions and scores
// submissions against them.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/holistiq/internal/domain"
	"github.com/tbourn/holistiq/internal/repo"
)

// AssessmentService looks up and scores questionnaires.
type AssessmentService struct {
	Store *repo.Store
	Now   func() time.Time
}

func NewAssessmentService(store *repo.Store) *AssessmentService {
	return &AssessmentService{Store: store, Now: time.Now}
}

// Definition returns the questionnaire for kind.
func (s *AssessmentService) Definition(kind string) (domain.Assessment, error) {
	a, ok := domain.LookupAssessment(kind)
	if !ok {
		return domain.Assessment{}, ErrUnknownAssessment
	}
	return a, nil
}

// Submit scores responses (one value per item, in item order) and records
// the result. submitter is optional.
func (s *AssessmentService) Submit(ctx context.Context, kind string, responses []int, submitter string) (*domain.AssessmentResult, error) {
	ctx, span := otel.Tracer("services/AssessmentService").Start(ctx, "Submit",
		trace.WithAttributes(attribute.String("assessment.type", kind)),
	)
	defer span.End()

	a, err := s.Definition(kind)
	if err != nil {
		return nil, err
	}
	if len(responses) != len(a.Items) {
		return nil, invalid(fmt.Sprintf("expected %d responses, got %d", len(a.Items), len(responses)))
	}
	score := 0
	for i, v := range responses {
		if !a.Allows(v) {
			return nil, invalid(fmt.Sprintf("response %d has invalid value %d", i+1, v))
		}
		score += v
	}
	band := a.Band(score)

	ts := domain.Now()
	if s.Now != nil {
		ts = domain.NewTimestamp(s.Now())
	}
	res := &domain.AssessmentResult{
		Type:      a.Type,
		Responses: append([]int(nil), responses...),
		Score:     score,
		MaxScore:  a.MaxScore(),
		Severity:  band.Label,
		Submitter: strings.TrimSpace(submitter),
		Timestamp: ts,
	}
	s.Store.Insert(ctx, res)
	span.SetAttributes(attribute.Int("assessment.score", score))
	return res, nil
}
