package analyses

import (
	"context"

	"energy-optimizer/internal/analyses/recommendations"
)

// Recommender picks recommendations for a resolved building type.
type Recommender interface {
	Recommend(buildingType string) (recommendations.Result, error)
}

// Service contains business logic for analyses.
type Service struct {
	Recommender Recommender
}

// NewService constructs a Service.
func NewService(r Recommender) *Service {
	return &Service{Recommender: r}
}

// Analyze resolves the building type and draws its recommendations.
func (s *Service) Analyze(ctx context.Context, req ConsumptionRequest) (recommendations.Result, error) {
	if err := ctx.Err(); err != nil {
		return recommendations.Result{}, err
	}
	if req == nil {
		return recommendations.Result{}, ErrNoData
	}
	buildingType, err := req.BuildingType()
	if err != nil {
		return recommendations.Result{}, err
	}
	return s.Recommender.Recommend(buildingType)
}
