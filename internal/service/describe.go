package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/renthub/rental-service/internal/model"
)

// Describer produces marketing copy for a unit listing. It is an
// opaque collaborator: its output never influences state or pricing.
type Describer interface {
	Describe(ctx context.Context, req model.DescribeUnitRequest) (string, error)
}

const fallbackDescription = "Description could not be generated automatically. Please fill it in manually."

// FallbackDescriber is used when no generator is configured.
type FallbackDescriber struct{}

func (FallbackDescriber) Describe(context.Context, model.DescribeUnitRequest) (string, error) {
	return fallbackDescription, nil
}

// DescribeUnit asks the configured generator for listing copy and falls
// back to the placeholder text on any failure.
func (s *Service) DescribeUnit(ctx context.Context, req model.DescribeUnitRequest) string {
	text, err := s.desc.Describe(ctx, req)
	if err != nil || text == "" {
		s.log.Warn("describe unit", zap.String("name", req.Name), zap.Error(err))
		return fallbackDescription
	}
	return text
}
