package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/renthub/rental-service/internal/errs"
	"github.com/renthub/rental-service/internal/model"
)

func (s *Service) GetUnit(ctx context.Context, id string) (model.Unit, error) {
	return s.repo.GetUnit(ctx, id)
}

func (s *Service) ListUnits(ctx context.Context) ([]model.Unit, error) {
	return s.repo.ListUnits(ctx)
}

func (s *Service) CreateUnit(ctx context.Context, req model.CreateUnitRequest) (model.Unit, error) {
	status := req.Status
	if status == "" {
		status = model.UnitAvailable
	}

	unit := model.Unit{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    req.Category,
		DailyRate:   req.DailyRate,
		PromoRate:   req.PromoRate,
		Status:      status,
		Location:    req.Location,
		Features:    req.Features,
		Description: req.Description,
		Specs:       req.Specs,
	}
	if err := s.repo.PutUnit(ctx, unit); err != nil {
		return model.Unit{}, errors.Wrap(err, "put unit")
	}
	return unit, nil
}

// UpdateUnit edits the descriptive fields. Status may only be toggled
// between Available and Maintenance here; the rented states with their
// tenant assignment and delivery info belong to the booking lifecycle
// and are preserved untouched.
func (s *Service) UpdateUnit(ctx context.Context, id string, req model.CreateUnitRequest) (model.Unit, error) {
	unit, err := s.repo.GetUnit(ctx, id)
	if err != nil {
		return model.Unit{}, errors.Wrap(err, "get unit")
	}

	unit.Name = req.Name
	unit.Category = req.Category
	unit.DailyRate = req.DailyRate
	unit.PromoRate = req.PromoRate
	unit.Location = req.Location
	unit.Features = req.Features
	unit.Description = req.Description
	unit.Specs = req.Specs

	if req.Status != "" && !unit.Status.InLogistics() && unit.Status != model.UnitOccupied {
		unit.Status = req.Status
	}

	if err := s.repo.PutUnit(ctx, unit); err != nil {
		return model.Unit{}, errors.Wrap(err, "put unit")
	}
	return unit, nil
}

func (s *Service) DeleteUnit(ctx context.Context, id string) error {
	return s.repo.DeleteUnit(ctx, id)
}

// FinishMaintenance releases a unit from the workshop.
func (s *Service) FinishMaintenance(ctx context.Context, id string) (model.Unit, error) {
	unit, err := s.repo.GetUnit(ctx, id)
	if err != nil {
		return model.Unit{}, errors.Wrap(err, "get unit")
	}
	if unit.Status != model.UnitMaintenance {
		verr := errs.NewValidationError()
		verr.Add("status", "unit is not under maintenance")
		return model.Unit{}, verr
	}

	unit.Status = model.UnitAvailable
	if err := s.repo.PutUnit(ctx, unit); err != nil {
		return model.Unit{}, errors.Wrap(err, "put unit")
	}
	return unit, nil
}
