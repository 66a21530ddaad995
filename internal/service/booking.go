package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/renthub/rental-service/internal/errs"
	"github.com/renthub/rental-service/internal/model"
)

func (s *Service) GetBooking(ctx context.Context, id string) (model.Booking, error) {
	return s.repo.GetBooking(ctx, id)
}

func (s *Service) ListBookings(ctx context.Context) ([]model.Booking, error) {
	return s.repo.ListBookings(ctx)
}

// CreateBooking validates the input, prices it, persists the booking
// and synchronizes the status of every referenced unit.
func (s *Service) CreateBooking(ctx context.Context, input model.BookingInput) (model.Booking, error) {
	s.bookingMu.Lock()
	defer s.bookingMu.Unlock()

	if err := s.validateBooking(ctx, input); err != nil {
		return model.Booking{}, err
	}

	booking, err := s.buildBooking(ctx, uuid.NewString(), input)
	if err != nil {
		return model.Booking{}, err
	}

	if err := s.saveBooking(ctx, booking, nil); err != nil {
		return model.Booking{}, err
	}

	s.publish(BookingEvent{
		Type:      EventBookingCreated,
		BookingID: booking.ID,
		TenantID:  booking.TenantID,
		UnitIDs:   booking.UnitIDs,
		Status:    booking.Status,
		Total:     booking.TotalPrice,
		At:        s.now(),
	})
	return booking, nil
}

// UpdateBooking replaces a booking in place. Units of the previous
// assignment are reverted before the new assignment is applied, so a
// unit kept across the edit ends in the new booking's target state.
func (s *Service) UpdateBooking(ctx context.Context, id string, input model.BookingInput) (model.Booking, error) {
	s.bookingMu.Lock()
	defer s.bookingMu.Unlock()

	previous, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return model.Booking{}, errors.Wrap(err, "get booking")
	}
	if err := s.validateBooking(ctx, input); err != nil {
		return model.Booking{}, err
	}

	booking, err := s.buildBooking(ctx, id, input)
	if err != nil {
		return model.Booking{}, err
	}

	if err := s.saveBooking(ctx, booking, previous.UnitIDs); err != nil {
		return model.Booking{}, err
	}

	s.publish(BookingEvent{
		Type:      EventBookingUpdated,
		BookingID: booking.ID,
		TenantID:  booking.TenantID,
		UnitIDs:   booking.UnitIDs,
		Status:    booking.Status,
		Total:     booking.TotalPrice,
		At:        s.now(),
	})
	return booking, nil
}

// DeleteBooking removes the record. Only a booking still in Active
// status holds claims on units, so only then are they reset.
func (s *Service) DeleteBooking(ctx context.Context, id string) error {
	s.bookingMu.Lock()
	defer s.bookingMu.Unlock()

	booking, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return errors.Wrap(err, "get booking")
	}

	if booking.Status == model.BookingActive {
		if err := s.revertUnits(ctx, booking.UnitIDs); err != nil {
			return err
		}
	}

	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return errors.Wrap(err, "delete booking")
	}

	s.publish(BookingEvent{
		Type:      EventBookingDeleted,
		BookingID: booking.ID,
		TenantID:  booking.TenantID,
		UnitIDs:   booking.UnitIDs,
		Status:    booking.Status,
		Total:     booking.TotalPrice,
		At:        s.now(),
	})
	return nil
}

// validateBooking performs every read the operation needs before any
// write happens. A returned error means nothing was mutated.
func (s *Service) validateBooking(ctx context.Context, input model.BookingInput) error {
	verr := errs.NewValidationError()

	if input.TenantID == "" {
		verr.Add("tenantId", "provide a tenant")
	} else if _, err := s.repo.GetTenant(ctx, input.TenantID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			verr.Add("tenantId", "tenant does not exist")
		} else {
			return err
		}
	}

	if len(input.UnitIDs) == 0 {
		verr.Add("unitIds", "select at least one unit")
	}

	if !input.StartDate.IsZero() && !input.EndDate.IsZero() &&
		input.EndDate.Before(input.StartDate.Time) {
		verr.Add("endDate", "end date must not precede start date")
	}

	if input.IsDelivery {
		if input.Delivery == nil {
			verr.Add("deliveryInfo", "provide delivery details")
		} else {
			if input.Delivery.DestinationAddress == "" {
				verr.Add("deliveryInfo.destinationAddress", "provide a destination address")
			}
			if input.Delivery.ScheduledTime == "" {
				verr.Add("deliveryInfo.scheduledTime", "provide a scheduled time")
			}
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func (s *Service) buildBooking(ctx context.Context, id string, input model.BookingInput) (model.Booking, error) {
	units, err := s.unitsByID(ctx, input.UnitIDs)
	if err != nil {
		return model.Booking{}, err
	}
	quote := buildQuote(units, input)

	status := input.Status
	if status == "" {
		status = model.BookingActive
	}

	var delivery *model.DeliveryInfo
	if input.IsDelivery && input.Delivery != nil {
		cp := *input.Delivery
		delivery = &cp
	}

	return model.Booking{
		ID:            id,
		TenantID:      input.TenantID,
		UnitIDs:       input.UnitIDs,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		TotalPrice:    quote.Total,
		CustomFee:     input.CustomFee,
		Discount:      input.Discount,
		DownPayment:   input.DownPayment,
		Remaining:     quote.Remaining,
		PaymentMethod: input.PaymentMethod,
		Guarantees:    input.Guarantees,
		IsDelivery:    input.IsDelivery,
		Delivery:      delivery,
		Status:        status,
		Notes:         input.Notes,
	}, nil
}

// saveBooking persists the record and runs the two-phase unit sync:
// the full previous assignment is reverted to Available first, then the
// new assignment takes the booking's target state. Order matters.
func (s *Service) saveBooking(ctx context.Context, booking model.Booking, prevUnitIDs []string) error {
	if err := s.repo.PutBooking(ctx, booking); err != nil {
		return errors.Wrap(err, "put booking")
	}

	if err := s.revertUnits(ctx, prevUnitIDs); err != nil {
		return err
	}
	return s.applyUnits(ctx, booking)
}

// unitTargetStatus resolves the unit status a booking claims. Overlap
// between active bookings is not checked: the most recent write wins,
// matching the engine's single-authority model.
func unitTargetStatus(booking model.Booking) model.UnitStatus {
	if booking.Status != model.BookingActive {
		return model.UnitAvailable
	}
	if booking.IsDelivery && booking.Delivery != nil {
		if booking.Delivery.Direction == model.DirectionPickUp {
			return model.UnitAwaitingPickup
		}
		return model.UnitOutForDelivery
	}
	return model.UnitOccupied
}

func (s *Service) revertUnits(ctx context.Context, unitIDs []string) error {
	for _, id := range unitIDs {
		unit, err := s.repo.GetUnit(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				s.log.Debug("revert skips unknown unit", zap.String("unitId", id))
				continue
			}
			return errors.Wrap(err, "get unit")
		}
		unit.Status = model.UnitAvailable
		unit.TenantID = ""
		unit.Delivery = nil
		if err := s.repo.PutUnit(ctx, unit); err != nil {
			return errors.Wrap(err, "put unit")
		}
	}
	return nil
}

func (s *Service) applyUnits(ctx context.Context, booking model.Booking) error {
	target := unitTargetStatus(booking)
	for _, id := range booking.UnitIDs {
		unit, err := s.repo.GetUnit(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				s.log.Debug("apply skips unknown unit", zap.String("unitId", id))
				continue
			}
			return errors.Wrap(err, "get unit")
		}

		unit.Status = target
		if target == model.UnitAvailable {
			unit.TenantID = ""
			unit.Delivery = nil
		} else {
			unit.TenantID = booking.TenantID
			if booking.IsDelivery && booking.Delivery != nil {
				cp := *booking.Delivery
				unit.Delivery = &cp
			} else {
				unit.Delivery = nil
			}
		}

		if err := s.repo.PutUnit(ctx, unit); err != nil {
			return errors.Wrap(err, "put unit")
		}
	}
	return nil
}
