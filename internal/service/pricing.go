package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/renthub/rental-service/internal/errs"
	"github.com/renthub/rental-service/internal/model"
)

// RentalDays is the chargeable day count of a date range. Equal dates
// count as zero days; a reversed range charges its absolute length.
func RentalDays(start, end model.Date) int {
	days := start.DaysUntil(end)
	if days < 0 {
		days = -days
	}
	return days
}

// BasePrice sums the effective daily rate of every unit and multiplies
// by the rental day count.
func BasePrice(units []model.Unit, start, end model.Date) model.Money {
	days := RentalDays(start, end)
	var rateSum model.Money
	for _, u := range units {
		rateSum += u.EffectiveRate()
	}
	return rateSum * model.Money(days)
}

// Total clamps the subtotal at zero. The fee and discount are applied
// as given, without individual clamping.
func Total(base, customFee, deliveryFee, discount model.Money) model.Money {
	subtotal := base + customFee + deliveryFee - discount
	if subtotal < 0 {
		return 0
	}
	return subtotal
}

// RemainingBalance is deliberately not clamped: a negative balance
// records a real-world overpayment and must stay visible.
func RemainingBalance(total, downPayment model.Money) model.Money {
	return total - downPayment
}

// Quote prices a booking being composed. Units the store does not know
// are skipped rather than failing the preview.
func (s *Service) Quote(ctx context.Context, input model.BookingInput) (model.Quote, error) {
	if len(input.UnitIDs) == 0 {
		return model.Quote{}, errs.ErrValidation
	}
	units, err := s.unitsByID(ctx, input.UnitIDs)
	if err != nil {
		return model.Quote{}, err
	}
	return buildQuote(units, input), nil
}

func buildQuote(units []model.Unit, input model.BookingInput) model.Quote {
	var deliveryFee model.Money
	if input.IsDelivery && input.Delivery != nil {
		deliveryFee = input.Delivery.Fee
	}
	base := BasePrice(units, input.StartDate, input.EndDate)
	total := Total(base, input.CustomFee, deliveryFee, input.Discount)
	return model.Quote{
		RentalDays:  RentalDays(input.StartDate, input.EndDate),
		BasePrice:   base,
		DeliveryFee: deliveryFee,
		Total:       total,
		Remaining:   RemainingBalance(total, input.DownPayment),
	}
}

func (s *Service) unitsByID(ctx context.Context, ids []string) ([]model.Unit, error) {
	units := make([]model.Unit, 0, len(ids))
	for _, id := range ids {
		u, err := s.repo.GetUnit(ctx, id)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				continue
			}
			return nil, err
		}
		units = append(units, u)
	}
	return units, nil
}
