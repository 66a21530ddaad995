package model

type CreateUnitRequest struct {
	Name        string       `json:"name" validate:"required"`
	Category    UnitCategory `json:"category" validate:"required,oneof=CAMERA PHONE LENS ACCESSORY"`
	DailyRate   Money        `json:"dailyRate" validate:"gte=0"`
	PromoRate   Money        `json:"promoRate" validate:"gte=0"`
	Status      UnitStatus   `json:"status" validate:"omitempty,oneof=AVAILABLE MAINTENANCE"`
	Location    string       `json:"location"`
	Features    []string     `json:"features"`
	Description string       `json:"description"`
	Specs       *UnitSpecs   `json:"specs"`
}

type CreateTenantRequest struct {
	Name       string           `json:"name" validate:"required"`
	Phone      string           `json:"phone"`
	Email      string           `json:"email" validate:"omitempty,email"`
	Address    string           `json:"address"`
	Membership MembershipStatus `json:"membershipStatus" validate:"omitempty,oneof=ACTIVE PAST BLACKLISTED"`
}

// BookingInput carries everything a caller may decide about a booking.
// Prices are not part of it: totals and the remaining balance are always
// recomputed server side.
type BookingInput struct {
	TenantID      string        `json:"tenantId" validate:"required"`
	UnitIDs       []string      `json:"unitIds" validate:"required,min=1"`
	StartDate     Date          `json:"startDate" validate:"required"`
	EndDate       Date          `json:"endDate" validate:"required"`
	CustomFee     Money         `json:"customFee"`
	Discount      Money         `json:"discount"`
	DownPayment   Money         `json:"downPayment"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,oneof=TRANSFER CASH QRIS DEBIT COD"`
	Guarantees    []string      `json:"guarantees"`
	IsDelivery    bool          `json:"isDelivery"`
	Delivery      *DeliveryInfo `json:"deliveryInfo"`
	Status        BookingStatus `json:"status" validate:"omitempty,oneof=ACTIVE COMPLETED CANCELLED"`
	Notes         string        `json:"notes"`
}

type DescribeUnitRequest struct {
	Name     string       `json:"name" validate:"required"`
	Category UnitCategory `json:"category" validate:"required"`
	Features []string     `json:"features"`
	Location string       `json:"location"`
}
