package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

type UnitStatus string

const (
	UnitAvailable      UnitStatus = "AVAILABLE"
	UnitOccupied       UnitStatus = "OCCUPIED"
	UnitMaintenance    UnitStatus = "MAINTENANCE"
	UnitOutForDelivery UnitStatus = "OUT_FOR_DELIVERY"
	UnitAwaitingPickup UnitStatus = "AWAITING_PICKUP"
)

// InLogistics reports whether the unit is currently on the road,
// either being delivered to a tenant or waiting to be picked up.
func (s UnitStatus) InLogistics() bool {
	return s == UnitOutForDelivery || s == UnitAwaitingPickup
}

type UnitCategory string

const (
	CategoryCamera    UnitCategory = "CAMERA"
	CategoryPhone     UnitCategory = "PHONE"
	CategoryLens      UnitCategory = "LENS"
	CategoryAccessory UnitCategory = "ACCESSORY"
)

type BookingStatus string

const (
	BookingActive    BookingStatus = "ACTIVE"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Direction string

const (
	DirectionDeliver Direction = "DELIVER"
	DirectionPickUp  Direction = "PICKUP"
)

type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCash     PaymentMethod = "CASH"
	PaymentQRIS     PaymentMethod = "QRIS"
	PaymentDebit    PaymentMethod = "DEBIT"
	PaymentCOD      PaymentMethod = "COD"
)

type MembershipStatus string

const (
	MemberActive      MembershipStatus = "ACTIVE"
	MemberPast        MembershipStatus = "PAST"
	MemberBlacklisted MembershipStatus = "BLACKLISTED"
)

// Money is an amount in whole IDR.
type Money = int64

const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysUntil returns the number of calendar days from d to other.
// Negative when other precedes d.
func (d Date) DaysUntil(other Date) int {
	return int(other.Sub(d.Time) / (24 * time.Hour))
}

func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("parse date %s: not a string", s)
	}
	t, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	t, ok := src.(time.Time)
	if !ok {
		return fmt.Errorf("scan date: unexpected type %T", src)
	}
	*d = DateOf(t)
	return nil
}

// DeliveryInfo describes one courier job attached to a booking and,
// while the booking is active, mirrored onto the affected units.
type DeliveryInfo struct {
	CourierName        string    `json:"courierName"`
	DestinationAddress string    `json:"destinationAddress"`
	ScheduledTime      string    `json:"scheduledTime"`
	Fee                Money     `json:"fee"`
	Direction          Direction `json:"direction"`
}

// UnitSpecs is the optional spec sheet of a unit.
type UnitSpecs struct {
	Color         string `json:"color,omitempty"`
	Storage       string `json:"storage,omitempty"`
	Warranty      string `json:"warranty,omitempty"`
	SerialNumber  string `json:"serialNumber,omitempty"`
	BatteryHealth int    `json:"batteryHealth,omitempty"`
	ShutterCount  int    `json:"shutterCount,omitempty"`
	SensorType    string `json:"sensorType,omitempty"`
}

// Unit is a single rentable asset. TenantID and Delivery are derived
// state owned by the booking lifecycle: they are set iff Status demands
// them and must never be written by anything else.
type Unit struct {
	ID          string        `json:"id" db:"id"`
	Name        string        `json:"name" db:"name"`
	Category    UnitCategory  `json:"category" db:"category"`
	DailyRate   Money         `json:"dailyRate" db:"daily_rate"`
	PromoRate   Money         `json:"promoRate,omitempty" db:"promo_rate"`
	Status      UnitStatus    `json:"status" db:"status"`
	Location    string        `json:"location" db:"location"`
	Features    []string      `json:"features" db:"features"`
	Description string        `json:"description" db:"description"`
	Specs       *UnitSpecs    `json:"specs,omitempty" db:"specs"`
	TenantID    string        `json:"tenantId,omitempty" db:"tenant_id"`
	Delivery    *DeliveryInfo `json:"deliveryInfo,omitempty" db:"delivery"`
}

// EffectiveRate is the promo rate when set and strictly cheaper than
// the daily rate, else the daily rate.
func (u Unit) EffectiveRate() Money {
	if u.PromoRate > 0 && u.PromoRate < u.DailyRate {
		return u.PromoRate
	}
	return u.DailyRate
}

type Tenant struct {
	ID         string           `json:"id" db:"id"`
	Name       string           `json:"name" db:"name"`
	Phone      string           `json:"phone" db:"phone"`
	Email      string           `json:"email" db:"email"`
	Address    string           `json:"address" db:"address"`
	JoinDate   Date             `json:"joinDate" db:"join_date"`
	Membership MembershipStatus `json:"membershipStatus" db:"membership"`
}

// Booking is a rental contract. It references its tenant and units by
// id only; deleting a booking never deletes either.
type Booking struct {
	ID            string        `json:"id" db:"id"`
	TenantID      string        `json:"tenantId" db:"tenant_id"`
	UnitIDs       []string      `json:"unitIds" db:"unit_ids"`
	StartDate     Date          `json:"startDate" db:"start_date"`
	EndDate       Date          `json:"endDate" db:"end_date"`
	TotalPrice    Money         `json:"totalPrice" db:"total_price"`
	CustomFee     Money         `json:"customFee,omitempty" db:"custom_fee"`
	Discount      Money         `json:"discount,omitempty" db:"discount"`
	DownPayment   Money         `json:"downPayment" db:"down_payment"`
	Remaining     Money         `json:"remainingBalance" db:"remaining"`
	PaymentMethod PaymentMethod `json:"paymentMethod" db:"payment_method"`
	Guarantees    []string      `json:"guarantees" db:"guarantees"`
	IsDelivery    bool          `json:"isDelivery" db:"is_delivery"`
	Delivery      *DeliveryInfo `json:"deliveryInfo,omitempty" db:"delivery"`
	Status        BookingStatus `json:"status" db:"status"`
	Notes         string        `json:"notes,omitempty" db:"notes"`
}
