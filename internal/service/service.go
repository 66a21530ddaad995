package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/renthub/rental-service/internal/model"
	"github.com/renthub/rental-service/internal/repository"
)

// BookingEvent is published after every committed booking mutation.
type BookingEvent struct {
	Type      string              `json:"type"`
	BookingID string              `json:"bookingId"`
	TenantID  string              `json:"tenantId"`
	UnitIDs   []string            `json:"unitIds"`
	Status    model.BookingStatus `json:"status"`
	Total     model.Money         `json:"total"`
	At        time.Time           `json:"at"`
}

const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)

type EventLog interface {
	Publish(event BookingEvent) error
}

type noopEventLog struct{}

func (noopEventLog) Publish(BookingEvent) error { return nil }

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events EventLog
	desc   Describer
	now    func() time.Time

	// Serializes booking writes so the revert and apply phases of one
	// operation are never interleaved with another writer's.
	bookingMu sync.Mutex
}

type Option func(*Service)

func WithEventLog(events EventLog) Option {
	return func(s *Service) { s.events = events }
}

func WithDescriber(d Describer) Option {
	return func(s *Service) { s.desc = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:    log,
		repo:   repo,
		events: noopEventLog{},
		desc:   FallbackDescriber{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) publish(event BookingEvent) {
	if err := s.events.Publish(event); err != nil {
		s.log.Warn("publish booking event",
			zap.String("type", event.Type),
			zap.String("bookingId", event.BookingID),
			zap.Error(err))
	}
}

func (s *Service) today() model.Date {
	return model.DateOf(s.now())
}
