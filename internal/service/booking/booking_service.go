package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/arjunpn/airticket/internal/domain"
	"github.com/arjunpn/airticket/internal/monitoring"
	"github.com/arjunpn/airticket/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
}

type Cache interface {
	AcquireSeatLock(ctx context.Context, flightID, seatCode string, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightID, seatCode string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService owns the booking ledger workflow. The mutex serializes the
// check-then-book-then-append sequence of CreateBooking and the
// release-then-remove sequence of CancelBooking, so two concurrent callers
// can never be handed the same seat.
type BookingService struct {
	ledger             repository.BookingLedger
	catalog            repository.FlightCatalog
	categories         *domain.CategorySet
	allocator          SeatAllocator
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	holdTTL            time.Duration

	mu sync.Mutex
}

// CreateBookingInput carries already-validated primitives from the
// presentation layer. Seat is optional: empty means "allocate for me".
type CreateBookingInput struct {
	PassengerName string `json:"passenger_name"`
	FlightID      string `json:"flight_id"`
	Category      string `json:"category"`
	Seat          string `json:"seat,omitempty"`
}

type BookingServiceOption func(*BookingService)

func WithCache(cache Cache, holdTTL time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
		s.holdTTL = holdTTL
	}
}

func WithProducer(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	ledger repository.BookingLedger,
	catalog repository.FlightCatalog,
	categories *domain.CategorySet,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		ledger:     ledger,
		catalog:    catalog,
		categories: categories,
		allocator:  NewSeatAllocator(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.PassengerName == "" {
		return nil, errors.New("passenger name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	flight, err := s.catalog.GetByID(input.FlightID)
	if err != nil {
		monitoring.BookingFailed("flight_not_found")
		return nil, err
	}

	category, err := s.categories.Resolve(input.Category)
	if err != nil {
		monitoring.BookingFailed("invalid_category")
		return nil, err
	}

	seat := input.Seat
	if seat != "" {
		if !category.ContainsSeat(seat) {
			monitoring.BookingFailed("seat_unavailable")
			return nil, fmt.Errorf("seat %s is outside the %s range: %w", seat, category.Name, domain.ErrSeatUnavailable)
		}
		if !flight.IsSeatAvailable(seat) {
			monitoring.BookingFailed("seat_unavailable")
			return nil, fmt.Errorf("seat %s: %w", seat, domain.ErrSeatUnavailable)
		}
	} else {
		seat, err = s.allocator.FindAvailableSeat(flight, category)
		if err != nil {
			monitoring.BookingFailed("no_seats_available")
			monitoring.SeatRangeExhausted(category.Name)
			return nil, err
		}
	}

	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireSeatLock(ctx, flight.ID, seat, s.holdTTL)
		if err != nil {
			monitoring.BookingFailed("seat_lock")
			return nil, err
		}
		if !ok {
			monitoring.BookingFailed("seat_unavailable")
			return nil, fmt.Errorf("seat %s is held by another request: %w", seat, domain.ErrSeatUnavailable)
		}
		locked = true
	}

	flight.BookSeat(seat)

	booking := &domain.Booking{
		Reference:     uuid.NewString(),
		PassengerName: input.PassengerName,
		Flight:        flight,
		Category:      category,
		Seat:          seat,
		TicketCost:    flight.Fare().Mul(category.Multiplier),
		CreatedAt:     time.Now(),
	}

	if err := s.ledger.Append(booking); err != nil {
		// The seat must not stay booked without a ledger entry.
		if relErr := flight.ReleaseSeat(seat); relErr != nil {
			log.Printf("release seat after failed append: %v", relErr)
		}
		if locked {
			_ = s.cache.ReleaseSeatLock(ctx, flight.ID, seat)
		}
		monitoring.BookingFailed("ledger")
		return nil, err
	}

	monitoring.BookingCreated(category.Name)
	if err := s.publish(ctx, "booking_created", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for booking %d: %v", booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.ledger.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Release first, remove after. A release failure means the flight no
	// longer holds the seat the ledger says it does; keep the entry so the
	// broken state stays inspectable and surface the error.
	if err := booking.Flight.ReleaseSeat(booking.Seat); err != nil {
		return nil, fmt.Errorf("cancel booking %d: %w", id, err)
	}

	if _, err := s.ledger.Remove(id); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.ReleaseSeatLock(ctx, booking.Flight.ID, booking.Seat)
	}

	monitoring.BookingCancelled()
	if err := s.publish(ctx, "booking_cancelled", booking); err != nil {
		log.Printf("WARNING: failed to publish booking_cancelled event for booking %d: %v", booking.ID, err)
	}
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.ledger.GetByID(id)
}

func (s *BookingService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.ledger.List(), nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := bookingEvent(eventType, booking)
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
