package repository

import (
	"sync"

	"github.com/arjunpn/airticket/internal/domain"
)

type BookingLedger interface {
	Append(booking *domain.Booking) error
	GetByID(id int64) (*domain.Booking, error)
	Remove(id int64) (*domain.Booking, error)
	List() []*domain.Booking
}

// MemoryBookingLedger stores live bookings in creation order and assigns
// identifiers from a counter that starts at 1 and never regresses, so ids
// are never reused even after cancellations.
type MemoryBookingLedger struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	nextID   int64
}

func NewBookingLedger() *MemoryBookingLedger {
	return &MemoryBookingLedger{nextID: 1}
}

// Append assigns the next identifier to the booking and stores it.
func (l *MemoryBookingLedger) Append(booking *domain.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	booking.ID = l.nextID
	l.nextID++
	l.bookings = append(l.bookings, booking)
	return nil
}

func (l *MemoryBookingLedger) GetByID(id int64) (*domain.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, b := range l.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (l *MemoryBookingLedger) Remove(id int64) (*domain.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, b := range l.bookings {
		if b.ID == id {
			l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)
			return b, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

// List returns the live bookings in chronological order.
func (l *MemoryBookingLedger) List() []*domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*domain.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

var _ BookingLedger = (*MemoryBookingLedger)(nil)
