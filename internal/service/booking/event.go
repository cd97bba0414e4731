package booking

import (
	"github.com/arjunpn/airticket/internal/domain"
	"github.com/arjunpn/airticket/internal/kafka"
)

func bookingEvent(eventType string, b *domain.Booking) kafka.BookingEvent {
	return kafka.BookingEvent{
		Type:       eventType,
		BookingID:  b.ID,
		Reference:  b.Reference,
		Passenger:  b.PassengerName,
		FlightID:   b.Flight.ID,
		Seat:       b.Seat,
		Category:   b.Category.Name,
		TicketCost: b.TicketCost.StringFixed(2),
		CreatedAt:  b.CreatedAt,
	}
}
