package email

import (
	"context"
	"fmt"

	"github.com/arjunpn/airticket/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

// Send is a stub: real delivery is not wired up, the worker just logs what
// would go out.
func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	fmt.Printf("notify %s: %s for flight %s seat %s (booking #%d)\n",
		event.Passenger, event.Type, event.FlightID, event.Seat, event.BookingID)
	return nil
}
