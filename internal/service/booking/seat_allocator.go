package booking

import (
	"github.com/arjunpn/airticket/internal/domain"
)

// SeatAllocator hands out the lowest-numbered free seat in a category's
// range. First-fit in ascending order is deliberate: identical state always
// yields the same seat code.
type SeatAllocator struct{}

func NewSeatAllocator() SeatAllocator {
	return SeatAllocator{}
}

func (SeatAllocator) FindAvailableSeat(flight *domain.Flight, category domain.Category) (string, error) {
	for i := category.SeatRangeStart; i <= category.SeatRangeEnd; i++ {
		seatCode := category.SeatCode(i)
		if flight.IsSeatAvailable(seatCode) {
			return seatCode, nil
		}
	}
	return "", domain.ErrNoSeatsAvailable
}
