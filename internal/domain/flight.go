package domain

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

type FareRule string

const (
	FareRuleNormal FareRule = "NORMAL"
	FareRuleRedEye FareRule = "RED_EYE"
)

// Fixed red-eye rebate applied on top of the normal fare formula.
var redEyeDiscount = decimal.NewFromFloat(0.10)

// Flight is one catalog entry. Route, distance and rate are immutable after
// construction; only the booked-seat set changes, and only through BookSeat
// and ReleaseSeat. The set carries its own lock because the read views
// (Summary, BookedSeats) are served concurrently with bookings; the booking
// service's mutex only serializes writers against each other.
type Flight struct {
	ID          string
	Origin      string
	Destination string
	DistanceKm  decimal.Decimal
	RatePerKm   decimal.Decimal
	Rule        FareRule

	mu          sync.RWMutex
	bookedSeats map[string]struct{}
}

func NewFlight(id, origin, destination string, distanceKm, ratePerKm decimal.Decimal, rule FareRule) *Flight {
	return &Flight{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		DistanceKm:  distanceKm,
		RatePerKm:   ratePerKm,
		Rule:        rule,
		bookedSeats: make(map[string]struct{}),
	}
}

// Fare is the base ticket fare before the category multiplier:
// distance x rate, with a 10% discount for red-eye flights.
func (f *Flight) Fare() decimal.Decimal {
	fare := f.DistanceKm.Mul(f.RatePerKm)
	if f.Rule == FareRuleRedEye {
		fare = fare.Mul(decimal.NewFromInt(1).Sub(redEyeDiscount))
	}
	return fare
}

func (f *Flight) IsSeatAvailable(seatCode string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, booked := f.bookedSeats[seatCode]
	return !booked
}

// BookSeat marks a seat as taken. Availability is the caller's problem: the
// booking service checks it under its own lock before calling.
func (f *Flight) BookSeat(seatCode string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookedSeats[seatCode] = struct{}{}
}

// ReleaseSeat frees a previously booked seat. Releasing a seat the flight
// does not hold returns ErrSeatNotBooked: the ledger and the seat set have
// diverged.
func (f *Flight) ReleaseSeat(seatCode string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, booked := f.bookedSeats[seatCode]; !booked {
		return fmt.Errorf("flight %s seat %s: %w", f.ID, seatCode, ErrSeatNotBooked)
	}
	delete(f.bookedSeats, seatCode)
	return nil
}

// BookedSeats returns a sorted copy of the booked seat codes.
func (f *Flight) BookedSeats() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	seats := make([]string, 0, len(f.bookedSeats))
	for seat := range f.bookedSeats {
		seats = append(seats, seat)
	}
	sort.Strings(seats)
	return seats
}

// FlightSummary is the read model for flight listings. Exported fields only,
// so it survives the JSON round-trip through the cache.
type FlightSummary struct {
	ID          string          `json:"id"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	DistanceKm  decimal.Decimal `json:"distance_km"`
	RatePerKm   decimal.Decimal `json:"rate_per_km"`
	Rule        FareRule        `json:"fare_rule"`
	BaseFare    decimal.Decimal `json:"base_fare"`
	SeatsBooked int             `json:"seats_booked"`
}

func (f *Flight) Summary() FlightSummary {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return FlightSummary{
		ID:          f.ID,
		Origin:      f.Origin,
		Destination: f.Destination,
		DistanceKm:  f.DistanceKm,
		RatePerKm:   f.RatePerKm,
		Rule:        f.Rule,
		BaseFare:    f.Fare(),
		SeatsBooked: len(f.bookedSeats),
	}
}
