package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestFlight(rule FareRule) *Flight {
	return NewFlight("SJ101", "Mumbai", "Delhi",
		decimal.NewFromInt(1000), decimal.NewFromFloat(3.0), rule)
}

func TestFlight_Fare_Normal(t *testing.T) {
	flight := newTestFlight(FareRuleNormal)

	assert.Equal(t, "3000.00", flight.Fare().StringFixed(2))
}

func TestFlight_Fare_RedEye(t *testing.T) {
	flight := newTestFlight(FareRuleRedEye)

	assert.Equal(t, "2700.00", flight.Fare().StringFixed(2))
}

func TestFlight_Fare_Deterministic(t *testing.T) {
	flight := newTestFlight(FareRuleRedEye)

	first := flight.Fare()
	for i := 0; i < 5; i++ {
		assert.True(t, first.Equal(flight.Fare()))
	}
}

func TestFlight_BookAndReleaseSeat(t *testing.T) {
	flight := newTestFlight(FareRuleNormal)

	assert.True(t, flight.IsSeatAvailable("F1"))

	flight.BookSeat("F1")
	assert.False(t, flight.IsSeatAvailable("F1"))
	assert.True(t, flight.IsSeatAvailable("F2"))

	err := flight.ReleaseSeat("F1")
	assert.NoError(t, err)
	assert.True(t, flight.IsSeatAvailable("F1"))
}

func TestFlight_ReleaseSeat_NotBooked(t *testing.T) {
	flight := newTestFlight(FareRuleNormal)

	err := flight.ReleaseSeat("F1")
	assert.ErrorIs(t, err, ErrSeatNotBooked)
}

func TestFlight_BookedSeats_Sorted(t *testing.T) {
	flight := newTestFlight(FareRuleNormal)
	flight.BookSeat("E31")
	flight.BookSeat("B11")
	flight.BookSeat("B12")

	assert.Equal(t, []string{"B11", "B12", "E31"}, flight.BookedSeats())
}

func TestFlight_Summary(t *testing.T) {
	flight := newTestFlight(FareRuleNormal)
	flight.BookSeat("F1")
	flight.BookSeat("F2")

	summary := flight.Summary()
	assert.Equal(t, "SJ101", summary.ID)
	assert.Equal(t, FareRuleNormal, summary.Rule)
	assert.Equal(t, 2, summary.SeatsBooked)
	assert.True(t, flight.Fare().Equal(summary.BaseFare))
}
