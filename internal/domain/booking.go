package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is one live ledger entry. Flight is a shared reference into the
// catalog, never a copy, so releasing the seat on cancellation touches the
// same record the allocator consulted. TicketCost is snapshotted at creation
// and never recomputed.
type Booking struct {
	ID            int64
	Reference     string
	PassengerName string
	Flight        *Flight
	Category      Category
	Seat          string
	TicketCost    decimal.Decimal
	CreatedAt     time.Time
}
