package repository

import (
	"sync"

	"github.com/arjunpn/airticket/internal/domain"
)

type FlightCatalog interface {
	Add(flight *domain.Flight)
	List() []*domain.Flight
	GetByID(id string) (*domain.Flight, error)
}

// MemoryFlightCatalog keeps flights in registration order plus an id index.
// The catalog is the sole owner of the flight records; everything else holds
// references into it.
type MemoryFlightCatalog struct {
	mu      sync.RWMutex
	flights []*domain.Flight
	byID    map[string]*domain.Flight
}

func NewFlightCatalog() *MemoryFlightCatalog {
	return &MemoryFlightCatalog{byID: make(map[string]*domain.Flight)}
}

// Add appends a flight. Duplicate ids are the seeder's responsibility; the
// last registration wins the index slot.
func (c *MemoryFlightCatalog) Add(flight *domain.Flight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flights = append(c.flights, flight)
	c.byID[flight.ID] = flight
}

func (c *MemoryFlightCatalog) List() []*domain.Flight {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*domain.Flight, len(c.flights))
	copy(out, c.flights)
	return out
}

func (c *MemoryFlightCatalog) GetByID(id string) (*domain.Flight, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	flight, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	return flight, nil
}

var _ FlightCatalog = (*MemoryFlightCatalog)(nil)
