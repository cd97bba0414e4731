package flights

import (
	"context"
	"time"

	"github.com/arjunpn/airticket/internal/domain"
	"github.com/arjunpn/airticket/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.FlightSummary, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.FlightSummary, error)
	SetFlights(ctx context.Context, flights []domain.FlightSummary) error
}

// FlightService serves the flight views. The cache only covers the listing,
// which may be briefly stale on seat counts; seat allocation always goes
// through the live catalog record.
type FlightService struct {
	catalog  repository.FlightCatalog
	cache    FlightCache
	cacheTTL time.Duration
}

func NewFlightService(catalog repository.FlightCatalog, cache FlightCache, cacheTTL time.Duration) *FlightService {
	return &FlightService{catalog: catalog, cache: cache, cacheTTL: cacheTTL}
}

func (s *FlightService) List(ctx context.Context) ([]domain.FlightSummary, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights := s.catalog.List()
	summaries := make([]domain.FlightSummary, 0, len(flights))
	for _, f := range flights {
		summaries = append(summaries, f.Summary())
	}

	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, summaries)
	}
	return summaries, nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	return s.catalog.GetByID(id)
}

var _ FlightUseCase = (*FlightService)(nil)
