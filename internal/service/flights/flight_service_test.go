package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arjunpn/airticket/internal/domain"
	"github.com/arjunpn/airticket/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetFlights(ctx context.Context) ([]domain.FlightSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightSummary), args.Error(1)
}

func (m *MockFlightCache) SetFlights(ctx context.Context, flights []domain.FlightSummary) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func seededCatalog() repository.FlightCatalog {
	catalog := repository.NewFlightCatalog()
	catalog.Add(domain.NewFlight("SJ101", "Mumbai", "Delhi",
		decimal.NewFromInt(1150), decimal.NewFromFloat(3.5), domain.FareRuleNormal))
	catalog.Add(domain.NewFlight("SJ201", "Kochi", "Mumbai",
		decimal.NewFromInt(850), decimal.NewFromFloat(3.5), domain.FareRuleRedEye))
	return catalog
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	catalog := seededCatalog()
	mockCache := &MockFlightCache{}
	service := NewFlightService(catalog, mockCache, time.Minute)

	ctx := context.Background()

	mockCache.On("GetFlights", ctx).Return(nil, nil).Once()
	mockCache.On("SetFlights", ctx, mock.AnythingOfType("[]domain.FlightSummary")).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "SJ101", result[0].ID)
	assert.Equal(t, domain.FareRuleRedEye, result[1].Rule)

	mockCache.AssertExpectations(t)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	catalog := seededCatalog()
	mockCache := &MockFlightCache{}
	service := NewFlightService(catalog, mockCache, time.Minute)

	ctx := context.Background()

	cached := []domain.FlightSummary{{ID: "SJ101", Origin: "Mumbai", Destination: "Delhi"}}
	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, result)

	mockCache.AssertExpectations(t)
}

func TestFlightService_List_CacheErrorFallsThrough(t *testing.T) {
	catalog := seededCatalog()
	mockCache := &MockFlightCache{}
	service := NewFlightService(catalog, mockCache, time.Minute)

	ctx := context.Background()

	mockCache.On("GetFlights", ctx).Return(nil, errors.New("redis down")).Once()
	mockCache.On("SetFlights", ctx, mock.AnythingOfType("[]domain.FlightSummary")).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, result, 2)

	mockCache.AssertExpectations(t)
}

func TestFlightService_List_WithoutCache(t *testing.T) {
	service := NewFlightService(seededCatalog(), nil, time.Minute)

	result, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestFlightService_GetByID(t *testing.T) {
	service := NewFlightService(seededCatalog(), nil, time.Minute)

	flight, err := service.GetByID(context.Background(), "SJ201")
	assert.NoError(t, err)
	assert.Equal(t, domain.FareRuleRedEye, flight.Rule)

	_, err = service.GetByID(context.Background(), "SJ999")
	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}
