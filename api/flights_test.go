package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arjunpn/airticket/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.FlightSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FlightSummary), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights", nil)

	summaries := []domain.FlightSummary{
		{ID: "SJ101", Origin: "Mumbai", Destination: "Delhi", Rule: domain.FareRuleNormal},
	}
	mockService.On("List", c.Request.Context()).Return(summaries, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.FlightSummary
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "SJ101", response[0].ID)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "SJ101"}}
	c.Request = httptest.NewRequest("GET", "/flights/SJ101", nil)

	flight := domain.NewFlight("SJ101", "Mumbai", "Delhi",
		decimal.NewFromInt(1150), decimal.NewFromFloat(3.5), domain.FareRuleNormal)
	flight.BookSeat("F1")
	mockService.On("GetByID", c.Request.Context(), "SJ101").Return(flight, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response flightResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "SJ101", response.ID)
	assert.Equal(t, "4025.00", response.BaseFare)
	assert.Equal(t, []string{"F1"}, response.BookedSeats)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "SJ999"}}
	c.Request = httptest.NewRequest("GET", "/flights/SJ999", nil)

	mockService.On("GetByID", c.Request.Context(), "SJ999").Return(nil, domain.ErrFlightNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}
