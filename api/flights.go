package api

import (
	"errors"
	"net/http"

	"github.com/arjunpn/airticket/internal/domain"
	"github.com/arjunpn/airticket/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	ID          string          `json:"id"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	DistanceKm  decimal.Decimal `json:"distance_km"`
	RatePerKm   decimal.Decimal `json:"rate_per_km"`
	FareRule    string          `json:"fare_rule"`
	BaseFare    string          `json:"base_fare"`
	BookedSeats []string        `json:"booked_seats"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrFlightNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flightResponse{
		ID:          flight.ID,
		Origin:      flight.Origin,
		Destination: flight.Destination,
		DistanceKm:  flight.DistanceKm,
		RatePerKm:   flight.RatePerKm,
		FareRule:    string(flight.Rule),
		BaseFare:    flight.Fare().StringFixed(2),
		BookedSeats: flight.BookedSeats(),
	})
}
