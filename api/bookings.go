package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/arjunpn/airticket/internal/domain"
	"github.com/arjunpn/airticket/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	PassengerName string `json:"passenger_name" binding:"required"`
	FlightID      string `json:"flight_id" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Seat          string `json:"seat"`
}

type bookingResponse struct {
	ID            int64  `json:"id"`
	Reference     string `json:"reference"`
	PassengerName string `json:"passenger_name"`
	FlightID      string `json:"flight_id"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Category      string `json:"category"`
	Seat          string `json:"seat"`
	Benefits      string `json:"benefits"`
	TicketCost    string `json:"ticket_cost"`
	CreatedAt     string `json:"created_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		PassengerName: req.PassengerName,
		FlightID:      req.FlightID,
		Category:      req.Category,
		Seat:          req.Seat,
	})
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(b))
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BookingHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}
	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}
	b, err := h.service.CancelBooking(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

// statusFromError maps the engine's error taxonomy onto HTTP statuses. The
// seat desync case is deliberately a 500: it indicates an internal invariant
// violation, not bad input.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrFlightNotFound), errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSeatUnavailable), errors.Is(err, domain.ErrNoSeatsAvailable):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSeatNotBooked):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		PassengerName: b.PassengerName,
		FlightID:      b.Flight.ID,
		Origin:        b.Flight.Origin,
		Destination:   b.Flight.Destination,
		Category:      b.Category.Name,
		Seat:          b.Seat,
		Benefits:      b.Category.Benefits,
		TicketCost:    b.TicketCost.StringFixed(2),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
