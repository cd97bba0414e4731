package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/arjunpn/airticket/api"
	"github.com/arjunpn/airticket/config"
	"github.com/arjunpn/airticket/internal/monitoring"
	"github.com/arjunpn/airticket/internal/service/booking"
	"github.com/arjunpn/airticket/internal/service/flights"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) error {
	router := gin.Default()

	flightsGroup := router.Group("/api/v1/flights")
	api.NewFlightHandler(flightSvc).Register(flightsGroup)

	bookingsGroup := router.Group("/api/v1/bookings")
	api.NewBookingHandler(bookingSvc).Register(bookingsGroup)

	router.GET("/metrics", gin.WrapH(monitoring.Handler()))

	handler := http.NewServeMux()
	handler.Handle("/", router)

	if cfg.HTTP.SwaggerDir != "" {
		fs := http.FileServer(http.Dir(cfg.HTTP.SwaggerDir))
		handler.Handle("/swagger/", http.StripPrefix("/swagger/", fs))
		handler.Handle("/docs/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/airticket.swagger.json"),
		))
	}

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}
