package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arjunpn/airticket/config"
	"github.com/arjunpn/airticket/internal/bootstrap"
	"github.com/arjunpn/airticket/internal/cache"
	"github.com/arjunpn/airticket/internal/domain"
	"github.com/arjunpn/airticket/internal/kafka"
	"github.com/arjunpn/airticket/internal/repository"
	"github.com/arjunpn/airticket/internal/service/booking"
	"github.com/arjunpn/airticket/internal/service/flights"
	"github.com/shopspring/decimal"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	categories, err := domain.NewCategorySet(buildCategories(cfg.Categories))
	if err != nil {
		log.Fatalf("build categories: %v", err)
	}

	catalog := repository.NewFlightCatalog()
	seedCatalog(catalog, cfg.Catalog.Flights)

	ledger := repository.NewBookingLedger()

	var flightCache *cache.RedisCache
	bookingOpts := []booking.BookingServiceOption{}
	if cfg.Redis.Addr != "" {
		flightCache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.FlightsCacheTTLSeconds)*time.Second)
		bookingOpts = append(bookingOpts, booking.WithCache(flightCache, time.Duration(cfg.Booking.SeatHoldTTLSeconds)*time.Second))
	}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	flightService := newFlightService(catalog, flightCache, cfg)
	bookingService := booking.NewBookingService(ledger, catalog, categories, bookingOpts...)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// newFlightService avoids handing the service a typed-nil cache interface.
func newFlightService(catalog repository.FlightCatalog, redisCache *cache.RedisCache, cfg *config.Config) *flights.FlightService {
	ttl := time.Duration(cfg.Booking.FlightsCacheTTLSeconds) * time.Second
	if redisCache == nil {
		return flights.NewFlightService(catalog, nil, ttl)
	}
	return flights.NewFlightService(catalog, redisCache, ttl)
}

func buildCategories(configs []config.CategoryConfig) []domain.Category {
	if len(configs) == 0 {
		return domain.DefaultCategories()
	}
	categories := make([]domain.Category, 0, len(configs))
	for _, c := range configs {
		categories = append(categories, domain.Category{
			Class:          domain.CategoryClass(c.Class),
			Name:           c.Name,
			Multiplier:     decimal.NewFromFloat(c.Multiplier),
			SeatRangeStart: c.SeatRangeStart,
			SeatRangeEnd:   c.SeatRangeEnd,
			Benefits:       c.Benefits,
		})
	}
	return categories
}

func seedCatalog(catalog repository.FlightCatalog, flights []config.FlightConfig) {
	for _, f := range flights {
		rule := domain.FareRuleNormal
		if f.RedEye {
			rule = domain.FareRuleRedEye
		}
		catalog.Add(domain.NewFlight(
			f.Number,
			f.Origin,
			f.Destination,
			decimal.NewFromFloat(f.DistanceKm),
			decimal.NewFromFloat(f.RatePerKm),
			rule,
		))
	}
	log.Printf("seeded %d flights", len(flights))
}
