package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Redis      RedisConfig      `yaml:"redis"`
	Kafka      KafkaConfig      `yaml:"kafka"`
	Booking    BookingConfig    `yaml:"booking"`
	Categories []CategoryConfig `yaml:"categories"`
	Catalog    CatalogConfig    `yaml:"catalog"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	SeatHoldTTLSeconds     int `yaml:"seat_hold_ttl_seconds"`
	FlightsCacheTTLSeconds int `yaml:"flights_cache_ttl_seconds"`
}

// CategoryConfig defines one booking tier. Seat ranges live here and not in
// code: the engine treats them as configuration.
type CategoryConfig struct {
	Class          string  `yaml:"class"`
	Name           string  `yaml:"name"`
	Multiplier     float64 `yaml:"multiplier"`
	SeatRangeStart int     `yaml:"seat_range_start"`
	SeatRangeEnd   int     `yaml:"seat_range_end"`
	Benefits       string  `yaml:"benefits"`
}

type CatalogConfig struct {
	Flights []FlightConfig `yaml:"flights"`
}

type FlightConfig struct {
	Number      string  `yaml:"number"`
	Origin      string  `yaml:"origin"`
	Destination string  `yaml:"destination"`
	DistanceKm  float64 `yaml:"distance_km"`
	RatePerKm   float64 `yaml:"rate_per_km"`
	RedEye      bool    `yaml:"red_eye"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
