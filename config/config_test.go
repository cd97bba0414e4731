package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	content := []byte(`
http:
  address: ":8080"
booking:
  seat_hold_ttl_seconds: 60
  flights_cache_ttl_seconds: 30
categories:
  - class: "FIRST"
    name: "First Class"
    multiplier: 3.0
    seat_range_start: 1
    seat_range_end: 10
    benefits: "Premium seats"
catalog:
  flights:
    - { number: "SJ101", origin: "Mumbai", destination: "Delhi", distance_km: 1150, rate_per_km: 3.5, red_eye: false }
    - { number: "SJ201", origin: "Kochi", destination: "Mumbai", distance_km: 850, rate_per_km: 3.5, red_eye: true }
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 60, cfg.Booking.SeatHoldTTLSeconds)
	assert.Len(t, cfg.Categories, 1)
	assert.Equal(t, 10, cfg.Categories[0].SeatRangeEnd)
	assert.Len(t, cfg.Catalog.Flights, 2)
	assert.True(t, cfg.Catalog.Flights[1].RedEye)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("does-not-exist.yaml")
	assert.Error(t, err)
}
