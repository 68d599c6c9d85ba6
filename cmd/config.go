package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"dronedelivery/internal/core/domain/model/drone"
)

// Configuration defaults, applied when a variable is unset or empty.
const (
	DefaultHTTPPort            = "8080"
	DefaultLogLevel            = "info"
	DefaultTickSchedule        = "@every 5s"
	DefaultTickDeltaMinutes    = "5"
	DefaultDispatchSchedule    = "@every 5s"
	DefaultLowBatteryThreshold = "50"
	DefaultRechargeCycles      = "3"
	DefaultFleet               = "Mufasa:10:6,Simba:8:6,Timão:5:6,Pumba:18:6"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	HTTPPort            string
	LogLevel            slog.Level
	TickSchedule        string
	TickDeltaMinutes    float64
	DispatchSchedule    string
	LowBatteryThreshold float64
	RechargeCycles      int
	Fleet               []DroneConfig
}

// DroneConfig describes one drone of the fleet.
type DroneConfig struct {
	Name            string
	CapacityKg      float64
	CruiseSpeedKmh  float64
	MaxRouteRangeKm float64
}

// LoadConfig reads the configuration through getenv, typically os.Getenv.
// All malformed values are reported together.
func LoadConfig(getenv func(string) string) (Config, error) {
	value := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:         value("HTTP_PORT", DefaultHTTPPort),
		TickSchedule:     value("TICK_SCHEDULE", DefaultTickSchedule),
		DispatchSchedule: value("DISPATCH_SCHEDULE", DefaultDispatchSchedule),
	}

	var errList []error
	if err := cfg.LogLevel.UnmarshalText([]byte(value("LOG_LEVEL", DefaultLogLevel))); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	var err error
	if cfg.TickDeltaMinutes, err = parseFloat(value("TICK_DELTA_MINUTES", DefaultTickDeltaMinutes)); err != nil {
		errList = append(errList, fmt.Errorf("TICK_DELTA_MINUTES: %w", err))
	}
	if cfg.LowBatteryThreshold, err = parseFloat(value("LOW_BATTERY_THRESHOLD", DefaultLowBatteryThreshold)); err != nil {
		errList = append(errList, fmt.Errorf("LOW_BATTERY_THRESHOLD: %w", err))
	}
	if cfg.RechargeCycles, err = strconv.Atoi(value("RECHARGE_CYCLES", DefaultRechargeCycles)); err != nil {
		errList = append(errList, fmt.Errorf("RECHARGE_CYCLES: %w", err))
	}
	if cfg.Fleet, err = ParseFleet(value("FLEET", DefaultFleet)); err != nil {
		errList = append(errList, fmt.Errorf("FLEET: %w", err))
	}

	if len(errList) > 0 {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errList...))
	}
	return cfg, nil
}

// ParseFleet parses a comma-separated list of
// "name:capacityKg:speedKmh[:maxRouteRangeKm]" entries. A missing range
// falls back to drone.DefaultMaxRouteRangeKm.
// Value ranges are checked later by the drone constructor.
func ParseFleet(s string) ([]DroneConfig, error) {
	var fleet []DroneConfig
	for i, entry := range strings.Split(s, ",") {
		fields := strings.Split(strings.TrimSpace(entry), ":")
		if len(fields) != 3 && len(fields) != 4 {
			return nil, fmt.Errorf("entry %d %q: want name:capacityKg:speedKmh[:maxRouteRangeKm]", i+1, entry)
		}

		numbers := []float64{0, 0, drone.DefaultMaxRouteRangeKm}
		for j, field := range fields[1:] {
			n, err := parseFloat(field)
			if err != nil {
				return nil, fmt.Errorf("entry %d %q: %w", i+1, entry, err)
			}
			numbers[j] = n
		}

		fleet = append(fleet, DroneConfig{
			Name:            strings.TrimSpace(fields[0]),
			CapacityKg:      numbers[0],
			CruiseSpeedKmh:  numbers[1],
			MaxRouteRangeKm: numbers[2],
		})
	}
	return fleet, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
