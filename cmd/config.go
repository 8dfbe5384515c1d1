package cmd

import (
	"strconv"
	"time"

	"dispatch/internal/core/domain/model/billing"
)

// Config carries the process-level settings read from the environment.
type Config struct {
	HTTPPort      string
	GeoServiceURL string
	GeoAPIKey     string

	Settings billing.Settings
}

// SettingsFromEnv builds the billing settings, starting from the default
// tariff and applying any overrides present in the given lookup. Unparseable
// values keep the default.
func SettingsFromEnv(lookup func(string) string) billing.Settings {
	settings := billing.DefaultSettings()

	overrideFloat(lookup("FLAT_RATE"), &settings.FlatRate)
	overrideFloat(lookup("MILEAGE_RATE"), &settings.MileageRate)
	overrideFloat(lookup("ADDITIONAL_STOP_FEE"), &settings.AdditionalStopFee)
	overrideFloat(lookup("DISTANCE_THRESHOLD"), &settings.DistanceThreshold)
	overrideBool(lookup("ALLOW_MANUAL_DISTANCE_ADJUSTMENT"), &settings.AllowManualDistanceAdjustment)
	overrideInt(lookup("FLAG_DRIVER_LOAD_THRESHOLD"), &settings.FlagDriverLoadThreshold)
	overrideFloat(lookup("FLAG_DISTANCE_THRESHOLD"), &settings.FlagDistanceThreshold)
	overrideMinutes(lookup("FLAG_TIME_WINDOW_MINUTES"), &settings.FlagTimeWindow)

	return settings
}

func overrideFloat(raw string, target *float64) {
	if raw == "" {
		return
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		*target = v
	}
}

func overrideInt(raw string, target *int) {
	if raw == "" {
		return
	}
	if v, err := strconv.Atoi(raw); err == nil {
		*target = v
	}
}

func overrideBool(raw string, target *bool) {
	if raw == "" {
		return
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		*target = v
	}
}

func overrideMinutes(raw string, target *time.Duration) {
	if raw == "" {
		return
	}
	if v, err := strconv.Atoi(raw); err == nil {
		*target = time.Duration(v) * time.Minute
	}
}
