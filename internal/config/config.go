package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort               = "8080"
	defaultPHITrendDays       = 30
	defaultReminderInterval   = 6 * time.Hour
	defaultReminderPeriodDays = 2
	defaultShareTokenTTL      = 72 * time.Hour
	minSecretKeyLength        = 32
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

var (
	ErrSecretKeyMissing  = errors.New("SECRET_KEY is required")
	ErrSecretKeyInsecure = errors.New("SECRET_KEY uses a placeholder value")
	ErrSecretKeyTooShort = fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	ErrInvalidPort       = errors.New("PORT must be a number between 1 and 65535")
)

// AppConfig holds everything the commands read from the environment.
type AppConfig struct {
	Location           *time.Location
	DBPath             string
	Port               string
	LogDir             string
	PHITrendDays       int
	ReminderEnabled    bool
	ReminderInterval   time.Duration
	ReminderPeriodDays int
	ShareTokenTTL      time.Duration
}

// Load reads .env (if present) and the process environment. SECRET_KEY is
// resolved separately since only serve needs it.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables")
	}

	port, err := ResolvePort()
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{
		Location:           MustLoadLocation(getEnv("TZ", "UTC")),
		DBPath:             getEnv("DB_PATH", filepath.Join("data", "cycleadvisor.db")),
		Port:               port,
		LogDir:             getEnv("LOGS_FOLDER", "logs"),
		PHITrendDays:       getEnvInt("PHI_TREND_DAYS", defaultPHITrendDays),
		ReminderEnabled:    getEnvBool("REMINDER_ENABLED", true),
		ReminderInterval:   getEnvDuration("REMINDER_INTERVAL", defaultReminderInterval),
		ReminderPeriodDays: getEnvInt("REMINDER_PERIOD_DAYS", defaultReminderPeriodDays),
		ShareTokenTTL:      getEnvDuration("SHARE_TOKEN_TTL", defaultShareTokenTTL),
	}
	return cfg, nil
}

func ResolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", ErrSecretKeyMissing
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", ErrSecretKeyInsecure
	}
	if len(secret) < minSecretKeyLength {
		return "", ErrSecretKeyTooShort
	}
	return secret, nil
}

func ResolvePort() (string, error) {
	raw := getEnv("PORT", defaultPort)
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPort, raw)
	}
	return strconv.Itoa(port), nil
}

func MustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Str("tz", name).Msg("invalid TZ, falling back to UTC")
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
