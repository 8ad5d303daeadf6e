package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timing values for remote operations.
type Timeouts struct {
	PollInterval    time.Duration // Delay between lab status polls
	PollMaxAttempts int           // Poll budget per create/delete wait
	HTTPTimeout     time.Duration // Per-request HTTP timeout
}

// LoadTimeouts loads timing configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - NUX_POLL_INTERVAL (default: 5s)
//   - NUX_POLL_MAX_ATTEMPTS (default: 20)
//   - NUX_HTTP_TIMEOUT (default: 30s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		PollInterval:    parseDuration("NUX_POLL_INTERVAL", 5*time.Second),
		PollMaxAttempts: parseInt("NUX_POLL_MAX_ATTEMPTS", 20),
		HTTPTimeout:     parseDuration("NUX_HTTP_TIMEOUT", 30*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}
