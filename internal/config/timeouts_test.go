package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadTimeoutsDefaults(t *testing.T) {
	t.Setenv("NUX_POLL_INTERVAL", "")
	t.Setenv("NUX_POLL_MAX_ATTEMPTS", "")
	t.Setenv("NUX_HTTP_TIMEOUT", "")

	timeouts := LoadTimeouts()
	assert.Equal(t, 5*time.Second, timeouts.PollInterval)
	assert.Equal(t, 20, timeouts.PollMaxAttempts)
	assert.Equal(t, 30*time.Second, timeouts.HTTPTimeout)
}

func TestLoadTimeoutsFromEnv(t *testing.T) {
	t.Setenv("NUX_POLL_INTERVAL", "250ms")
	t.Setenv("NUX_POLL_MAX_ATTEMPTS", "3")
	t.Setenv("NUX_HTTP_TIMEOUT", "5s")

	timeouts := LoadTimeouts()
	assert.Equal(t, 250*time.Millisecond, timeouts.PollInterval)
	assert.Equal(t, 3, timeouts.PollMaxAttempts)
	assert.Equal(t, 5*time.Second, timeouts.HTTPTimeout)
}

func TestLoadTimeoutsIgnoresGarbage(t *testing.T) {
	t.Setenv("NUX_POLL_INTERVAL", "soon")
	t.Setenv("NUX_POLL_MAX_ATTEMPTS", "many")

	timeouts := LoadTimeouts()
	assert.Equal(t, 5*time.Second, timeouts.PollInterval)
	assert.Equal(t, 20, timeouts.PollMaxAttempts)
}
