package nuagex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"started", StatusStarted},
		{"pending", StatusPending},
		{"starting", StatusPending},
		{"queued", StatusPending},
		{"error", StatusError},
		{"failed", StatusError},
		{"", StatusUnknown},
		{"detonated", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.raw))
		})
	}
}

func TestRunningOnlyWhenStarted(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusError, StatusUnknown} {
		lab := &Lab{Status: status}
		assert.False(t, lab.Running(), "status %s must not count as running", status)
	}
	assert.True(t, (&Lab{Status: StatusStarted}).Running())
}

func TestDerivedAccessViews(t *testing.T) {
	lab := &Lab{
		ID:       "id-1",
		Name:     "lab1",
		Status:   StatusStarted,
		Address:  "203.0.113.7",
		Password: "hunter2",
	}

	web := lab.Web()
	assert.Equal(t, "https://203.0.113.7:8443", web.Address)
	assert.Equal(t, "csproot", web.User)
	assert.Equal(t, "csp", web.Organization)
	assert.Equal(t, "hunter2", web.Password)

	amqp := lab.AMQP()
	assert.Equal(t, "203.0.113.7:5672", amqp.Address)
	assert.Equal(t, "jmsuser@system", amqp.User)
	assert.Equal(t, "hunter2", amqp.Password)
}
