package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlab-si/nuagex/internal/nuagex"
)

func TestStatusPrintsRunningLab(t *testing.T) {
	setTestCredentials(t)
	api := &nuagex.MockAPI{
		LabByNameFunc: func(_ context.Context, name string) (*nuagex.Lab, error) {
			return &nuagex.Lab{
				ID:       "id-1",
				Name:     name,
				Status:   nuagex.StatusStarted,
				Address:  "203.0.113.7",
				Password: "hunter2",
			}, nil
		},
	}
	buf := withStubs(t, api, &reconcilerMock{})

	err := Status(context.Background(), StatusOptions{Name: "lab1"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "lab1")
	assert.Contains(t, out, "https://203.0.113.7:8443")
	assert.Contains(t, out, "203.0.113.7:5672")
}

func TestStatusAbsentLab(t *testing.T) {
	setTestCredentials(t)
	buf := withStubs(t, &nuagex.MockAPI{}, &reconcilerMock{})

	err := Status(context.Background(), StatusOptions{Name: "lab1"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "absent")
}

func TestStatusWatchStartsTUI(t *testing.T) {
	setTestCredentials(t)
	t.Setenv("NUX_POLL_INTERVAL", "5s")
	api := &nuagex.MockAPI{}
	withStubs(t, api, &reconcilerMock{})

	var gotName string
	var gotInterval time.Duration
	origWatch := runWatchTUI
	runWatchTUI = func(_ context.Context, got nuagex.API, name string, interval time.Duration) error {
		require.Same(t, api, got)
		gotName = name
		gotInterval = interval
		return nil
	}
	t.Cleanup(func() { runWatchTUI = origWatch })

	err := Status(context.Background(), StatusOptions{Name: "lab1", Watch: true})
	require.NoError(t, err)
	assert.Equal(t, "lab1", gotName)
	assert.Equal(t, 5*time.Second, gotInterval)
}
