package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xlab-si/nuagex/internal/config"
	"github.com/xlab-si/nuagex/internal/nuagex"
	"github.com/xlab-si/nuagex/internal/reconcile"
)

func TestDestroyForcesAbsentState(t *testing.T) {
	api := &nuagex.MockAPI{}
	rec := &reconcilerMock{result: &reconcile.Result{Changed: true}}
	withStubs(t, api, rec)

	// The config declares present; destroy must override it.
	loadConfigFile = func(_ string) (*config.Config, error) {
		return &config.Config{
			Name:  "lab1",
			State: config.StatePresent,
			Auth:  config.Auth{Username: "alice", Password: "s3cret"},
		}, nil
	}

	err := Destroy(context.Background(), DestroyOptions{ConfigPath: "nuagex.yaml"})
	require.NoError(t, err)

	assert.Equal(t, 1, api.AuthenticateCalls)
	assert.Equal(t, config.StateAbsent, rec.desired.State)
	assert.Equal(t, "lab1", rec.desired.Name)
}

func TestDestroyAlreadyGone(t *testing.T) {
	setTestCredentials(t)
	rec := &reconcilerMock{result: &reconcile.Result{Changed: false}}
	buf := withStubs(t, &nuagex.MockAPI{}, rec)

	err := Destroy(context.Background(), DestroyOptions{Name: "lab1"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no changes")
}

func TestDestroyDryRun(t *testing.T) {
	setTestCredentials(t)
	rec := &reconcilerMock{result: &reconcile.Result{Changed: true}}
	buf := withStubs(t, &nuagex.MockAPI{}, rec)

	var dryRun bool
	origRec := newReconciler
	newReconciler = func(api nuagex.API, timeouts *config.Timeouts, dr bool) Reconciler {
		dryRun = dr
		return rec
	}
	t.Cleanup(func() { newReconciler = origRec })

	err := Destroy(context.Background(), DestroyOptions{Name: "lab1", DryRun: true})
	require.NoError(t, err)
	assert.True(t, dryRun)
	assert.Contains(t, buf.String(), "(dry-run)")
}
