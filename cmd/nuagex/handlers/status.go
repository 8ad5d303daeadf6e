package handlers

import (
	"context"
	"time"

	"github.com/xlab-si/nuagex/internal/nuagex"
	"github.com/xlab-si/nuagex/internal/reconcile"
	"github.com/xlab-si/nuagex/internal/ui/tui"
)

// runWatchTUI starts the interactive watch view (replaced in tests).
var runWatchTUI = func(ctx context.Context, api nuagex.API, labName string, interval time.Duration) error {
	return tui.Run(ctx, api, labName, interval)
}

// StatusOptions are the inputs for the status command.
type StatusOptions struct {
	ConfigPath string
	Name       string
	Output     string
	Watch      bool
}

// Status reports the current state of the named lab without changing it.
// With --watch it keeps polling in an interactive view until the user quits.
func Status(ctx context.Context, opts StatusOptions) error {
	desired, auth, err := resolveInput(opts.ConfigPath, opts.Name, "", "")
	if err != nil {
		return err
	}

	timeouts := loadTimeouts()
	api := newAPIClient(auth, timeouts)

	if err := api.Authenticate(ctx); err != nil {
		return err
	}

	if opts.Watch {
		return runWatchTUI(ctx, api, desired.Name, timeouts.PollInterval)
	}

	lab, err := api.LabByName(ctx, desired.Name)
	if err != nil {
		return err
	}

	result := reconcile.Result{Lab: lab}
	return printStatus(desired.Name, result.Report(), opts.Output)
}
