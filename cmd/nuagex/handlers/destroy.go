package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/xlab-si/nuagex/internal/config"
)

// DestroyOptions are the inputs for the destroy command.
type DestroyOptions struct {
	ConfigPath string
	Name       string
	DryRun     bool
	Output     string
}

// Destroy removes the named lab and waits until it is gone. It is apply with
// the desired state forced to absent, so a config file declaring
// state: present still destroys.
func Destroy(ctx context.Context, opts DestroyOptions) error {
	desired, auth, err := resolveInput(opts.ConfigPath, opts.Name, string(config.StateAbsent), "")
	if err != nil {
		return err
	}

	log.Printf("Destroying lab %q", desired.Name)

	timeouts := loadTimeouts()
	api := newAPIClient(auth, timeouts)

	if err := api.Authenticate(ctx); err != nil {
		return err
	}

	result, err := newReconciler(api, timeouts, opts.DryRun).Reconcile(ctx, desired)
	if err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}

	return printReport(result.Report(), opts.Output, opts.DryRun)
}
