// Package reconcile drives a remote NuageX lab from its observed state to the
// desired state through create/poll/delete transitions with a bounded poll
// budget.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/xlab-si/nuagex/internal/config"
	"github.com/xlab-si/nuagex/internal/nuagex"
	"github.com/xlab-si/nuagex/internal/util/retry"
)

// Sentinels used inside poll probes to mean "not converged yet".
var (
	errNotRunning   = errors.New("lab is not running yet")
	errStillPresent = errors.New("lab still exists")
)

// Desired is the declarative input for one reconciliation.
type Desired struct {
	Name     string
	State    config.State
	Template string
}

// Result is the outcome of a successful reconciliation. Lab is nil when the
// desired state is absent or when dry-run skipped the creation.
type Result struct {
	Changed bool
	Lab     *nuagex.Lab
}

// Reconciler compares desired against observed lab state and applies the
// minimal set of remote actions to converge, polling until the remote
// resource stabilizes. Exactly one lab name is reconciled per invocation.
type Reconciler struct {
	api      nuagex.API
	timeouts *config.Timeouts
	dryRun   bool
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithDryRun makes Reconcile compute the change verdict without performing
// any mutating remote calls.
func WithDryRun(dryRun bool) Option {
	return func(r *Reconciler) {
		r.dryRun = dryRun
	}
}

// New creates a Reconciler on top of the given API client.
func New(api nuagex.API, timeouts *config.Timeouts, opts ...Option) *Reconciler {
	r := &Reconciler{
		api:      api,
		timeouts: timeouts,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile applies the desired state:
//
//	observed \ desired     present                      absent
//	none                   create, wait running         no-op
//	running                no-op                        delete, wait gone
//	present, not running   delete, recreate, wait       delete, wait gone
//
// Changed is always computed from this table; in dry-run mode the mutating
// calls and their polls are skipped after the verdict is known.
func (r *Reconciler) Reconcile(ctx context.Context, desired Desired) (*Result, error) {
	observed, err := r.api.LabByName(ctx, desired.Name)
	if err != nil {
		return nil, err
	}

	if desired.State == config.StateAbsent {
		return r.reconcileAbsent(ctx, desired, observed)
	}
	return r.reconcilePresent(ctx, desired, observed)
}

func (r *Reconciler) reconcileAbsent(ctx context.Context, desired Desired, observed *nuagex.Lab) (*Result, error) {
	if observed == nil {
		log.Printf("Lab %q does not exist, nothing to do", desired.Name)
		return &Result{Changed: false}, nil
	}

	if r.dryRun {
		return &Result{Changed: true}, nil
	}

	if err := r.deleteAndWait(ctx, observed); err != nil {
		return nil, err
	}
	return &Result{Changed: true}, nil
}

func (r *Reconciler) reconcilePresent(ctx context.Context, desired Desired, observed *nuagex.Lab) (*Result, error) {
	if observed != nil && observed.Running() {
		log.Printf("Lab %q is already running, nothing to do", desired.Name)
		return &Result{Changed: false, Lab: observed}, nil
	}

	if r.dryRun {
		return &Result{Changed: true}, nil
	}

	// Resolve the template before tearing anything down so a bad template
	// name fails without destroying the existing lab.
	tpl, err := r.ResolveTemplate(ctx, desired.Template)
	if err != nil {
		return nil, err
	}

	if observed != nil {
		log.Printf("Lab %q exists but is %s, recreating", desired.Name, observed.Status)
		if err := r.deleteAndWait(ctx, observed); err != nil {
			return nil, err
		}
	}

	lab, err := r.createAndWait(ctx, desired.Name, tpl)
	if err != nil {
		return nil, err
	}
	return &Result{Changed: true, Lab: lab}, nil
}

// ResolveTemplate finds the template to create labs from. An explicit name
// must match exactly; with no name the lexicographically first template wins
// (ascending name order), a deliberate "reasonable default" policy.
func (r *Reconciler) ResolveTemplate(ctx context.Context, name string) (nuagex.Template, error) {
	templates, err := r.api.Templates(ctx)
	if err != nil {
		return nuagex.Template{}, fmt.Errorf("resolve template: %w", err)
	}

	if name != "" {
		for _, tpl := range templates {
			if tpl.Name == name {
				return tpl, nil
			}
		}
		return nuagex.Template{}, &TemplateNotFoundError{Name: name}
	}

	if len(templates) == 0 {
		return nuagex.Template{}, ErrNoTemplates
	}

	sorted := slices.Clone(templates)
	slices.SortFunc(sorted, func(a, b nuagex.Template) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted[0], nil
}

// createAndWait issues the creation call (asynchronous on the remote side)
// and polls until the lab is both present and running.
func (r *Reconciler) createAndWait(ctx context.Context, name string, tpl nuagex.Template) (*nuagex.Lab, error) {
	if _, err := r.api.CreateLab(ctx, name, tpl); err != nil {
		return nil, err
	}
	log.Printf("Created lab %q from template %q, waiting for it to start", name, tpl.Name)

	var lab *nuagex.Lab
	err := r.poll(ctx, func() error {
		observed, err := r.api.LabByName(ctx, name)
		if err != nil {
			return retry.Fatal(err)
		}
		if observed == nil || !observed.Running() {
			return errNotRunning
		}
		lab = observed
		return nil
	})
	if err != nil {
		return nil, r.waitError(err, name, config.StatePresent)
	}

	log.Printf("Lab %q is running at %s", lab.Name, lab.Address)
	return lab, nil
}

// deleteAndWait issues the deletion call and polls until the lab is gone.
func (r *Reconciler) deleteAndWait(ctx context.Context, lab *nuagex.Lab) error {
	if err := r.api.DeleteLab(ctx, lab); err != nil {
		return err
	}
	log.Printf("Deleted lab %q, waiting for it to disappear", lab.Name)

	err := r.poll(ctx, func() error {
		observed, err := r.api.LabByName(ctx, lab.Name)
		if err != nil {
			return retry.Fatal(err)
		}
		if observed != nil {
			return errStillPresent
		}
		return nil
	})
	if err != nil {
		return r.waitError(err, lab.Name, config.StateAbsent)
	}
	return nil
}

func (r *Reconciler) poll(ctx context.Context, probe func() error) error {
	return retry.Poll(ctx, probe,
		retry.WithMaxAttempts(r.timeouts.PollMaxAttempts),
		retry.WithInterval(r.timeouts.PollInterval))
}

// waitError translates an exhausted poll budget into a WaitTimeoutError so
// callers can distinguish it from API failures. Exhaustion is never reported
// as success.
func (r *Reconciler) waitError(err error, name string, state config.State) error {
	if errors.Is(err, retry.ErrExhausted) {
		return &WaitTimeoutError{Name: name, State: state, Attempts: r.timeouts.PollMaxAttempts}
	}
	return err
}
