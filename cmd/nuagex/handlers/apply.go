// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/xlab-si/nuagex/internal/config"
	"github.com/xlab-si/nuagex/internal/nuagex"
	"github.com/xlab-si/nuagex/internal/reconcile"
)

// EnvEndpoint overrides the NuageX API endpoint when set.
const EnvEndpoint = "NUX_API_ENDPOINT"

// Reconciler interface for testing - matches reconcile.Reconciler.
type Reconciler interface {
	Reconcile(ctx context.Context, desired reconcile.Desired) (*reconcile.Result, error)
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newAPIClient creates a NuageX API client.
	newAPIClient = func(auth config.Auth, timeouts *config.Timeouts) nuagex.API {
		opts := []nuagex.ClientOption{
			nuagex.WithHTTPClient(&http.Client{Timeout: timeouts.HTTPTimeout}),
		}
		if endpoint := os.Getenv(EnvEndpoint); endpoint != "" {
			opts = append(opts, nuagex.WithEndpoint(endpoint))
		}
		return nuagex.NewClient(auth.Username, auth.Password, opts...)
	}

	// newReconciler creates a lab reconciler.
	newReconciler = func(api nuagex.API, timeouts *config.Timeouts, dryRun bool) Reconciler {
		return reconcile.New(api, timeouts, reconcile.WithDryRun(dryRun))
	}

	// loadConfigFile loads config from file (for testing injection).
	loadConfigFile = config.Load

	// findConfigFile finds the config file (for testing injection).
	findConfigFile = config.FindConfigFile

	// loadTimeouts loads timing configuration from the environment.
	loadTimeouts = config.LoadTimeouts
)

// ApplyOptions are the inputs for the apply command. Flag values override
// config file values.
type ApplyOptions struct {
	ConfigPath string
	Name       string
	State      string
	Template   string
	DryRun     bool
	Output     string
}

// Apply reconciles the named lab to its desired state: it authenticates
// eagerly (bad credentials fail before any mutation), computes the drift
// between desired and observed state, applies the minimal remote actions and
// waits for convergence, then reports {changed, lab fields}.
func Apply(ctx context.Context, opts ApplyOptions) error {
	desired, auth, err := resolveInput(opts.ConfigPath, opts.Name, opts.State, opts.Template)
	if err != nil {
		return err
	}

	if opts.DryRun {
		log.Printf("Reconciling lab %q to state %q (dry-run)", desired.Name, desired.State)
	} else {
		log.Printf("Reconciling lab %q to state %q", desired.Name, desired.State)
	}

	timeouts := loadTimeouts()
	api := newAPIClient(auth, timeouts)

	// Fail early on invalid credentials.
	if err := api.Authenticate(ctx); err != nil {
		return err
	}

	result, err := newReconciler(api, timeouts, opts.DryRun).Reconcile(ctx, desired)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	return printReport(result.Report(), opts.Output, opts.DryRun)
}

// resolveInput merges the config file and flag overrides into the desired
// state and resolved credentials. The config file is optional when --name is
// given; an explicit --config path must always load.
func resolveInput(configPath, name, state, template string) (reconcile.Desired, config.Auth, error) {
	cfg, err := loadOptionalConfig(configPath, name)
	if err != nil {
		return reconcile.Desired{}, config.Auth{}, err
	}

	if name != "" {
		cfg.Name = name
	}
	if state != "" {
		cfg.State = config.State(state)
	}
	if template != "" {
		cfg.Template = template
	}

	if cfg.State == "" {
		cfg.State = config.StatePresent
	}
	if err := cfg.Validate(); err != nil {
		return reconcile.Desired{}, config.Auth{}, err
	}

	auth, err := cfg.ResolveAuth()
	if err != nil {
		return reconcile.Desired{}, config.Auth{}, err
	}

	desired := reconcile.Desired{
		Name:     cfg.Name,
		State:    cfg.State,
		Template: cfg.Template,
	}
	return desired, auth, nil
}

// resolveAuth loads credentials only. A missing config file is fine as long
// as the environment provides the username and password.
func resolveAuth(configPath string) (config.Auth, error) {
	cfg := &config.Config{}
	if configPath == "" {
		if path, err := findConfigFile(); err == nil {
			configPath = path
		}
	}
	if configPath != "" {
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return config.Auth{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg.ResolveAuth()
}

// loadOptionalConfig loads the config file. With no explicit path the file is
// searched for upward from the CWD; not finding one is only an error when the
// lab name was not provided on the command line either.
func loadOptionalConfig(configPath, name string) (*config.Config, error) {
	if configPath == "" {
		path, err := findConfigFile()
		if err != nil {
			if name != "" {
				return &config.Config{}, nil
			}
			return nil, fmt.Errorf("%w\nRun 'nuagex init' to create one, or pass --name", err)
		}
		configPath = path
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
