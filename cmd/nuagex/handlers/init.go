package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/xlab-si/nuagex/internal/config"
)

// Factory function variables for init (replaced in tests).
var (
	runWizard      = config.RunWizard
	saveConfigFile = config.Save
)

// InitOptions are the inputs for the init command.
type InitOptions struct {
	ConfigPath string
	Force      bool
}

// Init runs the interactive setup wizard and writes the resulting config
// file. An existing file is only overwritten with --force.
func Init(ctx context.Context, opts InitOptions) error {
	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultConfigFilename
	}

	if !opts.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
	}

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	if err := saveConfigFile(result.ToConfig(), path); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %s. Run 'nuagex apply' to provision the lab.\n", path)
	return nil
}
