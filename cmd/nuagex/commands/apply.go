package commands

import (
	"github.com/spf13/cobra"

	"github.com/xlab-si/nuagex/cmd/nuagex/handlers"
)

// Apply returns the command for reconciling a NuageX lab to its desired
// state.
//
// Optional flags:
//
//	--config, -c: Path to lab configuration YAML file (default: auto-detect nuagex.yaml)
//	--name: Lab name (overrides the config file)
//	--state: Desired state, present or absent (overrides the config file)
//	--template: Template name (overrides the config file)
//	--dry-run: Report what would change without touching the lab
//	--output, -o: Output format, text or json
//
// Environment variables:
//
//	NUX_USERNAME, NUX_PASSWORD: NuageX credentials (fallback when not in config)
func Apply() *cobra.Command {
	var opts handlers.ApplyOptions

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or remove the lab to match the desired state",
		Long: `Reconcile the NuageX lab to its desired state.

A lab that should exist is created from its template and the command waits
until it is running. A lab that should not exist is deleted and the command
waits until it is gone. A lab that exists but is not running is recreated.
Running the command again once the lab matches its desired state changes
nothing.

If no config file is specified, it looks for nuagex.yaml in the current
directory and its parents. Use 'nuagex init' to create one.

Examples:
  # Reconcile using nuagex.yaml in the current directory
  nuagex apply

  # Reconcile a specific config file
  nuagex apply -c staging.yaml

  # One-off lab without a config file (credentials from the environment)
  nuagex apply --name demo-lab

  # Preview without changing anything
  nuagex apply --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: nuagex.yaml)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Lab name (overrides config)")
	cmd.Flags().StringVar(&opts.State, "state", "", "Desired state: present or absent (overrides config)")
	cmd.Flags().StringVar(&opts.Template, "template", "", "Template name (overrides config)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report the would-be change without applying it")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format: text or json")

	return cmd
}
