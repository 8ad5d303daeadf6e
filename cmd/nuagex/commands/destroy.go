package commands

import (
	"github.com/spf13/cobra"

	"github.com/xlab-si/nuagex/cmd/nuagex/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command removes the lab and waits until NuageX reports it
// gone. It forces the desired state to absent regardless of what the config
// file declares.
func Destroy() *cobra.Command {
	var opts handlers.DestroyOptions

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the lab and wait until it is gone",
		Long: `Destroy deletes the NuageX lab and waits for the deletion to complete.

The desired state is forced to absent, so a config file declaring
state: present still destroys. Destroying a lab that does not exist
succeeds without changes.

Example:
  nuagex destroy -c nuagex.yaml

WARNING: This operation is irreversible. All lab data will be lost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: nuagex.yaml)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Lab name (overrides config)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report the would-be change without applying it")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format: text or json")

	return cmd
}
