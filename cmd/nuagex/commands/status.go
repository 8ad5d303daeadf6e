package commands

import (
	"github.com/spf13/cobra"

	"github.com/xlab-si/nuagex/cmd/nuagex/handlers"
)

// Status returns the status command.
func Status() *cobra.Command {
	var opts handlers.StatusOptions

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current state of the lab",
		Long: `Status looks up the lab on NuageX and reports its state without
changing anything.

With --watch the command keeps polling and renders a live view until you
press q.

Examples:
  nuagex status
  nuagex status --watch
  nuagex status -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Status(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: nuagex.yaml)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Lab name (overrides config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format: text or json")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Keep polling and render a live view")

	return cmd
}
