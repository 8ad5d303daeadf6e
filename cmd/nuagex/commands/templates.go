package commands

import (
	"github.com/spf13/cobra"

	"github.com/xlab-si/nuagex/cmd/nuagex/handlers"
)

// Templates returns the templates command.
func Templates() *cobra.Command {
	var opts handlers.TemplatesOptions

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available lab templates",
		Long: `Templates lists the lab templates available to your NuageX account,
sorted by name. The first entry is the default used by apply when the
config does not name a template.

Examples:
  nuagex templates
  nuagex templates -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Templates(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: nuagex.yaml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format: text or json")

	return cmd
}
