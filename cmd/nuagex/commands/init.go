package commands

import (
	"github.com/spf13/cobra"

	"github.com/xlab-si/nuagex/cmd/nuagex/handlers"
)

// Init returns the init command.
//
// Init runs an interactive wizard that asks for the lab name, desired state,
// template and credentials, then writes nuagex.yaml.
func Init() *cobra.Command {
	var opts handlers.InitOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Init walks you through creating a nuagex.yaml configuration file.

Credentials entered in the wizard are stored in the file with owner-only
permissions. Leave them empty to rely on the NUX_USERNAME and NUX_PASSWORD
environment variables instead.

Example:
  nuagex init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to write the configuration file (default: nuagex.yaml)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing configuration file")

	return cmd
}
