package commands

import (
	"github.com/spf13/cobra"

	"github.com/mailprov/mailprov/cmd/mailprov/handlers"
	"github.com/mailprov/mailprov/internal/config"
)

// Init returns the command for creating a configuration file.
//
// The command runs an interactive wizard that records operator defaults
// (management API target, tenant quota, branding) and writes them to a
// YAML file picked up by later provision runs.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Create a mailprov configuration file using an interactive wizard.

The wizard records operator defaults: the management API target, the
default tenant quota, and optional branding. Per-tenant values (domain,
organization, admin account) are always given as flags to 'mailprov
provision'.

The super-admin secret is not stored; set it via MAILPROV_SECRET or
--secret instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFile, "Path for the generated configuration file")

	return cmd
}
