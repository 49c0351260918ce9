package commands

import (
	"github.com/spf13/cobra"

	"github.com/mailprov/mailprov/cmd/mailprov/handlers"
	"github.com/mailprov/mailprov/internal/config"
)

// Provision returns the command for onboarding a new tenant organization.
//
// The command issues three ordered create calls against the management
// API: tenant, domain, admin account. Steps that fail (including records
// that already exist from an earlier run) are reported as warnings and
// never abort the sequence, so the command can be safely re-run.
//
// Required flags:
//
//	--domain:   Domain to attach to the new tenant
//	--org:      Organization display name
//	--admin:    Admin email address
//	--password: Admin account password
//
// Environment variables:
//
//	MAILPROV_SERVER:     Management API base URL
//	MAILPROV_SUPERADMIN: Super-admin username
//	MAILPROV_SECRET:     Super-admin password
func Provision() *cobra.Command {
	var opts config.Options
	var configPath string

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision a new tenant organization",
		Long: `Provision a new tenant organization on the mail platform.

Creates a tenant, a domain bound to that tenant, and an administrator
account bound to both, in that order. Steps that fail are downgraded to
warnings and the remaining steps still run, so a partially provisioned
organization can be completed by simply re-running the command.

The exit status is 0 once the arguments validate, even when steps warned;
check the per-step output for warnings.

Examples:
  # Provision with defaults (local server, 10 GB quota)
  mailprov provision --domain clienta.com --org "Client A Inc." \
    --admin admin@clienta.com --password 'SecurePass123!'

  # Against a remote server with a larger quota
  MAILPROV_SECRET=s3cret mailprov provision --server https://mail.example.com \
    --domain clienta.com --org "Client A Inc." \
    --admin admin@clienta.com --password 'SecurePass123!' --quota 53687091200`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.QuotaSet = cmd.Flags().Changed("quota")
			return handlers.Provision(cmd.Context(), opts, configPath)
		},
	}

	cmd.Flags().StringVar(&opts.Domain, "domain", "", "Domain to attach to the new tenant (required)")
	cmd.Flags().StringVar(&opts.Org, "org", "", "Organization display name (required)")
	cmd.Flags().StringVar(&opts.AdminEmail, "admin", "", "Admin email address (required)")
	cmd.Flags().StringVar(&opts.AdminPassword, "password", "", "Admin account password (required)")

	cmd.Flags().StringVar(&opts.ServerURL, "server", "", "Base URL of the management API (default "+config.DefaultServerURL+")")
	cmd.Flags().StringVar(&opts.SuperadminUser, "superadmin", "", "Super-admin username for Basic auth (default "+config.DefaultSuperadminUser+")")
	cmd.Flags().StringVar(&opts.SuperadminSecret, "secret", "", "Super-admin password (default $"+config.EnvSuperadminSecret+")")
	cmd.Flags().Int64Var(&opts.Quota, "quota", config.DefaultQuotaBytes, "Tenant disk quota in bytes")

	cmd.Flags().StringVar(&opts.BrandName, "brand-name", "", "Brand name shown in the tenant's web interface")
	cmd.Flags().StringVar(&opts.BrandLogoURL, "brand-logo", "", "Brand logo URL for the tenant's web interface")
	cmd.Flags().StringVar(&opts.BrandTheme, "brand-theme", "", "Brand theme for the tenant's web interface")
	cmd.Flags().BoolVar(&opts.HashPassword, "hash-password", false, "Hash the admin password with bcrypt before sending")

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: "+config.DefaultConfigFile+")")

	return cmd
}
