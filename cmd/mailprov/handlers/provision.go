// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mailprov/mailprov/internal/config"
	"github.com/mailprov/mailprov/internal/platform/mailserver"
	"github.com/mailprov/mailprov/internal/provision"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newAPIClient creates a management API client.
	newAPIClient = func(serverURL, username, secret string) provision.PrincipalCreator {
		return mailserver.NewClient(serverURL, username, secret)
	}

	// loadConfigFile loads the optional YAML config file.
	loadConfigFile = config.LoadFile

	// findConfigFile locates the default config file.
	findConfigFile = config.FindConfigFile

	// summaryOut receives the completion summary.
	summaryOut io.Writer = os.Stdout
)

// Provision onboards a new tenant organization on the mail platform.
//
// The flow is strictly linear: resolve configuration, validate required
// inputs, then create the tenant, its domain, and its admin account via
// three ordered management API calls. A failed step is downgraded to a
// warning and the sequence always runs to completion, so the command is
// safe to re-run against a partially provisioned tenant. Once validation
// has passed the exit status is 0 even if every step warned.
func Provision(ctx context.Context, opts config.Options, configPath string) error {
	file, err := resolveFileConfig(configPath)
	if err != nil {
		return err
	}

	cfg := config.Resolve(opts, file)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Printf("Provisioning organization %q on %s", cfg.OrgDisplayName, cfg.ServerURL)

	client := newAPIClient(cfg.ServerURL, cfg.SuperadminUser, cfg.SuperadminSecret)
	seq, err := provision.NewSequencer(client, cfg)
	if err != nil {
		return err
	}

	outcomes := seq.Run(ctx)
	printProvisionSummary(cfg, seq.TenantID(), outcomes)

	return nil
}

// resolveFileConfig loads the config file given via --config, or the
// default file when present. No file at all is fine.
func resolveFileConfig(configPath string) (*config.FileConfig, error) {
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath == "" {
		return nil, nil
	}

	file, err := loadConfigFile(configPath)
	if err != nil {
		return nil, err
	}

	log.Printf("Using config file: %s", configPath)
	return file, nil
}

// printProvisionSummary outputs the completion summary and the manual
// follow-up checklist.
func printProvisionSummary(cfg *config.Config, tenantID string, outcomes []provision.StepOutcome) {
	var warnings, existing int
	for _, o := range outcomes {
		if o.Succeeded {
			continue
		}
		if o.AlreadyExists {
			existing++
		} else {
			warnings++
		}
	}

	fmt.Fprintf(summaryOut, "\nProvisioning complete!\n")
	fmt.Fprintln(summaryOut)
	fmt.Fprintln(summaryOut, "Organization Summary")
	fmt.Fprintln(summaryOut, "--------------------")
	fmt.Fprintf(summaryOut, "  Organization: %s\n", cfg.OrgDisplayName)
	fmt.Fprintf(summaryOut, "  Tenant ID:    %s\n", tenantID)
	fmt.Fprintf(summaryOut, "  Domain:       %s\n", cfg.Domain)
	fmt.Fprintf(summaryOut, "  Admin login:  %s\n", cfg.AdminEmail)
	fmt.Fprintf(summaryOut, "  Quota:        %d GB\n", cfg.QuotaBytes/1073741824)
	fmt.Fprintf(summaryOut, "  Web URL:      %s\n", cfg.ServerURL)
	fmt.Fprintln(summaryOut)

	if existing > 0 {
		fmt.Fprintf(summaryOut, "  %d record(s) already existed and were left untouched.\n", existing)
	}
	if warnings > 0 {
		fmt.Fprintf(summaryOut, "  %d step(s) warned; review the log above and re-run once resolved.\n", warnings)
	}
	if existing > 0 || warnings > 0 {
		fmt.Fprintln(summaryOut)
	}

	fmt.Fprintln(summaryOut, "Next Steps")
	fmt.Fprintln(summaryOut, "----------")
	fmt.Fprintf(summaryOut, "  1. Publish DNS records for %s (MX, SPF, DKIM, DMARC)\n", cfg.Domain)
	fmt.Fprintln(summaryOut, "  2. Provision additional user accounts for the tenant")
	fmt.Fprintln(summaryOut, "  3. Configure TLS for the mail and web endpoints")
	fmt.Fprintln(summaryOut)
}
