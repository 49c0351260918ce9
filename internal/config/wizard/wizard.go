// Package wizard implements the interactive questionnaire behind
// `mailprov init`. It collects operator defaults for the management API
// target and tenant branding; the answers are written to mailprov.yaml.
//
// The super-admin secret is deliberately not asked for or persisted: it is
// expected via the MAILPROV_SECRET environment variable or --secret.
package wizard

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mailprov/mailprov/internal/config"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	ServerURL  string
	Superadmin string
	QuotaGB    int

	BrandName    string
	BrandLogoURL string
	BrandTheme   string
}

// quotaOptions are the selectable tenant quotas, in GB.
var quotaOptions = []huh.Option[int]{
	huh.NewOption("5 GB", 5),
	huh.NewOption("10 GB (default)", 10),
	huh.NewOption("25 GB", 25),
	huh.NewOption("50 GB", 50),
	huh.NewOption("100 GB", 100),
}

var themeOptions = []huh.Option[string]{
	huh.NewOption("Platform default", ""),
	huh.NewOption("Light", "light"),
	huh.NewOption("Dark", "dark"),
}

// RunWizard runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{
		ServerURL:  config.DefaultServerURL,
		Superadmin: config.DefaultSuperadminUser,
		QuotaGB:    10,
	}

	if err := runServerGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("management API: %w", err)
	}

	if err := runTenantDefaultsGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("tenant defaults: %w", err)
	}

	return result, nil
}

// runServerGroup prompts for the management API target.
func runServerGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Server URL").
				Description("Base URL of the mail platform management API").
				Placeholder(config.DefaultServerURL).
				Value(&result.ServerURL).
				Validate(validateServerURL),
			huh.NewInput().
				Title("Super-admin Username").
				Description("Platform-operator account used for Basic auth").
				Placeholder(config.DefaultSuperadminUser).
				Value(&result.Superadmin),
		).Title("Management API"),
	).RunWithContext(ctx)
}

// runTenantDefaultsGroup prompts for quota and optional branding defaults.
func runTenantDefaultsGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Tenant Disk Quota").
				Description("Default quota applied to newly provisioned tenants").
				Options(quotaOptions...).
				Value(&result.QuotaGB),
			huh.NewInput().
				Title("Brand Name (Optional)").
				Description("Shown in the tenant's web interface. Leave empty to skip.").
				Value(&result.BrandName),
			huh.NewInput().
				Title("Brand Logo URL (Optional)").
				Value(&result.BrandLogoURL).
				Validate(validateOptionalURL),
			huh.NewSelect[string]().
				Title("Brand Theme").
				Options(themeOptions...).
				Value(&result.BrandTheme),
		).Title("Tenant Defaults"),
	).RunWithContext(ctx)
}

// ToFileConfig converts the wizard answers to the config file shape.
func (r *Result) ToFileConfig() *config.FileConfig {
	return &config.FileConfig{
		Server:     r.ServerURL,
		Superadmin: r.Superadmin,
		Quota:      int64(r.QuotaGB) * 1073741824,
		Branding: config.BrandingConfig{
			Name:    r.BrandName,
			LogoURL: r.BrandLogoURL,
			Theme:   r.BrandTheme,
		},
	}
}

func validateServerURL(value string) error {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("must be an http(s) URL, e.g. %s", config.DefaultServerURL)
	}
	return nil
}

func validateOptionalURL(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return validateServerURL(value)
}
