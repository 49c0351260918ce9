// Package config resolves the effective provisioning configuration.
//
// All inputs are folded into a single Config exactly once at startup, with
// the precedence flag > config file > environment > built-in default. No
// code reads environment variables after resolution.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Defaults and recognized environment variables.
const (
	DefaultServerURL        = "http://localhost:8080"
	DefaultSuperadminUser   = "admin"
	DefaultSuperadminSecret = "changeme"

	// DefaultQuotaBytes is the tenant disk quota applied when none is
	// given: 10 GiB.
	DefaultQuotaBytes int64 = 10737418240

	EnvServerURL        = "MAILPROV_SERVER"
	EnvSuperadminUser   = "MAILPROV_SUPERADMIN"
	EnvSuperadminSecret = "MAILPROV_SECRET"

	// DefaultConfigFile is the config file looked up in the working
	// directory when --config is not given.
	DefaultConfigFile = "mailprov.yaml"
)

// Config is the fully resolved configuration for one provisioning run.
type Config struct {
	// Tenant inputs.
	Domain         string
	OrgDisplayName string
	AdminEmail     string
	AdminPassword  string
	HashPassword   bool
	QuotaBytes     int64

	// Optional tenant branding.
	BrandName    string
	BrandLogoURL string
	BrandTheme   string

	// Management API target.
	ServerURL        string
	SuperadminUser   string
	SuperadminSecret string
}

// Options carries raw flag values from the CLI. Empty strings mean the
// flag was not given; QuotaSet distinguishes an explicit --quota 0 from an
// absent flag.
type Options struct {
	Domain        string
	Org           string
	AdminEmail    string
	AdminPassword string
	HashPassword  bool

	ServerURL        string
	SuperadminUser   string
	SuperadminSecret string
	Quota            int64
	QuotaSet         bool

	BrandName    string
	BrandLogoURL string
	BrandTheme   string
}

// FileConfig is the optional YAML config file shape. It holds operator
// defaults (API target, quota, branding); per-run tenant inputs always
// come from flags.
type FileConfig struct {
	Server     string         `mapstructure:"server" yaml:"server,omitempty"`
	Superadmin string         `mapstructure:"superadmin" yaml:"superadmin,omitempty"`
	Secret     string         `mapstructure:"secret" yaml:"secret,omitempty"`
	Quota      int64          `mapstructure:"quota" yaml:"quota,omitempty"`
	Branding   BrandingConfig `mapstructure:"branding" yaml:"branding,omitempty"`
}

// BrandingConfig holds optional tenant branding defaults.
type BrandingConfig struct {
	Name    string `mapstructure:"name" yaml:"name,omitempty"`
	LogoURL string `mapstructure:"logoUrl" yaml:"logoUrl,omitempty"`
	Theme   string `mapstructure:"theme" yaml:"theme,omitempty"`
}

// Resolve folds flags, an optional config file, environment variables, and
// defaults into a Config. file may be nil. A .env file in the working
// directory is honored before environment lookup.
func Resolve(opts Options, file *FileConfig) *Config {
	_ = godotenv.Load()

	if file == nil {
		file = &FileConfig{}
	}

	cfg := &Config{
		Domain:         opts.Domain,
		OrgDisplayName: opts.Org,
		AdminEmail:     opts.AdminEmail,
		AdminPassword:  opts.AdminPassword,
		HashPassword:   opts.HashPassword,

		ServerURL:        firstNonEmpty(opts.ServerURL, file.Server, os.Getenv(EnvServerURL), DefaultServerURL),
		SuperadminUser:   firstNonEmpty(opts.SuperadminUser, file.Superadmin, os.Getenv(EnvSuperadminUser), DefaultSuperadminUser),
		SuperadminSecret: firstNonEmpty(opts.SuperadminSecret, file.Secret, os.Getenv(EnvSuperadminSecret), DefaultSuperadminSecret),

		BrandName:    firstNonEmpty(opts.BrandName, file.Branding.Name),
		BrandLogoURL: firstNonEmpty(opts.BrandLogoURL, file.Branding.LogoURL),
		BrandTheme:   firstNonEmpty(opts.BrandTheme, file.Branding.Theme),
	}

	switch {
	case opts.QuotaSet:
		cfg.QuotaBytes = opts.Quota
	case file.Quota > 0:
		cfg.QuotaBytes = file.Quota
	default:
		cfg.QuotaBytes = DefaultQuotaBytes
	}

	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
