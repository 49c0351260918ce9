package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFileConfig(t *testing.T) {
	r := &Result{
		ServerURL:  "https://mail.example.com",
		Superadmin: "root",
		QuotaGB:    25,
		BrandName:  "Example Mail",
		BrandTheme: "dark",
	}

	cfg := r.ToFileConfig()

	assert.Equal(t, "https://mail.example.com", cfg.Server)
	assert.Equal(t, "root", cfg.Superadmin)
	assert.Equal(t, int64(25)*1073741824, cfg.Quota)
	assert.Equal(t, "Example Mail", cfg.Branding.Name)
	assert.Equal(t, "dark", cfg.Branding.Theme)
	assert.Empty(t, cfg.Branding.LogoURL)
}

func TestToFileConfig_DefaultQuota(t *testing.T) {
	r := &Result{QuotaGB: 10}

	assert.Equal(t, int64(10737418240), r.ToFileConfig().Quota)
}

func TestValidateServerURL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"http URL", "http://localhost:8080", false},
		{"https URL", "https://mail.example.com", false},
		{"missing scheme", "mail.example.com", true},
		{"wrong scheme", "ftp://mail.example.com", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateServerURL(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOptionalURL(t *testing.T) {
	assert.NoError(t, validateOptionalURL(""))
	assert.NoError(t, validateOptionalURL("  "))
	assert.NoError(t, validateOptionalURL("https://example.com/logo.svg"))
	assert.Error(t, validateOptionalURL("not-a-url"))
}
