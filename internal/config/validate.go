package config

import "fmt"

// MissingArgumentError reports a required flag with no value. It aborts
// the run before any network call is made.
type MissingArgumentError struct {
	Flag string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required flag: --%s", e.Flag)
}

// Validate confirms the per-run tenant inputs are present. Only presence
// is checked; domain and email syntax are left to the management API.
func (c *Config) Validate() error {
	required := []struct {
		flag  string
		value string
	}{
		{"domain", c.Domain},
		{"org", c.OrgDisplayName},
		{"admin", c.AdminEmail},
		{"password", c.AdminPassword},
	}

	for _, r := range required {
		if r.value == "" {
			return &MissingArgumentError{Flag: r.flag}
		}
	}

	if c.QuotaBytes < 0 {
		return fmt.Errorf("quota must be non-negative, got %d", c.QuotaBytes)
	}

	return nil
}
