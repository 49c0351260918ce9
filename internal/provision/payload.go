package provision

// Principal payloads accepted by the management API's POST /principal
// endpoint. Each provisioning step sends exactly one variant. All payloads
// go through the JSON encoder; field values are never interpolated into
// raw JSON text, so display names and passwords may contain any characters.

// TenantPayload creates the top-level organizational unit.
type TenantPayload struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quota       int64  `json:"quota"`

	// Optional branding, applied to the tenant's hosted web interface.
	BrandName    string `json:"brandName,omitempty"`
	BrandLogoURL string `json:"brandLogoUrl,omitempty"`
	BrandTheme   string `json:"brandTheme,omitempty"`
}

// DomainPayload creates a mail domain bound to a tenant.
type DomainPayload struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Tenant string `json:"tenant"`
}

// AdminPayload creates the tenant's administrator account.
type AdminPayload struct {
	Type    string   `json:"type"`
	Name    string   `json:"name"`
	Secrets []string `json:"secrets"`
	Emails  []string `json:"emails"`
	Tenant  string   `json:"tenant"`
	Roles   []string `json:"roles"`
}
