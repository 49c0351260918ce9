// Package naming derives the identifiers used to link provisioned records
// on the mail platform.
//
// The tenant identifier is derived from the organization display name and
// acts as the foreign key binding domain and admin records to their tenant,
// so the derivation must be deterministic and idempotent.
package naming

import "strings"

// TenantID derives the normalized tenant identifier from an organization
// display name: lowercase with every space replaced by a hyphen.
// Applying it to its own output returns the same value.
func TenantID(orgDisplayName string) string {
	return strings.ReplaceAll(strings.ToLower(orgDisplayName), " ", "-")
}

// AdminAccount derives the admin account name from an email address: the
// part before the first "@". An address without "@" is returned unchanged.
func AdminAccount(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
