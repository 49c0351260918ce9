// Package provision runs the ordered tenant onboarding sequence against
// the mail platform's management API.
//
// The sequence is tenant, then domain, then admin account, and it always
// runs to completion: a failed step is recorded and reported, never fatal.
// This keeps the tool safe to re-run against a partially provisioned
// tenant after an earlier interrupted run.
package provision

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/mailprov/mailprov/internal/config"
	"github.com/mailprov/mailprov/internal/platform/mailserver"
	"github.com/mailprov/mailprov/internal/util/naming"
)

// PrincipalCreator is the slice of the management API client the sequencer
// needs. Satisfied by *mailserver.Client.
type PrincipalCreator interface {
	CreatePrincipal(ctx context.Context, payload any) ([]byte, error)
}

// StepOutcome records the result of one provisioning step for the final
// report. HTTPStatus is 0 unless the step failed with an HTTP response.
type StepOutcome struct {
	Step          string
	Succeeded     bool
	AlreadyExists bool
	HTTPStatus    int
	Message       string
}

// step is one pending create, with the name shown to the operator.
type step struct {
	name    string
	display string
	payload any
}

// Sequencer executes the three-step onboarding sequence.
type Sequencer struct {
	client   PrincipalCreator
	tenantID string
	steps    []step
}

// NewSequencer builds the step plan from a validated config. The tenant
// identifier is derived once and threads through all three payloads.
// Returns an error only if password hashing was requested and failed.
func NewSequencer(client PrincipalCreator, cfg *config.Config) (*Sequencer, error) {
	tenantID := naming.TenantID(cfg.OrgDisplayName)
	adminName := naming.AdminAccount(cfg.AdminEmail)

	adminSecret := cfg.AdminPassword
	if cfg.HashPassword {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		adminSecret = string(hash)
	}

	return &Sequencer{
		client:   client,
		tenantID: tenantID,
		steps: []step{
			{
				name:    "tenant",
				display: tenantID,
				payload: TenantPayload{
					Type:         "tenant",
					Name:         tenantID,
					Description:  cfg.OrgDisplayName,
					Quota:        cfg.QuotaBytes,
					BrandName:    cfg.BrandName,
					BrandLogoURL: cfg.BrandLogoURL,
					BrandTheme:   cfg.BrandTheme,
				},
			},
			{
				name:    "domain",
				display: cfg.Domain,
				payload: DomainPayload{
					Type:   "domain",
					Name:   cfg.Domain,
					Tenant: tenantID,
				},
			},
			{
				name:    "admin",
				display: adminName,
				payload: AdminPayload{
					Type:    "individual",
					Name:    adminName,
					Secrets: []string{adminSecret},
					Emails:  []string{cfg.AdminEmail},
					Tenant:  tenantID,
					Roles:   []string{"tenant-admin"},
				},
			},
		},
	}, nil
}

// TenantID returns the derived tenant identifier.
func (s *Sequencer) TenantID() string {
	return s.tenantID
}

// Run executes every step in order regardless of earlier failures and
// returns one outcome per step. Progress is logged as it happens; the
// caller prints the final summary.
func (s *Sequencer) Run(ctx context.Context) []StepOutcome {
	outcomes := make([]StepOutcome, 0, len(s.steps))

	for i, st := range s.steps {
		log.Printf("Step %d/%d: creating %s %q...", i+1, len(s.steps), st.name, st.display)
		outcomes = append(outcomes, s.runStep(ctx, st))
	}

	return outcomes
}

func (s *Sequencer) runStep(ctx context.Context, st step) StepOutcome {
	outcome := StepOutcome{Step: st.name}

	_, err := s.client.CreatePrincipal(ctx, st.payload)
	if err == nil {
		outcome.Succeeded = true
		outcome.Message = fmt.Sprintf("%s %q created", st.name, st.display)
		log.Printf("Created %s %q", st.name, st.display)
		return outcome
	}

	outcome.Message = err.Error()

	var apiErr *mailserver.APIError
	if errors.As(err, &apiErr) {
		outcome.HTTPStatus = apiErr.StatusCode
		if apiErr.AlreadyExists() {
			outcome.AlreadyExists = true
			log.Printf("%s %q already exists, skipping", st.name, st.display)
			return outcome
		}
	}

	log.Printf("Warning: failed to create %s %q, continuing: %v", st.name, st.display, err)
	return outcome
}
